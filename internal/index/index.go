// Package index implements the inverted index: the central data structure
// mapping terms to the documents and positions they occur at, its
// invariants, and its on-disk persistence.
//
// Architecture:
//
//	Index
//	├── Documents        map[docID]path                  (bijective)
//	├── TermOccurrences   map[docID]map[term]*OccurrenceList
//	└── TermDocuments     map[term]*roaring.Bitmap         (set of docIDs)
//
// TermDocuments is a roaring.Bitmap because its only operations are
// membership and the set intersection/union the ranker needs for AND/OR
// query evaluation (see internal/rank) — exactly the profile roaring
// bitmaps are built for, and how this repo's original inverted index used
// them for document-level boolean queries before being narrowed to this
// spec's term/document model.
package index

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/RoaringBitmap/roaring"

	"github.com/indexlocal/fulltextsearch/internal/analysis"
)

// Sentinel errors, compared with errors.Is, matching the rest of this
// codebase's error-handling convention.
var (
	// ErrConfig covers programmer/configuration errors: an unknown document
	// ID, or a corpus path that names a file instead of a directory.
	ErrConfig = errors.New("index: configuration error")
	// ErrIO wraps a failure reading or writing a corpus or index file.
	ErrIO = errors.New("index: io error")
	// ErrCorruptIndex is returned by Load when the persisted artifacts fail
	// their schema or invariant checks.
	ErrCorruptIndex = errors.New("index: corrupt on-disk index")
)

// Occurrence is an indexed analysis.Stem: a stem located at a specific
// (document, line) pair. All fields of analysis.Stem are promoted.
type Occurrence struct {
	analysis.Stem
	DocumentID int
	Line       int
}

// Index is the in-memory inverted index described by the data model:
// documents, per-document per-term occurrence lists, and per-term document
// sets. It is built once per process (by Load or by a corpus walk) and is
// not safe for concurrent mutation; concurrent read-only queries after the
// build has completed are fine.
type Index struct {
	mu sync.Mutex

	// Documents maps a document ID to its filesystem path. Bijective with
	// TermOccurrences' key set (invariant I3).
	Documents map[int]string

	// TermOccurrences maps a document ID to a map from term to that term's
	// ordered occurrences within the document (invariant I1, I2).
	TermOccurrences map[int]map[string]*OccurrenceList

	// TermDocuments maps a term to the set of document IDs it appears in.
	TermDocuments map[string]*roaring.Bitmap

	nextDocID int
}

// New returns an empty index.
func New() *Index {
	return &Index{
		Documents:       make(map[int]string),
		TermOccurrences: make(map[int]map[string]*OccurrenceList),
		TermDocuments:   make(map[string]*roaring.Bitmap),
	}
}

// Size reports the number of indexed documents.
func (idx *Index) Size() int {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	return len(idx.Documents)
}

// DocumentPath returns the filesystem path for a document ID. Fails with
// ErrConfig if the ID is unknown (a programmer error: query-time errors
// about unknown IDs are not retried, per the error-handling design).
func (idx *Index) DocumentPath(id int) (string, error) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	path, ok := idx.Documents[id]
	if !ok {
		return "", ErrConfig
	}
	return path, nil
}

// AddDocument registers path as a new document, assigns it the next
// document ID (dense, monotonically increasing, never reused within a
// build), and records every stem produced for it as an Occurrence. lines
// is one []analysis.Stem per line of the document, in line order.
//
// AddDocument is guarded by idx.mu as a single-writer defense, not because
// the indexer itself indexes concurrently (spec: indexing is single
// threaded) — it mirrors the inverted index's original per-document locking
// idiom, narrowed to protect the maps rather than to enable parallel
// indexing.
func (idx *Index) AddDocument(path string, lines [][]analysis.Stem) int {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	docID := idx.nextDocID
	idx.nextDocID++

	idx.Documents[docID] = path
	terms := make(map[string]*OccurrenceList)
	idx.TermOccurrences[docID] = terms

	for lineNo, stems := range lines {
		for _, s := range stems {
			occ := Occurrence{Stem: s, DocumentID: docID, Line: lineNo}

			list, ok := terms[s.Stemmed]
			if !ok {
				list = NewOccurrenceList()
				terms[s.Stemmed] = list
			}
			list.Insert(occ)

			bitmap, ok := idx.TermDocuments[s.Stemmed]
			if !ok {
				bitmap = roaring.NewBitmap()
				idx.TermDocuments[s.Stemmed] = bitmap
			}
			bitmap.Add(uint32(docID))
		}
	}

	return docID
}

// Occurrences returns the ordered occurrence list for term in document d,
// or nil if the term never occurs in that document.
func (idx *Index) Occurrences(docID int, term string) []Occurrence {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	terms, ok := idx.TermOccurrences[docID]
	if !ok {
		return nil
	}
	list, ok := terms[term]
	if !ok {
		return nil
	}
	return list.All()
}

// DistinctTermCount returns the number of distinct terms in a document,
// used by the ranker's (deliberately non-textbook) TF denominator.
func (idx *Index) DistinctTermCount(docID int) int {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	return len(idx.TermOccurrences[docID])
}

// TermCountInDocument returns how many times term occurs in document docID.
func (idx *Index) TermCountInDocument(docID int, term string) int {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	terms, ok := idx.TermOccurrences[docID]
	if !ok {
		return 0
	}
	list, ok := terms[term]
	if !ok {
		return 0
	}
	return list.Len()
}

// DocumentFrequency returns the number of documents containing term.
func (idx *Index) DocumentFrequency(term string) int {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	bitmap, ok := idx.TermDocuments[term]
	if !ok {
		return 0
	}
	return int(bitmap.GetCardinality())
}

// DocumentsForTerm returns the bitmap of document IDs containing term. The
// caller must not mutate the returned bitmap; callers that need to combine
// bitmaps (the ranker) clone first.
func (idx *Index) DocumentsForTerm(term string) *roaring.Bitmap {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	bitmap, ok := idx.TermDocuments[term]
	if !ok {
		return roaring.NewBitmap()
	}
	return bitmap
}

// checkInvariants verifies I1-I3 after a Load: every term_documents[t]
// membership must be backed by a non-empty occurrence list, and vice
// versa, and Documents/TermOccurrences must share the same key set.
func (idx *Index) checkInvariants() error {
	for docID := range idx.Documents {
		if _, ok := idx.TermOccurrences[docID]; !ok {
			return ErrCorruptIndex
		}
	}
	for docID := range idx.TermOccurrences {
		if _, ok := idx.Documents[docID]; !ok {
			return ErrCorruptIndex
		}
	}

	seen := make(map[string]map[int]bool)
	for docID, terms := range idx.TermOccurrences {
		for term, list := range terms {
			if list.Len() == 0 {
				return ErrCorruptIndex
			}
			for _, occ := range list.All() {
				if occ.Stemmed != term || occ.DocumentID != docID {
					return ErrCorruptIndex
				}
			}
			if seen[term] == nil {
				seen[term] = make(map[int]bool)
			}
			seen[term][docID] = true
		}
	}

	for term, bitmap := range idx.TermDocuments {
		it := bitmap.Iterator()
		count := 0
		for it.HasNext() {
			docID := int(it.Next())
			if !seen[term][docID] {
				return ErrCorruptIndex
			}
			count++
		}
		if count != len(seen[term]) {
			return ErrCorruptIndex
		}
	}
	for term, docs := range seen {
		bitmap, ok := idx.TermDocuments[term]
		if !ok || int(bitmap.GetCardinality()) != len(docs) {
			return ErrCorruptIndex
		}
	}

	return nil
}

func warnEmptyCorpus(logger *slog.Logger) {
	logger.Warn("index built with zero documents")
}
