package index

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/RoaringBitmap/roaring"

	"github.com/indexlocal/fulltextsearch/internal/analysis"
)

const (
	documentsFile       = "documents.json"
	termOccurrencesFile = "term_occurrences.json"
	termDocumentsFile   = "term_documents.json"
)

// occurrenceJSON is the on-disk shape of a single occurrence entry inside
// term_occurrences.json: {"line": int, "index": int, "original": string}.
type occurrenceJSON struct {
	Line     int    `json:"line"`
	Index    int    `json:"index"`
	Original string `json:"original"`
}

// ExistsOnDisk reports whether all three persisted artifacts are present in
// dir.
func ExistsOnDisk(dir string) bool {
	for _, name := range []string{documentsFile, termOccurrencesFile, termDocumentsFile} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			return false
		}
	}
	return true
}

// Save persists the index as three JSON files under dir. Each file is
// written to a temporary sibling and renamed into place, so no artifact is
// ever seen half-written. The three renames are separate: if a save that
// crashes partway through is the first one in dir, ExistsOnDisk reports
// false; if earlier artifacts are present, it leaves a mix of old and new
// files that ExistsOnDisk reports as present.
func (idx *Index) Save(dir string) error {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	documents := make(map[string]int, len(idx.Documents))
	for docID, path := range idx.Documents {
		documents[path] = docID
	}
	if err := writeJSONAtomic(dir, documentsFile, documents); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}

	occurrences := make(map[string]map[string][]occurrenceJSON, len(idx.TermOccurrences))
	for docID, terms := range idx.TermOccurrences {
		perTerm := make(map[string][]occurrenceJSON, len(terms))
		for term, list := range terms {
			entries := list.All()
			out := make([]occurrenceJSON, 0, len(entries))
			for _, occ := range entries {
				out = append(out, occurrenceJSON{
					Line:     occ.Line,
					Index:    occ.Index,
					Original: occ.Original,
				})
			}
			perTerm[term] = out
		}
		occurrences[strconv.Itoa(docID)] = perTerm
	}
	if err := writeJSONAtomic(dir, termOccurrencesFile, occurrences); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}

	termDocs := make(map[string][]int, len(idx.TermDocuments))
	for term, bitmap := range idx.TermDocuments {
		ids := make([]int, 0, bitmap.GetCardinality())
		it := bitmap.Iterator()
		for it.HasNext() {
			ids = append(ids, int(it.Next()))
		}
		termDocs[term] = ids
	}
	if err := writeJSONAtomic(dir, termDocumentsFile, termDocs); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}

	return nil
}

func writeJSONAtomic(dir, name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, name+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, filepath.Join(dir, name))
}

// Load reconstructs an index from the three JSON artifacts under dir. It
// fails with ErrCorruptIndex if the reconstructed index violates I1-I3.
func Load(dir string) (*Index, error) {
	var documents map[string]int
	if err := readJSON(dir, documentsFile, &documents); err != nil {
		return nil, err
	}

	var occurrences map[string]map[string][]occurrenceJSON
	if err := readJSON(dir, termOccurrencesFile, &occurrences); err != nil {
		return nil, err
	}

	var termDocs map[string][]int
	if err := readJSON(dir, termDocumentsFile, &termDocs); err != nil {
		return nil, err
	}

	idx := New()
	maxID := -1
	for path, docID := range documents {
		idx.Documents[docID] = path
		if docID > maxID {
			maxID = docID
		}
	}
	idx.nextDocID = maxID + 1

	for docIDStr, terms := range occurrences {
		docID, err := strconv.Atoi(docIDStr)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptIndex, err)
		}
		perTerm := make(map[string]*OccurrenceList, len(terms))
		for term, entries := range terms {
			list := NewOccurrenceList()
			for _, e := range entries {
				list.Insert(Occurrence{
					Stem: analysis.Stem{
						Index:    e.Index,
						Original: e.Original,
						Stemmed:  term,
					},
					DocumentID: docID,
					Line:       e.Line,
				})
			}
			perTerm[term] = list
		}
		idx.TermOccurrences[docID] = perTerm
	}

	for term, ids := range termDocs {
		bitmap := roaring.New()
		for _, id := range ids {
			bitmap.Add(uint32(id))
		}
		idx.TermDocuments[term] = bitmap
	}

	if err := idx.checkInvariants(); err != nil {
		return nil, err
	}
	return idx, nil
}

func readJSON(dir, name string, v any) error {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptIndex, err)
	}
	return nil
}
