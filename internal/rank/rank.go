// Package rank scores and orders (term, document) candidate pairs for a
// query, using the roaring-bitmap candidate sets built by internal/index
// (compare the bitmap-driven boolean query evaluation this repo's query
// builder performs) and a TF-IDF formula grounded on a document-indexer's
// ln(N/(df+1)) smoothing.
package rank

import (
	"math"
	"sort"

	"github.com/RoaringBitmap/roaring"

	"github.com/indexlocal/fulltextsearch/internal/index"
)

// Strategy selects how a multi-term query's candidate set is assembled.
type Strategy int

const (
	// AND restricts candidates to documents containing every query term.
	AND Strategy = iota
	// OR admits every (term, document) pair where the term occurs, without
	// deduplicating a document that matches more than one term.
	OR
)

// Result is one scored (term, document) candidate.
type Result struct {
	Term       string
	DocumentID int
	Score      float64
}

// Rank computes the candidate set for terms under strategy and returns it
// sorted descending by score. Ties are broken by a stable sort, so equal
// scores preserve candidate-generation order rather than being reshuffled.
func Rank(idx *index.Index, terms []string, strategy Strategy) []Result {
	var results []Result

	switch strategy {
	case AND:
		candidates := intersectAll(idx, terms)
		if candidates == nil {
			return nil
		}
		it := candidates.Iterator()
		for it.HasNext() {
			docID := int(it.Next())
			for _, term := range terms {
				results = append(results, score(idx, term, docID))
			}
		}
	case OR:
		for _, term := range terms {
			bitmap := idx.DocumentsForTerm(term)
			it := bitmap.Iterator()
			for it.HasNext() {
				docID := int(it.Next())
				results = append(results, score(idx, term, docID))
			}
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

// intersectAll returns the bitmap intersection of term_documents across
// every term, or nil if terms is empty or any term is absent from the
// index (its bitmap intersected into the running set empties it).
func intersectAll(idx *index.Index, terms []string) *roaring.Bitmap {
	if len(terms) == 0 {
		return nil
	}
	acc := idx.DocumentsForTerm(terms[0]).Clone()
	for _, term := range terms[1:] {
		acc.And(idx.DocumentsForTerm(term))
	}
	if acc.IsEmpty() {
		return nil
	}
	return acc
}

func score(idx *index.Index, term string, docID int) Result {
	tf := termFrequency(idx, term, docID)
	idf := inverseDocumentFrequency(idx, term)
	return Result{Term: term, DocumentID: docID, Score: tf * idf}
}

// termFrequency is occurrences of term in docID divided by the number of
// distinct terms in docID — not the total token count. This is a
// deliberate deviation from textbook TF and is load-bearing behavior, not
// a bug to "fix" toward the textbook definition.
func termFrequency(idx *index.Index, term string, docID int) float64 {
	distinct := idx.DistinctTermCount(docID)
	if distinct == 0 {
		return 0
	}
	count := idx.TermCountInDocument(docID, term)
	return float64(count) / float64(distinct)
}

func inverseDocumentFrequency(idx *index.Index, term string) float64 {
	n := idx.Size()
	df := idx.DocumentFrequency(term)
	return math.Log(float64(n) / float64(df+1))
}
