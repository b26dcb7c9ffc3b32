package index

import (
	"testing"

	"github.com/indexlocal/fulltextsearch/internal/analysis"
)

func TestAddDocument_AssignsDenseIDs(t *testing.T) {
	idx := New()
	a := idx.AddDocument("a.txt", nil)
	b := idx.AddDocument("b.txt", nil)
	if a != 0 || b != 1 {
		t.Fatalf("document IDs = %d, %d, want 0, 1", a, b)
	}
	if idx.Size() != 2 {
		t.Errorf("Size() = %d, want 2", idx.Size())
	}
}

func TestAddDocument_RecordsOccurrencesAndTermDocuments(t *testing.T) {
	idx := New()
	lines := [][]analysis.Stem{
		{{Index: 0, Original: "cats", Stemmed: "cat"}, {Index: 5, Original: "dogs", Stemmed: "dog"}},
	}
	docID := idx.AddDocument("a.txt", lines)

	occs := idx.Occurrences(docID, "cat")
	if len(occs) != 1 || occs[0].Original != "cats" || occs[0].Line != 0 {
		t.Fatalf("Occurrences(cat) = %+v", occs)
	}

	if idx.DocumentFrequency("cat") != 1 {
		t.Errorf("DocumentFrequency(cat) = %d, want 1", idx.DocumentFrequency("cat"))
	}
	if idx.DistinctTermCount(docID) != 2 {
		t.Errorf("DistinctTermCount = %d, want 2", idx.DistinctTermCount(docID))
	}
	if idx.TermCountInDocument(docID, "cat") != 1 {
		t.Errorf("TermCountInDocument(cat) = %d, want 1", idx.TermCountInDocument(docID, "cat"))
	}
}

func TestDocumentPath_UnknownID(t *testing.T) {
	idx := New()
	if _, err := idx.DocumentPath(42); err == nil {
		t.Fatal("DocumentPath(42) on empty index: want error, got nil")
	}
}

func TestCheckInvariants_EmptyIndexIsValid(t *testing.T) {
	idx := New()
	if err := idx.checkInvariants(); err != nil {
		t.Errorf("checkInvariants() on empty index = %v, want nil", err)
	}
}

func TestCheckInvariants_AfterAddDocument(t *testing.T) {
	idx := New()
	idx.AddDocument("a.txt", [][]analysis.Stem{
		{{Index: 0, Original: "cats", Stemmed: "cat"}},
	})
	idx.AddDocument("b.txt", nil)
	if err := idx.checkInvariants(); err != nil {
		t.Errorf("checkInvariants() = %v, want nil", err)
	}
}
