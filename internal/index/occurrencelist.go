package index

import (
	"math/rand"
)

// OccurrenceList holds every Occurrence of one term within one document, in
// document order (increasing (line, index), invariant I1-I3 of the data
// model). It is a skip list ordered on that key rather than a plain slice.
// AddDocument and Load already insert in (line, index) order, but Insert
// does not rely on that: it places each occurrence by its key rather than
// appending.
//
// The level/tower/coin-flip-height structure mirrors a conventional
// positional posting-list skip list: level 0 holds every occurrence in
// order, higher levels are probabilistic shortcuts used only while
// searching for an insertion point.
const maxHeight = 16

type occKey struct {
	line  int
	index int
}

func (a occKey) before(b occKey) bool {
	if a.line != b.line {
		return a.line < b.line
	}
	return a.index < b.index
}

func keyOf(o Occurrence) occKey {
	return occKey{line: o.Line, index: o.Index}
}

type occNode struct {
	occ   Occurrence
	tower [maxHeight]*occNode
}

// OccurrenceList is an ordered, skip-list-backed sequence of Occurrences.
type OccurrenceList struct {
	head   *occNode
	height int
	length int
}

// NewOccurrenceList returns an empty list.
func NewOccurrenceList() *OccurrenceList {
	return &OccurrenceList{head: &occNode{}, height: 1}
}

// Len reports the number of occurrences stored.
func (l *OccurrenceList) Len() int {
	if l == nil {
		return 0
	}
	return l.length
}

// Insert adds occ to the list, keeping level 0 sorted by (line, index).
func (l *OccurrenceList) Insert(occ Occurrence) {
	key := keyOf(occ)
	var journey [maxHeight]*occNode
	current := l.head

	for level := l.height - 1; level >= 0; level-- {
		for current.tower[level] != nil && keyOf(current.tower[level].occ).before(key) {
			current = current.tower[level]
		}
		journey[level] = current
	}

	height := randomHeight()
	node := &occNode{occ: occ}
	for level := 0; level < height; level++ {
		pred := journey[level]
		if pred == nil {
			pred = l.head
		}
		node.tower[level] = pred.tower[level]
		pred.tower[level] = node
	}
	if height > l.height {
		l.height = height
	}
	l.length++
}

// All returns every occurrence in document order.
func (l *OccurrenceList) All() []Occurrence {
	if l == nil {
		return nil
	}
	out := make([]Occurrence, 0, l.length)
	for n := l.head.tower[0]; n != nil; n = n.tower[0] {
		out = append(out, n.occ)
	}
	return out
}

func randomHeight() int {
	height := 1
	for rand.Float64() < 0.5 && height < maxHeight {
		height++
	}
	return height
}
