// Package analysis turns a line of text into position-tagged, stemmed
// tokens ("stems"). It implements the same tokenize -> lowercase ->
// stopword-filter -> length-filter -> stem pipeline shape used across the
// corpus (compare the lowercase/stopword/length/stemmer filter chain in
// text-analysis packages generally), but reads positions in surface-text
// byte columns rather than rune-classified fields, since callers need to
// report the exact column of a hit back to the user.
package analysis

import (
	"strings"

	"github.com/indexlocal/fulltextsearch/internal/porter"
)

// MinStemmableLength is the minimum surface-word length eligible for
// indexing; shorter words are dropped regardless of stop-word status.
const MinStemmableLength = 3

// punctuation is the set of characters treated as word delimiters in
// addition to the ASCII space, each consuming exactly one column.
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Stem is a single surface word recovered from a line, together with its
// 0-based column within that line and the term produced by stemming it.
type Stem struct {
	Index    int    // 0-based column of the original word within the line
	Original string // the surface word as it appeared, punctuation trimmed
	Stemmed  string // the Porter stem of the lowercased word
}

var delimiter [256]bool

func init() {
	delimiter[' '] = true
	for i := 0; i < len(punctuation); i++ {
		delimiter[punctuation[i]] = true
	}
}

func isDelimiter(b byte) bool {
	return delimiter[b]
}

// Tokenize splits line into Stems. Leading whitespace is trimmed first, and
// the number of trimmed characters is the starting column, so the column of
// each surface word is its 0-based offset within the original line. Every
// delimiter (space or punctuation) advances the column by one character;
// runs of delimiters never produce empty tokens.
func Tokenize(line string) []Stem {
	trimmed := strings.TrimLeft(line, " \t")
	start := len(line) - len(trimmed)

	var stems []Stem
	wordStart := -1
	var word strings.Builder

	flush := func(col int) {
		if word.Len() == 0 {
			return
		}
		surface := word.String()
		if checkStemmable(surface) {
			stems = append(stems, Stem{
				Index:    col,
				Original: surface,
				Stemmed:  porter.Stem(strings.ToLower(surface)),
			})
		}
		word.Reset()
	}

	col := start
	for i := 0; i < len(trimmed); i++ {
		c := trimmed[i]
		if isDelimiter(c) {
			flush(wordStart)
			wordStart = -1
			col++
			continue
		}
		if wordStart == -1 {
			wordStart = col
		}
		word.WriteByte(c)
		col++
	}
	flush(wordStart)

	return stems
}

// checkStemmable reports whether word (not yet lowercased) should be
// indexed: long enough, and not a stop word once lowercased.
func checkStemmable(word string) bool {
	if len(word) < MinStemmableLength {
		return false
	}
	return !isStopword(strings.ToLower(word))
}

func isStopword(word string) bool {
	_, ok := stopwords[word]
	return ok
}

// stopwords is the fixed English stop-word list. Unlike a general-purpose
// analyzer's larger list, this one is a closed vocabulary: membership is a
// behavioral contract, not a tunable.
var stopwords = map[string]struct{}{
	"i": {}, "me": {}, "my": {}, "myself": {}, "we": {}, "our": {}, "ours": {}, "ourselves": {},
	"you": {}, "your": {}, "yours": {}, "yourself": {}, "yourselves": {},
	"he": {}, "him": {}, "his": {}, "himself": {},
	"she": {}, "her": {}, "hers": {}, "herself": {},
	"it": {}, "its": {}, "itself": {},
	"they": {}, "them": {}, "their": {}, "theirs": {}, "themselves": {},
	"what": {}, "which": {}, "who": {}, "whom": {},
	"this": {}, "that": {}, "these": {}, "those": {},
	"am": {}, "is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {}, "being": {},
	"have": {}, "has": {}, "had": {}, "having": {},
	"do": {}, "does": {}, "did": {}, "doing": {},
	"a": {}, "an": {}, "the": {},
	"and": {}, "but": {}, "if": {}, "or": {}, "because": {}, "as": {}, "until": {}, "while": {},
	"of": {}, "at": {}, "by": {}, "for": {}, "with": {}, "about": {}, "against": {}, "between": {},
	"into": {}, "through": {}, "during": {}, "before": {}, "after": {}, "above": {}, "below": {},
	"to": {}, "from": {}, "up": {}, "down": {}, "in": {}, "out": {}, "on": {}, "off": {}, "over": {}, "under": {},
	"again": {}, "further": {}, "then": {}, "once": {},
	"here": {}, "there": {}, "when": {}, "where": {}, "why": {}, "how": {},
	"all": {}, "any": {}, "both": {}, "each": {}, "few": {}, "more": {}, "most": {}, "other": {}, "some": {}, "such": {},
	"no": {}, "nor": {}, "not": {}, "only": {}, "own": {}, "same": {}, "so": {}, "than": {}, "too": {}, "very": {},
	"s": {}, "t": {}, "can": {}, "will": {}, "just": {}, "don": {}, "should": {}, "now": {},
}
