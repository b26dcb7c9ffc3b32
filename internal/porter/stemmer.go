// Package porter implements the Porter stemming algorithm (Porter, 1980, An
// algorithm for suffix stripping, Program, Vol. 14, no. 3, pp 130-137).
//
// The stemmer reduces an English surface word to its root form by applying a
// fixed sequence of suffix-stripping rules driven by the "measure" of the
// word — the number of vowel-group-to-consonant-group transitions in the
// part of the word preceding a candidate suffix. It is deliberately the
// classical 1980 algorithm rather than a Porter2/Snowball derivative: the
// two disagree on a number of words (Snowball stems "triplicate" to
// "triplic" via a different step order; the decision to match classical
// Porter is a behavioral requirement, not a style choice).
package porter

import (
	"bytes"
	"strings"
)

var (
	__BLANK  = []byte("")
	_ABLE    = []byte("able")
	_AL      = []byte("al")
	_ALISM   = []byte("alism")
	_ALITI   = []byte("aliti")
	_ALIZE   = []byte("alize")
	_ALLI    = []byte("alli")
	_ANCE    = []byte("ance")
	_ANCI    = []byte("anci")
	_ANT     = []byte("ant")
	_AT      = []byte("at")
	_ATE     = []byte("ate")
	_ATION   = []byte("ation")
	_ATIONAL = []byte("ational")
	_ATIVE   = []byte("ative")
	_ATOR    = []byte("ator")
	_BILITI  = []byte("biliti")
	_BL      = []byte("bl")
	_BLE     = []byte("ble")
	_BLI     = []byte("bli")
	_E       = []byte("e")
	_ED      = []byte("ed")
	_EED     = []byte("eed")
	_ELI     = []byte("eli")
	_EMENT   = []byte("ement")
	_ENCE    = []byte("ence")
	_ENCI    = []byte("enci")
	_ENT     = []byte("ent")
	_ENTLI   = []byte("entli")
	_ER      = []byte("er")
	_FUL     = []byte("ful")
	_FULNESS = []byte("fulness")
	_I       = []byte("i")
	_IBLE    = []byte("ible")
	_IC      = []byte("ic")
	_ICAL    = []byte("ical")
	_ICATE   = []byte("icate")
	_ICITI   = []byte("iciti")
	_IES     = []byte("ies")
	_ING     = []byte("ing")
	_ION     = []byte("ion")
	_ISM     = []byte("ism")
	_ITI     = []byte("iti")
	_IVE     = []byte("ive")
	_IVENESS = []byte("iveness")
	_IVITI   = []byte("iviti")
	_IZ      = []byte("iz")
	_IZATION = []byte("ization")
	_IZE     = []byte("ize")
	_IZER    = []byte("izer")
	_LOG     = []byte("log")
	_LOGI    = []byte("logi")
	_MENT    = []byte("ment")
	_NESS    = []byte("ness")
	_OU      = []byte("ou")
	_OUS     = []byte("ous")
	_OUSLI   = []byte("ousli")
	_OUSNESS = []byte("ousness")
	_SSES    = []byte("sses")
	_TION    = []byte("tion")
	_TIONAL  = []byte("tional")
	_Y       = []byte("y")
)

// stemmer holds the working state for one word: b is the buffer being
// mutated, k is the index of its last character, j marks the start of the
// suffix the current step is examining.
type stemmer struct {
	b []byte
	j int
	k int
}

// consonant reports whether b[pos] is a consonant. 'y' is a consonant at
// position 0 or after a vowel, and a vowel otherwise.
func (z *stemmer) consonant(pos int) bool {
	if len(z.b) <= pos {
		return false
	}
	switch z.b[pos] {
	case 'a', 'e', 'i', 'o', 'u':
		return false
	case 'y':
		if pos == 0 {
			return true
		}
		return z.vowel(pos - 1)
	}
	return true
}

func (z *stemmer) vowel(pos int) bool {
	return !z.consonant(pos)
}

// m computes the measure of b[0..j]: the count of vowel-group -> consonant-
// group transitions in the pattern [C](VC)^m[V].
func (z *stemmer) m() int {
	var n, i int

	for {
		if i > z.j {
			return n
		}
		if !z.consonant(i) {
			break
		}
		i++
	}
	i++
	for {
		for {
			if i > z.j {
				return n
			}
			if z.consonant(i) {
				break
			}
			i++
		}
		i++
		n++
		for {
			if i > z.j {
				return n
			}
			if !z.consonant(i) {
				break
			}
			i++
		}
		i++
	}
}

// vowelinstem reports whether b[0..j] contains a vowel.
func (z *stemmer) vowelinstem() bool {
	for i := 0; i <= z.j; i++ {
		if !z.consonant(i) {
			return true
		}
	}
	return false
}

// doublec reports whether b[j-1],b[j] is a double consonant.
func (z *stemmer) doublec(j int) bool {
	if 1 > j {
		return false
	}
	if z.b[j] != z.b[j-1] {
		return false
	}
	return z.consonant(j)
}

// cvc reports whether b[i-2..i] has the form consonant-vowel-consonant,
// where the final consonant is not w, x or y. Used to decide whether to
// restore a final 'e' (cav(e), lov(e), hop(e) but not snow, box, tray).
func (z *stemmer) cvc(i int) bool {
	if 2 > i || !z.consonant(i) || z.consonant(i-1) || !z.consonant(i-2) {
		return false
	}
	switch z.b[i] {
	case 'w', 'x', 'y':
		return false
	}
	return true
}

// ends reports whether b[0..k] ends with s, and if so sets j to the start
// of that suffix.
func (z *stemmer) ends(s []byte) bool {
	length := len(s)
	if length > z.k {
		return false
	}
	if !bytes.HasSuffix(z.b[:z.k+1], s) {
		return false
	}
	z.j = z.k - length
	return true
}

// setto replaces b[j+1..k] with s and adjusts k.
func (z *stemmer) setto(s []byte) {
	j := z.j
	copy(z.b[j+1:], s)
	z.k = j + len(s)
}

// r replaces the current suffix with s only if m(stem) > 0.
func (z *stemmer) r(s []byte) {
	if 0 < z.m() {
		z.setto(s)
	}
}

// step1ab strips plurals and -ed/-ing:
//
//	caresses -> caress, ponies -> poni, ties -> ti, cats -> cat
//	feed -> feed, agreed -> agree, plastered -> plaster, motoring -> motor
func (z *stemmer) step1ab() {
	if 's' == z.b[z.k] {
		switch {
		case z.ends(_SSES):
			z.k -= 2
		case z.ends(_IES):
			z.setto(_I)
		default:
			if 's' != z.b[z.k-1] {
				z.k--
			}
		}
	}
	if z.ends(_EED) {
		if 0 < z.m() {
			z.k--
		}
	} else if (z.ends(_ED) || z.ends(_ING)) && z.vowelinstem() {
		z.k = z.j
		switch {
		case z.ends(_AT):
			z.setto(_ATE)
		case z.ends(_BL):
			z.setto(_BLE)
		case z.ends(_IZ):
			z.setto(_IZE)
		case z.doublec(z.k):
			z.k--
			switch z.b[z.k] {
			case 'l', 's', 'z':
				z.k++
			}
		default:
			if 1 == z.m() && z.cvc(z.k) {
				z.setto(_E)
			}
		}
	}
}

// step1c turns a terminal 'y' into 'i' when the stem contains a vowel.
func (z *stemmer) step1c() {
	if z.ends(_Y) && z.vowelinstem() {
		z.b[z.k] = 'i'
	}
}

// step2 maps double suffixes to single ones (-ization -> -ize, and so on),
// requiring m(stem) > 0.
func (z *stemmer) step2() {
	if z.k == 0 {
		return
	}
	switch z.b[z.k-1] {
	case 'a':
		z.step2a()
	case 'c':
		z.step2c()
	case 'e':
		z.step2e()
	case 'l':
		z.step2l()
	case 'o':
		z.step2o()
	case 's':
		z.step2s()
	case 't':
		z.step2t()
	case 'g':
		z.step2g()
	}
}

func (z *stemmer) step2a() {
	switch {
	case z.ends(_ATIONAL):
		z.r(_ATE)
	case z.ends(_TIONAL):
		z.r(_TION)
	}
}

func (z *stemmer) step2c() {
	switch {
	case z.ends(_ENCI):
		z.r(_ENCE)
	case z.ends(_ANCI):
		z.r(_ANCE)
	}
}

func (z *stemmer) step2e() {
	if z.ends(_IZER) {
		z.r(_IZE)
	}
}

func (z *stemmer) step2l() {
	switch {
	case z.ends(_BLI):
		z.r(_BLE)
	case z.ends(_ALLI):
		z.r(_AL)
	case z.ends(_ENTLI):
		z.r(_ENT)
	case z.ends(_ELI):
		z.r(_E)
	case z.ends(_OUSLI):
		z.r(_OUS)
	}
}

func (z *stemmer) step2o() {
	switch {
	case z.ends(_IZATION):
		z.r(_IZE)
	case z.ends(_ATION):
		z.r(_ATE)
	case z.ends(_ATOR):
		z.r(_ATE)
	}
}

func (z *stemmer) step2s() {
	switch {
	case z.ends(_ALISM):
		z.r(_AL)
	case z.ends(_IVENESS):
		z.r(_IVE)
	case z.ends(_FULNESS):
		z.r(_FUL)
	case z.ends(_OUSNESS):
		z.r(_OUS)
	}
}

func (z *stemmer) step2t() {
	switch {
	case z.ends(_ALITI):
		z.r(_AL)
	case z.ends(_IVITI):
		z.r(_IVE)
	case z.ends(_BILITI):
		z.r(_BLE)
	}
}

func (z *stemmer) step2g() {
	if z.ends(_LOGI) {
		z.r(_LOG)
	}
}

// step3 strips -icate, -ative, -alize, -iciti, -ical, -ful, -ness, requiring
// m(stem) > 0.
func (z *stemmer) step3() {
	switch z.b[z.k] {
	case 'e':
		z.step3e()
	case 'i':
		z.step3i()
	case 'l':
		z.step3l()
	case 's':
		z.step3s()
	}
}

func (z *stemmer) step3e() {
	switch {
	case z.ends(_ICATE):
		z.r(_IC)
	case z.ends(_ATIVE):
		z.r(__BLANK)
	case z.ends(_ALIZE):
		z.r(_AL)
	}
}

func (z *stemmer) step3i() {
	if z.ends(_ICITI) {
		z.r(_IC)
	}
}

func (z *stemmer) step3l() {
	switch {
	case z.ends(_ICAL):
		z.r(_IC)
	case z.ends(_FUL):
		z.r(__BLANK)
	}
}

func (z *stemmer) step3s() {
	if z.ends(_NESS) {
		z.r(__BLANK)
	}
}

// step4 strips the step-4 suffix set in context <c>vcvc<v>, i.e. m(stem) > 1.
func (z *stemmer) step4() {
	if z.k == 0 {
		return
	}
	switch z.b[z.k-1] {
	case 'a':
		z.step4a()
	case 'c':
		z.step4c()
	case 'e':
		z.step4e()
	case 'i':
		z.step4i()
	case 'l':
		z.step4l()
	case 'n':
		z.step4n()
	case 'o':
		z.step4o()
	case 's':
		z.step4s()
	case 't':
		z.step4t()
	case 'u':
		z.step4u()
	case 'v':
		z.step4v()
	case 'z':
		z.step4z()
	}
}

func (z *stemmer) step4commit() {
	if 1 < z.m() {
		z.k = z.j
	}
}

func (z *stemmer) step4a() {
	if z.ends(_AL) {
		z.step4commit()
	}
}

func (z *stemmer) step4c() {
	if z.ends(_ANCE) || z.ends(_ENCE) {
		z.step4commit()
	}
}

func (z *stemmer) step4e() {
	if z.ends(_ER) {
		z.step4commit()
	}
}

func (z *stemmer) step4i() {
	if z.ends(_IC) {
		z.step4commit()
	}
}

func (z *stemmer) step4l() {
	if z.ends(_ABLE) || z.ends(_IBLE) {
		z.step4commit()
	}
}

func (z *stemmer) step4n() {
	if z.ends(_ANT) || z.ends(_EMENT) || z.ends(_MENT) || z.ends(_ENT) {
		z.step4commit()
	}
}

func (z *stemmer) step4o() {
	if z.ends(_OU) {
		z.step4commit()
	}
	if z.ends(_ION) && ('s' == z.b[z.j] || 't' == z.b[z.j]) {
		z.step4commit()
	}
}

func (z *stemmer) step4s() {
	if z.ends(_ISM) {
		z.step4commit()
	}
}

func (z *stemmer) step4t() {
	if z.ends(_ATE) || z.ends(_ITI) {
		z.step4commit()
	}
}

func (z *stemmer) step4u() {
	if z.ends(_OUS) {
		z.step4commit()
	}
}

func (z *stemmer) step4v() {
	if z.ends(_IVE) {
		z.step4commit()
	}
}

func (z *stemmer) step4z() {
	if z.ends(_IZE) {
		z.step4commit()
	}
}

// step5 drops a final -e when m(stem) > 1, or when m(stem) == 1 and the
// stem does not end cvc; then drops one of a double -ll when m(stem) > 1.
func (z *stemmer) step5() {
	z.j = z.k
	if 'e' == z.b[z.k] {
		a := z.m()
		if 1 < a || (1 == a && !z.cvc(z.k-1)) {
			z.k--
		}
	}
	if 'l' == z.b[z.k] && z.doublec(z.k) && 1 < z.m() {
		z.k--
	}
}

// stem runs all steps over b and returns the new last-character index.
func (z *stemmer) stem(b []byte) int {
	z.b = b
	z.j = 0
	z.k = len(b) - 1

	if z.k > 1 {
		z.step1ab()
		z.step1c()
		z.step2()
		z.step3()
		z.step4()
		z.step5()
	}
	return z.k
}

// Stem lowercases word and returns its Porter stem. Empty input returns "".
func Stem(word string) string {
	if word == "" {
		return ""
	}
	b := []byte(strings.ToLower(word))
	var z stemmer
	k := z.stem(b)
	if k < 0 {
		return ""
	}
	return string(b[:k+1])
}
