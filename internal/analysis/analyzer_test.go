package analysis

import "testing"

func TestTokenize_HelloWorld(t *testing.T) {
	stems := Tokenize("hello#world")
	if len(stems) != 2 {
		t.Fatalf("Tokenize(\"hello#world\") = %+v, want 2 stems", stems)
	}
	if stems[0].Index != 0 || stems[0].Original != "hello" {
		t.Errorf("stems[0] = %+v, want {Index:0 Original:hello}", stems[0])
	}
	if stems[1].Index != 6 || stems[1].Original != "world" {
		t.Errorf("stems[1] = %+v, want {Index:6 Original:world}", stems[1])
	}
}

func TestTokenize_LeadingWhitespaceAndTrailingPunctuation(t *testing.T) {
	stems := Tokenize("   dog.")
	if len(stems) != 1 {
		t.Fatalf("Tokenize(\"   dog.\") = %+v, want 1 stem", stems)
	}
	if stems[0].Index != 3 || stems[0].Original != "dog" {
		t.Errorf("stems[0] = %+v, want {Index:3 Original:dog}", stems[0])
	}
}

func TestTokenize_ColumnsAreMonotonicNonDecreasing(t *testing.T) {
	lines := []string{
		"Stones and sticks may break my bones but words can never hurt me",
		"   dog.",
		"hello#world",
		"a bb ccc dddd, eeeee.fffff",
	}
	for _, line := range lines {
		stems := Tokenize(line)
		for i := 1; i < len(stems); i++ {
			if stems[i].Index < stems[i-1].Index {
				t.Errorf("Tokenize(%q): column decreased at stem %d: %+v after %+v",
					line, i, stems[i], stems[i-1])
			}
		}
	}
}

func TestTokenize_StopWordsFiltered(t *testing.T) {
	stems := Tokenize("the cat and the dog")
	for _, s := range stems {
		if s.Stemmed == "the" || s.Stemmed == "and" {
			t.Errorf("Tokenize() kept stop word %+v", s)
		}
	}
	if len(stems) != 2 {
		t.Fatalf("Tokenize(\"the cat and the dog\") = %+v, want 2 stems (cat, dog)", stems)
	}
}

func TestCheckStemmable_LengthBoundary(t *testing.T) {
	if checkStemmable("ab") {
		t.Error("checkStemmable(\"ab\") = true, want false (length 2 < MinStemmableLength)")
	}
	if !checkStemmable("abc") {
		t.Error("checkStemmable(\"abc\") = false, want true (length 3 == MinStemmableLength)")
	}
}

func TestCheckStemmable_StopWordAtMinLength(t *testing.T) {
	// "the" is length 3 (meets the minimum) but is a stop word.
	if checkStemmable("the") {
		t.Error("checkStemmable(\"the\") = true, want false (stop word)")
	}
}

func TestTokenize_NeverProducesEmptyTokens(t *testing.T) {
	stems := Tokenize("  ,,,   ...!!!   ")
	if len(stems) != 0 {
		t.Errorf("Tokenize(all delimiters) = %+v, want no stems", stems)
	}
}

func TestTokenize_StemmedFieldIsLowercasedPorterStem(t *testing.T) {
	stems := Tokenize("CARESSES")
	if len(stems) != 1 || stems[0].Stemmed != "caress" {
		t.Fatalf("Tokenize(\"CARESSES\") = %+v, want one stem \"caress\"", stems)
	}
	if stems[0].Original != "CARESSES" {
		t.Errorf("stems[0].Original = %q, want surface form preserved as \"CARESSES\"", stems[0].Original)
	}
}
