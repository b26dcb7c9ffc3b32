package porter

import "testing"

func TestStem_Step1(t *testing.T) {
	cases := map[string]string{
		"caresses": "caress",
		"ponies":   "poni",
		"ties":     "ti",
		"caress":   "caress",
		"cats":     "cat",
	}
	for in, want := range cases {
		if got := Stem(in); got != want {
			t.Errorf("Stem(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStem_Step1ab(t *testing.T) {
	cases := map[string]string{
		"feed":      "feed",
		"agreed":    "agree",
		"plastered": "plaster",
		"motoring":  "motor",
		"hopping":   "hop",
		"tanned":    "tan",
		"falling":   "fall",
		"hissing":   "hiss",
		"fizzing":   "fizz",
		"failing":   "fail",
		"filing":    "file",
	}
	for in, want := range cases {
		if got := Stem(in); got != want {
			t.Errorf("Stem(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStem_Step1c(t *testing.T) {
	cases := map[string]string{
		"happy": "happi",
		"sky":   "sky",
	}
	for in, want := range cases {
		if got := Stem(in); got != want {
			t.Errorf("Stem(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStem_Step2(t *testing.T) {
	cases := map[string]string{
		"relational":     "relate",
		"conditional":    "condition",
		"rational":       "rational",
		"valenci":        "valence",
		"digitizer":      "digitize",
		"vietnamization": "vietnamize",
		"sensibiliti":    "sensible",
	}
	for in, want := range cases {
		if got := Stem(in); got != want {
			t.Errorf("Stem(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStem_Step3(t *testing.T) {
	cases := map[string]string{
		"triplicate": "triplic",
		"formative":  "form",
		"electrical": "electric",
		"hopeful":    "hope",
		"goodness":   "good",
	}
	for in, want := range cases {
		if got := Stem(in); got != want {
			t.Errorf("Stem(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStem_Step4(t *testing.T) {
	cases := map[string]string{
		"revival":    "reviv",
		"allowance":  "allow",
		"inference":  "infer",
		"adjustable": "adjust",
		"homologous": "homolog",
		"effective":  "effect",
	}
	for in, want := range cases {
		if got := Stem(in); got != want {
			t.Errorf("Stem(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStem_Step5(t *testing.T) {
	cases := map[string]string{
		"probate":  "probat",
		"rate":     "rate",
		"cease":    "ceas",
		"controll": "control",
		"roll":     "roll",
	}
	for in, want := range cases {
		if got := Stem(in); got != want {
			t.Errorf("Stem(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStem_EmptyInput(t *testing.T) {
	if got := Stem(""); got != "" {
		t.Errorf("Stem(\"\") = %q, want \"\"", got)
	}
}

func TestStem_Idempotent(t *testing.T) {
	words := []string{"running", "ponies", "relational", "triplicate", "happy", "controll"}
	for _, w := range words {
		once := Stem(w)
		twice := Stem(once)
		if once != twice {
			t.Errorf("Stem(Stem(%q)) = %q, want %q (idempotence)", w, twice, once)
		}
	}
}

func TestStem_Lowercases(t *testing.T) {
	if got := Stem("CARESSES"); got != "caress" {
		t.Errorf("Stem(\"CARESSES\") = %q, want \"caress\"", got)
	}
}
