package nameparse

import "testing"

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"  John   Smith ": "John Smith",
		"John Smith,":     "John Smith",
		"John\t Smith":    "John Smith",
		"John , Smith":    "John , Smith",
		"":                "",
		" ,":              "",
	}
	for in, want := range tests {
		if got := normalize(in); got != want {
			t.Fatalf("normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"  a  b ,", "x,", "van der Berg", " "}
	for _, in := range inputs {
		once := normalize(in)
		if twice := normalize(once); twice != once {
			t.Fatalf("normalize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}
