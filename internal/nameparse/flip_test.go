package nameparse

import "testing"

func TestFlipNameToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in    string
		sep   string
		rules []flipRule
		want  string
	}{
		{"Smith / John", "/", slashFlips, "John Smith"},
		{"Dr. / Berg / Anna", "/", slashFlips, "Dr. Anna Berg"},
		{"Smith, John", ",", commaFlips, "John Smith"},
		{"Smith, John, Q", ",", commaFlips, "John Q Smith"},
		{"Berg Anna", " ", spaceFlips, "Anna Berg"},
		{"Berg Anna Maria", " ", spaceFlips, "Anna Maria Berg"},
		// No rule for three delimiters, input passes through untouched.
		{"a, b, c, d", ",", commaFlips, "a, b, c, d"},
		{"John Smith", ",", commaFlips, "John Smith"},
	}
	for _, tc := range tests {
		if got := flipNameToken(tc.in, tc.sep, tc.rules); got != tc.want {
			t.Fatalf("flipNameToken(%q, %q) = %q, want %q", tc.in, tc.sep, got, tc.want)
		}
	}
}
