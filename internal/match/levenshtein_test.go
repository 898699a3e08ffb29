package match

import "testing"

func TestLevenshteinKnownDistances(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"kitten", "sitting", 3},
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"book", "book", 0},
		{"book", "back", 2},
		{"flaw", "lawn", 2},
	}
	for _, tt := range tests {
		if got := Levenshtein(tt.a, tt.b); got != tt.want {
			t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestLevenshteinSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"project hail mary", "hail mary"},
		{"a", "abcdef"},
	}
	for _, pair := range pairs {
		ab := Levenshtein(pair[0], pair[1])
		ba := Levenshtein(pair[1], pair[0])
		if ab != ba {
			t.Errorf("Levenshtein asymmetric for %q/%q: %d != %d", pair[0], pair[1], ab, ba)
		}
	}
}

func TestLevenshteinIdentity(t *testing.T) {
	for _, s := range []string{"", "x", "the way of kings"} {
		if got := Levenshtein(s, s); got != 0 {
			t.Errorf("Levenshtein(%q, %q) = %d, want 0", s, s, got)
		}
	}
}
