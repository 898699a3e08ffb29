package identity

import "testing"

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"lowercase and trim", "  The Martian  ", "the martian"},
		{"unabridged marker", "Project Hail Mary (Unabridged)", "project hail mary"},
		{"abridged marker", "Dune (Abridged)", "dune"},
		{"novel subtitle", "Project Hail Mary: A Novel", "project hail mary"},
		{"edition tag", "The Hobbit (75th Anniversary Edition)", "the hobbit"},
		{"bracketed annotation", "Mistborn [Graphic Audio]", "mistborn"},
		{"series numbering", "The Way of Kings (Book 1)", "the way of kings"},
		{"punctuation stripped", "Harry Potter & the Sorcerer's Stone!", "harry potter the sorcerers stone"},
		{"whitespace collapsed", "A   Wizard  of\tEarthsea", "a wizard of earthsea"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeTitle(tt.raw); got != tt.want {
				t.Errorf("NormalizeTitle(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeTitleIdempotent(t *testing.T) {
	inputs := []string{
		"Project Hail Mary: A Novel (Unabridged)",
		"The Hobbit (Deluxe Edition) [Illustrated]",
		"  Plain Title  ",
		"",
	}
	for _, raw := range inputs {
		once := NormalizeTitle(raw)
		twice := NormalizeTitle(once)
		if once != twice {
			t.Errorf("NormalizeTitle not idempotent for %q: %q != %q", raw, once, twice)
		}
	}
}

func TestNormalizeAuthor(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"J.K. Rowling", "jk rowling"},
		{"  Andy Weir ", "andy weir"},
		{"Ursula K. Le Guin", "ursula k le guin"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeAuthor(tt.raw); got != tt.want {
			t.Errorf("NormalizeAuthor(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestNormalizeAuthorIdempotent(t *testing.T) {
	for _, raw := range []string{"J.K. Rowling", "Brandon Sanderson", ""} {
		once := NormalizeAuthor(raw)
		if twice := NormalizeAuthor(once); once != twice {
			t.Errorf("NormalizeAuthor not idempotent for %q: %q != %q", raw, once, twice)
		}
	}
}
