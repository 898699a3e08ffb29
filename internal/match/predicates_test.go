package match

import "testing"

func TestTitlesMatchBoundary(t *testing.T) {
	// With a 0.30 ratio, two length-10 titles tolerate up to 3 edits.
	base := "abcdefghij"
	threeEdits := "abcdefgXYZ"
	fourEdits := "abcdefWXYZ"

	if !TitlesMatch(base, threeEdits, 0.30) {
		t.Error("3 edits on length 10 should match at ratio 0.30")
	}
	if TitlesMatch(base, fourEdits, 0.30) {
		t.Error("4 edits on length 10 should not match at ratio 0.30")
	}
}

func TestTitlesMatchContainment(t *testing.T) {
	if !TitlesMatch("project hail mary", "project hail mary a novel", 0.30) {
		t.Error("containment should match regardless of distance")
	}
	if !TitlesMatch("the way of kings the stormlight archive", "the way of kings", 0.30) {
		t.Error("containment should be symmetric")
	}
}

func TestTitlesMatchEquality(t *testing.T) {
	if !TitlesMatch("dune", "dune", 0.30) {
		t.Error("equal titles should match")
	}
	if TitlesMatch("dune", "", 0.30) {
		t.Error("blank candidate title must not match a non-blank one")
	}
}

func TestAuthorsMatchLeniency(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"blank side matches anything", "", "jk rowling", true},
		{"both blank", "", "", true},
		{"equal", "andy weir", "andy weir", true},
		{"containment", "stephen king", "king", true},
		{"shared surname token", "brandon sanderson", "b sanderson", true},
		{"short tokens ignored", "bob lee", "ann lee jr", false},
		{"no overlap", "brandon sanderson", "patrick rothfuss", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AuthorsMatch(tt.a, tt.b, 4); got != tt.want {
				t.Errorf("AuthorsMatch(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
