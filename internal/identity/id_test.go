package identity

import (
	"strings"
	"testing"
)

func TestBookIDDeterministic(t *testing.T) {
	first := BookID("Project Hail Mary", "Andy Weir")
	second := BookID("Project Hail Mary", "Andy Weir")
	if first != second {
		t.Fatalf("BookID not deterministic: %q != %q", first, second)
	}
}

func TestBookIDUsesNormalizedInputs(t *testing.T) {
	plain := BookID("Project Hail Mary", "Andy Weir")
	noisy := BookID("  Project Hail Mary (Unabridged) ", "ANDY WEIR")
	if plain != noisy {
		t.Errorf("expected normalized inputs to share an id: %q != %q", plain, noisy)
	}
}

func TestBookIDShape(t *testing.T) {
	id := BookID("Dune", "Frank Herbert")
	if !strings.HasPrefix(id, "bk_") {
		t.Errorf("id %q missing bk_ prefix", id)
	}
	if len(id) != len("bk_")+16 {
		t.Errorf("id %q has unexpected length %d", id, len(id))
	}
}

func TestBookIDDistinguishesAuthors(t *testing.T) {
	a := BookID("Dune", "Frank Herbert")
	b := BookID("Dune", "Brian Herbert")
	if a == b {
		t.Error("different authors produced identical ids")
	}
}
