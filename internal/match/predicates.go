package match

import "strings"

// TitlesMatch reports whether two normalized titles denote the same book:
// equal strings, one containing the other (subtitle differences), or an edit
// distance within maxRatio of the shorter title's length. Blank titles never
// match through the containment or distance paths.
func TitlesMatch(a, b string, maxRatio float64) bool {
	if a == b {
		return true
	}
	if a == "" || b == "" {
		return false
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}

	shorter := len([]rune(a))
	if lb := len([]rune(b)); lb < shorter {
		shorter = lb
	}
	distance := Levenshtein(a, b)
	return float64(distance) <= maxRatio*float64(shorter)
}

// AuthorsMatch reports whether two normalized author strings are compatible.
// Missing author data must never block a match, so a blank side matches
// anything. Otherwise: equality, containment, or a shared token of at least
// minTokenLen runes (a surname heuristic).
func AuthorsMatch(a, b string, minTokenLen int) bool {
	if a == "" || b == "" {
		return true
	}
	if a == b {
		return true
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}
	return sharesToken(a, b, minTokenLen)
}

func sharesToken(a, b string, minLen int) bool {
	seen := make(map[string]struct{})
	for _, token := range strings.Fields(a) {
		if len([]rune(token)) >= minLen {
			seen[token] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return false
	}
	for _, token := range strings.Fields(b) {
		if len([]rune(token)) < minLen {
			continue
		}
		if _, ok := seen[token]; ok {
			return true
		}
	}
	return false
}
