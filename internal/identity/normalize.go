package identity

import (
	"regexp"
	"strings"
	"unicode"
)

// titleNoisePatterns matches store-added annotations that carry no identity:
// narration markers, subtitle boilerplate, edition tags, bracketed notes, and
// series numbering. Input is lowercased before these run.
var titleNoisePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\(unabridged\)`),
	regexp.MustCompile(`\(abridged\)`),
	regexp.MustCompile(`: a novel`),
	regexp.MustCompile(`\([^)]*edition\)`),
	regexp.MustCompile(`\[[^\]]*\]`),
	regexp.MustCompile(`\(book \d+\)`),
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// NormalizeTitle reduces a raw title to its comparison form: lowercase, noise
// annotations removed, non-alphanumeric runes dropped, whitespace collapsed.
// Idempotent; empty input yields an empty string.
func NormalizeTitle(raw string) string {
	title := strings.ToLower(strings.TrimSpace(raw))
	for _, pattern := range titleNoisePatterns {
		title = pattern.ReplaceAllString(title, "")
	}
	return collapse(stripSymbols(title))
}

// NormalizeAuthor reduces a raw author string to its comparison form.
// Idempotent; empty input yields an empty string.
func NormalizeAuthor(raw string) string {
	author := strings.ToLower(strings.TrimSpace(raw))
	return collapse(stripSymbols(author))
}

func stripSymbols(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for _, r := range value {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	return b.String()
}

func collapse(value string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(value, " "))
}
