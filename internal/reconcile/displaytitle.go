package reconcile

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// displayTitle cleans a raw observed title for storage as the record's
// display string. Notification scrapers sometimes deliver all-lowercase
// text; those are re-cased for display. Titles that already carry casing are
// kept verbatim.
func displayTitle(raw string) string {
	title := strings.TrimSpace(raw)
	if title == "" {
		return title
	}
	for _, r := range title {
		if unicode.IsUpper(r) {
			return title
		}
	}
	return cases.Title(language.Und).String(title)
}
