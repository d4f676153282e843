package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Email trims and lowercases an address so it can be used as a lookup key.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Title folds case and strips diacritics so "Soirée Salsa" matches "soiree salsa".
func Title(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}
