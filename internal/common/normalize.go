package common

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// diacriticStripper decomposes characters and drops combining marks,
// so "Mégane" and "megane" normalize identically.
var diacriticStripper = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// NormalizeKey lowercases a string, strips diacritics and removes every
// non-alphanumeric rune. All reference-table lookups go through this so
// "Alfa Romeo", "alfa-romeo" and "ALFA ROMÉO" resolve to the same key.
func NormalizeKey(s string) string {
	if s == "" {
		return ""
	}
	stripped, _, err := transform.String(diacriticStripper, s)
	if err != nil {
		stripped = s
	}
	var b strings.Builder
	b.Grow(len(stripped))
	for _, r := range strings.ToLower(stripped) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// StripDiacritics removes combining marks without touching case or
// punctuation. Used for keyword matching over French ad text.
func StripDiacritics(s string) string {
	stripped, _, err := transform.String(diacriticStripper, s)
	if err != nil {
		return s
	}
	return stripped
}
