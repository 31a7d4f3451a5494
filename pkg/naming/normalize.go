// Package naming turns human names into directory identifiers and display strings.
package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// asciiFold decomposes to NFD, drops combining marks and keeps only ASCII.
var asciiFold = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })),
)

// Normalize reduces s to a lower-case ASCII fragment suitable for account names.
// Diacritics, characters with no ASCII base, spaces and apostrophes are removed.
// It never fails: input that cannot be transformed yields an empty string.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	folded, _, err := transform.String(asciiFold, s)
	if err != nil {
		return ""
	}
	folded = strings.NewReplacer(" ", "", "'", "").Replace(folded)
	return strings.ToLower(folded)
}

var (
	lowerIT = cases.Lower(language.Italian)
	upperIT = cases.Upper(language.Italian)
)

// Capitalize trims s and returns it with the first letter upper-cased and the
// rest lower-cased ("dE luca" -> "De luca"). It is applied to form input before
// it reaches the generators.
func Capitalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	for i := range s {
		if i == 0 {
			continue
		}
		return upperIT.String(s[:i]) + lowerIT.String(s[i:])
	}
	return upperIT.String(s)
}
