package phonetic

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// soundexClean keeps only alphabetic runes and upper-cases them. All
// soundex-family encoders share this preprocessing, which is what makes
// hyphens, apostrophes and surrounding whitespace transparent.
func soundexClean(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}

func isVowel(r rune, includeY bool) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	case 'y':
		return includeY
	}
	return false
}

var diacriticStripper = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// RemoveDiacritics decomposes the input and drops combining marks, so
// "é" becomes "e". Runes that do not decompose (ß, ø...) pass through
// unchanged; encoders needing those handle them with explicit tables.
func RemoveDiacritics(s string) string {
	out, _, err := transform.String(diacriticStripper, s)
	if err != nil {
		return s
	}
	return out
}
