package extract

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransform strips combining marks so "Fès" and "Tétouan" match their
// plain-ASCII gazetteer keys.
var foldTransform = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lower-cases and removes diacritics, the normal form every lexicon
// and gazetteer in this module is keyed by.
func Fold(s string) string {
	return fold(s)
}

// fold lower-cases and removes diacritics. Arabic script passes through
// unchanged apart from stray tashkeel marks.
func fold(s string) string {
	out, _, err := transform.String(foldTransform, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}

func containsArabic(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Arabic, r) {
			return true
		}
	}
	return false
}

// tokens splits folded text on anything that is not a letter or digit.
func tokens(folded string) []string {
	return strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// latinDigits maps Arabic-Indic digits onto ASCII ones; everything else is
// kept as is.
func latinDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '٠' && r <= '٩' {
			return '0' + (r - '٠')
		}
		return r
	}, s)
}
