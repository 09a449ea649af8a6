package extract

import (
	"regexp"
	"strings"
)

const maxAddressRunes = 120

// addressKeywords are street/block/district/number markers across the
// supported languages. A sentence with none of them is never treated as an
// address.
var addressKeywords = []string{
	"rue", "avenue", "boulevard", "bd", "hay", "derb", "quartier",
	"residence", "immeuble", "appartement", "appt", "apt", "etage",
	"lotissement", "lot", "bloc", "villa", "zanqa", "zanka", "douar",
	"numero", "n°", "adresse",
	"شارع", "زنقة", "حي", "درب", "اقامة", "عمارة", "شقة",
	"رقم", "دوار", "عنوان", "تجزئة",
}

var sentenceSplitRe = regexp.MustCompile(`[.!?؟\n]+`)
var spaceRe = regexp.MustCompile(`\s+`)

// extractAddress returns the first keyword-bearing sentence with the
// already-extracted name and city substrings stripped out. Addresses are
// inherently noisy, so the result is always low confidence.
func extractAddress(text, name, city string) (string, Confidence) {
	for _, sentence := range sentenceSplitRe.Split(text, -1) {
		if !hasAddressKeyword(sentence) {
			continue
		}
		addr := sentence
		for _, strip := range []string{name, city} {
			if strip == "" {
				continue
			}
			re, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(strip))
			if err == nil {
				addr = re.ReplaceAllString(addr, " ")
			}
		}
		addr = strings.Trim(spaceRe.ReplaceAllString(addr, " "), " ,.-:;")
		if addr == "" {
			continue
		}
		if runes := []rune(addr); len(runes) > maxAddressRunes {
			addr = string(runes[:maxAddressRunes])
		}
		return addr, ConfidenceLow
	}
	return "", ConfidenceNone
}

func hasAddressKeyword(sentence string) bool {
	folded := fold(sentence)
	tokenSet := map[string]bool{}
	for _, tok := range tokens(folded) {
		tokenSet[tok] = true
	}
	for _, kw := range addressKeywords {
		// Short Latin keywords must match whole tokens; Arabic and
		// symbol-bearing markers match by containment.
		if kw[0] < 0x80 && !strings.ContainsAny(kw, "° ") {
			if tokenSet[kw] {
				return true
			}
			continue
		}
		if strings.Contains(folded, kw) {
			return true
		}
	}
	return false
}
