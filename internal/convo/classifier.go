package convo

import (
	"strings"
	"unicode"

	"github.com/ysbenali/wasales-bridge/internal/extract"
)

// Verdict of a confirmation reply.
type Verdict int

const (
	VerdictAmbiguous Verdict = iota
	VerdictAffirmative
	VerdictNegative
)

func (v Verdict) String() string {
	switch v {
	case VerdictAffirmative:
		return "affirmative"
	case VerdictNegative:
		return "negative"
	default:
		return "ambiguous"
	}
}

type lexicon struct {
	affirmative []string
	negative    []string
}

// Per-language token lists. Single words match whole tokens so that "no"
// never fires inside "number"; entries with a space or apostrophe match by
// containment.
var lexicons = map[string]lexicon{
	"en": {
		affirmative: []string{"yes", "yeah", "yep", "ok", "okay", "correct", "right", "good", "confirm", "confirmed"},
		negative:    []string{"no", "nope", "wrong", "incorrect", "cancel"},
	},
	"fr": {
		affirmative: []string{"oui", "ouais", "d'accord", "daccord", "parfait", "exact", "c'est bon", "bien sur"},
		negative:    []string{"non", "faux", "pas bon", "annuler"},
	},
	"ar": {
		affirmative: []string{"نعم", "اه", "ايه", "صحيح", "واخا", "تمام", "مزيان", "اوكي"},
		negative:    []string{"لا", "غلط", "خطا", "ماشي", "ما بغيتش"},
	},
	"dr": {
		affirmative: []string{"wakha", "wa5a", "ah", "iyeh", "iyyeh", "mezyan", "tmam", "sa7i7"},
		negative:    []string{"la", "lla", "machi", "ghalat", "mabghitch"},
	},
}

// Cross-language sets, consulted regardless of the detected language.
var crossLexicon = lexicon{
	affirmative: []string{"yes", "ok", "oui", "👍", "✅", "👌"},
	negative:    []string{"no", "non", "👎", "❌"},
}

// Classify tags a free-text reply during a confirmation state. Unknown
// language falls back to consulting every list. Negative wins over
// affirmative so "no thanks" is a refusal.
func Classify(text, language string) Verdict {
	folded := extract.Fold(text)
	tokenSet := make(map[string]bool)
	for _, tok := range strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		tokenSet[tok] = true
	}

	lexes := []lexicon{crossLexicon}
	if lex, ok := lexicons[language]; ok {
		lexes = append(lexes, lex)
	} else {
		for _, lex := range lexicons {
			lexes = append(lexes, lex)
		}
	}

	match := func(entries []string) bool {
		for _, entry := range entries {
			if strings.ContainsAny(entry, " '") {
				if strings.Contains(folded, entry) {
					return true
				}
				continue
			}
			if tokenSet[entry] || (!isWordEntry(entry) && strings.Contains(folded, entry)) {
				return true
			}
		}
		return false
	}

	for _, lex := range lexes {
		if match(lex.negative) {
			return VerdictNegative
		}
	}
	for _, lex := range lexes {
		if match(lex.affirmative) {
			return VerdictAffirmative
		}
	}
	return VerdictAmbiguous
}

// isWordEntry distinguishes letter tokens from emoji entries.
func isWordEntry(entry string) bool {
	for _, r := range entry {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
