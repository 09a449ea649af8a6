package extract

import (
	"regexp"
	"strings"
	"unicode"
)

// Explicit self-introduction markers, tried first. A marker hit is high
// confidence.
var nameMarkerRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bmy name is\s+(\p{L}+(?:\s+\p{L}+){0,2})`),
	regexp.MustCompile(`(?i)\bje m'?appelle\s+(\p{L}+(?:\s+\p{L}+){0,2})`),
	regexp.MustCompile(`(?i)\bje suis\s+(\p{L}+(?:\s+\p{L}+){0,2})`),
	regexp.MustCompile(`(?i)\bi am\s+(\p{L}+(?:\s+\p{L}+){0,2})`),
	regexp.MustCompile(`(?i)\bsmiti\s+(\p{L}+(?:\s+\p{L}+){0,2})`),
	regexp.MustCompile(`اسمي\s+(\p{L}+(?:\s+\p{L}+){0,2})`),
	regexp.MustCompile(`سميتي\s+(\p{L}+(?:\s+\p{L}+){0,2})`),
}

// nameStoplist holds folded greetings, politeness words and commerce
// filler that must never be mistaken for a name.
var nameStoplist = map[string]bool{
	"salam": true, "salut": true, "bonjour": true, "bonsoir": true,
	"hello": true, "hi": true, "hey": true, "merci": true, "thanks": true,
	"thank": true, "please": true, "svp": true, "monsieur": true,
	"madame": true, "sir": true, "ok": true, "okay": true,
	"oui": true, "non": true, "yes": true, "no": true, "la": true,
	"ana": true, "ach": true, "wach": true, "labas": true,
	"my": true, "name": true, "is": true, "number": true, "phone": true,
	"the": true, "a": true, "i": true, "to": true, "me": true,
	"want": true, "buy": true, "need": true, "order": true, "send": true,
	"interested": true, "looking": true, "here": true, "not": true,
	"sure": true, "about": true, "just": true, "still": true,
	"from": true, "very": true, "really": true,
	"bghit": true, "nchri": true, "chhal": true, "wakha": true,
	"mon": true, "nom": true, "numero": true, "adresse": true,
	"مرحبا": true, "السلام": true, "سلام": true, "شكرا": true,
	"عليكم": true, "صباح": true, "مساء": true, "الخير": true,
	"نعم": true, "اه": true, "بغيت": true, "واخا": true,
}

// extractName tries self-introduction markers first, then a short-message
// heuristic over the first few tokens.
func extractName(text string) (string, Confidence) {
	for _, re := range nameMarkerRes {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if name := cleanNameTokens(strings.Fields(m[1])); name != "" {
			return name, ConfidenceHigh
		}
	}

	// Heuristic path: only plausible when the whole message is a short
	// reply, typically answering the name prompt.
	toks := strings.Fields(text)
	if len(toks) == 0 || len(toks) > 3 {
		return "", ConfidenceNone
	}
	var run []string
	for _, tok := range toks {
		tok = strings.Trim(tok, ",.!?؟:;\"'()")
		if !nameLikeToken(tok) {
			if len(run) > 0 {
				break
			}
			continue
		}
		run = append(run, tok)
		if len(run) == 3 {
			break
		}
	}
	if len(run) == 0 {
		return "", ConfidenceNone
	}
	name := strings.Join(run, " ")
	if len(run) == len(toks) {
		return name, ConfidenceMedium
	}
	return name, ConfidenceLow
}

// cleanNameTokens drops everything from the first stoplisted or
// implausible token onward.
func cleanNameTokens(toks []string) string {
	var kept []string
	for _, tok := range toks {
		tok = strings.Trim(tok, ",.!?؟:;\"'()")
		if !nameLikeToken(tok) {
			break
		}
		kept = append(kept, tok)
	}
	return strings.Join(kept, " ")
}

// nameLikeToken accepts script-consistent letter runs of plausible length
// that are not stoplisted and not gazetteer cities.
func nameLikeToken(tok string) bool {
	runes := []rune(tok)
	if len(runes) < 2 || len(runes) > 20 {
		return false
	}
	arabic, latin := false, false
	for _, r := range runes {
		if !unicode.IsLetter(r) {
			return false
		}
		if unicode.Is(unicode.Arabic, r) {
			arabic = true
		} else {
			latin = true
		}
	}
	if arabic && latin {
		return false
	}
	folded := fold(tok)
	if nameStoplist[folded] {
		return false
	}
	if _, isCity := cityVariants[folded]; isCity {
		return false
	}
	return true
}
