package extract

import (
	"regexp"
	"strings"
)

// Canonical international form: +212 followed by a 9-digit mobile number
// starting with 6 or 7.
var canonicalPhoneRe = regexp.MustCompile(`^\+212[67]\d{8}$`)

// phoneCandidateRe matches phone-looking digit runs, tolerant of the
// spaces, dots and dashes people type between digit groups.
var phoneCandidateRe = regexp.MustCompile(`\+?\d[\d\s.\-]{7,}\d`)

// extractPhone finds the first candidate that survives normalization into
// the canonical form. Multiple phone-like substrings: first valid one wins.
func extractPhone(text string) (string, Confidence) {
	for _, raw := range phoneCandidateRe.FindAllString(latinDigits(text), -1) {
		if normalized, ok := normalizePhone(raw); ok {
			return normalized, ConfidenceHigh
		}
	}
	return "", ConfidenceNone
}

// normalizePhone applies the regional prefix rules in order: international
// prefix (+212 / 00212), leading trunk zero, bare 9-digit subscriber
// number. Anything that does not end up canonical is rejected.
func normalizePhone(raw string) (string, bool) {
	var b strings.Builder
	for i, r := range raw {
		switch {
		case r == '+' && i == 0:
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		}
	}
	digits := b.String()

	var candidate string
	switch {
	case strings.HasPrefix(digits, "+212"):
		candidate = digits
	case strings.HasPrefix(digits, "00212"):
		candidate = "+" + digits[2:]
	case strings.HasPrefix(digits, "212") && len(digits) == 12:
		candidate = "+" + digits
	case strings.HasPrefix(digits, "0") && len(digits) == 10:
		candidate = "+212" + digits[1:]
	case len(digits) == 9:
		candidate = "+212" + digits
	default:
		return "", false
	}

	if !canonicalPhoneRe.MatchString(candidate) {
		return "", false
	}
	return candidate, true
}

// IsCanonicalPhone reports whether v already has the canonical shape. Used
// to validate model-suggested values before trusting them.
func IsCanonicalPhone(v string) bool {
	return canonicalPhoneRe.MatchString(v)
}
