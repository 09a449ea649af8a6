// Package extract turns raw chat text into candidate customer fields
// (name, city, address, phone) with a per-field confidence tag and a
// language guess. The deterministic path is rule-based and pure; an
// optional model-assisted path runs behind the ai.AI port and falls back
// to the deterministic result on any failure.
package extract

import "strings"

// Confidence is the qualitative certainty tag attached to an extracted
// field value. Ordering matters: a candidate never replaces a value that
// was stored with strictly higher confidence.
type Confidence int

const (
	ConfidenceNone Confidence = iota
	ConfidenceLow
	ConfidenceMedium
	ConfidenceHigh
)

func (c Confidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceLow:
		return "low"
	default:
		return "none"
	}
}

// ParseConfidence maps the wire form back to a level. The bool reports
// whether the input was one of the four allowed values.
func ParseConfidence(s string) (Confidence, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high":
		return ConfidenceHigh, true
	case "medium":
		return ConfidenceMedium, true
	case "low":
		return ConfidenceLow, true
	case "none", "":
		return ConfidenceNone, true
	}
	return ConfidenceNone, false
}

// Source tells which path produced a result.
type Source string

const (
	SourcePattern Source = "pattern"
	SourceModel   Source = "model"
)

type Field string

const (
	FieldName    Field = "name"
	FieldCity    Field = "city"
	FieldAddress Field = "address"
	FieldPhone   Field = "phone"
)

// Candidate is one extracted value with its confidence.
type Candidate struct {
	Value      string
	Confidence Confidence
}

// Result is the outcome of one extraction run. Ephemeral: consumed by the
// state machine, never persisted.
type Result struct {
	Name     Candidate
	City     Candidate
	Address  Candidate
	Phone    Candidate
	Source   Source
	Language string
	// FollowUp is a model-suggested next question; empty on the
	// deterministic path.
	FollowUp string
}

// Missing lists the fields still unresolved, in prompt-priority order.
func (r Result) Missing() []Field {
	var out []Field
	if r.Name.Confidence == ConfidenceNone {
		out = append(out, FieldName)
	}
	if r.City.Confidence == ConfidenceNone {
		out = append(out, FieldCity)
	}
	if r.Phone.Confidence == ConfidenceNone {
		out = append(out, FieldPhone)
	}
	if r.Address.Confidence == ConfidenceNone {
		out = append(out, FieldAddress)
	}
	return out
}

// Any reports whether at least one field was resolved.
func (r Result) Any() bool {
	return r.Name.Confidence != ConfidenceNone ||
		r.City.Confidence != ConfidenceNone ||
		r.Address.Confidence != ConfidenceNone ||
		r.Phone.Confidence != ConfidenceNone
}

// Extract runs the deterministic rule-based pipeline. Pure, bounded, no
// network. Empty or whitespace-only input yields an all-none result.
func Extract(text string) Result {
	res := Result{Source: SourcePattern, Language: DetectLanguage(text)}

	text = strings.TrimSpace(text)
	if text == "" {
		return res
	}

	res.Phone.Value, res.Phone.Confidence = extractPhone(text)
	res.City.Value, res.City.Confidence = extractCity(text)
	res.Name.Value, res.Name.Confidence = extractName(text)
	res.Address.Value, res.Address.Confidence = extractAddress(text, res.Name.Value, res.City.Value)

	return res
}

// DetectLanguage makes a cheap script/token guess: "ar" for Arabic script,
// "dr" for Latin-script Darija, "fr" for French markers, "en" otherwise.
func DetectLanguage(text string) string {
	if containsArabic(text) {
		return "ar"
	}
	folded := fold(text)
	for _, tok := range tokens(folded) {
		if darijaTokens[tok] {
			return "dr"
		}
	}
	if strings.ContainsAny(text, "àâçéèêëîïôùûü") {
		return "fr"
	}
	for _, tok := range tokens(folded) {
		if frenchTokens[tok] {
			return "fr"
		}
	}
	return "en"
}

var darijaTokens = map[string]bool{
	"bghit": true, "bghyt": true, "wakha": true, "smiti": true,
	"chhal": true, "ch7al": true, "nchri": true, "mezyan": true,
	"labas": true, "wach": true, "kayn": true, "dyal": true,
}

var frenchTokens = map[string]bool{
	"bonjour": true, "bonsoir": true, "je": true, "oui": true,
	"habite": true, "appelle": true, "monsieur": true, "madame": true,
	"commander": true, "acheter": true, "prix": true, "combien": true,
	"numero": true, "adresse": true, "ville": true, "merci": true,
}
