package convo

import (
	"strings"
	"unicode"

	"github.com/ysbenali/wasales-bridge/internal/extract"
)

// Advice is the advisor's suggestion for one inbound message.
type Advice struct {
	ShouldAdvance bool
	ProposedState State
	Confidence    extract.Confidence
}

// Advisor watches casual conversation for buying intent, volunteered
// personal data and engagement, and nudges the machine forward without
// the linear script. Only consulted in natural mode, and its output goes
// through the same merge and completeness gates as a normal extraction —
// it can propose entering INFO_COLLECTION, never skipping past it.
type Advisor struct{}

func (Advisor) Advise(conv Conversation, text string, res extract.Result) Advice {
	if conv.State != StateGreeting && conv.State != StateIdle && conv.State != StateProductInquiry {
		return Advice{}
	}

	switch {
	case hasPurchaseIntent(text):
		return Advice{ShouldAdvance: true, ProposedState: StateInfoCollection, Confidence: extract.ConfidenceHigh}
	case res.Any():
		// volunteered personal data
		return Advice{ShouldAdvance: true, ProposedState: StateInfoCollection, Confidence: extract.ConfidenceMedium}
	case conv.State == StateProductInquiry && isEngaged(text):
		return Advice{ShouldAdvance: true, ProposedState: StateInfoCollection, Confidence: extract.ConfidenceLow}
	}
	return Advice{}
}

// purchaseIntentTokens across the supported languages; single words match
// whole tokens, phrases by containment.
var purchaseIntentTokens = []string{
	"buy", "order", "price", "purchase", "how much",
	"acheter", "commander", "commande", "prix", "combien",
	"bghit", "bghyt", "nchri", "chhal", "ch7al", "taman",
	"بغيت", "نشري", "شحال", "الثمن", "ثمن", "طلب", "اشتري",
}

// hasPurchaseIntent is shared with the strict machine: it is the
// PRODUCT_INQUIRY trigger lexicon.
func hasPurchaseIntent(text string) bool {
	folded := extract.Fold(text)
	tokenSet := make(map[string]bool)
	for _, tok := range strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		tokenSet[tok] = true
	}
	for _, entry := range purchaseIntentTokens {
		if strings.Contains(entry, " ") {
			if strings.Contains(folded, entry) {
				return true
			}
			continue
		}
		if tokenSet[entry] {
			return true
		}
	}
	return false
}

// isEngaged is the softest signal: a question or a reply of real length.
func isEngaged(text string) bool {
	if strings.ContainsAny(text, "?؟") {
		return true
	}
	return len(strings.Fields(text)) >= 4
}
