package convo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify_Affirmative(t *testing.T) {
	cases := []struct {
		text string
		lang string
	}{
		{"yes", "en"},
		{"Yes please", "en"},
		{"ok", "en"},
		{"👍", "en"},
		{"oui", "fr"},
		{"D'accord !", "fr"},
		{"نعم", "ar"},
		{"واخا", "ar"},
		{"wakha", "dr"},
		{"ok", ""}, // unknown language still resolves via the cross set
	}
	for _, tc := range cases {
		require.Equal(t, VerdictAffirmative, Classify(tc.text, tc.lang), "text %q lang %q", tc.text, tc.lang)
	}
}

func TestClassify_Negative(t *testing.T) {
	cases := []struct {
		text string
		lang string
	}{
		{"no", "en"},
		{"no thanks", "en"},
		{"the number is wrong", "en"},
		{"non merci", "fr"},
		{"لا", "ar"},
		{"machi hadak", "dr"},
		{"👎", "en"},
	}
	for _, tc := range cases {
		require.Equal(t, VerdictNegative, Classify(tc.text, tc.lang), "text %q lang %q", tc.text, tc.lang)
	}
}

func TestClassify_Ambiguous(t *testing.T) {
	cases := []struct {
		text string
		lang string
	}{
		{"I was wondering about the delivery time", "en"},
		{"hmm", "en"},
		{"peut-etre", "fr"},
		{"", "en"},
		// "no" must not fire inside "number"
		{"number", "en"},
	}
	for _, tc := range cases {
		require.Equal(t, VerdictAmbiguous, Classify(tc.text, tc.lang), "text %q lang %q", tc.text, tc.lang)
	}
}

func TestClassify_NegativeBeatsAffirmative(t *testing.T) {
	require.Equal(t, VerdictNegative, Classify("no, not ok", "en"))
}
