package extract

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtract_FullIntroduction(t *testing.T) {
	res := Extract("My name is Ahmed, I live in Casablanca, my number is 0661234567")

	require.Equal(t, "Ahmed", res.Name.Value)
	require.Equal(t, ConfidenceHigh, res.Name.Confidence)
	require.Equal(t, "Casablanca", res.City.Value)
	require.Equal(t, "+212661234567", res.Phone.Value)
	require.Equal(t, ConfidenceHigh, res.Phone.Confidence)
	require.Equal(t, ConfidenceNone, res.Address.Confidence)
	require.Equal(t, SourcePattern, res.Source)
}

func TestExtract_PhoneOnly(t *testing.T) {
	res := Extract("my number is 0622334455")

	require.Equal(t, "+212622334455", res.Phone.Value)
	require.Empty(t, res.Name.Value)
	require.Empty(t, res.City.Value)
}

func TestExtract_EmptyText(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t"} {
		res := Extract(text)
		require.False(t, res.Any())
		require.Equal(t, []Field{FieldName, FieldCity, FieldPhone, FieldAddress}, res.Missing())
	}
}

func TestExtract_PhoneFormats(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"+212661234567", "+212661234567"},
		{"+212 661-234-567", "+212661234567"},
		{"00212661234567", "+212661234567"},
		{"212661234567", "+212661234567"},
		{"0661 23 45 67", "+212661234567"},
		{"661234567", "+212661234567"},
		{"0777777777", "+212777777777"},
		{"٠٦٦١٢٣٤٥٦٧", "+212661234567"},
		// landline prefix and short runs are rejected, not mangled
		{"0512345678", ""},
		{"12345", ""},
		{"order ref 1234567890123456", ""},
	}
	for _, tc := range cases {
		res := Extract(tc.in)
		require.Equal(t, tc.want, res.Phone.Value, "input %q", tc.in)
		if tc.want == "" {
			require.Equal(t, ConfidenceNone, res.Phone.Confidence, "input %q", tc.in)
		}
	}
}

func TestExtract_FirstValidPhoneWins(t *testing.T) {
	res := Extract("call me on 0661234567 or 0777777777")
	require.Equal(t, "+212661234567", res.Phone.Value)
}

func TestExtract_InvalidCandidateSkipped(t *testing.T) {
	// the first phone-like run fails validation; the second must still win
	res := Extract("0512345678 sinon 0661234567")
	require.Equal(t, "+212661234567", res.Phone.Value)
}

func TestExtract_CityVariants(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"ana f casa", "Casablanca"},
		{"je suis à Tanger", "Tangier"},
		{"Fès", "Fes"},
		{"انا من الدار البيضاء", "Casablanca"},
		{"ساكن في مراكش", "Marrakech"},
		{"El Jadida centre", "El Jadida"},
		{"some random town", ""},
	}
	for _, tc := range cases {
		res := Extract(tc.in)
		require.Equal(t, tc.want, res.City.Value, "input %q", tc.in)
	}
}

func TestExtract_NameMarkers(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"je m'appelle Karim", "Karim"},
		{"smiti Yassine", "Yassine"},
		{"اسمي محمد", "محمد"},
		{"My name is Fatima Zahra", "Fatima Zahra"},
	}
	for _, tc := range cases {
		res := Extract(tc.in)
		require.Equal(t, tc.want, res.Name.Value, "input %q", tc.in)
		require.Equal(t, ConfidenceHigh, res.Name.Confidence, "input %q", tc.in)
	}
}

func TestExtract_NameHeuristic(t *testing.T) {
	res := Extract("Ahmed")
	require.Equal(t, "Ahmed", res.Name.Value)
	require.Equal(t, ConfidenceMedium, res.Name.Confidence)

	res = Extract("Ahmed Benali")
	require.Equal(t, "Ahmed Benali", res.Name.Value)
	require.Equal(t, ConfidenceMedium, res.Name.Confidence)
}

func TestExtract_NameStoplist(t *testing.T) {
	for _, text := range []string{"salam", "bonjour merci", "ok", "السلام عليكم"} {
		res := Extract(text)
		require.Empty(t, res.Name.Value, "input %q", text)
	}
}

func TestExtract_LongMessageNoHeuristicName(t *testing.T) {
	// the heuristic only fires on short bare replies
	res := Extract("please send it to the shop near the market")
	require.Empty(t, res.Name.Value)
}

func TestExtract_Address(t *testing.T) {
	res := Extract("rue 10 hay salam numero 5, Casablanca")

	require.Equal(t, ConfidenceLow, res.Address.Confidence)
	require.Contains(t, res.Address.Value, "rue 10")
	require.NotContains(t, res.Address.Value, "Casablanca")
	require.Equal(t, "Casablanca", res.City.Value)
}

func TestExtract_AddressRequiresKeyword(t *testing.T) {
	res := Extract("somewhere near the big mosque")
	require.Equal(t, ConfidenceNone, res.Address.Confidence)
}

func TestExtract_AddressArabic(t *testing.T) {
	res := Extract("العنوان شارع الحسن الثاني رقم 12")
	require.Equal(t, ConfidenceLow, res.Address.Confidence)
	require.Contains(t, res.Address.Value, "شارع")
}

func TestDetectLanguage(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"بغيت نشري", "ar"},
		{"bghit nchri", "dr"},
		{"bonjour je veux commander", "fr"},
		{"Fès", "fr"}, // accented Latin
		{"hello there", "en"},
		{"0661234567", "en"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, DetectLanguage(tc.in), "input %q", tc.in)
	}
}
