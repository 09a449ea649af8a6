package convo

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ysbenali/wasales-bridge/internal/extract"
)

func TestAdvisor_PurchaseIntent(t *testing.T) {
	var a Advisor
	conv := Conversation{State: StateGreeting}

	adv := a.Advise(conv, "bghit nchri wa7ed", extract.Extract("bghit nchri wa7ed"))
	require.True(t, adv.ShouldAdvance)
	require.Equal(t, StateInfoCollection, adv.ProposedState)
	require.Equal(t, extract.ConfidenceHigh, adv.Confidence)
}

func TestAdvisor_VolunteeredInfo(t *testing.T) {
	var a Advisor
	conv := Conversation{State: StateGreeting}

	adv := a.Advise(conv, "smiti Ahmed", extract.Extract("smiti Ahmed"))
	require.True(t, adv.ShouldAdvance)
	require.Equal(t, StateInfoCollection, adv.ProposedState)
}

func TestAdvisor_Engagement(t *testing.T) {
	var a Advisor
	conv := Conversation{State: StateProductInquiry}

	adv := a.Advise(conv, "does it come in black?", extract.Extract("does it come in black?"))
	require.True(t, adv.ShouldAdvance)
	require.Equal(t, extract.ConfidenceLow, adv.Confidence)
}

func TestAdvisor_SilentPastCollection(t *testing.T) {
	var a Advisor
	for _, state := range []State{StateInfoCollection, StatePhoneConfirmation, StateOrderConfirmation, StateCompleted} {
		conv := Conversation{State: state}
		adv := a.Advise(conv, "bghit nchri", extract.Extract("bghit nchri"))
		require.False(t, adv.ShouldAdvance, "state %s", state)
	}
}

func TestAdvisor_QuietOnSmallTalk(t *testing.T) {
	var a Advisor
	conv := Conversation{State: StateGreeting}

	adv := a.Advise(conv, "salam", extract.Extract("salam"))
	require.False(t, adv.ShouldAdvance)
}
