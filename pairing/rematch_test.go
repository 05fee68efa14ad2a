package pairing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRematchLedger(t *testing.T) {
	history := []PlayedMatch{
		{Round: 1, P1: 1, P2: 2, FirstMove: 1},
		{Round: 1, P1: 3, Bye: true},
		{Round: 2, P1: 2, P2: 3, FirstMove: 3},
	}
	ledger := NewRematchLedger(history)

	require.True(t, ledger.HasPlayed(1, 2))
	require.True(t, ledger.HasPlayed(2, 1), "the ledger is order-independent")
	require.True(t, ledger.HasPlayed(2, 3))
	require.False(t, ledger.HasPlayed(1, 3), "a bye is not a meeting")

	var nilLedger *RematchLedger
	require.False(t, nilLedger.HasPlayed(1, 2))
}

func TestByeCounts(t *testing.T) {
	history := []PlayedMatch{
		{Round: 1, P1: 1, P2: 2},
		{Round: 1, P1: 3, Bye: true},
		{Round: 2, P1: 3, Bye: true},
		{Round: 3, P1: 1, Bye: true},
	}
	require.Equal(t, map[int]int{1: 1, 3: 2}, ByeCounts(history))
}

func TestSwissRematchSlide(t *testing.T) {
	params := testParams(PolicySwiss, freshField(4))
	params.Policy.AvoidRematches = true
	params.Ledger = NewRematchLedger([]PlayedMatch{{Round: 1, P1: 1, P2: 2}})

	round, err := GeneratePairings(params)
	require.NoError(t, err)
	require.Equal(t, [][2]int{{1, 3}, {2, 4}}, pairList(round))
	for _, m := range round.Matches {
		require.False(t, m.Rematch)
	}
}

func TestSwissRematchFlagWithoutAvoidance(t *testing.T) {
	params := testParams(PolicySwiss, freshField(4))
	params.Ledger = NewRematchLedger([]PlayedMatch{{Round: 1, P1: 1, P2: 2}})

	round, err := GeneratePairings(params)
	require.NoError(t, err)
	require.Equal(t, [][2]int{{1, 2}, {3, 4}}, pairList(round))
	require.True(t, round.Matches[0].Rematch, "a repeated pair is flagged even when avoidance is off")
	require.False(t, round.Matches[1].Rematch)
}

func TestSwissRematchScanBudget(t *testing.T) {
	history := []PlayedMatch{
		{Round: 1, P1: 1, P2: 2},
		{Round: 2, P1: 1, P2: 3},
		{Round: 3, P1: 1, P2: 4},
	}

	unlimited := testParams(PolicySwiss, freshField(6))
	unlimited.Policy.AvoidRematches = true
	unlimited.Ledger = NewRematchLedger(history)

	round, err := GeneratePairings(unlimited)
	require.NoError(t, err)
	require.Equal(t, [][2]int{{1, 5}, {2, 3}, {4, 6}}, pairList(round),
		"the full scan walks out to the first fresh opponent")
	require.False(t, round.Matches[0].Rematch)

	capped := testParams(PolicySwiss, freshField(6))
	capped.Policy.AvoidRematches = true
	capped.Policy.RematchScanLimit = 2
	capped.Ledger = NewRematchLedger(history)

	round, err = GeneratePairings(capped)
	require.NoError(t, err)
	require.Equal(t, [][2]int{{1, 2}, {3, 4}, {5, 6}}, pairList(round),
		"a spent budget falls back to the preferred opponent")
	require.True(t, round.Matches[0].Rematch)
}

func TestSwissRematchSwapRecutsEarlierPair(t *testing.T) {
	// Top-down pairing forms (1,2) first and leaves 3 and 4 trapped on their
	// old match, yet (1,3)+(2,4) is rematch-free. The swap must find it.
	params := testParams(PolicySwiss, freshField(4))
	params.Policy.AvoidRematches = true
	params.Ledger = NewRematchLedger([]PlayedMatch{{Round: 1, P1: 3, P2: 4}})

	round, err := GeneratePairings(params)
	require.NoError(t, err)
	require.Equal(t, [][2]int{{1, 3}, {2, 4}}, pairList(round))
	for _, m := range round.Matches {
		require.False(t, m.Rematch)
	}
}

func TestSwissRematchSwapTriesBothExchanges(t *testing.T) {
	// 1 already met 3, so the straight recut (1,3)+(2,4) is no good; the
	// mirrored one (2,3)+(1,4) is.
	params := testParams(PolicySwiss, freshField(4))
	params.Policy.AvoidRematches = true
	params.Ledger = NewRematchLedger([]PlayedMatch{
		{Round: 1, P1: 3, P2: 4},
		{Round: 2, P1: 1, P2: 3},
	})

	round, err := GeneratePairings(params)
	require.NoError(t, err)
	require.Equal(t, [][2]int{{2, 3}, {1, 4}}, pairList(round))
	for _, m := range round.Matches {
		require.False(t, m.Rematch)
	}
}

func TestSwissRematchStandsWhenNoSwapHelps(t *testing.T) {
	// 3 has met everyone above: no exchange yields two fresh pairs, so the
	// rematch is accepted and flagged.
	params := testParams(PolicySwiss, freshField(4))
	params.Policy.AvoidRematches = true
	params.Ledger = NewRematchLedger([]PlayedMatch{
		{Round: 1, P1: 3, P2: 4},
		{Round: 2, P1: 1, P2: 3},
		{Round: 3, P1: 2, P2: 3},
	})

	round, err := GeneratePairings(params)
	require.NoError(t, err)
	require.Equal(t, [][2]int{{1, 2}, {3, 4}}, pairList(round))
	require.False(t, round.Matches[0].Rematch)
	require.True(t, round.Matches[1].Rematch, "an unresolvable rematch degrades, never fails")
}

func TestSwissAllOpponentsExhausted(t *testing.T) {
	params := testParams(PolicySwiss, freshField(2))
	params.Policy.AvoidRematches = true
	params.Ledger = NewRematchLedger([]PlayedMatch{{Round: 1, P1: 1, P2: 2}})

	round, err := GeneratePairings(params)
	require.NoError(t, err)
	require.Equal(t, [][2]int{{1, 2}}, pairList(round))
	require.True(t, round.Matches[0].Rematch, "an unavoidable rematch degrades, never fails")
}
