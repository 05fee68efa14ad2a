package pairing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKingOfHillPairsExtremes(t *testing.T) {
	round, err := GeneratePairings(testParams(PolicyKingOfHill, freshField(6)))
	require.NoError(t, err)
	require.Equal(t, [][2]int{{1, 6}, {2, 5}, {3, 4}}, pairList(round))
}

func TestKingOfHillOddFieldTakesBye(t *testing.T) {
	round, err := GeneratePairings(testParams(PolicyKingOfHill, freshField(5)))
	require.NoError(t, err)
	require.NotNil(t, round.Bye)
	require.Equal(t, 5, *round.Bye)
	require.Equal(t, [][2]int{{1, 4}, {2, 3}}, pairList(round))
}

func TestKingOfHillRematchSwapRecutsEarlierPair(t *testing.T) {
	// The fold forms (1,4) first and traps 2 on its old opponent 3; recutting
	// into (1,2)+(4,3) clears the repeat.
	params := testParams(PolicyKingOfHill, freshField(4))
	params.Policy.AvoidRematches = true
	params.Ledger = NewRematchLedger([]PlayedMatch{{Round: 1, P1: 2, P2: 3}})

	round, err := GeneratePairings(params)
	require.NoError(t, err)
	require.Equal(t, [][2]int{{1, 2}, {4, 3}}, pairList(round))
	for _, m := range round.Matches {
		require.False(t, m.Rematch)
	}
}

func TestKingOfHillRematchSlide(t *testing.T) {
	params := testParams(PolicyKingOfHill, freshField(6))
	params.Policy.AvoidRematches = true
	params.Ledger = NewRematchLedger([]PlayedMatch{{Round: 1, P1: 1, P2: 6}})

	round, err := GeneratePairings(params)
	require.NoError(t, err)
	require.Equal(t, [][2]int{{1, 5}, {2, 6}, {3, 4}}, pairList(round),
		"the slide gives the leader the next opponent in from the bottom")
	for _, m := range round.Matches {
		require.False(t, m.Rematch)
	}
}
