package pairing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFonteSwissSingleGroup(t *testing.T) {
	round, err := GeneratePairings(testParams(PolicyFonteSwiss, freshField(8)))
	require.NoError(t, err)
	require.Equal(t, [][2]int{{1, 5}, {2, 6}, {3, 7}, {4, 8}}, pairList(round),
		"one score group folds top half onto bottom half")
}

func TestFonteSwissGroupsByPoints(t *testing.T) {
	standings := []Standing{
		{CompetitorID: 1, Rating: 1800, Points: 2, Spread: 80},
		{CompetitorID: 2, Rating: 1750, Points: 2, Spread: 60},
		{CompetitorID: 3, Rating: 1700, Points: 2, Spread: 40},
		{CompetitorID: 4, Rating: 1650, Points: 2, Spread: 20},
		{CompetitorID: 5, Rating: 1600, Points: 1, Spread: 0},
		{CompetitorID: 6, Rating: 1550, Points: 1, Spread: -20},
		{CompetitorID: 7, Rating: 1500, Points: 0, Spread: -40},
		{CompetitorID: 8, Rating: 1450, Points: 0, Spread: -60},
	}

	round, err := GeneratePairings(testParams(PolicyFonteSwiss, standings))
	require.NoError(t, err)
	require.Equal(t, [][2]int{{1, 3}, {2, 4}, {5, 6}, {7, 8}}, pairList(round),
		"each score group pairs internally, top half versus bottom half")
}

func TestFonteSwissOddGroupFallsThrough(t *testing.T) {
	standings := []Standing{
		{CompetitorID: 1, Rating: 1800, Points: 2, Spread: 50},
		{CompetitorID: 2, Rating: 1750, Points: 2, Spread: 40},
		{CompetitorID: 3, Rating: 1700, Points: 2, Spread: 30},
		{CompetitorID: 4, Rating: 1650, Points: 2, Spread: 20},
		{CompetitorID: 5, Rating: 1600, Points: 2, Spread: 10},
		{CompetitorID: 6, Rating: 1550, Points: 0, Spread: 0},
		{CompetitorID: 7, Rating: 1500, Points: 0, Spread: -10},
		{CompetitorID: 8, Rating: 1450, Points: 0, Spread: -20},
	}

	round, err := GeneratePairings(testParams(PolicyFonteSwiss, standings))
	require.NoError(t, err)
	require.Equal(t, [][2]int{{1, 3}, {2, 4}, {5, 7}, {6, 8}}, pairList(round),
		"the odd group's last member drops down to head the next group")
}

func TestFonteSwissRematchSlidesWithinHalves(t *testing.T) {
	params := testParams(PolicyFonteSwiss, freshField(4))
	params.Policy.AvoidRematches = true
	params.Ledger = NewRematchLedger([]PlayedMatch{{Round: 1, P1: 1, P2: 3}})

	round, err := GeneratePairings(params)
	require.NoError(t, err)
	require.Equal(t, [][2]int{{1, 4}, {2, 3}}, pairList(round))
	for _, m := range round.Matches {
		require.False(t, m.Rematch)
	}
}

func TestFonteSwissRematchSwapRecutsEarlierPair(t *testing.T) {
	// 2 has met both bottom-half competitors, so sliding inside the half
	// cannot help; exchanging with the already-formed (1,3) leaves
	// (1,2)+(3,4), both fresh.
	params := testParams(PolicyFonteSwiss, freshField(4))
	params.Policy.AvoidRematches = true
	params.Ledger = NewRematchLedger([]PlayedMatch{
		{Round: 1, P1: 2, P2: 3},
		{Round: 2, P1: 2, P2: 4},
	})

	round, err := GeneratePairings(params)
	require.NoError(t, err)
	require.Equal(t, [][2]int{{1, 2}, {3, 4}}, pairList(round))
	for _, m := range round.Matches {
		require.False(t, m.Rematch)
	}
}

func TestFonteSwissOddFieldTakesBye(t *testing.T) {
	round, err := GeneratePairings(testParams(PolicyFonteSwiss, freshField(7)))
	require.NoError(t, err)
	require.NotNil(t, round.Bye)
	require.Equal(t, 7, *round.Bye)
	require.Equal(t, [][2]int{{1, 4}, {2, 5}, {3, 6}}, pairList(round))
}
