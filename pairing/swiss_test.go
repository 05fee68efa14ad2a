package pairing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSwissPairsAdjacentRanks(t *testing.T) {
	round, err := GeneratePairings(testParams(PolicySwiss, freshField(8)))
	require.NoError(t, err)
	require.Equal(t, [][2]int{{1, 2}, {3, 4}, {5, 6}, {7, 8}}, pairList(round))
	require.Nil(t, round.Bye)
}

func TestSwissPairsByCurrentStanding(t *testing.T) {
	standings := []Standing{
		{CompetitorID: 1, Rating: 1800, Points: 1, Spread: -20},
		{CompetitorID: 2, Rating: 1700, Points: 2, Spread: 40},
		{CompetitorID: 3, Rating: 1600, Points: 2, Spread: 90},
		{CompetitorID: 4, Rating: 1500, Points: 1, Spread: 30},
	}

	round, err := GeneratePairings(testParams(PolicySwiss, standings))
	require.NoError(t, err)
	require.Equal(t, [][2]int{{3, 2}, {4, 1}}, pairList(round),
		"adjacency follows points and spread, not seeding")
}
