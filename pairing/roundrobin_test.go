package pairing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundRobinCoverageEvenField(t *testing.T) {
	params := testParams(PolicyRoundRobin, freshField(6))
	params.TotalRounds = 5

	met := map[pairKey]int{}
	for r := 1; r <= 5; r++ {
		params.Round = r
		round, err := GeneratePairings(params)
		require.NoError(t, err)
		require.Nil(t, round.Bye)
		require.Len(t, round.Matches, 3)
		for _, m := range round.Matches {
			met[makePairKey(m.P1, m.P2)]++
		}
	}

	require.Len(t, met, 15, "every pair must meet")
	for key, n := range met {
		require.Equal(t, 1, n, "pair %v met %d times", key, n)
	}
}

func TestRoundRobinOddFieldRotatesBye(t *testing.T) {
	params := testParams(PolicyRoundRobin, freshField(5))
	params.TotalRounds = 5

	met := map[pairKey]int{}
	byes := map[int]bool{}
	for r := 1; r <= 5; r++ {
		params.Round = r
		round, err := GeneratePairings(params)
		require.NoError(t, err)
		require.NotNil(t, round.Bye)
		require.False(t, byes[*round.Bye], "competitor %d sat out twice", *round.Bye)
		byes[*round.Bye] = true
		require.Len(t, round.Matches, 2)
		for _, m := range round.Matches {
			met[makePairKey(m.P1, m.P2)]++
		}
	}

	require.Len(t, byes, 5, "every competitor sits out exactly once")
	require.Len(t, met, 10, "every pair must meet")
}

func TestRoundRobinIgnoresResults(t *testing.T) {
	fresh := testParams(PolicyRoundRobin, freshField(6))
	fresh.TotalRounds = 5
	fresh.Round = 3

	base, err := GeneratePairings(fresh)
	require.NoError(t, err)

	// same field with wildly different points; the circle schedule must not move
	upset := freshField(6)
	for i := range upset {
		upset[i].Points = float64(len(upset) - i%3)
		upset[i].Spread = 100 - 40*i
	}
	params := testParams(PolicyRoundRobin, upset)
	params.TotalRounds = 5
	params.Round = 3

	got, err := GeneratePairings(params)
	require.NoError(t, err)

	want := map[pairKey]bool{}
	for _, m := range base.Matches {
		want[makePairKey(m.P1, m.P2)] = true
	}
	for _, m := range got.Matches {
		require.True(t, want[makePairKey(m.P1, m.P2)], "match %d vs %d is off schedule", m.P1, m.P2)
	}
	require.Len(t, got.Matches, len(base.Matches))
}

func TestRoundRobinInfeasible(t *testing.T) {
	params := testParams(PolicyRoundRobin, freshField(6))
	params.TotalRounds = 4

	_, err := GeneratePairings(params)
	require.ErrorIs(t, err, ErrScheduleInfeasible, "five rounds are needed for six competitors")

	params.TotalRounds = 5
	params.Round = 6
	_, err = GeneratePairings(params)
	require.ErrorIs(t, err, ErrScheduleInfeasible, "the circle schedule has no sixth round")
}

func TestRoundRobinFlagsScheduledRematch(t *testing.T) {
	params := testParams(PolicyRoundRobin, freshField(4))
	params.TotalRounds = 3
	params.Round = 1
	params.Ledger = NewRematchLedger([]PlayedMatch{{Round: 1, P1: 1, P2: 4}})

	round, err := GeneratePairings(params)
	require.NoError(t, err)
	require.Equal(t, [][2]int{{1, 4}, {2, 3}}, pairList(round))
	require.True(t, round.Matches[0].Rematch)
	require.False(t, round.Matches[1].Rematch)
}
