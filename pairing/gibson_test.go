package pairing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func rankedStandings(points ...float64) []Standing {
	out := make([]Standing, len(points))
	for i, p := range points {
		out[i] = Standing{CompetitorID: i + 1, Points: p, Rank: i + 1}
	}
	return out
}

func TestDetectGibsonized(t *testing.T) {
	tests := []struct {
		name      string
		points    []float64
		remaining int
		want      []int
	}{
		{name: "leader and mid-table locked", points: []float64{5, 3.5, 3, 1}, remaining: 1, want: []int{1, 3}},
		{name: "more rounds unlock everyone", points: []float64{5, 3.5, 3, 1}, remaining: 2, want: nil},
		{name: "exact catch-up is not clinched", points: []float64{4, 3}, remaining: 1, want: nil},
		{name: "negative remaining clamps to zero", points: []float64{4, 3}, remaining: -1, want: []int{1}},
		{name: "last place never flagged", points: []float64{9, 0}, remaining: 0, want: []int{1}},
		{name: "empty standings", points: nil, remaining: 3, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectGibsonized(rankedStandings(tt.points...), tt.remaining)
			require.Len(t, got, len(tt.want))
			for _, id := range tt.want {
				require.True(t, got[id], "competitor %d should be clinched", id)
			}
		})
	}
}

// A clinched position must stay clinched as rounds run out.
func TestGibsonizationMonotonic(t *testing.T) {
	standings := rankedStandings(6, 3, 2.5, 0)

	prev := map[int]bool{}
	for remaining := 5; remaining >= 0; remaining-- {
		got := DetectGibsonized(standings, remaining)
		for id := range prev {
			require.True(t, got[id], "competitor %d lost clinched status at %d remaining rounds", id, remaining)
		}
		prev = got
	}
	require.Equal(t, map[int]bool{1: true, 2: true, 3: true}, prev)
}

func TestDetectEliminated(t *testing.T) {
	standings := rankedStandings(5, 2, 1)

	require.Empty(t, DetectEliminated(standings, 4), "everyone can still catch 5 points with 4 to play")

	got := DetectEliminated(standings, 2)
	require.Equal(t, map[int]bool{2: true, 3: true}, got)

	got = DetectEliminated(standings, 3)
	require.Equal(t, map[int]bool{3: true}, got, "reaching the leader's total exactly stays alive")

	require.Empty(t, DetectEliminated(nil, 2))
}

func TestClinchedPairTogetherAcrossRanks(t *testing.T) {
	standings := []Standing{
		{CompetitorID: 1, Rating: 1800, Points: 9, Spread: 300},
		{CompetitorID: 2, Rating: 1700, Points: 7.5, Spread: 200},
		{CompetitorID: 3, Rating: 1600, Points: 7, Spread: 100},
		{CompetitorID: 4, Rating: 1500, Points: 4, Spread: -100},
	}

	params := testParams(PolicySwiss, standings)
	params.Policy.Gibsonization = true
	params.Round = 12
	params.TotalRounds = 12

	round, err := GeneratePairings(params)
	require.NoError(t, err)
	require.Equal(t, [][2]int{{1, 3}, {2, 4}}, pairList(round),
		"ranks 1 and 3 are both locked in and meet each other, not the contenders")
	require.True(t, round.Matches[0].P1Clinched)
	require.True(t, round.Matches[0].P2Clinched)
	require.False(t, round.Matches[1].P1Clinched)
	require.False(t, round.Matches[1].P2Clinched)
}

func TestOddClinchedMeetsEliminated(t *testing.T) {
	standings := []Standing{
		{CompetitorID: 1, Rating: 1800, Points: 8, Spread: 300},
		{CompetitorID: 2, Rating: 1700, Points: 5, Spread: 200},
		{CompetitorID: 3, Rating: 1600, Points: 5, Spread: 100},
		{CompetitorID: 4, Rating: 1500, Points: 4, Spread: 50},
		{CompetitorID: 5, Rating: 1400, Points: 3, Spread: 0},
		{CompetitorID: 6, Rating: 1300, Points: 2, Spread: -100},
	}

	params := testParams(PolicySwiss, standings)
	params.Policy.Gibsonization = true
	params.Round = 9
	params.TotalRounds = 10
	params.Ledger = NewRematchLedger([]PlayedMatch{{Round: 1, P1: 1, P2: 2}})

	round, err := GeneratePairings(params)
	require.NoError(t, err)
	require.Equal(t, [][2]int{{1, 3}, {2, 4}, {5, 6}}, pairList(round),
		"the lone clinched leader meets the best eliminated competitor they have not yet played")
	require.True(t, round.Matches[0].P1Clinched)
}
