package pairing

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// freshField returns n competitors with strictly descending ratings and no
// results, so the sorted order is 1..n.
func freshField(n int) []Standing {
	out := make([]Standing, n)
	for i := range out {
		out[i] = Standing{CompetitorID: i + 1, Rating: 2000 - 50*i}
	}
	return out
}

func testParams(kind PolicyKind, standings []Standing) Params {
	return Params{
		Standings:   standings,
		Policy:      Policy{Kind: kind},
		Ledger:      NewRematchLedger(nil),
		ByeCounts:   map[int]int{},
		Round:       1,
		TotalRounds: 7,
	}
}

func pairList(round *Round) [][2]int {
	out := make([][2]int, 0, len(round.Matches))
	for _, m := range round.Matches {
		out = append(out, [2]int{m.P1, m.P2})
	}
	return out
}

func TestStrategyRegistry(t *testing.T) {
	for _, kind := range PolicyKinds() {
		strat, err := StrategyFor(kind)
		require.NoError(t, err)
		require.Equal(t, string(kind), strat.Name())
		require.GreaterOrEqual(t, strat.Version(), 1)
	}

	want := []PolicyKind{PolicyFonteSwiss, PolicyKingOfHill, PolicyManual, PolicyQuartile, PolicyRoundRobin, PolicySwiss}
	require.Equal(t, want, PolicyKinds())

	_, err := StrategyFor("elimination")
	require.ErrorIs(t, err, ErrUnknownPolicy)
}

func TestPolicyValidate(t *testing.T) {
	tests := []struct {
		name    string
		policy  Policy
		wantErr error
	}{
		{name: "swiss", policy: Policy{Kind: PolicySwiss}},
		{name: "manual with switches", policy: Policy{Kind: PolicyManual, AvoidRematches: true, Gibsonization: true}},
		{name: "unknown kind", policy: Policy{Kind: "ladder"}, wantErr: ErrUnknownPolicy},
		{name: "negative scan limit", policy: Policy{Kind: PolicySwiss, RematchScanLimit: -1}, wantErr: ErrDataIntegrity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.policy.Validate()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestGeneratePairingsRejectsThinField(t *testing.T) {
	_, err := GeneratePairings(testParams(PolicySwiss, nil))
	require.ErrorIs(t, err, ErrInsufficientCompetitors)

	_, err = GeneratePairings(testParams(PolicySwiss, freshField(1)))
	require.ErrorIs(t, err, ErrInsufficientCompetitors)

	params := testParams(PolicySwiss, freshField(4))
	params.Round = 0
	_, err = GeneratePairings(params)
	require.ErrorIs(t, err, ErrDataIntegrity)
}

func TestGeneratePairingsStampsMatches(t *testing.T) {
	params := testParams(PolicySwiss, freshField(6))
	params.Round = 3

	round, err := GeneratePairings(params)
	require.NoError(t, err)
	require.Equal(t, 3, round.Number)
	require.Nil(t, round.Bye)
	require.Len(t, round.Matches, 3)

	for i, m := range round.Matches {
		require.Equal(t, 3, m.Round)
		require.Equal(t, i+1, m.Table)
		// fresh field: no prior starts, so the better rank opens
		require.Equal(t, m.P1, m.FirstMove)
	}
}

func TestGeneratePairingsFirstMoveBalance(t *testing.T) {
	standings := freshField(4)
	standings[0].Starts = 2
	standings[1].Starts = 1

	round, err := GeneratePairings(testParams(PolicySwiss, standings))
	require.NoError(t, err)
	require.Equal(t, [2]int{1, 2}, [2]int{round.Matches[0].P1, round.Matches[0].P2})
	require.Equal(t, 2, round.Matches[0].FirstMove, "fewer prior starts should open")
	require.Equal(t, 3, round.Matches[1].FirstMove, "tied starts fall back to the better rank")
}

func TestGeneratePairingsInputUntouched(t *testing.T) {
	standings := []Standing{
		{CompetitorID: 4, Rating: 1500, Points: 1, Spread: -10},
		{CompetitorID: 1, Rating: 1800, Points: 2, Spread: 80},
		{CompetitorID: 3, Rating: 1600, Points: 1, Spread: 30},
		{CompetitorID: 2, Rating: 1700, Points: 0, Spread: -100},
	}
	pristine := append([]Standing(nil), standings...)

	shuffled, err := GeneratePairings(testParams(PolicySwiss, standings))
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(pristine, standings), "pairing must not reorder the caller's standings")

	sorted := []Standing{standings[1], standings[2], standings[0], standings[3]}
	fromSorted, err := GeneratePairings(testParams(PolicySwiss, sorted))
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(fromSorted, shuffled), "input order must not change the pairing")
}

func TestGeneratePairingsByeGoesToFewestByes(t *testing.T) {
	params := testParams(PolicySwiss, freshField(5))
	params.ByeCounts = map[int]int{4: 1, 5: 1}

	round, err := GeneratePairings(params)
	require.NoError(t, err)
	require.NotNil(t, round.Bye)
	require.Equal(t, 3, *round.Bye, "lowest rank among those with fewest byes sits out")
	require.Equal(t, [][2]int{{1, 2}, {4, 5}}, pairList(round))
}

// Exercises two rounds of a five-competitor swiss opening end to end:
// pairing, scoring, standings and the next round's bye rotation.
func TestSmallFieldSeasonOpening(t *testing.T) {
	ratings := []int{1800, 1700, 1600, 1500, 1400}
	standings := make([]Standing, len(ratings))
	for i, r := range ratings {
		standings[i] = Standing{CompetitorID: i + 1, Rating: r}
	}

	params := testParams(PolicySwiss, standings)
	params.TotalRounds = 5

	first, err := GeneratePairings(params)
	require.NoError(t, err)
	require.Equal(t, [][2]int{{1, 2}, {3, 4}}, pairList(first))
	require.NotNil(t, first.Bye)
	require.Equal(t, 5, *first.Bye)
	require.Equal(t, 1, first.Matches[0].FirstMove)
	require.Equal(t, 3, first.Matches[1].FirstMove)

	history := []PlayedMatch{
		{Round: 1, P1: 1, P2: 2, FirstMove: 1},
		{Round: 1, P1: 3, P2: 4, FirstMove: 3},
		{Round: 1, P1: 5, Bye: true},
	}
	scores := []ScoreRecord{
		{Round: 1, P1: 1, P2: 2, Score1: 400, Score2: 350},
		{Round: 1, P1: 3, P2: 4, Score1: 400, Score2: 390},
	}
	table, err := ComputeStandings(roster(1800, 1700, 1600, 1500, 1400), scores)
	require.NoError(t, err)

	gotOrder := make([]int, 0, len(table))
	for _, s := range table {
		gotOrder = append(gotOrder, s.CompetitorID)
	}
	require.Equal(t, []int{1, 3, 5, 4, 2}, gotOrder)

	params.Standings = table
	params.Round = 2
	params.Ledger = NewRematchLedger(history)
	params.ByeCounts = ByeCounts(history)

	second, err := GeneratePairings(params)
	require.NoError(t, err)
	require.NotNil(t, second.Bye)
	require.Equal(t, 2, *second.Bye, "the bye rotates to the lowest rank yet to sit out")
	require.Equal(t, [][2]int{{1, 3}, {5, 4}}, pairList(second))
}
