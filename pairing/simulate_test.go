package pairing

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func midSeasonTable() []Standing {
	return []Standing{
		{CompetitorID: 1, Rating: 1800, GamesPlayed: 1, Wins: 1, Points: 1, Spread: 50, Rank: 1},
		{CompetitorID: 3, Rating: 1600, GamesPlayed: 1, Wins: 1, Points: 1, Spread: 10, Rank: 2},
		{CompetitorID: 5, Rating: 1400, Rank: 3},
		{CompetitorID: 4, Rating: 1500, GamesPlayed: 1, Losses: 1, Spread: -10, Rank: 4},
		{CompetitorID: 2, Rating: 1700, GamesPlayed: 1, Losses: 1, Spread: -50, Rank: 5},
	}
}

func pendingRound() []Match {
	return []Match{
		{Round: 2, Table: 1, P1: 1, P2: 3},
		{Round: 2, Table: 2, P1: 5, P2: 4},
	}
}

func tagsByCompetitor(annotated []AnnotatedStanding) map[int][]Tag {
	out := make(map[int][]Tag, len(annotated))
	for _, a := range annotated {
		out[a.CompetitorID] = a.Tags
	}
	return out
}

func TestSimulateReordersTable(t *testing.T) {
	current := midSeasonTable()
	pristine := append([]Standing(nil), current...)

	hypo := []HypotheticalScore{
		{P1: 1, P2: 3, Score1: 380, Score2: 420},
		{P1: 5, P2: 4, Score1: 300, Score2: 400},
	}
	annotated, err := Simulate(current, pendingRound(), hypo, 3)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(pristine, current), "simulation must not touch the live table")

	gotOrder := make([]int, 0, len(annotated))
	for _, a := range annotated {
		gotOrder = append(gotOrder, a.CompetitorID)
	}
	require.Equal(t, []int{3, 4, 1, 2, 5}, gotOrder)

	byID := map[int]AnnotatedStanding{}
	for _, a := range annotated {
		byID[a.CompetitorID] = a
	}
	require.Equal(t, 2, byID[3].PrevRank)
	require.Equal(t, 1, byID[3].Delta)
	require.Equal(t, []Tag{TagTakesLead}, byID[3].Tags)

	require.Equal(t, 4, byID[4].PrevRank)
	require.Equal(t, 2, byID[4].Delta)
	require.Equal(t, []Tag{TagMovesToPodium}, byID[4].Tags)

	require.Equal(t, 1, byID[1].PrevRank)
	require.Equal(t, -2, byID[1].Delta)
	require.Equal(t, []Tag{TagLosesLead}, byID[1].Tags)

	require.Equal(t, 5, byID[2].PrevRank)
	require.Equal(t, 1, byID[2].Delta)
	require.Empty(t, byID[2].Tags)

	require.Equal(t, 3, byID[5].PrevRank)
	require.Equal(t, -2, byID[5].Delta)
	require.Equal(t, []Tag{TagFallsFromPodium}, byID[5].Tags)
}

func TestSimulatePartialRound(t *testing.T) {
	hypo := []HypotheticalScore{{P1: 5, P2: 4, Score1: 350, Score2: 320}}

	annotated, err := Simulate(midSeasonTable(), pendingRound(), hypo, 3)
	require.NoError(t, err)

	byID := map[int]AnnotatedStanding{}
	for _, a := range annotated {
		byID[a.CompetitorID] = a
	}
	require.Equal(t, 1.0, byID[5].Points, "the scored match counts")
	require.Equal(t, 1.0, byID[1].Points, "the unscored match leaves its competitors as they stand")
	require.Equal(t, 2, byID[5].Rank)
	require.Equal(t, 1, byID[1].Rank)
}

func TestSimulateValidation(t *testing.T) {
	tests := []struct {
		name string
		hypo []HypotheticalScore
	}{
		{
			name: "no pending match for the pair",
			hypo: []HypotheticalScore{{P1: 1, P2: 2, Score1: 400, Score2: 300}},
		},
		{
			name: "duplicate hypothetical",
			hypo: []HypotheticalScore{
				{P1: 1, P2: 3, Score1: 400, Score2: 300},
				{P1: 3, P2: 1, Score1: 300, Score2: 400},
			},
		},
		{
			name: "self-paired hypothetical",
			hypo: []HypotheticalScore{{P1: 1, P2: 1, Score1: 400, Score2: 300}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Simulate(midSeasonTable(), pendingRound(), tt.hypo, 3)
			require.ErrorIs(t, err, ErrDataIntegrity)
		})
	}
}

func TestSimulateClinchAndElimination(t *testing.T) {
	current := []Standing{
		{CompetitorID: 1, Rating: 1800, GamesPlayed: 4, Wins: 4, Points: 4, Spread: 120, Rank: 1},
		{CompetitorID: 2, Rating: 1700, GamesPlayed: 4, Wins: 3, Losses: 1, Points: 3, Spread: 60, Rank: 2},
		{CompetitorID: 3, Rating: 1600, GamesPlayed: 4, Wins: 1, Losses: 3, Points: 1, Spread: -60, Rank: 3},
		{CompetitorID: 4, Rating: 1500, GamesPlayed: 4, Losses: 4, Points: 0, Spread: -120, Rank: 4},
	}
	pending := []Match{
		{Round: 5, Table: 1, P1: 1, P2: 2},
		{Round: 5, Table: 2, P1: 3, P2: 4},
	}
	hypo := []HypotheticalScore{{P1: 1, P2: 2, Score1: 450, Score2: 300}}

	annotated, err := Simulate(current, pending, hypo, 1)
	require.NoError(t, err)

	tags := tagsByCompetitor(annotated)
	require.Equal(t, []Tag{TagClinches}, tags[1], "a fifth straight win locks first place with one round left")
	require.Equal(t, []Tag{TagEliminated}, tags[2], "the loss puts the leader out of reach")
	require.Empty(t, tags[3], "already out of contention before the round")
	require.Empty(t, tags[4])
}

func TestSimulateNoClinchTagWhenAlreadyLocked(t *testing.T) {
	current := []Standing{
		{CompetitorID: 1, Rating: 1800, GamesPlayed: 5, Wins: 5, Points: 5, Spread: 150, Rank: 1},
		{CompetitorID: 2, Rating: 1700, GamesPlayed: 5, Wins: 2, Losses: 3, Points: 2, Spread: -30, Rank: 2},
		{CompetitorID: 3, Rating: 1600, GamesPlayed: 5, Wins: 2, Losses: 3, Points: 2, Spread: -50, Rank: 3},
		{CompetitorID: 4, Rating: 1500, GamesPlayed: 5, Losses: 5, Points: 0, Spread: -70, Rank: 4},
	}
	pending := []Match{
		{Round: 6, Table: 1, P1: 1, P2: 2},
		{Round: 6, Table: 2, P1: 3, P2: 4},
	}
	hypo := []HypotheticalScore{{P1: 1, P2: 2, Score1: 400, Score2: 350}}

	annotated, err := Simulate(current, pending, hypo, 1)
	require.NoError(t, err)

	tags := tagsByCompetitor(annotated)
	require.Empty(t, tags[1], "first place was already mathematically settled before the round")
}
