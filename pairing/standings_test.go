package pairing

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/tabledraw/tabledraw/models"
)

func roster(ratings ...int) []*models.Competitor {
	out := make([]*models.Competitor, len(ratings))
	for i, r := range ratings {
		out[i] = &models.Competitor{ID: i + 1, TournamentID: 1, Name: fmt.Sprintf("competitor %d", i+1), Rating: r}
	}
	return out
}

func TestComputeStandingsTotalOrder(t *testing.T) {
	history := []ScoreRecord{
		{Round: 1, P1: 1, P2: 2, Score1: 400, Score2: 350},
		{Round: 1, P1: 3, P2: 4, Score1: 400, Score2: 390},
	}

	got, err := ComputeStandings(roster(1800, 1700, 1600, 1500, 1400), history)
	require.NoError(t, err)

	want := []Standing{
		{CompetitorID: 1, Rating: 1800, GamesPlayed: 1, Wins: 1, Points: 1, Spread: 50, Rank: 1},
		{CompetitorID: 3, Rating: 1600, GamesPlayed: 1, Wins: 1, Points: 1, Spread: 10, Rank: 2},
		{CompetitorID: 5, Rating: 1400, Rank: 3},
		{CompetitorID: 4, Rating: 1500, GamesPlayed: 1, Losses: 1, Spread: -10, Rank: 4},
		{CompetitorID: 2, Rating: 1700, GamesPlayed: 1, Losses: 1, Spread: -50, Rank: 5},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("standings mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeStandingsDraws(t *testing.T) {
	history := []ScoreRecord{
		{Round: 1, P1: 1, P2: 2, Score1: 300, Score2: 300},
		{Round: 2, P1: 1, P2: 3, Score1: 350, Score2: 350},
	}

	got, err := ComputeStandings(roster(1500, 1500, 1500), history)
	require.NoError(t, err)

	require.Equal(t, 1, got[0].CompetitorID)
	require.Equal(t, 1.0, got[0].Points)
	require.Equal(t, 2, got[0].Draws)
	require.Equal(t, 0.5, got[1].Points)
	require.Equal(t, 2, got[1].CompetitorID, "equal points, spread and rating fall back to the lower id")
	require.Equal(t, 3, got[2].CompetitorID)
}

func TestComputeStandingsOrderIndependence(t *testing.T) {
	faker := gofakeit.New(42)
	ids := []int{1, 2, 3, 4, 5, 6}

	var history []ScoreRecord
	round := 1
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			history = append(history, ScoreRecord{
				Round:  round,
				P1:     ids[i],
				P2:     ids[j],
				Score1: faker.Number(250, 500),
				Score2: faker.Number(250, 500),
			})
			round++
		}
	}

	base, err := ComputeStandings(roster(1800, 1750, 1700, 1650, 1600, 1550), history)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 5; trial++ {
		shuffled := append([]ScoreRecord(nil), history...)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		got, err := ComputeStandings(roster(1800, 1750, 1700, 1650, 1600, 1550), shuffled)
		require.NoError(t, err)
		if diff := cmp.Diff(base, got); diff != "" {
			t.Fatalf("score order changed the standings (-base +got):\n%s", diff)
		}
	}
}

func TestComputeStandingsIntegrity(t *testing.T) {
	tests := []struct {
		name    string
		roster  []*models.Competitor
		history []ScoreRecord
		wantErr bool
	}{
		{
			name:    "self-paired score",
			roster:  roster(1500, 1400),
			history: []ScoreRecord{{Round: 1, P1: 1, P2: 1, Score1: 300, Score2: 200}},
			wantErr: true,
		},
		{
			name:    "score for a stranger",
			roster:  roster(1500, 1400),
			history: []ScoreRecord{{Round: 1, P1: 1, P2: 9, Score1: 300, Score2: 200}},
			wantErr: true,
		},
		{
			name: "duplicate roster entry",
			roster: []*models.Competitor{
				{ID: 1, Name: "a", Rating: 1500},
				{ID: 1, Name: "a again", Rating: 1400},
			},
			wantErr: true,
		},
		{
			name:   "nil roster entries are skipped",
			roster: []*models.Competitor{{ID: 1, Name: "a", Rating: 1500}, nil, {ID: 2, Name: "b", Rating: 1400}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeStandings(tt.roster, tt.history)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrDataIntegrity)
				return
			}
			require.NoError(t, err)
			require.Len(t, got, 2)
		})
	}
}
