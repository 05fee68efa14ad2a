package services

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/tabledraw/tabledraw/models"
	"github.com/tabledraw/tabledraw/pairing"
)

func intPtr(n int) *int { return &n }

func testRoster(t *testing.T, withdrawn ...int) []*models.Competitor {
	t.Helper()
	down := make(map[int]bool, len(withdrawn))
	for _, id := range withdrawn {
		down[id] = true
	}
	roster := make([]*models.Competitor, 0, 4)
	for i := 1; i <= 4; i++ {
		roster = append(roster, &models.Competitor{
			ID:           i,
			TournamentID: 1,
			Name:         "player",
			Rating:       2000 - i*100,
			Withdrawn:    down[i],
		})
	}
	return roster
}

func TestEngineHistorySplitsByesAndScores(t *testing.T) {
	matches := []*models.Match{
		{
			Round:         1,
			Competitor1ID: 1,
			Competitor2ID: intPtr(2),
			FirstMoverID:  intPtr(1),
			Status:        models.MatchStatusCompleted,
			Score1:        intPtr(420),
			Score2:        intPtr(380),
		},
		{
			Round:         1,
			Competitor1ID: 3,
			IsBye:         true,
			Status:        models.MatchStatusCompleted,
		},
		// Несыгранный матч: в историю пар попадает, в счёт нет.
		{
			Round:         2,
			Competitor1ID: 1,
			Competitor2ID: intPtr(3),
			FirstMoverID:  intPtr(3),
			Status:        models.MatchStatusScheduled,
		},
		nil,
	}

	history, scores := engineHistory(matches)

	wantHistory := []pairing.PlayedMatch{
		{Round: 1, P1: 1, P2: 2, FirstMove: 1},
		{Round: 1, P1: 3, Bye: true},
		{Round: 2, P1: 1, P2: 3, FirstMove: 3},
	}
	if diff := cmp.Diff(wantHistory, history); diff != "" {
		t.Errorf("history mismatch (-want +got):\n%s", diff)
	}

	wantScores := []pairing.ScoreRecord{
		{Round: 1, P1: 1, P2: 2, Score1: 420, Score2: 380},
	}
	if diff := cmp.Diff(wantScores, scores); diff != "" {
		t.Errorf("scores mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeCurrentStandingsFillsStarts(t *testing.T) {
	roster := testRoster(t)
	history := []pairing.PlayedMatch{
		{Round: 1, P1: 1, P2: 2, FirstMove: 1},
		{Round: 1, P1: 3, P2: 4, FirstMove: 4},
		{Round: 2, P1: 1, P2: 3, FirstMove: 1},
	}
	scores := []pairing.ScoreRecord{
		{Round: 1, P1: 1, P2: 2, Score1: 400, Score2: 350},
	}

	standings, err := computeCurrentStandings(roster, history, scores)
	require.NoError(t, err)

	starts := make(map[int]int, len(standings))
	for _, st := range standings {
		starts[st.CompetitorID] = st.Starts
	}
	require.Equal(t, 2, starts[1])
	require.Equal(t, 0, starts[2])
	require.Equal(t, 0, starts[3])
	require.Equal(t, 1, starts[4])
}

func TestComputeCurrentStandingsKeepsWithdrawnResults(t *testing.T) {
	// Снявшийся участник уже сыграл: его результат обязан остаться в таблице,
	// иначе счёт соперника повиснет на несуществующем игроке.
	roster := testRoster(t, 2)
	scores := []pairing.ScoreRecord{
		{Round: 1, P1: 1, P2: 2, Score1: 400, Score2: 350},
	}

	standings, err := computeCurrentStandings(roster, nil, scores)
	require.NoError(t, err)
	require.Len(t, standings, 4)
}

func TestFilterWithdrawn(t *testing.T) {
	roster := testRoster(t, 2, 4)
	standings := []pairing.Standing{
		{CompetitorID: 1, Rank: 1},
		{CompetitorID: 2, Rank: 2},
		{CompetitorID: 3, Rank: 3},
		{CompetitorID: 4, Rank: 4},
	}

	field := filterWithdrawn(standings, roster)

	require.Len(t, field, 2)
	require.Equal(t, 1, field[0].CompetitorID)
	require.Equal(t, 3, field[1].CompetitorID)
}
