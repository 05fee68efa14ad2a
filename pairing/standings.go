package pairing

import (
	"fmt"
	"sort"

	"github.com/tabledraw/tabledraw/models"
)

// Standing is one competitor's derived tournament line. Rank is 1-based and
// recomputed on every sort; Starts is the number of matches the competitor
// opened, supplied by the caller from committed history.
type Standing struct {
	CompetitorID int     `json:"competitor_id"`
	Rating       int     `json:"rating"`
	GamesPlayed  int     `json:"games_played"`
	Wins         int     `json:"wins"`
	Draws        int     `json:"draws"`
	Losses       int     `json:"losses"`
	Points       float64 `json:"points"`
	Spread       int     `json:"spread"`
	Starts       int     `json:"starts"`
	Rank         int     `json:"rank"`
}

// ScoreRecord is one recorded result: two integer scores, higher score wins,
// equal scores draw. Byes are not score records.
type ScoreRecord struct {
	Round  int `json:"round"`
	P1     int `json:"p1"`
	P2     int `json:"p2"`
	Score1 int `json:"score1"`
	Score2 int `json:"score2"`
}

// ComputeStandings derives the ranked table from a roster and its recorded
// results. Byes never count as games. A score referencing a competitor
// missing from the roster fails the whole computation; results are never
// silently dropped.
func ComputeStandings(roster []*models.Competitor, history []ScoreRecord) ([]Standing, error) {
	standings := make([]Standing, 0, len(roster))
	for _, c := range roster {
		if c == nil {
			continue
		}
		standings = append(standings, Standing{CompetitorID: c.ID, Rating: c.Rating})
	}
	index := make(map[int]*Standing, len(standings))
	for i := range standings {
		s := &standings[i]
		if _, dup := index[s.CompetitorID]; dup {
			return nil, fmt.Errorf("%w: competitor %d appears twice in the roster", ErrDataIntegrity, s.CompetitorID)
		}
		index[s.CompetitorID] = s
	}

	for _, rec := range history {
		if rec.P1 == rec.P2 {
			return nil, fmt.Errorf("%w: round %d score pairs competitor %d against itself", ErrDataIntegrity, rec.Round, rec.P1)
		}
		a, ok := index[rec.P1]
		if !ok {
			return nil, fmt.Errorf("%w: round %d score references competitor %d not in the roster", ErrDataIntegrity, rec.Round, rec.P1)
		}
		b, ok := index[rec.P2]
		if !ok {
			return nil, fmt.Errorf("%w: round %d score references competitor %d not in the roster", ErrDataIntegrity, rec.Round, rec.P2)
		}
		a.applyResult(rec.Score1, rec.Score2)
		b.applyResult(rec.Score2, rec.Score1)
	}

	sortStandings(standings)
	return standings, nil
}

func (s *Standing) applyResult(own, opp int) {
	s.GamesPlayed++
	switch {
	case own > opp:
		s.Wins++
	case own < opp:
		s.Losses++
	default:
		s.Draws++
	}
	s.Points = float64(s.Wins) + 0.5*float64(s.Draws)
	s.Spread += own - opp
}

// sortStandings orders by the total order (points desc, spread desc, rating
// desc, competitor id asc) and reassigns 1-based ranks. The trailing id leg
// makes the order strict, so equal lines stay reproducible.
func sortStandings(standings []Standing) {
	sort.Slice(standings, func(i, j int) bool {
		return lessStanding(standings[i], standings[j])
	})
	for i := range standings {
		standings[i].Rank = i + 1
	}
}

func lessStanding(a, b Standing) bool {
	if a.Points != b.Points {
		return a.Points > b.Points
	}
	if a.Spread != b.Spread {
		return a.Spread > b.Spread
	}
	if a.Rating != b.Rating {
		return a.Rating > b.Rating
	}
	return a.CompetitorID < b.CompetitorID
}
