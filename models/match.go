package models

import "time"

type MatchStatus string

const (
	MatchStatusScheduled MatchStatus = "scheduled"
	MatchStatusCompleted MatchStatus = "completed"
)

// Match is one committed pairing of one round. Bye rows carry a nil second
// competitor and are completed on insert; they never receive scores. The
// Rematch flag is the engine's degraded-pairing warning, persisted so the
// caller can keep surfacing it.
type Match struct {
	ID            int         `json:"id"`
	TournamentID  int         `json:"tournament_id"`
	Round         int         `json:"round"`
	TableNumber   int         `json:"table_number"`
	PairingRunID  string      `json:"pairing_run_id"`
	Competitor1ID int         `json:"competitor1_id"`
	Competitor2ID *int        `json:"competitor2_id,omitempty"`
	FirstMoverID  *int        `json:"first_mover_id,omitempty"`
	IsBye         bool        `json:"is_bye"`
	Rematch       bool        `json:"rematch"`
	C1Clinched    bool        `json:"c1_clinched"`
	C2Clinched    bool        `json:"c2_clinched"`
	Score1        *int        `json:"score1,omitempty"`
	Score2        *int        `json:"score2,omitempty"`
	WinnerID      *int        `json:"winner_id,omitempty"`
	Status        MatchStatus `json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`

	Competitor1 *Competitor `json:"competitor1,omitempty"`
	Competitor2 *Competitor `json:"competitor2,omitempty"`
}
