package models

import "time"

// Standing is the persisted per-competitor snapshot of the computed
// standings, refreshed whenever a score is recorded. The pairing engine's
// computation stays authoritative; this table only serves cheap reads and
// live pushes.
type Standing struct {
	ID           int       `json:"id" db:"id"`
	TournamentID int       `json:"tournament_id" db:"tournament_id"`
	CompetitorID int       `json:"competitor_id" db:"competitor_id"`
	GamesPlayed  int       `json:"games_played" db:"games_played"`
	Wins         int       `json:"wins" db:"wins"`
	Draws        int       `json:"draws" db:"draws"`
	Losses       int       `json:"losses" db:"losses"`
	Points       float64   `json:"points" db:"points"`
	Spread       int       `json:"spread" db:"spread"`
	Starts       int       `json:"starts" db:"starts"`
	Rank         int       `json:"rank" db:"rank"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`

	// Optional linked data, populated by the service layer.
	Competitor *Competitor `json:"competitor,omitempty" db:"-"`
}
