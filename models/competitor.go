package models

import "time"

// Competitor is one entrant of one tournament. Identity and rating are
// frozen inputs as far as the pairing engine is concerned; rating edits and
// withdrawal happen administratively between rounds.
type Competitor struct {
	ID           int       `json:"id"`
	TournamentID int       `json:"tournament_id"`
	Name         string    `json:"name"`
	Rating       int       `json:"rating"`
	Withdrawn    bool      `json:"withdrawn"`
	CreatedAt    time.Time `json:"created_at"`
}
