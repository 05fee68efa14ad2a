package models

import "time"

// TournamentStatus mirrors the tournament_status ENUM in the database.
type TournamentStatus string

const (
	StatusSetup        TournamentStatus = "setup"
	StatusRegistration TournamentStatus = "registration"
	StatusActive       TournamentStatus = "active"
	StatusCompleted    TournamentStatus = "completed"
	StatusCanceled     TournamentStatus = "canceled"
)

// Tournament is a multi-round event run by a director. The pairing policy
// columns select a compiled strategy from the pairing registry by its stable
// identifier; no strategy code is ever loaded from the database.
type Tournament struct {
	ID             int              `json:"id" db:"id"`
	Name           string           `json:"name" db:"name"`
	Description    *string          `json:"description,omitempty" db:"description"`
	Venue          *string          `json:"venue,omitempty" db:"venue"`
	DirectorID     int              `json:"director_id" db:"director_id"`
	Status         TournamentStatus `json:"status" db:"status"`
	PolicyKind     string           `json:"policy_kind" db:"policy_kind"`
	AvoidRematches bool             `json:"avoid_rematches" db:"avoid_rematches"`
	Gibsonization  bool             `json:"gibsonization" db:"gibsonization"`
	TotalRounds    int              `json:"total_rounds" db:"total_rounds"`
	CurrentRound   int              `json:"current_round" db:"current_round"`
	MaxCompetitors int              `json:"max_competitors" db:"max_competitors"`
	StartDate      time.Time        `json:"start_date" db:"start_date"`
	CreatedAt      time.Time        `json:"created_at" db:"created_at"`
	LogoKey        *string          `json:"-" db:"logo_key"`
	LogoURL        *string          `json:"logo_url,omitempty" db:"-"`

	// Related data, populated by the service layer.
	Director    *User        `json:"director,omitempty" db:"-"`
	Competitors []Competitor `json:"competitors,omitempty" db:"-"`
	Matches     []Match      `json:"matches,omitempty" db:"-"`
}
