package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"

	"github.com/tabledraw/tabledraw/models"
	"github.com/tabledraw/tabledraw/pairing"
	"github.com/tabledraw/tabledraw/repositories"
)

// StandingsService отдаёт живую таблицу. Таблица всегда пересчитывается из
// матчей, снимок в БД служит только для дешёвых выборок и push-рассылки;
// при расхождении истина за пересчётом.
type StandingsService interface {
	GetStandings(ctx context.Context, tournamentID int, upToRound *int) (*StandingsView, error)
	ExportCSV(ctx context.Context, tournamentID int, upToRound *int) ([]byte, string, error)
}

// StandingRow дополняет строку движка именем и советующими флагами.
// Gibsonized и Eliminated ни на что не влияют, это подсказки директору.
type StandingRow struct {
	Rank         int     `json:"rank"`
	CompetitorID int     `json:"competitor_id"`
	Name         string  `json:"name"`
	Rating       int     `json:"rating"`
	GamesPlayed  int     `json:"games_played"`
	Wins         int     `json:"wins"`
	Draws        int     `json:"draws"`
	Losses       int     `json:"losses"`
	Points       float64 `json:"points"`
	Spread       int     `json:"spread"`
	Starts       int     `json:"starts"`
	Withdrawn    bool    `json:"withdrawn,omitempty"`
	Gibsonized   bool    `json:"gibsonized,omitempty"`
	Eliminated   bool    `json:"eliminated,omitempty"`
}

type StandingsView struct {
	TournamentID    int           `json:"tournament_id"`
	Round           int           `json:"round"`
	TotalRounds     int           `json:"total_rounds"`
	RemainingRounds int           `json:"remaining_rounds"`
	Rows            []StandingRow `json:"rows"`
}

type standingsService struct {
	tournamentRepo repositories.TournamentRepository
	competitorRepo repositories.CompetitorRepository
	matchRepo      repositories.MatchRepository
}

func NewStandingsService(
	tournamentRepo repositories.TournamentRepository,
	competitorRepo repositories.CompetitorRepository,
	matchRepo repositories.MatchRepository,
) StandingsService {
	return &standingsService{
		tournamentRepo: tournamentRepo,
		competitorRepo: competitorRepo,
		matchRepo:      matchRepo,
	}
}

func (s *standingsService) GetStandings(ctx context.Context, tournamentID int, upToRound *int) (*StandingsView, error) {
	if upToRound != nil && *upToRound < 0 {
		return nil, fmt.Errorf("%w: round cutoff must not be negative", ErrValidationFailed)
	}

	tournament, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to load tournament %d: %w", tournamentID, err)
	}

	roster, err := s.competitorRepo.ListByTournament(ctx, nil, tournamentID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load competitors of tournament %d: %w", tournamentID, err)
	}
	committed, err := s.matchRepo.ListByTournament(ctx, nil, tournamentID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load match history of tournament %d: %w", tournamentID, err)
	}

	// Срез "на конец тура N": в расчёт входят только матчи туров <= N.
	effectiveRound := tournament.CurrentRound
	if upToRound != nil && *upToRound < effectiveRound {
		effectiveRound = *upToRound
		filtered := make([]*models.Match, 0, len(committed))
		for _, m := range committed {
			if m != nil && m.Round <= effectiveRound {
				filtered = append(filtered, m)
			}
		}
		committed = filtered
	}

	history, scores := engineHistory(committed)
	standings, err := computeCurrentStandings(roster, history, scores)
	if err != nil {
		return nil, err
	}

	remaining := tournament.TotalRounds - effectiveRound
	gibsonized := pairing.DetectGibsonized(standings, remaining)
	eliminated := pairing.DetectEliminated(standings, remaining)

	byID := make(map[int]*models.Competitor, len(roster))
	for _, c := range roster {
		if c != nil {
			byID[c.ID] = c
		}
	}

	rows := make([]StandingRow, 0, len(standings))
	for _, st := range standings {
		row := StandingRow{
			Rank:         st.Rank,
			CompetitorID: st.CompetitorID,
			Rating:       st.Rating,
			GamesPlayed:  st.GamesPlayed,
			Wins:         st.Wins,
			Draws:        st.Draws,
			Losses:       st.Losses,
			Points:       st.Points,
			Spread:       st.Spread,
			Starts:       st.Starts,
			Gibsonized:   gibsonized[st.CompetitorID],
			Eliminated:   eliminated[st.CompetitorID],
		}
		if c := byID[st.CompetitorID]; c != nil {
			row.Name = c.Name
			row.Withdrawn = c.Withdrawn
		}
		rows = append(rows, row)
	}

	return &StandingsView{
		TournamentID:    tournamentID,
		Round:           effectiveRound,
		TotalRounds:     tournament.TotalRounds,
		RemainingRounds: remaining,
		Rows:            rows,
	}, nil
}

// ExportCSV отдаёт ту же таблицу файлом; вторым значением возвращается имя
// файла для Content-Disposition.
func (s *standingsService) ExportCSV(ctx context.Context, tournamentID int, upToRound *int) ([]byte, string, error) {
	view, err := s.GetStandings(ctx, tournamentID, upToRound)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"rank", "competitor", "rating", "games", "wins", "draws", "losses", "points", "spread", "starts", "flags"}
	if err := w.Write(header); err != nil {
		return nil, "", fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, row := range view.Rows {
		flags := ""
		switch {
		case row.Withdrawn:
			flags = "withdrawn"
		case row.Gibsonized:
			flags = "gibsonized"
		case row.Eliminated:
			flags = "eliminated"
		}
		record := []string{
			strconv.Itoa(row.Rank),
			row.Name,
			strconv.Itoa(row.Rating),
			strconv.Itoa(row.GamesPlayed),
			strconv.Itoa(row.Wins),
			strconv.Itoa(row.Draws),
			strconv.Itoa(row.Losses),
			strconv.FormatFloat(row.Points, 'f', 1, 64),
			strconv.Itoa(row.Spread),
			strconv.Itoa(row.Starts),
			flags,
		}
		if err := w.Write(record); err != nil {
			return nil, "", fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", fmt.Errorf("failed to flush csv: %w", err)
	}

	filename := fmt.Sprintf("standings_%d_round_%d.csv", tournamentID, view.Round)
	return buf.Bytes(), filename, nil
}
