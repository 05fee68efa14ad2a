package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/tabledraw/tabledraw/metrics"
	"github.com/tabledraw/tabledraw/models"
	"github.com/tabledraw/tabledraw/pairing"
	"github.com/tabledraw/tabledraw/repositories"
)

// SimulationService отвечает на вопрос "что будет с таблицей, если тур
// закончится вот так". Ничего не пишет: гипотетические счета живут только
// в ответе.
type SimulationService interface {
	Simulate(ctx context.Context, tournamentID int, input SimulateInput) (*SimulationResult, error)
}

type SimulateInput struct {
	Scores []pairing.HypotheticalScore `json:"scores"`
}

// SimulatedRow - строка гипотетической таблицы с именем для отображения.
type SimulatedRow struct {
	pairing.AnnotatedStanding
	Name string `json:"name"`
}

type SimulationResult struct {
	TournamentID int            `json:"tournament_id"`
	Round        int            `json:"round"`
	Rows         []SimulatedRow `json:"rows"`
}

type simulationService struct {
	tournamentRepo repositories.TournamentRepository
	competitorRepo repositories.CompetitorRepository
	matchRepo      repositories.MatchRepository
}

func NewSimulationService(
	tournamentRepo repositories.TournamentRepository,
	competitorRepo repositories.CompetitorRepository,
	matchRepo repositories.MatchRepository,
) SimulationService {
	return &simulationService{
		tournamentRepo: tournamentRepo,
		competitorRepo: competitorRepo,
		matchRepo:      matchRepo,
	}
}

func (s *simulationService) Simulate(ctx context.Context, tournamentID int, input SimulateInput) (*SimulationResult, error) {
	if len(input.Scores) == 0 {
		return nil, fmt.Errorf("%w: at least one hypothetical score is required", ErrValidationFailed)
	}

	tournament, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to load tournament %d: %w", tournamentID, err)
	}
	if tournament.Status != models.StatusActive {
		return nil, ErrTournamentNotActive
	}

	roster, err := s.competitorRepo.ListByTournament(ctx, nil, tournamentID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load competitors of tournament %d: %w", tournamentID, err)
	}
	committed, err := s.matchRepo.ListByTournament(ctx, nil, tournamentID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load match history of tournament %d: %w", tournamentID, err)
	}

	history, scores := engineHistory(committed)
	standings, err := computeCurrentStandings(roster, history, scores)
	if err != nil {
		return nil, err
	}

	// Симулируются только несыгранные матчи текущего тура.
	pending := make([]pairing.Match, 0)
	for _, m := range committed {
		if m == nil || m.IsBye || m.Round != tournament.CurrentRound || m.Status != models.MatchStatusScheduled {
			continue
		}
		if m.Competitor2ID == nil {
			continue
		}
		pending = append(pending, pairing.Match{
			Round: m.Round,
			Table: m.TableNumber,
			P1:    m.Competitor1ID,
			P2:    *m.Competitor2ID,
		})
	}
	if len(pending) == 0 {
		return nil, ErrNoPendingMatches
	}

	remainingAfter := tournament.TotalRounds - tournament.CurrentRound
	annotated, err := pairing.Simulate(standings, pending, input.Scores, remainingAfter)
	if err != nil {
		return nil, err
	}

	byID := make(map[int]string, len(roster))
	for _, c := range roster {
		if c != nil {
			byID[c.ID] = c.Name
		}
	}
	rows := make([]SimulatedRow, 0, len(annotated))
	for _, a := range annotated {
		rows = append(rows, SimulatedRow{
			AnnotatedStanding: a,
			Name:              byID[a.CompetitorID],
		})
	}

	metrics.SimulationsRun.Inc()
	return &SimulationResult{
		TournamentID: tournamentID,
		Round:        tournament.CurrentRound,
		Rows:         rows,
	}, nil
}
