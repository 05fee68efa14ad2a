package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tabledraw/tabledraw/models"
	"github.com/tabledraw/tabledraw/repositories"
)

// CompetitorService ведёт состав турнира. До активации состав свободно
// редактируется; после старта допустимы только правки рейтинга и снятие.
type CompetitorService interface {
	Add(ctx context.Context, tournamentID int, currentUserID int, currentRole string, input AddCompetitorInput) (*models.Competitor, error)
	List(ctx context.Context, tournamentID int, includeWithdrawn bool) ([]models.Competitor, error)
	Update(ctx context.Context, competitorID int, currentUserID int, currentRole string, input UpdateCompetitorInput) (*models.Competitor, error)
	SetWithdrawn(ctx context.Context, competitorID int, currentUserID int, currentRole string, withdrawn bool) (*models.Competitor, error)
	Remove(ctx context.Context, competitorID int, currentUserID int, currentRole string) error
}

type AddCompetitorInput struct {
	Name   string `json:"name"`
	Rating int    `json:"rating"`
}

type UpdateCompetitorInput struct {
	Name   *string `json:"name,omitempty"`
	Rating *int    `json:"rating,omitempty"`
}

type competitorService struct {
	competitorRepo repositories.CompetitorRepository
	tournamentRepo repositories.TournamentRepository
}

func NewCompetitorService(
	competitorRepo repositories.CompetitorRepository,
	tournamentRepo repositories.TournamentRepository,
) CompetitorService {
	return &competitorService{
		competitorRepo: competitorRepo,
		tournamentRepo: tournamentRepo,
	}
}

func (s *competitorService) loadTournamentForManage(ctx context.Context, tournamentID, currentUserID int, currentRole string) (*models.Tournament, error) {
	tournament, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to load tournament %d: %w", tournamentID, err)
	}
	if !canManage(tournament, currentUserID, currentRole) {
		return nil, ErrForbiddenOperation
	}
	return tournament, nil
}

func (s *competitorService) Add(ctx context.Context, tournamentID int, currentUserID int, currentRole string, input AddCompetitorInput) (*models.Competitor, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: competitor name is required", ErrValidationFailed)
	}

	tournament, err := s.loadTournamentForManage(ctx, tournamentID, currentUserID, currentRole)
	if err != nil {
		return nil, err
	}
	if tournament.Status != models.StatusSetup && tournament.Status != models.StatusRegistration {
		return nil, ErrRosterLocked
	}

	count, err := s.competitorRepo.CountByTournament(ctx, nil, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to count competitors of tournament %d: %w", tournamentID, err)
	}
	if count >= tournament.MaxCompetitors {
		return nil, ErrTournamentFull
	}

	competitor := &models.Competitor{
		TournamentID: tournamentID,
		Name:         name,
		Rating:       input.Rating,
	}
	if err := s.competitorRepo.Create(ctx, nil, competitor); err != nil {
		switch {
		case errors.Is(err, repositories.ErrCompetitorNameConflict):
			return nil, ErrCompetitorNameConflict
		case errors.Is(err, repositories.ErrCompetitorTournamentInvalid):
			return nil, ErrTournamentNotFound
		default:
			return nil, fmt.Errorf("failed to add competitor to tournament %d: %w", tournamentID, err)
		}
	}
	return competitor, nil
}

func (s *competitorService) List(ctx context.Context, tournamentID int, includeWithdrawn bool) ([]models.Competitor, error) {
	if _, err := s.tournamentRepo.GetByID(ctx, tournamentID); err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to load tournament %d: %w", tournamentID, err)
	}

	competitors, err := s.competitorRepo.ListByTournament(ctx, nil, tournamentID, includeWithdrawn)
	if err != nil {
		return nil, fmt.Errorf("failed to list competitors of tournament %d: %w", tournamentID, err)
	}
	list := make([]models.Competitor, 0, len(competitors))
	for _, c := range competitors {
		if c != nil {
			list = append(list, *c)
		}
	}
	return list, nil
}

func (s *competitorService) Update(ctx context.Context, competitorID int, currentUserID int, currentRole string, input UpdateCompetitorInput) (*models.Competitor, error) {
	competitor, err := s.competitorRepo.GetByID(ctx, competitorID)
	if err != nil {
		if errors.Is(err, repositories.ErrCompetitorNotFound) {
			return nil, ErrCompetitorNotFound
		}
		return nil, fmt.Errorf("failed to load competitor %d: %w", competitorID, err)
	}

	tournament, err := s.loadTournamentForManage(ctx, competitor.TournamentID, currentUserID, currentRole)
	if err != nil {
		return nil, err
	}
	// Правки рейтинга между турами разрешены, но после финала таблица
	// зафиксирована.
	if tournament.Status == models.StatusCompleted || tournament.Status == models.StatusCanceled {
		return nil, ErrRosterLocked
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: competitor name is required", ErrValidationFailed)
		}
		competitor.Name = name
	}
	if input.Rating != nil {
		competitor.Rating = *input.Rating
	}

	if err := s.competitorRepo.Update(ctx, competitor); err != nil {
		switch {
		case errors.Is(err, repositories.ErrCompetitorNotFound):
			return nil, ErrCompetitorNotFound
		case errors.Is(err, repositories.ErrCompetitorNameConflict):
			return nil, ErrCompetitorNameConflict
		default:
			return nil, fmt.Errorf("failed to update competitor %d: %w", competitorID, err)
		}
	}
	return competitor, nil
}

func (s *competitorService) SetWithdrawn(ctx context.Context, competitorID int, currentUserID int, currentRole string, withdrawn bool) (*models.Competitor, error) {
	competitor, err := s.competitorRepo.GetByID(ctx, competitorID)
	if err != nil {
		if errors.Is(err, repositories.ErrCompetitorNotFound) {
			return nil, ErrCompetitorNotFound
		}
		return nil, fmt.Errorf("failed to load competitor %d: %w", competitorID, err)
	}

	tournament, err := s.loadTournamentForManage(ctx, competitor.TournamentID, currentUserID, currentRole)
	if err != nil {
		return nil, err
	}
	if tournament.Status == models.StatusCompleted || tournament.Status == models.StatusCanceled {
		return nil, ErrRosterLocked
	}

	if competitor.Withdrawn == withdrawn {
		return competitor, nil
	}
	if err := s.competitorRepo.SetWithdrawn(ctx, nil, competitorID, withdrawn); err != nil {
		return nil, fmt.Errorf("failed to set withdrawn=%t for competitor %d: %w", withdrawn, competitorID, err)
	}
	competitor.Withdrawn = withdrawn
	return competitor, nil
}

func (s *competitorService) Remove(ctx context.Context, competitorID int, currentUserID int, currentRole string) error {
	competitor, err := s.competitorRepo.GetByID(ctx, competitorID)
	if err != nil {
		if errors.Is(err, repositories.ErrCompetitorNotFound) {
			return ErrCompetitorNotFound
		}
		return fmt.Errorf("failed to load competitor %d: %w", competitorID, err)
	}

	tournament, err := s.loadTournamentForManage(ctx, competitor.TournamentID, currentUserID, currentRole)
	if err != nil {
		return err
	}
	// Полное удаление допустимо только до старта; сыгравших снимают.
	if tournament.Status != models.StatusSetup && tournament.Status != models.StatusRegistration {
		return ErrCompetitorHasMatches
	}

	if err := s.competitorRepo.Delete(ctx, competitorID); err != nil {
		switch {
		case errors.Is(err, repositories.ErrCompetitorNotFound):
			return ErrCompetitorNotFound
		case errors.Is(err, repositories.ErrCompetitorInUse):
			return ErrCompetitorHasMatches
		default:
			return fmt.Errorf("failed to delete competitor %d: %w", competitorID, err)
		}
	}
	return nil
}
