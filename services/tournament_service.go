package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/tabledraw/tabledraw/live"
	"github.com/tabledraw/tabledraw/models"
	"github.com/tabledraw/tabledraw/pairing"
	"github.com/tabledraw/tabledraw/repositories"
	"github.com/tabledraw/tabledraw/storage"
	"golang.org/x/sync/errgroup"
)

type TournamentService interface {
	Create(ctx context.Context, directorID int, input CreateTournamentInput) (*models.Tournament, error)
	GetByID(ctx context.Context, id int) (*models.Tournament, error)
	List(ctx context.Context, filter repositories.ListTournamentsFilter) ([]models.Tournament, error)
	Update(ctx context.Context, id int, currentUserID int, currentRole string, input UpdateTournamentInput) (*models.Tournament, error)
	UpdateStatus(ctx context.Context, id int, currentUserID int, currentRole string, next models.TournamentStatus) (*models.Tournament, error)
	Delete(ctx context.Context, id int, currentUserID int, currentRole string) error
	UploadLogo(ctx context.Context, id int, currentUserID int, currentRole string, contentType string, file io.Reader) (*models.Tournament, error)
	AutoUpdateTournamentStatusesByDates(ctx context.Context) error
}

type CreateTournamentInput struct {
	Name           string  `json:"name"`
	Description    *string `json:"description,omitempty"`
	Venue          *string `json:"venue,omitempty"`
	PolicyKind     string  `json:"policy_kind"`
	AvoidRematches bool    `json:"avoid_rematches"`
	Gibsonization  bool    `json:"gibsonization"`
	TotalRounds    int     `json:"total_rounds"`
	MaxCompetitors int     `json:"max_competitors"`
	StartDate      string  `json:"start_date"`
}

type UpdateTournamentInput struct {
	Name           *string `json:"name,omitempty"`
	Description    *string `json:"description,omitempty"`
	Venue          *string `json:"venue,omitempty"`
	PolicyKind     *string `json:"policy_kind,omitempty"`
	AvoidRematches *bool   `json:"avoid_rematches,omitempty"`
	Gibsonization  *bool   `json:"gibsonization,omitempty"`
	TotalRounds    *int    `json:"total_rounds,omitempty"`
	MaxCompetitors *int    `json:"max_competitors,omitempty"`
	StartDate      *string `json:"start_date,omitempty"`
}

type tournamentService struct {
	tournamentRepo repositories.TournamentRepository
	competitorRepo repositories.CompetitorRepository
	userRepo       repositories.UserRepository
	uploader       storage.FileUploader
	hub            *live.Hub
	logger         *slog.Logger
}

func NewTournamentService(
	tournamentRepo repositories.TournamentRepository,
	competitorRepo repositories.CompetitorRepository,
	userRepo repositories.UserRepository,
	uploader storage.FileUploader,
	hub *live.Hub,
	logger *slog.Logger,
) TournamentService {
	return &tournamentService{
		tournamentRepo: tournamentRepo,
		competitorRepo: competitorRepo,
		userRepo:       userRepo,
		uploader:       uploader,
		hub:            hub,
		logger:         logger,
	}
}

// canManage: турниром управляет его директор либо админ.
func canManage(t *models.Tournament, userID int, role string) bool {
	return t.DirectorID == userID || role == models.RoleAdmin
}

func validatePolicy(kind string, avoidRematches, gibsonization bool) error {
	p := pairing.Policy{
		Kind:           pairing.PolicyKind(kind),
		AvoidRematches: avoidRematches,
		Gibsonization:  gibsonization,
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("%w: %q", ErrTournamentInvalidPolicy, kind)
	}
	return nil
}

func (s *tournamentService) Create(ctx context.Context, directorID int, input CreateTournamentInput) (*models.Tournament, error) {
	if input.Name == "" {
		return nil, ErrTournamentNameRequired
	}
	if input.MaxCompetitors < 2 {
		return nil, ErrTournamentInvalidCapacity
	}
	if input.TotalRounds < 1 {
		return nil, ErrTournamentInvalidRounds
	}
	if err := validatePolicy(input.PolicyKind, input.AvoidRematches, input.Gibsonization); err != nil {
		return nil, err
	}
	startDate, err := parseStartDate(input.StartDate)
	if err != nil {
		return nil, err
	}
	if startDate.Before(time.Now().UTC()) {
		return nil, fmt.Errorf("%w: start date is in the past", ErrTournamentInvalidStartDate)
	}

	tournament := &models.Tournament{
		Name:           input.Name,
		Description:    input.Description,
		Venue:          input.Venue,
		DirectorID:     directorID,
		Status:         models.StatusSetup,
		PolicyKind:     input.PolicyKind,
		AvoidRematches: input.AvoidRematches,
		Gibsonization:  input.Gibsonization,
		TotalRounds:    input.TotalRounds,
		CurrentRound:   0,
		MaxCompetitors: input.MaxCompetitors,
		StartDate:      startDate,
	}

	if err := s.tournamentRepo.Create(ctx, tournament); err != nil {
		switch {
		case errors.Is(err, repositories.ErrTournamentNameConflict):
			return nil, ErrTournamentNameConflict
		case errors.Is(err, repositories.ErrTournamentInvalidDir):
			return nil, ErrUserNotFound
		default:
			return nil, fmt.Errorf("failed to create tournament: %w", err)
		}
	}
	return tournament, nil
}

func (s *tournamentService) GetByID(ctx context.Context, id int) (*models.Tournament, error) {
	tournament, err := s.tournamentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to load tournament %d: %w", id, err)
	}

	// Директор и состав подгружаются параллельно.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		director, err := s.userRepo.GetByID(gctx, tournament.DirectorID)
		if err != nil {
			if errors.Is(err, repositories.ErrUserNotFound) {
				return nil // директор мог быть удалён, не валим весь запрос
			}
			return fmt.Errorf("failed to load director %d: %w", tournament.DirectorID, err)
		}
		director.PasswordHash = ""
		tournament.Director = director
		return nil
	})
	g.Go(func() error {
		competitors, err := s.competitorRepo.ListByTournament(gctx, nil, id, true)
		if err != nil {
			return fmt.Errorf("failed to load competitors of tournament %d: %w", id, err)
		}
		list := make([]models.Competitor, 0, len(competitors))
		for _, c := range competitors {
			if c != nil {
				list = append(list, *c)
			}
		}
		tournament.Competitors = list
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	populateTournamentLogoURL(tournament, s.uploader)
	return tournament, nil
}

func (s *tournamentService) List(ctx context.Context, filter repositories.ListTournamentsFilter) ([]models.Tournament, error) {
	tournaments, err := s.tournamentRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournaments: %w", err)
	}
	for i := range tournaments {
		populateTournamentLogoURL(&tournaments[i], s.uploader)
	}
	if tournaments == nil {
		return []models.Tournament{}, nil
	}
	return tournaments, nil
}

func (s *tournamentService) Update(ctx context.Context, id int, currentUserID int, currentRole string, input UpdateTournamentInput) (*models.Tournament, error) {
	tournament, err := s.tournamentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to load tournament %d: %w", id, err)
	}
	if !canManage(tournament, currentUserID, currentRole) {
		return nil, ErrForbiddenOperation
	}
	// После старта игры настройки заморожены: менять политику или число
	// туров под уже сгенерированные раунды нельзя.
	if tournament.Status != models.StatusSetup && tournament.Status != models.StatusRegistration {
		return nil, ErrTournamentNotEditable
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, ErrTournamentNameRequired
		}
		tournament.Name = *input.Name
	}
	if input.Description != nil {
		tournament.Description = input.Description
	}
	if input.Venue != nil {
		tournament.Venue = input.Venue
	}
	if input.PolicyKind != nil {
		tournament.PolicyKind = *input.PolicyKind
	}
	if input.AvoidRematches != nil {
		tournament.AvoidRematches = *input.AvoidRematches
	}
	if input.Gibsonization != nil {
		tournament.Gibsonization = *input.Gibsonization
	}
	if err := validatePolicy(tournament.PolicyKind, tournament.AvoidRematches, tournament.Gibsonization); err != nil {
		return nil, err
	}
	if input.TotalRounds != nil {
		if *input.TotalRounds < 1 {
			return nil, ErrTournamentInvalidRounds
		}
		tournament.TotalRounds = *input.TotalRounds
	}
	if input.MaxCompetitors != nil {
		if *input.MaxCompetitors < 2 {
			return nil, ErrTournamentInvalidCapacity
		}
		count, err := s.competitorRepo.CountByTournament(ctx, nil, id)
		if err != nil {
			return nil, fmt.Errorf("failed to count competitors of tournament %d: %w", id, err)
		}
		if count > *input.MaxCompetitors {
			return nil, fmt.Errorf("%w: %d competitors already entered", ErrTournamentInvalidCapacity, count)
		}
		tournament.MaxCompetitors = *input.MaxCompetitors
	}
	if input.StartDate != nil {
		startDate, err := parseStartDate(*input.StartDate)
		if err != nil {
			return nil, err
		}
		tournament.StartDate = startDate
	}

	if err := s.tournamentRepo.Update(ctx, tournament); err != nil {
		switch {
		case errors.Is(err, repositories.ErrTournamentNotFound):
			return nil, ErrTournamentNotFound
		case errors.Is(err, repositories.ErrTournamentNameConflict):
			return nil, ErrTournamentNameConflict
		default:
			return nil, fmt.Errorf("failed to update tournament %d: %w", id, err)
		}
	}

	populateTournamentLogoURL(tournament, s.uploader)
	return tournament, nil
}

func (s *tournamentService) UpdateStatus(ctx context.Context, id int, currentUserID int, currentRole string, next models.TournamentStatus) (*models.Tournament, error) {
	switch next {
	case models.StatusSetup, models.StatusRegistration, models.StatusActive, models.StatusCompleted, models.StatusCanceled:
	default:
		return nil, ErrTournamentInvalidStatus
	}

	tournament, err := s.tournamentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to load tournament %d: %w", id, err)
	}
	if !canManage(tournament, currentUserID, currentRole) {
		return nil, ErrForbiddenOperation
	}
	if tournament.Status == next {
		return tournament, nil
	}
	if !isValidStatusTransition(tournament.Status, next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrTournamentInvalidStatusTransition, tournament.Status, next)
	}

	if next == models.StatusActive {
		count, err := s.competitorRepo.CountByTournament(ctx, nil, id)
		if err != nil {
			return nil, fmt.Errorf("failed to count competitors of tournament %d: %w", id, err)
		}
		if count < 2 {
			return nil, fmt.Errorf("%w: at least 2 competitors required to start", ErrTournamentInvalidStatusTransition)
		}
	}

	if err := s.tournamentRepo.UpdateStatus(ctx, nil, id, next); err != nil {
		return nil, fmt.Errorf("failed to update status of tournament %d: %w", id, err)
	}
	tournament.Status = next

	s.broadcastStatus(tournament)
	return tournament, nil
}

func (s *tournamentService) Delete(ctx context.Context, id int, currentUserID int, currentRole string) error {
	tournament, err := s.tournamentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return ErrTournamentNotFound
		}
		return fmt.Errorf("failed to load tournament %d: %w", id, err)
	}
	if !canManage(tournament, currentUserID, currentRole) {
		return ErrForbiddenOperation
	}

	if err := s.tournamentRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repositories.ErrTournamentNotFound):
			return ErrTournamentNotFound
		case errors.Is(err, repositories.ErrTournamentInUse):
			return ErrTournamentInUse
		default:
			return fmt.Errorf("failed to delete tournament %d: %w", id, err)
		}
	}

	if tournament.LogoKey != nil && *tournament.LogoKey != "" && s.uploader != nil {
		if err := s.uploader.Delete(ctx, *tournament.LogoKey); err != nil {
			s.logger.Warn("failed to delete tournament logo from storage",
				slog.Int("tournament_id", id), slog.Any("error", err))
		}
	}
	return nil
}

func (s *tournamentService) UploadLogo(ctx context.Context, id int, currentUserID int, currentRole string, contentType string, file io.Reader) (*models.Tournament, error) {
	if s.uploader == nil {
		return nil, ErrUploaderDisabled
	}

	tournament, err := s.tournamentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to load tournament %d: %w", id, err)
	}
	if !canManage(tournament, currentUserID, currentRole) {
		return nil, ErrForbiddenOperation
	}

	ext, err := GetExtensionFromContentType(contentType)
	if err != nil {
		return nil, err
	}

	oldKey := tournament.LogoKey
	newKey := fmt.Sprintf("tournaments/%d/logo_%d%s", id, time.Now().UnixNano(), ext)

	if _, err := s.uploader.Upload(ctx, newKey, contentType, file); err != nil {
		return nil, fmt.Errorf("failed to upload tournament logo: %w", err)
	}
	if err := s.tournamentRepo.UpdateLogoKey(ctx, id, &newKey); err != nil {
		// Запись не обновилась, подчищаем только что залитый объект.
		if delErr := s.uploader.Delete(ctx, newKey); delErr != nil {
			s.logger.Warn("failed to clean up orphaned logo object",
				slog.String("key", newKey), slog.Any("error", delErr))
		}
		return nil, fmt.Errorf("failed to persist logo key for tournament %d: %w", id, err)
	}

	if oldKey != nil && *oldKey != "" {
		if err := s.uploader.Delete(ctx, *oldKey); err != nil {
			s.logger.Warn("failed to delete previous tournament logo",
				slog.String("key", *oldKey), slog.Any("error", err))
		}
	}

	tournament.LogoKey = &newKey
	populateTournamentLogoURL(tournament, s.uploader)
	return tournament, nil
}

// AutoUpdateTournamentStatusesByDates активирует турниры, чья дата старта
// наступила. Вызывается планировщиком из main.
func (s *tournamentService) AutoUpdateTournamentStatusesByDates(ctx context.Context) error {
	due, err := s.tournamentRepo.ListDueForActivation(ctx, nil, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to list tournaments due for activation: %w", err)
	}

	for _, tournament := range due {
		count, err := s.competitorRepo.CountByTournament(ctx, nil, tournament.ID)
		if err != nil {
			s.logger.Error("scheduler: failed to count competitors",
				slog.Int("tournament_id", tournament.ID), slog.Any("error", err))
			continue
		}
		if count < 2 {
			// Нечего стартовать, ждём следующих записей или ручной отмены.
			s.logger.Warn("scheduler: tournament start date passed with too few competitors",
				slog.Int("tournament_id", tournament.ID), slog.Int("competitors", count))
			continue
		}
		if err := s.tournamentRepo.UpdateStatus(ctx, nil, tournament.ID, models.StatusActive); err != nil {
			s.logger.Error("scheduler: failed to activate tournament",
				slog.Int("tournament_id", tournament.ID), slog.Any("error", err))
			continue
		}
		tournament.Status = models.StatusActive
		s.logger.Info("scheduler: tournament activated",
			slog.Int("tournament_id", tournament.ID), slog.String("name", tournament.Name))
		s.broadcastStatus(tournament)
	}
	return nil
}

func (s *tournamentService) broadcastStatus(t *models.Tournament) {
	if s.hub == nil {
		return
	}
	room := live.TournamentRoom(t.ID)
	s.hub.BroadcastToRoom(room, live.Message{
		Type:   live.EventTournamentStatus,
		RoomID: room,
		Payload: map[string]interface{}{
			"tournament_id": t.ID,
			"status":        t.Status,
			"current_round": t.CurrentRound,
		},
	})
}
