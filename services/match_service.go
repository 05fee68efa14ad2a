package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tabledraw/tabledraw/live"
	"github.com/tabledraw/tabledraw/metrics"
	"github.com/tabledraw/tabledraw/models"
	"github.com/tabledraw/tabledraw/repositories"
)

// MatchService фиксирует результаты. Каждая запись счёта пересчитывает
// снимок таблицы в той же транзакции, а закрытие последнего матча
// финального тура завершает турнир.
type MatchService interface {
	RecordScore(ctx context.Context, matchID int, currentUserID int, currentRole string, input RecordScoreInput) (*models.Match, error)
	ListByTournament(ctx context.Context, tournamentID int, round *int, status *models.MatchStatus) ([]models.Match, error)
}

type RecordScoreInput struct {
	Score1 *int `json:"score1"`
	Score2 *int `json:"score2"`
}

type matchService struct {
	db             *sql.DB
	matchRepo      repositories.MatchRepository
	tournamentRepo repositories.TournamentRepository
	competitorRepo repositories.CompetitorRepository
	standingRepo   repositories.StandingRepository
	userRepo       repositories.UserRepository
	hub            *live.Hub
	emailService   *EmailService
	logger         *slog.Logger
}

func NewMatchService(
	db *sql.DB,
	matchRepo repositories.MatchRepository,
	tournamentRepo repositories.TournamentRepository,
	competitorRepo repositories.CompetitorRepository,
	standingRepo repositories.StandingRepository,
	userRepo repositories.UserRepository,
	hub *live.Hub,
	emailService *EmailService,
	logger *slog.Logger,
) MatchService {
	return &matchService{
		db:             db,
		matchRepo:      matchRepo,
		tournamentRepo: tournamentRepo,
		competitorRepo: competitorRepo,
		standingRepo:   standingRepo,
		userRepo:       userRepo,
		hub:            hub,
		emailService:   emailService,
		logger:         logger,
	}
}

func (s *matchService) RecordScore(ctx context.Context, matchID int, currentUserID int, currentRole string, input RecordScoreInput) (*models.Match, error) {
	if input.Score1 == nil || input.Score2 == nil {
		return nil, fmt.Errorf("%w: score1 and score2 are required", ErrValidationFailed)
	}
	if *input.Score1 < 0 || *input.Score2 < 0 {
		return nil, ErrScoreNegative
	}

	match, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to load match %d: %w", matchID, err)
	}
	if match.IsBye {
		return nil, ErrByeNotScorable
	}

	tournament, err := s.tournamentRepo.GetByID(ctx, match.TournamentID)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to load tournament %d: %w", match.TournamentID, err)
	}
	if !canManage(tournament, currentUserID, currentRole) {
		return nil, ErrForbiddenOperation
	}
	// Пока турнир активен, счёт можно исправлять сколько угодно раз;
	// после завершения таблица зафиксирована.
	if tournament.Status != models.StatusActive {
		return nil, ErrScoreLocked
	}

	var winnerID *int
	switch {
	case *input.Score1 > *input.Score2:
		winnerID = &match.Competitor1ID
	case *input.Score2 > *input.Score1:
		winnerID = match.Competitor2ID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.matchRepo.UpdateScore(ctx, tx, matchID, input.Score1, input.Score2, winnerID, models.MatchStatusCompleted); err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to record score for match %d: %w", matchID, err)
	}

	standingRows, err := refreshStandingsSnapshot(ctx, tx, tournament.ID, s.competitorRepo, s.matchRepo, s.standingRepo)
	if err != nil {
		return nil, err
	}

	// Последний закрытый матч финального тура завершает турнир.
	completed := false
	if tournament.CurrentRound >= tournament.TotalRounds {
		pending, err := s.matchRepo.CountByTournamentAndStatus(ctx, tx, tournament.ID, tournament.CurrentRound, models.MatchStatusScheduled)
		if err != nil {
			return nil, fmt.Errorf("failed to count pending matches: %w", err)
		}
		if pending == 0 {
			if err := s.tournamentRepo.UpdateStatus(ctx, tx, tournament.ID, models.StatusCompleted); err != nil {
				return nil, fmt.Errorf("failed to complete tournament %d: %w", tournament.ID, err)
			}
			completed = true
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit score for match %d: %w", matchID, err)
	}

	match.Score1 = input.Score1
	match.Score2 = input.Score2
	match.WinnerID = winnerID
	match.Status = models.MatchStatusCompleted

	metrics.ScoresRecorded.Inc()
	s.logger.Info("score recorded",
		slog.Int("tournament_id", tournament.ID),
		slog.Int("match_id", matchID),
		slog.Int("round", match.Round),
		slog.Int("score1", *input.Score1),
		slog.Int("score2", *input.Score2),
	)

	room := live.TournamentRoom(tournament.ID)
	if s.hub != nil {
		s.hub.BroadcastToRoom(room, live.Message{
			Type:   live.EventStandingsUpdated,
			RoomID: room,
			Payload: map[string]interface{}{
				"tournament_id": tournament.ID,
				"round":         match.Round,
				"standings":     standingRows,
			},
		})
	}

	if completed {
		tournament.Status = models.StatusCompleted
		if s.hub != nil {
			s.hub.BroadcastToRoom(room, live.Message{
				Type:   live.EventTournamentStatus,
				RoomID: room,
				Payload: map[string]interface{}{
					"tournament_id": tournament.ID,
					"status":        tournament.Status,
					"current_round": tournament.CurrentRound,
				},
			})
		}
		s.notifyTournamentCompleted(ctx, tournament, standingRows)
	}

	return match, nil
}

// refreshStandingsSnapshot пересчитывает таблицу по всей истории и
// перезаписывает снимок. Выполняется внутри транзакции записи счёта или
// отката тура.
func refreshStandingsSnapshot(
	ctx context.Context,
	exec repositories.SQLExecutor,
	tournamentID int,
	competitorRepo repositories.CompetitorRepository,
	matchRepo repositories.MatchRepository,
	standingRepo repositories.StandingRepository,
) ([]*models.Standing, error) {
	roster, err := competitorRepo.ListByTournament(ctx, exec, tournamentID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load competitors of tournament %d: %w", tournamentID, err)
	}
	committed, err := matchRepo.ListByTournament(ctx, exec, tournamentID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load match history of tournament %d: %w", tournamentID, err)
	}

	history, scores := engineHistory(committed)
	standings, err := computeCurrentStandings(roster, history, scores)
	if err != nil {
		return nil, err
	}

	rows := make([]*models.Standing, 0, len(standings))
	for _, st := range standings {
		rows = append(rows, &models.Standing{
			TournamentID: tournamentID,
			CompetitorID: st.CompetitorID,
			GamesPlayed:  st.GamesPlayed,
			Wins:         st.Wins,
			Draws:        st.Draws,
			Losses:       st.Losses,
			Points:       st.Points,
			Spread:       st.Spread,
			Starts:       st.Starts,
			Rank:         st.Rank,
		})
	}
	if err := standingRepo.BatchUpsert(ctx, exec, rows); err != nil {
		return nil, fmt.Errorf("failed to upsert standings snapshot: %w", err)
	}
	return rows, nil
}

func (s *matchService) notifyTournamentCompleted(ctx context.Context, tournament *models.Tournament, standings []*models.Standing) {
	if s.emailService == nil {
		return
	}
	director, err := s.userRepo.GetByID(ctx, tournament.DirectorID)
	if err != nil {
		s.logger.Warn("failed to load director for completion email",
			slog.Int("tournament_id", tournament.ID), slog.Any("error", err))
		return
	}

	winnerName := ""
	if len(standings) > 0 {
		if c, err := s.competitorRepo.GetByID(ctx, standings[0].CompetitorID); err == nil {
			winnerName = c.Name
		}
	}
	if err := s.emailService.SendTournamentCompletedEmail(director.Email, tournament.Name, winnerName); err != nil {
		s.logger.Warn("failed to send tournament completion email",
			slog.Int("tournament_id", tournament.ID), slog.Any("error", err))
	}
}

func (s *matchService) ListByTournament(ctx context.Context, tournamentID int, round *int, status *models.MatchStatus) ([]models.Match, error) {
	if _, err := s.tournamentRepo.GetByID(ctx, tournamentID); err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to load tournament %d: %w", tournamentID, err)
	}

	matches, err := s.matchRepo.ListByTournament(ctx, nil, tournamentID, round, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches of tournament %d: %w", tournamentID, err)
	}

	// Обогащаем строки именами, чтобы клиенту не ходить за составом отдельно.
	roster, err := s.competitorRepo.ListByTournament(ctx, nil, tournamentID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load competitors of tournament %d: %w", tournamentID, err)
	}
	byID := make(map[int]*models.Competitor, len(roster))
	for _, c := range roster {
		if c != nil {
			byID[c.ID] = c
		}
	}

	list := make([]models.Match, 0, len(matches))
	for _, m := range matches {
		if m == nil {
			continue
		}
		row := *m
		row.Competitor1 = byID[row.Competitor1ID]
		if row.Competitor2ID != nil {
			row.Competitor2 = byID[*row.Competitor2ID]
		}
		list = append(list, row)
	}
	return list, nil
}
