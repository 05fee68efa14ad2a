package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/tabledraw/tabledraw/live"
	"github.com/tabledraw/tabledraw/metrics"
	"github.com/tabledraw/tabledraw/models"
	"github.com/tabledraw/tabledraw/pairing"
	"github.com/tabledraw/tabledraw/repositories"
	"golang.org/x/sync/errgroup"
)

// PairingService генерирует очередной тур: собирает входы движка из
// зафиксированной истории, запускает стратегию и атомарно коммитит
// полученные пары.
type PairingService interface {
	GenerateRound(ctx context.Context, tournamentID int, currentUserID int, currentRole string, input GenerateRoundInput) (*RoundResult, error)
	VoidCurrentRound(ctx context.Context, tournamentID int, currentUserID int, currentRole string) error
}

// GenerateRoundInput позволяет разово переопределить политику турнира:
// очередной тур можно спарить другой стратегией, не трогая настройки.
type GenerateRoundInput struct {
	PolicyKind       *string  `json:"policy_kind,omitempty"`
	AvoidRematches   *bool    `json:"avoid_rematches,omitempty"`
	Gibsonization    *bool    `json:"gibsonization,omitempty"`
	RematchScanLimit int      `json:"rematch_scan_limit,omitempty"`
	ManualPairs      [][2]int `json:"manual_pairs,omitempty"`
}

type RoundResult struct {
	TournamentID int            `json:"tournament_id"`
	Round        int            `json:"round"`
	PairingRunID string         `json:"pairing_run_id"`
	Policy       string         `json:"policy"`
	Matches      []models.Match `json:"matches"`
	Bye          *models.Match  `json:"bye,omitempty"`
}

type pairingService struct {
	db             *sql.DB
	tournamentRepo repositories.TournamentRepository
	competitorRepo repositories.CompetitorRepository
	matchRepo      repositories.MatchRepository
	standingRepo   repositories.StandingRepository
	hub            *live.Hub
	logger         *slog.Logger
}

func NewPairingService(
	db *sql.DB,
	tournamentRepo repositories.TournamentRepository,
	competitorRepo repositories.CompetitorRepository,
	matchRepo repositories.MatchRepository,
	standingRepo repositories.StandingRepository,
	hub *live.Hub,
	logger *slog.Logger,
) PairingService {
	return &pairingService{
		db:             db,
		tournamentRepo: tournamentRepo,
		competitorRepo: competitorRepo,
		matchRepo:      matchRepo,
		standingRepo:   standingRepo,
		hub:            hub,
		logger:         logger,
	}
}

// engineHistory разворачивает зафиксированные матчи в представление движка:
// кто с кем играл, кто ходил первым, кто сидел, плюс записи счёта.
// Строки bye в счёт не попадают, это не игры.
func engineHistory(matches []*models.Match) ([]pairing.PlayedMatch, []pairing.ScoreRecord) {
	history := make([]pairing.PlayedMatch, 0, len(matches))
	scores := make([]pairing.ScoreRecord, 0, len(matches))
	for _, m := range matches {
		if m == nil {
			continue
		}
		if m.IsBye {
			history = append(history, pairing.PlayedMatch{
				Round: m.Round,
				P1:    m.Competitor1ID,
				Bye:   true,
			})
			continue
		}
		if m.Competitor2ID == nil {
			continue
		}
		played := pairing.PlayedMatch{
			Round: m.Round,
			P1:    m.Competitor1ID,
			P2:    *m.Competitor2ID,
		}
		if m.FirstMoverID != nil {
			played.FirstMove = *m.FirstMoverID
		}
		history = append(history, played)

		if m.Status == models.MatchStatusCompleted && m.Score1 != nil && m.Score2 != nil {
			scores = append(scores, pairing.ScoreRecord{
				Round:  m.Round,
				P1:     m.Competitor1ID,
				P2:     *m.Competitor2ID,
				Score1: *m.Score1,
				Score2: *m.Score2,
			})
		}
	}
	return history, scores
}

// computeCurrentStandings строит таблицу по полному составу (включая
// снявшихся, чтобы их сыгранные результаты не потерялись) и проставляет
// число первых ходов из истории.
func computeCurrentStandings(roster []*models.Competitor, history []pairing.PlayedMatch, scores []pairing.ScoreRecord) ([]pairing.Standing, error) {
	standings, err := pairing.ComputeStandings(roster, scores)
	if err != nil {
		return nil, err
	}
	starts := pairing.StartCounts(history)
	for i := range standings {
		standings[i].Starts = starts[standings[i].CompetitorID]
	}
	return standings, nil
}

// filterWithdrawn выбрасывает снявшихся из поля, подлежащего жеребьёвке.
func filterWithdrawn(standings []pairing.Standing, roster []*models.Competitor) []pairing.Standing {
	withdrawn := make(map[int]bool, len(roster))
	for _, c := range roster {
		if c != nil && c.Withdrawn {
			withdrawn[c.ID] = true
		}
	}
	field := make([]pairing.Standing, 0, len(standings))
	for _, s := range standings {
		if !withdrawn[s.CompetitorID] {
			field = append(field, s)
		}
	}
	return field
}

func (s *pairingService) GenerateRound(ctx context.Context, tournamentID int, currentUserID int, currentRole string, input GenerateRoundInput) (*RoundResult, error) {
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
	if tournament.Status != models.StatusActive {
		return nil, ErrTournamentNotActive
	}

	nextRound := tournament.CurrentRound + 1
	if nextRound > tournament.TotalRounds {
		return nil, ErrRoundsExhausted
	}
	if tournament.CurrentRound > 0 {
		pendingCount, err := s.matchRepo.CountByTournamentAndStatus(ctx, nil, tournamentID, tournament.CurrentRound, models.MatchStatusScheduled)
		if err != nil {
			return nil, fmt.Errorf("failed to count pending matches of round %d: %w", tournament.CurrentRound, err)
		}
		if pendingCount > 0 {
			return nil, fmt.Errorf("%w: %d matches of round %d", ErrRoundIncomplete, pendingCount, tournament.CurrentRound)
		}
	}

	policy := pairing.Policy{
		Kind:             pairing.PolicyKind(tournament.PolicyKind),
		AvoidRematches:   tournament.AvoidRematches,
		Gibsonization:    tournament.Gibsonization,
		RematchScanLimit: input.RematchScanLimit,
	}
	if input.PolicyKind != nil {
		policy.Kind = pairing.PolicyKind(*input.PolicyKind)
	}
	if input.AvoidRematches != nil {
		policy.AvoidRematches = *input.AvoidRematches
	}
	if input.Gibsonization != nil {
		policy.Gibsonization = *input.Gibsonization
	}
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	if policy.Kind == pairing.PolicyManual && len(input.ManualPairs) == 0 {
		return nil, ErrManualPairsMissing
	}

	// Состав и история подгружаются параллельно.
	var (
		roster    []*models.Competitor
		committed []*models.Match
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		roster, err = s.competitorRepo.ListByTournament(gctx, nil, tournamentID, true)
		if err != nil {
			return fmt.Errorf("failed to load competitors of tournament %d: %w", tournamentID, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		committed, err = s.matchRepo.ListByTournament(gctx, nil, tournamentID, nil, nil)
		if err != nil {
			return fmt.Errorf("failed to load match history of tournament %d: %w", tournamentID, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	history, scores := engineHistory(committed)
	standings, err := computeCurrentStandings(roster, history, scores)
	if err != nil {
		return nil, err
	}
	field := filterWithdrawn(standings, roster)

	round, err := pairing.GeneratePairings(pairing.Params{
		Standings:   field,
		Policy:      policy,
		Ledger:      pairing.NewRematchLedger(history),
		ByeCounts:   pairing.ByeCounts(history),
		Round:       nextRound,
		TotalRounds: tournament.TotalRounds,
		Manual:      input.ManualPairs,
	})
	if err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	result := &RoundResult{
		TournamentID: tournamentID,
		Round:        round.Number,
		PairingRunID: runID,
		Policy:       string(policy.Kind),
		Matches:      make([]models.Match, 0, len(round.Matches)),
	}

	// Пары и новый номер тура коммитятся одной транзакцией: либо тур
	// создан целиком, либо его нет.
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, m := range round.Matches {
		p2 := m.P2
		firstMove := m.FirstMove
		row := &models.Match{
			TournamentID:  tournamentID,
			Round:         round.Number,
			TableNumber:   m.Table,
			PairingRunID:  runID,
			Competitor1ID: m.P1,
			Competitor2ID: &p2,
			FirstMoverID:  &firstMove,
			Rematch:       m.Rematch,
			C1Clinched:    m.P1Clinched,
			C2Clinched:    m.P2Clinched,
			Status:        models.MatchStatusScheduled,
		}
		if err := s.matchRepo.Create(ctx, tx, row); err != nil {
			return nil, fmt.Errorf("failed to insert match for table %d: %w", m.Table, err)
		}
		result.Matches = append(result.Matches, *row)
	}

	if round.Bye != nil {
		// Bye завершён с момента вставки: счёта у него не бывает.
		byeRow := &models.Match{
			TournamentID:  tournamentID,
			Round:         round.Number,
			TableNumber:   0,
			PairingRunID:  runID,
			Competitor1ID: *round.Bye,
			IsBye:         true,
			Status:        models.MatchStatusCompleted,
		}
		if err := s.matchRepo.Create(ctx, tx, byeRow); err != nil {
			return nil, fmt.Errorf("failed to insert bye row: %w", err)
		}
		result.Bye = byeRow
	}

	if err := s.tournamentRepo.UpdateCurrentRound(ctx, tx, tournamentID, round.Number); err != nil {
		return nil, fmt.Errorf("failed to advance current round: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit round %d: %w", round.Number, err)
	}

	metrics.RoundsPaired.WithLabelValues(string(policy.Kind)).Inc()
	s.logger.Info("round paired",
		slog.Int("tournament_id", tournamentID),
		slog.Int("round", round.Number),
		slog.String("policy", string(policy.Kind)),
		slog.Int("matches", len(result.Matches)),
		slog.String("pairing_run_id", runID),
	)

	if s.hub != nil {
		room := live.TournamentRoom(tournamentID)
		s.hub.BroadcastToRoom(room, live.Message{
			Type:    live.EventRoundPaired,
			RoomID:  room,
			Payload: result,
		})
	}
	return result, nil
}

// VoidCurrentRound откатывает текущий тур, если в нём ещё не записан ни
// один счёт: пары удаляются, номер тура уменьшается, снимок таблицы
// пересчитывается. Даёт директору перепарить тур другой стратегией.
func (s *pairingService) VoidCurrentRound(ctx context.Context, tournamentID int, currentUserID int, currentRole string) error {
	tournament, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return ErrTournamentNotFound
		}
		return fmt.Errorf("failed to load tournament %d: %w", tournamentID, err)
	}
	if !canManage(tournament, currentUserID, currentRole) {
		return ErrForbiddenOperation
	}
	if tournament.Status != models.StatusActive {
		return ErrTournamentNotActive
	}
	if tournament.CurrentRound < 1 {
		return ErrNoRoundToVoid
	}

	round := tournament.CurrentRound
	current, err := s.matchRepo.ListByTournament(ctx, nil, tournamentID, &round, nil)
	if err != nil {
		return fmt.Errorf("failed to load matches of round %d: %w", round, err)
	}
	if len(current) == 0 {
		return ErrNoRoundToVoid
	}
	for _, m := range current {
		// Строка bye закрыта с момента вставки, её статус тур не держит.
		if m != nil && !m.IsBye && m.Status == models.MatchStatusCompleted {
			return fmt.Errorf("%w: match %d", ErrRoundScored, m.ID)
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.matchRepo.DeleteByTournamentAndRound(ctx, tx, tournamentID, round); err != nil {
		return fmt.Errorf("failed to delete matches of round %d: %w", round, err)
	}
	if err := s.tournamentRepo.UpdateCurrentRound(ctx, tx, tournamentID, round-1); err != nil {
		return fmt.Errorf("failed to rewind current round: %w", err)
	}

	// Снимок содержит первые ходы и bye удалённого тура, поэтому его
	// нужно пересобрать. До первого тура истории нет вовсе.
	if round == 1 {
		if err := s.standingRepo.DeleteByTournament(ctx, tx, tournamentID); err != nil {
			return fmt.Errorf("failed to clear standings snapshot: %w", err)
		}
	} else {
		if _, err := refreshStandingsSnapshot(ctx, tx, tournamentID, s.competitorRepo, s.matchRepo, s.standingRepo); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit void of round %d: %w", round, err)
	}

	metrics.RoundsVoided.Inc()
	s.logger.Info("round voided",
		slog.Int("tournament_id", tournamentID),
		slog.Int("round", round),
	)

	if s.hub != nil {
		room := live.TournamentRoom(tournamentID)
		s.hub.BroadcastToRoom(room, live.Message{
			Type:   live.EventRoundVoided,
			RoomID: room,
			Payload: map[string]interface{}{
				"tournament_id": tournamentID,
				"round":         round,
				"current_round": round - 1,
			},
		})
	}
	return nil
}
