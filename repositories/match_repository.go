package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lib/pq"
	"github.com/tabledraw/tabledraw/models"
)

var (
	ErrMatchNotFound          = errors.New("match not found")
	ErrMatchTournamentInvalid = errors.New("match tournament conflict or invalid")
	ErrMatchCompetitorInvalid = errors.New("match competitor conflict or invalid")
	ErrMatchWinnerInvalid     = errors.New("match winner conflict or invalid")
	ErrMatchTableConflict     = errors.New("match table already taken for this round")
)

type MatchRepository interface {
	Create(ctx context.Context, exec SQLExecutor, match *models.Match) error
	GetByID(ctx context.Context, id int) (*models.Match, error)
	ListByTournament(ctx context.Context, exec SQLExecutor, tournamentID int, round *int, status *models.MatchStatus) ([]*models.Match, error)
	UpdateScore(ctx context.Context, exec SQLExecutor, id int, score1, score2 *int, winnerID *int, status models.MatchStatus) error
	DeleteByTournamentAndRound(ctx context.Context, exec SQLExecutor, tournamentID, round int) error
	CountByTournamentAndStatus(ctx context.Context, exec SQLExecutor, tournamentID, round int, status models.MatchStatus) (int, error)
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

func (r *postgresMatchRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresMatchRepository) Create(ctx context.Context, exec SQLExecutor, m *models.Match) error {
	executor := r.getExecutor(exec)
	query := `
		INSERT INTO matches
			(tournament_id, round, table_number, pairing_run_id, competitor1_id, competitor2_id,
			 first_mover_id, is_bye, rematch, c1_clinched, c2_clinched, score1, score2, winner_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at, updated_at`

	err := executor.QueryRowContext(ctx, query,
		m.TournamentID,
		m.Round,
		m.TableNumber,
		m.PairingRunID,
		m.Competitor1ID,
		m.Competitor2ID,
		m.FirstMoverID,
		m.IsBye,
		m.Rematch,
		m.C1Clinched,
		m.C2Clinched,
		m.Score1,
		m.Score2,
		m.WinnerID,
		m.Status,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)

	return r.handleMatchError(err)
}

func (r *postgresMatchRepository) GetByID(ctx context.Context, id int) (*models.Match, error) {
	query := `
		SELECT id, tournament_id, round, table_number, pairing_run_id, competitor1_id, competitor2_id,
		       first_mover_id, is_bye, rematch, c1_clinched, c2_clinched, score1, score2, winner_id,
		       status, created_at, updated_at
		FROM matches
		WHERE id = $1`

	m := &models.Match{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&m.ID, &m.TournamentID, &m.Round, &m.TableNumber, &m.PairingRunID,
		&m.Competitor1ID, &m.Competitor2ID, &m.FirstMoverID,
		&m.IsBye, &m.Rematch, &m.C1Clinched, &m.C2Clinched,
		&m.Score1, &m.Score2, &m.WinnerID, &m.Status, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to scan match by id %d: %w", id, err)
	}
	return m, nil
}

func (r *postgresMatchRepository) ListByTournament(ctx context.Context, exec SQLExecutor, tournamentID int, roundFilter *int, statusFilter *models.MatchStatus) ([]*models.Match, error) {
	executor := r.getExecutor(exec)

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT id, tournament_id, round, table_number, pairing_run_id, competitor1_id, competitor2_id,
		       first_mover_id, is_bye, rematch, c1_clinched, c2_clinched, score1, score2, winner_id,
		       status, created_at, updated_at
		FROM matches
		WHERE tournament_id = $1`)

	args := []interface{}{tournamentID}
	placeholderIndex := 2

	if roundFilter != nil {
		queryBuilder.WriteString(" AND round = $")
		queryBuilder.WriteString(strconv.Itoa(placeholderIndex))
		args = append(args, *roundFilter)
		placeholderIndex++
	}
	if statusFilter != nil {
		queryBuilder.WriteString(" AND status = $")
		queryBuilder.WriteString(strconv.Itoa(placeholderIndex))
		args = append(args, *statusFilter)
	}

	queryBuilder.WriteString(" ORDER BY round ASC, table_number ASC, id ASC")

	rows, err := executor.QueryContext(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches for tournament %d: %w", tournamentID, err)
	}
	defer rows.Close()

	matches := make([]*models.Match, 0)
	for rows.Next() {
		var m models.Match
		if scanErr := rows.Scan(
			&m.ID, &m.TournamentID, &m.Round, &m.TableNumber, &m.PairingRunID,
			&m.Competitor1ID, &m.Competitor2ID, &m.FirstMoverID,
			&m.IsBye, &m.Rematch, &m.C1Clinched, &m.C2Clinched,
			&m.Score1, &m.Score2, &m.WinnerID, &m.Status, &m.CreatedAt, &m.UpdatedAt,
		); scanErr != nil {
			return nil, fmt.Errorf("failed to scan match row: %w", scanErr)
		}
		matches = append(matches, &m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during match rows iteration: %w", err)
	}
	return matches, nil
}

func (r *postgresMatchRepository) UpdateScore(ctx context.Context, exec SQLExecutor, id int, score1, score2 *int, winnerID *int, status models.MatchStatus) error {
	executor := r.getExecutor(exec)
	query := `
		UPDATE matches
		SET score1 = $1, score2 = $2, winner_id = $3, status = $4, updated_at = NOW()
		WHERE id = $5`

	result, err := executor.ExecContext(ctx, query, score1, score2, winnerID, status, id)
	if err != nil {
		return r.handleMatchError(err)
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) DeleteByTournamentAndRound(ctx context.Context, exec SQLExecutor, tournamentID, round int) error {
	executor := r.getExecutor(exec)
	query := `DELETE FROM matches WHERE tournament_id = $1 AND round = $2`
	_, err := executor.ExecContext(ctx, query, tournamentID, round)
	if err != nil {
		return fmt.Errorf("failed to delete matches of tournament %d round %d: %w", tournamentID, round, err)
	}
	return nil
}

func (r *postgresMatchRepository) CountByTournamentAndStatus(ctx context.Context, exec SQLExecutor, tournamentID, round int, status models.MatchStatus) (int, error) {
	executor := r.getExecutor(exec)
	var total int
	err := executor.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM matches WHERE tournament_id = $1 AND round = $2 AND status = $3`,
		tournamentID, round, status,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count matches of tournament %d round %d: %w", tournamentID, round, err)
	}
	return total, nil
}

func (r *postgresMatchRepository) handleMatchError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok {
		switch pqErr.Code {
		case "23505": // unique_violation
			if pqErr.Constraint == "matches_tournament_id_round_table_number_key" {
				return ErrMatchTableConflict
			}
		case "23503": // foreign_key_violation
			switch pqErr.Constraint {
			case "matches_tournament_id_fkey":
				return ErrMatchTournamentInvalid
			case "matches_competitor1_id_fkey", "matches_competitor2_id_fkey", "matches_first_mover_id_fkey":
				return ErrMatchCompetitorInvalid
			case "matches_winner_id_fkey":
				return ErrMatchWinnerInvalid
			}
		}
	}
	return err
}
