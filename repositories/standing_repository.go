package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tabledraw/tabledraw/models"
)

var (
	ErrStandingNotFound          = errors.New("standing not found")
	ErrStandingCompetitorInvalid = errors.New("standing competitor conflict or invalid")
	ErrStandingTournamentInvalid = errors.New("standing tournament conflict or invalid")
)

type StandingRepository interface {
	BatchUpsert(ctx context.Context, exec SQLExecutor, standings []*models.Standing) error
	ListByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) ([]*models.Standing, error)
	DeleteByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) error
}

type postgresStandingRepository struct {
	db *sql.DB
}

func NewPostgresStandingRepository(db *sql.DB) StandingRepository {
	return &postgresStandingRepository{db: db}
}

func (r *postgresStandingRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

// BatchUpsert writes the freshly computed table in one statement; the
// (tournament_id, competitor_id) key makes the write idempotent.
func (r *postgresStandingRepository) BatchUpsert(ctx context.Context, exec SQLExecutor, standings []*models.Standing) error {
	if len(standings) == 0 {
		return nil
	}
	executor := r.getExecutor(exec)

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		INSERT INTO standings
			(tournament_id, competitor_id, games_played, wins, draws, losses,
			 points, spread, starts, rank, updated_at)
		VALUES `)

	args := make([]interface{}, 0, len(standings)*11)
	now := time.Now().UTC()
	for i, s := range standings {
		if i > 0 {
			queryBuilder.WriteString(", ")
		}
		base := i * 11
		queryBuilder.WriteString(fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8, base+9, base+10, base+11))
		args = append(args,
			s.TournamentID, s.CompetitorID, s.GamesPlayed, s.Wins, s.Draws, s.Losses,
			s.Points, s.Spread, s.Starts, s.Rank, now,
		)
	}

	queryBuilder.WriteString(`
		ON CONFLICT (tournament_id, competitor_id) DO UPDATE SET
			games_played = EXCLUDED.games_played,
			wins = EXCLUDED.wins,
			draws = EXCLUDED.draws,
			losses = EXCLUDED.losses,
			points = EXCLUDED.points,
			spread = EXCLUDED.spread,
			starts = EXCLUDED.starts,
			rank = EXCLUDED.rank,
			updated_at = EXCLUDED.updated_at`)

	if _, err := executor.ExecContext(ctx, queryBuilder.String(), args...); err != nil {
		return fmt.Errorf("failed to upsert standings batch: %w", err)
	}
	return nil
}

func (r *postgresStandingRepository) ListByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) ([]*models.Standing, error) {
	executor := r.getExecutor(exec)
	query := `
		SELECT id, tournament_id, competitor_id, games_played, wins, draws, losses,
		       points, spread, starts, rank, updated_at
		FROM standings
		WHERE tournament_id = $1
		ORDER BY rank ASC`

	rows, err := executor.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query standings for tournament %d: %w", tournamentID, err)
	}
	defer rows.Close()

	standings := make([]*models.Standing, 0)
	for rows.Next() {
		var s models.Standing
		if scanErr := rows.Scan(
			&s.ID, &s.TournamentID, &s.CompetitorID, &s.GamesPlayed, &s.Wins, &s.Draws, &s.Losses,
			&s.Points, &s.Spread, &s.Starts, &s.Rank, &s.UpdatedAt,
		); scanErr != nil {
			return nil, fmt.Errorf("failed to scan standing row: %w", scanErr)
		}
		standings = append(standings, &s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during standing rows iteration: %w", err)
	}
	return standings, nil
}

func (r *postgresStandingRepository) DeleteByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) error {
	executor := r.getExecutor(exec)
	_, err := executor.ExecContext(ctx, `DELETE FROM standings WHERE tournament_id = $1`, tournamentID)
	if err != nil {
		return fmt.Errorf("failed to delete standings for tournament %d: %w", tournamentID, err)
	}
	return nil
}
