package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/tabledraw/tabledraw/models"
)

var (
	ErrCompetitorNotFound          = errors.New("competitor not found")
	ErrCompetitorNameConflict      = errors.New("competitor name conflict for this tournament")
	ErrCompetitorTournamentInvalid = errors.New("competitor tournament conflict or invalid")
	ErrCompetitorInUse             = errors.New("competitor has recorded matches")
)

type CompetitorRepository interface {
	Create(ctx context.Context, exec SQLExecutor, competitor *models.Competitor) error
	GetByID(ctx context.Context, id int) (*models.Competitor, error)
	ListByTournament(ctx context.Context, exec SQLExecutor, tournamentID int, includeWithdrawn bool) ([]*models.Competitor, error)
	Update(ctx context.Context, competitor *models.Competitor) error
	SetWithdrawn(ctx context.Context, exec SQLExecutor, id int, withdrawn bool) error
	Delete(ctx context.Context, id int) error
	CountByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) (int, error)
}

type postgresCompetitorRepository struct {
	db *sql.DB
}

func NewPostgresCompetitorRepository(db *sql.DB) CompetitorRepository {
	return &postgresCompetitorRepository{db: db}
}

func (r *postgresCompetitorRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresCompetitorRepository) Create(ctx context.Context, exec SQLExecutor, c *models.Competitor) error {
	executor := r.getExecutor(exec)
	query := `
		INSERT INTO competitors (tournament_id, name, rating, withdrawn)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := executor.QueryRowContext(ctx, query,
		c.TournamentID,
		c.Name,
		c.Rating,
		c.Withdrawn,
	).Scan(&c.ID, &c.CreatedAt)

	return r.handleCompetitorError(err)
}

func (r *postgresCompetitorRepository) GetByID(ctx context.Context, id int) (*models.Competitor, error) {
	query := `
		SELECT id, tournament_id, name, rating, withdrawn, created_at
		FROM competitors
		WHERE id = $1`

	c := &models.Competitor{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.TournamentID, &c.Name, &c.Rating, &c.Withdrawn, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCompetitorNotFound
		}
		return nil, fmt.Errorf("failed to scan competitor by id %d: %w", id, err)
	}
	return c, nil
}

func (r *postgresCompetitorRepository) ListByTournament(ctx context.Context, exec SQLExecutor, tournamentID int, includeWithdrawn bool) ([]*models.Competitor, error) {
	executor := r.getExecutor(exec)
	query := `
		SELECT id, tournament_id, name, rating, withdrawn, created_at
		FROM competitors
		WHERE tournament_id = $1`
	if !includeWithdrawn {
		query += " AND withdrawn = FALSE"
	}
	query += " ORDER BY rating DESC, id ASC"

	rows, err := executor.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query competitors for tournament %d: %w", tournamentID, err)
	}
	defer rows.Close()

	competitors := make([]*models.Competitor, 0)
	for rows.Next() {
		var c models.Competitor
		if scanErr := rows.Scan(
			&c.ID, &c.TournamentID, &c.Name, &c.Rating, &c.Withdrawn, &c.CreatedAt,
		); scanErr != nil {
			return nil, fmt.Errorf("failed to scan competitor row: %w", scanErr)
		}
		competitors = append(competitors, &c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during competitor rows iteration: %w", err)
	}
	return competitors, nil
}

func (r *postgresCompetitorRepository) Update(ctx context.Context, c *models.Competitor) error {
	query := `
		UPDATE competitors
		SET name = $1, rating = $2
		WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, c.Name, c.Rating, c.ID)
	if err != nil {
		return r.handleCompetitorError(err)
	}
	return checkAffectedRows(result, ErrCompetitorNotFound)
}

func (r *postgresCompetitorRepository) SetWithdrawn(ctx context.Context, exec SQLExecutor, id int, withdrawn bool) error {
	executor := r.getExecutor(exec)
	query := `UPDATE competitors SET withdrawn = $1 WHERE id = $2`
	result, err := executor.ExecContext(ctx, query, withdrawn, id)
	if err != nil {
		return fmt.Errorf("failed to update withdrawn flag for competitor %d: %w", id, err)
	}
	return checkAffectedRows(result, ErrCompetitorNotFound)
}

func (r *postgresCompetitorRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM competitors WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return r.handleCompetitorError(err)
	}
	return checkAffectedRows(result, ErrCompetitorNotFound)
}

func (r *postgresCompetitorRepository) CountByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) (int, error) {
	executor := r.getExecutor(exec)
	var total int
	err := executor.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM competitors WHERE tournament_id = $1`, tournamentID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count competitors for tournament %d: %w", tournamentID, err)
	}
	return total, nil
}

func (r *postgresCompetitorRepository) handleCompetitorError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok {
		switch pqErr.Code {
		case "23505": // unique_violation
			if pqErr.Constraint == "competitors_tournament_id_name_key" {
				return ErrCompetitorNameConflict
			}
		case "23503": // foreign_key_violation
			if pqErr.Constraint == "competitors_tournament_id_fkey" {
				return ErrCompetitorTournamentInvalid
			}
			// матчи и строки таблицы ссылаются на competitors
			return ErrCompetitorInUse
		}
	}
	return err
}
