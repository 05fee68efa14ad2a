package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tabledraw/tabledraw/models"
)

type DashboardRepository interface {
	GetStats(ctx context.Context) (models.DashboardStats, error)
}

type postgresDashboardRepository struct {
	db *sql.DB
}

func NewPostgresDashboardRepository(db *sql.DB) DashboardRepository {
	return &postgresDashboardRepository{db: db}
}

func (r *postgresDashboardRepository) GetStats(ctx context.Context) (models.DashboardStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM tournaments),
			(SELECT COUNT(*) FROM tournaments WHERE status = $1),
			(SELECT COUNT(*) FROM competitors),
			(SELECT COUNT(*) FROM matches)`

	var stats models.DashboardStats
	err := r.db.QueryRowContext(ctx, query, models.StatusActive).Scan(
		&stats.UsersTotal,
		&stats.TournamentsTotal,
		&stats.ActiveTournaments,
		&stats.CompetitorsTotal,
		&stats.MatchesTotal,
	)
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("failed to collect dashboard stats: %w", err)
	}
	return stats, nil
}
