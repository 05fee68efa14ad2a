package services

import (
	"context"
	"fmt"

	"github.com/tabledraw/tabledraw/models"
	"github.com/tabledraw/tabledraw/repositories"
)

type DashboardService interface {
	GetStats(ctx context.Context) (models.DashboardStats, error)
}

type dashboardService struct {
	dashboardRepo repositories.DashboardRepository
}

func NewDashboardService(dashboardRepo repositories.DashboardRepository) DashboardService {
	return &dashboardService{dashboardRepo: dashboardRepo}
}

func (s *dashboardService) GetStats(ctx context.Context) (models.DashboardStats, error) {
	stats, err := s.dashboardRepo.GetStats(ctx)
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("failed to load dashboard stats: %w", err)
	}
	return stats, nil
}
