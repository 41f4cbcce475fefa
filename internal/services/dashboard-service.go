package services

import (
	"context"

	"go.uber.org/zap"

	"materieelbeheer/internal/repositories"
)

type DashboardServiceInterface interface {
	GetCounts(ctx context.Context) (repositories.DashboardCounts, error)
}

type DashboardService struct {
	dashboardRepo repositories.DashboardRepositoryInterface
	logger        *zap.Logger
}

func NewDashboardService(dashboardRepo repositories.DashboardRepositoryInterface, logger *zap.Logger) DashboardServiceInterface {
	return &DashboardService{dashboardRepo: dashboardRepo, logger: logger}
}

func (s *DashboardService) GetCounts(ctx context.Context) (repositories.DashboardCounts, error) {
	return s.dashboardRepo.GetCounts(ctx)
}
