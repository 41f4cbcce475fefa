package services

import (
	"context"

	"go.uber.org/zap"

	"materieelbeheer/internal/entities"
	"materieelbeheer/internal/repositories"
)

type ActivityServiceInterface interface {
	GetActivities(ctx context.Context, filter repositories.ActivityFilter) ([]entities.Activity, error)
	GetUniqueUsers(ctx context.Context) ([]string, error)
}

type ActivityService struct {
	activityRepo repositories.ActivityRepositoryInterface
	logger       *zap.Logger
}

func NewActivityService(activityRepo repositories.ActivityRepositoryInterface, logger *zap.Logger) ActivityServiceInterface {
	return &ActivityService{activityRepo: activityRepo, logger: logger}
}

func (s *ActivityService) GetActivities(ctx context.Context, filter repositories.ActivityFilter) ([]entities.Activity, error) {
	return s.activityRepo.GetActivities(ctx, filter)
}

func (s *ActivityService) GetUniqueUsers(ctx context.Context) ([]string, error) {
	return s.activityRepo.GetUniqueUsers(ctx)
}
