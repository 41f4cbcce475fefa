package services

import (
	"context"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"materieelbeheer/internal/dto"
	"materieelbeheer/internal/entities"
	"materieelbeheer/internal/repositories"
)

type WerfServiceInterface interface {
	GetWerven(ctx context.Context) ([]*entities.Werf, error)
	FindWerf(ctx context.Context, id uint64) (*entities.Werf, error)
	CreateWerf(ctx context.Context, payload dto.CreateWerfDTO) (*entities.Werf, error)
	UpdateWerf(ctx context.Context, id uint64, payload dto.UpdateWerfDTO) (*entities.Werf, error)
	DeleteWerf(ctx context.Context, id uint64) error
}

type WerfService struct {
	werfRepo repositories.WerfRepositoryInterface
	logger   *zap.Logger
}

func NewWerfService(werfRepo repositories.WerfRepositoryInterface, logger *zap.Logger) WerfServiceInterface {
	return &WerfService{werfRepo: werfRepo, logger: logger}
}

func (s *WerfService) GetWerven(ctx context.Context) ([]*entities.Werf, error) {
	return s.werfRepo.GetWerven(ctx)
}

func (s *WerfService) FindWerf(ctx context.Context, id uint64) (*entities.Werf, error) {
	return s.werfRepo.FindWerf(ctx, id)
}

func (s *WerfService) CreateWerf(ctx context.Context, payload dto.CreateWerfDTO) (*entities.Werf, error) {
	w := entities.Werf{
		Name:    payload.Name,
		Address: null.StringFromPtr(payload.Address),
	}
	id, err := s.werfRepo.CreateWerf(ctx, w)
	if err != nil {
		return nil, err
	}
	s.logger.Info("werf aangemaakt", zap.Uint64("werf_id", id), zap.String("name", w.Name))
	return s.werfRepo.FindWerf(ctx, id)
}

func (s *WerfService) UpdateWerf(ctx context.Context, id uint64, payload dto.UpdateWerfDTO) (*entities.Werf, error) {
	existing, err := s.werfRepo.FindWerf(ctx, id)
	if err != nil {
		return nil, err
	}
	if payload.Name != nil {
		existing.Name = *payload.Name
	}
	if payload.Address != nil {
		existing.Address = null.StringFrom(*payload.Address)
	}
	if err := s.werfRepo.UpdateWerf(ctx, id, *existing); err != nil {
		return nil, err
	}
	return s.werfRepo.FindWerf(ctx, id)
}

func (s *WerfService) DeleteWerf(ctx context.Context, id uint64) error {
	if _, err := s.werfRepo.FindWerf(ctx, id); err != nil {
		return err
	}
	return s.werfRepo.DeleteWerf(ctx, id)
}
