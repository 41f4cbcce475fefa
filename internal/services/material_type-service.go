package services

import (
	"context"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"materieelbeheer/internal/dto"
	"materieelbeheer/internal/entities"
	"materieelbeheer/internal/repositories"
)

type MaterialTypeServiceInterface interface {
	GetMaterialTypes(ctx context.Context) ([]*entities.MaterialType, error)
	FindMaterialType(ctx context.Context, id uint64) (*entities.MaterialType, error)
	CreateMaterialType(ctx context.Context, payload dto.CreateMaterialTypeDTO) (*entities.MaterialType, error)
	UpdateMaterialType(ctx context.Context, id uint64, payload dto.UpdateMaterialTypeDTO) (*entities.MaterialType, error)
	DeleteMaterialType(ctx context.Context, id uint64) error
}

type MaterialTypeService struct {
	typeRepo repositories.MaterialTypeRepositoryInterface
	logger   *zap.Logger
}

func NewMaterialTypeService(typeRepo repositories.MaterialTypeRepositoryInterface, logger *zap.Logger) MaterialTypeServiceInterface {
	return &MaterialTypeService{typeRepo: typeRepo, logger: logger}
}

func (s *MaterialTypeService) GetMaterialTypes(ctx context.Context) ([]*entities.MaterialType, error) {
	return s.typeRepo.GetMaterialTypes(ctx)
}

func (s *MaterialTypeService) FindMaterialType(ctx context.Context, id uint64) (*entities.MaterialType, error) {
	return s.typeRepo.FindMaterialType(ctx, id)
}

func (s *MaterialTypeService) CreateMaterialType(ctx context.Context, payload dto.CreateMaterialTypeDTO) (*entities.MaterialType, error) {
	mt := entities.MaterialType{
		Name:                   payload.Name,
		InspectionValidityDays: null.IntFromPtr(payload.InspectionValidityDays),
	}
	id, err := s.typeRepo.CreateMaterialType(ctx, mt)
	if err != nil {
		return nil, err
	}
	s.logger.Info("materiaaltype aangemaakt", zap.Uint64("type_id", id), zap.String("name", mt.Name))
	return s.typeRepo.FindMaterialType(ctx, id)
}

func (s *MaterialTypeService) UpdateMaterialType(ctx context.Context, id uint64, payload dto.UpdateMaterialTypeDTO) (*entities.MaterialType, error) {
	existing, err := s.typeRepo.FindMaterialType(ctx, id)
	if err != nil {
		return nil, err
	}
	if payload.Name != nil {
		existing.Name = *payload.Name
	}
	if payload.InspectionValidityDays != nil {
		// Een interval wijzigen geldt alleen voor keuringen die hierna
		// geregistreerd worden; bestaande vervaldata blijven staan.
		existing.InspectionValidityDays = null.IntFrom(*payload.InspectionValidityDays)
	}
	if err := s.typeRepo.UpdateMaterialType(ctx, id, *existing); err != nil {
		return nil, err
	}
	return s.typeRepo.FindMaterialType(ctx, id)
}

func (s *MaterialTypeService) DeleteMaterialType(ctx context.Context, id uint64) error {
	if _, err := s.typeRepo.FindMaterialType(ctx, id); err != nil {
		return err
	}
	return s.typeRepo.DeleteMaterialType(ctx, id)
}
