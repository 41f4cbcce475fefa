package services

import (
	"context"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"materieelbeheer/internal/dto"
	"materieelbeheer/internal/entities"
	"materieelbeheer/internal/inspection"
	"materieelbeheer/internal/repositories"
	"materieelbeheer/pkg/types"
)

type MaterialServiceInterface interface {
	GetMaterials(ctx context.Context, filter types.Filter) ([]*entities.Material, uint64, error)
	FindMaterial(ctx context.Context, id uint64) (*entities.Material, error)
	CreateMaterial(ctx context.Context, payload dto.CreateMaterialDTO) (*entities.Material, error)
	UpdateMaterial(ctx context.Context, id uint64, payload dto.UpdateMaterialDTO) (*entities.Material, error)
	DeleteMaterial(ctx context.Context, id uint64) error
}

type MaterialService struct {
	materialRepo repositories.MaterialRepositoryInterface
	typeRepo     repositories.MaterialTypeRepositoryInterface
	werfRepo     repositories.WerfRepositoryInterface
	logger       *zap.Logger
}

func NewMaterialService(
	materialRepo repositories.MaterialRepositoryInterface,
	typeRepo repositories.MaterialTypeRepositoryInterface,
	werfRepo repositories.WerfRepositoryInterface,
	logger *zap.Logger,
) MaterialServiceInterface {
	return &MaterialService{
		materialRepo: materialRepo,
		typeRepo:     typeRepo,
		werfRepo:     werfRepo,
		logger:       logger,
	}
}

func (s *MaterialService) GetMaterials(ctx context.Context, filter types.Filter) ([]*entities.Material, uint64, error) {
	return s.materialRepo.GetMaterials(ctx, filter)
}

func (s *MaterialService) FindMaterial(ctx context.Context, id uint64) (*entities.Material, error) {
	return s.materialRepo.FindMaterial(ctx, id)
}

func (s *MaterialService) CreateMaterial(ctx context.Context, payload dto.CreateMaterialDTO) (*entities.Material, error) {
	m := entities.Material{
		Name:             payload.Name,
		Serial:           null.StringFromPtr(payload.Serial),
		Type:             null.StringFromPtr(payload.Type),
		MaterialTypeID:   null.Uint64FromPtr(payload.MaterialTypeID),
		WerfID:           null.Uint64FromPtr(payload.WerfID),
		Site:             null.StringFromPtr(payload.Site),
		Status:           entities.StatusNotInUse,
		InspectionStatus: string(inspection.StatusNoInspection),
	}

	// Referentie-checks geven nette 404's in plaats van FK-fouten.
	if m.MaterialTypeID.Valid {
		if _, err := s.typeRepo.FindMaterialType(ctx, m.MaterialTypeID.Uint64); err != nil {
			return nil, err
		}
	}
	if m.WerfID.Valid {
		if _, err := s.werfRepo.FindWerf(ctx, m.WerfID.Uint64); err != nil {
			return nil, err
		}
	}

	id, err := s.materialRepo.CreateMaterial(ctx, m)
	if err != nil {
		return nil, err
	}

	s.logger.Info("materieel aangemaakt", zap.Uint64("material_id", id), zap.String("name", m.Name))
	return s.materialRepo.FindMaterial(ctx, id)
}

func (s *MaterialService) UpdateMaterial(ctx context.Context, id uint64, payload dto.UpdateMaterialDTO) (*entities.Material, error) {
	existing, err := s.materialRepo.FindMaterial(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.Name != nil {
		existing.Name = *payload.Name
	}
	if payload.Serial != nil {
		existing.Serial = null.StringFrom(*payload.Serial)
	}
	if payload.Type != nil {
		existing.Type = null.StringFrom(*payload.Type)
	}
	if payload.MaterialTypeID != nil {
		if _, err := s.typeRepo.FindMaterialType(ctx, *payload.MaterialTypeID); err != nil {
			return nil, err
		}
		existing.MaterialTypeID = null.Uint64From(*payload.MaterialTypeID)
	}
	if payload.WerfID != nil {
		if _, err := s.werfRepo.FindWerf(ctx, *payload.WerfID); err != nil {
			return nil, err
		}
		existing.WerfID = null.Uint64From(*payload.WerfID)
	}
	if payload.Site != nil {
		existing.Site = null.StringFrom(*payload.Site)
	}

	if err := s.materialRepo.UpdateMaterial(ctx, id, *existing); err != nil {
		return nil, err
	}
	return s.materialRepo.FindMaterial(ctx, id)
}

func (s *MaterialService) DeleteMaterial(ctx context.Context, id uint64) error {
	if _, err := s.materialRepo.FindMaterial(ctx, id); err != nil {
		return err
	}
	return s.materialRepo.DeleteMaterial(ctx, id)
}
