package services

import (
	"context"
	"fmt"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"materieelbeheer/internal/dto"
	"materieelbeheer/internal/entities"
	"materieelbeheer/internal/inspection"
	"materieelbeheer/internal/repositories"
	apperrors "materieelbeheer/pkg/errors"
)

const inspectionDateLayout = "2006-01-02"

type InspectionServiceInterface interface {
	CreateInspection(ctx context.Context, userID uint64, payload dto.CreateInspectionDTO) (*entities.InspectionRecord, error)
	GetByMaterial(ctx context.Context, materialID uint64) ([]entities.InspectionRecord, error)
	GetAll(ctx context.Context) ([]dto.InspectionRecordDTO, error)
	AttachCertificate(ctx context.Context, recordID uint64, path string) error
}

type InspectionService struct {
	inspectionRepo repositories.InspectionRepositoryInterface
	materialRepo   repositories.MaterialRepositoryInterface
	typeRepo       repositories.MaterialTypeRepositoryInterface
	activityRepo   repositories.ActivityRepositoryInterface
	cacheRepo      repositories.CacheRepositoryInterface
	txManager      repositories.TxManagerInterface
	lookaheadDays  int
	logger         *zap.Logger
}

func NewInspectionService(
	inspectionRepo repositories.InspectionRepositoryInterface,
	materialRepo repositories.MaterialRepositoryInterface,
	typeRepo repositories.MaterialTypeRepositoryInterface,
	activityRepo repositories.ActivityRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	txManager repositories.TxManagerInterface,
	lookaheadDays int,
	logger *zap.Logger,
) InspectionServiceInterface {
	return &InspectionService{
		inspectionRepo: inspectionRepo,
		materialRepo:   materialRepo,
		typeRepo:       typeRepo,
		activityRepo:   activityRepo,
		cacheRepo:      cacheRepo,
		txManager:      txManager,
		lookaheadDays:  lookaheadDays,
		logger:         logger,
	}
}

// CreateInspection registreert een keuringsresultaat en werkt in dezelfde
// transactie de gecachte materiaalstatus bij. De vervaldatum wordt bij
// registratie berekend uit het keuringsinterval van het materiaaltype en
// daarna nooit meer herrekend.
func (s *InspectionService) CreateInspection(ctx context.Context, userID uint64, payload dto.CreateInspectionDTO) (*entities.InspectionRecord, error) {
	material, err := s.materialRepo.FindMaterial(ctx, payload.MaterialID)
	if err != nil {
		return nil, err
	}

	inspDate, err := time.ParseInLocation(inspectionDateLayout, payload.InspectionDate, time.UTC)
	if err != nil {
		return nil, apperrors.NewInvalidInputError("ongeldige keuringsdatum %q, verwacht JJJJ-MM-DD", payload.InspectionDate)
	}
	if !entities.ValidResult(payload.Result) {
		return nil, apperrors.NewInvalidInputError("ongeldig keuringsresultaat %q", payload.Result)
	}

	rec := entities.InspectionRecord{
		MaterialID:     material.ID,
		Serial:         material.Serial,
		InspectionDate: inspDate,
		Result:         payload.Result,
		PerformedBy:    payload.PerformedBy,
		Notes:          null.StringFromPtr(payload.Notes),
	}

	if material.MaterialTypeID.Valid {
		mt, err := s.typeRepo.FindMaterialType(ctx, material.MaterialTypeID.Uint64)
		if err != nil {
			return nil, err
		}
		if mt.InspectionValidityDays.Valid {
			days := mt.InspectionValidityDays.Int
			if days <= 0 {
				// Nooit stilzwijgend defaulten: een onbruikbaar interval is
				// een configuratiefout die hersteld moet worden.
				return nil, apperrors.NewInvalidConfigurationError(
					"materiaaltype %q heeft een ongeldig keuringsinterval (%d dagen)", mt.Name, days)
			}
			rec.NextDueDate = null.TimeFrom(inspection.NextDueDate(inspDate, days))
		}
	}

	// De nieuwe status volgt uit de meest recente keuring over het hele
	// logboek; een nagekomen oude keuring verandert de status dus niet.
	existing, err := s.inspectionRepo.GetByMaterial(ctx, material.ID)
	if err != nil {
		return nil, err
	}

	var recordID uint64
	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		id, err := s.inspectionRepo.CreateRecord(ctx, tx, rec)
		if err != nil {
			return fmt.Errorf("keuring registreren mislukt: %w", err)
		}
		recordID = id

		withNew := append(existing, entities.InspectionRecord{
			ID:             id,
			MaterialID:     rec.MaterialID,
			InspectionDate: rec.InspectionDate,
			Result:         rec.Result,
			NextDueDate:    rec.NextDueDate,
		})
		latest := inspection.LatestInspection(withNew)
		status := inspection.ResolveStatus(latest, time.Now(), s.lookaheadDays)

		return s.materialRepo.RecordInspectionOutcome(ctx, tx, material.ID, string(status), latest.InspectionDate)
	})
	if err != nil {
		return nil, err
	}

	if err := s.cacheRepo.Del(ctx, priorityCountsCacheKey); err != nil {
		s.logger.Warn("prioriteitencache legen mislukt", zap.Error(err))
	}
	if err := s.activityRepo.LogActivity(ctx, "keuring", material.Name, material.Serial.String, payload.PerformedBy); err != nil {
		s.logger.Warn("activiteit loggen mislukt", zap.Error(err))
	}

	s.logger.Info("keuring geregistreerd",
		zap.Uint64("material_id", material.ID),
		zap.Uint64("record_id", recordID),
		zap.String("result", rec.Result))

	return s.inspectionRepo.FindRecord(ctx, recordID)
}

func (s *InspectionService) GetByMaterial(ctx context.Context, materialID uint64) ([]entities.InspectionRecord, error) {
	if _, err := s.materialRepo.FindMaterial(ctx, materialID); err != nil {
		return nil, err
	}
	return s.inspectionRepo.GetByMaterial(ctx, materialID)
}

// GetAll geeft de volledige keuringshistoriek over alle materialen,
// nieuwste keuring eerst, voor de historiekpagina.
func (s *InspectionService) GetAll(ctx context.Context) ([]dto.InspectionRecordDTO, error) {
	records, materials, err := s.inspectionRepo.GetAllWithMaterial(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.InspectionRecordDTO, 0, len(records))
	for i := range records {
		rec := &records[i]

		item := dto.InspectionRecordDTO{
			ID:             rec.ID,
			MaterialID:     rec.MaterialID,
			Serial:         rec.Serial.String,
			InspectionDate: rec.InspectionDate.Format(inspectionDateLayout),
			Result:         rec.Result,
			PerformedBy:    rec.PerformedBy,
			Notes:          rec.Notes.String,
			HasCertificate: rec.CertificatePath.Valid,
		}
		if m, ok := materials[rec.MaterialID]; ok {
			item.Material = m.Name
			if item.Serial == "" {
				item.Serial = m.Serial.String
			}
		}
		if rec.NextDueDate.Valid {
			v := rec.NextDueDate.Time.Format(inspectionDateLayout)
			item.NextDueDate = &v
		}
		out = append(out, item)
	}
	return out, nil
}

// AttachCertificate koppelt een geüpload certificaat aan een keuring.
func (s *InspectionService) AttachCertificate(ctx context.Context, recordID uint64, path string) error {
	if _, err := s.inspectionRepo.FindRecord(ctx, recordID); err != nil {
		return err
	}
	return s.inspectionRepo.SetCertificatePath(ctx, recordID, path)
}
