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

type UsageServiceInterface interface {
	StartUsage(ctx context.Context, userID uint64, payload dto.StartUsageDTO) (*entities.UsageRecord, error)
	StopUsage(ctx context.Context, userID uint64, usageID uint64) error
	AssignToWerf(ctx context.Context, usageID uint64, payload dto.AssignUsageToWerfDTO) error
	GetActiveUsages(ctx context.Context, userID uint64) (*dto.ActiveUsagesDTO, error)
	GetUsagesByMaterial(ctx context.Context, materialID uint64) ([]entities.UsageRecord, error)
}

type UsageService struct {
	usageRepo    repositories.UsageRepositoryInterface
	materialRepo repositories.MaterialRepositoryInterface
	werfRepo     repositories.WerfRepositoryInterface
	userRepo     repositories.UserRepositoryInterface
	activityRepo repositories.ActivityRepositoryInterface
	txManager    repositories.TxManagerInterface
	logger       *zap.Logger
}

func NewUsageService(
	usageRepo repositories.UsageRepositoryInterface,
	materialRepo repositories.MaterialRepositoryInterface,
	werfRepo repositories.WerfRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	activityRepo repositories.ActivityRepositoryInterface,
	txManager repositories.TxManagerInterface,
	logger *zap.Logger,
) UsageServiceInterface {
	return &UsageService{
		usageRepo:    usageRepo,
		materialRepo: materialRepo,
		werfRepo:     werfRepo,
		userRepo:     userRepo,
		activityRepo: activityRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// StartUsage checkt materieel uit: een nieuwe logboekregel plus het
// bijwerken van de materiaalstatus, in één transactie.
func (s *UsageService) StartUsage(ctx context.Context, userID uint64, payload dto.StartUsageDTO) (*entities.UsageRecord, error) {
	material, err := s.materialRepo.FindMaterial(ctx, payload.MaterialID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var werf *entities.Werf
	if payload.WerfID != nil {
		werf, err = s.werfRepo.FindWerf(ctx, *payload.WerfID)
		if err != nil {
			return nil, err
		}
	}

	site := null.StringFromPtr(payload.Site)
	if !site.Valid && werf != nil {
		site = null.StringFrom(werf.Name)
	}

	rec := entities.UsageRecord{
		MaterialID: material.ID,
		UserID:     null.Uint64From(userID),
		UsedBy:     null.StringFrom(user.Name),
		WerfID:     null.Uint64FromPtr(payload.WerfID),
		Site:       site,
		StartTime:  null.TimeFrom(time.Now()),
		IsActive:   true,
	}

	// Dubbele actieve regels worden bij het wegschrijven niet geweigerd;
	// de resolver kiest deterministisch de meest actuele.
	var usageID uint64
	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		id, err := s.usageRepo.CreateUsage(ctx, tx, rec)
		if err != nil {
			return fmt.Errorf("uitchecken mislukt: %w", err)
		}
		usageID = id

		return s.materialRepo.UpdateUsageState(ctx, tx, material.ID,
			entities.StatusInUse, null.StringFrom(user.Name), rec.WerfID, site)
	})
	if err != nil {
		return nil, err
	}

	if err := s.activityRepo.LogActivity(ctx, "checkout", material.Name, material.Serial.String, user.Name); err != nil {
		s.logger.Warn("activiteit loggen mislukt", zap.Error(err))
	}

	s.logger.Info("materieel uitgecheckt",
		zap.Uint64("material_id", material.ID),
		zap.Uint64("usage_id", usageID),
		zap.String("used_by", user.Name))

	return s.usageRepo.FindUsage(ctx, usageID)
}

// StopUsage checkt materieel in. Alleen de gebruiker zelf of een beheerder
// mag een uitlening stoppen. Inchecken is idempotent op het logboek: een
// al gestopte regel geeft een 400, het logboek blijft ongewijzigd.
func (s *UsageService) StopUsage(ctx context.Context, userID uint64, usageID uint64) error {
	usage, err := s.usageRepo.FindUsage(ctx, usageID)
	if err != nil {
		return err
	}
	if !usage.IsActive {
		return apperrors.NewInvalidInputError("uitlening %d is al gestopt", usageID)
	}

	user, err := s.userRepo.FindUser(ctx, userID)
	if err != nil {
		return err
	}
	if !user.IsAdmin() && (!usage.UserID.Valid || usage.UserID.Uint64 != userID) {
		return apperrors.ErrForbidden
	}

	material, err := s.materialRepo.FindMaterial(ctx, usage.MaterialID)
	if err != nil {
		return err
	}

	now := time.Now()
	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if err := s.usageRepo.StopUsage(ctx, tx, usageID, now); err != nil {
			return fmt.Errorf("inchecken mislukt: %w", err)
		}

		// Het materiaal gaat pas op "niet in gebruik" als er geen enkele
		// andere actieve regel meer is.
		records, err := s.usageRepo.GetUsagesByMaterial(ctx, usage.MaterialID)
		if err != nil {
			return err
		}
		for i := range records {
			if records[i].ID == usageID {
				records[i].IsActive = false
				records[i].EndTime = null.TimeFrom(now)
			}
		}
		if inspection.ResolveCurrentUsage(records, now) != nil {
			return nil
		}

		return s.materialRepo.UpdateUsageState(ctx, tx, usage.MaterialID,
			entities.StatusNotInUse, null.String{}, null.Uint64{}, null.String{})
	})
	if err != nil {
		return err
	}

	if err := s.activityRepo.LogActivity(ctx, "checkin", material.Name, material.Serial.String, user.Name); err != nil {
		s.logger.Warn("activiteit loggen mislukt", zap.Error(err))
	}

	s.logger.Info("materieel ingecheckt",
		zap.Uint64("material_id", usage.MaterialID),
		zap.Uint64("usage_id", usageID))
	return nil
}

func (s *UsageService) AssignToWerf(ctx context.Context, usageID uint64, payload dto.AssignUsageToWerfDTO) error {
	usage, err := s.usageRepo.FindUsage(ctx, usageID)
	if err != nil {
		return err
	}
	if !usage.IsActive {
		return apperrors.NewInvalidInputError("uitlening %d is niet actief", usageID)
	}

	werf, err := s.werfRepo.FindWerf(ctx, payload.WerfID)
	if err != nil {
		return err
	}
	return s.usageRepo.AssignToWerf(ctx, usageID, werf.ID, werf.Name)
}

// GetActiveUsages groepeert de actieve uitleningen voor de overzichtspagina:
// eigen uitleningen, die van anderen, en uitleningen zonder werf.
func (s *UsageService) GetActiveUsages(ctx context.Context, userID uint64) (*dto.ActiveUsagesDTO, error) {
	records, err := s.usageRepo.GetActiveUsages(ctx)
	if err != nil {
		return nil, err
	}

	out := &dto.ActiveUsagesDTO{
		MyUsages:             []dto.UsageDTO{},
		OtherUsages:          []dto.UsageDTO{},
		UsagesWithoutProject: []dto.UsageDTO{},
	}
	for i := range records {
		item := usageToDTO(&records[i])
		switch {
		case records[i].UserID.Valid && records[i].UserID.Uint64 == userID:
			out.MyUsages = append(out.MyUsages, item)
		case records[i].WerfID.Valid:
			out.OtherUsages = append(out.OtherUsages, item)
		default:
			out.UsagesWithoutProject = append(out.UsagesWithoutProject, item)
		}
	}
	return out, nil
}

func (s *UsageService) GetUsagesByMaterial(ctx context.Context, materialID uint64) ([]entities.UsageRecord, error) {
	if _, err := s.materialRepo.FindMaterial(ctx, materialID); err != nil {
		return nil, err
	}
	return s.usageRepo.GetUsagesByMaterial(ctx, materialID)
}

func usageToDTO(u *entities.UsageRecord) dto.UsageDTO {
	item := dto.UsageDTO{
		ID:         u.ID,
		MaterialID: u.MaterialID,
		UsedBy:     u.UsedBy.String,
		Site:       u.Site.String,
		IsActive:   u.IsActive,
	}
	if u.Material != nil {
		item.Material = u.Material.Name
		item.Serial = u.Material.Serial.String
	}
	if u.WerfID.Valid {
		id := u.WerfID.Uint64
		item.WerfID = &id
	}
	if u.StartTime.Valid {
		v := u.StartTime.Time.Format(time.RFC3339)
		item.StartTime = &v
	}
	if u.EndTime.Valid {
		v := u.EndTime.Time.Format(time.RFC3339)
		item.EndTime = &v
	}
	return item
}
