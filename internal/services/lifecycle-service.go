package services

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"materieelbeheer/internal/dto"
	"materieelbeheer/internal/entities"
	"materieelbeheer/internal/inspection"
	"materieelbeheer/internal/repositories"
)

const priorityCountsCacheKey = "keuringen:prioriteit:tellers"

type LifecycleServiceInterface interface {
	MaterialStatus(ctx context.Context, materialID uint64) (*dto.MaterialStatusDTO, error)
	PriorityList(ctx context.Context) (*dto.PriorityListDTO, error)
	PriorityCounts(ctx context.Context) (*dto.PriorityCountsDTO, error)
	RankedMaterials(ctx context.Context) ([]inspection.RankedMaterial, error)
	Reconcile(ctx context.Context) (*dto.ReconcileResultDTO, error)
}

// LifecycleService bundelt de leesoperaties van de keuring-engine en de
// reconciliatie. Alle afleidingen gebeuren in het inspection-pakket; deze
// service doet alleen het ophalen, cachen en vertalen naar DTO's.
type LifecycleService struct {
	materialRepo   repositories.MaterialRepositoryInterface
	inspectionRepo repositories.InspectionRepositoryInterface
	usageRepo      repositories.UsageRepositoryInterface
	cacheRepo      repositories.CacheRepositoryInterface
	reconciler     *inspection.Reconciler
	lookaheadDays  int
	countsCacheTTL time.Duration
	logger         *zap.Logger
}

func NewLifecycleService(
	materialRepo repositories.MaterialRepositoryInterface,
	inspectionRepo repositories.InspectionRepositoryInterface,
	usageRepo repositories.UsageRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	lookaheadDays int,
	countsCacheTTL time.Duration,
	logger *zap.Logger,
) LifecycleServiceInterface {
	return &LifecycleService{
		materialRepo:   materialRepo,
		inspectionRepo: inspectionRepo,
		usageRepo:      usageRepo,
		cacheRepo:      cacheRepo,
		reconciler:     inspection.NewReconciler(materialRepo, inspectionRepo, materialRepo, lookaheadDays, logger),
		lookaheadDays:  lookaheadDays,
		countsCacheTTL: countsCacheTTL,
		logger:         logger,
	}
}

// MaterialStatus lost status, actueel gebruik en risico van één materiaal
// live op, los van de gecachte kolom in de materials-tabel.
func (s *LifecycleService) MaterialStatus(ctx context.Context, materialID uint64) (*dto.MaterialStatusDTO, error) {
	material, err := s.materialRepo.FindMaterial(ctx, materialID)
	if err != nil {
		return nil, err
	}

	records, err := s.inspectionRepo.GetByMaterial(ctx, materialID)
	if err != nil {
		return nil, err
	}
	usages, err := s.usageRepo.GetUsagesByMaterial(ctx, materialID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	latest := inspection.LatestInspection(records)
	status := inspection.ResolveStatus(latest, now, s.lookaheadDays)
	current := inspection.ResolveCurrentUsage(usages, now)

	out := &dto.MaterialStatusDTO{
		MaterialID:       material.ID,
		Name:             material.Name,
		InspectionStatus: string(status),
		InUse:            current != nil,
	}
	if current != nil {
		v := usageToDTO(current)
		out.CurrentUsage = &v
	} else if last := inspection.LastKnownUsage(usages); last != nil {
		v := usageToDTO(last)
		out.LastKnownUsage = &v
	}
	if latest != nil && latest.NextDueDate.Valid {
		v := latest.NextDueDate.Time.Format(inspectionDateLayout)
		out.NextDueDate = &v
	}

	score, level, explanation := inspection.RiskScore(latest, current != nil, now)
	out.Risk = &dto.RiskDTO{Score: score, Level: level, Explanation: explanation}

	return out, nil
}

// RankedMaterials bouwt de volledige risicogesorteerde lijst: alle
// materialen, hun laatste keuring en het actuele gebruik, in drie queries.
func (s *LifecycleService) RankedMaterials(ctx context.Context) ([]inspection.RankedMaterial, error) {
	mats, err := s.materialRepo.GetAllForReconciliation(ctx)
	if err != nil {
		return nil, err
	}
	latest, err := s.inspectionRepo.LatestByMaterial(ctx)
	if err != nil {
		return nil, err
	}
	usages, err := s.usageRepo.GetAllUsages(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	current := inspection.ResolveCurrentUsages(usages, now)

	items := make([]inspection.RankedMaterial, 0, len(mats))
	for i := range mats {
		mat := &mats[i]

		var rec *entities.InspectionRecord
		if found, ok := latest[mat.ID]; ok {
			rec = &found
		}

		item := inspection.RankedMaterial{
			Material:     mat,
			Status:       inspection.ResolveStatus(rec, now, s.lookaheadDays),
			CurrentUsage: current[mat.ID],
		}
		if rec != nil && rec.NextDueDate.Valid {
			due := rec.NextDueDate.Time
			item.NextDueDate = &due
		}
		item.RiskScore, item.RiskLevel, item.RiskExplanation = inspection.RiskScore(rec, item.InUse(), now)

		items = append(items, item)
	}

	ranked, _ := inspection.Rank(items)
	return ranked, nil
}

// PriorityList levert de prioriteitenlijst plus de tellers voor de
// samenvattingskaarten.
func (s *LifecycleService) PriorityList(ctx context.Context) (*dto.PriorityListDTO, error) {
	ranked, err := s.RankedMaterials(ctx)
	if err != nil {
		return nil, err
	}

	out := &dto.PriorityListDTO{Items: make([]dto.PriorityItemDTO, 0, len(ranked))}
	for i := range ranked {
		out.Items = append(out.Items, rankedToDTO(&ranked[i]))

		switch ranked[i].Status {
		case inspection.StatusExpired:
			out.Counts.Expired++
		case inspection.StatusDueSoon:
			out.Counts.DueSoon++
		case inspection.StatusNoInspection:
			out.Counts.NoInspection++
		}
	}
	return out, nil
}

// PriorityCounts levert alleen de tellers, met een korte redis-cache zodat
// het dashboard ze goedkoop kan pollen.
func (s *LifecycleService) PriorityCounts(ctx context.Context) (*dto.PriorityCountsDTO, error) {
	if cached, err := s.cacheRepo.Get(ctx, priorityCountsCacheKey); err == nil && cached != "" {
		var counts dto.PriorityCountsDTO
		if err := json.Unmarshal([]byte(cached), &counts); err == nil {
			return &counts, nil
		}
		s.logger.Warn("prioriteitencache onleesbaar, wordt herberekend")
	}

	list, err := s.PriorityList(ctx)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(list.Counts); err == nil {
		if err := s.cacheRepo.Set(ctx, priorityCountsCacheKey, string(raw), s.countsCacheTTL); err != nil {
			s.logger.Warn("prioriteitencache schrijven mislukt", zap.Error(err))
		}
	}
	return &list.Counts, nil
}

// Reconcile draait de lifecycle-coördinator en leegt daarna de tellercache.
func (s *LifecycleService) Reconcile(ctx context.Context) (*dto.ReconcileResultDTO, error) {
	result, err := s.reconciler.Reconcile(ctx, time.Now())
	if err != nil {
		return nil, err
	}

	if err := s.cacheRepo.Del(ctx, priorityCountsCacheKey); err != nil {
		s.logger.Warn("prioriteitencache legen mislukt", zap.Error(err))
	}

	s.logger.Info("reconciliatie afgerond",
		zap.Int("updated", result.Updated),
		zap.Int("failed", len(result.FailedIDs)))

	return &dto.ReconcileResultDTO{Updated: result.Updated, FailedIDs: result.FailedIDs}, nil
}

func rankedToDTO(r *inspection.RankedMaterial) dto.PriorityItemDTO {
	item := dto.PriorityItemDTO{
		MaterialID:       r.Material.ID,
		Name:             r.Material.Name,
		Serial:           r.Material.Serial.String,
		InspectionStatus: string(r.Status),
		InUse:            r.InUse(),
		RiskScore:        r.RiskScore,
		RiskLevel:        r.RiskLevel,
		RiskExplanation:  r.RiskExplanation,
	}
	if r.CurrentUsage != nil {
		item.UsedBy = r.CurrentUsage.UsedBy.String
		item.Site = r.CurrentUsage.Site.String
	}
	if r.NextDueDate != nil {
		v := r.NextDueDate.Format(inspectionDateLayout)
		item.NextDueDate = &v
	}
	return item
}
