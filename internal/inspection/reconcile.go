package inspection

import (
	"context"
	"time"

	"go.uber.org/zap"

	"materieelbeheer/internal/entities"
)

// MaterialLister levert alle niet-verwijderde materialen.
type MaterialLister interface {
	GetAllForReconciliation(ctx context.Context) ([]entities.Material, error)
}

// LatestInspectionReader levert per materiaal de meest recente keuring,
// in één query over de hele historiek.
type LatestInspectionReader interface {
	LatestByMaterial(ctx context.Context) (map[uint64]entities.InspectionRecord, error)
}

// StatusWriter schrijft de gecachte keuringstatus van één materiaal terug.
type StatusWriter interface {
	UpdateInspectionStatus(ctx context.Context, materialID uint64, status string) error
}

// ReconcileResult rapporteert wat de reconciliatie gedaan heeft.
type ReconcileResult struct {
	Updated   int      `json:"updated"`
	FailedIDs []uint64 `json:"failed_ids,omitempty"`
}

// Reconciler is de lifecycle-coördinator: de enige component die buiten de
// logboeken om schrijft. Hij herberekent de status van elk materiaal en
// corrigeert alleen de rijen die afgedreven zijn.
type Reconciler struct {
	materials     MaterialLister
	inspections   LatestInspectionReader
	statuses      StatusWriter
	lookaheadDays int
	logger        *zap.Logger

	// Now is injecteerbaar voor deterministische tests.
	Now func() time.Time
}

func NewReconciler(
	materials MaterialLister,
	inspections LatestInspectionReader,
	statuses StatusWriter,
	lookaheadDays int,
	logger *zap.Logger,
) *Reconciler {
	return &Reconciler{
		materials:     materials,
		inspections:   inspections,
		statuses:      statuses,
		lookaheadDays: lookaheadDays,
		logger:        logger,
		Now:           time.Now,
	}
}

// Reconcile herberekent de status van alle niet-verwijderde materialen per
// asOf en schrijft alleen de gewijzigde statussen terug. Idempotent: een
// tweede run op ongewijzigde data schrijft niets. Eén falende rij stopt de
// run niet; die wordt gerapporteerd in FailedIDs.
func (r *Reconciler) Reconcile(ctx context.Context, asOf time.Time) (ReconcileResult, error) {
	var result ReconcileResult

	mats, err := r.materials.GetAllForReconciliation(ctx)
	if err != nil {
		return result, err
	}
	latest, err := r.inspections.LatestByMaterial(ctx)
	if err != nil {
		return result, err
	}

	for i := range mats {
		mat := &mats[i]

		var rec *entities.InspectionRecord
		if found, ok := latest[mat.ID]; ok {
			rec = &found
		}

		want := ResolveStatus(rec, asOf, r.lookaheadDays)
		if string(want) == mat.InspectionStatus {
			continue
		}

		// Per materiaal committen; de pass hoeft niet in één transactie
		// en mag met live verkeer interleaven.
		if err := r.statuses.UpdateInspectionStatus(ctx, mat.ID, string(want)); err != nil {
			r.logger.Error("reconciliatie: status bijwerken mislukt",
				zap.Uint64("material_id", mat.ID),
				zap.String("status", string(want)),
				zap.Error(err),
			)
			result.FailedIDs = append(result.FailedIDs, mat.ID)
			continue
		}
		result.Updated++
	}

	return result, nil
}
