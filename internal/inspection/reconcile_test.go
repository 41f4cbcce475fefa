package inspection

import (
	"context"
	"fmt"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"materieelbeheer/internal/entities"
)

type fakeStore struct {
	materials []entities.Material
	latest    map[uint64]entities.InspectionRecord

	writes    map[uint64]string
	failIDs   map[uint64]bool
	listErr   error
	latestErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		latest:  make(map[uint64]entities.InspectionRecord),
		writes:  make(map[uint64]string),
		failIDs: make(map[uint64]bool),
	}
}

func (f *fakeStore) GetAllForReconciliation(ctx context.Context) ([]entities.Material, error) {
	return f.materials, f.listErr
}

func (f *fakeStore) LatestByMaterial(ctx context.Context) (map[uint64]entities.InspectionRecord, error) {
	return f.latest, f.latestErr
}

func (f *fakeStore) UpdateInspectionStatus(ctx context.Context, materialID uint64, status string) error {
	if f.failIDs[materialID] {
		return fmt.Errorf("schrijffout voor materiaal %d", materialID)
	}
	f.writes[materialID] = status
	for i := range f.materials {
		if f.materials[i].ID == materialID {
			f.materials[i].InspectionStatus = status
		}
	}
	return nil
}

func TestReconcile_WritesOnlyDrifted(t *testing.T) {
	today := day(2026, 8, 30)
	store := newFakeStore()
	store.materials = []entities.Material{
		{ID: 1, Name: "ladder", InspectionStatus: string(StatusValid)},
		{ID: 2, Name: "haakse slijper", InspectionStatus: string(StatusValid)},
		{ID: 3, Name: "nooit gekeurd", InspectionStatus: string(StatusNoInspection)},
	}
	// Materiaal 1 is intussen verlopen; materiaal 2 is echt nog geldig.
	store.latest[1] = entities.InspectionRecord{ID: 10, MaterialID: 1, NextDueDate: null.TimeFrom(today.AddDate(0, 0, -5))}
	store.latest[2] = entities.InspectionRecord{ID: 11, MaterialID: 2, NextDueDate: null.TimeFrom(today.AddDate(0, 0, 200))}

	rec := NewReconciler(store, store, store, 30, zap.NewNop())
	result, err := rec.Reconcile(context.Background(), today)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Updated)
	assert.Empty(t, result.FailedIDs)
	assert.Equal(t, string(StatusExpired), store.writes[1])
	assert.NotContains(t, store.writes, uint64(2))
	assert.NotContains(t, store.writes, uint64(3), "reeds correcte status wordt niet herschreven")
}

func TestReconcile_Idempotent(t *testing.T) {
	today := day(2026, 8, 30)
	store := newFakeStore()
	store.materials = []entities.Material{
		{ID: 1, InspectionStatus: string(StatusValid)},
	}
	store.latest[1] = entities.InspectionRecord{ID: 10, MaterialID: 1, NextDueDate: null.TimeFrom(today.AddDate(0, 0, -1))}

	rec := NewReconciler(store, store, store, 30, zap.NewNop())

	first, err := rec.Reconcile(context.Background(), today)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Updated)

	second, err := rec.Reconcile(context.Background(), today)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Updated, "tweede run op ongewijzigde data schrijft niets")
}

func TestReconcile_PartialFailureContinues(t *testing.T) {
	today := day(2026, 8, 30)
	store := newFakeStore()
	store.materials = []entities.Material{
		{ID: 1, InspectionStatus: string(StatusValid)},
		{ID: 2, InspectionStatus: string(StatusValid)},
		{ID: 3, InspectionStatus: string(StatusValid)},
	}
	for _, id := range []uint64{1, 2, 3} {
		store.latest[id] = entities.InspectionRecord{ID: id + 10, MaterialID: id, NextDueDate: null.TimeFrom(today.AddDate(0, 0, -2))}
	}
	store.failIDs[2] = true

	rec := NewReconciler(store, store, store, 30, zap.NewNop())
	result, err := rec.Reconcile(context.Background(), today)

	require.NoError(t, err, "één falende rij breekt de run niet af")
	assert.Equal(t, 2, result.Updated)
	assert.Equal(t, []uint64{2}, result.FailedIDs)
}

func TestReconcile_ListErrorAborts(t *testing.T) {
	store := newFakeStore()
	store.listErr = fmt.Errorf("database onbereikbaar")

	rec := NewReconciler(store, store, store, 30, zap.NewNop())
	_, err := rec.Reconcile(context.Background(), day(2026, 8, 30))
	assert.Error(t, err)
}
