package services

import (
	"context"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"materieelbeheer/internal/dto"
	"materieelbeheer/internal/entities"
	apperrors "materieelbeheer/pkg/errors"
)

type inspectionFixture struct {
	service    InspectionServiceInterface
	materials  *fakeMaterialRepo
	records    *fakeInspectionRepo
	types      *fakeTypeRepo
	activities *fakeActivityRepo
	cache      *fakeCache
}

func newInspectionFixture(lookaheadDays int) *inspectionFixture {
	f := &inspectionFixture{
		materials:  newFakeMaterialRepo(),
		records:    newFakeInspectionRepo(),
		types:      newFakeTypeRepo(),
		activities: &fakeActivityRepo{},
		cache:      newFakeCache(),
	}
	f.service = NewInspectionService(
		f.records, f.materials, f.types, f.activities, f.cache,
		fakeTxManager{}, lookaheadDays, zap.NewNop())
	return f
}

func TestCreateInspectionComputesNextDueDate(t *testing.T) {
	f := newInspectionFixture(30)

	typeID, err := f.types.CreateMaterialType(context.Background(), entities.MaterialType{
		Name:                   "Valbeveiliging",
		InspectionValidityDays: null.IntFrom(365),
	})
	require.NoError(t, err)

	material := f.materials.add(entities.Material{
		Name:           "Harnas A",
		MaterialTypeID: null.Uint64From(typeID),
	})

	rec, err := f.service.CreateInspection(context.Background(), 1, dto.CreateInspectionDTO{
		MaterialID:     material.ID,
		InspectionDate: "2026-08-01",
		Result:         entities.ResultApproved,
		PerformedBy:    "Keurder BV",
	})
	require.NoError(t, err)

	require.True(t, rec.NextDueDate.Valid)
	assert.Equal(t, time.Date(2027, 8, 1, 0, 0, 0, 0, time.UTC), rec.NextDueDate.Time)

	// De materiaalstatus wordt in dezelfde transactie bijgewerkt.
	assert.Equal(t, "valid", f.materials.outcomeWrites[material.ID])
	assert.Contains(t, f.activities.actions, "keuring")
	assert.Equal(t, 1, f.cache.dels, "tellercache moet geleegd worden")
}

func TestCreateInspectionWithoutIntervalHasNoDueDate(t *testing.T) {
	f := newInspectionFixture(30)

	material := f.materials.add(entities.Material{Name: "Hamer"})

	rec, err := f.service.CreateInspection(context.Background(), 1, dto.CreateInspectionDTO{
		MaterialID:     material.ID,
		InspectionDate: "2020-01-01",
		Result:         entities.ResultApproved,
		PerformedBy:    "Keurder BV",
	})
	require.NoError(t, err)

	// Zonder interval geen vervaldatum: eenmaal gekeurd blijft geldig.
	assert.False(t, rec.NextDueDate.Valid)
	assert.Equal(t, "valid", f.materials.outcomeWrites[material.ID])
}

func TestCreateInspectionRejectsInvalidInterval(t *testing.T) {
	f := newInspectionFixture(30)

	typeID, err := f.types.CreateMaterialType(context.Background(), entities.MaterialType{
		Name:                   "Kapot type",
		InspectionValidityDays: null.IntFrom(0),
	})
	require.NoError(t, err)

	material := f.materials.add(entities.Material{
		Name:           "Generator",
		MaterialTypeID: null.Uint64From(typeID),
	})

	_, err = f.service.CreateInspection(context.Background(), 1, dto.CreateInspectionDTO{
		MaterialID:     material.ID,
		InspectionDate: "2026-08-01",
		Result:         entities.ResultApproved,
		PerformedBy:    "Keurder BV",
	})

	var confErr *apperrors.InvalidConfigurationError
	require.ErrorAs(t, err, &confErr)

	// Niets geregistreerd, niets bijgewerkt.
	records, _ := f.records.GetByMaterial(context.Background(), material.ID)
	assert.Empty(t, records)
	assert.Empty(t, f.materials.outcomeWrites)
}

func TestCreateInspectionRejectsMalformedDate(t *testing.T) {
	f := newInspectionFixture(30)
	material := f.materials.add(entities.Material{Name: "Ladder"})

	_, err := f.service.CreateInspection(context.Background(), 1, dto.CreateInspectionDTO{
		MaterialID:     material.ID,
		InspectionDate: "01-08-2026",
		Result:         entities.ResultApproved,
		PerformedBy:    "Keurder BV",
	})

	var inputErr *apperrors.InvalidInputError
	require.ErrorAs(t, err, &inputErr)
}

func TestCreateInspectionLateArrivingOldRecordKeepsNewestStatus(t *testing.T) {
	f := newInspectionFixture(30)

	material := f.materials.add(entities.Material{Name: "Hoogwerker"})

	// Recente keuring, ver in de toekomst geldig.
	f.records.add(entities.InspectionRecord{
		MaterialID:     material.ID,
		InspectionDate: time.Now().UTC().AddDate(0, 0, -10),
		Result:         entities.ResultApproved,
		NextDueDate:    null.TimeFrom(time.Now().UTC().AddDate(1, 0, 0)),
	})

	// Een nagekomen oude keuring die allang verlopen zou zijn.
	_, err := f.service.CreateInspection(context.Background(), 1, dto.CreateInspectionDTO{
		MaterialID:     material.ID,
		InspectionDate: "2020-01-01",
		Result:         entities.ResultRejected,
		PerformedBy:    "Keurder BV",
	})
	require.NoError(t, err)

	// De status volgt de meest recente keuring, niet de nagekomen oude.
	assert.Equal(t, "valid", f.materials.outcomeWrites[material.ID])
}
