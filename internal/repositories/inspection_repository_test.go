package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"materieelbeheer/internal/entities"
)

func TestLatestByMaterialPicksHighestDateThenID(t *testing.T) {
	cleanupTables(t, testPool)
	ctx := context.Background()
	repo := NewInspectionRepository(testPool)

	materialID := seedMaterial(t, testPool, "Hoogwerker")
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	seedInspection(t, testPool, materialID, day.AddDate(0, -6, 0), entities.ResultApproved, null.Time{})
	firstOnDay := seedInspection(t, testPool, materialID, day, entities.ResultRejected, null.Time{})
	secondOnDay := seedInspection(t, testPool, materialID, day, entities.ResultApproved, null.Time{})

	latest, err := repo.LatestByMaterial(ctx)
	require.NoError(t, err)
	require.Contains(t, latest, materialID)

	// Zelfde datum: het hoogste id wint.
	assert.Greater(t, secondOnDay, firstOnDay)
	assert.Equal(t, secondOnDay, latest[materialID].ID)
	assert.Equal(t, entities.ResultApproved, latest[materialID].Result)
}

func TestUpdateInspectionStatusSkipsNothing(t *testing.T) {
	cleanupTables(t, testPool)
	ctx := context.Background()
	repo := NewMaterialRepository(testPool, zap.NewNop())

	keptID := seedMaterial(t, testPool, "Ketting")
	deletedID := seedMaterial(t, testPool, "Haspel")
	_, err := testPool.Exec(ctx, `UPDATE materials SET is_deleted = TRUE WHERE id = $1`, deletedID)
	require.NoError(t, err)

	mats, err := repo.GetAllForReconciliation(ctx)
	require.NoError(t, err)
	require.Len(t, mats, 1)
	assert.Equal(t, keptID, mats[0].ID)
	assert.Equal(t, "no_inspection", mats[0].InspectionStatus)

	require.NoError(t, repo.UpdateInspectionStatus(ctx, keptID, "expired"))

	mats, err = repo.GetAllForReconciliation(ctx)
	require.NoError(t, err)
	require.Len(t, mats, 1)
	assert.Equal(t, "expired", mats[0].InspectionStatus)
}

func TestSetCertificatePath(t *testing.T) {
	cleanupTables(t, testPool)
	ctx := context.Background()
	repo := NewInspectionRepository(testPool)

	materialID := seedMaterial(t, testPool, "Valharnas")
	recordID := seedInspection(t, testPool, materialID,
		time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), entities.ResultApproved, null.Time{})

	require.NoError(t, repo.SetCertificatePath(ctx, recordID, "certificates/abc.pdf"))

	rec, err := repo.FindRecord(ctx, recordID)
	require.NoError(t, err)
	assert.Equal(t, "certificates/abc.pdf", rec.CertificatePath.String)
}
