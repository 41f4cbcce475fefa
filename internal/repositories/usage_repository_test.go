package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "materieelbeheer/pkg/errors"
)

func inTx(t *testing.T, fn func(tx pgx.Tx) error) {
	t.Helper()
	ctx := context.Background()
	tx, err := testPool.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, fn(tx))
	require.NoError(t, tx.Commit(ctx))
}

func TestCreateAndStopUsage(t *testing.T) {
	cleanupTables(t, testPool)
	ctx := context.Background()
	repo := NewUsageRepository(testPool)

	materialID := seedMaterial(t, testPool, "Boormachine")
	userID := seedUser(t, testPool, "Jan", "jan@example.com")
	start := time.Now().Add(-2 * time.Hour)

	var usageID uint64
	inTx(t, func(tx pgx.Tx) error {
		id, err := repo.CreateUsage(ctx, tx, activeUsage(materialID, userID, start))
		usageID = id
		return err
	})

	found, err := repo.FindUsage(ctx, usageID)
	require.NoError(t, err)
	assert.True(t, found.IsActive)
	assert.False(t, found.EndTime.Valid)
	assert.Equal(t, materialID, found.MaterialID)

	end := time.Now()
	inTx(t, func(tx pgx.Tx) error {
		return repo.StopUsage(ctx, tx, usageID, end)
	})

	stopped, err := repo.FindUsage(ctx, usageID)
	require.NoError(t, err)
	assert.False(t, stopped.IsActive)
	assert.True(t, stopped.EndTime.Valid)

	// De rij blijft bestaan; nogmaals stoppen raakt niets meer.
	tx, err := testPool.Begin(ctx)
	require.NoError(t, err)
	err = repo.StopUsage(ctx, tx, usageID, time.Now())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	require.NoError(t, tx.Rollback(ctx))
}

func TestGetActiveUsagesSkipsDeletedMaterials(t *testing.T) {
	cleanupTables(t, testPool)
	ctx := context.Background()
	repo := NewUsageRepository(testPool)

	keptID := seedMaterial(t, testPool, "Ladder")
	deletedID := seedMaterial(t, testPool, "Slijpschijf")
	userID := seedUser(t, testPool, "Piet", "piet@example.com")

	inTx(t, func(tx pgx.Tx) error {
		if _, err := repo.CreateUsage(ctx, tx, activeUsage(keptID, userID, time.Now())); err != nil {
			return err
		}
		_, err := repo.CreateUsage(ctx, tx, activeUsage(deletedID, userID, time.Now()))
		return err
	})

	_, err := testPool.Exec(ctx, `UPDATE materials SET is_deleted = TRUE WHERE id = $1`, deletedID)
	require.NoError(t, err)

	active, err := repo.GetActiveUsages(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, keptID, active[0].MaterialID)
	require.NotNil(t, active[0].Material)
	assert.Equal(t, "Ladder", active[0].Material.Name)
}

func TestAssignToWerfOnlyTouchesActiveRows(t *testing.T) {
	cleanupTables(t, testPool)
	ctx := context.Background()
	repo := NewUsageRepository(testPool)

	materialID := seedMaterial(t, testPool, "Generator")
	userID := seedUser(t, testPool, "Kris", "kris@example.com")

	var werfID uint64
	err := testPool.QueryRow(ctx,
		`INSERT INTO werven (name) VALUES ('Werf Noord') RETURNING id`).Scan(&werfID)
	require.NoError(t, err)

	var usageID uint64
	inTx(t, func(tx pgx.Tx) error {
		id, err := repo.CreateUsage(ctx, tx, activeUsage(materialID, userID, time.Now()))
		usageID = id
		return err
	})

	require.NoError(t, repo.AssignToWerf(ctx, usageID, werfID, "Werf Noord"))

	found, err := repo.FindUsage(ctx, usageID)
	require.NoError(t, err)
	assert.Equal(t, werfID, found.WerfID.Uint64)
	assert.Equal(t, "Werf Noord", found.Site.String)

	inTx(t, func(tx pgx.Tx) error {
		return repo.StopUsage(ctx, tx, usageID, time.Now())
	})
	err = repo.AssignToWerf(ctx, usageID, werfID, "Werf Noord")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
