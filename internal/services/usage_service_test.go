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
	"materieelbeheer/pkg/utils"
)

type usageFixture struct {
	service   UsageServiceInterface
	usages    *fakeUsageRepo
	materials *fakeMaterialRepo
	werven    *fakeWerfRepo
	users     *fakeUserRepo
	activity  *fakeActivityRepo
}

func newUsageFixture() *usageFixture {
	f := &usageFixture{
		usages:    newFakeUsageRepo(),
		materials: newFakeMaterialRepo(),
		werven:    newFakeWerfRepo(),
		users:     newFakeUserRepo(),
		activity:  &fakeActivityRepo{},
	}
	f.service = NewUsageService(
		f.usages, f.materials, f.werven, f.users, f.activity,
		fakeTxManager{}, zap.NewNop())
	return f
}

func TestStartUsageCreatesRowAndMarksMaterial(t *testing.T) {
	f := newUsageFixture()
	material := f.materials.add(entities.Material{Name: "Boormachine"})
	f.users.add(entities.User{ID: 7, Name: "Jan", Role: "user"})

	usage, err := f.service.StartUsage(context.Background(), 7, dto.StartUsageDTO{
		MaterialID: material.ID,
	})
	require.NoError(t, err)

	assert.True(t, usage.IsActive)
	assert.Equal(t, "Jan", usage.UsedBy.String)
	assert.Equal(t, entities.StatusInUse, f.materials.usageWrites[material.ID])
	assert.Contains(t, f.activity.actions, "checkout")
}

func TestStartUsageTakesSiteFromWerf(t *testing.T) {
	f := newUsageFixture()
	material := f.materials.add(entities.Material{Name: "Generator"})
	f.users.add(entities.User{ID: 7, Name: "Jan", Role: "user"})
	werfID, err := f.werven.CreateWerf(context.Background(), entities.Werf{Name: "Werf Noord"})
	require.NoError(t, err)

	usage, err := f.service.StartUsage(context.Background(), 7, dto.StartUsageDTO{
		MaterialID: material.ID,
		WerfID:     utils.Uint64Ptr(werfID),
	})
	require.NoError(t, err)

	assert.Equal(t, werfID, usage.WerfID.Uint64)
	assert.Equal(t, "Werf Noord", usage.Site.String)
}

func TestStopUsageForbiddenForOtherUser(t *testing.T) {
	f := newUsageFixture()
	material := f.materials.add(entities.Material{Name: "Ladder"})
	f.users.add(entities.User{ID: 1, Name: "Jan", Role: "user"})
	f.users.add(entities.User{ID: 2, Name: "Piet", Role: "user"})

	usage := f.usages.add(entities.UsageRecord{
		MaterialID: material.ID,
		UserID:     null.Uint64From(1),
		IsActive:   true,
	})

	err := f.service.StopUsage(context.Background(), 2, usage.ID)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	found, _ := f.usages.FindUsage(context.Background(), usage.ID)
	assert.True(t, found.IsActive)
}

func TestStopUsageAllowedForAdmin(t *testing.T) {
	f := newUsageFixture()
	material := f.materials.add(entities.Material{Name: "Ladder"})
	f.users.add(entities.User{ID: 1, Name: "Jan", Role: "user"})
	f.users.add(entities.User{ID: 9, Name: "Beheerder", Role: "admin"})

	usage := f.usages.add(entities.UsageRecord{
		MaterialID: material.ID,
		UserID:     null.Uint64From(1),
		IsActive:   true,
	})

	require.NoError(t, f.service.StopUsage(context.Background(), 9, usage.ID))

	found, _ := f.usages.FindUsage(context.Background(), usage.ID)
	assert.False(t, found.IsActive)
	assert.Equal(t, entities.StatusNotInUse, f.materials.usageWrites[material.ID])
	assert.Contains(t, f.activity.actions, "checkin")
}

func TestStopUsageAlreadyStoppedIsRejected(t *testing.T) {
	f := newUsageFixture()
	material := f.materials.add(entities.Material{Name: "Ladder"})
	f.users.add(entities.User{ID: 1, Name: "Jan", Role: "user"})

	usage := f.usages.add(entities.UsageRecord{
		MaterialID: material.ID,
		UserID:     null.Uint64From(1),
		EndTime:    null.TimeFrom(time.Now()),
		IsActive:   false,
	})

	err := f.service.StopUsage(context.Background(), 1, usage.ID)

	var inputErr *apperrors.InvalidInputError
	require.ErrorAs(t, err, &inputErr)
}

func TestStopUsageKeepsMaterialInUseWhileDuplicateActiveRemains(t *testing.T) {
	f := newUsageFixture()
	material := f.materials.add(entities.Material{Name: "Compressor", Status: entities.StatusInUse})
	f.users.add(entities.User{ID: 1, Name: "Jan", Role: "user"})

	now := time.Now()
	first := f.usages.add(entities.UsageRecord{
		MaterialID: material.ID,
		UserID:     null.Uint64From(1),
		StartTime:  null.TimeFrom(now.Add(-2 * time.Hour)),
		IsActive:   true,
	})
	f.usages.add(entities.UsageRecord{
		MaterialID: material.ID,
		UserID:     null.Uint64From(1),
		StartTime:  null.TimeFrom(now.Add(-1 * time.Hour)),
		IsActive:   true,
	})

	require.NoError(t, f.service.StopUsage(context.Background(), 1, first.ID))

	// Er is nog een actieve rij, dus het materiaal blijft in gebruik.
	assert.NotContains(t, f.materials.usageWrites, material.ID)
}

func TestGetActiveUsagesGroups(t *testing.T) {
	f := newUsageFixture()
	material := f.materials.add(entities.Material{Name: "Boormachine"})

	f.usages.add(entities.UsageRecord{
		MaterialID: material.ID,
		UserID:     null.Uint64From(1),
		UsedBy:     null.StringFrom("Jan"),
		IsActive:   true,
	})
	f.usages.add(entities.UsageRecord{
		MaterialID: material.ID,
		UserID:     null.Uint64From(2),
		UsedBy:     null.StringFrom("Piet"),
		WerfID:     null.Uint64From(4),
		IsActive:   true,
	})
	f.usages.add(entities.UsageRecord{
		MaterialID: material.ID,
		UserID:     null.Uint64From(3),
		UsedBy:     null.StringFrom("Kris"),
		IsActive:   true,
	})

	grouped, err := f.service.GetActiveUsages(context.Background(), 1)
	require.NoError(t, err)

	assert.Len(t, grouped.MyUsages, 1)
	assert.Len(t, grouped.OtherUsages, 1)
	assert.Len(t, grouped.UsagesWithoutProject, 1)
	assert.Equal(t, "Jan", grouped.MyUsages[0].UsedBy)
}
