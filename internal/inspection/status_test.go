package inspection

import (
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"materieelbeheer/internal/entities"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func recordDue(due time.Time) *entities.InspectionRecord {
	return &entities.InspectionRecord{
		ID:             1,
		MaterialID:     1,
		InspectionDate: due.AddDate(-1, 0, 0),
		Result:         entities.ResultApproved,
		NextDueDate:    null.TimeFrom(due),
	}
}

func TestResolveStatus_NoInspection(t *testing.T) {
	assert.Equal(t, StatusNoInspection, ResolveStatus(nil, day(2026, 1, 1), 30))
	assert.Equal(t, StatusNoInspection, ResolveStatus(nil, day(1999, 6, 15), 30))
}

func TestResolveStatus_NoDueDate(t *testing.T) {
	rec := &entities.InspectionRecord{
		ID:             7,
		InspectionDate: day(2020, 3, 1),
		Result:         entities.ResultApproved,
	}
	// Zonder geconfigureerd interval blijft gekeurd materiaal geldig.
	assert.Equal(t, StatusValid, ResolveStatus(rec, day(2026, 8, 30), 30))
}

func TestResolveStatus_Boundaries(t *testing.T) {
	due := day(2026, 6, 15)
	rec := recordDue(due)

	// Strikt groter dan: op de vervaldag zelf nog niet verlopen.
	assert.Equal(t, StatusDueSoon, ResolveStatus(rec, due, 30))
	assert.Equal(t, StatusExpired, ResolveStatus(rec, due.AddDate(0, 0, 1), 30))

	// Ondergrens van het lookahead-venster.
	assert.Equal(t, StatusDueSoon, ResolveStatus(rec, due.AddDate(0, 0, -30), 30))
	assert.Equal(t, StatusValid, ResolveStatus(rec, due.AddDate(0, 0, -31), 30))
}

func TestResolveStatus_TimeOfDayIrrelevant(t *testing.T) {
	due := day(2026, 6, 15)
	rec := recordDue(due)

	lateOnDueDay := time.Date(2026, 6, 15, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, StatusDueSoon, ResolveStatus(rec, lateOnDueDay, 30))
}

func TestResolveStatus_Scenario(t *testing.T) {
	today := day(2026, 8, 30)

	// X: 400 dagen geleden gekeurd met 365 dagen geldigheid -> verlopen.
	x := &entities.InspectionRecord{
		ID:             1,
		InspectionDate: today.AddDate(0, 0, -400),
		Result:         entities.ResultApproved,
		NextDueDate:    null.TimeFrom(today.AddDate(0, 0, -400+365)),
	}
	assert.Equal(t, StatusExpired, ResolveStatus(x, today, 30))

	// Y: 10 dagen geleden gekeurd -> geldig.
	y := &entities.InspectionRecord{
		ID:             2,
		InspectionDate: today.AddDate(0, 0, -10),
		Result:         entities.ResultApproved,
		NextDueDate:    null.TimeFrom(today.AddDate(0, 0, -10+365)),
	}
	assert.Equal(t, StatusValid, ResolveStatus(y, today, 30))

	// Z: 340 dagen geleden gekeurd -> binnenkort (over 25 dagen).
	z := &entities.InspectionRecord{
		ID:             3,
		InspectionDate: today.AddDate(0, 0, -340),
		Result:         entities.ResultApproved,
		NextDueDate:    null.TimeFrom(today.AddDate(0, 0, -340+365)),
	}
	assert.Equal(t, StatusDueSoon, ResolveStatus(z, today, 30))
}

func TestLatestInspection(t *testing.T) {
	assert.Nil(t, LatestInspection(nil))

	records := []entities.InspectionRecord{
		{ID: 1, InspectionDate: day(2025, 1, 1)},
		{ID: 2, InspectionDate: day(2026, 3, 1)},
		{ID: 3, InspectionDate: day(2025, 6, 1)},
	}
	latest := LatestInspection(records)
	require.NotNil(t, latest)
	assert.Equal(t, uint64(2), latest.ID)
}

func TestLatestInspection_TieBrokenByID(t *testing.T) {
	sameDay := day(2026, 3, 1)
	records := []entities.InspectionRecord{
		{ID: 9, InspectionDate: sameDay},
		{ID: 4, InspectionDate: sameDay},
	}
	latest := LatestInspection(records)
	require.NotNil(t, latest)
	assert.Equal(t, uint64(9), latest.ID)
}

func TestNextDueDate(t *testing.T) {
	got := NextDueDate(time.Date(2026, 1, 15, 13, 45, 0, 0, time.UTC), 365)
	assert.Equal(t, day(2027, 1, 15), got)
}
