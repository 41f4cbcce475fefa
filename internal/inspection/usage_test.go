package inspection

import (
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"materieelbeheer/internal/entities"
)

func TestResolveCurrentUsage_SingleActive(t *testing.T) {
	now := day(2026, 8, 30)
	records := []entities.UsageRecord{
		{ID: 1, MaterialID: 5, IsActive: true, StartTime: null.TimeFrom(now.AddDate(0, 0, -1))},
	}

	current := ResolveCurrentUsage(records, now)
	require.NotNil(t, current)
	assert.Equal(t, uint64(1), current.ID)

	// Na inchecken telt de rij niet meer mee.
	records[0].IsActive = false
	records[0].EndTime = null.TimeFrom(now)
	assert.Nil(t, ResolveCurrentUsage(records, now))
}

func TestResolveCurrentUsage_DuplicateActives(t *testing.T) {
	now := day(2026, 8, 30)
	t1 := now.AddDate(0, 0, -10)
	t2 := now.AddDate(0, 0, -2)

	records := []entities.UsageRecord{
		{ID: 1, MaterialID: 5, IsActive: true, StartTime: null.TimeFrom(t1)},
		{ID: 2, MaterialID: 5, IsActive: true, StartTime: null.TimeFrom(t2)},
	}

	// Twee actieve rijen is een anomalie, geen fout: de laatste start wint.
	current := ResolveCurrentUsage(records, now)
	require.NotNil(t, current)
	assert.Equal(t, uint64(2), current.ID)
}

func TestResolveCurrentUsage_UnknownStartLoses(t *testing.T) {
	now := day(2026, 8, 30)
	records := []entities.UsageRecord{
		{ID: 8, MaterialID: 5, IsActive: true},
		{ID: 2, MaterialID: 5, IsActive: true, StartTime: null.TimeFrom(now.AddDate(0, 0, -30))},
	}

	current := ResolveCurrentUsage(records, now)
	require.NotNil(t, current)
	assert.Equal(t, uint64(2), current.ID, "rij met bekende start wint van onbekende start")
}

func TestResolveCurrentUsage_EndedRowsExcluded(t *testing.T) {
	now := day(2026, 8, 30)
	records := []entities.UsageRecord{
		// Actieve vlag staat nog, maar end_time ligt in het verleden.
		{ID: 1, MaterialID: 5, IsActive: true, StartTime: null.TimeFrom(now.AddDate(0, 0, -5)), EndTime: null.TimeFrom(now.AddDate(0, 0, -1))},
		// End_time in de toekomst kwalificeert wel.
		{ID: 2, MaterialID: 5, IsActive: true, StartTime: null.TimeFrom(now.AddDate(0, 0, -3)), EndTime: null.TimeFrom(now.AddDate(0, 0, 4))},
	}

	current := ResolveCurrentUsage(records, now)
	require.NotNil(t, current)
	assert.Equal(t, uint64(2), current.ID)
}

func TestResolveCurrentUsages_Batch(t *testing.T) {
	now := day(2026, 8, 30)
	records := []entities.UsageRecord{
		{ID: 1, MaterialID: 1, IsActive: true, StartTime: null.TimeFrom(now.AddDate(0, 0, -9))},
		{ID: 2, MaterialID: 1, IsActive: true, StartTime: null.TimeFrom(now.AddDate(0, 0, -1))},
		{ID: 3, MaterialID: 2, IsActive: false, StartTime: null.TimeFrom(now.AddDate(0, 0, -4)), EndTime: null.TimeFrom(now.AddDate(0, 0, -3))},
		{ID: 4, MaterialID: 3, IsActive: true, StartTime: null.TimeFrom(now.AddDate(0, 0, -2))},
	}

	current := ResolveCurrentUsages(records, now)

	require.Contains(t, current, uint64(1))
	assert.Equal(t, uint64(2), current[1].ID)
	assert.NotContains(t, current, uint64(2), "materiaal zonder kwalificerende rij is niet in gebruik")
	require.Contains(t, current, uint64(3))
	assert.Equal(t, uint64(4), current[3].ID)
}

func TestLastKnownUsage(t *testing.T) {
	now := day(2026, 8, 30)
	records := []entities.UsageRecord{
		{ID: 1, MaterialID: 2, IsActive: false, StartTime: null.TimeFrom(now.AddDate(0, 0, -20)), Site: null.StringFrom("Werf Gent")},
		{ID: 2, MaterialID: 2, IsActive: false, StartTime: null.TimeFrom(now.AddDate(0, 0, -4)), Site: null.StringFrom("Werf Antwerpen"), EndTime: null.TimeFrom(now.AddDate(0, 0, -3))},
	}

	// Geen kwalificerende rij: niet in gebruik, maar de laatst bekende
	// locatie blijft beschikbaar voor weergave.
	assert.Nil(t, ResolveCurrentUsage(records, now))

	last := LastKnownUsage(records)
	require.NotNil(t, last)
	assert.Equal(t, "Werf Antwerpen", last.Site.String)
}

func TestResolveCurrentUsage_Empty(t *testing.T) {
	assert.Nil(t, ResolveCurrentUsage(nil, time.Now()))
	assert.Nil(t, LastKnownUsage(nil))
	assert.Empty(t, ResolveCurrentUsages(nil, time.Now()))
}
