package inspection

import (
	"time"

	"materieelbeheer/internal/entities"
)

// qualifies: een rij telt mee als actueel gebruik wanneer ze actief is en
// nog niet (of pas na asOf) beëindigd.
func qualifies(u *entities.UsageRecord, asOf time.Time) bool {
	if !u.IsActive {
		return false
	}
	return !u.EndTime.Valid || u.EndTime.Time.After(asOf)
}

// moreCurrent vergelijkt twee kandidaten. Een bekende starttijd wint altijd
// van een onbekende; daarna wint de laatste starttijd; bij gelijke start
// wint het hoogste id. Dubbele actieve rijen zijn een data-anomalie die
// hier bewust getolereerd en deterministisch beslecht wordt.
func moreCurrent(a, b *entities.UsageRecord) bool {
	switch {
	case a.StartTime.Valid && !b.StartTime.Valid:
		return true
	case !a.StartTime.Valid && b.StartTime.Valid:
		return false
	case a.StartTime.Valid && b.StartTime.Valid:
		if !a.StartTime.Time.Equal(b.StartTime.Time) {
			return a.StartTime.Time.After(b.StartTime.Time)
		}
	}
	return a.ID > b.ID
}

// ResolveCurrentUsage kiest uit het uitleenlogboek van één materiaal de
// rij die het actuele gebruik vertegenwoordigt, of nil als het materiaal
// niet in gebruik is. Eén doorloop over de records.
func ResolveCurrentUsage(records []entities.UsageRecord, asOf time.Time) *entities.UsageRecord {
	var current *entities.UsageRecord
	for i := range records {
		rec := &records[i]
		if !qualifies(rec, asOf) {
			continue
		}
		if current == nil || moreCurrent(rec, current) {
			current = rec
		}
	}
	return current
}

// ResolveCurrentUsages is de batchvorm: één doorloop over het volledige
// logboek, gegroepeerd per materiaal gereduceerd tot de winnende rij.
// Vermijdt één query per materiaal bij grote vloten.
func ResolveCurrentUsages(records []entities.UsageRecord, asOf time.Time) map[uint64]*entities.UsageRecord {
	current := make(map[uint64]*entities.UsageRecord)
	for i := range records {
		rec := &records[i]
		if !qualifies(rec, asOf) {
			continue
		}
		if best, ok := current[rec.MaterialID]; !ok || moreCurrent(rec, best) {
			current[rec.MaterialID] = rec
		}
	}
	return current
}

// LastKnownUsage geeft de meest recente rij ongeacht de actieve vlag,
// alleen voor informatieve "laatst gezien"-weergave. Nooit als actueel
// gebruik behandelen.
func LastKnownUsage(records []entities.UsageRecord) *entities.UsageRecord {
	var last *entities.UsageRecord
	for i := range records {
		rec := &records[i]
		if last == nil || moreCurrent(rec, last) {
			last = rec
		}
	}
	return last
}
