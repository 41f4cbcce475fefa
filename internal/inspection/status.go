// Package inspection bevat de keuring-engine: statusbepaling, resolutie
// van het actuele gebruik uit het uitleenlogboek, de risicorangschikking
// en de periodieke reconciliatie van de gecachte status.
package inspection

import (
	"time"

	"materieelbeheer/internal/entities"
)

// Status is de afgeleide keuringstoestand van een stuk materieel.
type Status string

const (
	StatusNoInspection Status = "no_inspection"
	StatusValid        Status = "valid"
	StatusDueSoon      Status = "due_soon"
	StatusExpired      Status = "expired"
)

// dateOnly reduceert een tijdstip tot een kalenderdag. Alle
// vervalvergelijkingen gebeuren op dag-granulariteit.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ResolveStatus bepaalt de status van een materiaal uit zijn laatste
// keuring. Puur en totaal: geeft altijd een status terug.
//
//   - geen keuring                  -> no_inspection
//   - asOf na de vervaldatum        -> expired (strikt; op de dag zelf nog niet)
//   - binnen de lookahead-periode   -> due_soon
//   - geen vervaldatum of ver weg   -> valid
func ResolveStatus(latest *entities.InspectionRecord, asOf time.Time, lookaheadDays int) Status {
	if latest == nil {
		return StatusNoInspection
	}
	if !latest.NextDueDate.Valid {
		// Type zonder geconfigureerd keuringsinterval: eenmaal gekeurd
		// blijft het materiaal geldig.
		return StatusValid
	}

	due := dateOnly(latest.NextDueDate.Time)
	day := dateOnly(asOf)

	if day.After(due) {
		return StatusExpired
	}
	if !day.Before(due.AddDate(0, 0, -lookaheadDays)) {
		return StatusDueSoon
	}
	return StatusValid
}

// LatestInspection kiest de meest recente keuring: hoogste keuringsdatum,
// bij gelijke datum wint het hoogste id (meest recent aangemaakt).
func LatestInspection(records []entities.InspectionRecord) *entities.InspectionRecord {
	var latest *entities.InspectionRecord
	for i := range records {
		rec := &records[i]
		if latest == nil {
			latest = rec
			continue
		}
		a, b := dateOnly(rec.InspectionDate), dateOnly(latest.InspectionDate)
		if a.After(b) || (a.Equal(b) && rec.ID > latest.ID) {
			latest = rec
		}
	}
	return latest
}

// NextDueDate berekent de vervaldatum van een nieuwe keuring:
// keuringsdatum + geldigheidsdagen van het type. De aanroeper beslist of
// er überhaupt een interval geconfigureerd is.
func NextDueDate(inspectionDate time.Time, validityDays int) time.Time {
	return dateOnly(inspectionDate).AddDate(0, 0, validityDays)
}
