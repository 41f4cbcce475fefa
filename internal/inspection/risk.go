package inspection

import (
	"fmt"
	"strings"
	"time"

	"materieelbeheer/internal/entities"
)

// Risiconiveaus.
const (
	RiskLow      = "low"
	RiskMedium   = "medium"
	RiskHigh     = "high"
	RiskCritical = "critical"
)

// RiskScore berekent een deterministische risicoscore (0-100) voor een
// materiaal: urgentie van de vervaldatum, resultaat van de laatste keuring
// en actief gebruik. Geeft score, niveau en een leesbare verklaring.
func RiskScore(latest *entities.InspectionRecord, inUse bool, asOf time.Time) (int, string, string) {
	score := 0
	var parts []string

	// Urgentie (0-60 punten).
	if latest != nil && latest.NextDueDate.Valid {
		days := int(dateOnly(latest.NextDueDate.Time).Sub(dateOnly(asOf)).Hours() / 24)
		switch {
		case days < 0:
			score += 60
			parts = append(parts, fmt.Sprintf("%d dagen te laat", -days))
		case days == 0:
			score += 50
			parts = append(parts, "vandaag")
		case days <= 7:
			score += 40
			parts = append(parts, fmt.Sprintf("binnen %d dagen", days))
		case days <= 30:
			score += 20
			parts = append(parts, fmt.Sprintf("binnen %d dagen", days))
		}
	}

	// Historiek (0-25 punten).
	if latest != nil {
		switch strings.ToLower(latest.Result) {
		case entities.ResultRejected:
			score += 25
			parts = append(parts, "laatste keuring afgekeurd")
		case entities.ResultConditional:
			score += 15
			parts = append(parts, "laatste keuring voorwaardelijk")
		}
	}

	// Actief gebruik (0-15 punten).
	if inUse {
		score += 15
		parts = append(parts, "actief in gebruik")
	}

	if score > 100 {
		score = 100
	}

	level := RiskLow
	switch {
	case score >= 75:
		level = RiskCritical
	case score >= 50:
		level = RiskHigh
	case score >= 25:
		level = RiskMedium
	}

	explanation := "Geen bijzondere risicofactoren"
	if len(parts) > 0 {
		explanation = strings.Join(parts, ", ")
	}
	return score, level, explanation
}
