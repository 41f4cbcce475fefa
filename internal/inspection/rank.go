package inspection

import (
	"sort"
	"strings"
	"time"

	"materieelbeheer/internal/entities"
)

// RankedMaterial is één materiaal met zijn opgeloste status en gebruik,
// klaar voor weergave in de prioriteitenlijst.
type RankedMaterial struct {
	Material     *entities.Material    `json:"material"`
	Status       Status                `json:"status"`
	CurrentUsage *entities.UsageRecord `json:"current_usage,omitempty"`
	NextDueDate  *time.Time            `json:"next_due_date,omitempty"`

	RiskScore       int    `json:"risk_score"`
	RiskLevel       string `json:"risk_level"`
	RiskExplanation string `json:"risk_explanation"`
}

func (r *RankedMaterial) InUse() bool { return r.CurrentUsage != nil }

// PriorityCounts zijn de tellers voor de samenvattingskaarten.
type PriorityCounts struct {
	Expired      int `json:"expired"`
	DueSoon      int `json:"due_soon"`
	NoInspection int `json:"no_inspection"`
}

// Urgentievolgorde van de tiers, dringendste eerst.
var tierOrder = map[Status]int{
	StatusExpired:      0,
	StatusDueSoon:      1,
	StatusNoInspection: 2,
	StatusValid:        3,
}

// Rank sorteert de materialen op urgentie en telt de tiers. De volgorde is
// een totale orde: tier, dan actief gebruik voor stilstand, dan vroegste
// vervaldatum (zonder vervaldatum achteraan), dan naam (hoofdletter-
// ongevoelig) en tenslotte id. Herhaalde aanroepen op dezelfde invoer
// geven dezelfde volgorde.
func Rank(items []RankedMaterial) ([]RankedMaterial, PriorityCounts) {
	sort.SliceStable(items, func(i, j int) bool {
		return rankLess(&items[i], &items[j])
	})

	var counts PriorityCounts
	for i := range items {
		switch items[i].Status {
		case StatusExpired:
			counts.Expired++
		case StatusDueSoon:
			counts.DueSoon++
		case StatusNoInspection:
			counts.NoInspection++
		}
	}
	return items, counts
}

func rankLess(a, b *RankedMaterial) bool {
	if ta, tb := tierOrder[a.Status], tierOrder[b.Status]; ta != tb {
		return ta < tb
	}

	// Verlopen materieel dat actief in gebruik is, is operationeel het
	// dringendst: binnen een tier eerst de stukken in gebruik.
	if a.InUse() != b.InUse() {
		return a.InUse()
	}

	switch {
	case a.NextDueDate != nil && b.NextDueDate == nil:
		return true
	case a.NextDueDate == nil && b.NextDueDate != nil:
		return false
	case a.NextDueDate != nil && b.NextDueDate != nil:
		if !a.NextDueDate.Equal(*b.NextDueDate) {
			return a.NextDueDate.Before(*b.NextDueDate)
		}
	}

	an, bn := strings.ToLower(a.Material.Name), strings.ToLower(b.Material.Name)
	if an != bn {
		return an < bn
	}
	return a.Material.ID < b.Material.ID
}
