package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Keuringsresultaten.
const (
	ResultApproved    = "goedgekeurd"
	ResultRejected    = "afgekeurd"
	ResultConditional = "voorwaardelijk"
)

func ValidResult(r string) bool {
	return r == ResultApproved || r == ResultRejected || r == ResultConditional
}

// InspectionRecord is één uitgevoerde keuring. Append-only: wordt na
// aanmaken nooit gewijzigd of verwijderd.
type InspectionRecord struct {
	ID              uint64      `json:"id"`
	MaterialID      uint64      `json:"material_id"`
	Serial          null.String `json:"serial"`
	InspectionDate  time.Time   `json:"inspection_date"`
	Result          string      `json:"result"`
	PerformedBy     string      `json:"performed_by"`
	Notes           null.String `json:"notes"`
	NextDueDate     null.Time   `json:"next_due_date"`
	CertificatePath null.String `json:"certificate_path"`
	CreatedAt       null.Time   `json:"created_at"`
}
