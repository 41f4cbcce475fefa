package dto

type CreateInspectionDTO struct {
	MaterialID     uint64  `json:"material_id" validate:"required,gt=0"`
	InspectionDate string  `json:"inspection_date" validate:"required"` // YYYY-MM-DD
	Result         string  `json:"result" validate:"required,oneof=goedgekeurd afgekeurd voorwaardelijk"`
	PerformedBy    string  `json:"performed_by" validate:"required"`
	Notes          *string `json:"notes,omitempty"`
}

type InspectionRecordDTO struct {
	ID              uint64  `json:"id"`
	MaterialID      uint64  `json:"material_id"`
	Material        string  `json:"material,omitempty"`
	Serial          string  `json:"serial,omitempty"`
	InspectionDate  string  `json:"inspection_date"`
	Result          string  `json:"result"`
	PerformedBy     string  `json:"performed_by"`
	Notes           string  `json:"notes,omitempty"`
	NextDueDate     *string `json:"next_due_date,omitempty"`
	HasCertificate  bool    `json:"has_certificate"`
	CertificatePath string  `json:"-"`
}

// PriorityItemDTO is één regel in de risicogesorteerde prioriteitenlijst.
type PriorityItemDTO struct {
	MaterialID       uint64  `json:"material_id"`
	Name             string  `json:"name"`
	Serial           string  `json:"serial,omitempty"`
	InspectionStatus string  `json:"inspection_status"`
	InUse            bool    `json:"in_use"`
	UsedBy           string  `json:"used_by,omitempty"`
	Site             string  `json:"site,omitempty"`
	NextDueDate      *string `json:"next_due_date,omitempty"`
	RiskScore        int     `json:"risk_score"`
	RiskLevel        string  `json:"risk_level"`
	RiskExplanation  string  `json:"risk_explanation"`
}

type PriorityListDTO struct {
	Items  []PriorityItemDTO `json:"items"`
	Counts PriorityCountsDTO `json:"counts"`
}

type PriorityCountsDTO struct {
	Expired      int `json:"expired"`
	DueSoon      int `json:"due_soon"`
	NoInspection int `json:"no_inspection"`
}

type ReconcileResultDTO struct {
	Updated   int      `json:"updated"`
	FailedIDs []uint64 `json:"failed_ids,omitempty"`
}
