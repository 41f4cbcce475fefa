package dto

type CreateMaterialDTO struct {
	Name           string  `json:"name" validate:"required"`
	Serial         *string `json:"serial,omitempty"`
	Type           *string `json:"type,omitempty"`
	MaterialTypeID *uint64 `json:"material_type_id,omitempty" validate:"omitempty,gt=0"`
	WerfID         *uint64 `json:"werf_id,omitempty" validate:"omitempty,gt=0"`
	Site           *string `json:"site,omitempty"`
}

type UpdateMaterialDTO struct {
	Name           *string `json:"name,omitempty" validate:"omitempty"`
	Serial         *string `json:"serial,omitempty"`
	Type           *string `json:"type,omitempty"`
	MaterialTypeID *uint64 `json:"material_type_id,omitempty" validate:"omitempty,gt=0"`
	WerfID         *uint64 `json:"werf_id,omitempty" validate:"omitempty,gt=0"`
	Site           *string `json:"site,omitempty"`
}

type MaterialStatusDTO struct {
	MaterialID       uint64    `json:"material_id"`
	Name             string    `json:"name"`
	InspectionStatus string    `json:"inspection_status"`
	InUse            bool      `json:"in_use"`
	CurrentUsage     *UsageDTO `json:"current_usage,omitempty"`
	LastKnownUsage   *UsageDTO `json:"last_known_usage,omitempty"`
	NextDueDate      *string   `json:"next_due_date,omitempty"`
	Risk             *RiskDTO  `json:"risk,omitempty"`
}

type RiskDTO struct {
	Score       int    `json:"score"`
	Level       string `json:"level"`
	Explanation string `json:"explanation"`
}
