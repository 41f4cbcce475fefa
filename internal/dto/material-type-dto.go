package dto

type CreateMaterialTypeDTO struct {
	Name string `json:"name" validate:"required"`

	// Dagen dat een keuring geldig blijft; weglaten betekent: geen
	// vervaldatum voor dit type. Nul of negatief wordt geweigerd.
	InspectionValidityDays *int `json:"inspection_validity_days,omitempty" validate:"omitempty,gt=0"`
}

type UpdateMaterialTypeDTO struct {
	Name                   *string `json:"name,omitempty" validate:"omitempty"`
	InspectionValidityDays *int    `json:"inspection_validity_days,omitempty" validate:"omitempty,gt=0"`
}
