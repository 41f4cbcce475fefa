package dto

type CreateWerfDTO struct {
	Name    string  `json:"name" validate:"required"`
	Address *string `json:"address,omitempty"`
}

type UpdateWerfDTO struct {
	Name    *string `json:"name,omitempty" validate:"omitempty"`
	Address *string `json:"address,omitempty"`
}
