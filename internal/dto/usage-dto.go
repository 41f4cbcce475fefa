package dto

type StartUsageDTO struct {
	MaterialID uint64  `json:"material_id" validate:"required,gt=0"`
	WerfID     *uint64 `json:"werf_id,omitempty" validate:"omitempty,gt=0"`
	Site       *string `json:"site,omitempty"`
}

type StopUsageDTO struct {
	UsageID uint64 `json:"usage_id" validate:"required,gt=0"`
}

type AssignUsageToWerfDTO struct {
	WerfID uint64 `json:"werf_id" validate:"required,gt=0"`
}

type UsageDTO struct {
	ID         uint64  `json:"id"`
	MaterialID uint64  `json:"material_id"`
	Material   string  `json:"material,omitempty"`
	Serial     string  `json:"serial,omitempty"`
	UsedBy     string  `json:"used_by"`
	WerfID     *uint64 `json:"werf_id,omitempty"`
	Site       string  `json:"site,omitempty"`
	StartTime  *string `json:"start_time,omitempty"`
	EndTime    *string `json:"end_time,omitempty"`
	IsActive   bool    `json:"is_active"`
}

// ActiveUsagesDTO groepeert actieve uitleningen voor de overzichtspagina.
type ActiveUsagesDTO struct {
	MyUsages             []UsageDTO `json:"my_usages"`
	OtherUsages          []UsageDTO `json:"other_usages"`
	UsagesWithoutProject []UsageDTO `json:"usages_without_project"`
}
