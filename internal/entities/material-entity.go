package entities

import (
	"github.com/aarondl/null/v8"

	"materieelbeheer/pkg/types"
)

// Gebruiksstatussen zoals ze in de materials-tabel staan.
const (
	StatusInUse    = "in gebruik"
	StatusNotInUse = "niet in gebruik"
)

// Material is een fysiek stuk materieel dat periodiek gekeurd wordt en
// in- en uitgecheckt kan worden op een werf.
type Material struct {
	ID             uint64      `json:"id"`
	Name           string      `json:"name"`
	Serial         null.String `json:"serial"`
	Type           null.String `json:"type"`
	MaterialTypeID null.Uint64 `json:"material_type_id"`
	WerfID         null.Uint64 `json:"werf_id"`
	Site           null.String `json:"site"`
	AssignedTo     null.String `json:"assigned_to"`

	// Status is "in gebruik" / "niet in gebruik", afgeleid van het
	// uitleenlogboek. InspectionStatus is een cache van de status-resolver
	// en wordt alleen door de reconciliatie of een keuringsresultaat
	// bijgewerkt.
	Status           string    `json:"status"`
	InspectionStatus string    `json:"inspection_status"`
	LastInspection   null.Time `json:"last_inspection"`

	IsDeleted bool `json:"is_deleted"`

	types.BaseEntity

	// Gerelateerde data, geen kolommen.
	MaterialType *MaterialType `db:"-" json:"material_type,omitempty"`
	Werf         *Werf         `db:"-" json:"werf,omitempty"`
}
