package entities

import (
	"github.com/aarondl/null/v8"

	"materieelbeheer/pkg/types"
)

type MaterialType struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`

	// InspectionValidityDays is het aantal dagen dat een keuring geldig
	// blijft. NULL betekent: geen vervaldatum voor dit type.
	InspectionValidityDays null.Int `json:"inspection_validity_days"`

	types.BaseEntity
}
