package entities

import (
	"github.com/aarondl/null/v8"

	"materieelbeheer/pkg/types"
)

// Werf is een project/locatie waar materieel naartoe kan.
type Werf struct {
	ID        uint64      `json:"id"`
	Name      string      `json:"name"`
	Address   null.String `json:"address"`
	IsDeleted bool        `json:"is_deleted"`

	types.BaseEntity
}
