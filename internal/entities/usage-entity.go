package entities

import (
	"github.com/aarondl/null/v8"
)

// UsageRecord is één uitleenperiode van één stuk materieel. Het logboek is
// append-only: bij inchecken wordt alleen EndTime gezet en IsActive
// leeggemaakt, rijen worden nooit verwijderd.
type UsageRecord struct {
	ID         uint64      `json:"id"`
	MaterialID uint64      `json:"material_id"`
	UserID     null.Uint64 `json:"user_id"`
	UsedBy     null.String `json:"used_by"`
	WerfID     null.Uint64 `json:"werf_id"`
	Site       null.String `json:"site"`
	StartTime  null.Time   `json:"start_time"`
	EndTime    null.Time   `json:"end_time"`
	IsActive   bool        `json:"is_active"`
	CreatedAt  null.Time   `json:"created_at"`

	Material *Material `db:"-" json:"material,omitempty"`
	Werf     *Werf     `db:"-" json:"werf,omitempty"`
}
