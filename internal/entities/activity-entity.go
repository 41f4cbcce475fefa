package entities

import "github.com/aarondl/null/v8"

// Activity is een regel in het auditlogboek (geschiedenis-pagina).
type Activity struct {
	ID           uint64      `json:"id"`
	Action       string      `json:"action"`
	MaterialName null.String `json:"material_name"`
	Serial       null.String `json:"serial"`
	UserName     null.String `json:"user_name"`
	CreatedAt    null.Time   `json:"created_at"`
}
