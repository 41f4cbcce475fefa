package entities

import "github.com/aarondl/null/v8"

type Document struct {
	ID         uint64      `json:"id"`
	MaterialID uint64      `json:"material_id"`
	DocType    null.String `json:"doc_type"`
	FileName   string      `json:"file_name"`
	FilePath   string      `json:"file_path"`
	Note       null.String `json:"note"`
	CreatedAt  null.Time   `json:"created_at"`
}
