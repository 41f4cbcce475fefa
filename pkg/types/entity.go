package types

import "time"

type BaseEntity struct {
	CreatedAt *time.Time `json:"created_at" db:"created_at"`
	UpdatedAt *time.Time `json:"updated_at" db:"updated_at"`
}

type SoftDelete struct {
	IsDeleted bool `json:"is_deleted" db:"is_deleted"`
}
