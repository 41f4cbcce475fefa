package entities

import (
	"materieelbeheer/pkg/types"
)

type User struct {
	ID           uint64 `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`

	types.BaseEntity
}

func (u *User) IsAdmin() bool { return u.Role == "admin" }
