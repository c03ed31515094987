package dto

import (
	"github.com/sekolahku/siakad/internal/app/models"
	"github.com/sekolahku/siakad/internal/pkg/validation"
)

// UserCreate carries the fields needed to register a new account.
type UserCreate struct {
	Username string          `json:"username" validate:"required,min=3,max=50"`
	Email    string          `json:"email" validate:"required,email,max=255"`
	Password string          `json:"password" validate:"required,min=8,max=255"`
	Role     models.UserRole `json:"role" validate:"required,oneof=admin guru siswa"`
}

// Validate checks the schema against its field rules.
func (c UserCreate) Validate() error {
	return validation.Struct(c)
}

// UserUpdate carries the mutable account fields; nil fields are unchanged.
type UserUpdate struct {
	Username *string `json:"username,omitempty" validate:"omitempty,min=3,max=50"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	IsActive *bool   `json:"isActive,omitempty"`
}

func (u UserUpdate) Validate() error {
	return validation.Struct(u)
}
