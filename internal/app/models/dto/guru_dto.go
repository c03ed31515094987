package dto

import (
	"time"

	"github.com/sekolahku/siakad/internal/app/models"
	"github.com/sekolahku/siakad/internal/pkg/validation"
)

// GuruCreate enrolls a teacher: the embedded UserCreate registers the
// account and the remaining fields fill the guru profile.
type GuruCreate struct {
	UserData   UserCreate    `json:"userData" validate:"required"`
	NIP        string        `json:"nip" validate:"required,identifier"`
	Name       string        `json:"name" validate:"required,max=100"`
	Gender     models.Gender `json:"gender" validate:"required,oneof=male female"`
	Phone      string        `json:"phone" validate:"required,max=20"`
	Address    string        `json:"address" validate:"required,max=500"`
	BirthDate  time.Time     `json:"birthDate" validate:"required"`
	BirthPlace string        `json:"birthPlace" validate:"required,max=100"`
	Education  string        `json:"education" validate:"required,max=100"`
	Position   string        `json:"position" validate:"required,max=100"`
	HireDate   time.Time     `json:"hireDate" validate:"required"`
}

func (c GuruCreate) Validate() error {
	if err := c.UserData.Validate(); err != nil {
		return err
	}
	return validation.Struct(c)
}
