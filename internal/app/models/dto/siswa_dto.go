package dto

import (
	"time"

	"github.com/sekolahku/siakad/internal/app/models"
	"github.com/sekolahku/siakad/internal/pkg/validation"
)

// SiswaCreate enrolls a student: the embedded UserCreate registers the
// account and the remaining fields fill the siswa profile. KelasID may stay
// nil until the student is placed in a class.
type SiswaCreate struct {
	UserData       UserCreate    `json:"userData" validate:"required"`
	NIS            string        `json:"nis" validate:"required,identifier"`
	NISN           string        `json:"nisn" validate:"required,identifier"`
	Name           string        `json:"name" validate:"required,max=100"`
	Gender         models.Gender `json:"gender" validate:"required,oneof=male female"`
	Phone          string        `json:"phone" validate:"required,max=20"`
	Address        string        `json:"address" validate:"required,max=500"`
	BirthDate      time.Time     `json:"birthDate" validate:"required"`
	BirthPlace     string        `json:"birthPlace" validate:"required,max=100"`
	KelasID        *int64        `json:"kelasId,omitempty" validate:"omitempty,gt=0"`
	ParentName     string        `json:"parentName" validate:"required,max=100"`
	ParentPhone    string        `json:"parentPhone" validate:"required,max=20"`
	EnrollmentDate time.Time     `json:"enrollmentDate" validate:"required"`
}

func (c SiswaCreate) Validate() error {
	if err := c.UserData.Validate(); err != nil {
		return err
	}
	return validation.Struct(c)
}
