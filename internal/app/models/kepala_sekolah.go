package models

import (
	"time"
)

// KepalaSekolah is the headmaster record ('kepala_sekolah' table).
// It is a standalone biographical record with a tenure range and is not
// linked to a users row.
type KepalaSekolah struct {
	ID         int64      `json:"id" db:"id"`
	NIP        string     `json:"nip" db:"nip"`
	Name       string     `json:"name" db:"name"`
	Gender     Gender     `json:"gender" db:"gender"`
	Phone      string     `json:"phone" db:"phone"`
	Address    string     `json:"address" db:"address"`
	BirthDate  time.Time  `json:"birthDate" db:"birth_date"`
	BirthPlace string     `json:"birthPlace" db:"birth_place"`
	Education  string     `json:"education" db:"education"`
	StartDate  time.Time  `json:"startDate" db:"start_date"`
	EndDate    *time.Time `json:"endDate,omitempty" db:"end_date"` // Open-ended while in office
	IsActive   bool       `json:"isActive" db:"is_active"`
	CreatedAt  time.Time  `json:"createdAt" db:"created_at"`
}
