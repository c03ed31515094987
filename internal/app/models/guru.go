package models

import (
	"time"
)

// Guru defines the teacher profile model based on the 'guru' table.
// Each guru row is linked 1:1 to a users row via the unique user_id column.
type Guru struct {
	ID         int64     `json:"id" db:"id"`
	UserID     int64     `json:"userId" db:"user_id"`
	NIP        string    `json:"nip" db:"nip"` // Employee identification number
	Name       string    `json:"name" db:"name"`
	Gender     Gender    `json:"gender" db:"gender"`
	Phone      string    `json:"phone" db:"phone"`
	Address    string    `json:"address" db:"address"`
	BirthDate  time.Time `json:"birthDate" db:"birth_date"`
	BirthPlace string    `json:"birthPlace" db:"birth_place"`
	Education  string    `json:"education" db:"education"` // Last education
	Position   string    `json:"position" db:"position"`   // Position/role in school
	HireDate   time.Time `json:"hireDate" db:"hire_date"`
	IsActive   bool      `json:"isActive" db:"is_active"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`

	User *User `json:"user,omitempty"` // Relation, no db tag
}
