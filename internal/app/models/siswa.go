package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Siswa defines the student profile model based on the 'siswa' table.
// Each siswa row is linked 1:1 to a users row via the unique user_id column.
// CurrentPoints is the running balance mutated by achievement and violation
// entries.
type Siswa struct {
	ID             int64           `json:"id" db:"id"`
	UserID         int64           `json:"userId" db:"user_id"`
	NIS            string          `json:"nis" db:"nis"`   // School-issued student number
	NISN           string          `json:"nisn" db:"nisn"` // National student number
	Name           string          `json:"name" db:"name"`
	Gender         Gender          `json:"gender" db:"gender"`
	Phone          string          `json:"phone" db:"phone"`
	Address        string          `json:"address" db:"address"`
	BirthDate      time.Time       `json:"birthDate" db:"birth_date"`
	BirthPlace     string          `json:"birthPlace" db:"birth_place"`
	KelasID        *int64          `json:"kelasId,omitempty" db:"kelas_id"` // Nullable until placed in a class
	ParentName     string          `json:"parentName" db:"parent_name"`
	ParentPhone    string          `json:"parentPhone" db:"parent_phone"`
	EnrollmentDate time.Time       `json:"enrollmentDate" db:"enrollment_date"`
	CurrentPoints  decimal.Decimal `json:"currentPoints" db:"current_points"`
	IsActive       bool            `json:"isActive" db:"is_active"`
	CreatedAt      time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time       `json:"updatedAt" db:"updated_at"`

	User  *User  `json:"user,omitempty"`  // Relation, no db tag
	Kelas *Kelas `json:"kelas,omitempty"` // Relation, no db tag
}
