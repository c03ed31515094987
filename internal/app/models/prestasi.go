package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JenisPrestasi is an achievement catalog entry ('jenis_prestasi' table).
// Points is the default award applied when an entry of this kind is recorded.
type JenisPrestasi struct {
	ID          int64           `json:"id" db:"id"`
	Name        string          `json:"name" db:"name"`
	Description string          `json:"description" db:"description"`
	Points      decimal.Decimal `json:"points" db:"points"`
	IsActive    bool            `json:"isActive" db:"is_active"`
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`
}

// InputPrestasi is a recorded student achievement ('input_prestasi' table).
// PointsAwarded may differ from the catalog default.
type InputPrestasi struct {
	ID              int64           `json:"id" db:"id"`
	SiswaID         int64           `json:"siswaId" db:"siswa_id"`
	JenisPrestasiID int64           `json:"jenisPrestasiId" db:"jenis_prestasi_id"`
	AchievementDate time.Time       `json:"achievementDate" db:"achievement_date"`
	Description     string          `json:"description" db:"description"`
	Evidence        *string         `json:"evidence,omitempty" db:"evidence"` // File path or URL
	Verified        bool            `json:"verified" db:"verified"`
	PointsAwarded   decimal.Decimal `json:"pointsAwarded" db:"points_awarded"`
	CreatedAt       time.Time       `json:"createdAt" db:"created_at"`

	Siswa         *Siswa         `json:"siswa,omitempty"`         // Relation, no db tag
	JenisPrestasi *JenisPrestasi `json:"jenisPrestasi,omitempty"` // Relation, no db tag
}
