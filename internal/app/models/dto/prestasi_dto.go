package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sekolahku/siakad/internal/pkg/validation"
)

// PrestasiCreate records a student achievement. Points come from the
// jenis_prestasi catalog default unless the caller overrides them.
type PrestasiCreate struct {
	SiswaID         int64            `json:"siswaId" validate:"required,gt=0"`
	JenisPrestasiID int64            `json:"jenisPrestasiId" validate:"required,gt=0"`
	AchievementDate time.Time        `json:"achievementDate" validate:"required"`
	Description     string           `json:"description" validate:"required,max=500"`
	Points          *decimal.Decimal `json:"points,omitempty"`
}

func (c PrestasiCreate) Validate() error {
	return validation.Struct(c)
}
