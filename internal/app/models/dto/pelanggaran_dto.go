package dto

import (
	"time"

	"github.com/sekolahku/siakad/internal/pkg/validation"
)

// PelanggaranCreate records a student violation. Deducted points come from
// the jenis_pelanggaran catalog default.
type PelanggaranCreate struct {
	SiswaID            int64     `json:"siswaId" validate:"required,gt=0"`
	JenisPelanggaranID int64     `json:"jenisPelanggaranId" validate:"required,gt=0"`
	ViolationDate      time.Time `json:"violationDate" validate:"required"`
	Description        string    `json:"description" validate:"required,max=500"`
	ReportedBy         string    `json:"reportedBy" validate:"required,max=100"`
}

func (c PelanggaranCreate) Validate() error {
	return validation.Struct(c)
}
