package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JenisPelanggaran is a violation catalog entry ('jenis_pelanggaran' table).
// SeverityLevel is a 1-5 scale.
type JenisPelanggaran struct {
	ID             int64           `json:"id" db:"id"`
	Name           string          `json:"name" db:"name"`
	Description    string          `json:"description" db:"description"`
	PointsDeducted decimal.Decimal `json:"pointsDeducted" db:"points_deducted"`
	SeverityLevel  int             `json:"severityLevel" db:"severity_level"`
	IsActive       bool            `json:"isActive" db:"is_active"`
	CreatedAt      time.Time       `json:"createdAt" db:"created_at"`
}

// InputPelanggaran is a recorded student violation ('input_pelanggaran'
// table). At most one manajemen_sanksi row may reference it.
type InputPelanggaran struct {
	ID                 int64           `json:"id" db:"id"`
	SiswaID            int64           `json:"siswaId" db:"siswa_id"`
	JenisPelanggaranID int64           `json:"jenisPelanggaranId" db:"jenis_pelanggaran_id"`
	ViolationDate      time.Time       `json:"violationDate" db:"violation_date"`
	Description        string          `json:"description" db:"description"`
	Evidence           *string         `json:"evidence,omitempty" db:"evidence"` // File path or URL
	ReportedBy         string          `json:"reportedBy" db:"reported_by"`      // Name of person reporting
	PointsDeducted     decimal.Decimal `json:"pointsDeducted" db:"points_deducted"`
	CreatedAt          time.Time       `json:"createdAt" db:"created_at"`

	Siswa            *Siswa            `json:"siswa,omitempty"`            // Relation, no db tag
	JenisPelanggaran *JenisPelanggaran `json:"jenisPelanggaran,omitempty"` // Relation, no db tag
	Sanction         *ManajemenSanksi  `json:"sanction,omitempty"`         // Relation, no db tag
}
