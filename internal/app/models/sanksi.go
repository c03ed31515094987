package models

import (
	"time"
)

// ManajemenSanksi is a sanction raised against a recorded violation
// ('manajemen_sanksi' table). ViolationID carries a unique constraint so a
// violation can have at most one sanction.
type ManajemenSanksi struct {
	ID                  int64          `json:"id" db:"id"`
	SiswaID             int64          `json:"siswaId" db:"siswa_id"`
	ViolationID         int64          `json:"violationId" db:"violation_id"`
	InitiatedByID       int64          `json:"initiatedById" db:"initiated_by_id"` // Guru who raised the sanction
	SanctionType        string         `json:"sanctionType" db:"sanction_type"`
	SanctionDescription string         `json:"sanctionDescription" db:"sanction_description"`
	Status              SanctionStatus `json:"status" db:"status"`
	StartDate           *time.Time     `json:"startDate,omitempty" db:"start_date"`
	EndDate             *time.Time     `json:"endDate,omitempty" db:"end_date"`
	Notes               string         `json:"notes" db:"notes"`
	CreatedAt           time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt           time.Time      `json:"updatedAt" db:"updated_at"`

	Siswa       *Siswa            `json:"siswa,omitempty"`       // Relation, no db tag
	Violation   *InputPelanggaran `json:"violation,omitempty"`   // Relation, no db tag
	InitiatedBy *Guru             `json:"initiatedBy,omitempty"` // Relation, no db tag
}
