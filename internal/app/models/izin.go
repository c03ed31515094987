package models

import (
	"time"
)

// IzinGuru is a teacher leave request ('izin_guru' table). Approval fields
// stay nil while the request is pending; no actor rules are enforced on
// status transitions.
type IzinGuru struct {
	ID              int64       `json:"id" db:"id"`
	GuruID          int64       `json:"guruId" db:"guru_id"`
	LeaveType       string      `json:"leaveType" db:"leave_type"` // sick, personal, official, ...
	StartDate       time.Time   `json:"startDate" db:"start_date"`
	EndDate         time.Time   `json:"endDate" db:"end_date"`
	Reason          string      `json:"reason" db:"reason"`
	Status          LeaveStatus `json:"status" db:"status"`
	ApprovedBy      *string     `json:"approvedBy,omitempty" db:"approved_by"`
	ApprovalDate    *time.Time  `json:"approvalDate,omitempty" db:"approval_date"`
	RejectionReason *string     `json:"rejectionReason,omitempty" db:"rejection_reason"`
	Attachment      *string     `json:"attachment,omitempty" db:"attachment"` // File path
	CreatedAt       time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time   `json:"updatedAt" db:"updated_at"`

	Guru *Guru `json:"guru,omitempty"` // Relation, no db tag
}
