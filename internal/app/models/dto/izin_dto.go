package dto

import (
	"time"

	"github.com/sekolahku/siakad/internal/pkg/validation"
)

// LeaveRequestCreate submits a new izin_guru row for a teacher.
type LeaveRequestCreate struct {
	LeaveType string    `json:"leaveType" validate:"required,max=50"`
	StartDate time.Time `json:"startDate" validate:"required"`
	EndDate   time.Time `json:"endDate" validate:"required"`
	Reason    string    `json:"reason" validate:"required,max=500"`
}

func (c LeaveRequestCreate) Validate() error {
	return validation.Struct(c)
}
