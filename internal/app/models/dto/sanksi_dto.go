package dto

import (
	"time"

	"github.com/sekolahku/siakad/internal/pkg/validation"
)

// SanctionCreate opens a sanction against a recorded violation. The student
// and initiating teacher are resolved by the service.
type SanctionCreate struct {
	ViolationID         int64      `json:"violationId" validate:"required,gt=0"`
	SanctionType        string     `json:"sanctionType" validate:"required,max=100"`
	SanctionDescription string     `json:"sanctionDescription" validate:"required,max=500"`
	StartDate           *time.Time `json:"startDate,omitempty"`
	EndDate             *time.Time `json:"endDate,omitempty"`
}

func (c SanctionCreate) Validate() error {
	return validation.Struct(c)
}
