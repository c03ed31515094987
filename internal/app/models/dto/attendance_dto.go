package dto

import (
	"github.com/shopspring/decimal"

	"github.com/sekolahku/siakad/internal/app/models"
	"github.com/sekolahku/siakad/internal/pkg/validation"
)

// AttendanceMarkCreate marks attendance for the account identified by
// UserID. Coordinates are only expected for teacher check-ins when the
// school geofence is enabled.
type AttendanceMarkCreate struct {
	UserID      int64                   `json:"userId" validate:"required,gt=0"`
	Status      models.AttendanceStatus `json:"status" validate:"required,oneof=present absent late sick excused"`
	LocationLat *decimal.Decimal        `json:"locationLat,omitempty"`
	LocationLng *decimal.Decimal        `json:"locationLng,omitempty"`
	Notes       string                  `json:"notes" validate:"max=500"`
}

func (c AttendanceMarkCreate) Validate() error {
	return validation.Struct(c)
}
