package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SchoolSettings is the singleton configuration row ('school_settings'
// table). The geofence columns define the center and radius (meters) used to
// validate teacher check-in coordinates.
type SchoolSettings struct {
	ID              int64            `json:"id" db:"id"`
	SchoolName      string           `json:"schoolName" db:"school_name"`
	SchoolAddress   string           `json:"schoolAddress" db:"school_address"`
	SchoolPhone     string           `json:"schoolPhone" db:"school_phone"`
	SchoolEmail     string           `json:"schoolEmail" db:"school_email"`
	LogoPath        *string          `json:"logoPath,omitempty" db:"logo_path"`
	FaviconPath     *string          `json:"faviconPath,omitempty" db:"favicon_path"`
	GeofenceEnabled bool             `json:"geofenceEnabled" db:"geofence_enabled"`
	GeofenceLat     *decimal.Decimal `json:"geofenceLat,omitempty" db:"geofence_lat"`
	GeofenceLng     *decimal.Decimal `json:"geofenceLng,omitempty" db:"geofence_lng"`
	GeofenceRadius  *int             `json:"geofenceRadius,omitempty" db:"geofence_radius"`
	AcademicYear    string           `json:"academicYear" db:"academic_year"`
	UpdatedAt       time.Time        `json:"updatedAt" db:"updated_at"`
}
