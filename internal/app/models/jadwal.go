package models

import (
	"time"
)

// JadwalMengajar is a teaching schedule slot ('jadwal_mengajar' table)
// linking a guru to a kelas for a subject. Times are stored as "HH:MM"
// strings, day of week is 1-7 (Monday-Sunday), semester is 1 or 2.
type JadwalMengajar struct {
	ID           int64     `json:"id" db:"id"`
	GuruID       int64     `json:"guruId" db:"guru_id"`
	KelasID      int64     `json:"kelasId" db:"kelas_id"`
	Subject      string    `json:"subject" db:"subject"`
	DayOfWeek    int       `json:"dayOfWeek" db:"day_of_week"`
	StartTime    string    `json:"startTime" db:"start_time"`
	EndTime      string    `json:"endTime" db:"end_time"`
	AcademicYear string    `json:"academicYear" db:"academic_year"`
	Semester     int       `json:"semester" db:"semester"`
	Cluster      string    `json:"cluster" db:"cluster"` // Teaching cluster label
	IsActive     bool      `json:"isActive" db:"is_active"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`

	Guru  *Guru  `json:"guru,omitempty"`  // Relation, no db tag
	Kelas *Kelas `json:"kelas,omitempty"` // Relation, no db tag
}
