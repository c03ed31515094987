package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AttendanceGuru is one teacher attendance row per guru per date
// ('attendance_guru' table). Check-in/out and coordinates are recorded when
// the teacher clocks in through the geofenced flow.
type AttendanceGuru struct {
	ID          int64            `json:"id" db:"id"`
	GuruID      int64            `json:"guruId" db:"guru_id"`
	Date        time.Time        `json:"date" db:"date"`
	Status      AttendanceStatus `json:"status" db:"status"`
	CheckIn     *time.Time       `json:"checkIn,omitempty" db:"check_in"`
	CheckOut    *time.Time       `json:"checkOut,omitempty" db:"check_out"`
	LocationLat *decimal.Decimal `json:"locationLat,omitempty" db:"location_lat"`
	LocationLng *decimal.Decimal `json:"locationLng,omitempty" db:"location_lng"`
	Notes       string           `json:"notes" db:"notes"`
	CreatedAt   time.Time        `json:"createdAt" db:"created_at"`

	Guru *Guru `json:"guru,omitempty"` // Relation, no db tag
}

// AttendanceSiswa is one student attendance row per siswa per date
// ('attendance_siswa' table).
type AttendanceSiswa struct {
	ID         int64            `json:"id" db:"id"`
	SiswaID    int64            `json:"siswaId" db:"siswa_id"`
	Date       time.Time        `json:"date" db:"date"`
	Status     AttendanceStatus `json:"status" db:"status"`
	Notes      string           `json:"notes" db:"notes"`
	RecordedBy string           `json:"recordedBy" db:"recorded_by"` // Who recorded the attendance
	CreatedAt  time.Time        `json:"createdAt" db:"created_at"`

	Siswa *Siswa `json:"siswa,omitempty"` // Relation, no db tag
}
