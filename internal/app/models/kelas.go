package models

import (
	"time"
)

// Kelas represents a class/section ('kelas' table), e.g. "XII-IPA-1"
type Kelas struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	GradeLevel   int       `json:"gradeLevel" db:"grade_level"` // 10, 11, 12
	JurusanID    int64     `json:"jurusanId" db:"jurusan_id"`
	WaliKelasID  *int64    `json:"waliKelasId,omitempty" db:"wali_kelas_id"` // Homeroom teacher (nullable)
	Capacity     int       `json:"capacity" db:"capacity"`
	AcademicYear string    `json:"academicYear" db:"academic_year"` // e.g. "2023/2024"
	IsActive     bool      `json:"isActive" db:"is_active"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`

	Jurusan   *Jurusan `json:"jurusan,omitempty"`   // Relation, no db tag
	WaliKelas *Guru    `json:"waliKelas,omitempty"` // Relation, no db tag
}
