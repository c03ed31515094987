package apperrors

import "errors"

// Common errors
var (
	ErrValidationFailed = errors.New("validation failed")
)

// User errors
var (
	ErrUserNotFound          = errors.New("user not found")
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrEmailAlreadyExists    = errors.New("email already exists")
)

// Jurusan errors
var (
	ErrJurusanNotFound        = errors.New("jurusan not found")
	ErrJurusanCodeExists      = errors.New("jurusan with this code already exists")
	ErrJurusanForKelasMissing = errors.New("jurusan for kelas not found")
)

// Kelas errors
var (
	ErrKelasNotFound = errors.New("kelas not found")
)

// Guru errors
var (
	ErrGuruNotFound          = errors.New("guru not found")
	ErrNIPAlreadyExists      = errors.New("guru with this NIP already exists")
	ErrGuruProfileExists     = errors.New("user already has a guru profile")
	ErrKepalaSekolahNotFound = errors.New("kepala sekolah not found")
)

// Siswa errors
var (
	ErrSiswaNotFound      = errors.New("siswa not found")
	ErrNISAlreadyExists   = errors.New("siswa with this NIS already exists")
	ErrNISNAlreadyExists  = errors.New("siswa with this NISN already exists")
	ErrSiswaProfileExists = errors.New("user already has a siswa profile")
)

// Achievement and violation errors
var (
	ErrJenisPrestasiNotFound    = errors.New("jenis prestasi not found")
	ErrJenisPelanggaranNotFound = errors.New("jenis pelanggaran not found")
	ErrPrestasiNotFound         = errors.New("input prestasi not found")
	ErrPelanggaranNotFound      = errors.New("input pelanggaran not found")
)

// Sanction errors
var (
	ErrSanctionNotFound         = errors.New("sanction not found")
	ErrSanctionAlreadyExists    = errors.New("violation already has a sanction")
	ErrSanctionViolationMissing = errors.New("violation for sanction not found")
)

// Schedule errors
var (
	ErrJadwalNotFound = errors.New("jadwal mengajar not found")
)

// Leave request errors
var (
	ErrIzinNotFound = errors.New("izin guru not found")
)

// Attendance errors
var (
	ErrAttendanceNotFound      = errors.New("attendance record not found")
	ErrAttendanceAlreadyMarked = errors.New("attendance already marked for this date")
	ErrOutsideGeofence         = errors.New("check-in location is outside the school geofence")
	ErrGeofenceNotConfigured   = errors.New("geofence is enabled but center coordinates are not configured")
)

// Calendar errors
var (
	ErrCalendarEventNotFound = errors.New("calendar event not found")
)

// Settings errors
var (
	ErrSettingsNotFound = errors.New("school settings row not found")
)
