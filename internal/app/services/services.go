package services

import (
	"github.com/sekolahku/siakad/internal/app/repositories"
	"github.com/sekolahku/siakad/internal/db"
	"github.com/sekolahku/siakad/internal/pkg/filestorage"
)

// Services bundles every service for dependency wiring.
type Services struct {
	Guru        *GuruService
	Siswa       *SiswaService
	Prestasi    *PrestasiService
	Pelanggaran *PelanggaranService
	Sanksi      *SanksiService
	Izin        *IzinService
	Attendance  *AttendanceService
	Calendar    *CalendarService
	Settings    *SettingsService
}

// NewServices creates all services on top of the repositories.
func NewServices(database *db.PostgresDB, repos *repositories.Repositories, storage *filestorage.LocalStorage) *Services {
	return &Services{
		Guru:        NewGuruService(database, repos.Users, repos.Guru),
		Siswa:       NewSiswaService(database, repos.Users, repos.Siswa, repos.Kelas),
		Prestasi:    NewPrestasiService(database, repos.Prestasi, repos.Siswa, storage),
		Pelanggaran: NewPelanggaranService(database, repos.Pelanggaran, repos.Siswa, storage),
		Sanksi:      NewSanksiService(repos.Sanksi, repos.Pelanggaran, repos.Guru),
		Izin:        NewIzinService(repos.Izin, repos.Guru, storage),
		Attendance:  NewAttendanceService(repos.AttendanceGuru, repos.AttendanceSiswa, repos.Guru, repos.Siswa, repos.Settings),
		Calendar:    NewCalendarService(repos.Calendar),
		Settings:    NewSettingsService(repos.Settings, storage),
	}
}
