package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the subset of pgx operations the repositories use. Both
// *pgxpool.Pool and pgx.Tx satisfy it, so a repository can run against the
// pool or inside a transaction via WithTx.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories bundles every repository for dependency wiring.
type Repositories struct {
	Users          *UserRepository
	Jurusan        *JurusanRepository
	Kelas          *KelasRepository
	Guru           *GuruRepository
	Siswa          *SiswaRepository
	KepalaSekolah  *KepalaSekolahRepository
	Prestasi       *PrestasiRepository
	Pelanggaran    *PelanggaranRepository
	Sanksi         *SanksiRepository
	Jadwal         *JadwalRepository
	Izin           *IzinRepository
	AttendanceGuru *AttendanceGuruRepository
	AttendanceSiswa *AttendanceSiswaRepository
	Calendar       *CalendarRepository
	Settings       *SettingsRepository
}

// NewRepositories creates all repositories backed by the given pool.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		Users:           NewUserRepository(db),
		Jurusan:         NewJurusanRepository(db),
		Kelas:           NewKelasRepository(db),
		Guru:            NewGuruRepository(db),
		Siswa:           NewSiswaRepository(db),
		KepalaSekolah:   NewKepalaSekolahRepository(db),
		Prestasi:        NewPrestasiRepository(db),
		Pelanggaran:     NewPelanggaranRepository(db),
		Sanksi:          NewSanksiRepository(db),
		Jadwal:          NewJadwalRepository(db),
		Izin:            NewIzinRepository(db),
		AttendanceGuru:  NewAttendanceGuruRepository(db),
		AttendanceSiswa: NewAttendanceSiswaRepository(db),
		Calendar:        NewCalendarRepository(db),
		Settings:        NewSettingsRepository(db),
	}
}
