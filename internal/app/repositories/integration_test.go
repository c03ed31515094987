package repositories

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync/atomic"
	"testing"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/sekolahku/siakad/internal/app/migrations"
	"github.com/sekolahku/siakad/internal/app/models"
	"github.com/sekolahku/siakad/internal/pkg/apperrors"
)

// testPool connects to the database named by SIAKAD_TEST_DATABASE_URL and
// applies the embedded migrations. Tests are skipped when the variable is
// unset.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("SIAKAD_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("SIAKAD_TEST_DATABASE_URL not set")
	}

	ctx := context.Background()

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		t.Fatalf("parsing test database url: %v", err)
	}
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("connecting to test database: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := migrations.NewMigrator(pool).Migrate(ctx, migrations.Files()); err != nil {
		t.Fatalf("applying migrations: %v", err)
	}

	return pool
}

// uniqSeq starts at the current time and only moves forward, so values are
// unique within a run and across repeated runs against the same database.
var uniqSeq atomic.Int64

func init() {
	uniqSeq.Store(time.Now().UnixNano())
}

func uniq(prefix string) string {
	return fmt.Sprintf("%s%d", prefix, uniqSeq.Add(1))
}

// uniqCode fits the VARCHAR(10) jurusan code column.
func uniqCode() string {
	return fmt.Sprintf("S%d", uniqSeq.Add(1)%1_000_000_000)
}

func createTestUser(t *testing.T, pool *pgxpool.Pool, role models.UserRole) *models.User {
	t.Helper()

	user := &models.User{
		Username:     uniq("user"),
		Email:        uniq("mail") + "@sekolah.sch.id",
		PasswordHash: "$2a$12$fakehashfortestsonlyxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx",
		Role:         role,
		IsActive:     true,
	}
	if err := NewUserRepository(pool).Create(context.Background(), user); err != nil {
		t.Fatalf("creating test user: %v", err)
	}
	return user
}

func createTestGuru(t *testing.T, pool *pgxpool.Pool) *models.Guru {
	t.Helper()

	user := createTestUser(t, pool, models.RoleGuru)
	guru := &models.Guru{
		UserID:     user.ID,
		NIP:        uniq(""),
		Name:       "Guru Uji",
		Gender:     models.GenderMale,
		Phone:      "081200000000",
		Address:    "Jl. Uji No. 1",
		BirthDate:  time.Date(1985, 3, 10, 0, 0, 0, 0, time.UTC),
		BirthPlace: "Jakarta",
		Education:  "S1 Pendidikan",
		Position:   "Guru Mapel",
		HireDate:   time.Date(2010, 7, 1, 0, 0, 0, 0, time.UTC),
		IsActive:   true,
	}
	if err := NewGuruRepository(pool).Create(context.Background(), guru); err != nil {
		t.Fatalf("creating test guru: %v", err)
	}
	return guru
}

func createTestSiswa(t *testing.T, pool *pgxpool.Pool) *models.Siswa {
	t.Helper()

	user := createTestUser(t, pool, models.RoleSiswa)
	siswa := &models.Siswa{
		UserID:         user.ID,
		NIS:            uniq(""),
		NISN:           uniq(""),
		Name:           "Siswa Uji",
		Gender:         models.GenderFemale,
		Phone:          "081200000001",
		Address:        "Jl. Uji No. 2",
		BirthDate:      time.Date(2008, 1, 15, 0, 0, 0, 0, time.UTC),
		BirthPlace:     "Bandung",
		ParentName:     "Orang Tua Uji",
		ParentPhone:    "081200000002",
		EnrollmentDate: time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC),
		CurrentPoints:  decimal.Zero,
		IsActive:       true,
	}
	if err := NewSiswaRepository(pool).Create(context.Background(), siswa); err != nil {
		t.Fatalf("creating test siswa: %v", err)
	}
	return siswa
}

func TestUserUniqueConstraints(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := NewUserRepository(pool)

	first := createTestUser(t, pool, models.RoleAdmin)

	dup := &models.User{
		Username:     first.Username,
		Email:        uniq("other") + "@sekolah.sch.id",
		PasswordHash: first.PasswordHash,
		Role:         models.RoleAdmin,
		IsActive:     true,
	}
	if err := repo.Create(ctx, dup); !errors.Is(err, apperrors.ErrUsernameAlreadyExists) {
		t.Errorf("duplicate username: expected ErrUsernameAlreadyExists, got %v", err)
	}

	dup = &models.User{
		Username:     uniq("other"),
		Email:        first.Email,
		PasswordHash: first.PasswordHash,
		Role:         models.RoleAdmin,
		IsActive:     true,
	}
	if err := repo.Create(ctx, dup); !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		t.Errorf("duplicate email: expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestGuruUniqueConstraints(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := NewGuruRepository(pool)

	first := createTestGuru(t, pool)

	// A second profile for the same account
	dup := *first
	dup.ID = 0
	dup.NIP = uniq("")
	if err := repo.Create(ctx, &dup); !errors.Is(err, apperrors.ErrGuruProfileExists) {
		t.Errorf("duplicate user_id: expected ErrGuruProfileExists, got %v", err)
	}

	// Same NIP on another account
	other := createTestUser(t, pool, models.RoleGuru)
	dup = *first
	dup.ID = 0
	dup.UserID = other.ID
	if err := repo.Create(ctx, &dup); !errors.Is(err, apperrors.ErrNIPAlreadyExists) {
		t.Errorf("duplicate nip: expected ErrNIPAlreadyExists, got %v", err)
	}
}

func TestSiswaUniqueConstraints(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := NewSiswaRepository(pool)

	first := createTestSiswa(t, pool)

	other := createTestUser(t, pool, models.RoleSiswa)
	dup := *first
	dup.ID = 0
	dup.UserID = other.ID
	dup.NISN = uniq("")
	if err := repo.Create(ctx, &dup); !errors.Is(err, apperrors.ErrNISAlreadyExists) {
		t.Errorf("duplicate nis: expected ErrNISAlreadyExists, got %v", err)
	}

	dup = *first
	dup.ID = 0
	dup.UserID = other.ID
	dup.NIS = uniq("")
	if err := repo.Create(ctx, &dup); !errors.Is(err, apperrors.ErrNISNAlreadyExists) {
		t.Errorf("duplicate nisn: expected ErrNISNAlreadyExists, got %v", err)
	}
}

func TestJurusanKelasResolution(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	jurusanRepo := NewJurusanRepository(pool)
	kelasRepo := NewKelasRepository(pool)

	code := uniqCode()
	jurusan := &models.Jurusan{
		Name:        "Sains " + code,
		Code:        code,
		Description: "Kelompok peminatan sains",
		IsActive:    true,
	}
	if err := jurusanRepo.Create(ctx, jurusan); err != nil {
		t.Fatalf("creating jurusan: %v", err)
	}

	dup := &models.Jurusan{Name: "Duplikat", Code: code, IsActive: true}
	if err := jurusanRepo.Create(ctx, dup); !errors.Is(err, apperrors.ErrJurusanCodeExists) {
		t.Errorf("duplicate code: expected ErrJurusanCodeExists, got %v", err)
	}

	found, err := jurusanRepo.GetByCode(ctx, code)
	if err != nil {
		t.Fatalf("GetByCode: %v", err)
	}
	if found.ID != jurusan.ID {
		t.Errorf("GetByCode resolved id %d, want %d", found.ID, jurusan.ID)
	}

	kelas := &models.Kelas{
		Name:         "XII-" + code + "-1",
		GradeLevel:   12,
		JurusanID:    jurusan.ID,
		Capacity:     32,
		AcademicYear: "2025/2026",
		IsActive:     true,
	}
	if err := kelasRepo.Create(ctx, kelas); err != nil {
		t.Fatalf("creating kelas: %v", err)
	}

	withJurusan, err := kelasRepo.GetByIDWithJurusan(ctx, kelas.ID)
	if err != nil {
		t.Fatalf("GetByIDWithJurusan: %v", err)
	}
	if withJurusan.Jurusan == nil || withJurusan.Jurusan.Code != code {
		t.Errorf("expected resolved jurusan with code %s, got %+v", code, withJurusan.Jurusan)
	}

	list, err := kelasRepo.GetByJurusanID(ctx, jurusan.ID)
	if err != nil {
		t.Fatalf("GetByJurusanID: %v", err)
	}
	if len(list) != 1 || list[0].ID != kelas.ID {
		t.Errorf("expected exactly the created kelas, got %d rows", len(list))
	}
}

func TestSanctionOnePerViolation(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	pelanggaranRepo := NewPelanggaranRepository(pool)
	sanksiRepo := NewSanksiRepository(pool)

	siswa := createTestSiswa(t, pool)
	guru := createTestGuru(t, pool)

	jenis := &models.JenisPelanggaran{
		Name:           uniq("Pelanggaran Uji "),
		Description:    "Untuk pengujian",
		PointsDeducted: decimal.NewFromInt(10),
		SeverityLevel:  2,
		IsActive:       true,
	}
	if err := pelanggaranRepo.CreateJenis(ctx, jenis); err != nil {
		t.Fatalf("creating jenis pelanggaran: %v", err)
	}

	violation := &models.InputPelanggaran{
		SiswaID:            siswa.ID,
		JenisPelanggaranID: jenis.ID,
		ViolationDate:      time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC),
		Description:        "Terlambat masuk kelas",
		ReportedBy:         guru.Name,
		PointsDeducted:     jenis.PointsDeducted,
	}
	if err := pelanggaranRepo.CreateRecord(ctx, violation); err != nil {
		t.Fatalf("creating violation: %v", err)
	}

	sanksi := &models.ManajemenSanksi{
		SiswaID:             siswa.ID,
		ViolationID:         violation.ID,
		InitiatedByID:       guru.ID,
		SanctionType:        "Teguran Tertulis",
		SanctionDescription: "Surat teguran pertama",
		Status:              models.SanctionPending,
	}
	if err := sanksiRepo.Create(ctx, sanksi); err != nil {
		t.Fatalf("creating sanction: %v", err)
	}

	second := &models.ManajemenSanksi{
		SiswaID:             siswa.ID,
		ViolationID:         violation.ID,
		InitiatedByID:       guru.ID,
		SanctionType:        "Skorsing",
		SanctionDescription: "Tidak boleh ada sanksi kedua",
		Status:              models.SanctionPending,
	}
	if err := sanksiRepo.Create(ctx, second); !errors.Is(err, apperrors.ErrSanctionAlreadyExists) {
		t.Errorf("second sanction: expected ErrSanctionAlreadyExists, got %v", err)
	}

	found, err := sanksiRepo.GetByViolationID(ctx, violation.ID)
	if err != nil {
		t.Fatalf("GetByViolationID: %v", err)
	}
	if found.ID != sanksi.ID {
		t.Errorf("resolved sanction %d, want %d", found.ID, sanksi.ID)
	}
}

func TestPointBalanceRoundTrip(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := NewSiswaRepository(pool)

	siswa := createTestSiswa(t, pool)

	award := decimal.RequireFromString("12.34")
	balance, err := repo.AdjustPoints(ctx, siswa.ID, award)
	if err != nil {
		t.Fatalf("AdjustPoints: %v", err)
	}
	if !balance.Equal(award) {
		t.Errorf("balance after award = %s, want %s", balance, award)
	}

	deduct := decimal.RequireFromString("-2.30")
	balance, err = repo.AdjustPoints(ctx, siswa.ID, deduct)
	if err != nil {
		t.Fatalf("AdjustPoints: %v", err)
	}
	want := decimal.RequireFromString("10.04")
	if !balance.Equal(want) {
		t.Errorf("balance after deduction = %s, want %s", balance, want)
	}

	// Two fractional digits survive a full round trip through the column
	reloaded, err := repo.GetByID(ctx, siswa.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if !reloaded.CurrentPoints.Equal(want) {
		t.Errorf("stored balance = %s, want %s", reloaded.CurrentPoints, want)
	}
}

func TestAttendanceOneRowPerDate(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := NewAttendanceGuruRepository(pool)

	guru := createTestGuru(t, pool)
	date := time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC)
	checkIn := date.Add(7 * time.Hour)

	lat := decimal.RequireFromString("-6.200001")
	lng := decimal.RequireFromString("106.816666")

	att := &models.AttendanceGuru{
		GuruID:      guru.ID,
		Date:        date,
		Status:      models.AttendancePresent,
		CheckIn:     &checkIn,
		LocationLat: &lat,
		LocationLng: &lng,
	}
	if err := repo.Create(ctx, att); err != nil {
		t.Fatalf("creating attendance: %v", err)
	}

	second := &models.AttendanceGuru{
		GuruID: guru.ID,
		Date:   date,
		Status: models.AttendanceLate,
	}
	if err := repo.Create(ctx, second); !errors.Is(err, apperrors.ErrAttendanceAlreadyMarked) {
		t.Errorf("second row same date: expected ErrAttendanceAlreadyMarked, got %v", err)
	}

	// Six fractional digits of the coordinates survive the round trip
	reloaded, err := repo.GetByGuruAndDate(ctx, guru.ID, date)
	if err != nil {
		t.Fatalf("GetByGuruAndDate: %v", err)
	}
	if reloaded.LocationLat == nil || !reloaded.LocationLat.Equal(lat) {
		t.Errorf("stored latitude = %v, want %s", reloaded.LocationLat, lat)
	}
	if reloaded.LocationLng == nil || !reloaded.LocationLng.Equal(lng) {
		t.Errorf("stored longitude = %v, want %s", reloaded.LocationLng, lng)
	}
}

func TestSettingsSaveAndLoad(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := NewSettingsRepository(pool)

	lat := decimal.RequireFromString("-6.175392")
	lng := decimal.RequireFromString("106.827153")
	radius := 150

	settings, err := repo.Load(ctx)
	if errors.Is(err, apperrors.ErrSettingsNotFound) {
		settings = &models.SchoolSettings{}
	} else if err != nil {
		t.Fatalf("Load: %v", err)
	}

	settings.SchoolName = "SMA Uji Integrasi"
	settings.SchoolAddress = "Jl. Integrasi No. 9"
	settings.SchoolPhone = "021-5550001"
	settings.SchoolEmail = "uji@sekolah.sch.id"
	settings.GeofenceEnabled = true
	settings.GeofenceLat = &lat
	settings.GeofenceLng = &lng
	settings.GeofenceRadius = &radius
	settings.AcademicYear = "2025/2026"

	if err := repo.Save(ctx, settings); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reloaded, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load after save: %v", err)
	}
	if reloaded.SchoolName != "SMA Uji Integrasi" {
		t.Errorf("school name = %q", reloaded.SchoolName)
	}
	if reloaded.GeofenceLat == nil || !reloaded.GeofenceLat.Equal(lat) {
		t.Errorf("geofence latitude = %v, want %s", reloaded.GeofenceLat, lat)
	}
	if reloaded.GeofenceRadius == nil || *reloaded.GeofenceRadius != radius {
		t.Errorf("geofence radius = %v, want %d", reloaded.GeofenceRadius, radius)
	}
}
