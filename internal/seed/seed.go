package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/sekolahku/siakad/internal/app/models"
	"github.com/sekolahku/siakad/internal/app/repositories"
	"github.com/sekolahku/siakad/internal/config"
	"github.com/sekolahku/siakad/internal/pkg/apperrors"
	"github.com/sekolahku/siakad/internal/pkg/auth"
	"github.com/sekolahku/siakad/internal/pkg/logger"
)

// CreateDefaultData seeds the admin account, the baseline achievement and
// violation catalogs, and the school settings row. Every step is idempotent:
// rows that already exist are left untouched.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config) error {
	repos := repositories.NewRepositories(dbPool)

	logger.Info().Msg("Checking/Creating default data...")
	var finalErr error

	if err := seedAdminUser(ctx, repos.Users, cfg); err != nil {
		finalErr = errors.Join(finalErr, err)
	}
	if err := seedPrestasiCatalog(ctx, repos.Prestasi); err != nil {
		finalErr = errors.Join(finalErr, err)
	}
	if err := seedPelanggaranCatalog(ctx, repos.Pelanggaran); err != nil {
		finalErr = errors.Join(finalErr, err)
	}
	if err := seedSettings(ctx, repos.Settings); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	return finalErr
}

func seedAdminUser(ctx context.Context, userRepo *repositories.UserRepository, cfg *config.Config) error {
	_, err := userRepo.GetByUsername(ctx, cfg.Seed.AdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		logger.Error().Err(err).Msg("Error checking for admin user")
		return err
	}

	passwordHash, err := auth.HashPassword(cfg.Seed.AdminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		Username:     cfg.Seed.AdminUsername,
		Email:        cfg.Seed.AdminEmail,
		PasswordHash: passwordHash,
		Role:         models.RoleAdmin,
		IsActive:     true,
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, apperrors.ErrUsernameAlreadyExists) || errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil
		}
		logger.Error().Err(err).Msg("Error creating admin user")
		return err
	}

	logger.Info().Str("username", admin.Username).Msg("Default admin user created")
	return nil
}

func seedPrestasiCatalog(ctx context.Context, prestasiRepo *repositories.PrestasiRepository) error {
	defaults := []models.JenisPrestasi{
		{Name: "Juara Kelas", Description: "Peringkat pertama di kelas", Points: decimal.NewFromInt(50), IsActive: true},
		{Name: "Juara Lomba Tingkat Sekolah", Description: "Juara lomba antar kelas", Points: decimal.NewFromInt(25), IsActive: true},
		{Name: "Juara Lomba Tingkat Kota", Description: "Mewakili sekolah di tingkat kota", Points: decimal.NewFromInt(75), IsActive: true},
		{Name: "Juara Lomba Tingkat Provinsi", Description: "Mewakili sekolah di tingkat provinsi", Points: decimal.NewFromInt(100), IsActive: true},
	}

	var finalErr error
	for i := range defaults {
		jenis := defaults[i]
		_, err := prestasiRepo.GetJenisByName(ctx, jenis.Name)
		if err == nil {
			continue
		}
		if !errors.Is(err, apperrors.ErrJenisPrestasiNotFound) {
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if err := prestasiRepo.CreateJenis(ctx, &jenis); err != nil {
			logger.Error().Err(err).Str("name", jenis.Name).Msg("Error creating jenis prestasi")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}

func seedPelanggaranCatalog(ctx context.Context, pelanggaranRepo *repositories.PelanggaranRepository) error {
	defaults := []models.JenisPelanggaran{
		{Name: "Terlambat", Description: "Datang terlambat ke sekolah", PointsDeducted: decimal.NewFromInt(5), SeverityLevel: 1, IsActive: true},
		{Name: "Tidak Mengerjakan Tugas", Description: "Tugas tidak dikumpulkan tepat waktu", PointsDeducted: decimal.NewFromInt(10), SeverityLevel: 2, IsActive: true},
		{Name: "Membolos", Description: "Meninggalkan sekolah tanpa izin", PointsDeducted: decimal.NewFromInt(25), SeverityLevel: 3, IsActive: true},
		{Name: "Perkelahian", Description: "Terlibat perkelahian di lingkungan sekolah", PointsDeducted: decimal.NewFromInt(75), SeverityLevel: 5, IsActive: true},
	}

	var finalErr error
	for i := range defaults {
		jenis := defaults[i]
		_, err := pelanggaranRepo.GetJenisByName(ctx, jenis.Name)
		if err == nil {
			continue
		}
		if !errors.Is(err, apperrors.ErrJenisPelanggaranNotFound) {
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if err := pelanggaranRepo.CreateJenis(ctx, &jenis); err != nil {
			logger.Error().Err(err).Str("name", jenis.Name).Msg("Error creating jenis pelanggaran")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}

func seedSettings(ctx context.Context, settingsRepo *repositories.SettingsRepository) error {
	_, err := settingsRepo.Load(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrSettingsNotFound) {
		logger.Error().Err(err).Msg("Error checking school settings")
		return err
	}

	settings := &models.SchoolSettings{
		SchoolName:      "Sekolah Menengah Atas Negeri 1",
		SchoolAddress:   "Jl. Pendidikan No. 1",
		SchoolPhone:     "021-0000000",
		SchoolEmail:     "info@sekolah.sch.id",
		GeofenceEnabled: false,
		AcademicYear:    "2025/2026",
	}

	if err := settingsRepo.Save(ctx, settings); err != nil {
		logger.Error().Err(err).Msg("Error creating school settings")
		return err
	}

	logger.Info().Msg("Default school settings created")
	return nil
}
