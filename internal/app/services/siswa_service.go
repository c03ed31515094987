package services

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/sekolahku/siakad/internal/app/models"
	"github.com/sekolahku/siakad/internal/app/models/dto"
	"github.com/sekolahku/siakad/internal/app/repositories"
	"github.com/sekolahku/siakad/internal/db"
	"github.com/sekolahku/siakad/internal/pkg/auth"
	"github.com/sekolahku/siakad/internal/pkg/logger"
)

// SiswaService handles student enrollment, placement and profile
// operations.
type SiswaService struct {
	db        *db.PostgresDB
	userRepo  *repositories.UserRepository
	siswaRepo *repositories.SiswaRepository
	kelasRepo *repositories.KelasRepository
}

// NewSiswaService creates a new siswa service instance
func NewSiswaService(database *db.PostgresDB, userRepo *repositories.UserRepository, siswaRepo *repositories.SiswaRepository, kelasRepo *repositories.KelasRepository) *SiswaService {
	return &SiswaService{
		db:        database,
		userRepo:  userRepo,
		siswaRepo: siswaRepo,
		kelasRepo: kelasRepo,
	}
}

// Enroll registers a student account and profile in one transaction. The
// account role is forced to siswa and the point balance starts at zero.
func (s *SiswaService) Enroll(ctx context.Context, schema dto.SiswaCreate) (*models.Siswa, error) {
	if err := schema.Validate(); err != nil {
		return nil, err
	}

	if schema.KelasID != nil {
		if _, err := s.kelasRepo.GetByID(ctx, *schema.KelasID); err != nil {
			return nil, err
		}
	}

	passwordHash, err := auth.HashPassword(schema.UserData.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username:     schema.UserData.Username,
		Email:        schema.UserData.Email,
		PasswordHash: passwordHash,
		Role:         models.RoleSiswa,
		IsActive:     true,
	}

	siswa := &models.Siswa{
		NIS:            schema.NIS,
		NISN:           schema.NISN,
		Name:           schema.Name,
		Gender:         schema.Gender,
		Phone:          schema.Phone,
		Address:        schema.Address,
		BirthDate:      schema.BirthDate,
		BirthPlace:     schema.BirthPlace,
		KelasID:        schema.KelasID,
		ParentName:     schema.ParentName,
		ParentPhone:    schema.ParentPhone,
		EnrollmentDate: schema.EnrollmentDate,
		CurrentPoints:  decimal.Zero,
		IsActive:       true,
	}

	err = s.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.userRepo.WithTx(tx).Create(ctx, user); err != nil {
			return err
		}
		siswa.UserID = user.ID
		return s.siswaRepo.WithTx(tx).Create(ctx, siswa)
	})
	if err != nil {
		return nil, err
	}

	siswa.User = user
	logger.Info().Int64("siswa_id", siswa.ID).Str("nis", siswa.NIS).Msg("Siswa enrolled")
	return siswa, nil
}

// GetByID retrieves a siswa profile
func (s *SiswaService) GetByID(ctx context.Context, id int64) (*models.Siswa, error) {
	return s.siswaRepo.GetByID(ctx, id)
}

// GetByNIS retrieves a siswa profile by school-issued student number
func (s *SiswaService) GetByNIS(ctx context.Context, nis string) (*models.Siswa, error) {
	return s.siswaRepo.GetByNIS(ctx, nis)
}

// GetByUserID retrieves the siswa profile owned by an account
func (s *SiswaService) GetByUserID(ctx context.Context, userID int64) (*models.Siswa, error) {
	return s.siswaRepo.GetByUserID(ctx, userID)
}

// GetByKelasID retrieves the students placed in a kelas
func (s *SiswaService) GetByKelasID(ctx context.Context, kelasID int64) ([]*models.Siswa, error) {
	return s.siswaRepo.GetByKelasID(ctx, kelasID)
}

// AssignKelas places the student in a class after checking it exists. A nil
// kelasID removes the placement.
func (s *SiswaService) AssignKelas(ctx context.Context, siswaID int64, kelasID *int64) error {
	if kelasID != nil {
		if _, err := s.kelasRepo.GetByID(ctx, *kelasID); err != nil {
			return err
		}
	}
	return s.siswaRepo.AssignKelas(ctx, siswaID, kelasID)
}

// Update rewrites the mutable siswa profile fields.
func (s *SiswaService) Update(ctx context.Context, siswa *models.Siswa) error {
	return s.siswaRepo.Update(ctx, siswa)
}

// Deactivate soft-deletes the siswa profile and its account together.
func (s *SiswaService) Deactivate(ctx context.Context, id int64) error {
	siswa, err := s.siswaRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	return s.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.siswaRepo.WithTx(tx).Deactivate(ctx, id); err != nil {
			return err
		}
		return s.userRepo.WithTx(tx).Deactivate(ctx, siswa.UserID)
	})
}
