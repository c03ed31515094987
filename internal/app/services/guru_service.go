package services

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sekolahku/siakad/internal/app/models"
	"github.com/sekolahku/siakad/internal/app/models/dto"
	"github.com/sekolahku/siakad/internal/app/repositories"
	"github.com/sekolahku/siakad/internal/db"
	"github.com/sekolahku/siakad/internal/pkg/auth"
	"github.com/sekolahku/siakad/internal/pkg/logger"
)

// GuruService handles teacher enrollment and profile operations.
type GuruService struct {
	db       *db.PostgresDB
	userRepo *repositories.UserRepository
	guruRepo *repositories.GuruRepository
}

// NewGuruService creates a new guru service instance
func NewGuruService(database *db.PostgresDB, userRepo *repositories.UserRepository, guruRepo *repositories.GuruRepository) *GuruService {
	return &GuruService{
		db:       database,
		userRepo: userRepo,
		guruRepo: guruRepo,
	}
}

// Enroll registers a teacher account and profile in one transaction. The
// account role is forced to guru regardless of what the schema carries.
func (s *GuruService) Enroll(ctx context.Context, schema dto.GuruCreate) (*models.Guru, error) {
	if err := schema.Validate(); err != nil {
		return nil, err
	}

	passwordHash, err := auth.HashPassword(schema.UserData.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username:     schema.UserData.Username,
		Email:        schema.UserData.Email,
		PasswordHash: passwordHash,
		Role:         models.RoleGuru,
		IsActive:     true,
	}

	guru := &models.Guru{
		NIP:        schema.NIP,
		Name:       schema.Name,
		Gender:     schema.Gender,
		Phone:      schema.Phone,
		Address:    schema.Address,
		BirthDate:  schema.BirthDate,
		BirthPlace: schema.BirthPlace,
		Education:  schema.Education,
		Position:   schema.Position,
		HireDate:   schema.HireDate,
		IsActive:   true,
	}

	err = s.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.userRepo.WithTx(tx).Create(ctx, user); err != nil {
			return err
		}
		guru.UserID = user.ID
		return s.guruRepo.WithTx(tx).Create(ctx, guru)
	})
	if err != nil {
		return nil, err
	}

	guru.User = user
	logger.Info().Int64("guru_id", guru.ID).Str("nip", guru.NIP).Msg("Guru enrolled")
	return guru, nil
}

// GetByID retrieves a guru profile
func (s *GuruService) GetByID(ctx context.Context, id int64) (*models.Guru, error) {
	return s.guruRepo.GetByID(ctx, id)
}

// GetByNIP retrieves a guru profile by employee number
func (s *GuruService) GetByNIP(ctx context.Context, nip string) (*models.Guru, error) {
	return s.guruRepo.GetByNIP(ctx, nip)
}

// GetByUserID retrieves the guru profile owned by an account
func (s *GuruService) GetByUserID(ctx context.Context, userID int64) (*models.Guru, error) {
	return s.guruRepo.GetByUserID(ctx, userID)
}

// GetAll retrieves all guru profiles
func (s *GuruService) GetAll(ctx context.Context) ([]*models.Guru, error) {
	return s.guruRepo.GetAll(ctx)
}

// Update rewrites the mutable guru profile fields.
func (s *GuruService) Update(ctx context.Context, guru *models.Guru) error {
	return s.guruRepo.Update(ctx, guru)
}

// Deactivate soft-deletes the guru profile and its account together.
func (s *GuruService) Deactivate(ctx context.Context, id int64) error {
	guru, err := s.guruRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	return s.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.guruRepo.WithTx(tx).Deactivate(ctx, id); err != nil {
			return err
		}
		return s.userRepo.WithTx(tx).Deactivate(ctx, guru.UserID)
	})
}
