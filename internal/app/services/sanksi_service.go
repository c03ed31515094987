package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sekolahku/siakad/internal/app/models"
	"github.com/sekolahku/siakad/internal/app/models/dto"
	"github.com/sekolahku/siakad/internal/app/repositories"
	"github.com/sekolahku/siakad/internal/pkg/apperrors"
	"github.com/sekolahku/siakad/internal/pkg/logger"
)

// SanksiService opens and tracks sanctions against recorded violations. A
// violation can carry at most one sanction.
type SanksiService struct {
	sanksiRepo      *repositories.SanksiRepository
	pelanggaranRepo *repositories.PelanggaranRepository
	guruRepo        *repositories.GuruRepository
}

// NewSanksiService creates a new sanksi service instance
func NewSanksiService(sanksiRepo *repositories.SanksiRepository, pelanggaranRepo *repositories.PelanggaranRepository, guruRepo *repositories.GuruRepository) *SanksiService {
	return &SanksiService{
		sanksiRepo:      sanksiRepo,
		pelanggaranRepo: pelanggaranRepo,
		guruRepo:        guruRepo,
	}
}

// Open creates a sanction for a recorded violation. The student is resolved
// from the violation and the initiating teacher from the caller's account.
// A second sanction for the same violation fails with
// ErrSanctionAlreadyExists.
func (s *SanksiService) Open(ctx context.Context, schema dto.SanctionCreate, initiatorUserID int64) (*models.ManajemenSanksi, error) {
	if err := schema.Validate(); err != nil {
		return nil, err
	}

	violation, err := s.pelanggaranRepo.GetRecordByID(ctx, schema.ViolationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPelanggaranNotFound) {
			return nil, apperrors.ErrSanctionViolationMissing
		}
		return nil, err
	}

	guru, err := s.guruRepo.GetByUserID(ctx, initiatorUserID)
	if err != nil {
		return nil, fmt.Errorf("resolving initiating guru: %w", err)
	}

	sanksi := &models.ManajemenSanksi{
		SiswaID:             violation.SiswaID,
		ViolationID:         violation.ID,
		InitiatedByID:       guru.ID,
		SanctionType:        schema.SanctionType,
		SanctionDescription: schema.SanctionDescription,
		Status:              models.SanctionPending,
		StartDate:           schema.StartDate,
		EndDate:             schema.EndDate,
	}

	if err := s.sanksiRepo.Create(ctx, sanksi); err != nil {
		return nil, err
	}

	logger.Info().
		Int64("sanksi_id", sanksi.ID).
		Int64("violation_id", violation.ID).
		Int64("initiated_by", guru.ID).
		Msg("Sanction opened")
	return sanksi, nil
}

// UpdateStatus moves a sanction to a new status. Transitions are free-form
// but the target status must be a known value.
func (s *SanksiService) UpdateStatus(ctx context.Context, id int64, status models.SanctionStatus, notes string) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown sanction status %q", apperrors.ErrValidationFailed, status)
	}
	return s.sanksiRepo.UpdateStatus(ctx, id, status, notes)
}

// GetByID retrieves a sanction
func (s *SanksiService) GetByID(ctx context.Context, id int64) (*models.ManajemenSanksi, error) {
	return s.sanksiRepo.GetByID(ctx, id)
}

// GetByViolationID retrieves the sanction attached to a violation
func (s *SanksiService) GetByViolationID(ctx context.Context, violationID int64) (*models.ManajemenSanksi, error) {
	return s.sanksiRepo.GetByViolationID(ctx, violationID)
}

// GetBySiswaID retrieves the sanctions raised against one student
func (s *SanksiService) GetBySiswaID(ctx context.Context, siswaID int64) ([]*models.ManajemenSanksi, error) {
	return s.sanksiRepo.GetBySiswaID(ctx, siswaID)
}
