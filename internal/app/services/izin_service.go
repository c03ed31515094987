package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sekolahku/siakad/internal/app/models"
	"github.com/sekolahku/siakad/internal/app/models/dto"
	"github.com/sekolahku/siakad/internal/app/repositories"
	"github.com/sekolahku/siakad/internal/pkg/apperrors"
	"github.com/sekolahku/siakad/internal/pkg/filestorage"
	"github.com/sekolahku/siakad/internal/pkg/logger"
)

// IzinService handles teacher leave requests and their approval lifecycle.
type IzinService struct {
	izinRepo *repositories.IzinRepository
	guruRepo *repositories.GuruRepository
	storage  *filestorage.LocalStorage
}

// NewIzinService creates a new izin service instance
func NewIzinService(izinRepo *repositories.IzinRepository, guruRepo *repositories.GuruRepository, storage *filestorage.LocalStorage) *IzinService {
	return &IzinService{
		izinRepo: izinRepo,
		guruRepo: guruRepo,
		storage:  storage,
	}
}

// Submit files a leave request for the teacher owning the given account.
// The request starts in pending status. An optional attachment is stored
// and its relative path recorded.
func (s *IzinService) Submit(ctx context.Context, guruUserID int64, schema dto.LeaveRequestCreate, attachment io.Reader, attachmentName string) (*models.IzinGuru, error) {
	if err := schema.Validate(); err != nil {
		return nil, err
	}

	if schema.EndDate.Before(schema.StartDate) {
		return nil, fmt.Errorf("%w: end date precedes start date", apperrors.ErrValidationFailed)
	}

	guru, err := s.guruRepo.GetByUserID(ctx, guruUserID)
	if err != nil {
		return nil, err
	}

	var attachmentPath *string
	if attachment != nil {
		path, err := s.storage.Save(attachment, attachmentName, "izin")
		if err != nil {
			return nil, err
		}
		attachmentPath = &path
	}

	izin := &models.IzinGuru{
		GuruID:     guru.ID,
		LeaveType:  schema.LeaveType,
		StartDate:  schema.StartDate,
		EndDate:    schema.EndDate,
		Reason:     schema.Reason,
		Status:     models.LeavePending,
		Attachment: attachmentPath,
	}

	if err := s.izinRepo.Create(ctx, izin); err != nil {
		if attachmentPath != nil {
			_ = s.storage.Delete(*attachmentPath)
		}
		return nil, err
	}

	logger.Info().Int64("izin_id", izin.ID).Int64("guru_id", guru.ID).Str("leave_type", izin.LeaveType).Msg("Leave request submitted")
	return izin, nil
}

// Approve marks a leave request approved, recording who decided and when.
// No actor rules are enforced on the transition.
func (s *IzinService) Approve(ctx context.Context, id int64, approvedBy string) error {
	return s.izinRepo.Approve(ctx, id, approvedBy, time.Now())
}

// Reject marks a leave request rejected with a reason.
func (s *IzinService) Reject(ctx context.Context, id int64, rejectedBy, reason string) error {
	return s.izinRepo.Reject(ctx, id, rejectedBy, reason, time.Now())
}

// GetByID retrieves a leave request
func (s *IzinService) GetByID(ctx context.Context, id int64) (*models.IzinGuru, error) {
	return s.izinRepo.GetByID(ctx, id)
}

// GetByGuruID retrieves the leave requests of one teacher
func (s *IzinService) GetByGuruID(ctx context.Context, guruID int64) ([]*models.IzinGuru, error) {
	return s.izinRepo.GetByGuruID(ctx, guruID)
}

// GetPending retrieves the leave requests awaiting a decision
func (s *IzinService) GetPending(ctx context.Context) ([]*models.IzinGuru, error) {
	return s.izinRepo.GetByStatus(ctx, models.LeavePending)
}
