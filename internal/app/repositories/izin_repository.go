package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/sekolahku/siakad/internal/app/models"
	"github.com/sekolahku/siakad/internal/pkg/apperrors"
	"github.com/sekolahku/siakad/internal/pkg/dberrors"
)

// IzinRepository handles database operations for the izin_guru table
type IzinRepository struct {
	db Querier
}

// NewIzinRepository creates a new izin repository
func NewIzinRepository(db Querier) *IzinRepository {
	return &IzinRepository{
		db: db,
	}
}

const izinColumns = `id, guru_id, leave_type, start_date, end_date, reason, status, approved_by, approval_date, rejection_reason, attachment, created_at, updated_at`

func scanIzin(row pgx.Row) (*models.IzinGuru, error) {
	var izin models.IzinGuru
	err := row.Scan(
		&izin.ID,
		&izin.GuruID,
		&izin.LeaveType,
		&izin.StartDate,
		&izin.EndDate,
		&izin.Reason,
		&izin.Status,
		&izin.ApprovedBy,
		&izin.ApprovalDate,
		&izin.RejectionReason,
		&izin.Attachment,
		&izin.CreatedAt,
		&izin.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrIzinNotFound
		}
		return nil, fmt.Errorf("error retrieving izin: %w", err)
	}
	return &izin, nil
}

// Create inserts a leave request
func (r *IzinRepository) Create(ctx context.Context, izin *models.IzinGuru) error {
	query := `
		INSERT INTO izin_guru (guru_id, leave_type, start_date, end_date, reason, status, attachment)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		izin.GuruID,
		izin.LeaveType,
		izin.StartDate,
		izin.EndDate,
		izin.Reason,
		izin.Status,
		izin.Attachment,
	).Scan(&izin.ID, &izin.CreatedAt, &izin.UpdatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err, "fk_izin_guru_guru") {
			return apperrors.ErrGuruNotFound
		}
		return fmt.Errorf("error creating izin: %w", err)
	}

	return nil
}

// GetByID retrieves a leave request by ID
func (r *IzinRepository) GetByID(ctx context.Context, id int64) (*models.IzinGuru, error) {
	query := `SELECT ` + izinColumns + ` FROM izin_guru WHERE id = $1`
	return scanIzin(r.db.QueryRow(ctx, query, id))
}

// GetByGuruID retrieves the leave requests of one guru
func (r *IzinRepository) GetByGuruID(ctx context.Context, guruID int64) ([]*models.IzinGuru, error) {
	query := `SELECT ` + izinColumns + ` FROM izin_guru WHERE guru_id = $1 ORDER BY created_at DESC`
	return r.queryList(ctx, query, guruID)
}

// GetByStatus retrieves leave requests filtered by status
func (r *IzinRepository) GetByStatus(ctx context.Context, status models.LeaveStatus) ([]*models.IzinGuru, error) {
	query := `SELECT ` + izinColumns + ` FROM izin_guru WHERE status = $1 ORDER BY created_at DESC`
	return r.queryList(ctx, query, status)
}

func (r *IzinRepository) queryList(ctx context.Context, query string, args ...any) ([]*models.IzinGuru, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.IzinGuru
	for rows.Next() {
		var izin models.IzinGuru
		if err := rows.Scan(
			&izin.ID,
			&izin.GuruID,
			&izin.LeaveType,
			&izin.StartDate,
			&izin.EndDate,
			&izin.Reason,
			&izin.Status,
			&izin.ApprovedBy,
			&izin.ApprovalDate,
			&izin.RejectionReason,
			&izin.Attachment,
			&izin.CreatedAt,
			&izin.UpdatedAt,
		); err != nil {
			return nil, err
		}
		list = append(list, &izin)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

// Approve marks the request approved and records the approver and date.
func (r *IzinRepository) Approve(ctx context.Context, id int64, approvedBy string, approvalDate time.Time) error {
	query := `
		UPDATE izin_guru
		SET status = $2, approved_by = $3, approval_date = $4,
		    rejection_reason = NULL, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query, id, models.LeaveApproved, approvedBy, approvalDate)
	if err != nil {
		return fmt.Errorf("error approving izin: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrIzinNotFound
	}

	return nil
}

// Reject marks the request rejected with a reason.
func (r *IzinRepository) Reject(ctx context.Context, id int64, rejectedBy, reason string, decisionDate time.Time) error {
	query := `
		UPDATE izin_guru
		SET status = $2, approved_by = $3, approval_date = $4,
		    rejection_reason = $5, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query, id, models.LeaveRejected, rejectedBy, decisionDate, reason)
	if err != nil {
		return fmt.Errorf("error rejecting izin: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrIzinNotFound
	}

	return nil
}
