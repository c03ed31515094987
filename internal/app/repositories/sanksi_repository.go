package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sekolahku/siakad/internal/app/models"
	"github.com/sekolahku/siakad/internal/pkg/apperrors"
	"github.com/sekolahku/siakad/internal/pkg/dberrors"
)

// SanksiRepository handles database operations for the manajemen_sanksi
// table. The violation_id unique constraint enforces at most one sanction
// per violation.
type SanksiRepository struct {
	db Querier
}

// NewSanksiRepository creates a new sanksi repository
func NewSanksiRepository(db Querier) *SanksiRepository {
	return &SanksiRepository{
		db: db,
	}
}

const sanksiColumns = `id, siswa_id, violation_id, initiated_by_id, sanction_type, sanction_description, status, start_date, end_date, notes, created_at, updated_at`

func scanSanksi(row pgx.Row) (*models.ManajemenSanksi, error) {
	var sanksi models.ManajemenSanksi
	err := row.Scan(
		&sanksi.ID,
		&sanksi.SiswaID,
		&sanksi.ViolationID,
		&sanksi.InitiatedByID,
		&sanksi.SanctionType,
		&sanksi.SanctionDescription,
		&sanksi.Status,
		&sanksi.StartDate,
		&sanksi.EndDate,
		&sanksi.Notes,
		&sanksi.CreatedAt,
		&sanksi.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSanctionNotFound
		}
		return nil, fmt.Errorf("error retrieving sanksi: %w", err)
	}
	return &sanksi, nil
}

// Create inserts a sanction. A second sanction for the same violation fails
// on the uq_manajemen_sanksi_violation constraint.
func (r *SanksiRepository) Create(ctx context.Context, sanksi *models.ManajemenSanksi) error {
	query := `
		INSERT INTO manajemen_sanksi (siswa_id, violation_id, initiated_by_id, sanction_type, sanction_description, status, start_date, end_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		sanksi.SiswaID,
		sanksi.ViolationID,
		sanksi.InitiatedByID,
		sanksi.SanctionType,
		sanksi.SanctionDescription,
		sanksi.Status,
		sanksi.StartDate,
		sanksi.EndDate,
		sanksi.Notes,
	).Scan(&sanksi.ID, &sanksi.CreatedAt, &sanksi.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "uq_manajemen_sanksi_violation") {
			return apperrors.ErrSanctionAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err, "fk_manajemen_sanksi_violation") {
			return apperrors.ErrSanctionViolationMissing
		}
		if dberrors.IsForeignKeyViolation(err, "fk_manajemen_sanksi_siswa") {
			return apperrors.ErrSiswaNotFound
		}
		if dberrors.IsForeignKeyViolation(err, "fk_manajemen_sanksi_guru") {
			return apperrors.ErrGuruNotFound
		}
		return fmt.Errorf("error creating sanksi: %w", err)
	}

	return nil
}

// GetByID retrieves a sanction by ID
func (r *SanksiRepository) GetByID(ctx context.Context, id int64) (*models.ManajemenSanksi, error) {
	query := `SELECT ` + sanksiColumns + ` FROM manajemen_sanksi WHERE id = $1`
	return scanSanksi(r.db.QueryRow(ctx, query, id))
}

// GetByViolationID retrieves the sanction attached to a violation, if any.
func (r *SanksiRepository) GetByViolationID(ctx context.Context, violationID int64) (*models.ManajemenSanksi, error) {
	query := `SELECT ` + sanksiColumns + ` FROM manajemen_sanksi WHERE violation_id = $1`
	return scanSanksi(r.db.QueryRow(ctx, query, violationID))
}

// GetBySiswaID retrieves the sanctions raised against one student
func (r *SanksiRepository) GetBySiswaID(ctx context.Context, siswaID int64) ([]*models.ManajemenSanksi, error) {
	query := `SELECT ` + sanksiColumns + ` FROM manajemen_sanksi WHERE siswa_id = $1 ORDER BY created_at DESC`
	return r.queryList(ctx, query, siswaID)
}

// GetByInitiatorID retrieves the sanctions initiated by one teacher
func (r *SanksiRepository) GetByInitiatorID(ctx context.Context, guruID int64) ([]*models.ManajemenSanksi, error) {
	query := `SELECT ` + sanksiColumns + ` FROM manajemen_sanksi WHERE initiated_by_id = $1 ORDER BY created_at DESC`
	return r.queryList(ctx, query, guruID)
}

func (r *SanksiRepository) queryList(ctx context.Context, query string, args ...any) ([]*models.ManajemenSanksi, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.ManajemenSanksi
	for rows.Next() {
		var sanksi models.ManajemenSanksi
		if err := rows.Scan(
			&sanksi.ID,
			&sanksi.SiswaID,
			&sanksi.ViolationID,
			&sanksi.InitiatedByID,
			&sanksi.SanctionType,
			&sanksi.SanctionDescription,
			&sanksi.Status,
			&sanksi.StartDate,
			&sanksi.EndDate,
			&sanksi.Notes,
			&sanksi.CreatedAt,
			&sanksi.UpdatedAt,
		); err != nil {
			return nil, err
		}
		list = append(list, &sanksi)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

// UpdateStatus moves the sanction to a new status and refreshes updated_at.
// Status transitions are free-form; no actor rules are enforced here.
func (r *SanksiRepository) UpdateStatus(ctx context.Context, id int64, status models.SanctionStatus, notes string) error {
	query := `
		UPDATE manajemen_sanksi
		SET status = $2, notes = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query, id, status, notes)
	if err != nil {
		return fmt.Errorf("error updating sanksi status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrSanctionNotFound
	}

	return nil
}

// Update rewrites the mutable sanction fields and refreshes updated_at.
func (r *SanksiRepository) Update(ctx context.Context, sanksi *models.ManajemenSanksi) error {
	query := `
		UPDATE manajemen_sanksi
		SET sanction_type = $2, sanction_description = $3, status = $4,
		    start_date = $5, end_date = $6, notes = $7, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		sanksi.ID,
		sanksi.SanctionType,
		sanksi.SanctionDescription,
		sanksi.Status,
		sanksi.StartDate,
		sanksi.EndDate,
		sanksi.Notes,
	)
	if err != nil {
		return fmt.Errorf("error updating sanksi: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrSanctionNotFound
	}

	return nil
}
