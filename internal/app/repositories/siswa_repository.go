package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/sekolahku/siakad/internal/app/models"
	"github.com/sekolahku/siakad/internal/pkg/apperrors"
	"github.com/sekolahku/siakad/internal/pkg/dberrors"
)

// SiswaRepository handles database operations for the siswa table
type SiswaRepository struct {
	db Querier
}

// NewSiswaRepository creates a new siswa repository
func NewSiswaRepository(db Querier) *SiswaRepository {
	return &SiswaRepository{
		db: db,
	}
}

// WithTx returns a copy of the repository that runs inside tx.
func (r *SiswaRepository) WithTx(tx pgx.Tx) *SiswaRepository {
	return &SiswaRepository{db: tx}
}

const siswaColumns = `id, user_id, nis, nisn, name, gender, phone, address, birth_date, birth_place, kelas_id, parent_name, parent_phone, enrollment_date, current_points, is_active, created_at, updated_at`

func scanSiswa(row pgx.Row) (*models.Siswa, error) {
	var siswa models.Siswa
	err := row.Scan(
		&siswa.ID,
		&siswa.UserID,
		&siswa.NIS,
		&siswa.NISN,
		&siswa.Name,
		&siswa.Gender,
		&siswa.Phone,
		&siswa.Address,
		&siswa.BirthDate,
		&siswa.BirthPlace,
		&siswa.KelasID,
		&siswa.ParentName,
		&siswa.ParentPhone,
		&siswa.EnrollmentDate,
		&siswa.CurrentPoints,
		&siswa.IsActive,
		&siswa.CreatedAt,
		&siswa.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSiswaNotFound
		}
		return nil, fmt.Errorf("error retrieving siswa: %w", err)
	}
	return &siswa, nil
}

func mapSiswaCreateError(err error) error {
	switch {
	case dberrors.IsDuplicateConstraintError(err, "uq_siswa_user_id"):
		return apperrors.ErrSiswaProfileExists
	case dberrors.IsDuplicateConstraintError(err, "uq_siswa_nis"):
		return apperrors.ErrNISAlreadyExists
	case dberrors.IsDuplicateConstraintError(err, "uq_siswa_nisn"):
		return apperrors.ErrNISNAlreadyExists
	case dberrors.IsForeignKeyViolation(err, "fk_siswa_user"):
		return apperrors.ErrUserNotFound
	case dberrors.IsForeignKeyViolation(err, "fk_siswa_kelas"):
		return apperrors.ErrKelasNotFound
	}
	return nil
}

// Create inserts a new siswa profile. user_id, nis and nisn carry unique
// constraints.
func (r *SiswaRepository) Create(ctx context.Context, siswa *models.Siswa) error {
	query := `
		INSERT INTO siswa (user_id, nis, nisn, name, gender, phone, address, birth_date, birth_place,
		                   kelas_id, parent_name, parent_phone, enrollment_date, current_points, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		siswa.UserID,
		siswa.NIS,
		siswa.NISN,
		siswa.Name,
		siswa.Gender,
		siswa.Phone,
		siswa.Address,
		siswa.BirthDate,
		siswa.BirthPlace,
		siswa.KelasID,
		siswa.ParentName,
		siswa.ParentPhone,
		siswa.EnrollmentDate,
		siswa.CurrentPoints,
		siswa.IsActive,
	).Scan(&siswa.ID, &siswa.CreatedAt, &siswa.UpdatedAt)
	if err != nil {
		if mapped := mapSiswaCreateError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("error creating siswa: %w", err)
	}

	return nil
}

// GetByID retrieves a siswa by ID
func (r *SiswaRepository) GetByID(ctx context.Context, id int64) (*models.Siswa, error) {
	query := `SELECT ` + siswaColumns + ` FROM siswa WHERE id = $1`
	return scanSiswa(r.db.QueryRow(ctx, query, id))
}

// GetByUserID retrieves the siswa profile linked to a user
func (r *SiswaRepository) GetByUserID(ctx context.Context, userID int64) (*models.Siswa, error) {
	query := `SELECT ` + siswaColumns + ` FROM siswa WHERE user_id = $1`
	return scanSiswa(r.db.QueryRow(ctx, query, userID))
}

// GetByNIS retrieves a siswa by school-issued student number
func (r *SiswaRepository) GetByNIS(ctx context.Context, nis string) (*models.Siswa, error) {
	query := `SELECT ` + siswaColumns + ` FROM siswa WHERE nis = $1`
	return scanSiswa(r.db.QueryRow(ctx, query, nis))
}

// GetByKelasID retrieves all siswa placed in a kelas
func (r *SiswaRepository) GetByKelasID(ctx context.Context, kelasID int64) ([]*models.Siswa, error) {
	query := `SELECT ` + siswaColumns + ` FROM siswa WHERE kelas_id = $1 ORDER BY name`
	return r.queryList(ctx, query, kelasID)
}

// GetAll retrieves all siswa rows
func (r *SiswaRepository) GetAll(ctx context.Context) ([]*models.Siswa, error) {
	query := `SELECT ` + siswaColumns + ` FROM siswa ORDER BY name`
	return r.queryList(ctx, query)
}

func (r *SiswaRepository) queryList(ctx context.Context, query string, args ...any) ([]*models.Siswa, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.Siswa
	for rows.Next() {
		var siswa models.Siswa
		if err := rows.Scan(
			&siswa.ID,
			&siswa.UserID,
			&siswa.NIS,
			&siswa.NISN,
			&siswa.Name,
			&siswa.Gender,
			&siswa.Phone,
			&siswa.Address,
			&siswa.BirthDate,
			&siswa.BirthPlace,
			&siswa.KelasID,
			&siswa.ParentName,
			&siswa.ParentPhone,
			&siswa.EnrollmentDate,
			&siswa.CurrentPoints,
			&siswa.IsActive,
			&siswa.CreatedAt,
			&siswa.UpdatedAt,
		); err != nil {
			return nil, err
		}
		list = append(list, &siswa)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

// Update rewrites the mutable siswa fields and refreshes updated_at.
// current_points is adjusted through AdjustPoints, not here.
func (r *SiswaRepository) Update(ctx context.Context, siswa *models.Siswa) error {
	query := `
		UPDATE siswa
		SET nis = $2, nisn = $3, name = $4, gender = $5, phone = $6, address = $7,
		    birth_date = $8, birth_place = $9, kelas_id = $10, parent_name = $11,
		    parent_phone = $12, enrollment_date = $13, is_active = $14,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		siswa.ID,
		siswa.NIS,
		siswa.NISN,
		siswa.Name,
		siswa.Gender,
		siswa.Phone,
		siswa.Address,
		siswa.BirthDate,
		siswa.BirthPlace,
		siswa.KelasID,
		siswa.ParentName,
		siswa.ParentPhone,
		siswa.EnrollmentDate,
		siswa.IsActive,
	)
	if err != nil {
		if mapped := mapSiswaCreateError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("error updating siswa: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrSiswaNotFound
	}

	return nil
}

// AdjustPoints adds delta (which may be negative) to the running point
// balance and returns the new balance.
func (r *SiswaRepository) AdjustPoints(ctx context.Context, id int64, delta decimal.Decimal) (decimal.Decimal, error) {
	query := `
		UPDATE siswa
		SET current_points = current_points + $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
		RETURNING current_points
	`

	var balance decimal.Decimal
	err := r.db.QueryRow(ctx, query, id, delta).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Decimal{}, apperrors.ErrSiswaNotFound
		}
		return decimal.Decimal{}, fmt.Errorf("error adjusting points: %w", err)
	}

	return balance, nil
}

// AssignKelas places a siswa in a kelas (or removes the placement with nil).
func (r *SiswaRepository) AssignKelas(ctx context.Context, id int64, kelasID *int64) error {
	query := `
		UPDATE siswa
		SET kelas_id = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query, id, kelasID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err, "fk_siswa_kelas") {
			return apperrors.ErrKelasNotFound
		}
		return fmt.Errorf("error assigning kelas: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrSiswaNotFound
	}

	return nil
}

// Deactivate soft-deletes a siswa by clearing is_active.
func (r *SiswaRepository) Deactivate(ctx context.Context, id int64) error {
	query := `
		UPDATE siswa
		SET is_active = FALSE, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deactivating siswa: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrSiswaNotFound
	}

	return nil
}
