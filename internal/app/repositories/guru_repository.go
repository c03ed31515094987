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

// GuruRepository handles database operations for the guru table
type GuruRepository struct {
	db Querier
}

// NewGuruRepository creates a new guru repository
func NewGuruRepository(db Querier) *GuruRepository {
	return &GuruRepository{
		db: db,
	}
}

// WithTx returns a copy of the repository that runs inside tx.
func (r *GuruRepository) WithTx(tx pgx.Tx) *GuruRepository {
	return &GuruRepository{db: tx}
}

const guruColumns = `id, user_id, nip, name, gender, phone, address, birth_date, birth_place, education, position, hire_date, is_active, created_at, updated_at`

func scanGuru(row pgx.Row) (*models.Guru, error) {
	var guru models.Guru
	err := row.Scan(
		&guru.ID,
		&guru.UserID,
		&guru.NIP,
		&guru.Name,
		&guru.Gender,
		&guru.Phone,
		&guru.Address,
		&guru.BirthDate,
		&guru.BirthPlace,
		&guru.Education,
		&guru.Position,
		&guru.HireDate,
		&guru.IsActive,
		&guru.CreatedAt,
		&guru.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrGuruNotFound
		}
		return nil, fmt.Errorf("error retrieving guru: %w", err)
	}
	return &guru, nil
}

// Create inserts a new guru profile. user_id and nip carry unique
// constraints: a user may own at most one guru profile.
func (r *GuruRepository) Create(ctx context.Context, guru *models.Guru) error {
	query := `
		INSERT INTO guru (user_id, nip, name, gender, phone, address, birth_date, birth_place, education, position, hire_date, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		guru.UserID,
		guru.NIP,
		guru.Name,
		guru.Gender,
		guru.Phone,
		guru.Address,
		guru.BirthDate,
		guru.BirthPlace,
		guru.Education,
		guru.Position,
		guru.HireDate,
		guru.IsActive,
	).Scan(&guru.ID, &guru.CreatedAt, &guru.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "uq_guru_user_id") {
			return apperrors.ErrGuruProfileExists
		}
		if dberrors.IsDuplicateConstraintError(err, "uq_guru_nip") {
			return apperrors.ErrNIPAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err, "fk_guru_user") {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("error creating guru: %w", err)
	}

	return nil
}

// GetByID retrieves a guru by ID
func (r *GuruRepository) GetByID(ctx context.Context, id int64) (*models.Guru, error) {
	query := `SELECT ` + guruColumns + ` FROM guru WHERE id = $1`
	return scanGuru(r.db.QueryRow(ctx, query, id))
}

// GetByUserID retrieves the guru profile linked to a user
func (r *GuruRepository) GetByUserID(ctx context.Context, userID int64) (*models.Guru, error) {
	query := `SELECT ` + guruColumns + ` FROM guru WHERE user_id = $1`
	return scanGuru(r.db.QueryRow(ctx, query, userID))
}

// GetByNIP retrieves a guru by employee number
func (r *GuruRepository) GetByNIP(ctx context.Context, nip string) (*models.Guru, error) {
	query := `SELECT ` + guruColumns + ` FROM guru WHERE nip = $1`
	return scanGuru(r.db.QueryRow(ctx, query, nip))
}

// GetAll retrieves all guru rows
func (r *GuruRepository) GetAll(ctx context.Context) ([]*models.Guru, error) {
	query := `SELECT ` + guruColumns + ` FROM guru ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.Guru
	for rows.Next() {
		var guru models.Guru
		if err := rows.Scan(
			&guru.ID,
			&guru.UserID,
			&guru.NIP,
			&guru.Name,
			&guru.Gender,
			&guru.Phone,
			&guru.Address,
			&guru.BirthDate,
			&guru.BirthPlace,
			&guru.Education,
			&guru.Position,
			&guru.HireDate,
			&guru.IsActive,
			&guru.CreatedAt,
			&guru.UpdatedAt,
		); err != nil {
			return nil, err
		}
		list = append(list, &guru)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

// Update rewrites the mutable guru fields and refreshes updated_at.
func (r *GuruRepository) Update(ctx context.Context, guru *models.Guru) error {
	query := `
		UPDATE guru
		SET nip = $2, name = $3, gender = $4, phone = $5, address = $6,
		    birth_date = $7, birth_place = $8, education = $9, position = $10,
		    hire_date = $11, is_active = $12, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		guru.ID,
		guru.NIP,
		guru.Name,
		guru.Gender,
		guru.Phone,
		guru.Address,
		guru.BirthDate,
		guru.BirthPlace,
		guru.Education,
		guru.Position,
		guru.HireDate,
		guru.IsActive,
	)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "uq_guru_nip") {
			return apperrors.ErrNIPAlreadyExists
		}
		return fmt.Errorf("error updating guru: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrGuruNotFound
	}

	return nil
}

// Deactivate soft-deletes a guru by clearing is_active.
func (r *GuruRepository) Deactivate(ctx context.Context, id int64) error {
	query := `
		UPDATE guru
		SET is_active = FALSE, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deactivating guru: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrGuruNotFound
	}

	return nil
}
