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

// JurusanRepository handles database operations for the jurusan table
type JurusanRepository struct {
	db Querier
}

// NewJurusanRepository creates a new jurusan repository
func NewJurusanRepository(db Querier) *JurusanRepository {
	return &JurusanRepository{
		db: db,
	}
}

// Create inserts a new jurusan. The code carries a unique constraint.
func (r *JurusanRepository) Create(ctx context.Context, jurusan *models.Jurusan) error {
	query := `
		INSERT INTO jurusan (name, code, description, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		jurusan.Name,
		jurusan.Code,
		jurusan.Description,
		jurusan.IsActive,
	).Scan(&jurusan.ID, &jurusan.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "uq_jurusan_code") {
			return apperrors.ErrJurusanCodeExists
		}
		return fmt.Errorf("error creating jurusan: %w", err)
	}

	return nil
}

// GetByID retrieves a jurusan by ID
func (r *JurusanRepository) GetByID(ctx context.Context, id int64) (*models.Jurusan, error) {
	query := `
		SELECT id, name, code, description, is_active, created_at
		FROM jurusan
		WHERE id = $1
	`

	var jurusan models.Jurusan
	err := r.db.QueryRow(ctx, query, id).Scan(
		&jurusan.ID,
		&jurusan.Name,
		&jurusan.Code,
		&jurusan.Description,
		&jurusan.IsActive,
		&jurusan.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrJurusanNotFound
		}
		return nil, fmt.Errorf("error retrieving jurusan: %w", err)
	}

	return &jurusan, nil
}

// GetByCode retrieves a jurusan by its unique code
func (r *JurusanRepository) GetByCode(ctx context.Context, code string) (*models.Jurusan, error) {
	query := `
		SELECT id, name, code, description, is_active, created_at
		FROM jurusan
		WHERE code = $1
	`

	var jurusan models.Jurusan
	err := r.db.QueryRow(ctx, query, code).Scan(
		&jurusan.ID,
		&jurusan.Name,
		&jurusan.Code,
		&jurusan.Description,
		&jurusan.IsActive,
		&jurusan.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrJurusanNotFound
		}
		return nil, fmt.Errorf("error retrieving jurusan by code: %w", err)
	}

	return &jurusan, nil
}

// GetAll retrieves all jurusan rows
func (r *JurusanRepository) GetAll(ctx context.Context) ([]*models.Jurusan, error) {
	query := `
		SELECT id, name, code, description, is_active, created_at
		FROM jurusan
		ORDER BY code
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.Jurusan
	for rows.Next() {
		var jurusan models.Jurusan
		if err := rows.Scan(
			&jurusan.ID,
			&jurusan.Name,
			&jurusan.Code,
			&jurusan.Description,
			&jurusan.IsActive,
			&jurusan.CreatedAt,
		); err != nil {
			return nil, err
		}
		list = append(list, &jurusan)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

// Update rewrites the mutable jurusan fields
func (r *JurusanRepository) Update(ctx context.Context, jurusan *models.Jurusan) error {
	query := `
		UPDATE jurusan
		SET name = $2, code = $3, description = $4, is_active = $5
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		jurusan.ID,
		jurusan.Name,
		jurusan.Code,
		jurusan.Description,
		jurusan.IsActive,
	)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "uq_jurusan_code") {
			return apperrors.ErrJurusanCodeExists
		}
		return fmt.Errorf("error updating jurusan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrJurusanNotFound
	}

	return nil
}

// Deactivate soft-deletes a jurusan by clearing is_active.
func (r *JurusanRepository) Deactivate(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `UPDATE jurusan SET is_active = FALSE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deactivating jurusan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrJurusanNotFound
	}

	return nil
}
