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

// KepalaSekolahRepository handles database operations for the kepala_sekolah
// table.
type KepalaSekolahRepository struct {
	db Querier
}

// NewKepalaSekolahRepository creates a new kepala sekolah repository
func NewKepalaSekolahRepository(db Querier) *KepalaSekolahRepository {
	return &KepalaSekolahRepository{
		db: db,
	}
}

const kepalaSekolahColumns = `id, nip, name, gender, phone, address, birth_date, birth_place, education, start_date, end_date, is_active, created_at`

func scanKepalaSekolah(row pgx.Row) (*models.KepalaSekolah, error) {
	var ks models.KepalaSekolah
	err := row.Scan(
		&ks.ID,
		&ks.NIP,
		&ks.Name,
		&ks.Gender,
		&ks.Phone,
		&ks.Address,
		&ks.BirthDate,
		&ks.BirthPlace,
		&ks.Education,
		&ks.StartDate,
		&ks.EndDate,
		&ks.IsActive,
		&ks.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrKepalaSekolahNotFound
		}
		return nil, fmt.Errorf("error retrieving kepala sekolah: %w", err)
	}
	return &ks, nil
}

// Create inserts a new kepala sekolah record
func (r *KepalaSekolahRepository) Create(ctx context.Context, ks *models.KepalaSekolah) error {
	query := `
		INSERT INTO kepala_sekolah (nip, name, gender, phone, address, birth_date, birth_place, education, start_date, end_date, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		ks.NIP,
		ks.Name,
		ks.Gender,
		ks.Phone,
		ks.Address,
		ks.BirthDate,
		ks.BirthPlace,
		ks.Education,
		ks.StartDate,
		ks.EndDate,
		ks.IsActive,
	).Scan(&ks.ID, &ks.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "uq_kepala_sekolah_nip") {
			return apperrors.ErrNIPAlreadyExists
		}
		return fmt.Errorf("error creating kepala sekolah: %w", err)
	}

	return nil
}

// GetByID retrieves a kepala sekolah by ID
func (r *KepalaSekolahRepository) GetByID(ctx context.Context, id int64) (*models.KepalaSekolah, error) {
	query := `SELECT ` + kepalaSekolahColumns + ` FROM kepala_sekolah WHERE id = $1`
	return scanKepalaSekolah(r.db.QueryRow(ctx, query, id))
}

// GetCurrent retrieves the active kepala sekolah with an open tenure, if any.
func (r *KepalaSekolahRepository) GetCurrent(ctx context.Context) (*models.KepalaSekolah, error) {
	query := `
		SELECT ` + kepalaSekolahColumns + `
		FROM kepala_sekolah
		WHERE is_active = TRUE AND end_date IS NULL
		ORDER BY start_date DESC
		LIMIT 1
	`
	return scanKepalaSekolah(r.db.QueryRow(ctx, query))
}

// GetAll retrieves all kepala sekolah records ordered by tenure start
func (r *KepalaSekolahRepository) GetAll(ctx context.Context) ([]*models.KepalaSekolah, error) {
	query := `SELECT ` + kepalaSekolahColumns + ` FROM kepala_sekolah ORDER BY start_date DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.KepalaSekolah
	for rows.Next() {
		var ks models.KepalaSekolah
		if err := rows.Scan(
			&ks.ID,
			&ks.NIP,
			&ks.Name,
			&ks.Gender,
			&ks.Phone,
			&ks.Address,
			&ks.BirthDate,
			&ks.BirthPlace,
			&ks.Education,
			&ks.StartDate,
			&ks.EndDate,
			&ks.IsActive,
			&ks.CreatedAt,
		); err != nil {
			return nil, err
		}
		list = append(list, &ks)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

// Update rewrites the mutable kepala sekolah fields
func (r *KepalaSekolahRepository) Update(ctx context.Context, ks *models.KepalaSekolah) error {
	query := `
		UPDATE kepala_sekolah
		SET nip = $2, name = $3, gender = $4, phone = $5, address = $6,
		    birth_date = $7, birth_place = $8, education = $9,
		    start_date = $10, end_date = $11, is_active = $12
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		ks.ID,
		ks.NIP,
		ks.Name,
		ks.Gender,
		ks.Phone,
		ks.Address,
		ks.BirthDate,
		ks.BirthPlace,
		ks.Education,
		ks.StartDate,
		ks.EndDate,
		ks.IsActive,
	)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "uq_kepala_sekolah_nip") {
			return apperrors.ErrNIPAlreadyExists
		}
		return fmt.Errorf("error updating kepala sekolah: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrKepalaSekolahNotFound
	}

	return nil
}
