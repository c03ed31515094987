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

// PrestasiRepository handles database operations for the jenis_prestasi
// catalog and the input_prestasi records.
type PrestasiRepository struct {
	db Querier
}

// NewPrestasiRepository creates a new prestasi repository
func NewPrestasiRepository(db Querier) *PrestasiRepository {
	return &PrestasiRepository{
		db: db,
	}
}

// WithTx returns a copy of the repository that runs inside tx.
func (r *PrestasiRepository) WithTx(tx pgx.Tx) *PrestasiRepository {
	return &PrestasiRepository{db: tx}
}

// CreateJenis inserts an achievement catalog entry
func (r *PrestasiRepository) CreateJenis(ctx context.Context, jenis *models.JenisPrestasi) error {
	query := `
		INSERT INTO jenis_prestasi (name, description, points, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		jenis.Name,
		jenis.Description,
		jenis.Points,
		jenis.IsActive,
	).Scan(&jenis.ID, &jenis.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating jenis prestasi: %w", err)
	}

	return nil
}

// GetJenisByID retrieves an achievement catalog entry by ID
func (r *PrestasiRepository) GetJenisByID(ctx context.Context, id int64) (*models.JenisPrestasi, error) {
	query := `
		SELECT id, name, description, points, is_active, created_at
		FROM jenis_prestasi
		WHERE id = $1
	`

	var jenis models.JenisPrestasi
	err := r.db.QueryRow(ctx, query, id).Scan(
		&jenis.ID,
		&jenis.Name,
		&jenis.Description,
		&jenis.Points,
		&jenis.IsActive,
		&jenis.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrJenisPrestasiNotFound
		}
		return nil, fmt.Errorf("error retrieving jenis prestasi: %w", err)
	}

	return &jenis, nil
}

// GetJenisByName retrieves an achievement catalog entry by name.
func (r *PrestasiRepository) GetJenisByName(ctx context.Context, name string) (*models.JenisPrestasi, error) {
	query := `
		SELECT id, name, description, points, is_active, created_at
		FROM jenis_prestasi
		WHERE name = $1
	`

	var jenis models.JenisPrestasi
	err := r.db.QueryRow(ctx, query, name).Scan(
		&jenis.ID,
		&jenis.Name,
		&jenis.Description,
		&jenis.Points,
		&jenis.IsActive,
		&jenis.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrJenisPrestasiNotFound
		}
		return nil, fmt.Errorf("error retrieving jenis prestasi by name: %w", err)
	}

	return &jenis, nil
}

// GetAllJenis retrieves the achievement catalog
func (r *PrestasiRepository) GetAllJenis(ctx context.Context) ([]*models.JenisPrestasi, error) {
	query := `
		SELECT id, name, description, points, is_active, created_at
		FROM jenis_prestasi
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.JenisPrestasi
	for rows.Next() {
		var jenis models.JenisPrestasi
		if err := rows.Scan(
			&jenis.ID,
			&jenis.Name,
			&jenis.Description,
			&jenis.Points,
			&jenis.IsActive,
			&jenis.CreatedAt,
		); err != nil {
			return nil, err
		}
		list = append(list, &jenis)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

// CreateRecord inserts a recorded achievement
func (r *PrestasiRepository) CreateRecord(ctx context.Context, record *models.InputPrestasi) error {
	query := `
		INSERT INTO input_prestasi (siswa_id, jenis_prestasi_id, achievement_date, description, evidence, verified, points_awarded)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		record.SiswaID,
		record.JenisPrestasiID,
		record.AchievementDate,
		record.Description,
		record.Evidence,
		record.Verified,
		record.PointsAwarded,
	).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err, "fk_input_prestasi_siswa") {
			return apperrors.ErrSiswaNotFound
		}
		if dberrors.IsForeignKeyViolation(err, "fk_input_prestasi_jenis") {
			return apperrors.ErrJenisPrestasiNotFound
		}
		return fmt.Errorf("error creating input prestasi: %w", err)
	}

	return nil
}

const prestasiRecordColumns = `id, siswa_id, jenis_prestasi_id, achievement_date, description, evidence, verified, points_awarded, created_at`

// GetRecordByID retrieves a recorded achievement by ID
func (r *PrestasiRepository) GetRecordByID(ctx context.Context, id int64) (*models.InputPrestasi, error) {
	query := `SELECT ` + prestasiRecordColumns + ` FROM input_prestasi WHERE id = $1`

	var record models.InputPrestasi
	err := r.db.QueryRow(ctx, query, id).Scan(
		&record.ID,
		&record.SiswaID,
		&record.JenisPrestasiID,
		&record.AchievementDate,
		&record.Description,
		&record.Evidence,
		&record.Verified,
		&record.PointsAwarded,
		&record.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPrestasiNotFound
		}
		return nil, fmt.Errorf("error retrieving input prestasi: %w", err)
	}

	return &record, nil
}

// GetRecordsBySiswaID retrieves the achievements of one student
func (r *PrestasiRepository) GetRecordsBySiswaID(ctx context.Context, siswaID int64) ([]*models.InputPrestasi, error) {
	query := `SELECT ` + prestasiRecordColumns + ` FROM input_prestasi WHERE siswa_id = $1 ORDER BY achievement_date DESC`

	rows, err := r.db.Query(ctx, query, siswaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.InputPrestasi
	for rows.Next() {
		var record models.InputPrestasi
		if err := rows.Scan(
			&record.ID,
			&record.SiswaID,
			&record.JenisPrestasiID,
			&record.AchievementDate,
			&record.Description,
			&record.Evidence,
			&record.Verified,
			&record.PointsAwarded,
			&record.CreatedAt,
		); err != nil {
			return nil, err
		}
		list = append(list, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

// SetVerified flips the verification flag on a recorded achievement.
func (r *PrestasiRepository) SetVerified(ctx context.Context, id int64, verified bool) error {
	tag, err := r.db.Exec(ctx, `UPDATE input_prestasi SET verified = $2 WHERE id = $1`, id, verified)
	if err != nil {
		return fmt.Errorf("error updating verification flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrPrestasiNotFound
	}

	return nil
}
