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

// KelasRepository handles database operations for the kelas table
type KelasRepository struct {
	db Querier
}

// NewKelasRepository creates a new kelas repository
func NewKelasRepository(db Querier) *KelasRepository {
	return &KelasRepository{
		db: db,
	}
}

const kelasColumns = `id, name, grade_level, jurusan_id, wali_kelas_id, capacity, academic_year, is_active, created_at`

func scanKelas(row pgx.Row) (*models.Kelas, error) {
	var kelas models.Kelas
	err := row.Scan(
		&kelas.ID,
		&kelas.Name,
		&kelas.GradeLevel,
		&kelas.JurusanID,
		&kelas.WaliKelasID,
		&kelas.Capacity,
		&kelas.AcademicYear,
		&kelas.IsActive,
		&kelas.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrKelasNotFound
		}
		return nil, fmt.Errorf("error retrieving kelas: %w", err)
	}
	return &kelas, nil
}

// Create inserts a new kelas
func (r *KelasRepository) Create(ctx context.Context, kelas *models.Kelas) error {
	query := `
		INSERT INTO kelas (name, grade_level, jurusan_id, wali_kelas_id, capacity, academic_year, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		kelas.Name,
		kelas.GradeLevel,
		kelas.JurusanID,
		kelas.WaliKelasID,
		kelas.Capacity,
		kelas.AcademicYear,
		kelas.IsActive,
	).Scan(&kelas.ID, &kelas.CreatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err, "fk_kelas_jurusan") {
			return apperrors.ErrJurusanForKelasMissing
		}
		if dberrors.IsForeignKeyViolation(err, "fk_kelas_wali_kelas") {
			return apperrors.ErrGuruNotFound
		}
		return fmt.Errorf("error creating kelas: %w", err)
	}

	return nil
}

// GetByID retrieves a kelas by ID
func (r *KelasRepository) GetByID(ctx context.Context, id int64) (*models.Kelas, error) {
	query := `SELECT ` + kelasColumns + ` FROM kelas WHERE id = $1`
	return scanKelas(r.db.QueryRow(ctx, query, id))
}

// GetByIDWithJurusan retrieves a kelas and resolves its jurusan relation.
func (r *KelasRepository) GetByIDWithJurusan(ctx context.Context, id int64) (*models.Kelas, error) {
	query := `
		SELECT k.id, k.name, k.grade_level, k.jurusan_id, k.wali_kelas_id, k.capacity,
		       k.academic_year, k.is_active, k.created_at,
		       j.id, j.name, j.code, j.description, j.is_active, j.created_at
		FROM kelas k
		JOIN jurusan j ON j.id = k.jurusan_id
		WHERE k.id = $1
	`

	var kelas models.Kelas
	var jurusan models.Jurusan
	err := r.db.QueryRow(ctx, query, id).Scan(
		&kelas.ID,
		&kelas.Name,
		&kelas.GradeLevel,
		&kelas.JurusanID,
		&kelas.WaliKelasID,
		&kelas.Capacity,
		&kelas.AcademicYear,
		&kelas.IsActive,
		&kelas.CreatedAt,
		&jurusan.ID,
		&jurusan.Name,
		&jurusan.Code,
		&jurusan.Description,
		&jurusan.IsActive,
		&jurusan.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrKelasNotFound
		}
		return nil, fmt.Errorf("error retrieving kelas with jurusan: %w", err)
	}

	kelas.Jurusan = &jurusan
	return &kelas, nil
}

// GetByJurusanID retrieves all kelas belonging to a jurusan
func (r *KelasRepository) GetByJurusanID(ctx context.Context, jurusanID int64) ([]*models.Kelas, error) {
	query := `SELECT ` + kelasColumns + ` FROM kelas WHERE jurusan_id = $1 ORDER BY grade_level, name`
	return r.queryList(ctx, query, jurusanID)
}

// GetByWaliKelasID retrieves the kelas rows where the guru is homeroom teacher
func (r *KelasRepository) GetByWaliKelasID(ctx context.Context, guruID int64) ([]*models.Kelas, error) {
	query := `SELECT ` + kelasColumns + ` FROM kelas WHERE wali_kelas_id = $1 ORDER BY name`
	return r.queryList(ctx, query, guruID)
}

// GetAll retrieves all kelas rows
func (r *KelasRepository) GetAll(ctx context.Context) ([]*models.Kelas, error) {
	query := `SELECT ` + kelasColumns + ` FROM kelas ORDER BY grade_level, name`
	return r.queryList(ctx, query)
}

func (r *KelasRepository) queryList(ctx context.Context, query string, args ...any) ([]*models.Kelas, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.Kelas
	for rows.Next() {
		var kelas models.Kelas
		if err := rows.Scan(
			&kelas.ID,
			&kelas.Name,
			&kelas.GradeLevel,
			&kelas.JurusanID,
			&kelas.WaliKelasID,
			&kelas.Capacity,
			&kelas.AcademicYear,
			&kelas.IsActive,
			&kelas.CreatedAt,
		); err != nil {
			return nil, err
		}
		list = append(list, &kelas)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

// Update rewrites the mutable kelas fields
func (r *KelasRepository) Update(ctx context.Context, kelas *models.Kelas) error {
	query := `
		UPDATE kelas
		SET name = $2, grade_level = $3, jurusan_id = $4, wali_kelas_id = $5,
		    capacity = $6, academic_year = $7, is_active = $8
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		kelas.ID,
		kelas.Name,
		kelas.GradeLevel,
		kelas.JurusanID,
		kelas.WaliKelasID,
		kelas.Capacity,
		kelas.AcademicYear,
		kelas.IsActive,
	)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err, "fk_kelas_jurusan") {
			return apperrors.ErrJurusanForKelasMissing
		}
		if dberrors.IsForeignKeyViolation(err, "fk_kelas_wali_kelas") {
			return apperrors.ErrGuruNotFound
		}
		return fmt.Errorf("error updating kelas: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrKelasNotFound
	}

	return nil
}

// Deactivate soft-deletes a kelas by clearing is_active.
func (r *KelasRepository) Deactivate(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `UPDATE kelas SET is_active = FALSE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deactivating kelas: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrKelasNotFound
	}

	return nil
}
