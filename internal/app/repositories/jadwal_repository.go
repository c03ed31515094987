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

// JadwalRepository handles database operations for the jadwal_mengajar table
type JadwalRepository struct {
	db Querier
}

// NewJadwalRepository creates a new jadwal repository
func NewJadwalRepository(db Querier) *JadwalRepository {
	return &JadwalRepository{
		db: db,
	}
}

const jadwalColumns = `id, guru_id, kelas_id, subject, day_of_week, start_time, end_time, academic_year, semester, cluster, is_active, created_at`

func scanJadwal(row pgx.Row) (*models.JadwalMengajar, error) {
	var jadwal models.JadwalMengajar
	err := row.Scan(
		&jadwal.ID,
		&jadwal.GuruID,
		&jadwal.KelasID,
		&jadwal.Subject,
		&jadwal.DayOfWeek,
		&jadwal.StartTime,
		&jadwal.EndTime,
		&jadwal.AcademicYear,
		&jadwal.Semester,
		&jadwal.Cluster,
		&jadwal.IsActive,
		&jadwal.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrJadwalNotFound
		}
		return nil, fmt.Errorf("error retrieving jadwal: %w", err)
	}
	return &jadwal, nil
}

// Create inserts a teaching schedule slot
func (r *JadwalRepository) Create(ctx context.Context, jadwal *models.JadwalMengajar) error {
	query := `
		INSERT INTO jadwal_mengajar (guru_id, kelas_id, subject, day_of_week, start_time, end_time, academic_year, semester, cluster, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		jadwal.GuruID,
		jadwal.KelasID,
		jadwal.Subject,
		jadwal.DayOfWeek,
		jadwal.StartTime,
		jadwal.EndTime,
		jadwal.AcademicYear,
		jadwal.Semester,
		jadwal.Cluster,
		jadwal.IsActive,
	).Scan(&jadwal.ID, &jadwal.CreatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err, "fk_jadwal_mengajar_guru") {
			return apperrors.ErrGuruNotFound
		}
		if dberrors.IsForeignKeyViolation(err, "fk_jadwal_mengajar_kelas") {
			return apperrors.ErrKelasNotFound
		}
		return fmt.Errorf("error creating jadwal: %w", err)
	}

	return nil
}

// GetByID retrieves a schedule slot by ID
func (r *JadwalRepository) GetByID(ctx context.Context, id int64) (*models.JadwalMengajar, error) {
	query := `SELECT ` + jadwalColumns + ` FROM jadwal_mengajar WHERE id = $1`
	return scanJadwal(r.db.QueryRow(ctx, query, id))
}

// GetByGuruID retrieves the teaching schedule of one guru
func (r *JadwalRepository) GetByGuruID(ctx context.Context, guruID int64) ([]*models.JadwalMengajar, error) {
	query := `SELECT ` + jadwalColumns + ` FROM jadwal_mengajar WHERE guru_id = $1 ORDER BY day_of_week, start_time`
	return r.queryList(ctx, query, guruID)
}

// GetByKelasID retrieves the schedule of one kelas
func (r *JadwalRepository) GetByKelasID(ctx context.Context, kelasID int64) ([]*models.JadwalMengajar, error) {
	query := `SELECT ` + jadwalColumns + ` FROM jadwal_mengajar WHERE kelas_id = $1 ORDER BY day_of_week, start_time`
	return r.queryList(ctx, query, kelasID)
}

func (r *JadwalRepository) queryList(ctx context.Context, query string, args ...any) ([]*models.JadwalMengajar, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.JadwalMengajar
	for rows.Next() {
		var jadwal models.JadwalMengajar
		if err := rows.Scan(
			&jadwal.ID,
			&jadwal.GuruID,
			&jadwal.KelasID,
			&jadwal.Subject,
			&jadwal.DayOfWeek,
			&jadwal.StartTime,
			&jadwal.EndTime,
			&jadwal.AcademicYear,
			&jadwal.Semester,
			&jadwal.Cluster,
			&jadwal.IsActive,
			&jadwal.CreatedAt,
		); err != nil {
			return nil, err
		}
		list = append(list, &jadwal)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

// Update rewrites the mutable schedule fields
func (r *JadwalRepository) Update(ctx context.Context, jadwal *models.JadwalMengajar) error {
	query := `
		UPDATE jadwal_mengajar
		SET guru_id = $2, kelas_id = $3, subject = $4, day_of_week = $5,
		    start_time = $6, end_time = $7, academic_year = $8, semester = $9,
		    cluster = $10, is_active = $11
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		jadwal.ID,
		jadwal.GuruID,
		jadwal.KelasID,
		jadwal.Subject,
		jadwal.DayOfWeek,
		jadwal.StartTime,
		jadwal.EndTime,
		jadwal.AcademicYear,
		jadwal.Semester,
		jadwal.Cluster,
		jadwal.IsActive,
	)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err, "fk_jadwal_mengajar_guru") {
			return apperrors.ErrGuruNotFound
		}
		if dberrors.IsForeignKeyViolation(err, "fk_jadwal_mengajar_kelas") {
			return apperrors.ErrKelasNotFound
		}
		return fmt.Errorf("error updating jadwal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrJadwalNotFound
	}

	return nil
}

// Deactivate soft-deletes a schedule slot by clearing is_active.
func (r *JadwalRepository) Deactivate(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `UPDATE jadwal_mengajar SET is_active = FALSE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deactivating jadwal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrJadwalNotFound
	}

	return nil
}
