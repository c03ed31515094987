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

// AttendanceGuruRepository handles database operations for the
// attendance_guru table. The (guru_id, date) pair is unique.
type AttendanceGuruRepository struct {
	db Querier
}

// NewAttendanceGuruRepository creates a new teacher attendance repository
func NewAttendanceGuruRepository(db Querier) *AttendanceGuruRepository {
	return &AttendanceGuruRepository{
		db: db,
	}
}

const attendanceGuruColumns = `id, guru_id, date, status, check_in, check_out, location_lat, location_lng, notes, created_at`

func scanAttendanceGuru(row pgx.Row) (*models.AttendanceGuru, error) {
	var att models.AttendanceGuru
	err := row.Scan(
		&att.ID,
		&att.GuruID,
		&att.Date,
		&att.Status,
		&att.CheckIn,
		&att.CheckOut,
		&att.LocationLat,
		&att.LocationLng,
		&att.Notes,
		&att.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAttendanceNotFound
		}
		return nil, fmt.Errorf("error retrieving attendance guru: %w", err)
	}
	return &att, nil
}

// Create inserts a teacher attendance record for one date
func (r *AttendanceGuruRepository) Create(ctx context.Context, att *models.AttendanceGuru) error {
	query := `
		INSERT INTO attendance_guru (guru_id, date, status, check_in, check_out, location_lat, location_lng, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		att.GuruID,
		att.Date,
		att.Status,
		att.CheckIn,
		att.CheckOut,
		att.LocationLat,
		att.LocationLng,
		att.Notes,
	).Scan(&att.ID, &att.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "uq_attendance_guru_guru_date") {
			return apperrors.ErrAttendanceAlreadyMarked
		}
		if dberrors.IsForeignKeyViolation(err, "fk_attendance_guru_guru") {
			return apperrors.ErrGuruNotFound
		}
		return fmt.Errorf("error creating attendance guru: %w", err)
	}

	return nil
}

// GetByGuruAndDate retrieves the attendance row for one guru and date
func (r *AttendanceGuruRepository) GetByGuruAndDate(ctx context.Context, guruID int64, date time.Time) (*models.AttendanceGuru, error) {
	query := `SELECT ` + attendanceGuruColumns + ` FROM attendance_guru WHERE guru_id = $1 AND date = $2`
	return scanAttendanceGuru(r.db.QueryRow(ctx, query, guruID, date))
}

// GetByGuruID retrieves attendance rows for one guru over a date range
func (r *AttendanceGuruRepository) GetByGuruID(ctx context.Context, guruID int64, from, to time.Time) ([]*models.AttendanceGuru, error) {
	query := `SELECT ` + attendanceGuruColumns + ` FROM attendance_guru WHERE guru_id = $1 AND date BETWEEN $2 AND $3 ORDER BY date`

	rows, err := r.db.Query(ctx, query, guruID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.AttendanceGuru
	for rows.Next() {
		var att models.AttendanceGuru
		if err := rows.Scan(
			&att.ID,
			&att.GuruID,
			&att.Date,
			&att.Status,
			&att.CheckIn,
			&att.CheckOut,
			&att.LocationLat,
			&att.LocationLng,
			&att.Notes,
			&att.CreatedAt,
		); err != nil {
			return nil, err
		}
		list = append(list, &att)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

// SetCheckOut records the check-out timestamp on an existing attendance row.
func (r *AttendanceGuruRepository) SetCheckOut(ctx context.Context, id int64, checkOut time.Time) error {
	tag, err := r.db.Exec(ctx, `UPDATE attendance_guru SET check_out = $2 WHERE id = $1`, id, checkOut)
	if err != nil {
		return fmt.Errorf("error recording check-out: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAttendanceNotFound
	}

	return nil
}

// AttendanceSiswaRepository handles database operations for the
// attendance_siswa table. The (siswa_id, date) pair is unique.
type AttendanceSiswaRepository struct {
	db Querier
}

// NewAttendanceSiswaRepository creates a new student attendance repository
func NewAttendanceSiswaRepository(db Querier) *AttendanceSiswaRepository {
	return &AttendanceSiswaRepository{
		db: db,
	}
}

const attendanceSiswaColumns = `id, siswa_id, date, status, notes, recorded_by, created_at`

// Create inserts a student attendance record for one date
func (r *AttendanceSiswaRepository) Create(ctx context.Context, att *models.AttendanceSiswa) error {
	query := `
		INSERT INTO attendance_siswa (siswa_id, date, status, notes, recorded_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		att.SiswaID,
		att.Date,
		att.Status,
		att.Notes,
		att.RecordedBy,
	).Scan(&att.ID, &att.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "uq_attendance_siswa_siswa_date") {
			return apperrors.ErrAttendanceAlreadyMarked
		}
		if dberrors.IsForeignKeyViolation(err, "fk_attendance_siswa_siswa") {
			return apperrors.ErrSiswaNotFound
		}
		return fmt.Errorf("error creating attendance siswa: %w", err)
	}

	return nil
}

// GetBySiswaAndDate retrieves the attendance row for one siswa and date
func (r *AttendanceSiswaRepository) GetBySiswaAndDate(ctx context.Context, siswaID int64, date time.Time) (*models.AttendanceSiswa, error) {
	query := `SELECT ` + attendanceSiswaColumns + ` FROM attendance_siswa WHERE siswa_id = $1 AND date = $2`

	var att models.AttendanceSiswa
	err := r.db.QueryRow(ctx, query, siswaID, date).Scan(
		&att.ID,
		&att.SiswaID,
		&att.Date,
		&att.Status,
		&att.Notes,
		&att.RecordedBy,
		&att.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAttendanceNotFound
		}
		return nil, fmt.Errorf("error retrieving attendance siswa: %w", err)
	}

	return &att, nil
}

// GetBySiswaID retrieves attendance rows for one siswa over a date range
func (r *AttendanceSiswaRepository) GetBySiswaID(ctx context.Context, siswaID int64, from, to time.Time) ([]*models.AttendanceSiswa, error) {
	query := `SELECT ` + attendanceSiswaColumns + ` FROM attendance_siswa WHERE siswa_id = $1 AND date BETWEEN $2 AND $3 ORDER BY date`

	rows, err := r.db.Query(ctx, query, siswaID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.AttendanceSiswa
	for rows.Next() {
		var att models.AttendanceSiswa
		if err := rows.Scan(
			&att.ID,
			&att.SiswaID,
			&att.Date,
			&att.Status,
			&att.Notes,
			&att.RecordedBy,
			&att.CreatedAt,
		); err != nil {
			return nil, err
		}
		list = append(list, &att)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}
