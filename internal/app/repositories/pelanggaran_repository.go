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

// PelanggaranRepository handles database operations for the jenis_pelanggaran
// catalog and the input_pelanggaran records.
type PelanggaranRepository struct {
	db Querier
}

// NewPelanggaranRepository creates a new pelanggaran repository
func NewPelanggaranRepository(db Querier) *PelanggaranRepository {
	return &PelanggaranRepository{
		db: db,
	}
}

// WithTx returns a copy of the repository that runs inside tx.
func (r *PelanggaranRepository) WithTx(tx pgx.Tx) *PelanggaranRepository {
	return &PelanggaranRepository{db: tx}
}

// CreateJenis inserts a violation catalog entry
func (r *PelanggaranRepository) CreateJenis(ctx context.Context, jenis *models.JenisPelanggaran) error {
	query := `
		INSERT INTO jenis_pelanggaran (name, description, points_deducted, severity_level, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		jenis.Name,
		jenis.Description,
		jenis.PointsDeducted,
		jenis.SeverityLevel,
		jenis.IsActive,
	).Scan(&jenis.ID, &jenis.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating jenis pelanggaran: %w", err)
	}

	return nil
}

// GetJenisByID retrieves a violation catalog entry by ID
func (r *PelanggaranRepository) GetJenisByID(ctx context.Context, id int64) (*models.JenisPelanggaran, error) {
	query := `
		SELECT id, name, description, points_deducted, severity_level, is_active, created_at
		FROM jenis_pelanggaran
		WHERE id = $1
	`

	var jenis models.JenisPelanggaran
	err := r.db.QueryRow(ctx, query, id).Scan(
		&jenis.ID,
		&jenis.Name,
		&jenis.Description,
		&jenis.PointsDeducted,
		&jenis.SeverityLevel,
		&jenis.IsActive,
		&jenis.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrJenisPelanggaranNotFound
		}
		return nil, fmt.Errorf("error retrieving jenis pelanggaran: %w", err)
	}

	return &jenis, nil
}

// GetJenisByName retrieves a violation catalog entry by name.
func (r *PelanggaranRepository) GetJenisByName(ctx context.Context, name string) (*models.JenisPelanggaran, error) {
	query := `
		SELECT id, name, description, points_deducted, severity_level, is_active, created_at
		FROM jenis_pelanggaran
		WHERE name = $1
	`

	var jenis models.JenisPelanggaran
	err := r.db.QueryRow(ctx, query, name).Scan(
		&jenis.ID,
		&jenis.Name,
		&jenis.Description,
		&jenis.PointsDeducted,
		&jenis.SeverityLevel,
		&jenis.IsActive,
		&jenis.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrJenisPelanggaranNotFound
		}
		return nil, fmt.Errorf("error retrieving jenis pelanggaran by name: %w", err)
	}

	return &jenis, nil
}

// GetAllJenis retrieves the violation catalog
func (r *PelanggaranRepository) GetAllJenis(ctx context.Context) ([]*models.JenisPelanggaran, error) {
	query := `
		SELECT id, name, description, points_deducted, severity_level, is_active, created_at
		FROM jenis_pelanggaran
		ORDER BY severity_level, name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.JenisPelanggaran
	for rows.Next() {
		var jenis models.JenisPelanggaran
		if err := rows.Scan(
			&jenis.ID,
			&jenis.Name,
			&jenis.Description,
			&jenis.PointsDeducted,
			&jenis.SeverityLevel,
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

// CreateRecord inserts a recorded violation
func (r *PelanggaranRepository) CreateRecord(ctx context.Context, record *models.InputPelanggaran) error {
	query := `
		INSERT INTO input_pelanggaran (siswa_id, jenis_pelanggaran_id, violation_date, description, evidence, reported_by, points_deducted)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		record.SiswaID,
		record.JenisPelanggaranID,
		record.ViolationDate,
		record.Description,
		record.Evidence,
		record.ReportedBy,
		record.PointsDeducted,
	).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err, "fk_input_pelanggaran_siswa") {
			return apperrors.ErrSiswaNotFound
		}
		if dberrors.IsForeignKeyViolation(err, "fk_input_pelanggaran_jenis") {
			return apperrors.ErrJenisPelanggaranNotFound
		}
		return fmt.Errorf("error creating input pelanggaran: %w", err)
	}

	return nil
}

const pelanggaranRecordColumns = `id, siswa_id, jenis_pelanggaran_id, violation_date, description, evidence, reported_by, points_deducted, created_at`

// GetRecordByID retrieves a recorded violation by ID
func (r *PelanggaranRepository) GetRecordByID(ctx context.Context, id int64) (*models.InputPelanggaran, error) {
	query := `SELECT ` + pelanggaranRecordColumns + ` FROM input_pelanggaran WHERE id = $1`

	var record models.InputPelanggaran
	err := r.db.QueryRow(ctx, query, id).Scan(
		&record.ID,
		&record.SiswaID,
		&record.JenisPelanggaranID,
		&record.ViolationDate,
		&record.Description,
		&record.Evidence,
		&record.ReportedBy,
		&record.PointsDeducted,
		&record.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPelanggaranNotFound
		}
		return nil, fmt.Errorf("error retrieving input pelanggaran: %w", err)
	}

	return &record, nil
}

// GetRecordsBySiswaID retrieves the violations of one student
func (r *PelanggaranRepository) GetRecordsBySiswaID(ctx context.Context, siswaID int64) ([]*models.InputPelanggaran, error) {
	query := `SELECT ` + pelanggaranRecordColumns + ` FROM input_pelanggaran WHERE siswa_id = $1 ORDER BY violation_date DESC`

	rows, err := r.db.Query(ctx, query, siswaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.InputPelanggaran
	for rows.Next() {
		var record models.InputPelanggaran
		if err := rows.Scan(
			&record.ID,
			&record.SiswaID,
			&record.JenisPelanggaranID,
			&record.ViolationDate,
			&record.Description,
			&record.Evidence,
			&record.ReportedBy,
			&record.PointsDeducted,
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
