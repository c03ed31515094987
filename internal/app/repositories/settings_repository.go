package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sekolahku/siakad/internal/app/models"
	"github.com/sekolahku/siakad/internal/pkg/apperrors"
)

// SettingsRepository handles the school_settings singleton row. Load returns
// the single row; Save inserts it on first use and rewrites it afterwards.
type SettingsRepository struct {
	db Querier
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db Querier) *SettingsRepository {
	return &SettingsRepository{
		db: db,
	}
}

const settingsColumns = `id, school_name, school_address, school_phone, school_email, logo_path, favicon_path, geofence_enabled, geofence_lat, geofence_lng, geofence_radius, academic_year, updated_at`

// Load retrieves the settings row.
func (r *SettingsRepository) Load(ctx context.Context) (*models.SchoolSettings, error) {
	query := `SELECT ` + settingsColumns + ` FROM school_settings ORDER BY id LIMIT 1`

	var s models.SchoolSettings
	err := r.db.QueryRow(ctx, query).Scan(
		&s.ID,
		&s.SchoolName,
		&s.SchoolAddress,
		&s.SchoolPhone,
		&s.SchoolEmail,
		&s.LogoPath,
		&s.FaviconPath,
		&s.GeofenceEnabled,
		&s.GeofenceLat,
		&s.GeofenceLng,
		&s.GeofenceRadius,
		&s.AcademicYear,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("error loading school settings: %w", err)
	}

	return &s, nil
}

// Save writes the settings. A row without ID is inserted; an existing row is
// rewritten in place with a refreshed updated_at.
func (r *SettingsRepository) Save(ctx context.Context, s *models.SchoolSettings) error {
	if s.ID == 0 {
		query := `
			INSERT INTO school_settings (school_name, school_address, school_phone, school_email,
			                             logo_path, favicon_path, geofence_enabled, geofence_lat,
			                             geofence_lng, geofence_radius, academic_year)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING id, updated_at
		`

		err := r.db.QueryRow(ctx, query,
			s.SchoolName,
			s.SchoolAddress,
			s.SchoolPhone,
			s.SchoolEmail,
			s.LogoPath,
			s.FaviconPath,
			s.GeofenceEnabled,
			s.GeofenceLat,
			s.GeofenceLng,
			s.GeofenceRadius,
			s.AcademicYear,
		).Scan(&s.ID, &s.UpdatedAt)
		if err != nil {
			return fmt.Errorf("error inserting school settings: %w", err)
		}
		return nil
	}

	query := `
		UPDATE school_settings
		SET school_name = $2, school_address = $3, school_phone = $4, school_email = $5,
		    logo_path = $6, favicon_path = $7, geofence_enabled = $8, geofence_lat = $9,
		    geofence_lng = $10, geofence_radius = $11, academic_year = $12,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		s.ID,
		s.SchoolName,
		s.SchoolAddress,
		s.SchoolPhone,
		s.SchoolEmail,
		s.LogoPath,
		s.FaviconPath,
		s.GeofenceEnabled,
		s.GeofenceLat,
		s.GeofenceLng,
		s.GeofenceRadius,
		s.AcademicYear,
	)
	if err != nil {
		return fmt.Errorf("error updating school settings: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrSettingsNotFound
	}

	return nil
}
