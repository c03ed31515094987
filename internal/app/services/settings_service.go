package services

import (
	"context"
	"fmt"
	"io"

	"github.com/sekolahku/siakad/internal/app/models"
	"github.com/sekolahku/siakad/internal/app/repositories"
	"github.com/sekolahku/siakad/internal/pkg/apperrors"
	"github.com/sekolahku/siakad/internal/pkg/filestorage"
	"github.com/sekolahku/siakad/internal/pkg/validation"
)

// SettingsService manages the singleton school settings row and its
// branding assets.
type SettingsService struct {
	settingsRepo *repositories.SettingsRepository
	storage      *filestorage.LocalStorage
}

// NewSettingsService creates a new settings service instance
func NewSettingsService(settingsRepo *repositories.SettingsRepository, storage *filestorage.LocalStorage) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
		storage:      storage,
	}
}

// Get retrieves the school settings.
func (s *SettingsService) Get(ctx context.Context) (*models.SchoolSettings, error) {
	return s.settingsRepo.Load(ctx)
}

// Update rewrites the settings row. An enabled geofence must carry its
// center and radius, and the academic year must be in YYYY/YYYY form.
func (s *SettingsService) Update(ctx context.Context, settings *models.SchoolSettings) error {
	if !validation.AcademicYearPattern.MatchString(settings.AcademicYear) {
		return fmt.Errorf("%w: academic year must be in YYYY/YYYY format", apperrors.ErrValidationFailed)
	}

	if settings.GeofenceEnabled {
		if settings.GeofenceLat == nil || settings.GeofenceLng == nil || settings.GeofenceRadius == nil {
			return apperrors.ErrGeofenceNotConfigured
		}
		if *settings.GeofenceRadius <= 0 {
			return fmt.Errorf("%w: geofence radius must be positive", apperrors.ErrValidationFailed)
		}
	}

	return s.settingsRepo.Save(ctx, settings)
}

// SetLogo stores a new school logo and records its path, removing the
// previous file.
func (s *SettingsService) SetLogo(ctx context.Context, content io.Reader, originalName string) error {
	return s.setBrandingAsset(ctx, content, originalName, func(settings *models.SchoolSettings, path string) *string {
		old := settings.LogoPath
		settings.LogoPath = &path
		return old
	})
}

// SetFavicon stores a new favicon and records its path, removing the
// previous file.
func (s *SettingsService) SetFavicon(ctx context.Context, content io.Reader, originalName string) error {
	return s.setBrandingAsset(ctx, content, originalName, func(settings *models.SchoolSettings, path string) *string {
		old := settings.FaviconPath
		settings.FaviconPath = &path
		return old
	})
}

func (s *SettingsService) setBrandingAsset(ctx context.Context, content io.Reader, originalName string, swap func(*models.SchoolSettings, string) *string) error {
	settings, err := s.settingsRepo.Load(ctx)
	if err != nil {
		return err
	}

	path, err := s.storage.Save(content, originalName, "branding")
	if err != nil {
		return err
	}

	old := swap(settings, path)
	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		_ = s.storage.Delete(path)
		return err
	}

	if old != nil {
		_ = s.storage.Delete(*old)
	}

	return nil
}
