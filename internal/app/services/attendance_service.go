package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sekolahku/siakad/internal/app/models"
	"github.com/sekolahku/siakad/internal/app/models/dto"
	"github.com/sekolahku/siakad/internal/app/repositories"
	"github.com/sekolahku/siakad/internal/pkg/apperrors"
	"github.com/sekolahku/siakad/internal/pkg/logger"
)

// AttendanceService marks daily attendance for teachers and students. A
// teacher check-in is validated against the school geofence when the
// settings enable it.
type AttendanceService struct {
	guruAttRepo  *repositories.AttendanceGuruRepository
	siswaAttRepo *repositories.AttendanceSiswaRepository
	guruRepo     *repositories.GuruRepository
	siswaRepo    *repositories.SiswaRepository
	settingsRepo *repositories.SettingsRepository

	now func() time.Time
}

// NewAttendanceService creates a new attendance service instance
func NewAttendanceService(guruAttRepo *repositories.AttendanceGuruRepository, siswaAttRepo *repositories.AttendanceSiswaRepository, guruRepo *repositories.GuruRepository, siswaRepo *repositories.SiswaRepository, settingsRepo *repositories.SettingsRepository) *AttendanceService {
	return &AttendanceService{
		guruAttRepo:  guruAttRepo,
		siswaAttRepo: siswaAttRepo,
		guruRepo:     guruRepo,
		siswaRepo:    siswaRepo,
		settingsRepo: settingsRepo,
		now:          time.Now,
	}
}

// MarkGuru marks today's attendance for the teacher owning the given
// account. A present or late status counts as a check-in: the time is
// stamped and, when the geofence is enabled, the supplied coordinates must
// fall within the configured radius. One row per guru per date.
func (s *AttendanceService) MarkGuru(ctx context.Context, schema dto.AttendanceMarkCreate) (*models.AttendanceGuru, error) {
	if err := schema.Validate(); err != nil {
		return nil, err
	}

	guru, err := s.guruRepo.GetByUserID(ctx, schema.UserID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	att := &models.AttendanceGuru{
		GuruID:      guru.ID,
		Date:        truncateToDate(now),
		Status:      schema.Status,
		LocationLat: schema.LocationLat,
		LocationLng: schema.LocationLng,
		Notes:       schema.Notes,
	}

	if schema.Status == models.AttendancePresent || schema.Status == models.AttendanceLate {
		if err := s.checkGeofence(ctx, schema); err != nil {
			return nil, err
		}
		checkIn := now
		att.CheckIn = &checkIn
	}

	if err := s.guruAttRepo.Create(ctx, att); err != nil {
		return nil, err
	}

	logger.Info().Int64("guru_id", guru.ID).Str("status", string(att.Status)).Msg("Guru attendance marked")
	return att, nil
}

// checkGeofence validates check-in coordinates against the school settings.
func (s *AttendanceService) checkGeofence(ctx context.Context, schema dto.AttendanceMarkCreate) error {
	settings, err := s.settingsRepo.Load(ctx)
	if err != nil {
		return err
	}

	if !settings.GeofenceEnabled {
		return nil
	}

	if settings.GeofenceLat == nil || settings.GeofenceLng == nil || settings.GeofenceRadius == nil {
		return apperrors.ErrGeofenceNotConfigured
	}

	if schema.LocationLat == nil || schema.LocationLng == nil {
		return fmt.Errorf("%w: check-in coordinates required", apperrors.ErrValidationFailed)
	}

	distance := haversineMeters(
		settings.GeofenceLat.InexactFloat64(),
		settings.GeofenceLng.InexactFloat64(),
		schema.LocationLat.InexactFloat64(),
		schema.LocationLng.InexactFloat64(),
	)

	if distance > float64(*settings.GeofenceRadius) {
		logger.Warn().
			Float64("distance_m", distance).
			Int("radius_m", *settings.GeofenceRadius).
			Msg("Check-in outside geofence")
		return apperrors.ErrOutsideGeofence
	}

	return nil
}

// CheckOutGuru stamps the check-out time on today's attendance row for the
// teacher owning the given account.
func (s *AttendanceService) CheckOutGuru(ctx context.Context, guruUserID int64) error {
	guru, err := s.guruRepo.GetByUserID(ctx, guruUserID)
	if err != nil {
		return err
	}

	now := s.now()
	att, err := s.guruAttRepo.GetByGuruAndDate(ctx, guru.ID, truncateToDate(now))
	if err != nil {
		return err
	}

	return s.guruAttRepo.SetCheckOut(ctx, att.ID, now)
}

// MarkSiswa marks today's attendance for the student owning the given
// account. recordedBy names the person who entered the record. One row per
// siswa per date.
func (s *AttendanceService) MarkSiswa(ctx context.Context, schema dto.AttendanceMarkCreate, recordedBy string) (*models.AttendanceSiswa, error) {
	if err := schema.Validate(); err != nil {
		return nil, err
	}

	siswa, err := s.siswaRepo.GetByUserID(ctx, schema.UserID)
	if err != nil {
		return nil, err
	}

	att := &models.AttendanceSiswa{
		SiswaID:    siswa.ID,
		Date:       truncateToDate(s.now()),
		Status:     schema.Status,
		Notes:      schema.Notes,
		RecordedBy: recordedBy,
	}

	if err := s.siswaAttRepo.Create(ctx, att); err != nil {
		return nil, err
	}

	return att, nil
}

// GetGuruHistory retrieves a teacher's attendance rows over a date range
func (s *AttendanceService) GetGuruHistory(ctx context.Context, guruID int64, from, to time.Time) ([]*models.AttendanceGuru, error) {
	return s.guruAttRepo.GetByGuruID(ctx, guruID, from, to)
}

// GetSiswaHistory retrieves a student's attendance rows over a date range
func (s *AttendanceService) GetSiswaHistory(ctx context.Context, siswaID int64, from, to time.Time) ([]*models.AttendanceSiswa, error) {
	return s.siswaAttRepo.GetBySiswaID(ctx, siswaID, from, to)
}

func truncateToDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
