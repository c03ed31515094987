package services

import (
	"context"
	"time"

	"github.com/sekolahku/siakad/internal/app/models"
	"github.com/sekolahku/siakad/internal/app/models/dto"
	"github.com/sekolahku/siakad/internal/app/repositories"
)

// defaultEventColor is the display color applied when an event is created
// without one, matching the column default.
const defaultEventColor = "#3498db"

// CalendarService manages academic calendar events and announcements.
type CalendarService struct {
	calendarRepo *repositories.CalendarRepository
}

// NewCalendarService creates a new calendar service instance
func NewCalendarService(calendarRepo *repositories.CalendarRepository) *CalendarService {
	return &CalendarService{
		calendarRepo: calendarRepo,
	}
}

// CreateEvent adds a calendar entry after validating the schema.
func (s *CalendarService) CreateEvent(ctx context.Context, schema dto.CalendarEventCreate) (*models.AcademicCalendar, error) {
	if err := schema.Validate(); err != nil {
		return nil, err
	}

	color := schema.Color
	if color == "" {
		color = defaultEventColor
	}

	event := &models.AcademicCalendar{
		Title:          schema.Title,
		Description:    schema.Description,
		EventDate:      schema.EventDate,
		EventType:      schema.EventType,
		IsAnnouncement: schema.IsAnnouncement,
		Color:          color,
		AcademicYear:   schema.AcademicYear,
	}

	if err := s.calendarRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

// GetByDateRange retrieves events between two dates inclusive
func (s *CalendarService) GetByDateRange(ctx context.Context, from, to time.Time) ([]*models.AcademicCalendar, error) {
	return s.calendarRepo.GetByDateRange(ctx, from, to)
}

// GetAnnouncements retrieves the announcements of one academic year
func (s *CalendarService) GetAnnouncements(ctx context.Context, academicYear string) ([]*models.AcademicCalendar, error) {
	return s.calendarRepo.GetAnnouncements(ctx, academicYear)
}

// Delete removes a calendar event.
func (s *CalendarService) Delete(ctx context.Context, id int64) error {
	return s.calendarRepo.Delete(ctx, id)
}
