package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/sekolahku/siakad/internal/app/models"
	"github.com/sekolahku/siakad/internal/pkg/apperrors"
)

// CalendarRepository handles database operations for the academic_calendar
// table.
type CalendarRepository struct {
	db Querier
}

// NewCalendarRepository creates a new calendar repository
func NewCalendarRepository(db Querier) *CalendarRepository {
	return &CalendarRepository{
		db: db,
	}
}

const calendarColumns = `id, title, description, event_date, event_type, is_announcement, color, academic_year, created_at`

// Create inserts a calendar event
func (r *CalendarRepository) Create(ctx context.Context, event *models.AcademicCalendar) error {
	query := `
		INSERT INTO academic_calendar (title, description, event_date, event_type, is_announcement, color, academic_year)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		event.Title,
		event.Description,
		event.EventDate,
		event.EventType,
		event.IsAnnouncement,
		event.Color,
		event.AcademicYear,
	).Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating calendar event: %w", err)
	}

	return nil
}

// GetByID retrieves a calendar event by ID
func (r *CalendarRepository) GetByID(ctx context.Context, id int64) (*models.AcademicCalendar, error) {
	query := `SELECT ` + calendarColumns + ` FROM academic_calendar WHERE id = $1`

	var event models.AcademicCalendar
	err := r.db.QueryRow(ctx, query, id).Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.EventDate,
		&event.EventType,
		&event.IsAnnouncement,
		&event.Color,
		&event.AcademicYear,
		&event.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCalendarEventNotFound
		}
		return nil, fmt.Errorf("error retrieving calendar event: %w", err)
	}

	return &event, nil
}

// GetByDateRange retrieves events whose date falls in [from, to]
func (r *CalendarRepository) GetByDateRange(ctx context.Context, from, to time.Time) ([]*models.AcademicCalendar, error) {
	query := `SELECT ` + calendarColumns + ` FROM academic_calendar WHERE event_date BETWEEN $1 AND $2 ORDER BY event_date`
	return r.queryList(ctx, query, from, to)
}

// GetAnnouncements retrieves events flagged as announcements for one
// academic year.
func (r *CalendarRepository) GetAnnouncements(ctx context.Context, academicYear string) ([]*models.AcademicCalendar, error) {
	query := `SELECT ` + calendarColumns + ` FROM academic_calendar WHERE is_announcement = TRUE AND academic_year = $1 ORDER BY event_date`
	return r.queryList(ctx, query, academicYear)
}

func (r *CalendarRepository) queryList(ctx context.Context, query string, args ...any) ([]*models.AcademicCalendar, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.AcademicCalendar
	for rows.Next() {
		var event models.AcademicCalendar
		if err := rows.Scan(
			&event.ID,
			&event.Title,
			&event.Description,
			&event.EventDate,
			&event.EventType,
			&event.IsAnnouncement,
			&event.Color,
			&event.AcademicYear,
			&event.CreatedAt,
		); err != nil {
			return nil, err
		}
		list = append(list, &event)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

// Delete removes a calendar event. Calendar entries have no soft-delete
// flag, so removal is physical.
func (r *CalendarRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM academic_calendar WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting calendar event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCalendarEventNotFound
	}

	return nil
}
