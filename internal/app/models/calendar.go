package models

import (
	"time"
)

// AcademicCalendar is a dated school event ('academic_calendar' table).
// EventType is free-form (holiday, exam, meeting, ...). Color is a hex
// display color for calendar rendering.
type AcademicCalendar struct {
	ID             int64     `json:"id" db:"id"`
	Title          string    `json:"title" db:"title"`
	Description    string    `json:"description" db:"description"`
	EventDate      time.Time `json:"eventDate" db:"event_date"`
	EventType      string    `json:"eventType" db:"event_type"`
	IsAnnouncement bool      `json:"isAnnouncement" db:"is_announcement"`
	Color          string    `json:"color" db:"color"`
	AcademicYear   string    `json:"academicYear" db:"academic_year"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}
