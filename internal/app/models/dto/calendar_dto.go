package dto

import (
	"time"

	"github.com/sekolahku/siakad/internal/pkg/validation"
)

// CalendarEventCreate adds an academic_calendar entry. An omitted Color
// falls back to the column default (#3498db).
type CalendarEventCreate struct {
	Title          string    `json:"title" validate:"required,max=200"`
	Description    string    `json:"description" validate:"max=1000"`
	EventDate      time.Time `json:"eventDate" validate:"required"`
	EventType      string    `json:"eventType" validate:"required,max=50"`
	IsAnnouncement bool      `json:"isAnnouncement"`
	Color          string    `json:"color" validate:"omitempty,hexcolor"`
	AcademicYear   string    `json:"academicYear" validate:"required,academic_year"`
}

func (c CalendarEventCreate) Validate() error {
	return validation.Struct(c)
}
