package services

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sekolahku/siakad/internal/app/models/dto"
	"github.com/sekolahku/siakad/internal/app/repositories"
)

// recordingRow fills the generated columns the INSERT returns.
type recordingRow struct{}

func (recordingRow) Scan(dest ...any) error {
	for _, d := range dest {
		switch v := d.(type) {
		case *int64:
			*v = 1
		case *time.Time:
			*v = time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)
		}
	}
	return nil
}

// recordingQuerier captures the last statement and its arguments.
type recordingQuerier struct {
	lastSQL  string
	lastArgs []any
}

func (q *recordingQuerier) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	q.lastSQL, q.lastArgs = sql, arguments
	return pgconn.CommandTag{}, nil
}

func (q *recordingQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.lastSQL, q.lastArgs = sql, args
	return nil, pgx.ErrNoRows
}

func (q *recordingQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	q.lastSQL, q.lastArgs = sql, args
	return recordingRow{}
}

func TestCreateEventAppliesDefaultColor(t *testing.T) {
	querier := &recordingQuerier{}
	svc := NewCalendarService(repositories.NewCalendarRepository(querier))

	event, err := svc.CreateEvent(context.Background(), dto.CalendarEventCreate{
		Title:        "Libur Nasional",
		Description:  "Hari libur nasional",
		EventDate:    time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC),
		EventType:    "holiday",
		AcademicYear: "2026/2027",
	})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	if event.Color != "#3498db" {
		t.Errorf("event color = %q, want default #3498db", event.Color)
	}

	// The INSERT carries the defaulted value, not the empty string
	// ($6 is the color column).
	if len(querier.lastArgs) != 7 {
		t.Fatalf("expected 7 insert arguments, got %d", len(querier.lastArgs))
	}
	if got := querier.lastArgs[5]; got != "#3498db" {
		t.Errorf("inserted color = %v, want #3498db", got)
	}
}

func TestCreateEventKeepsExplicitColor(t *testing.T) {
	querier := &recordingQuerier{}
	svc := NewCalendarService(repositories.NewCalendarRepository(querier))

	event, err := svc.CreateEvent(context.Background(), dto.CalendarEventCreate{
		Title:        "Ujian Akhir Semester",
		Description:  "Pekan ujian",
		EventDate:    time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		EventType:    "exam",
		Color:        "#e74c3c",
		AcademicYear: "2025/2026",
	})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	if event.Color != "#e74c3c" {
		t.Errorf("event color = %q, want #e74c3c", event.Color)
	}
	if got := querier.lastArgs[5]; got != "#e74c3c" {
		t.Errorf("inserted color = %v, want #e74c3c", got)
	}
}
