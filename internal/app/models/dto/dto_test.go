package dto

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sekolahku/siakad/internal/app/models"
	"github.com/sekolahku/siakad/internal/pkg/apperrors"
)

func validUserCreate() UserCreate {
	return UserCreate{
		Username: "budi.santoso",
		Email:    "budi@sekolah.sch.id",
		Password: "rahasia-sekali",
		Role:     models.RoleGuru,
	}
}

func TestUserCreateValid(t *testing.T) {
	if err := validUserCreate().Validate(); err != nil {
		t.Fatalf("expected valid schema, got %v", err)
	}
}

func TestUserCreateRejectsBadInput(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*UserCreate)
	}{
		{"missing username", func(c *UserCreate) { c.Username = "" }},
		{"short username", func(c *UserCreate) { c.Username = "ab" }},
		{"bad email", func(c *UserCreate) { c.Email = "not-an-email" }},
		{"short password", func(c *UserCreate) { c.Password = "1234567" }},
		{"unknown role", func(c *UserCreate) { c.Role = "kepala" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := validUserCreate()
			tc.mutate(&c)
			err := c.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Fatalf("expected ErrValidationFailed, got %v", err)
			}
		})
	}
}

func TestSiswaCreateIdentifierRules(t *testing.T) {
	c := SiswaCreate{
		UserData:       validUserCreate(),
		NIS:            "20240001",
		NISN:           "1234567890",
		Name:           "Siti Aminah",
		Gender:         models.GenderFemale,
		Phone:          "081234567890",
		Address:        "Jl. Merdeka No. 1",
		BirthDate:      time.Date(2008, 5, 17, 0, 0, 0, 0, time.UTC),
		BirthPlace:     "Bandung",
		ParentName:     "Ahmad",
		ParentPhone:    "081298765432",
		EnrollmentDate: time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC),
	}

	if err := c.Validate(); err != nil {
		t.Fatalf("expected valid schema, got %v", err)
	}

	c.NISN = "12345abc90"
	err := c.Validate()
	if err == nil {
		t.Fatal("expected non-numeric NISN to be rejected")
	}
	if !strings.Contains(err.Error(), "NISN") {
		t.Fatalf("expected error to name the NISN field, got %v", err)
	}
}

func TestCalendarEventCreateRules(t *testing.T) {
	c := CalendarEventCreate{
		Title:        "Ujian Tengah Semester",
		Description:  "Pekan ujian untuk seluruh kelas",
		EventDate:    time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
		EventType:    "exam",
		Color:        "#e74c3c",
		AcademicYear: "2023/2024",
	}

	if err := c.Validate(); err != nil {
		t.Fatalf("expected valid schema, got %v", err)
	}

	c.AcademicYear = "2023-2024"
	if err := c.Validate(); err == nil {
		t.Fatal("expected malformed academic year to be rejected")
	}

	c.AcademicYear = "2023/2024"
	c.Color = "blue"
	if err := c.Validate(); err == nil {
		t.Fatal("expected non-hex color to be rejected")
	}
}

func TestAttendanceMarkCreateStatusMembership(t *testing.T) {
	c := AttendanceMarkCreate{
		UserID: 7,
		Status: models.AttendancePresent,
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("expected valid schema, got %v", err)
	}

	c.Status = "vacation"
	if err := c.Validate(); err == nil {
		t.Fatal("expected unknown attendance status to be rejected")
	}
}
