package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/sekolahku/siakad/internal/pkg/apperrors"
)

func TestAcademicYearPattern(t *testing.T) {
	valid := []string{"2023/2024", "1999/2000"}
	invalid := []string{"2023", "2023-2024", "23/24", "2023/20245", ""}

	for _, v := range valid {
		if !AcademicYearPattern.MatchString(v) {
			t.Errorf("expected %q to match", v)
		}
	}
	for _, v := range invalid {
		if AcademicYearPattern.MatchString(v) {
			t.Errorf("expected %q not to match", v)
		}
	}
}

func TestIdentifierPattern(t *testing.T) {
	valid := []string{"1", "20240001", "19871231200001", strings.Repeat("9", 20)}
	invalid := []string{"", "12a4", "123 456", strings.Repeat("9", 21)}

	for _, v := range valid {
		if !IdentifierPattern.MatchString(v) {
			t.Errorf("expected %q to match", v)
		}
	}
	for _, v := range invalid {
		if IdentifierPattern.MatchString(v) {
			t.Errorf("expected %q not to match", v)
		}
	}
}

func TestStructErrorsNameFields(t *testing.T) {
	type schema struct {
		Code string `validate:"required,max=10"`
		Year string `validate:"academic_year"`
	}

	err := Struct(schema{Code: "", Year: "bad"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected ErrValidationFailed, got %v", err)
	}
	if !strings.Contains(err.Error(), "Code") || !strings.Contains(err.Error(), "Year") {
		t.Errorf("expected both field names in message, got %q", err.Error())
	}
}

func TestStructValid(t *testing.T) {
	type schema struct {
		Year string `validate:"academic_year"`
	}

	if err := Struct(schema{Year: "2024/2025"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}
