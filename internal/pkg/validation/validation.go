package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sekolahku/siakad/internal/pkg/apperrors"
)

// Domain patterns shared by the input schemas.
var (
	// AcademicYearPattern matches values like "2023/2024"
	AcademicYearPattern = regexp.MustCompile(`^\d{4}/\d{4}$`)

	// IdentifierPattern matches NIP/NIS/NISN values: digits only, up to 20
	IdentifierPattern = regexp.MustCompile(`^\d{1,20}$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// academic_year: "YYYY/YYYY"
	_ = v.RegisterValidation("academic_year", func(fl validator.FieldLevel) bool {
		return AcademicYearPattern.MatchString(fl.Field().String())
	})

	// identifier: numeric NIP/NIS/NISN strings
	_ = v.RegisterValidation("identifier", func(fl validator.FieldLevel) bool {
		return IdentifierPattern.MatchString(fl.Field().String())
	})

	return v
}

// Struct validates a tagged struct and converts validator errors into a
// single error wrapping apperrors.ErrValidationFailed with per-field
// messages.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		messages = append(messages, fieldMessage(fieldErr))
	}

	return fmt.Errorf("%w: %s", apperrors.ErrValidationFailed, strings.Join(messages, "; "))
}

// fieldMessage renders a single field error in a readable form.
func fieldMessage(fieldErr validator.FieldError) string {
	field := fieldErr.Field()
	switch fieldErr.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		return field + " must be at least " + fieldErr.Param() + " characters"
	case "max":
		return field + " must be at most " + fieldErr.Param() + " characters"
	case "oneof":
		return field + " must be one of " + fieldErr.Param()
	case "gt":
		return field + " must be greater than " + fieldErr.Param()
	case "gte":
		return field + " must be at least " + fieldErr.Param()
	case "lte":
		return field + " must be at most " + fieldErr.Param()
	case "len":
		return field + " must be exactly " + fieldErr.Param() + " characters"
	case "academic_year":
		return field + " must look like 2023/2024"
	case "identifier":
		return field + " must contain only digits (max 20)"
	case "datetime":
		return field + " must match the " + fieldErr.Param() + " time format"
	case "hexcolor":
		return field + " must be a hex color like #3498db"
	default:
		return field + " is invalid"
	}
}
