package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func pgError(code, constraint string) error {
	return &pgconn.PgError{Code: code, ConstraintName: constraint}
}

func TestIsUniqueViolation(t *testing.T) {
	if !IsUniqueViolation(pgError("23505", "uq_users_email")) {
		t.Fatal("expected unique violation to be detected")
	}
	if IsUniqueViolation(pgError("23503", "fk_siswa_kelas")) {
		t.Fatal("foreign key violation should not count as unique violation")
	}
	if IsUniqueViolation(errors.New("plain error")) {
		t.Fatal("plain error should not count as unique violation")
	}
}

func TestIsDuplicateConstraintErrorMatchesName(t *testing.T) {
	err := pgError("23505", "uq_siswa_nisn")

	if !IsDuplicateConstraintError(err, "uq_siswa_nisn") {
		t.Fatal("expected constraint name to match")
	}
	if IsDuplicateConstraintError(err, "uq_siswa_nis") {
		t.Fatal("different constraint name should not match")
	}
}

func TestIsDuplicateConstraintErrorWrapped(t *testing.T) {
	err := fmt.Errorf("error creating siswa: %w", pgError("23505", "uq_siswa_nisn"))

	if !IsDuplicateConstraintError(err, "uq_siswa_nisn") {
		t.Fatal("expected wrapped PgError to be unwrapped")
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	err := pgError("23503", "fk_kelas_jurusan")

	if !IsForeignKeyViolation(err, "") {
		t.Fatal("expected any-constraint foreign key check to match")
	}
	if !IsForeignKeyViolation(err, "fk_kelas_jurusan") {
		t.Fatal("expected named foreign key check to match")
	}
	if IsForeignKeyViolation(err, "fk_kelas_wali_kelas") {
		t.Fatal("different constraint name should not match")
	}
}

func TestConstraintName(t *testing.T) {
	if got := ConstraintName(pgError("23505", "uq_guru_nip")); got != "uq_guru_nip" {
		t.Fatalf("expected uq_guru_nip, got %q", got)
	}
	if got := ConstraintName(errors.New("plain")); got != "" {
		t.Fatalf("expected empty constraint name, got %q", got)
	}
}
