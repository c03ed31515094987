package migrations

import (
	"testing"
	"testing/fstest"
)

func TestSQLFilesSortsLexically(t *testing.T) {
	fsys := fstest.MapFS{
		"010_attendance.sql": &fstest.MapFile{Data: []byte("SELECT 1;")},
		"001_init.sql":       &fstest.MapFile{Data: []byte("SELECT 1;")},
		"002_catalogs.sql":   &fstest.MapFile{Data: []byte("SELECT 1;")},
		"notes.txt":          &fstest.MapFile{Data: []byte("ignored")},
	}

	files, err := SQLFiles(fsys)
	if err != nil {
		t.Fatalf("list sql files: %v", err)
	}

	want := []string{"001_init.sql", "002_catalogs.sql", "010_attendance.sql"}
	if len(files) != len(want) {
		t.Fatalf("expected %d files, got %d: %v", len(want), len(files), files)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Fatalf("file %d: expected %s, got %s", i, want[i], files[i])
		}
	}
}

func TestVersion(t *testing.T) {
	cases := []struct {
		filename string
		want     string
	}{
		{"001_init.sql", "001"},
		{"002_catalogs.sql", "002"},
		{"010_attendance_unique_pairs.sql", "010"},
	}

	for _, tc := range cases {
		if got := Version(tc.filename); got != tc.want {
			t.Errorf("Version(%q) = %q, want %q", tc.filename, got, tc.want)
		}
	}
}

func TestEmbeddedMigrationsPresent(t *testing.T) {
	files, err := SQLFiles(Files())
	if err != nil {
		t.Fatalf("list embedded migrations: %v", err)
	}
	if len(files) == 0 {
		t.Fatal("expected at least one embedded migration")
	}
	if files[0] != "001_init.sql" {
		t.Fatalf("expected 001_init.sql first, got %s", files[0])
	}
}
