package filestorage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	ls, err := NewLocalStorage(dir)
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	rel, err := ls.Save(strings.NewReader("bukti juara"), "piagam.pdf", "prestasi")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if filepath.Dir(rel) != "prestasi" {
		t.Errorf("expected path under prestasi/, got %q", rel)
	}
	if filepath.Ext(rel) != ".pdf" {
		t.Errorf("expected original extension kept, got %q", rel)
	}

	data, err := os.ReadFile(ls.FullPath(rel))
	if err != nil {
		t.Fatalf("reading stored file: %v", err)
	}
	if string(data) != "bukti juara" {
		t.Errorf("stored content mismatch: %q", data)
	}

	if err := ls.Delete(rel); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := os.Stat(ls.FullPath(rel)); !os.IsNotExist(err) {
		t.Error("expected file to be removed")
	}

	// Deleting an absent file is not an error
	if err := ls.Delete(rel); err != nil {
		t.Errorf("Delete of missing file: %v", err)
	}
}

func TestSaveUniqueNames(t *testing.T) {
	ls, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	a, err := ls.Save(strings.NewReader("a"), "foto.jpg", "")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	b, err := ls.Save(strings.NewReader("b"), "foto.jpg", "")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if a == b {
		t.Errorf("expected unique generated names, both were %q", a)
	}
}
