package migrations

import (
	"os"
	"path/filepath"
	"testing"
)

func TestVersion(t *testing.T) {
	tests := map[string]string{
		"001_create_courses.sql":       "001",
		"migrations/010_add_index.sql": "010",
		"002.sql":                      "002.sql",
	}
	for in, want := range tests {
		if got := Version(in); got != want {
			t.Fatalf("Version(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPendingFilesSortsAndFilters(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"002_b.sql", "001_a.sql", "README.md"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("SELECT 1;"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "003_dir.sql"), 0o755); err != nil {
		t.Fatal(err)
	}

	files, err := PendingFiles(dir)
	if err != nil {
		t.Fatalf("PendingFiles: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %v", files)
	}
	if filepath.Base(files[0]) != "001_a.sql" || filepath.Base(files[1]) != "002_b.sql" {
		t.Fatalf("unexpected order: %v", files)
	}
}

func TestPendingFilesMissingDir(t *testing.T) {
	if _, err := PendingFiles(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestRepositoryMigrationsPresent(t *testing.T) {
	files, err := PendingFiles(filepath.Join("..", "..", "..", "migrations"))
	if err != nil {
		t.Fatalf("PendingFiles: %v", err)
	}
	if len(files) == 0 || Version(files[0]) != "001" {
		t.Fatalf("expected 001 migration first, got %v", files)
	}
}
