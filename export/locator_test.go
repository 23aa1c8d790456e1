package export

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func touch(t *testing.T, dir, name string, mtime time.Time) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("stub"), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatalf("chtimes %s: %v", name, err)
	}
	return path
}

func TestLocatePicksNewest(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)

	touch(t, dir, "old_export.xlsx", base)
	want := touch(t, dir, "new_export.xlsx", base.Add(30*time.Minute))
	touch(t, dir, "middle_export.xlsx", base.Add(10*time.Minute))

	got, err := Locate(dir)
	if err != nil {
		t.Fatalf("Locate returned error: %v", err)
	}
	if got != want {
		t.Errorf("Locate = %q, want %q", got, want)
	}
}

func TestLocateIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)

	want := touch(t, dir, "export.xlsx", base)
	touch(t, dir, "~$export.xlsx", base.Add(10*time.Minute))
	touch(t, dir, "notes.csv", base.Add(20*time.Minute))
	touch(t, dir, "report.txt", base.Add(30*time.Minute))

	got, err := Locate(dir)
	if err != nil {
		t.Fatalf("Locate returned error: %v", err)
	}
	if got != want {
		t.Errorf("Locate = %q, want %q", got, want)
	}
}

func TestLocateTieBrokenByName(t *testing.T) {
	dir := t.TempDir()
	mtime := time.Now().Add(-time.Hour)

	touch(t, dir, "a_export.xlsx", mtime)
	want := touch(t, dir, "b_export.xlsx", mtime)

	for i := 0; i < 3; i++ {
		got, err := Locate(dir)
		if err != nil {
			t.Fatalf("Locate returned error: %v", err)
		}
		if got != want {
			t.Errorf("Locate = %q, want %q (tie must resolve the same way every run)", got, want)
		}
	}
}

func TestLocateNoExport(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "readme.md", time.Now())

	_, err := Locate(dir)
	if !errors.Is(err, ErrNoExportFound) {
		t.Errorf("Locate error = %v, want ErrNoExportFound", err)
	}
}

func TestLocateMissingDir(t *testing.T) {
	_, err := Locate(filepath.Join(t.TempDir(), "does-not-exist"))
	if !errors.Is(err, ErrNoExportFound) {
		t.Errorf("Locate error = %v, want ErrNoExportFound", err)
	}
}
