package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Calling again on an existing directory should be a no-op
	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Errorf("Expected no error for existing directory, got %v", err)
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestFindDownloadedFile_SkipsPartialArtifacts(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, dir, "talk.m4a.part", "partial")
	writeFile(t, dir, "talk.m4a.ytdl", "state")
	want := writeFile(t, dir, "talk.m4a", "audio data")

	got, err := FindDownloadedFile(dir)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got != want {
		t.Errorf("FindDownloadedFile = %s, expected %s", got, want)
	}
}

func TestFindDownloadedFile_PicksNewest(t *testing.T) {
	dir := t.TempDir()

	older := writeFile(t, dir, "older.mp4", "data")
	past := time.Now().Add(-time.Hour)
	if err := os.Chtimes(older, past, past); err != nil {
		t.Fatalf("Failed to age file: %v", err)
	}
	newer := writeFile(t, dir, "newer.mp4", "data")

	got, err := FindDownloadedFile(dir)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got != newer {
		t.Errorf("FindDownloadedFile = %s, expected the newest file %s", got, newer)
	}
}

func TestFindDownloadedFile_EmptyDirectory(t *testing.T) {
	dir := t.TempDir()

	if _, err := FindDownloadedFile(dir); err == nil {
		t.Error("Expected error for a directory with no downloaded file")
	}

	// Empty files do not count as usable downloads
	writeFile(t, dir, "zero.mp3", "")
	if _, err := FindDownloadedFile(dir); err == nil {
		t.Error("Expected error when only an empty file exists")
	}
}

func TestInstallHint_NamesThePackage(t *testing.T) {
	hint := InstallHint("ffmpeg")
	if !strings.Contains(hint, "ffmpeg") {
		t.Errorf("Expected hint to name the package, got %q", hint)
	}
}
