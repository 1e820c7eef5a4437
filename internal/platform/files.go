package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// File extensions yt-dlp leaves behind for unfinished downloads
var (
	SkippedExtensions = []string{".part", ".ytdl", ".temp"}
)

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// FindDownloadedFile locates the media file a downloader left in dir. Partial
// download leftovers are skipped; when several files remain the newest one
// wins.
func FindDownloadedFile(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var best string
	var bestMod int64
	for _, entry := range entries {
		if entry.IsDir() || isPartialFile(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.Size() == 0 {
			continue
		}
		if mod := info.ModTime().UnixNano(); best == "" || mod > bestMod {
			best = filepath.Join(dir, entry.Name())
			bestMod = mod
		}
	}

	if best == "" {
		return "", fmt.Errorf("no downloaded file found in %s", dir)
	}
	return best, nil
}

// isPartialFile reports whether name is an unfinished download artifact
func isPartialFile(name string) bool {
	for _, ext := range SkippedExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// InstallHint returns the package-manager command for installing a tool on
// the current platform
func InstallHint(pkg string) string {
	switch runtime.GOOS {
	case "darwin":
		return fmt.Sprintf("brew install %s", pkg)
	case "linux":
		return fmt.Sprintf("sudo apt install %s", pkg)
	case "windows":
		return fmt.Sprintf("winget install %s", pkg)
	}
	return fmt.Sprintf("install %s with your system package manager", pkg)
}
