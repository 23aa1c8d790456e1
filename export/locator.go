package export

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoExportFound is returned when the export directory holds no usable
// spreadsheet file.
var ErrNoExportFound = errors.New("no analytics export found")

// Locate returns the path of the most recently modified .xlsx file in dir.
// Excel lock files ("~$" prefix) are skipped. Ties on modification time are
// broken by filename so repeated runs always pick the same file.
func Locate(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("export: %w in %q", ErrNoExportFound, dir)
		}
		return "", fmt.Errorf("export: read dir %q: %w", dir, err)
	}

	var (
		bestName string
		bestInfo fs.FileInfo
	)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, "~$") ||
			!strings.HasSuffix(strings.ToLower(name), ".xlsx") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if bestInfo == nil || info.ModTime().After(bestInfo.ModTime()) ||
			(info.ModTime().Equal(bestInfo.ModTime()) && name > bestName) {
			bestName = name
			bestInfo = info
		}
	}

	if bestName == "" {
		return "", fmt.Errorf("export: %w in %q", ErrNoExportFound, dir)
	}
	return filepath.Join(dir, bestName), nil
}
