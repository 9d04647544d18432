package figure

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

// DefaultDir is where figures land when no directory is given.
const DefaultDir = "images"

var plotFilePattern = regexp.MustCompile(`^plot_\d+\.pdf$`)

// NextPlotPath creates dir if absent and returns the next free numbered
// path, one past the count of files already matching plot_<n>.pdf.
// Listing and creating are not atomic; concurrent writers into the same
// directory can collide.
func NextPlotPath(dir string) (string, error) {
	if dir == "" {
		dir = DefaultDir
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}
	count := 0
	for _, e := range entries {
		if !e.IsDir() && plotFilePattern.MatchString(e.Name()) {
			count++
		}
	}
	return filepath.Join(dir, fmt.Sprintf("plot_%d.pdf", count+1)), nil
}
