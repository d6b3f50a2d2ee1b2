// Package note locates and reads the daily note file. It is the only
// part of the pipeline that touches the filesystem.
package note

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrNotFound is returned when no note exists for the requested day.
// A missing daily note is a legitimate state ("no tasks today"), distinct
// from permission or read failures, which pass through unwrapped.
var ErrNotFound = errors.New("daily note not found")

// Locate resolves today's note path. The pattern is a Go time layout
// rendered with today's date, then glob-matched against dir so notes may
// live in nested directories. The first match in lexical order wins.
func Locate(dir, pattern string, today time.Time) (string, error) {
	rendered := today.Format(pattern)

	matches, err := doublestar.Glob(os.DirFS(dir), rendered)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: note directory %s does not exist", ErrNotFound, dir)
		}
		return "", fmt.Errorf("glob %q in %s: %w", rendered, dir, err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("%w: no file matching %q in %s", ErrNotFound, rendered, dir)
	}

	return filepath.Join(dir, matches[0]), nil
}

// ReadLines reads the note and returns its lines without trailing
// newlines. A missing file maps to ErrNotFound; any other failure is
// returned as-is so callers can tell the two apart.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, err
	}

	lines := strings.Split(string(data), "\n")
	// A trailing newline leaves one empty phantom line; drop it.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines, nil
}
