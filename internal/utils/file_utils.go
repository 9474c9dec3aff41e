package utils

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// JoinLines joins lines with "\n" without adding a trailing newline.
func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

// WriteLines writes the joined lines to path, replacing any previous content.
func WriteLines(fs afero.Fs, path string, lines []string) error {
	return WriteFile(fs, path, []byte(JoinLines(lines)))
}

// WriteFile creates the parent directory of path if needed and writes data.
func WriteFile(fs afero.Fs, path string, data []byte) error {
	if err := EnsureDir(fs, filepath.Dir(path)); err != nil {
		return err
	}
	return afero.WriteFile(fs, path, data, 0644)
}

// EnsureDir creates dir and its parents.
func EnsureDir(fs afero.Fs, dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return fs.MkdirAll(dir, 0755)
}
