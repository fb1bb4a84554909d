// Package generator writes rendered stubs to disk and patches the few
// project files that accumulate registrations across runs.
package generator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrFileExists is returned when a generated file would overwrite an
// existing one.
var ErrFileExists = errors.New("file already exists")

// Generate writes content to path, creating parent directories. Existing
// files are left untouched and reported with ErrFileExists.
func Generate(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %s", ErrFileExists, path)
		}
		return err
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Exists reports whether path is present on disk.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
