// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// RemoveIfExists deletes the file at path. A missing file is not an error.
func RemoveIfExists(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing file: %w", err)
	}
	return nil
}

// HasWhitespace returns true if the path contains spaces or tabs.
// tex4ht mangles such paths, so callers warn before proceeding.
func HasWhitespace(path string) bool {
	return strings.ContainsAny(path, " \t")
}

// HasExtension reports whether path ends with the given extension,
// case-sensitively. The extension is passed without the leading dot.
func HasExtension(path, ext string) bool {
	return strings.HasSuffix(path, "."+ext)
}
