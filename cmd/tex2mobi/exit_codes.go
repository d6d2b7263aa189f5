package main

import (
	"errors"
	"os"

	calibrelatex "github.com/Arkq/calibre-latex"
	"github.com/Arkq/calibre-latex/internal/config"
)

// Exit codes for the tex2mobi CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or declined confirmation
	ExitIO      = 3 // File not found, permission denied
	ExitTool    = 4 // Missing external converter
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Missing converter (exit 4)
	if errors.Is(err, calibrelatex.ErrToolNotFound) {
		return ExitTool
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, calibrelatex.ErrReadDocument) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrDeclined) ||
		errors.Is(err, calibrelatex.ErrEmptyPath) ||
		errors.Is(err, calibrelatex.ErrInvalidEngine) ||
		errors.Is(err, calibrelatex.ErrInvalidFormat) ||
		errors.Is(err, calibrelatex.ErrNotTeXDocument) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) {
		return ExitUsage
	}

	return ExitGeneral
}
