package calibrelatex

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyPath      = errors.New("document path cannot be empty")
	ErrReadDocument   = errors.New("failed to read document")
	ErrInvalidEngine  = errors.New("invalid engine")
	ErrInvalidFormat  = errors.New("invalid output format")
	ErrToolNotFound   = errors.New("required external tool not found")
	ErrNotTeXDocument = errors.New("file must have .tex extension")
)
