package main

import (
	"context"
	"io"
	"os"
	"os/exec"

	calibrelatex "github.com/Arkq/calibre-latex"
)

// Converter is the interface for the conversion service.
type Converter interface {
	Convert(ctx context.Context, input calibrelatex.Input) error
	CheckTools() error
}

// Compile-time interface implementation check.
var _ Converter = (*calibrelatex.Service)(nil)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	Getenv   func(string) string
	LookPath func(string) (string, error)

	// NewService builds the conversion service; tests substitute fakes.
	NewService func(opts ...calibrelatex.Option) Converter
}

// DefaultEnv returns production dependencies.
func DefaultEnv() *Environment {
	return &Environment{
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Getenv:   os.Getenv,
		LookPath: exec.LookPath,
		NewService: func(opts ...calibrelatex.Option) Converter {
			return calibrelatex.New(opts...)
		},
	}
}
