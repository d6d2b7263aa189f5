package calibrelatex

import (
	"context"
	"fmt"
	"os/exec"
)

// Service orchestrates the TeX-to-ebook pipeline.
type Service struct {
	runner   CommandRunner
	lookPath func(string) (string, error)
	logf     func(format string, args ...any)
}

// New creates a Service with default configuration. Use options to
// customize behavior (e.g., WithRunner for tests).
func New(opts ...Option) *Service {
	s := &Service{
		runner:   &ExecRunner{},
		lookPath: exec.LookPath,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CheckTools verifies that both external converters are resolvable on the
// system path. The returned error names the first missing tool.
func (s *Service) CheckTools() error {
	for _, tool := range []string{mk4htCommand, ebookConvertCommand} {
		if _, err := s.lookPath(tool); err != nil {
			return fmt.Errorf("%w: %s", ErrToolNotFound, tool)
		}
	}
	return nil
}

// Convert runs the full pipeline for a single document. The context is
// used for cancellation of the external processes.
//
// External tool failures after launch are reported through the logger and
// do not stop the pipeline; the only hard errors are invalid input, an
// unreadable document, and missing executables.
func (s *Service) Convert(ctx context.Context, input Input) error {
	if err := input.Validate(); err != nil {
		return err
	}
	if err := s.CheckTools(); err != nil {
		return err
	}

	meta, err := ReadMetadata(input.Path)
	if err != nil {
		return err
	}

	s.log("running %s %s on %s", mk4htCommand, input.engine(), input.Path)
	if stderr, err := s.texToHTML(ctx, input.Path, input.engine()); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		s.log("%s: %v%s", mk4htCommand, err, tail(stderr))
	}

	base := BasePath(input.Path)
	if !input.KeepTemp {
		RemoveTempFiles(base, s.logf)
	}

	flags := BuildConvertFlags(meta, input.profile())
	s.log("running %s with %d flags", ebookConvertCommand, len(flags))
	if stderr, err := s.htmlToEbook(ctx, base, input.format(), flags); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		s.log("%s: %v%s", ebookConvertCommand, err, tail(stderr))
	}

	if !input.KeepHTML {
		RemoveHTMLFiles(base, s.logf)
	}

	return nil
}

func (s *Service) log(format string, args ...any) {
	if s.logf != nil {
		s.logf(format, args...)
	}
}

// tail formats captured stderr for a one-line log message.
func tail(stderr string) string {
	if stderr == "" {
		return ""
	}
	return ": " + stderr
}
