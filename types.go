package calibrelatex

import "fmt"

// Engine constants name the tex4ht scripts mk4ht can drive.
const (
	EngineLatex   = "htlatex"
	EngineXeLatex = "htxelatex"
	EngineTex     = "httex"
)

// Output format constants.
const (
	FormatMobi = "mobi"
	FormatAZW3 = "azw3"
	FormatEPUB = "epub"
)

// DefaultProfile is the ebook-convert output profile used when none is
// configured.
const DefaultProfile = "kindle"

// Input contains conversion parameters for a single document.
type Input struct {
	Path     string // Path to the TeX document (required)
	Engine   string // mk4ht engine (empty = htlatex)
	Format   string // Output format (empty = mobi)
	Profile  string // ebook-convert output profile (empty = kindle)
	KeepTemp bool   // Keep tex4ht intermediate files
	KeepHTML bool   // Keep the generated HTML and CSS files
}

// Validate checks that engine and format are recognized values.
func (in Input) Validate() error {
	if in.Path == "" {
		return ErrEmptyPath
	}
	switch in.Engine {
	case "", EngineLatex, EngineXeLatex, EngineTex:
	default:
		return fmt.Errorf("%w: %q (must be %s, %s, or %s)",
			ErrInvalidEngine, in.Engine, EngineLatex, EngineXeLatex, EngineTex)
	}
	switch in.Format {
	case "", FormatMobi, FormatAZW3, FormatEPUB:
	default:
		return fmt.Errorf("%w: %q (must be %s, %s, or %s)",
			ErrInvalidFormat, in.Format, FormatMobi, FormatAZW3, FormatEPUB)
	}
	return nil
}

// engine returns the configured engine or the default.
func (in Input) engine() string {
	if in.Engine == "" {
		return EngineLatex
	}
	return in.Engine
}

// format returns the configured output format or the default.
func (in Input) format() string {
	if in.Format == "" {
		return FormatMobi
	}
	return in.Format
}

// profile returns the configured output profile or the default.
func (in Input) profile() string {
	if in.Profile == "" {
		return DefaultProfile
	}
	return in.Profile
}

// Option configures a Service.
type Option func(*Service)

// WithRunner overrides the command runner, e.g. for tests.
func WithRunner(r CommandRunner) Option {
	return func(s *Service) { s.runner = r }
}

// WithLookPath overrides executable resolution, e.g. for tests.
func WithLookPath(fn func(string) (string, error)) Option {
	return func(s *Service) { s.lookPath = fn }
}

// WithLogger sets a destination for progress and best-effort warnings.
// A nil function silences the service.
func WithLogger(fn func(format string, args ...any)) Option {
	return func(s *Service) { s.logf = fn }
}
