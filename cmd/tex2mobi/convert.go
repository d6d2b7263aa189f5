package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	calibrelatex "github.com/Arkq/calibre-latex"
	"github.com/Arkq/calibre-latex/internal/config"
	"github.com/Arkq/calibre-latex/internal/fileutil"
	"github.com/Arkq/calibre-latex/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput  = errors.New("no input document specified")
	ErrDeclined = errors.New("conversion declined")
)

// runConvert orchestrates the conversion process.
func runConvert(args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfigWithEnv(flags, env)
	if err != nil {
		return err
	}
	applyEnvConfig(cfg, env)
	mergeFlags(flags, cfg)

	if len(positional) == 0 {
		return fmt.Errorf("%w (usage: tex2mobi [flags] <document.tex>)", ErrNoInput)
	}
	path := positional[0]

	if !fileutil.HasExtension(path, "tex") {
		return fmt.Errorf("%w: %s", calibrelatex.ErrNotTeXDocument, path)
	}

	// tex4ht mangles paths with whitespace; let the user back out.
	if fileutil.HasWhitespace(path) && !cfg.AssumeYes {
		ok, err := confirm(env, "warning: %q contains whitespace, which tex4ht may not handle. Continue? [y/N] ", path)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: document path contains whitespace%s", ErrDeclined, hints.ForWhitespacePath())
		}
	}

	logf := func(format string, args ...any) {
		if !flags.quiet && flags.verbose {
			fmt.Fprintf(env.Stderr, format+"\n", args...)
		}
	}

	svc := env.NewService(
		calibrelatex.WithLookPath(env.LookPath),
		calibrelatex.WithLogger(logf),
	)

	if err := svc.CheckTools(); err != nil {
		var tool string
		if _, after, found := strings.Cut(err.Error(), ": "); found {
			tool = after
		}
		return fmt.Errorf("%w%s", err, hints.ForMissingTool(tool))
	}

	err = svc.Convert(context.Background(), calibrelatex.Input{
		Path:     path,
		Engine:   cfg.Engine,
		Format:   cfg.Format,
		Profile:  cfg.Profile,
		KeepTemp: cfg.KeepTemp,
		KeepHTML: cfg.KeepHTML,
	})
	if err != nil {
		return err
	}

	if !flags.quiet {
		format := cfg.Format
		if format == "" {
			format = calibrelatex.FormatMobi
		}
		fmt.Fprintf(env.Stdout, "wrote %s.%s\n", calibrelatex.BasePath(path), format)
	}
	return nil
}

// loadConfigWithEnv loads the YAML config named by --config or
// TEX2MOBI_CONFIG, falling back to defaults when neither is set.
func loadConfigWithEnv(flags *convertFlags, env *Environment) (*config.Config, error) {
	name := flags.config
	if name == "" {
		name = env.Getenv("TEX2MOBI_CONFIG")
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into the config (CLI wins). Environment
// variables sit between config file and defaults.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.engine != "" {
		cfg.Engine = flags.engine
	}
	if flags.format != "" {
		cfg.Format = flags.format
	}
	if flags.profile != "" {
		cfg.Profile = flags.profile
	}
	if flags.keepTemp {
		cfg.KeepTemp = true
	}
	if flags.keepHTML {
		cfg.KeepHTML = true
	}
	if flags.yes {
		cfg.AssumeYes = true
	}
}

// confirm prints a prompt and reads a single line from stdin.
// Only "y" and "yes" (case-insensitive) are affirmative.
func confirm(env *Environment, format string, args ...any) (bool, error) {
	fmt.Fprintf(env.Stderr, format, args...)

	scanner := bufio.NewScanner(env.Stdin)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return false, fmt.Errorf("reading confirmation: %w", err)
		}
		return false, nil
	}
	switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
