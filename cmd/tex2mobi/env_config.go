package main

import (
	"fmt"
	"io"

	"github.com/Arkq/calibre-latex/internal/config"
)

// Environment variable overrides. They sit between the config file and CLI
// flags: flags win over variables, variables win over the file.
//
//	TEX2MOBI_CONFIG  config file name or path
//	TEX2MOBI_ENGINE  mk4ht engine
//	TEX2MOBI_FORMAT  output format
//	TEX2MOBI_PROFILE ebook-convert output profile
var knownEnvVars = []string{
	"TEX2MOBI_CONFIG",
	"TEX2MOBI_ENGINE",
	"TEX2MOBI_FORMAT",
	"TEX2MOBI_PROFILE",
}

// applyEnvConfig overlays TEX2MOBI_* variables onto cfg.
func applyEnvConfig(cfg *config.Config, env *Environment) {
	if v := env.Getenv("TEX2MOBI_ENGINE"); v != "" {
		cfg.Engine = v
	}
	if v := env.Getenv("TEX2MOBI_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := env.Getenv("TEX2MOBI_PROFILE"); v != "" {
		cfg.Profile = v
	}
}

// printEnvHelp lists the recognized environment variables.
func printEnvHelp(w io.Writer) {
	fmt.Fprintln(w, "Environment variables:")
	for _, name := range knownEnvVars {
		fmt.Fprintln(w, "  "+name)
	}
}
