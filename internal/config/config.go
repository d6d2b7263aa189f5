// Package config loads tex2mobi configuration from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Arkq/calibre-latex/internal/fileutil"
	"github.com/Arkq/calibre-latex/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// Config holds all configuration for document conversion.
type Config struct {
	Engine    string `yaml:"engine"`    // mk4ht engine (empty = htlatex)
	Format    string `yaml:"format"`    // output format (empty = mobi)
	Profile   string `yaml:"profile"`   // ebook-convert output profile (empty = kindle)
	KeepTemp  bool   `yaml:"keepTemp"`  // keep tex4ht intermediate files
	KeepHTML  bool   `yaml:"keepHTML"`  // keep generated HTML and CSS files
	AssumeYes bool   `yaml:"assumeYes"` // skip interactive confirmations
}

// DefaultConfig returns a config with default values.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a name or path.
//
// If nameOrPath contains a path separator, it is used as-is. Otherwise it
// is resolved as a name: first in the current directory, then in the user
// config directory (~/.config/tex2mobi/), with .yaml and .yml extensions.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if strings.ContainsAny(nameOrPath, "/\\") || strings.HasSuffix(nameOrPath, ".yaml") || strings.HasSuffix(nameOrPath, ".yml") {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	return &cfg, nil
}

// SearchPaths returns the locations resolveConfigPath would try for name,
// for use in error hints.
func SearchPaths(name string) []string {
	paths := []string{name + ".yaml", name + ".yml"}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths,
			filepath.Join(userConfigDir, "tex2mobi", name+".yaml"),
			filepath.Join(userConfigDir, "tex2mobi", name+".yml"))
	}
	return paths
}

func resolveConfigPath(name string) (string, error) {
	triedPaths := SearchPaths(name)
	for _, p := range triedPaths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
