package config

import (
	"fmt"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"github.com/mitchellh/go-homedir"
)

// EnvPrefix is the prefix for every environment variable ldot reads
const EnvPrefix = "LDOT"

// DefaultRegistryPath is the registry location when LDOT_REGISTRY is unset
const DefaultRegistryPath = "./data/config.json"

// Settings holds process configuration loaded from LDOT_* environment variables
type Settings struct {
	RegistryPath string `envconfig:"REGISTRY" default:"./data/config.json"`

	LogFile       string `envconfig:"LOG_FILE"`
	LogMaxSize    int    `envconfig:"LOG_MAX_SIZE" default:"1"`    // megabytes
	LogMaxBackups int    `envconfig:"LOG_MAX_BACKUPS" default:"2"` // rotated files kept
	LogMaxAge     int    `envconfig:"LOG_MAX_AGE" default:"30"`    // days
	Debug         bool   `envconfig:"DEBUG" default:"false"`

	// ShellWords switches command tokenization from plain whitespace
	// splitting to shell-style quoting rules.
	ShellWords     bool `envconfig:"SHELL_WORDS" default:"false"`
	NonInteractive bool `envconfig:"NON_INTERACTIVE" default:"false"`
}

// LoadSettings reads settings from the environment
func LoadSettings() (*Settings, error) {
	var s Settings
	if err := envconfig.Process(EnvPrefix, &s); err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if s.LogMaxSize <= 0 {
		s.LogMaxSize = 1
	}
	if s.LogMaxBackups < 0 {
		s.LogMaxBackups = 2
	}
	if s.LogMaxAge <= 0 {
		s.LogMaxAge = 30
	}
	return &s, nil
}

// ResolvedRegistryPath returns the registry path with ~ expanded
func (s *Settings) ResolvedRegistryPath() (string, error) {
	path := s.RegistryPath
	if path == "" {
		path = DefaultRegistryPath
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("invalid registry path %s: %w", path, err)
	}
	return expanded, nil
}

// LogFilePath returns LDOT_LOG_FILE when set, otherwise ~/.ldot/logs/ldot.log
func (s *Settings) LogFilePath() string {
	if s.LogFile != "" {
		if expanded, err := homedir.Expand(s.LogFile); err == nil {
			return expanded
		}
		return s.LogFile
	}

	home, err := homedir.Dir()
	if err != nil {
		return "ldot.log"
	}
	return filepath.Join(home, ".ldot", "logs", "ldot.log")
}
