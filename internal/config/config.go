// Package config loads the optional loxide.toml configuration used by the
// command line driver.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const fileName = "loxide.toml"

// Config holds the driver settings
type Config struct {
	Repl  ReplConfig  `toml:"repl"`
	Debug DebugConfig `toml:"debug"`
}

// ReplConfig configures the interactive session
type ReplConfig struct {
	Prompt  string `toml:"prompt"`
	History string `toml:"history"`
}

// DebugConfig toggles debugging aids
type DebugConfig struct {
	PrintAst bool `toml:"print_ast"`
}

// DefaultConfig returns the settings used when no configuration file exists
func DefaultConfig() *Config {
	return &Config{
		Repl: ReplConfig{
			Prompt:  "lox > ",
			History: ".loxide_history",
		},
	}
}

// FindAndLoad looks for loxide.toml upwards from the given directory and
// loads it. A missing file is not an error, the defaults are returned.
func FindAndLoad(startDir string) (*Config, error) {
	configPath := findConfigFile(startDir)
	if configPath == "" {
		return DefaultConfig(), nil
	}
	return Load(configPath)
}

// Load loads the configuration file at the given path. Fields absent from
// the file keep their default values.
func Load(path string) (*Config, error) {
	config := DefaultConfig()
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, err
	}
	return config, nil
}

func findConfigFile(startDir string) string {
	dir := startDir
	for {
		configPath := filepath.Join(dir, fileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
