// Package config loads the weld.yml project configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/weld-dev/weld/cmd/weld/internal/widget"
)

// FileName is the configuration file weld looks for at the project root.
const FileName = "weld.yml"

// Config represents the weld.yml configuration.
type Config struct {
	// Toolkit configuration
	Toolkit *BackendConfig `yaml:"toolkit,omitempty"`

	// Runtime configuration
	Runtime *BackendConfig `yaml:"runtime,omitempty"`

	// WidgetsDir is where widget definitions live
	WidgetsDir string `yaml:"widgetsDir,omitempty"`

	// Package is the fallback package clause for generated files
	Package string `yaml:"package,omitempty"`

	// Imports are extra import paths added to every generated file
	Imports []string `yaml:"imports,omitempty"`
}

// BackendConfig names an import path and the identifier generated code
// refers to it by.
type BackendConfig struct {
	Import string `yaml:"import,omitempty"`
	Ident  string `yaml:"ident,omitempty"`
}

// Load loads configuration from the given weld.yml path. An empty path
// searches upward from the current directory; a missing file yields the
// default configuration.
func Load(path string) (*Config, error) {
	if path == "" {
		found, err := findConfig()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	applyDefaults(&config)

	return &config, nil
}

// Save writes the configuration to weld.yml in projectPath.
func Save(config *Config, projectPath string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(projectPath, FileName), data, 0644)
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Toolkit: &BackendConfig{
			Import: "github.com/weld-dev/toolkit/gtk",
			Ident:  "gtk",
		},
		Runtime: &BackendConfig{
			Import: "github.com/weld-dev/relay",
			Ident:  "relay",
		},
		WidgetsDir: "widgets",
	}
}

// FileOptions translates the configuration into compiler file options.
func (c *Config) FileOptions() widget.FileOptions {
	opts := widget.FileOptions{
		Package:      c.Package,
		ExtraImports: c.Imports,
	}
	if c.Toolkit != nil {
		opts.ToolkitImport = c.Toolkit.Import
		opts.ToolkitIdent = c.Toolkit.Ident
	}
	if c.Runtime != nil {
		opts.RuntimeImport = c.Runtime.Import
		opts.RuntimeIdent = c.Runtime.Ident
	}
	return opts
}

func applyDefaults(config *Config) {
	defaults := DefaultConfig()

	if config.WidgetsDir == "" {
		config.WidgetsDir = defaults.WidgetsDir
	}

	if config.Toolkit == nil {
		config.Toolkit = defaults.Toolkit
	} else {
		if config.Toolkit.Import == "" {
			config.Toolkit.Import = defaults.Toolkit.Import
		}
		if config.Toolkit.Ident == "" {
			config.Toolkit.Ident = filepath.Base(config.Toolkit.Import)
		}
	}

	if config.Runtime == nil {
		config.Runtime = defaults.Runtime
	} else {
		if config.Runtime.Import == "" {
			config.Runtime.Import = defaults.Runtime.Import
		}
		if config.Runtime.Ident == "" {
			config.Runtime.Ident = filepath.Base(config.Runtime.Import)
		}
	}
}

// findConfig walks upward from the current directory looking for weld.yml.
func findConfig() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s found", FileName)
		}
		dir = parent
	}
}
