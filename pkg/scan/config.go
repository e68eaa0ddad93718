package scan

// ABOUTME: Scan configuration loaded from YAML or JSON files
// ABOUTME: Declares search roots and a default namespace prefix for contexts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/udonne/kara/pkg/typesys"
)

// Config declares the search roots and default prefix of a scan setup.
type Config struct {
	// Roots are locators in scan order: "jar:<path>" for an archive,
	// anything else for a directory tree.
	Roots []string `yaml:"roots" json:"roots"`

	// Prefix is the default namespace prefix to scan.
	Prefix string `yaml:"prefix" json:"prefix"`
}

// LoadConfig loads configuration from a file, YAML or JSON based on
// extension.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing YAML config: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing JSON config: %w", err)
		}
	default:
		// Try YAML first, then JSON
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			if err := json.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("unable to parse config as YAML or JSON")
			}
		}
	}

	if len(cfg.Roots) == 0 {
		return nil, fmt.Errorf("config declares no search roots")
	}
	return &cfg, nil
}

// NewContext creates a fresh search context over the configured roots.
// Every call mints a new loader identity.
func (c *Config) NewContext(registry *typesys.Registry, opts ...ContextOption) *Context {
	return NewContext(registry, c.Roots, opts...)
}
