// Package config manages drumcurate settings stored in ~/.drumcurate.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/umn-libraries/drumcurate/format"
)

const (
	// DefaultBaseURL is the DSpace instance behind DRUM.
	DefaultBaseURL = "https://conservancy.umn.edu"

	// DefaultPageSize is the number of bitstreams requested per page.
	DefaultPageSize = 250

	// DefaultTimeout bounds each repository request.
	DefaultTimeout = "30s"
)

// Config holds the settings shared by every drumcurate command.
type Config struct {
	// BaseURL is the repository root the REST API hangs off
	BaseURL string `yaml:"base_url" toml:"base_url" json:"base_url"`

	// PageSize is the bitstream page size (limit parameter)
	PageSize int `yaml:"page_size,omitempty" toml:"page_size,omitempty" json:"page_size,omitempty"`

	// Timeout is a Go duration string, e.g. "30s"
	Timeout string `yaml:"timeout,omitempty" toml:"timeout,omitempty" json:"timeout,omitempty"`

	// Publisher is the DataCite publisher name
	Publisher string `yaml:"publisher,omitempty" toml:"publisher,omitempty" json:"publisher,omitempty"`

	// OutputDir is where generated documents are written by default
	OutputDir string `yaml:"output_dir,omitempty" toml:"output_dir,omitempty" json:"output_dir,omitempty"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:   DefaultBaseURL,
		PageSize:  DefaultPageSize,
		Timeout:   DefaultTimeout,
		Publisher: format.DefaultPublisher,
		OutputDir: ".",
	}
}

// GetPageSize returns the page size with a default.
func (c *Config) GetPageSize() int {
	if c.PageSize > 0 {
		return c.PageSize
	}
	return DefaultPageSize
}

// TimeoutDuration parses Timeout, falling back to DefaultTimeout when unset.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	s := c.Timeout
	if s == "" {
		s = DefaultTimeout
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("parsing timeout %q: %w", s, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("timeout must be positive, got %q", s)
	}
	return d, nil
}

// configDirOverride holds a user-specified configuration directory.
// When empty, the default $HOME/.drumcurate is used.
var configDirOverride string

// SetDir overrides the default configuration directory.
func SetDir(dir string) {
	configDirOverride = dir
}

// Dir returns the drumcurate configuration directory.
func Dir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".drumcurate"), nil
}

// Path returns the default config file path.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the default config file. A missing file yields the defaults.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	cfg, err := LoadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads a YAML or TOML config file, chosen by extension. Values
// missing from the file keep their defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, err
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case ".yaml", ".yml", "":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file type: %s", path)
	}

	return cfg, nil
}

// Save writes the config to path, or to the default location when path
// is empty.
func (c *Config) Save(path string) error {
	if path == "" {
		var err error
		if path, err = Path(); err != nil {
			return err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	var data []byte
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		var b strings.Builder
		if err := toml.NewEncoder(&b).Encode(c); err != nil {
			return fmt.Errorf("marshaling config: %w", err)
		}
		data = []byte(b.String())
	} else {
		var err error
		if data, err = yaml.Marshal(c); err != nil {
			return fmt.Errorf("marshaling config: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
