// File: pkg/describe/config.go
package describe

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the optional file-based defaults. Command-line exclusion
// patterns are appended after the configured ones, and a command-line size
// limit overrides the configured one.
type Config struct {
	Exclude       []string `yaml:"exclude"`
	MaxFileSizeKB int      `yaml:"max_file_size_kb"`
}

// DefaultConfig returns an empty configuration: no exclusions, no size limit.
func DefaultConfig() *Config {
	return &Config{Exclude: []string{}}
}

// LoadConfig reads a YAML configuration from path. A missing file yields
// the default configuration; a malformed file is an error.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	if cfg.Exclude == nil {
		cfg.Exclude = []string{}
	}

	return &cfg, nil
}
