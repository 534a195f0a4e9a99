// Package config loads CLI defaults from an optional YAML or JSON file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/plangen/internal/logging"
	"github.com/aretw0/plangen/pkg/encoding"
)

// DefaultPath is read when no --config flag is given.
const DefaultPath = "plangen.yaml"

// Config holds the settings shared by every command.
type Config struct {
	Format   string `mapstructure:"format" yaml:"format" json:"format"`
	Mode     string `mapstructure:"mode" yaml:"mode" json:"mode"`
	LogLevel string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	Listen   string `mapstructure:"listen" yaml:"listen" json:"listen"`
	// MaxSize caps the size parameter accepted by the HTTP and MCP servers.
	MaxSize int `mapstructure:"max_size" yaml:"max_size" json:"max_size"`
}

// DefaultMaxSize is the largest size served over HTTP and MCP unless configured.
const DefaultMaxSize = 20

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Format:   string(encoding.FormatPartition),
		Mode:     string(encoding.ModePPLTL),
		LogLevel: "info",
		Listen:   ":8080",
		MaxSize:  DefaultMaxSize,
	}
}

// Load reads path over the defaults. A missing file yields the defaults
// unless required is set.
func Load(path string, required bool) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	raw := map[string]any{}
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &raw); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return cfg, err
	}
	if err := dec.Decode(raw); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks that format, mode and log level name known values and that
// max_size is not negative.
func (c Config) Validate() error {
	if c.MaxSize < 0 {
		return fmt.Errorf("max_size must not be negative, got %d", c.MaxSize)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if _, err := encoding.ParseFormat(c.Format); err != nil {
		return err
	}
	if _, err := encoding.ParseMode(c.Mode); err != nil {
		return err
	}
	return nil
}
