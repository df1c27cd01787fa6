// File: config.go
// Title: Core Configuration Management Implementation
// Description: Implements the typed Config of the snacks tools and its
//              loading from TOML and YAML files with environment variable
//              overrides and struct validation.
// Author: msto63
// Version: v1.0.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-18 v1.0.0: Typed sections, envconfig overrides, validator rules

package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	mdwerrors "github.com/msto63/snacks/core/errors"
	mdwlog "github.com/msto63/snacks/core/log"
	"github.com/msto63/snacks/utils/operatorx"
)

// EnvPrefix prefixes every environment override, e.g. SNACKS_LOG_LEVEL
const EnvPrefix = "SNACKS"

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// LogConfig controls the diagnostic logger
type LogConfig struct {
	Level  string `toml:"level" yaml:"level" validate:"oneof=debug info warn error"`
	Format string `toml:"format" yaml:"format" validate:"oneof=json console"`
}

// OutputConfig controls how command results are printed
type OutputConfig struct {
	Format    string `toml:"format" yaml:"format" validate:"oneof=text json yaml"`
	Color     string `toml:"color" yaml:"color" validate:"oneof=auto always never"`
	Precision int    `toml:"precision" yaml:"precision" validate:"gte=-1,lte=17"`
}

// OperatorsConfig controls the operator registry
type OperatorsConfig struct {
	Modulo string `toml:"modulo" yaml:"modulo" validate:"oneof=remainder division"`
}

// AnglesConfig controls the circular statistics commands
type AnglesConfig struct {
	Ring float64 `toml:"ring" yaml:"ring" validate:"ring"`
}

// Config is the complete snacks configuration.
//
// Environment variables override file values. Their names are the prefix,
// section and field joined by underscores: SNACKS_LOG_LEVEL,
// SNACKS_OUTPUT_FORMAT, SNACKS_OPERATORS_MODULO, SNACKS_ANGLES_RING.
type Config struct {
	Log       LogConfig       `toml:"log" yaml:"log"`
	Output    OutputConfig    `toml:"output" yaml:"output"`
	Operators OperatorsConfig `toml:"operators" yaml:"operators"`
	Angles    AnglesConfig    `toml:"angles" yaml:"angles"`

	path string
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Log:       LogConfig{Level: "warn", Format: "console"},
		Output:    OutputConfig{Format: "text", Color: "auto", Precision: -1},
		Operators: OperatorsConfig{Modulo: operatorx.DefaultModuloMode.String()},
		Angles:    AnglesConfig{Ring: 360},
	}
}

// Load reads a configuration file, applies environment overrides and
// validates the result. Keys missing from the file keep their defaults.
func Load(filePath string) (*Config, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, mdwerrors.InvalidInput(mdwerrors.ModuleConfig, "load", filePath, "config file path")
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, mdwerrors.NewErrorBuilder(mdwerrors.ModuleConfig).
			Operation("load").
			Code(mdwerrors.CodeConfigNotFound).
			Messagef("config file not found: %s", filePath).
			Detail("filePath", filePath).
			Build()
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, mdwerrors.NewErrorBuilder(mdwerrors.ModuleConfig).
			Operation("read").
			Message("failed to read config file").
			Cause(err).
			Detail("filePath", filePath).
			Build()
	}

	cfg, err := LoadFromString(string(content), detectFormat(filePath))
	if err != nil {
		return nil, err
	}
	cfg.path = filePath
	return cfg, nil
}

// LoadFromString parses configuration content, applies environment
// overrides and validates the result
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	cfg := Default()
	if err := decode([]byte(content), format, cfg); err != nil {
		return nil, err
	}
	return finish(cfg)
}

// LoadFromEnv returns the defaults with environment overrides applied
func LoadFromEnv() (*Config, error) {
	return finish(Default())
}

// LoadOrDefault loads filePath when it is set, otherwise the first file
// found by discovery, otherwise the defaults. Environment overrides apply
// in every case.
func LoadOrDefault(filePath string) (*Config, error) {
	if filePath != "" {
		return Load(filePath)
	}
	if found, ok := FindConfigFile(DefaultDiscoveryOptions()); ok {
		return Load(found)
	}
	return LoadFromEnv()
}

func finish(cfg *Config) (*Config, error) {
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, mdwerrors.NewErrorBuilder(mdwerrors.ModuleConfig).
			Operation("env").
			Message("invalid environment override").
			Cause(err).
			Detail("prefix", EnvPrefix).
			Build()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// detectFormat determines the configuration format from file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// decode parses content into cfg and rejects unknown keys
func decode(content []byte, format Format, cfg *Config) error {
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && err != io.EOF {
			return decodeError(err, format)
		}
	default:
		md, err := toml.Decode(string(content), cfg)
		if err != nil {
			return decodeError(err, format)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return mdwerrors.NewErrorBuilder(mdwerrors.ModuleConfig).
				Operation("decode").
				Messagef("unknown config keys: %s", strings.Join(keys, ", ")).
				Detail("keys", keys).
				Detail("format", format.String()).
				Build()
		}
	}
	return nil
}

func decodeError(err error, format Format) error {
	return mdwerrors.NewErrorBuilder(mdwerrors.ModuleConfig).
		Operation("load").
		Message("failed to parse config").
		Cause(err).
		Detail("format", format.String()).
		Build()
}

// Path returns the file the configuration was loaded from, if any
func (c *Config) Path() string {
	return c.path
}

// ModuloMode returns the configured modulo mode
func (c *Config) ModuloMode() operatorx.ModuloMode {
	mode, err := operatorx.ParseModuloMode(c.Operators.Modulo)
	if err != nil {
		return operatorx.DefaultModuloMode
	}
	return mode
}

// Registry builds an operator registry for the configured modulo mode.
// The default mode reuses the process-wide registry.
func (c *Config) Registry() *operatorx.Registry {
	mode := c.ModuloMode()
	if mode == operatorx.Default().ModuloMode() {
		return operatorx.Default()
	}
	return operatorx.MustNewRegistry(operatorx.WithModuloMode(mode))
}

// Ring returns the default ring size for angle commands
func (c *Config) Ring() float64 {
	return c.Angles.Ring
}

// Logger builds a logger from the log section writing to w
func (c *Config) Logger(w io.Writer) *mdwlog.Logger {
	level, err := mdwlog.ParseLevel(c.Log.Level)
	if err != nil {
		level = mdwlog.DefaultLevel()
	}
	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: mdwlog.ParseFormat(c.Log.Format),
		Output: w,
		Name:   "snacks",
	})
}
