// Package config loads the settings for the demonstrations.
//
// Settings come from three layers, each overriding the one before:
//
//  1. Defaults (see Default).
//  2. An optional file. The format follows the extension: .yaml and .yml
//     are YAML, anything else is TOML.
//  3. Environment variables prefixed with PITFALLS_.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/zeebo/errs"
	"gopkg.in/yaml.v3"

	"github.com/calebcase/pitfalls/registration"
)

// Error is the class for configuration errors.
var Error = errs.Class("config")

// DefaultNotesFile is the notes path used when nothing overrides it.
const DefaultNotesFile = "notes.txt"

// Format is a configuration file format.
type Format int

// Formats.
const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// DetectFormat returns the format for path based on its extension.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Config is the set of tunable values.
type Config struct {
	// NotesFile is read by the exception demonstration.
	NotesFile string `toml:"notes_file" yaml:"notes_file" env:"NOTES_FILE"`

	// MinimumAge is the youngest age accepted at registration.
	MinimumAge int `toml:"minimum_age" yaml:"minimum_age" env:"MINIMUM_AGE"`

	// DefaultQuotient is substituted for a division by zero.
	DefaultQuotient int `toml:"default_quotient" yaml:"default_quotient" env:"DEFAULT_QUOTIENT"`
}

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "PITFALLS_"

// Default returns the built in configuration.
func Default() Config {
	return Config{
		NotesFile:       DefaultNotesFile,
		MinimumAge:      registration.DefaultMinimumAge,
		DefaultQuotient: 0,
	}
}

// Policy returns the registration rules described by c.
func (c Config) Policy() registration.Policy {
	return registration.Policy{
		MinimumAge: c.MinimumAge,
	}
}

// Validate returns an error if c cannot be used.
func (c Config) Validate() error {
	var group errs.Group

	if strings.TrimSpace(c.NotesFile) == "" {
		group.Add(Error.New("notes_file must not be empty"))
	}

	if c.MinimumAge < 0 {
		group.Add(Error.New("minimum_age must not be negative: %d", c.MinimumAge))
	}

	return group.Err()
}

// Load returns the defaults overlaid with the file at path (skipped when path
// is empty) and then the environment.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		err := LoadFile(path, &cfg)
		if err != nil {
			return Config{}, err
		}
	}

	err := env.ParseWithOptions(&cfg, env.Options{
		Prefix: EnvPrefix,
	})
	if err != nil {
		return Config{}, Error.Wrap(err)
	}

	err = cfg.Validate()
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadFile decodes the file at path into cfg. Keys absent from the file
// leave cfg unchanged.
func LoadFile(path string, cfg *Config) (err error) {
	defer Error.WrapP(&err)

	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	switch DetectFormat(path) {
	case FormatYAML:
		err = yaml.Unmarshal(content, cfg)
		if err != nil {
			return errs.New("yaml parse %s: %v", path, err)
		}
	default:
		_, err = toml.Decode(string(content), cfg)
		if err != nil {
			return errs.New("toml parse %s: %v", path, err)
		}
	}

	return nil
}
