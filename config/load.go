// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a config file encoding.
type Format int

const (
	// TOML is selected by a ".toml" extension.
	TOML Format = iota
	// YAML is selected by ".yaml" or ".yml".
	YAML
)

// FormatFor picks the decoder from the file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return 0, fmt.Errorf("%q: %w", path, ErrUnsupportedFormat)
}

// Load reads path over Default() and validates the result. Keys absent from
// the file keep their default; unknown keys are rejected.
func Load(path string) (Config, error) {
	format, err := FormatFor(path)
	if err != nil {
		return Config{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f, format)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads r in the given format over Default() and validates the result.
func Decode(r io.Reader, format Format) (Config, error) {
	cfg := Default()
	switch format {
	case TOML:
		md, err := toml.NewDecoder(r).Decode(&cfg)
		if err != nil {
			return Config{}, fmt.Errorf("config: toml: %w", err)
		}
		if extra := md.Undecoded(); len(extra) > 0 {
			return Config{}, fmt.Errorf("unknown keys %v: %w", extra, ErrInvalidConfig)
		}
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		// An empty document leaves the defaults in place.
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("config: yaml: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("format %d: %w", int(format), ErrUnsupportedFormat)
	}

	cfg.expandPaths()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
