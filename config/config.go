// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration of the graphics device
// layer: capability toggles and logging, read from a TOML or YAML
// file and overridden by environment variables.
package config

import (
	"encoding"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"cogentcore.org/gdevice/base/errors"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Toggle controls an optional driver capability.
// The zero value leaves the decision to capability probing.
type Toggle int32

const (
	// Auto uses the capability when the driver supports it.
	Auto Toggle = iota

	// Disabled forces the capability off regardless of driver support.
	Disabled
)

// String returns the config file spelling of the toggle.
func (tg Toggle) String() string {
	if tg == Disabled {
		return "disabled"
	}
	return "auto"
}

// MarshalText implements [encoding.TextMarshaler].
func (tg Toggle) MarshalText() ([]byte, error) {
	return []byte(tg.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (tg *Toggle) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "", "auto", "enabled":
		*tg = Auto
	case "disabled", "off":
		*tg = Disabled
	default:
		return fmt.Errorf("config: invalid toggle value %q (want auto or disabled)", text)
	}
	return nil
}

// Config is the device layer configuration.
type Config struct {

	// ClipControl toggles clip-space origin and depth-range control.
	ClipControl Toggle `toml:"clip_control" yaml:"clip_control" env:"GDEVICE_CLIP_CONTROL"`

	// ImageUnit toggles image load/store units.
	ImageUnit Toggle `toml:"image_unit" yaml:"image_unit" env:"GDEVICE_IMAGE_UNIT"`

	// ShaderStorage toggles shader storage buffers.
	ShaderStorage Toggle `toml:"shader_storage" yaml:"shader_storage" env:"GDEVICE_SHADER_STORAGE"`

	// Anisotropy toggles anisotropic texture filtering.
	Anisotropy Toggle `toml:"anisotropy" yaml:"anisotropy" env:"GDEVICE_ANISOTROPY"`

	// Debug installs the driver debug message callback.
	Debug bool `toml:"debug" yaml:"debug" env:"GDEVICE_DEBUG"`

	// LogLevel is the slog level name: debug, info, warn or error.
	LogLevel string `toml:"log_level" yaml:"log_level" env:"GDEVICE_LOG_LEVEL"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{LogLevel: "info"}
}

// DefaultPath returns the path of the user config file,
// ~/.config/gdevice/config.toml.
func DefaultPath() (string, error) {
	return homedir.Expand(filepath.Join("~", ".config", "gdevice", "config.toml"))
}

// Open reads the config file at path into cfg. The format is chosen
// by extension: .yaml and .yml are YAML, everything else is TOML.
// A leading ~ in path is expanded to the home directory.
func (cfg *Config) Open(path string) error {
	path, err := homedir.Expand(path)
	if err != nil {
		return err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, cfg)
	default:
		err = toml.Unmarshal(b, cfg)
	}
	if err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	return nil
}

// Save writes cfg to path as TOML.
func (cfg *Config) Save(path string) error {
	path, err := homedir.Expand(path)
	if err != nil {
		return err
	}
	b, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// ApplyEnv overrides fields of cfg from the environment variables
// named in their env tags, looked up with lookup
// (typically [os.LookupEnv]).
func (cfg *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	var errs []error
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()
	for i := range t.NumField() {
		name := t.Field(i).Tag.Get("env")
		if name == "" {
			continue
		}
		s, ok := lookup(name)
		if !ok {
			continue
		}
		if err := setField(v.Field(i), s); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

// setField sets fv from the text s.
func setField(fv reflect.Value, s string) error {
	if tu, ok := fv.Addr().Interface().(encoding.TextUnmarshaler); ok {
		return tu.UnmarshalText([]byte(s))
	}
	switch fv.Kind() {
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		fv.SetBool(b)
	case reflect.String:
		fv.SetString(s)
	default:
		return fmt.Errorf("unsupported field type %s", fv.Type())
	}
	return nil
}

// Load returns the configuration from the file at path, or from
// [DefaultPath] if path is empty, followed by the environment.
// A missing default file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	if err := cfg.Open(path); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}
