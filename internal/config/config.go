// Package config owns the optional bitctl configuration file.
//
// Ownership boundary:
// - TOML schema, defaults, and partial-override semantics
// - validation of converter limits before they reach bitfile
// - the commented template written by `bitctl config init`
//
// bit2bin never reads configuration; its behavior is fixed.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/danmuck/bitctl/internal/bitfile"
)

type Config struct {
	Limits LimitsConfig `toml:"limits"`
	Info   InfoConfig   `toml:"info"`
}

// LimitsConfig bounds converter buffer use.
type LimitsConfig struct {
	ChunkSize    int `toml:"chunk_size"`
	MaxMetaField int `toml:"max_meta_field"`
}

// InfoConfig shapes `bitctl info` output.
type InfoConfig struct {
	Labels          bool `toml:"labels"`
	TrimTrailingNUL bool `toml:"trim_trailing_nul"`
}

// Default returns the stock configuration.
func Default() Config {
	limits := bitfile.DefaultLimits()
	return Config{
		Limits: LimitsConfig{
			ChunkSize:    limits.ChunkSize,
			MaxMetaField: limits.MaxMetaField,
		},
		Info: InfoConfig{
			Labels:          true,
			TrimTrailingNUL: true,
		},
	}
}

// Load reads a TOML file over the defaults. Only keys present in the
// file override; absent keys keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw Config
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}

	if meta.IsDefined("limits", "chunk_size") {
		cfg.Limits.ChunkSize = raw.Limits.ChunkSize
	}
	if meta.IsDefined("limits", "max_meta_field") {
		cfg.Limits.MaxMetaField = raw.Limits.MaxMetaField
	}
	if meta.IsDefined("info", "labels") {
		cfg.Info.Labels = raw.Info.Labels
	}
	if meta.IsDefined("info", "trim_trailing_nul") {
		cfg.Info.TrimTrailingNUL = raw.Info.TrimTrailingNUL
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects limit values the converter cannot honor.
func Validate(cfg Config) error {
	if cfg.Limits.ChunkSize <= 0 {
		return fmt.Errorf("limits.chunk_size must be positive, got %d", cfg.Limits.ChunkSize)
	}
	if cfg.Limits.ChunkSize%4 != 0 {
		return fmt.Errorf("limits.chunk_size must be a multiple of 4, got %d", cfg.Limits.ChunkSize)
	}
	if cfg.Limits.MaxMetaField <= 0 {
		return fmt.Errorf("limits.max_meta_field must be positive, got %d", cfg.Limits.MaxMetaField)
	}
	return nil
}

// BitfileLimits converts the configured bounds to converter limits.
func (c Config) BitfileLimits() bitfile.Limits {
	return bitfile.Limits{
		ChunkSize:    c.Limits.ChunkSize,
		MaxMetaField: c.Limits.MaxMetaField,
	}
}
