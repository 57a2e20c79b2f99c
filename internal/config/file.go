package config

// This file implements the optional TOML defaults file (--config FILE).
// The file only overrides built-in defaults; CLI flags still win because
// they are applied after LoadFile during startup.

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// fileConfig mirrors the subset of Config that makes sense as persistent
// operator defaults. Pointer fields distinguish "absent" from zero values.
type fileConfig struct {
	FPS        *float64 `toml:"fps"`
	Codec      *string  `toml:"codec"`
	CRF        *float64 `toml:"crf"`
	Preset     *string  `toml:"preset"`
	PixFmt     *string  `toml:"pix_fmt"`
	Lossless   *bool    `toml:"lossless"`
	Recursive  *bool    `toml:"recursive"`
	Extensions []string `toml:"exts"`
	FfmpegPath *string  `toml:"ffmpeg"`
	ExtraArgs  []string `toml:"extra_args"`
	ColorMode  *string  `toml:"color"`
	LogFile    *string  `toml:"log_file"`
}

// LoadFile overlays cfg with values from the TOML file at path. Unknown
// keys are rejected so typos surface instead of silently doing nothing.
func LoadFile(cfg *Config, path string) error {
	contents, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	dec := toml.NewDecoder(bytes.NewReader(contents))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if fc.FPS != nil {
		cfg.FPS = *fc.FPS
	}
	if fc.Codec != nil {
		cfg.Codec = *fc.Codec
	}
	if fc.CRF != nil {
		cfg.CRF = *fc.CRF
	}
	if fc.Preset != nil {
		cfg.Preset = *fc.Preset
	}
	if fc.PixFmt != nil {
		cfg.PixFmt = *fc.PixFmt
	}
	if fc.Lossless != nil {
		cfg.Lossless = *fc.Lossless
	}
	if fc.Recursive != nil {
		cfg.Recursive = *fc.Recursive
	}
	if len(fc.Extensions) > 0 {
		cfg.Extensions = ParseExtensions(fc.Extensions)
	}
	if fc.FfmpegPath != nil {
		cfg.FfmpegPath = *fc.FfmpegPath
	}
	if len(fc.ExtraArgs) > 0 {
		cfg.ExtraArgs = append([]string(nil), fc.ExtraArgs...)
	}
	if fc.ColorMode != nil {
		cfg.ColorMode = ColorMode(*fc.ColorMode)
	}
	if fc.LogFile != nil {
		cfg.LogFile = *fc.LogFile
	}
	return nil
}
