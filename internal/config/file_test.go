package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stillreel.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFile_Overrides(t *testing.T) {
	path := writeConfig(t, `
fps = 24.0
codec = "libx265"
crf = 20.0
preset = "veryslow"
lossless = true
exts = ["PNG", ".jpg"]
ffmpeg = "/opt/ffmpeg/bin/ffmpeg"
extra_args = ["-movflags", "+faststart"]
`)
	cfg := DefaultConfig()
	if err := LoadFile(&cfg, path); err != nil {
		t.Fatal(err)
	}
	if cfg.FPS != 24 {
		t.Errorf("FPS = %v, want 24", cfg.FPS)
	}
	if cfg.Codec != "libx265" {
		t.Errorf("Codec = %q", cfg.Codec)
	}
	if cfg.CRF != 20 {
		t.Errorf("CRF = %v", cfg.CRF)
	}
	if !cfg.Lossless {
		t.Error("Lossless not applied")
	}
	if len(cfg.Extensions) != 2 || cfg.Extensions[0] != "png" || cfg.Extensions[1] != "jpg" {
		t.Errorf("Extensions = %v, want normalized [png jpg]", cfg.Extensions)
	}
	if cfg.FfmpegPath != "/opt/ffmpeg/bin/ffmpeg" {
		t.Errorf("FfmpegPath = %q", cfg.FfmpegPath)
	}
	if len(cfg.ExtraArgs) != 2 {
		t.Errorf("ExtraArgs = %v", cfg.ExtraArgs)
	}
}

func TestLoadFile_AbsentKeysKeepDefaults(t *testing.T) {
	path := writeConfig(t, `preset = "medium"`)
	cfg := DefaultConfig()
	if err := LoadFile(&cfg, path); err != nil {
		t.Fatal(err)
	}
	if cfg.Preset != "medium" {
		t.Errorf("Preset = %q, want medium", cfg.Preset)
	}
	if cfg.FPS != 16 || cfg.Codec != "libx264" || cfg.CRF != CRFUnset {
		t.Error("unrelated defaults were disturbed")
	}
}

func TestLoadFile_UnknownKeyRejected(t *testing.T) {
	path := writeConfig(t, `framerate = 24.0`)
	cfg := DefaultConfig()
	if err := LoadFile(&cfg, path); err == nil {
		t.Fatal("unknown key must be rejected")
	}
}

func TestLoadFile_MissingFile(t *testing.T) {
	cfg := DefaultConfig()
	if err := LoadFile(&cfg, filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("missing file must error")
	}
}
