package config

import (
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.FPS != 16 {
		t.Errorf("FPS = %v, want 16", cfg.FPS)
	}
	if cfg.Codec != "libx264" {
		t.Errorf("Codec = %q, want libx264", cfg.Codec)
	}
	if cfg.CRF != CRFUnset {
		t.Errorf("CRF = %v, want CRFUnset", cfg.CRF)
	}
	if cfg.Preset != "slow" {
		t.Errorf("Preset = %q, want slow", cfg.Preset)
	}
	if len(cfg.Extensions) != 7 {
		t.Errorf("Extensions = %v", cfg.Extensions)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults pass", func(c *Config) {}, false},
		{"zero fps", func(c *Config) { c.FPS = 0 }, true},
		{"negative fps", func(c *Config) { c.FPS = -1 }, true},
		{"bad color mode", func(c *Config) { c.ColorMode = "rainbow" }, true},
		{"empty extensions", func(c *Config) { c.Extensions = nil }, true},
		{"index pair", func(c *Config) { c.StartIndex, c.EndIndex = 1, 3 }, false},
		{"start without end", func(c *Config) { c.StartIndex = 1 }, true},
		{"end without start", func(c *Config) { c.EndIndex = 3 }, true},
		{"name pair", func(c *Config) { c.FromName, c.ToName = "a.png", "b.png" }, false},
		{"from without to", func(c *Config) { c.FromName = "a.png" }, true},
		{"mixed selection styles", func(c *Config) {
			c.StartIndex, c.EndIndex = 1, 2
			c.FromName, c.ToName = "a.png", "b.png"
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Size
		wantErr bool
	}{
		{"plain", "1920x1080", Size{1920, 1080}, false},
		{"uppercase separator", "1920X1080", Size{1920, 1080}, false},
		{"whitespace", " 640x480 ", Size{640, 480}, false},
		{"odd values pass structurally", "641x481", Size{641, 481}, false},
		{"missing separator", "1920", Size{}, true},
		{"non-numeric", "widexhigh", Size{}, true},
		{"empty", "", Size{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSize(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSize(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseSize(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseExtensions(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"comma list", []string{"jpg,png"}, []string{"jpg", "png"}},
		{"dots stripped", []string{".png", ".JPG"}, []string{"png", "jpg"}},
		{"mixed tokens", []string{"png", "jpg,webp"}, []string{"png", "jpg", "webp"}},
		{"empties dropped", []string{"", " , png , "}, []string{"png"}},
		{"nothing usable", []string{"", ","}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseExtensions(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("ParseExtensions(%v) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseExtensions(%v) = %v, want %v", tt.in, got, tt.want)
					break
				}
			}
		})
	}
}

func TestSize_Requested(t *testing.T) {
	if (Size{}).Requested() {
		t.Error("zero Size must not count as requested")
	}
	if !(Size{Width: 1920, Height: 1080}).Requested() {
		t.Error("explicit Size must count as requested")
	}
}
