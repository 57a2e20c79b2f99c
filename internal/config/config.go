// Package config holds runtime configuration: defaults, TOML defaults-file
// loading, and validation.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// DefaultExtensions is the image extension set used when --exts is not
// given, lowercase without dots.
var DefaultExtensions = []string{"jpg", "jpeg", "png", "webp", "bmp", "tif", "tiff"}

// CRFUnset is the sentinel for "no CRF override"; the encode package
// substitutes the per-codec default.
const CRFUnset = -1

// Size is an explicit target resolution. The zero value means "not requested".
type Size struct {
	Width  int
	Height int
}

// Requested reports whether an explicit size was given.
func (s Size) Requested() bool { return s.Width != 0 || s.Height != 0 }

func (s Size) String() string {
	if !s.Requested() {
		return ""
	}
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Config holds all runtime settings for one invocation. It is populated by
// [DefaultConfig], optionally overlaid from a TOML defaults file, then
// mutated by CLI flags before being passed (by pointer) to packages that
// need it. Components never reach for ambient state; everything they need
// travels in here.
type Config struct {
	// Stitch paths.
	InputDir   string // Image folder to scan. Default: ".".
	OutputPath string // Video output path. Default: "output.mp4".

	// Encoder settings.
	FPS      float64 // Default: 16.
	Codec    string  // Default: "libx264".
	CRF      float64 // CRFUnset means "use codec default" (16 x264, 22 x265).
	Preset   string  // Default: "slow".
	PixFmt   string  // Empty means "codec/lossless default".
	Size     Size    // Zero means no explicit scaling.
	Lossless bool    // CRF 0 + yuv444p defaults (unless overridden).

	// Scanning.
	Recursive  bool
	Extensions []string // Lowercase, no dots. Default: DefaultExtensions.

	// Bounce selection. StartIndex/EndIndex are 1-based inclusive; zero
	// means unset. Name selection and index selection are exclusive.
	StartIndex int
	EndIndex   int
	FromName   string
	ToName     string

	// External encoder.
	FfmpegPath string   // Explicit ffmpeg binary; empty means look up PATH.
	ExtraArgs  []string // Raw ffmpeg args appended before the output path.

	// Behavior flags.
	DryRun bool

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
}

// DefaultConfig returns a Config with the stock settings: current directory
// input, output.mp4 at 16 fps, libx264 with the slow preset. Used as the
// base before file and flag overrides.
func DefaultConfig() Config {
	return Config{
		InputDir:   ".",
		OutputPath: "output.mp4",
		FPS:        16,
		Codec:      "libx264",
		CRF:        CRFUnset,
		Preset:     "slow",
		Extensions: append([]string(nil), DefaultExtensions...),
		ColorMode:  ColorAuto,
	}
}

// Validate checks field ranges that are independent of the filesystem:
// fps positivity, color mode, extension set, and the bounce selection
// pairing rules (paired flags must both be present, at most one selection
// style). Geometry is validated later by the geometry package so the error
// carries the filter context.
func (c *Config) Validate() error {
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %v", c.FPS)
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if len(c.Extensions) == 0 {
		return errors.New("extension filter must not be empty")
	}

	byName := c.FromName != "" || c.ToName != ""
	byIndex := c.StartIndex != 0 || c.EndIndex != 0
	if byName && byIndex {
		return errors.New("use either --start/--end or --from-name/--to-name, not both")
	}
	if byName && (c.FromName == "" || c.ToName == "") {
		return errors.New("--from-name and --to-name must be given together")
	}
	if byIndex && (c.StartIndex == 0 || c.EndIndex == 0) {
		return errors.New("--start and --end must be given together")
	}

	return nil
}

// ParseSize parses a "WxH" resolution string (case-insensitive separator).
// Structural errors (not two integer fields) are reported here; even-value
// validation happens in the geometry package.
func ParseSize(s string) (Size, error) {
	parts := strings.SplitN(strings.ToLower(strings.TrimSpace(s)), "x", 2)
	if len(parts) != 2 {
		return Size{}, fmt.Errorf("size must look like 1920x1080, got %q", s)
	}
	w, errW := strconv.Atoi(strings.TrimSpace(parts[0]))
	h, errH := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errW != nil || errH != nil {
		return Size{}, fmt.Errorf("size must look like 1920x1080, got %q", s)
	}
	return Size{Width: w, Height: h}, nil
}

// ParseExtensions normalizes a list of extension tokens: comma-separated
// items are split, entries are trimmed, lowercased, and stripped of leading
// dots, empties dropped. Returns nil when nothing usable remains.
func ParseExtensions(tokens []string) []string {
	var out []string
	for _, tok := range tokens {
		for _, part := range strings.Split(tok, ",") {
			e := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(part)), ".")
			if e != "" {
				out = append(out, e)
			}
		}
	}
	return out
}
