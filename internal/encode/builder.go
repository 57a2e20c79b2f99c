package encode

import (
	"path/filepath"
	"strconv"
	"strings"
)

// Build constructs the complete ffmpeg argument slice for a Spec, starting
// with the binary itself. The skeleton is fixed: concat input, frame-rate
// hint, filter graph, codec section, compatibility tag, extra args, output.
func Build(spec Spec) []string {
	args := make([]string, 0, 24)

	args = append(args, spec.FfmpegPath, "-y")

	// Concat input. -safe 0 permits the absolute paths the manifest uses.
	args = append(args, "-f", "concat", "-safe", "0", "-i", spec.ManifestPath)

	// Output timebase hint matching the per-entry durations.
	args = append(args, "-r", formatFloat(spec.FPS))

	if spec.FilterGraph != "" {
		args = append(args, "-vf", spec.FilterGraph)
	}

	// Codec section. ProRes carries its own fixed profile and pixel format
	// and ignores CRF/preset, which are x264/x265 concepts.
	if spec.Codec == codecProRes {
		args = append(args,
			"-c:v", codecProRes,
			"-profile:v", proResProfile,
			"-pix_fmt", proResPixFmt,
		)
	} else {
		args = append(args,
			"-c:v", spec.Codec,
			"-crf", formatFloat(spec.CRF),
			"-preset", spec.Preset,
			"-pix_fmt", spec.PixFmt,
		)
	}

	// HEVC in MP4 needs the hvc1 tag for common players to pick it up.
	if strings.HasPrefix(spec.Codec, codecX265Prefix) &&
		strings.EqualFold(filepath.Ext(spec.OutputPath), ".mp4") {
		args = append(args, "-tag:v", hevcCompatVideoTag)
	}

	args = append(args, spec.ExtraArgs...)
	args = append(args, spec.OutputPath)

	return args
}

// formatFloat renders a float with the shortest exact representation, so
// whole numbers come out bare ("16", not "16.000000").
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
