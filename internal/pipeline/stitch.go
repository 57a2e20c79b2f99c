package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/backmassage/stillreel/internal/check"
	"github.com/backmassage/stillreel/internal/config"
	"github.com/backmassage/stillreel/internal/display"
	"github.com/backmassage/stillreel/internal/encode"
	"github.com/backmassage/stillreel/internal/geometry"
	"github.com/backmassage/stillreel/internal/logging"
	"github.com/backmassage/stillreel/internal/scan"
	"github.com/backmassage/stillreel/internal/timing"
)

// dryRunManifestPath stands in for the temp manifest in dry-run output;
// dry-run never writes the manifest, so there is no real path to show.
const dryRunManifestPath = "<concat-list>"

// RunStitch is the stitch entry point: validate → scan → plan → manifest →
// encode. In dry-run mode the composed command is rendered and nothing
// touches the filesystem beyond the read-only scan.
func RunStitch(ctx context.Context, cfg *config.Config, log *logging.Logger) error {
	if err := requireDir(cfg.InputDir); err != nil {
		return err
	}

	// Geometry is validated before any further I/O so a bad --size fails
	// fast, and before ffmpeg resolution so offline dry runs of the filter
	// still error on malformed sizes.
	filterGraph, err := geometry.Plan(cfg.Size)
	if err != nil {
		return err
	}

	ffmpegPath, err := check.ResolveFfmpeg(cfg.FfmpegPath)
	if err != nil {
		return err
	}

	entries, err := scan.Scan(cfg.InputDir, cfg.Extensions, cfg.Recursive)
	if err != nil {
		return err
	}

	list := timing.Build(entries, cfg.FPS)
	log.Debug("Scanned %d images, video length %s",
		list.Frames(), display.FormatSeconds(list.TotalDuration()))

	if cfg.DryRun {
		spec := encode.NewSpec(cfg, dryRunManifestPath)
		spec.FfmpegPath = ffmpegPath
		spec.FilterGraph = filterGraph

		log.Plan("DRY RUN — command not executed")
		fmt.Println(display.RenderTable(
			[]string{"Setting", "Value"},
			[][]string{
				{"Images", fmt.Sprintf("%d", list.Frames())},
				{"Duration", display.FormatSeconds(list.TotalDuration())},
				{"FPS", fmt.Sprintf("%g", spec.FPS)},
				{"Codec", spec.Codec},
				{"CRF", fmt.Sprintf("%g", spec.CRF)},
				{"Preset", spec.Preset},
				{"Pixel format", spec.PixFmt},
				{"Filter", spec.FilterGraph},
				{"Output", spec.OutputPath},
			},
		))
		fmt.Println(encode.Render(encode.Build(spec)))
		return nil
	}

	tmpDir, err := os.MkdirTemp("", "stillreel-")
	if err != nil {
		return &timing.WriteError{Path: os.TempDir(), Err: err}
	}
	defer os.RemoveAll(tmpDir)

	manifestPath, err := list.WriteFile(tmpDir)
	if err != nil {
		return err
	}

	spec := encode.NewSpec(cfg, manifestPath)
	spec.FfmpegPath = ffmpegPath
	spec.FilterGraph = filterGraph

	log.Info("Found %d images. Encoding to %s ...", list.Frames(), cfg.OutputPath)
	log.Debug("%s", encode.Render(encode.Build(spec)))

	if err := encode.Execute(ctx, spec, cfg.Verbose); err != nil {
		return err
	}

	if info, statErr := os.Stat(cfg.OutputPath); statErr == nil {
		log.Success("Done. Wrote %s (%s)", cfg.OutputPath, display.FormatBytes(info.Size()))
	} else {
		log.Success("Done. Wrote %s", cfg.OutputPath)
	}
	return nil
}

// requireDir fails when path does not exist or is not a directory.
func requireDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("input folder does not exist: %s", path)
	}
	if !info.IsDir() {
		return fmt.Errorf("input path is not a directory: %s", path)
	}
	return nil
}
