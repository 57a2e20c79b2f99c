package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/backmassage/stillreel/internal/config"
	"github.com/backmassage/stillreel/internal/display"
	"github.com/backmassage/stillreel/internal/encode"
	"github.com/backmassage/stillreel/internal/pipeline"
)

func newStitchCommand(ctx *appContext) *cobra.Command {
	var (
		sizeFlag string
		extsFlag string
	)

	cmd := &cobra.Command{
		Use:   "stitch",
		Short: "Join images into a video with ffmpeg, alphabetically sorted",
		Long: "Join the images in a folder into one video, ordered by case-folded " +
			"filename (plain alphabetical, not numeric: \"frame10\" sorts before " +
			"\"frame2\"; zero-pad filenames for numeric order).",
		Args: cobra.NoArgs,
	}

	f := cmd.Flags()
	cfgDefaults := config.DefaultConfig()
	f.StringP("input", "i", cfgDefaults.InputDir, "Input folder")
	f.StringP("output", "o", cfgDefaults.OutputPath, "Output video path")
	f.Float64("fps", cfgDefaults.FPS, "Frames per second")
	f.Float64("crf", 0, "CRF quality, lower is better (default 16 for libx264, 22 for libx265)")
	f.String("preset", cfgDefaults.Preset, "Encoder preset (veryslow, slower, slow, medium, ...)")
	f.String("pix-fmt", "", "Pixel format (default depends on --lossless and codec)")
	f.StringVar(&sizeFlag, "size", "", "Target resolution, e.g. 1920x1080 (both values even)")
	f.String("codec", cfgDefaults.Codec, "Video codec (libx264, libx265, prores_ks, ...)")
	f.Bool("recursive", false, "Scan images recursively")
	f.StringVar(&extsFlag, "exts", strings.Join(config.DefaultExtensions, ","), "Comma-separated extensions")
	f.String("ffmpeg", "", "Path to the ffmpeg binary if not on PATH")
	f.Bool("dry-run", false, "Print the ffmpeg command without running it")
	f.Bool("lossless", false, "Lossless encode: CRF 0 and yuv444p unless overridden")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := ctx.load()
		if err != nil {
			return err
		}
		applyStitchFlags(cmd, &cfg, extsFlag)

		if sizeFlag != "" {
			size, err := config.ParseSize(sizeFlag)
			if err != nil {
				return err
			}
			cfg.Size = size
		}

		log, err := ctx.logger(&cfg)
		if err != nil {
			return err
		}
		defer log.Close()
		display.PrintBanner()

		runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := pipeline.RunStitch(runCtx, &cfg, log); err != nil {
			var exitErr *encode.ExitError
			if errors.As(err, &exitErr) {
				// Surface the encoder's diagnostics verbatim, then the
				// failing command for re-running by hand.
				fmt.Fprint(os.Stderr, exitErr.Stderr)
				log.Error("ffmpeg failed. Command was:")
				fmt.Fprintln(os.Stderr, exitErr.Command)
			}
			return err
		}
		return nil
	}

	return cmd
}

// applyStitchFlags copies changed stitch flags onto cfg, leaving file or
// built-in defaults alone for flags the user did not pass.
func applyStitchFlags(cmd *cobra.Command, cfg *config.Config, extsFlag string) {
	f := cmd.Flags()

	if f.Changed("input") {
		cfg.InputDir, _ = f.GetString("input")
	}
	if f.Changed("output") {
		cfg.OutputPath, _ = f.GetString("output")
	}
	if f.Changed("fps") {
		cfg.FPS, _ = f.GetFloat64("fps")
	}
	if f.Changed("crf") {
		cfg.CRF, _ = f.GetFloat64("crf")
	}
	if f.Changed("preset") {
		cfg.Preset, _ = f.GetString("preset")
	}
	if f.Changed("pix-fmt") {
		cfg.PixFmt, _ = f.GetString("pix-fmt")
	}
	if f.Changed("codec") {
		cfg.Codec, _ = f.GetString("codec")
	}
	if f.Changed("recursive") {
		cfg.Recursive, _ = f.GetBool("recursive")
	}
	if f.Changed("exts") {
		cfg.Extensions = config.ParseExtensions([]string{extsFlag})
	}
	if f.Changed("ffmpeg") {
		cfg.FfmpegPath, _ = f.GetString("ffmpeg")
	}
	if f.Changed("dry-run") {
		cfg.DryRun, _ = f.GetBool("dry-run")
	}
	if f.Changed("lossless") {
		cfg.Lossless, _ = f.GetBool("lossless")
	}
}
