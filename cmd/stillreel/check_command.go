package main

import (
	"github.com/spf13/cobra"

	"github.com/backmassage/stillreel/internal/check"
)

func newCheckCommand(ctx *appContext) *cobra.Command {
	var ffmpegFlag string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify ffmpeg availability, the concat demuxer, and usable encoders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.load()
			if err != nil {
				return err
			}
			if ffmpegFlag != "" {
				cfg.FfmpegPath = ffmpegFlag
			}

			log, err := ctx.logger(&cfg)
			if err != nil {
				return err
			}
			defer log.Close()

			check.RunCheck(cfg.FfmpegPath, log)
			return nil
		},
	}

	cmd.Flags().StringVar(&ffmpegFlag, "ffmpeg", "", "Path to the ffmpeg binary if not on PATH")
	return cmd
}
