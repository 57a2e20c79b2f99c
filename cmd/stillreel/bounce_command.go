package main

import (
	"github.com/spf13/cobra"

	"github.com/backmassage/stillreel/internal/config"
	"github.com/backmassage/stillreel/internal/display"
	"github.com/backmassage/stillreel/internal/pipeline"
)

func newBounceCommand(ctx *appContext) *cobra.Command {
	var extsFlag []string

	cmd := &cobra.Command{
		Use:   "bounce",
		Short: "Mirror a segment of an image sequence without doubling the end frame",
		Long: "Copy the frames of a segment in reverse order (excluding the end " +
			"frame) next to the originals, named <end-stem>_001.<ext> and up, so " +
			"the alphabetical sequence plays forward then backward. Segment " +
			"bounds follow the same alphabetical ordering as stitch; without a " +
			"selection the full sequence is mirrored. Repeat runs pick a fresh " +
			"suffix block instead of overwriting earlier copies.",
		Args: cobra.NoArgs,
	}

	f := cmd.Flags()
	f.StringP("input", "i", ".", "Image folder")
	f.Int("start", 0, "Segment start index (1-based, alphabetical order)")
	f.Int("end", 0, "Segment end index (1-based, inclusive)")
	f.String("from-name", "", "Segment start filename (must exist in the sequence)")
	f.String("to-name", "", "Segment end filename (must exist in the sequence)")
	f.StringSliceVar(&extsFlag, "exts", nil, "Extension filter (e.g. --exts png,jpg); default common image set")
	f.Bool("dry-run", false, "Print the copy plan without creating files")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := ctx.load()
		if err != nil {
			return err
		}

		cfg.InputDir, _ = f.GetString("input")
		cfg.StartIndex, _ = f.GetInt("start")
		cfg.EndIndex, _ = f.GetInt("end")
		cfg.FromName, _ = f.GetString("from-name")
		cfg.ToName, _ = f.GetString("to-name")
		cfg.DryRun, _ = f.GetBool("dry-run")
		if len(extsFlag) > 0 {
			cfg.Extensions = config.ParseExtensions(extsFlag)
		}

		log, err := ctx.logger(&cfg)
		if err != nil {
			return err
		}
		defer log.Close()
		display.PrintBanner()

		return pipeline.RunBounce(&cfg, log)
	}

	return cmd
}
