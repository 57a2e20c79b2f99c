package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/backmassage/stillreel/internal/config"
	"github.com/backmassage/stillreel/internal/logging"
)

// appContext carries the global flag values shared by all subcommands and
// builds the per-invocation Config and Logger from them.
type appContext struct {
	configFile string
	colorMode  string
	logFile    string
	verbose    bool
}

// load returns the base Config: built-in defaults, overlaid with the TOML
// defaults file when one was given, then the global display/logging flags.
// Subcommands apply their own flags on top before validation.
func (a *appContext) load() (config.Config, error) {
	cfg := config.DefaultConfig()
	if a.configFile != "" {
		if err := config.LoadFile(&cfg, a.configFile); err != nil {
			return config.Config{}, err
		}
	}
	if a.colorMode != "" {
		cfg.ColorMode = config.ColorMode(a.colorMode)
	}
	if a.logFile != "" {
		cfg.LogFile = a.logFile
	}
	cfg.Verbose = a.verbose
	return cfg, nil
}

// logger validates cfg and opens the logger for it.
func (a *appContext) logger(cfg *config.Config) (*logging.Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return logging.NewLogger(cfg)
}

func newRootCommand() *cobra.Command {
	ctx := &appContext{}

	rootCmd := &cobra.Command{
		Use:           "stillreel",
		Short:         "Stitch image sequences into video and mirror segments for bounce loops",
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&ctx.configFile, "config", "c", "", "TOML defaults file")
	pf.StringVar(&ctx.colorMode, "color", "", "Color output: auto, always or never")
	pf.StringVar(&ctx.logFile, "log-file", "", "Also append log lines to this file")
	pf.BoolVarP(&ctx.verbose, "verbose", "v", false, "Verbose output (ffmpeg stderr, debug lines)")

	rootCmd.AddCommand(newStitchCommand(ctx))
	rootCmd.AddCommand(newBounceCommand(ctx))
	rootCmd.AddCommand(newCheckCommand(ctx))

	return rootCmd
}
