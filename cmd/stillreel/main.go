// Command stillreel turns ordered still-image sequences into video via
// ffmpeg's concat demuxer (stitch) and mirrors sequence segments on disk
// for a forward-then-backward playback effect (bounce).
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/backmassage/stillreel/internal/encode"
)

// version and commit are set at build time via -ldflags (e.g. Makefile).
var (
	version = "1.0.0-dev"
	commit  = "unknown"
)

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "stillreel: %v\n", err)

		// Propagate the encoder's own exit code when it failed; every
		// other failure is exit 1.
		var exitErr *encode.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode > 0 {
			os.Exit(exitErr.ExitCode)
		}
		os.Exit(1)
	}
}
