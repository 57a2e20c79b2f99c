package encode

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// ExitError is returned when the external encoder exits nonzero. It carries
// the captured stderr verbatim for troubleshooting and the process exit
// code so main can propagate it.
type ExitError struct {
	Command  string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("ffmpeg failed (exit %d): %v", e.ExitCode, e.Err)
}

func (e *ExitError) Unwrap() error { return e.Err }

// Execute builds and runs the ffmpeg command for spec. When verbose is set,
// stderr is tee'd to os.Stderr in real time so encode progress stays
// visible; otherwise it is captured silently and only surfaced on failure.
// The invocation is awaited to completion; there is no internal timeout.
func Execute(ctx context.Context, spec Spec, verbose bool) error {
	args := Build(spec)

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)

	var stderrBuf bytes.Buffer
	if verbose {
		cmd.Stderr = io.MultiWriter(&stderrBuf, os.Stderr)
	} else {
		cmd.Stderr = &stderrBuf
	}

	err := cmd.Run()
	if err == nil {
		return nil
	}

	code := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.ExitCode()
	}
	return &ExitError{
		Command:  Render(args),
		ExitCode: code,
		Stderr:   stderrBuf.String(),
		Err:      err,
	}
}

// Render returns the shell-ish textual form of an argument list, quoting
// arguments containing whitespace. Used for dry-run output and diagnostics.
func Render(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		if strings.ContainsAny(a, " \t") {
			quoted[i] = `"` + a + `"`
		} else {
			quoted[i] = a
		}
	}
	return strings.Join(quoted, " ")
}
