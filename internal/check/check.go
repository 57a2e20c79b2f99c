// Package check provides system diagnostics (the check subcommand) and
// pre-encode validation of the external ffmpeg binary.
package check

import (
	"errors"
	"os/exec"
	"strings"
)

// ErrFfmpegNotFound is returned when no usable ffmpeg binary can be
// resolved from the explicit path or PATH.
var ErrFfmpegNotFound = errors.New("ffmpeg not found on PATH (install ffmpeg or pass --ffmpeg PATH)")

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// ResolveFfmpeg returns the ffmpeg binary to invoke: the explicit path when
// given, otherwise the PATH lookup result. Returns ErrFfmpegNotFound when
// neither yields a usable binary.
func ResolveFfmpeg(explicit string) (string, error) {
	if explicit != "" {
		path, err := exec.LookPath(explicit)
		if err != nil {
			return "", ErrFfmpegNotFound
		}
		return path, nil
	}
	path, err := exec.LookPath("ffmpeg")
	if err != nil {
		return "", ErrFfmpegNotFound
	}
	return path, nil
}

// RunCheck runs the interactive diagnostics flow: ffmpeg presence and
// version, concat demuxer availability, and the encoders the stitcher can
// target. Informational only; it does not stop on failure.
func RunCheck(ffmpegPath string, log Logger) {
	log.Info("=== System Check ===")

	path, err := ResolveFfmpeg(ffmpegPath)
	if err != nil {
		log.Error("ffmpeg not found")
		return
	}
	checkVersion(path, log)
	checkDemuxer(path, log)
	checkEncoders(path, log)
}

// checkVersion logs the first line of `ffmpeg -version`.
func checkVersion(path string, log Logger) {
	out, err := exec.Command(path, "-version").Output()
	if err != nil {
		log.Warn("ffmpeg found but -version failed: %v", err)
		return
	}
	firstLine := strings.TrimSpace(string(out))
	if idx := strings.Index(firstLine, "\n"); idx > 0 {
		firstLine = firstLine[:idx]
	}
	log.Success("ffmpeg: %s", firstLine)
}

// checkDemuxer verifies the concat demuxer is compiled in.
func checkDemuxer(path string, log Logger) {
	out, err := exec.Command(path, "-hide_banner", "-demuxers").Output()
	if err != nil {
		log.Warn("Could not list demuxers: %v", err)
		return
	}
	for _, line := range strings.Split(string(out), "\n") {
		if strings.Contains(line, " concat ") || strings.HasSuffix(strings.TrimSpace(line), " concat") {
			log.Success("concat demuxer available")
			return
		}
	}
	log.Error("concat demuxer missing from this ffmpeg build")
}

// checkEncoders lists the still-image-friendly video encoders.
func checkEncoders(path string, log Logger) {
	log.Info("Video encoders:")
	out, err := exec.Command(path, "-hide_banner", "-encoders").Output()
	if err != nil {
		log.Warn("Could not list encoders: %v", err)
		return
	}
	for _, line := range strings.Split(string(out), "\n") {
		lower := strings.ToLower(line)
		if strings.Contains(lower, "libx264") ||
			strings.Contains(lower, "libx265") ||
			strings.Contains(lower, "prores") {
			log.Info("  %s", strings.TrimSpace(line))
		}
	}
}
