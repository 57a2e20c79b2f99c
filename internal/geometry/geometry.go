// Package geometry derives the ffmpeg scale filter for an encode: either an
// even-dimension correction or an explicit lanczos resize, never both.
package geometry

import (
	"fmt"

	"github.com/backmassage/stillreel/internal/config"
)

// evenFilter rounds both dimensions up to the nearest even integer.
// Chroma-subsampled pixel formats (yuv420p and friends) reject odd sizes.
const evenFilter = "scale=ceil(iw/2)*2:ceil(ih/2)*2"

// InvalidSizeError reports a malformed or odd-valued requested size. It is
// raised before any file I/O happens.
type InvalidSizeError struct {
	Size   config.Size
	Reason string
}

func (e *InvalidSizeError) Error() string {
	return fmt.Sprintf("invalid size %s: %s", e.Size, e.Reason)
}

// Plan returns the -vf filter string for the requested size. With no
// explicit size, only the even-dimension correction is emitted. With an
// explicit size, both components must be positive and even (the exact-size
// lanczos scale then satisfies the even requirement on its own).
func Plan(size config.Size) (string, error) {
	if !size.Requested() {
		return evenFilter, nil
	}
	if size.Width <= 0 || size.Height <= 0 {
		return "", &InvalidSizeError{Size: size, Reason: "width and height must be positive"}
	}
	if size.Width%2 != 0 || size.Height%2 != 0 {
		return "", &InvalidSizeError{Size: size, Reason: "width and height must be even"}
	}
	return fmt.Sprintf("scale=%d:%d:flags=lanczos", size.Width, size.Height), nil
}
