// Package timing builds the frame timing list and serializes it to the
// concat manifest consumed by ffmpeg's concat demuxer.
package timing

import (
	"fmt"

	"github.com/backmassage/stillreel/internal/scan"
)

// Entry pairs an image with its display duration in seconds.
type Entry struct {
	Image    scan.Entry
	Duration float64
}

// List is the ordered timing list for one encode. For a sequence of N
// images it holds N+1 entries: each image once at 1/fps, then the last
// image repeated. The concat demuxer schedules each entry's start from the
// previous entry's duration, so without the repeat the true last frame
// would be cut short; the repeated entry exists only to close that gap and
// its own duration is never written to the manifest.
type List []Entry

// Build constructs the timing list for images at the given frame rate.
// fps must be positive and images non-empty; both are validated upstream.
func Build(images []scan.Entry, fps float64) List {
	if len(images) == 0 || fps <= 0 {
		return nil
	}
	frame := 1 / fps
	list := make(List, 0, len(images)+1)
	for _, img := range images {
		list = append(list, Entry{Image: img, Duration: frame})
	}
	list = append(list, Entry{Image: images[len(images)-1], Duration: frame})
	return list
}

// TotalDuration returns the video length in seconds implied by the list:
// every entry's duration counts, including the repeated last frame.
func (l List) TotalDuration() float64 {
	var total float64
	for _, e := range l {
		total += e.Duration
	}
	return total
}

// Frames returns the number of distinct frame slots (excluding the
// repeated bookkeeping entry).
func (l List) Frames() int {
	if len(l) == 0 {
		return 0
	}
	return len(l) - 1
}

func (e Entry) String() string {
	return fmt.Sprintf("%s (%gs)", e.Image.Name, e.Duration)
}
