package timing

// Manifest serialization for the ffmpeg concat demuxer.
//
// Format, one pair of directives per frame:
//
//	file '<absolute forward-slash path>'
//	duration <decimal seconds>
//
// followed by one final bare `file` line repeating the last image (the
// demuxer ignores the last entry's duration unless another entry follows).
// Paths are absolute and slash-normalized so the same manifest parses on
// Windows and POSIX builds of ffmpeg, and the file is written as UTF-8
// with a byte-order mark so non-ASCII filenames survive on all platforms.

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// utf8BOM is prepended to the manifest so ffmpeg treats it as UTF-8
// regardless of platform locale.
const utf8BOM = "\uFEFF"

// WriteError is returned when the manifest cannot be written. No encoder
// invocation is attempted after it.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write concat manifest %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Render returns the manifest text for the list. The last entry is emitted
// as a bare `file` line without a duration, per the demuxer convention.
func (l List) Render() string {
	var b strings.Builder
	b.WriteString(utf8BOM)
	for i, e := range l {
		fmt.Fprintf(&b, "file '%s'\n", quotePath(e.Image.Path))
		if i < len(l)-1 {
			b.WriteString("duration " + formatDuration(e.Duration) + "\n")
		}
	}
	return b.String()
}

// WriteFile renders the manifest into dir (normally a per-invocation temp
// directory) and returns its path. Returns *WriteError on failure.
func (l List) WriteFile(dir string) (string, error) {
	path := filepath.Join(dir, "list.txt")
	if err := os.WriteFile(path, []byte(l.Render()), 0o644); err != nil {
		return "", &WriteError{Path: path, Err: err}
	}
	return path, nil
}

// quotePath converts path to absolute-slash form and escapes embedded
// single quotes for the single-quoted concat syntax: abc'def -> abc'\''def.
func quotePath(path string) string {
	posix := filepath.ToSlash(path)
	return strings.ReplaceAll(posix, "'", `'\''`)
}

// formatDuration renders seconds with the shortest exact decimal form
// (e.g. 0.0625 for 16 fps).
func formatDuration(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', -1, 64)
}
