package bounce

import (
	"fmt"
	"strings"

	"github.com/backmassage/stillreel/internal/scan"
)

// Segment is a 1-based inclusive index range into an ordered sequence.
type Segment struct {
	Start int
	End   int
}

// Len returns the number of entries the segment covers.
func (s Segment) Len() int { return s.End - s.Start + 1 }

// Selection is the operator's segment choice. Zero value selects the full
// range. Name selection takes precedence over index selection; the pairing
// rules (both-or-neither) are enforced by config validation before this
// package runs.
type Selection struct {
	StartIndex int // 1-based, 0 = unset.
	EndIndex   int
	FromName   string
	ToName     string
}

// NameNotFoundError reports a --from-name/--to-name value that matches no
// entry in the sequence.
type NameNotFoundError struct {
	Name string
}

func (e *NameNotFoundError) Error() string {
	return fmt.Sprintf("file not found in sequence: %s", e.Name)
}

// RangeError reports an index selection outside [1, N] or inverted.
type RangeError struct {
	Start int
	End   int
	N     int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid range %d..%d for sequence of %d images", e.Start, e.End, e.N)
}

// Resolve maps a Selection onto entries. Filenames match case-insensitively
// against the entry's base name; both endpoints must exist. Index bounds
// and ordering are validated for every selection style.
func Resolve(entries []scan.Entry, sel Selection) (Segment, error) {
	n := len(entries)
	var seg Segment

	switch {
	case sel.FromName != "" || sel.ToName != "":
		start, err := indexOfName(entries, sel.FromName)
		if err != nil {
			return Segment{}, err
		}
		end, err := indexOfName(entries, sel.ToName)
		if err != nil {
			return Segment{}, err
		}
		seg = Segment{Start: start, End: end}
	case sel.StartIndex != 0 || sel.EndIndex != 0:
		seg = Segment{Start: sel.StartIndex, End: sel.EndIndex}
	default:
		seg = Segment{Start: 1, End: n}
	}

	if seg.Start < 1 || seg.End > n || seg.Start > seg.End {
		return Segment{}, &RangeError{Start: seg.Start, End: seg.End, N: n}
	}
	return seg, nil
}

// indexOfName returns the 1-based position of the first entry whose base
// name equals name, ignoring case.
func indexOfName(entries []scan.Entry, name string) (int, error) {
	for i, e := range entries {
		if strings.EqualFold(e.Name, name) {
			return i + 1, nil
		}
	}
	return 0, &NameNotFoundError{Name: name}
}
