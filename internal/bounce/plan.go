package bounce

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/backmassage/stillreel/internal/scan"
)

// Plan describes one bounce materialization: which frames to duplicate, in
// what order, and under which collision-free destination names.
type Plan struct {
	Segment  Segment
	End      scan.Entry   // Pivot frame; rendered once by the forward pass.
	Mirrored []scan.Entry // Segment reversed with the pivot dropped.

	DestDir    string // Directory the copies land in (the pivot's directory).
	Stem       string // Pivot base name without extension.
	BlockStart int    // First numeric suffix of the chosen free block.
}

// Count returns the number of files the plan will create.
func (p *Plan) Count() int { return len(p.Mirrored) }

// BuildPlan constructs the mirrored ordering for seg over entries and
// selects the destination suffix block. The mirror walks the segment
// backwards starting one before the pivot, so the combined forward+mirror
// traversal reads forward-then-backward without doubling the turning frame.
// A single-frame segment yields an empty (no-op) plan.
func BuildPlan(entries []scan.Entry, seg Segment) (*Plan, error) {
	end := entries[seg.End-1]
	stem := strings.TrimSuffix(end.Name, filepath.Ext(end.Name))
	destDir := filepath.Dir(end.Path)

	var mirrored []scan.Entry
	for i := seg.End - 1; i >= seg.Start; i-- {
		mirrored = append(mirrored, entries[i-1])
	}

	blockStart := 1
	if len(mirrored) > 0 {
		occupied, err := occupiedSuffixes(destDir, stem)
		if err != nil {
			return nil, err
		}
		blockStart = firstFreeBlock(occupied, len(mirrored))
	}

	return &Plan{
		Segment:    seg,
		End:        end,
		Mirrored:   mirrored,
		DestDir:    destDir,
		Stem:       stem,
		BlockStart: blockStart,
	}, nil
}

// Destinations returns the planned output base names, in copy order. Each
// copy keeps its own source extension; the numeric suffix is zero-padded to
// three digits and widens naturally past 999.
func (p *Plan) Destinations() []string {
	out := make([]string, len(p.Mirrored))
	for k, src := range p.Mirrored {
		out[k] = fmt.Sprintf("%s_%03d%s", p.Stem, p.BlockStart+k, filepath.Ext(src.Name))
	}
	return out
}

// Pair is one planned copy.
type Pair struct {
	Src string // Absolute source path.
	Dst string // Absolute destination path.
}

// Pairs returns the copy operations the plan calls for, in order.
func (p *Plan) Pairs() []Pair {
	dests := p.Destinations()
	pairs := make([]Pair, len(dests))
	for k, src := range p.Mirrored {
		pairs[k] = Pair{Src: src.Path, Dst: filepath.Join(p.DestDir, dests[k])}
	}
	return pairs
}

// occupiedSuffixes reads dir and collects the numeric suffixes of existing
// files named <stem>_<digits>.<ext>, regardless of extension. Suffixes are
// parsed as plain integers so "001" and "1" occupy the same slot.
func occupiedSuffixes(dir, stem string) (map[int]bool, error) {
	re := regexp.MustCompile(`^` + regexp.QuoteMeta(stem) + `_(\d+)\.[^.]+$`)

	listing, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read destination directory %s: %w", dir, err)
	}

	occupied := make(map[int]bool)
	for _, de := range listing {
		if de.IsDir() {
			continue
		}
		m := re.FindStringSubmatch(de.Name())
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		occupied[n] = true
	}
	return occupied, nil
}

// firstFreeBlock returns the smallest B >= 1 such that the integers
// [B, B+count-1] are all free. Bounded linear scan; repeated runs over the
// same segment land in fresh blocks instead of overwriting earlier output.
func firstFreeBlock(occupied map[int]bool, count int) int {
	for start := 1; ; start++ {
		free := true
		for i := start; i < start+count; i++ {
			if occupied[i] {
				free = false
				break
			}
		}
		if free {
			return start
		}
	}
}
