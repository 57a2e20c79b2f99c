// Package scan enumerates image files and produces the deterministic
// ordering shared by the stitch and bounce pipelines.
//
// Ordering is by case-folded filename using plain byte comparison,
// deliberately NOT natural/numeric ordering: "frame10" sorts before
// "frame2". Callers relying on numeric order must zero-pad their filenames.
package scan

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Entry is one scanned image file. Identity is the absolute path.
type Entry struct {
	Path string // Absolute path.
	Name string // Base filename.
}

// SortKey returns the case-folded filename the ordering is defined on.
func (e Entry) SortKey() string { return strings.ToLower(e.Name) }

// NoMatchError is returned when a scan finds zero matching files. It carries
// the effective filter settings so the operator sees what was searched.
type NoMatchError struct {
	Root       string
	Extensions []string
	Recursive  bool
}

func (e *NoMatchError) Error() string {
	mode := "non-recursive"
	if e.Recursive {
		mode = "recursive"
	}
	return fmt.Sprintf("no images found in %s (%s, extensions: %s)",
		e.Root, mode, strings.Join(e.Extensions, ","))
}

// Scan walks root and returns the ordered sequence of regular files whose
// extension (case-folded, dot-stripped) is in exts. When recursive is false
// only root's direct children are considered. The result is sorted by
// case-folded filename, ties broken by the original filename so re-scans of
// an unchanged directory always yield the same order. Returns *NoMatchError
// when nothing matches.
func Scan(root string, exts []string, recursive bool) ([]Entry, error) {
	accept := make(map[string]bool, len(exts))
	for _, e := range exts {
		accept[strings.TrimPrefix(strings.ToLower(e), ".")] = true
	}

	rootAbs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve scan root: %w", err)
	}

	var entries []Entry
	err = filepath.WalkDir(rootAbs, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if !recursive && path != rootAbs {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
		if accept[ext] {
			entries = append(entries, Entry{Path: path, Name: d.Name()})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	if len(entries) == 0 {
		return nil, &NoMatchError{Root: rootAbs, Extensions: exts, Recursive: recursive}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		ki, kj := entries[i].SortKey(), entries[j].SortKey()
		if ki != kj {
			return ki < kj
		}
		return entries[i].Name < entries[j].Name
	})
	return entries, nil
}
