package pipeline

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/backmassage/stillreel/internal/bounce"
	"github.com/backmassage/stillreel/internal/config"
)

func bounceCfg(dir string) *config.Config {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	cfg.InputDir = dir
	return &cfg
}

func TestRunBounce_FullRange(t *testing.T) {
	dir := imageDir(t, "0003.png", "0004.png", "0005.png")

	if err := RunBounce(bounceCfg(dir), quietLogger(t)); err != nil {
		t.Fatalf("RunBounce() = %v", err)
	}

	for _, want := range []string{"0005_001.png", "0005_002.png"} {
		if _, err := os.Stat(filepath.Join(dir, want)); err != nil {
			t.Errorf("missing copy %s: %v", want, err)
		}
	}
	// Mirror of [0003 0004 0005] minus the pivot: first copy is 0004.
	b, err := os.ReadFile(filepath.Join(dir, "0005_001.png"))
	if err != nil {
		t.Fatal(err)
	}
	src, _ := os.ReadFile(filepath.Join(dir, "0004.png"))
	if string(b) != string(src) {
		t.Error("0005_001.png does not hold 0004.png's content")
	}
}

func TestRunBounce_RepeatRunsDoNotOverwrite(t *testing.T) {
	dir := imageDir(t, "a.png", "b.png", "c.png")
	cfg := bounceCfg(dir)

	if err := RunBounce(cfg, quietLogger(t)); err != nil {
		t.Fatal(err)
	}
	// Rescan picks up the copies; select the original segment by name so
	// the second run mirrors the same frames.
	cfg.FromName = "a.png"
	cfg.ToName = "c.png"
	if err := RunBounce(cfg, quietLogger(t)); err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{"c_001.png", "c_002.png", "c_003.png", "c_004.png"} {
		if _, err := os.Stat(filepath.Join(dir, want)); err != nil {
			t.Errorf("missing %s after second run: %v", want, err)
		}
	}
}

func TestRunBounce_DryRunWritesNothing(t *testing.T) {
	dir := imageDir(t, "a.png", "b.png", "c.png")
	cfg := bounceCfg(dir)
	cfg.DryRun = true

	if err := RunBounce(cfg, quietLogger(t)); err != nil {
		t.Fatal(err)
	}

	listing, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(listing) != 3 {
		t.Errorf("dry run created files: %d entries", len(listing))
	}
}

func TestRunBounce_SingleFrameNoop(t *testing.T) {
	dir := imageDir(t, "a.png", "b.png")
	cfg := bounceCfg(dir)
	cfg.StartIndex = 2
	cfg.EndIndex = 2

	if err := RunBounce(cfg, quietLogger(t)); err != nil {
		t.Fatal(err)
	}
	listing, _ := os.ReadDir(dir)
	if len(listing) != 2 {
		t.Errorf("no-op run created files: %d entries", len(listing))
	}
}

func TestRunBounce_SelectionErrors(t *testing.T) {
	dir := imageDir(t, "a.png", "b.png")

	t.Run("name not found", func(t *testing.T) {
		cfg := bounceCfg(dir)
		cfg.FromName = "a.png"
		cfg.ToName = "zzz.png"
		err := RunBounce(cfg, quietLogger(t))
		var nf *bounce.NameNotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("err = %v, want *NameNotFoundError", err)
		}
	})

	t.Run("inverted range", func(t *testing.T) {
		cfg := bounceCfg(dir)
		cfg.StartIndex = 2
		cfg.EndIndex = 1
		err := RunBounce(cfg, quietLogger(t))
		var rerr *bounce.RangeError
		if !errors.As(err, &rerr) {
			t.Fatalf("err = %v, want *RangeError", err)
		}
	})
}

func TestRunBounce_CopyFailureLeavesEarlierCopies(t *testing.T) {
	dir := imageDir(t, "a.png", "b.png", "c.png")
	// Planned destinations are c_001.png and c_002.png; a directory
	// squatting on the second one makes that copy fail. Directories are
	// not counted as occupied suffixes, so the block still starts at 1.
	if err := os.Mkdir(filepath.Join(dir, "c_002.png"), 0o755); err != nil {
		t.Fatal(err)
	}

	err := RunBounce(bounceCfg(dir), quietLogger(t))
	var cerr *bounce.CopyError
	if !errors.As(err, &cerr) {
		t.Fatalf("err = %v, want *CopyError", err)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "c_001.png")); statErr != nil {
		t.Error("earlier copy rolled back; it must stay in place")
	}
}
