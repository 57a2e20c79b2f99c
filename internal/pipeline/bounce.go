package pipeline

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/backmassage/stillreel/internal/bounce"
	"github.com/backmassage/stillreel/internal/config"
	"github.com/backmassage/stillreel/internal/display"
	"github.com/backmassage/stillreel/internal/logging"
	"github.com/backmassage/stillreel/internal/scan"
	"github.com/backmassage/stillreel/internal/term"
)

// RunBounce is the bounce entry point: scan → resolve segment → build the
// mirror plan → copy (or report the plan in dry-run mode). Copies already
// written when a later copy fails are left in place.
func RunBounce(cfg *config.Config, log *logging.Logger) error {
	if err := requireDir(cfg.InputDir); err != nil {
		return err
	}

	// The bounce tool always works on a flat directory; ordering is the
	// same documented case-folded ordinal sort the stitcher uses.
	entries, err := scan.Scan(cfg.InputDir, cfg.Extensions, false)
	if err != nil {
		return err
	}

	seg, err := bounce.Resolve(entries, bounce.Selection{
		StartIndex: cfg.StartIndex,
		EndIndex:   cfg.EndIndex,
		FromName:   cfg.FromName,
		ToName:     cfg.ToName,
	})
	if err != nil {
		return err
	}

	plan, err := bounce.BuildPlan(entries, seg)
	if err != nil {
		return err
	}

	log.Info("%d images in sequence", len(entries))
	log.Info("Segment (alphabetical order): %d..%d, end file %s", seg.Start, seg.End, plan.End.Name)

	if plan.Count() == 0 {
		log.Info("Nothing to mirror (start == end).")
		return nil
	}
	log.Info("Creating %d mirrored copies (pivot not duplicated)", plan.Count())

	pairs := plan.Pairs()

	if cfg.DryRun {
		rows := make([][]string, len(pairs))
		for i := range pairs {
			rows[i] = []string{strconv.Itoa(i + 1), plan.Mirrored[i].Name, plan.Destinations()[i]}
		}
		log.Plan("DRY RUN — no files copied")
		fmt.Println(display.RenderTable([]string{"#", "Source", "Destination"}, rows, 1))
		logPreview(log, entries, seg, plan.Destinations())
		return nil
	}

	bar := copyProgress(len(pairs))
	for i, p := range pairs {
		if err := bounce.CopyFile(p.Src, p.Dst); err != nil {
			if bar != nil {
				_ = bar.Clear()
			}
			return err
		}
		if bar != nil {
			_ = bar.Add(1)
		} else {
			log.Info("%s -> %s", plan.Mirrored[i].Name, plan.Destinations()[i])
		}
	}
	if bar != nil {
		_ = bar.Finish()
		fmt.Println()
	}

	log.Success("Copied %d files into %s", plan.Count(), plan.DestDir)
	logPreview(log, entries, seg, plan.Destinations())
	return nil
}

// copyProgress returns a progress bar when stdout is a terminal, nil
// otherwise (plain per-file log lines are used instead).
func copyProgress(count int) *progressbar.ProgressBar {
	if !term.IsTerminal(os.Stdout) {
		return nil
	}
	return progressbar.NewOptions(count,
		progressbar.OptionSetDescription("Copying"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetRenderBlankState(true),
	)
}

// logPreview prints the alphabetical neighborhood around the join so the
// operator can eyeball where the mirrored block lands in the ordering.
func logPreview(log *logging.Logger, entries []scan.Entry, seg bounce.Segment, created []string) {
	var names []string
	for _, e := range entries[:seg.End] {
		names = append(names, e.Name)
	}
	names = append(names, created...)
	for _, e := range entries[seg.End:] {
		names = append(names, e.Name)
	}

	start := seg.End - 3
	if start < 0 {
		start = 0
	}
	end := seg.End + 2 + len(created)
	if end > len(names) {
		end = len(names)
	}

	log.Info("Adjacent order preview: ... %s ...", strings.Join(names[start:end], ", "))
}
