package timing

import (
	"testing"

	"github.com/backmassage/stillreel/internal/scan"
)

func seq(names ...string) []scan.Entry {
	entries := make([]scan.Entry, len(names))
	for i, n := range names {
		entries[i] = scan.Entry{Path: "/frames/" + n, Name: n}
	}
	return entries
}

func TestBuild_LengthAndDurations(t *testing.T) {
	tests := []struct {
		name  string
		count int
		fps   float64
	}{
		{"single frame", 1, 16},
		{"several frames", 5, 16},
		{"fractional frame time", 3, 30},
		{"one fps", 4, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			names := make([]string, tt.count)
			for i := range names {
				names[i] = string(rune('a'+i)) + ".png"
			}
			list := Build(seq(names...), tt.fps)

			if len(list) != tt.count+1 {
				t.Fatalf("len = %d, want %d", len(list), tt.count+1)
			}
			want := 1 / tt.fps
			for i := 0; i < tt.count; i++ {
				if list[i].Duration != want {
					t.Errorf("entry %d duration = %v, want %v", i, list[i].Duration, want)
				}
			}
			last, prev := list[len(list)-1], list[len(list)-2]
			if last.Image.Path != prev.Image.Path {
				t.Errorf("final entry %s does not repeat last image %s",
					last.Image.Path, prev.Image.Path)
			}
		})
	}
}

func TestBuild_Empty(t *testing.T) {
	if got := Build(nil, 16); got != nil {
		t.Errorf("Build(nil) = %v, want nil", got)
	}
}

func TestList_Frames(t *testing.T) {
	list := Build(seq("a.png", "b.png", "c.png"), 16)
	if got := list.Frames(); got != 3 {
		t.Errorf("Frames() = %d, want 3", got)
	}
}

func TestList_TotalDuration(t *testing.T) {
	// 3 frames + repeated last = 4 slots of 1/16s each.
	list := Build(seq("a.png", "b.png", "c.png"), 16)
	if got := list.TotalDuration(); got != 0.25 {
		t.Errorf("TotalDuration() = %v, want 0.25", got)
	}
}
