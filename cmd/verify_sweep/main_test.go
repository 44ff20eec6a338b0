package main

import (
	"testing"

	"github.com/decker502/linepuncher/pkg/config"
	"github.com/decker502/linepuncher/pkg/game"
)

// TestRunTapSequence 六次点击的访问顺序
func TestRunTapSequence(t *testing.T) {
	r := game.NewRenderer(config.DefaultPuncherConfig())

	wantFrom := []int{0, 1, 2, 3, 4, 4}
	wantTo := []int{1, 2, 3, 4, 4, 3}
	for i := range wantFrom {
		report, err := runTap(r, i+1)
		if err != nil {
			t.Fatalf("runTap(%d) error: %v", i+1, err)
		}
		if report.From != wantFrom[i] || report.To != wantTo[i] {
			t.Errorf("tap %d: %d -> %d, want %d -> %d", i+1, report.From, report.To, wantFrom[i], wantTo[i])
		}
		if report.Boundary != (i == 4) {
			t.Errorf("tap %d: boundary = %v", i+1, report.Boundary)
		}
	}
}
