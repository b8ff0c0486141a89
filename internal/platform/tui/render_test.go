package tui

import (
	"strings"
	"testing"

	"github.com/mkurnosov/dasher/internal/config"
	"github.com/mkurnosov/dasher/internal/core"
	"github.com/mkurnosov/dasher/internal/sim"
)

func snapshotFor(t *testing.T, cfg config.Config) sim.Snapshot {
	t.Helper()
	s, err := sim.New(cfg, sim.Options{})
	if err != nil {
		t.Fatalf("sim.New: %v", err)
	}
	return s.Snapshot()
}

func TestDrawFrameShowsMenu(t *testing.T) {
	cfg := quietConfig()
	screen := core.NewScreen(80, 24)

	drawFrame(screen, snapshotFor(t, cfg), &cfg)

	out := screen.String()
	if !strings.Contains(out, "D A S H E R") {
		t.Error("menu title missing from frame")
	}
	if !strings.Contains(out, "SPACE") {
		t.Error("start hint missing from frame")
	}
}

func TestDrawFramePaintsGroundLine(t *testing.T) {
	cfg := quietConfig()
	screen := core.NewScreen(80, 24)

	drawFrame(screen, snapshotFor(t, cfg), &cfg)

	vp := newViewport(screen, &cfg)
	row := screen.Row(vp.cellY(cfg.Field.GroundY))
	if !strings.ContainsRune(row, '═') {
		t.Errorf("ground row %q has no track", row)
	}
}

func TestDrawFrameShowsHUDScores(t *testing.T) {
	cfg := quietConfig()
	screen := core.NewScreen(80, 24)

	drawFrame(screen, snapshotFor(t, cfg), &cfg)

	if !strings.Contains(screen.Row(0), "HI 00000") {
		t.Errorf("HUD missing from top row %q", screen.Row(0))
	}
}

func TestGroundScrollShiftsPattern(t *testing.T) {
	cfg := quietConfig()
	a := core.NewScreen(80, 24)
	b := core.NewScreen(80, 24)
	vp := newViewport(a, &cfg)
	row := vp.cellY(cfg.Field.GroundY)

	drawGround(a, vp, row, 0)
	drawGround(b, vp, row, -40)

	if a.Row(row) == b.Row(row) {
		t.Error("scroll offset did not shift the ground pattern")
	}
}

func TestRenderScreenDimensions(t *testing.T) {
	screen := core.NewScreen(10, 3)
	screen.SetCell(0, 0, 'x', core.ColorGreen)
	screen.SetCell(1, 0, 'y', core.ColorRed)

	out := RenderScreen(screen)
	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("rendered %d newlines, want 2", got)
	}
}
