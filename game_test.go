package main

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/pixeltiles/config"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g, err := newGame(config.Default(), false)
	if err != nil {
		t.Fatalf("newGame: %v", err)
	}
	return g
}

func press(g *Game, x, y int) {
	g.input.PointerDown = true
	g.input.PointerX, g.input.PointerY = x, y
}

func TestStepQuitTerminates(t *testing.T) {
	g := newTestGame(t)
	g.input.QuitPressed = true
	if err := g.step(false); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("expected ebiten.Termination, got %v", err)
	}
}

func TestStepHoverGuard(t *testing.T) {
	cases := []struct {
		name      string
		editing   bool
		uiHovered bool
		selected  int
		pixelOn   bool
	}{
		// The back button is gone in overview, so a hover flag left over from
		// it must not eat the press.
		{"overview_hovered_selects", false, true, 0, false},
		{"overview_selects", false, false, 0, false},
		{"edit_hovered_blocked", true, true, 1, false},
		{"edit_toggles", true, false, 1, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := newTestGame(t)
			if c.editing {
				g.editor.SelectTileAt(70, 5)
			}
			press(g, 10, 10)
			if err := g.step(c.uiHovered); err != nil {
				t.Fatalf("step: %v", err)
			}
			if g.editor.Selected() != c.selected {
				t.Fatalf("expected selection %d, got %d", c.selected, g.editor.Selected())
			}
			if c.editing && g.editor.Tiles()[1][0] != c.pixelOn {
				t.Fatalf("expected pixel 0 of tile 1 on=%v", c.pixelOn)
			}
		})
	}
}

func TestStepIgnoresMargin(t *testing.T) {
	g := newTestGame(t)
	press(g, -20, 10)
	if err := g.step(false); err != nil {
		t.Fatalf("step: %v", err)
	}
	if g.editor.Editing() {
		t.Fatalf("a press in the margin should not select a tile")
	}
}

func TestStepEscapeReturnsToOverview(t *testing.T) {
	g := newTestGame(t)
	g.editor.SelectTileAt(70, 5)
	g.input.BackPressed = true
	if err := g.step(false); err != nil {
		t.Fatalf("step: %v", err)
	}
	if g.editor.Editing() {
		t.Fatalf("Escape should return to overview")
	}
}

func TestApplyConfig(t *testing.T) {
	g := newTestGame(t)
	var titles []string
	g.setTitle = func(s string) { titles = append(titles, s) }

	next := config.Default()
	next.Title = "tiles"
	next.GridColor = "#ff0000"
	next.GridPixels = 4
	next.PanelPixels = 512
	if err := g.applyConfig(next); err != nil {
		t.Fatalf("applyConfig: %v", err)
	}
	if g.cfg.PanelPixels != 256 {
		t.Fatalf("panel size must stay fixed, got %d", g.cfg.PanelPixels)
	}
	for _, r := range g.editor.Scene().GridLines {
		if r.Color != g.cfg.GridRGBA() {
			t.Fatalf("grid not restyled: %+v", r)
		}
	}
	if len(titles) != 1 || titles[0] != "tiles" {
		t.Fatalf("expected title update to %q, got %v", "tiles", titles)
	}

	g.editor.SelectTileAt(0, 0)
	if titles[len(titles)-1] != "tiles: tile 1" {
		t.Fatalf("unexpected edit title %q", titles[len(titles)-1])
	}
}
