package ui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/pongduel/internal/game"
)

func TestViewport_Cells(t *testing.T) {
	view := Viewport{Width: 100, Height: 32}

	tests := []struct {
		name           string
		rect           game.Rect
		wantX0, wantY0 int
		wantX1, wantY1 int
	}{
		{"ball at center", game.Rect{W: 10, H: 10}, 49, 16, 51, 17},
		{"right paddle", game.Rect{Center: game.Vec2{X: 300}, W: 10, H: 60}, 87, 15, 88, 18},
		{"top rail", game.Rect{Center: game.Vec2{X: -400, Y: 300}, W: 2400, H: 2}, 0, 1, 100, 2},
		{"bottom rail", game.Rect{Center: game.Vec2{X: -400, Y: -300}, W: 2400, H: 2}, 0, 30, 100, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x0, y0, x1, y1 := view.Cells(tt.rect)
			if x0 != tt.wantX0 || y0 != tt.wantY0 || x1 != tt.wantX1 || y1 != tt.wantY1 {
				t.Errorf("Cells = [%d,%d)x[%d,%d), want [%d,%d)x[%d,%d)",
					x0, x1, y0, y1, tt.wantX0, tt.wantX1, tt.wantY0, tt.wantY1)
			}
		})
	}
}

func TestViewport_Offscreen(t *testing.T) {
	view := Viewport{Width: 100, Height: 32}

	x0, y0, x1, y1 := view.Cells(game.Rect{Center: game.Offscreen, W: game.BallSize, H: game.BallSize})
	if x0 < x1 && y0 < y1 {
		t.Errorf("expected offscreen ball to cover no cells, got [%d,%d)x[%d,%d)", x0, x1, y0, y1)
	}
}

func TestViewport_TinyTerminal(t *testing.T) {
	view := Viewport{Width: 1, Height: 1}
	if view.FieldRows() != 0 {
		t.Errorf("expected no field rows, got %d", view.FieldRows())
	}
	_, y0, _, y1 := view.Cells(game.Rect{W: 10, H: 10})
	if y0 < y1 {
		t.Error("expected nothing drawable on a one-row terminal")
	}
}

func newSimScreen(t *testing.T, w, h int) (tcell.SimulationScreen, *Renderer) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("failed to init screen: %v", err)
	}
	t.Cleanup(sim.Fini)
	sim.SetSize(w, h)
	return sim, NewRenderer(NewScreen(sim))
}

func cellAt(sim tcell.SimulationScreen, x, y int) rune {
	r, _, _, _ := sim.GetContent(x, y)
	return r
}

func rowText(sim tcell.SimulationScreen, y, w int) string {
	var sb strings.Builder
	for x := 0; x < w; x++ {
		sb.WriteRune(cellAt(sim, x, y))
	}
	return sb.String()
}

func TestRenderer_RenderMatch(t *testing.T) {
	sim, renderer := newSimScreen(t, 100, 32)

	scene := NewScene()
	board := &ScoreBoard{}
	s := game.NewSimulation(game.Hooks{Scene: scene, Scores: board})
	s.Step(game.FrameInput{}, 1.0/64) // Dock the first ball on player2's paddle
	board.UpdateScore(game.Player2, 7)

	renderer.RenderMatch(scene.Sprites(), board, " Tick: 1")

	if got := cellAt(sim, 12, 15); got != PaddleChar {
		t.Errorf("expected left paddle at (12,15), got %q", got)
	}
	if got := cellAt(sim, 87, 15); got != PaddleChar {
		t.Errorf("expected right paddle at (87,15), got %q", got)
	}
	if got := cellAt(sim, 86, 16); got != BallChar {
		t.Errorf("expected docked ball at (86,16), got %q", got)
	}
	if got := cellAt(sim, 5, 1); got != RailChar {
		t.Errorf("expected top rail on first field row, got %q", got)
	}
	if got := cellAt(sim, 5, 30); got != RailChar {
		t.Errorf("expected bottom rail on last field row, got %q", got)
	}

	top := rowText(sim, 0, 100)
	if !strings.Contains(top, "00") || !strings.Contains(top, "07") {
		t.Errorf("expected scores 00 and 07 on top row, got %q", top)
	}
	if strings.Index(top, "00") > strings.Index(top, "07") {
		t.Errorf("expected player1 score left of player2 score, got %q", top)
	}

	if status := rowText(sim, 31, 100); !strings.HasPrefix(status, " Tick: 1") {
		t.Errorf("unexpected status row %q", status)
	}
}

func TestRenderer_CenterLine(t *testing.T) {
	sim, renderer := newSimScreen(t, 100, 32)

	scene := NewScene()
	game.NewSimulation(game.Hooks{Scene: scene})
	renderer.RenderMatch(scene.Sprites(), &ScoreBoard{}, "")

	dashes := 0
	for y := 1; y < 31; y++ {
		if cellAt(sim, 50, y) == MarkingChar {
			dashes++
		}
	}
	if dashes == 0 {
		t.Error("expected a dashed center line")
	}
	// Dashes and gaps alternate, so the line never fills the whole column
	if dashes >= 28 {
		t.Errorf("expected gaps in the center line, got %d dash cells", dashes)
	}
}

func TestRenderer_RenderError(t *testing.T) {
	sim, renderer := newSimScreen(t, 40, 20)

	renderer.RenderError(strings.Repeat("x", 100))

	var title, truncated bool
	for y := 0; y < 20; y++ {
		row := rowText(sim, y, 40)
		title = title || strings.Contains(row, "ERROR")
		truncated = truncated || strings.Contains(row, "xxx...")
	}
	if !title {
		t.Error("expected ERROR title")
	}
	if !truncated {
		t.Error("expected long message to be truncated with ellipsis")
	}
}
