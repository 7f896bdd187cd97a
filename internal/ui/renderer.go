package ui

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/pongduel/internal/game"
)

const (
	BallChar    = '\u2B24' // ⬤
	PaddleChar  = '\u2588' // █
	MarkingChar = '\u2502' // │
	RailChar    = '\u2500' // ─
)

// Viewport maps arena coordinates onto terminal cells.
// Row 0 holds the scoreboard and the last row the status bar.
type Viewport struct {
	Width, Height int
}

// FieldRows is the number of rows available to the arena
func (v Viewport) FieldRows() int {
	if v.Height < 2 {
		return 0
	}
	return v.Height - 2
}

// Cells returns the half-open cell span [x0,x1)x[y0,y1) covered by r,
// clipped to the field. Every rectangle overlapping the field covers at least one cell.
func (v Viewport) Cells(r game.Rect) (x0, y0, x1, y1 int) {
	x0, x1 = span(r.Center.X-r.W/2, r.Center.X+r.W/2, -game.ArenaWidth/2, game.ArenaWidth, v.Width)
	// Screen rows grow downward
	y0, y1 = span(game.ArenaHeight/2-(r.Center.Y+r.H/2), game.ArenaHeight/2-(r.Center.Y-r.H/2), 0, game.ArenaHeight, v.FieldRows())

	x0, x1 = clip(x0, x1, v.Width)
	y0, y1 = clip(y0, y1, v.FieldRows())
	return x0, y0 + 1, x1, y1 + 1
}

func span(lo, hi, origin, extent float64, cells int) (int, int) {
	scale := float64(cells) / extent
	lo, hi = (lo-origin)*scale, (hi-origin)*scale

	a, b := int(math.Round(lo)), int(math.Round(hi))
	if b <= a {
		// Thinner than a cell: keep it on the nearest cell inside the field
		mid := (lo + hi) / 2
		if lo < float64(cells) && hi > 0 {
			mid = math.Min(math.Max(mid, 0), float64(cells)-1)
		}
		a = int(math.Floor(mid))
		b = a + 1
	}
	return a, b
}

func clip(a, b, limit int) (int, int) {
	if a < 0 {
		a = 0
	}
	if b > limit {
		b = limit
	}
	if b < a {
		b = a
	}
	return a, b
}

// Renderer handles rendering all game screens
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer with the given screen
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// RenderMatch draws the court, every sprite, the scoreboard and a status line
func (r *Renderer) RenderMatch(sprites []Sprite, board *ScoreBoard, status string) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()
	view := Viewport{Width: screenW, Height: screenH}

	courtStyle := tcell.StyleDefault.Background(tcell.ColorBlack)
	r.screen.FillRect(0, 1, screenW, view.FieldRows(), courtStyle, ' ')

	for _, sp := range sprites {
		r.drawSprite(view, sp)
	}

	r.renderScoreboard(board, screenW)

	statusY := screenH - 1
	statusStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite)
	r.screen.FillRect(0, statusY, screenW, 1, statusStyle, ' ')
	r.screen.DrawText(0, statusY, status, statusStyle)

	r.screen.Show()
}

func (r *Renderer) drawSprite(view Viewport, sp Sprite) {
	var (
		ch    rune
		style = tcell.StyleDefault.Background(tcell.ColorBlack)
	)

	switch sp.Visual.Kind {
	case game.VisualGoal:
		return
	case game.VisualPaddle:
		ch = PaddleChar
		style = style.Foreground(PlayerColors[sideOf(sp.Pos.X)])
	case game.VisualBall:
		ch = BallChar
		style = style.Foreground(tcell.ColorWhite)
	case game.VisualMarking:
		ch = MarkingChar
		if sp.Visual.W > sp.Visual.H {
			ch = RailChar
		}
		style = style.Foreground(tcell.ColorDarkGray)
	}

	x0, y0, x1, y1 := view.Cells(sp.Bounds())
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			r.screen.SetCell(x, y, style, ch)
		}
	}
}

func sideOf(x float64) game.Player {
	if x < 0 {
		return game.Player1
	}
	return game.Player2
}

// renderScoreboard puts each player's score on their half of the top row
func (r *Renderer) renderScoreboard(board *ScoreBoard, screenW int) {
	rowStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray)
	r.screen.FillRect(0, 0, screenW, 1, rowStyle, ' ')

	center := screenW / 2
	for _, p := range game.Players {
		label := board.Label(p)
		x := center + 3
		if p == game.Player1 {
			x = center - 3 - len(label)
		}
		r.screen.DrawText(x, 0, label, rowStyle.Foreground(PlayerColors[p]).Bold(true))
	}
}

// RenderConnecting displays the connecting screen
func (r *Renderer) RenderConnecting(target string) {
	r.screen.Clear()
	_, screenH := r.screen.Size()

	r.screen.DrawCentered(screenH/2-3, "PONGDUEL", tcell.StyleDefault.Bold(true).Foreground(tcell.ColorTeal))
	r.screen.DrawCentered(screenH/2, "Connecting to "+target+"...", tcell.StyleDefault.Foreground(tcell.ColorYellow))
	r.screen.DrawCentered(screenH/2+3, "Press 'q' to cancel", tcell.StyleDefault.Foreground(tcell.ColorGray))

	r.screen.Show()
}

// RenderError displays an error screen
func (r *Renderer) RenderError(err string) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()

	// Truncate if too long
	msg := []rune(err)
	if maxLen := screenW - 4; maxLen > 3 && len(msg) > maxLen {
		msg = append(msg[:maxLen-3], []rune("...")...)
	}

	boxW := len(msg) + 4
	r.screen.DrawBox((screenW-boxW)/2, screenH/2-3, boxW, 7, tcell.StyleDefault.Foreground(tcell.ColorRed))
	r.screen.DrawCentered(screenH/2-2, "ERROR", tcell.StyleDefault.Bold(true).Foreground(tcell.ColorRed))
	r.screen.DrawCentered(screenH/2, string(msg), tcell.StyleDefault.Foreground(tcell.ColorWhite))
	r.screen.DrawCentered(screenH/2+5, "Press any key to continue", tcell.StyleDefault.Foreground(tcell.ColorGray))

	r.screen.Show()
}
