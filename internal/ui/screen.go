package ui

import "github.com/gdamore/tcell/v2"

// PlayerColors are indexed by game.Player
var PlayerColors = [2]tcell.Color{
	tcell.ColorRed,
	tcell.ColorBlue,
}

type Screen struct {
	screen tcell.Screen
}

func NewScreen(s tcell.Screen) *Screen {
	return &Screen{screen: s}
}

func InitScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.HideCursor()
	return NewScreen(s), nil
}

func (s *Screen) Size() (int, int) {
	return s.screen.Size()
}

func (s *Screen) Clear() {
	s.screen.Clear()
}

func (s *Screen) Show() {
	s.screen.Show()
}

func (s *Screen) Fini() {
	s.screen.Fini()
}

func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// SetCell draws one rune, silently dropping cells outside the screen
func (s *Screen) SetCell(x, y int, style tcell.Style, r rune) {
	w, h := s.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	s.screen.SetContent(x, y, r, nil, style)
}

func (s *Screen) DrawText(x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		s.SetCell(x+i, y, style, r)
	}
}

// DrawCentered writes text centered horizontally on row y
func (s *Screen) DrawCentered(y int, text string, style tcell.Style) {
	w, _ := s.screen.Size()
	s.DrawText((w-len([]rune(text)))/2, y, text, style)
}

func (s *Screen) FillRect(x, y, w, h int, style tcell.Style, r rune) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			s.SetCell(x+dx, y+dy, style, r)
		}
	}
}

func (s *Screen) DrawBox(x, y, w, h int, style tcell.Style) {
	s.SetCell(x, y, style, '┌')
	s.SetCell(x+w-1, y, style, '┐')
	s.SetCell(x, y+h-1, style, '└')
	s.SetCell(x+w-1, y+h-1, style, '┘')

	for i := x + 1; i < x+w-1; i++ {
		s.SetCell(i, y, style, '─')
		s.SetCell(i, y+h-1, style, '─')
	}
	for j := y + 1; j < y+h-1; j++ {
		s.SetCell(x, j, style, '│')
		s.SetCell(x+w-1, j, style, '│')
	}
}
