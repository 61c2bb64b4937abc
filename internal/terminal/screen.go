// Package terminal wraps tcell with the small surface the game needs:
// init and teardown, event polling, and whole-frame glyph blits.
package terminal

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Screen is a terminal drawing in a single foreground color on black.
type Screen struct {
	screen tcell.Screen
	style  tcell.Style
}

// New creates and initializes a terminal screen drawing in the named
// foreground color.
func New(color string) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create terminal screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init terminal screen: %w", err)
	}
	return Adopt(s, color), nil
}

// Adopt wraps an already initialized tcell screen. Tests hand in a
// simulation screen here.
func Adopt(s tcell.Screen, color string) *Screen {
	style := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(Foreground(color))
	s.SetStyle(style)
	s.Clear()
	return &Screen{screen: s, style: style}
}

// Foreground resolves a configured color name, falling back to green.
func Foreground(name string) tcell.Color {
	if c, ok := tcell.ColorNames[strings.ToLower(name)]; ok {
		return c
	}
	return tcell.ColorGreen
}

// Close finalizes the screen and restores the terminal state.
func (s *Screen) Close() {
	s.screen.Fini()
}

// PollEvent waits for and returns the next terminal event.
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Size returns the current terminal dimensions.
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

// Sync forces a complete redraw.
func (s *Screen) Sync() {
	s.screen.Sync()
}

// Blit replaces the terminal contents with the glyph grid and flushes.
// Cells outside the terminal are dropped by tcell, so a blit racing a
// resize draws what fits.
func (s *Screen) Blit(glyphs [][]rune) {
	for y, row := range glyphs {
		for x, g := range row {
			s.screen.SetContent(x, y, g, nil, s.style)
		}
	}
	s.screen.Show()
}
