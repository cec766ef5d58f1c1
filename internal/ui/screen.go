// Package ui provides terminal rendering using tcell.
package ui

import "github.com/gdamore/tcell/v2"

// BaseStyle fills cells the renderer does not draw.
var BaseStyle = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)

// Screen is an initialized tcell screen. Drawing, sizing and events come
// from the embedded tcell.Screen; Close restores the terminal.
type Screen struct {
	tcell.Screen
}

// NewScreen opens the controlling terminal.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewScreenFrom(s)
}

// NewScreenFrom initializes an existing tcell screen, such as a
// simulation screen in tests.
func NewScreenFrom(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(BaseStyle)
	s.Clear()
	return &Screen{Screen: s}, nil
}

// Close finalizes the screen and restores terminal state.
func (s *Screen) Close() {
	s.Fini()
}
