// Package ui provides rendering and the tcell-backed terminal surface.
package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/rogue/internal/console"
)

// Screen presents frames to a terminal and reads keys from it.
type Screen struct {
	screen     tcell.Screen
	fullscreen bool
}

// NewScreen creates and initializes a new terminal screen.
func NewScreen(title string) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetTitle(title)
	return NewScreenFrom(s), nil
}

// NewScreenFrom wraps an already initialized tcell screen.
func NewScreenFrom(s tcell.Screen) *Screen {
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.Clear()
	return &Screen{screen: s}
}

// Close finalizes the screen and restores terminal state.
func (s *Screen) Close() {
	s.screen.Fini()
}

// Present copies the frame onto the terminal and flushes it. In fullscreen
// mode the frame is centered in the terminal, otherwise it sits at the
// top-left corner.
func (s *Screen) Present(f *console.Frame) error {
	s.screen.Clear()

	ox, oy := s.origin(f)
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			c := f.Cell(x, y)
			style := tcell.StyleDefault.
				Foreground(toTCell(c.Fg)).
				Background(toTCell(c.Bg))
			s.screen.SetContent(ox+x, oy+y, c.Glyph, nil, style)
		}
	}

	s.screen.Show()
	return nil
}

// SetFullscreen switches between corner and centered placement.
func (s *Screen) SetFullscreen(on bool) {
	s.fullscreen = on
	s.screen.Sync()
}

// PollKey blocks until the next key event and translates it.
// Resizes force a redraw and are reported as KeyNone so the caller re-renders.
// A finalized screen reports KeyQuit.
func (s *Screen) PollKey() console.Key {
	for {
		switch ev := s.screen.PollEvent().(type) {
		case nil:
			return console.KeyQuit
		case *tcell.EventKey:
			return translateKey(ev)
		case *tcell.EventResize:
			s.screen.Sync()
			return console.KeyNone
		}
	}
}

func (s *Screen) origin(f *console.Frame) (int, int) {
	if !s.fullscreen {
		return 0, 0
	}
	w, h := s.screen.Size()
	return max((w-f.Width())/2, 0), max((h-f.Height())/2, 0)
}

// translateKey maps a tcell key event to a console key.
func translateKey(ev *tcell.EventKey) console.Key {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return console.KeyQuit
	case tcell.KeyEnter:
		if ev.Modifiers()&tcell.ModAlt != 0 {
			return console.KeyToggleFullscreen
		}
		return console.KeyNone
	case tcell.KeyUp:
		return console.KeyUp
	case tcell.KeyDown:
		return console.KeyDown
	case tcell.KeyLeft:
		return console.KeyLeft
	case tcell.KeyRight:
		return console.KeyRight
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return console.KeyQuit
		case 'f', 'F':
			return console.KeyToggleFullscreen
		case 'k':
			return console.KeyUp
		case 'j':
			return console.KeyDown
		case 'h':
			return console.KeyLeft
		case 'l':
			return console.KeyRight
		}
	}
	return console.KeyNone
}

func toTCell(c console.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
