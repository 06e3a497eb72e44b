package console

import "github.com/mattn/go-runewidth"

// Cell is a single character cell of a frame.
type Cell struct {
	Glyph rune
	Fg    Color
	Bg    Color
}

// blank is the cleared state of a cell.
var blank = Cell{Glyph: ' ', Fg: White, Bg: Black}

// Frame is an offscreen grid of cells.
type Frame struct {
	width  int
	height int
	cells  []Cell
}

// NewFrame creates a cleared frame of the given size.
func NewFrame(width, height int) *Frame {
	f := &Frame{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	f.Clear()
	return f
}

// Width returns the frame width in cells.
func (f *Frame) Width() int {
	return f.width
}

// Height returns the frame height in cells.
func (f *Frame) Height() int {
	return f.height
}

// Clear resets every cell to a blank glyph on black.
func (f *Frame) Clear() {
	for i := range f.cells {
		f.cells[i] = blank
	}
}

// Cell returns the cell at (x, y). Out-of-range coordinates yield a blank cell.
func (f *Frame) Cell(x, y int) Cell {
	if !f.contains(x, y) {
		return blank
	}
	return f.cells[y*f.width+x]
}

// Put draws a glyph with the given foreground color, leaving the background
// untouched. Glyphs wider than one cell are replaced with '?'.
func (f *Frame) Put(x, y int, glyph rune, fg Color) {
	if !f.contains(x, y) {
		return
	}
	if runewidth.RuneWidth(glyph) != 1 {
		glyph = '?'
	}
	c := &f.cells[y*f.width+x]
	c.Glyph = glyph
	c.Fg = fg
}

// SetBackground sets the background color of the cell at (x, y).
func (f *Frame) SetBackground(x, y int, bg Color) {
	if !f.contains(x, y) {
		return
	}
	f.cells[y*f.width+x].Bg = bg
}

// Blit copies a w by h region of src starting at (sx, sy) onto f at (dx, dy).
// Cells falling outside either frame are skipped.
func (f *Frame) Blit(src *Frame, sx, sy, w, h, dx, dy int) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !src.contains(sx+x, sy+y) || !f.contains(dx+x, dy+y) {
				continue
			}
			f.cells[(dy+y)*f.width+dx+x] = src.cells[(sy+y)*src.width+sx+x]
		}
	}
}

func (f *Frame) contains(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}
