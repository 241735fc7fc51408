package render

import (
	"github.com/gdamore/tcell/v2"
)

// Cell is one composited terminal cell
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// RenderBuffer is a frame compositor. Renderers write cells in priority
// order; the flush hands the finished frame to tcell, which diffs against
// the physical screen.
type RenderBuffer struct {
	cells  []Cell
	width  int
	height int
	blank  Cell
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int, background tcell.Color) *RenderBuffer {
	b := &RenderBuffer{
		blank: Cell{Rune: ' ', Style: tcell.StyleDefault.Background(background)},
	}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocating only if capacity is insufficient
func (b *RenderBuffer) Resize(width, height int) {
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Width returns the buffer width
func (b *RenderBuffer) Width() int {
	return b.width
}

// Height returns the buffer height
func (b *RenderBuffer) Height() int {
	return b.height
}

// Clear resets all cells to the blank style using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = b.blank
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes one cell, silently dropping out-of-bounds writes
func (b *RenderBuffer) Set(x, y int, r rune, style tcell.Style) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Style: style}
}

// SetRune replaces the rune at a cell keeping the existing style
func (b *RenderBuffer) SetRune(x, y int, r rune) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x].Rune = r
}

// Get returns the cell at the given position, blank when out of bounds
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return b.blank
	}
	return b.cells[y*b.width+x]
}

// WriteString draws text left to right from (x, y), clipping at the edge
func (b *RenderBuffer) WriteString(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		b.Set(x, y, r, style)
		x++
	}
}

// FillRow draws count copies of r from (x, y) rightward
func (b *RenderBuffer) FillRow(x, y, count int, r rune, style tcell.Style) {
	for i := 0; i < count; i++ {
		b.Set(x+i, y, r, style)
	}
}

// FlushToScreen pushes the composited frame to tcell and shows it
func (b *RenderBuffer) FlushToScreen(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x := range row {
			screen.SetContent(x, y, row[x].Rune, nil, row[x].Style)
		}
	}
	screen.Show()
}
