package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Cell is one terminal character with its style
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Surface is the subset of tcell.Screen the buffer flushes to
type Surface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
}

// RenderBuffer is an off-screen frame composed before flushing to the terminal
type RenderBuffer struct {
	cells  []Cell
	width  int
	height int
	base   tcell.Style
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{base: tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
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

// Clear resets all cells to blank using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Style: b.base}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *RenderBuffer) Size() (int, int) {
	return b.width, b.height
}

// inBounds returns true if in screen bounds
func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes one cell; out-of-bounds writes are dropped
func (b *RenderBuffer) Set(x, y int, r rune, style tcell.Style) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Style: style}
}

// Text writes s starting at x and returns the column after the last rune
func (b *RenderBuffer) Text(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		b.Set(x, y, r, style)
		x++
	}
	return x
}

// TextCentered writes s centered on row y
func (b *RenderBuffer) TextCentered(y int, s string, style tcell.Style) {
	b.Text((b.width-len([]rune(s)))/2, y, s, style)
}

// Fill sets every cell of row y in [x0, x1) to r
func (b *RenderBuffer) Fill(x0, x1, y int, r rune, style tcell.Style) {
	for x := x0; x < x1; x++ {
		b.Set(x, y, r, style)
	}
}

// Get returns the cell at (x, y)
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Row returns the text of row y with trailing blanks trimmed
func (b *RenderBuffer) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for x := 0; x < b.width; x++ {
		sb.WriteRune(b.cells[y*b.width+x].Rune)
	}
	return strings.TrimRight(sb.String(), " ")
}

// Flush copies every cell to the surface and shows it
func (b *RenderBuffer) Flush(s Surface) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			s.SetContent(x, y, c.Rune, nil, c.Style)
		}
	}
	s.Show()
}
