package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pigroll/engine"
	"github.com/lixenwraith/pigroll/parameter"
	"github.com/lixenwraith/pigroll/scoring"
)

// Screen layout rows; the ring view takes everything between header and footer
const (
	rowTitle      = 0
	rowPlayerOne  = 2
	rowPlayerTwo  = 3
	rowTurn       = 4
	ringTop       = 6
	footerRows    = 4 // category labels, message, detail, help
	minRingRows   = 4
	viewHeightTop = 4.0 // world units shown above the ring surface
)

// pigGlyph is drawn centered on the pig's horizontal position
const pigGlyph = "(@@)"

// TerminalRenderer draws Snapshot values into a RenderBuffer
// It never touches controller state
type TerminalRenderer struct {
	buf  *RenderBuffer
	help string
}

// NewTerminalRenderer creates a renderer for a width x height terminal
func NewTerminalRenderer(width, height int, help string) *TerminalRenderer {
	return &TerminalRenderer{
		buf:  NewRenderBuffer(width, height),
		help: help,
	}
}

// Resize follows a terminal resize
func (r *TerminalRenderer) Resize(width, height int) {
	r.buf.Resize(width, height)
}

// Buffer exposes the composed frame
func (r *TerminalRenderer) Buffer() *RenderBuffer {
	return r.buf
}

// RenderFrame composes the entire frame from a snapshot
func (r *TerminalRenderer) RenderFrame(s engine.Snapshot, muted bool) {
	r.buf.Clear()
	base := r.buf.base

	r.drawTitle(s, muted, base)
	r.drawScoreboard(s, base)
	r.drawRing(s, base)
	r.drawFooter(s, base)
}

// Present flushes the composed frame to the terminal
func (r *TerminalRenderer) Present(screen Surface) {
	r.buf.Flush(screen)
}

func (r *TerminalRenderer) drawTitle(s engine.Snapshot, muted bool, base tcell.Style) {
	w, _ := r.buf.Size()
	title := base.Foreground(RgbTitle).Bold(true)
	r.buf.Fill(0, w, rowTitle, ' ', title.Reverse(true))
	r.buf.Text(1, rowTitle, fmt.Sprintf("PASS THE PIGS  first to %d", s.TargetScore), title.Reverse(true))

	status := s.Phase.String()
	if muted {
		status += "  [muted]"
	}
	r.buf.Text(w-len(status)-1, rowTitle, status, title.Reverse(true))
}

func (r *TerminalRenderer) drawScoreboard(s engine.Snapshot, base tcell.Style) {
	rows := [2]int{rowPlayerOne, rowPlayerTwo}
	for i, p := range s.Players {
		style := base.Foreground(RgbDim)
		marker := "  "
		if i == s.CurrentPlayer {
			style = base.Foreground(RgbActive).Bold(true)
			marker = "> "
		}
		r.buf.Text(1, rows[i], fmt.Sprintf("%s%-12s %3d", marker, p.Name, p.Score), style)
		r.drawProgress(22, rows[i], p.Score, s.TargetScore, style)
	}

	turn := fmt.Sprintf("Turn score: %d   Tosses: %d", s.TurnScore, s.Tosses)
	r.buf.Text(3, rowTurn, turn, base.Foreground(RgbScore))
}

// drawProgress draws a 20-cell bar toward the target score
func (r *TerminalRenderer) drawProgress(x, y, score, target int, style tcell.Style) {
	const width = 20
	filled := ProgressCells(score, target, width)
	for i := 0; i < width; i++ {
		ch := '░'
		if i < filled {
			ch = '█'
		}
		r.buf.Set(x+i, y, ch, style)
	}
}

// ProgressCells maps score/target onto a bar of width cells, truncating
func ProgressCells(score, target, width int) int {
	if target <= 0 || score <= 0 {
		return 0
	}
	if score >= target {
		return width
	}
	return score * width / target
}

// ringArea returns the ring view rows [top, bottom] with bottom the ring surface row
func (r *TerminalRenderer) ringArea() (top, bottom int, ok bool) {
	_, h := r.buf.Size()
	bottom = h - footerRows - 1
	if bottom-ringTop+1 < minRingRows {
		return 0, 0, false
	}
	return ringTop, bottom, true
}

// WorldToScreen maps a world (x, y) to a cell in the ring view
// x spans the ring with one unit of margin; y rises from the ring surface
func (r *TerminalRenderer) WorldToScreen(x, y float64) (col, row int) {
	w, _ := r.buf.Size()
	top, bottom, _ := r.ringArea()

	span := 2 * (parameter.RingHalfExtent + 1)
	col = int(math.Round((x + parameter.RingHalfExtent + 1) / span * float64(w-1)))

	height := y - parameter.FloorY
	rows := float64(bottom - top)
	row = bottom - 1 - int(math.Round(height/viewHeightTop*rows))
	if row < top {
		row = top
	}
	if row > bottom-1 {
		row = bottom - 1
	}
	return col, row
}

func (r *TerminalRenderer) drawRing(s engine.Snapshot, base tcell.Style) {
	_, bottom, ok := r.ringArea()
	if !ok {
		return
	}

	left, _ := r.WorldToScreen(-parameter.RingHalfExtent, parameter.FloorY)
	right, _ := r.WorldToScreen(parameter.RingHalfExtent, parameter.FloorY)
	r.buf.Fill(left, right+1, bottom, '▀', base.Foreground(RgbRing))
	r.buf.Set(left-1, bottom, '╞', base.Foreground(RgbRingEdge))
	r.buf.Set(right+1, bottom, '╡', base.Foreground(RgbRingEdge))

	for _, p := range s.Pigs {
		col, row := r.WorldToScreen(p.Position.X(), p.Position.Y())
		style := base.Foreground(RgbPig)
		if p.Resting {
			style = base.Foreground(RgbPigResting).Bold(true)
		}
		r.buf.Text(col-len(pigGlyph)/2, row, pigGlyph, style)

		if p.Resting {
			label := p.Category.String()
			r.buf.Text(col-len(label)/2, bottom+1, label, base.Foreground(CategoryColor(p.Category)))
		}
	}
}

func (r *TerminalRenderer) drawFooter(s engine.Snapshot, base tcell.Style) {
	_, h := r.buf.Size()
	rowMessage, rowDetail, rowHelp := h-3, h-2, h-1

	if s.Winner != nil {
		banner := fmt.Sprintf("*** %s wins with %d points! ***", s.Winner.Name, s.Winner.Score)
		r.buf.TextCentered(ringTop, banner, base.Foreground(RgbWinner).Bold(true))
	}

	switch {
	case s.LastResult != nil && s.LastResult.Outcome == scoring.PigOut:
		r.buf.TextCentered(rowMessage, s.Message, base.Foreground(RgbPigOut).Bold(true))
	case s.Message != "":
		r.buf.TextCentered(rowMessage, s.Message, base.Foreground(RgbScore))
	}

	if s.LastResult != nil {
		c := s.LastResult.Categories
		detail := fmt.Sprintf("%s / %s", c[0], c[1])
		r.buf.TextCentered(rowDetail, detail, base.Foreground(RgbDim))
	}

	r.buf.TextCentered(rowHelp, r.help, base.Foreground(RgbDim))
}
