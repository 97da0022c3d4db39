package tui

import (
	"strings"

	"todo-cli/internal/imui"

	xansi "github.com/charmbracelet/x/ansi"
)

type cell struct {
	r    rune
	pair imui.ColorPair
	// cont marks the right half of a double-width rune.
	cont bool
}

// Grid is an in-memory character grid implementing imui.Canvas. Paints outside
// the grid are clipped, never wrapped.
type Grid struct {
	width  int
	height int
	cells  []cell

	row, col int
}

func NewGrid(width, height int) *Grid {
	g := &Grid{}
	g.Resize(width, height)
	return g
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

func (g *Grid) Resize(width, height int) {
	g.width = max(width, 0)
	g.height = max(height, 0)
	g.cells = make([]cell, g.width*g.height)
	g.Clear()
}

func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = cell{r: ' ', pair: imui.RegularPair}
	}
	g.row, g.col = 0, 0
}

func (g *Grid) MoveTo(row, col int) { g.row, g.col = row, col }

func (g *Grid) AddString(text string, pair imui.ColorPair) {
	for _, r := range text {
		w := xansi.StringWidth(string(r))
		if w == 0 {
			continue
		}
		g.set(g.row, g.col, cell{r: r, pair: pair})
		for i := 1; i < w; i++ {
			g.set(g.row, g.col+i, cell{pair: pair, cont: true})
		}
		g.col += w
	}
}

func (g *Grid) set(row, col int, c cell) {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return
	}
	g.cells[row*g.width+col] = c
}

// Cell returns the rune and pair at a position; out-of-range cells read as blank.
func (g *Grid) Cell(row, col int) (rune, imui.ColorPair) {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return ' ', imui.RegularPair
	}
	c := g.cells[row*g.width+col]
	return c.r, c.pair
}

// Line returns a row as plain text without trailing blanks.
func (g *Grid) Line(row int) string {
	if row < 0 || row >= g.height {
		return ""
	}
	var b strings.Builder
	for _, c := range g.cells[row*g.width : (row+1)*g.width] {
		if !c.cont {
			b.WriteRune(c.r)
		}
	}
	return strings.TrimRight(b.String(), " ")
}

// Render styles each run of same-pair cells with the theme and joins the rows.
func (g *Grid) Render(th Theme) string {
	lines := make([]string, g.height)
	var run strings.Builder
	for y := 0; y < g.height; y++ {
		var line strings.Builder
		runPair := imui.RegularPair
		flush := func() {
			if run.Len() == 0 {
				return
			}
			line.WriteString(th.Style(runPair).Render(run.String()))
			run.Reset()
		}
		for _, c := range g.cells[y*g.width : (y+1)*g.width] {
			if c.cont {
				continue
			}
			if c.pair != runPair {
				flush()
				runPair = c.pair
			}
			run.WriteRune(c.r)
		}
		flush()
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}
