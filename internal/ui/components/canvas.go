package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// wide marks the right half of a double-width rune.
const wide rune = 0

type cell struct {
	r     rune
	style int
}

// Canvas is a fixed grid of styled cells. Later draws overwrite earlier ones
// and adjacent cells sharing a style are rendered as one run.
type Canvas struct {
	width  int
	height int
	cells  [][]cell
	styles []lipgloss.Style
}

func NewCanvas(width, height int, background lipgloss.Style) *Canvas {
	width = max(width, 0)
	height = max(height, 0)
	c := &Canvas{width: width, height: height, styles: []lipgloss.Style{background}}
	c.cells = make([][]cell, height)
	for y := range c.cells {
		row := make([]cell, width)
		for x := range row {
			row[x] = cell{r: ' '}
		}
		c.cells[y] = row
	}
	return c
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// Style registers st and returns its handle for the drawing calls.
func (c *Canvas) Style(st lipgloss.Style) int {
	c.styles = append(c.styles, st)
	return len(c.styles) - 1
}

func (c *Canvas) Set(x, y int, r rune, style int) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	row := c.cells[y]
	if row[x].r == wide && x > 0 {
		row[x-1].r = ' '
	}
	if x+1 < c.width && row[x+1].r == wide {
		row[x+1].r = ' '
	}
	row[x] = cell{r: r, style: style}
}

// Restyle keeps the rune at (x, y) and changes its style.
func (c *Canvas) Restyle(x, y int, style int) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.cells[y][x].style = style
}

func (c *Canvas) Fill(x, y, w, h int, r rune, style int) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			c.Set(x+dx, y+dy, r, style)
		}
	}
}

// Text writes s from (x, y) and clips it at limit cells (no limit when
// limit <= 0). Double-width runes take two cells.
func (c *Canvas) Text(x, y int, s string, limit int, style int) {
	i := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if (limit > 0 && i+w > limit) || x+i+w > c.width {
			return
		}
		c.Set(x+i, y, r, style)
		if w == 2 && y >= 0 && y < c.height && x+i >= 0 {
			c.Set(x+i+1, y, ' ', style)
			c.cells[y][x+i+1].r = wide
		}
		i += w
	}
}

func (c *Canvas) Render() string {
	var sb strings.Builder
	for y, row := range c.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && row[x].style == row[start].style {
				continue
			}
			run := make([]rune, 0, x-start)
			for _, cl := range row[start:x] {
				if cl.r != wide {
					run = append(run, cl.r)
				}
			}
			sb.WriteString(c.styles[row[start].style].Render(string(run)))
			start = x
		}
	}
	return sb.String()
}
