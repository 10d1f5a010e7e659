package timeline

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	editordto "trackline/internal/modules/editor/dto"
	"trackline/internal/ui/components"
	"trackline/internal/ui/theme"
)

var waveGlyphs = []rune("▁▂▃▄▅▆▇█")

// ─── geometry ────────────────────────────────────────────────────────────────

// Geometry maps terminal cells to editor pixels. Gutter columns on the left
// hold track names; Top rows above the canvas hold the toolbar.
type Geometry struct {
	CellWidth  float64
	CellHeight float64
	Gutter     int
	Top        int
}

// InCanvas reports whether the cell lies over the ruler or the track lanes.
func (g Geometry) InCanvas(col, row int) bool {
	return col >= g.Gutter && row >= g.Top
}

// Pixel returns the center of the cell in viewport pixels.
func (g Geometry) Pixel(col, row int) (float64, float64) {
	x := (float64(col-g.Gutter) + 0.5) * g.CellWidth
	y := (float64(row-g.Top) + 0.5) * g.CellHeight
	return x, y
}

func (g Geometry) ViewportWidth(cols int) float64 {
	return float64(max(cols-g.Gutter, 0)) * g.CellWidth
}

func (g Geometry) col(px, scroll float64) int {
	return g.Gutter + int(math.Floor((px-scroll)/g.CellWidth))
}

func (g Geometry) row(py float64) int {
	return int(math.Floor(py / g.CellHeight))
}

func (g Geometry) span(px float64, size float64) int {
	return max(1, int(math.Round(px/size)))
}

// ─── toolbar ─────────────────────────────────────────────────────────────────

func Toolbar(st editordto.StateOutput, width int) string {
	play := theme.Hot.Render("▶")
	if st.IsPlaying {
		play = theme.Hot.Render("⏸")
	}
	zoomOut := theme.ButtonDisabled.Render("−")
	if st.Viewport.CanZoomOut {
		zoomOut = theme.Button.Render("−")
	}
	zoomIn := theme.ButtonDisabled.Render("+")
	if st.Viewport.CanZoomIn {
		zoomIn = theme.Button.Render("+")
	}
	left := strings.Join([]string{
		play,
		theme.Title.Render(st.TimeLabel),
		theme.Muted.Render("│"),
		zoomOut,
		fmt.Sprintf("%d%%", st.Viewport.ZoomPercent),
		zoomIn,
	}, " ")
	right := theme.Muted.Render(st.ProjectName)
	gap := max(1, width-lipgloss.Width(left)-lipgloss.Width(right))
	return theme.Bar.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

// ─── canvas ──────────────────────────────────────────────────────────────────

// Canvas draws the ruler, track lanes, clips, drag preview and playhead into
// a width x height block.
func Canvas(st editordto.StateOutput, g Geometry, width, height int) string {
	c := components.NewCanvas(width, height, theme.RowEven)
	scroll := st.Viewport.ScrollLeft

	rulerRows := max(1, int(math.Ceil(st.RulerHeight/g.CellHeight)))
	drawRuler(c, st, g, rulerRows, scroll)

	gutter := c.Style(theme.Gutter)
	lanes := []int{c.Style(theme.RowEven), c.Style(theme.RowOdd)}
	for i, row := range st.Rows {
		top := g.row(row.Top)
		h := g.span(row.Height, g.CellHeight)
		c.Fill(g.Gutter, top, width-g.Gutter, h, ' ', lanes[i%2])
		c.Fill(0, top, g.Gutter, h, ' ', gutter)
		c.Text(1, top, row.Track.Icon+" "+row.Track.Name, g.Gutter-2, gutter)
		var flags []string
		if row.Track.Muted {
			flags = append(flags, "muted")
		}
		if row.Track.Locked {
			flags = append(flags, "locked")
		}
		if len(flags) > 0 && h > 1 {
			c.Text(1, top+1, strings.Join(flags, " "), g.Gutter-2, gutter)
		}
	}

	heights := map[string]int{}
	for _, clip := range st.Clips {
		h := clipRows(g, clip.Height)
		heights[clip.Clip.ID] = h
		style := c.Style(theme.Clip(clip.Clip.Color))
		if clip.Dragging {
			style = c.Style(theme.Ghost)
		}
		drawClip(c, g, clip.Clip.Icon+" "+clip.Clip.Name, clip.Clip.Waveform,
			g.col(clip.Left, scroll), g.row(clip.Top), g.span(clip.Width, g.CellWidth), h, style)
	}

	if st.Drag != nil {
		p := st.Drag
		h, ok := heights[p.Session.ClipID]
		if !ok {
			h = 1
		}
		style := c.Style(theme.Preview(p.Session.Color))
		drawClip(c, g, p.Session.ClipName, nil,
			g.col(p.Left, scroll), g.row(p.Top), g.span(p.Width, g.CellWidth), h, style)
	}

	if col := g.col(st.PlayheadX, scroll); col >= g.Gutter && col < width {
		head := c.Style(theme.Playhead)
		c.Set(col, 0, '▼', head)
		for y := 1; y < height; y++ {
			c.Set(col, y, '│', head)
		}
	}
	return c.Render()
}

func drawRuler(c *components.Canvas, st editordto.StateOutput, g Geometry, rows int, scroll float64) {
	ruler := c.Style(theme.Ruler)
	major := c.Style(theme.RulerMajor)
	c.Fill(0, 0, c.Width(), rows, ' ', ruler)
	c.Text(1, rows-1, "time", g.Gutter-2, ruler)

	labelEnd := g.Gutter
	for _, m := range st.Markers {
		col := g.col(m.X, scroll)
		if col < g.Gutter || col >= c.Width() {
			continue
		}
		if !m.IsMajor {
			c.Set(col, rows-1, '·', ruler)
			continue
		}
		c.Set(col, rows-1, '│', major)
		if rows > 1 && col >= labelEnd {
			c.Text(col, rows-2, m.Label, 0, major)
			labelEnd = col + len(m.Label) + 1
		}
	}
}

func clipRows(g Geometry, height float64) int {
	h := g.span(height, g.CellHeight)
	if h > 2 {
		h--
	}
	return h
}

func drawClip(c *components.Canvas, g Geometry, label string, waveform []float64, x, y, w, h, style int) {
	if x < g.Gutter {
		w -= g.Gutter - x
		x = g.Gutter
	}
	if w <= 0 {
		return
	}
	c.Fill(x, y, w, h, ' ', style)
	c.Text(x+1, y, label, w-1, style)
	if len(waveform) == 0 || h < 2 {
		return
	}
	for i := 0; i < w; i++ {
		c.Set(x+i, y+h-1, waveGlyph(waveform, i, w), style)
	}
}

// waveGlyph resamples the waveform to width columns and returns the glyph for
// column i.
func waveGlyph(samples []float64, i, width int) rune {
	a := samples[i*len(samples)/width]
	idx := int(math.Round(math.Max(0, math.Min(1, a)) * float64(len(waveGlyphs)-1)))
	return waveGlyphs[idx]
}
