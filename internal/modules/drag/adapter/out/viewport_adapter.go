package out

import (
	dragout "trackline/internal/modules/drag/port/out"
	viewportin "trackline/internal/modules/viewport/port/in"
)

type ViewportAdapter struct {
	viewport viewportin.Usecase
}

func NewViewportAdapter(viewport viewportin.Usecase) dragout.Mapper {
	return ViewportAdapter{viewport: viewport}
}

func (a ViewportAdapter) PixelsToTime(px float64) float64 { return a.viewport.PixelsToTime(px) }
func (a ViewportAdapter) TimeToPixels(t float64) float64  { return a.viewport.TimeToPixels(t) }
func (a ViewportAdapter) ClipWidth(d float64) float64     { return a.viewport.ClipWidth(d) }
