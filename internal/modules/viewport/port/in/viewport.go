package in

import "trackline/internal/modules/viewport/dto"

// Usecase owns the zoom factor and horizontal scroll of one editing surface.
// Nothing here blocks, so no method takes a context.
type Usecase interface {
	State() dto.StateOutput
	ZoomIn() dto.StateOutput
	ZoomOut() dto.StateOutput
	SetZoom(zoom float64) dto.StateOutput
	TimeToPixels(t float64) float64
	PixelsToTime(px float64) float64
	ClipWidth(duration float64) float64
	TimelineWidth(duration float64) float64
	Markers(duration float64) []dto.MarkerOutput
	Resize(width float64)
	ScrollTo(left float64) float64
	EnsurePlayheadVisible(currentTime float64) float64
	FormatTime(seconds float64) string
}
