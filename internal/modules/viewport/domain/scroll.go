package domain

import "math"

// EnsurePlayheadVisible returns the scroll offset that keeps a playhead at
// playheadPixels inside [scrollLeft, scrollLeft+viewportWidth-margin). When
// it is already inside, scrollLeft is returned unchanged; otherwise the
// playhead is centered.
func EnsurePlayheadVisible(playheadPixels, viewportWidth, scrollLeft, margin float64) float64 {
	if playheadPixels >= scrollLeft && playheadPixels < scrollLeft+viewportWidth-margin {
		return scrollLeft
	}
	return math.Max(0, playheadPixels-viewportWidth/2)
}
