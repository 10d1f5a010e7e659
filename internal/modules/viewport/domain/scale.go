package domain

import (
	"fmt"
	"math"

	apperrors "trackline/internal/platform/errors"
)

// Scale maps seconds to horizontal pixels: BaseScale pixels per second at
// zoom 1, multiplied by Zoom.
type Scale struct {
	BaseScale float64
	Zoom      float64
}

func (s Scale) PixelsPerSecond() float64 {
	return s.BaseScale * s.Zoom
}

func (s Scale) TimeToPixels(t float64) float64 {
	return t * s.BaseScale * s.Zoom
}

func (s Scale) PixelsToTime(p float64) float64 {
	return p / (s.BaseScale * s.Zoom)
}

// ClipWidth is the rendered width of a clip, never narrower than minWidth.
func (s Scale) ClipWidth(duration, minWidth float64) float64 {
	return math.Max(minWidth, duration*s.BaseScale*s.Zoom)
}

type ZoomBounds struct {
	Min  float64
	Max  float64
	Step float64
}

func (b ZoomBounds) Validate() error {
	if b.Min <= 0 || b.Min >= b.Max {
		return fmt.Errorf("zoom bounds [%g, %g]: %w", b.Min, b.Max, apperrors.ErrInvalidArgument)
	}
	if b.Step <= 1 {
		return fmt.Errorf("zoom step %g: %w", b.Step, apperrors.ErrInvalidArgument)
	}
	return nil
}

func (b ZoomBounds) Clamp(z float64) float64 {
	if math.IsNaN(z) {
		return b.Min
	}
	return math.Min(b.Max, math.Max(b.Min, z))
}

func (b ZoomBounds) In(z float64) float64 {
	return b.Clamp(z * b.Step)
}

func (b ZoomBounds) Out(z float64) float64 {
	return b.Clamp(z / b.Step)
}

func (b ZoomBounds) AtMax(z float64) bool { return z >= b.Max }
func (b ZoomBounds) AtMin(z float64) bool { return z <= b.Min }
