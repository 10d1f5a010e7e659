package domain

import (
	"fmt"
	"math"
	"strconv"
)

const epsilon = 1e-9

// MaxMarkers bounds one ruler. Longer rulers are cut at the last marker that
// fits.
const MaxMarkers = 100_000

// Marker is one ruler tick. Only major markers carry a visible label.
type Marker struct {
	Time    float64
	Label   string
	IsMajor bool
}

// MarkerInterval is the tick spacing in seconds for a zoom factor; higher
// zoom gives finer ticks.
func MarkerInterval(zoom float64) float64 {
	switch {
	case zoom < 0.3:
		return 5
	case zoom < 0.6:
		return 2
	case zoom < 1.0:
		return 1
	case zoom < 2.0:
		return 0.5
	case zoom < 3.0:
		return 0.2
	default:
		return 0.1
	}
}

// GenerateMarkers returns a marker for every multiple of the zoom interval in
// [0, duration], at most MaxMarkers of them. Times are computed from the
// integer step index and rounded to the millisecond so repeated calls yield
// identical values.
func GenerateMarkers(duration, zoom float64) []Marker {
	if duration < 0 || math.IsNaN(duration) || math.IsInf(duration, 0) {
		return nil
	}
	interval := MarkerInterval(zoom)
	steps := math.Floor(duration/interval + epsilon)
	n := MaxMarkers - 1
	if steps < float64(n) {
		n = int(steps)
	}
	markers := make([]Marker, 0, n+1)
	for i := 0; i <= n; i++ {
		t := math.Round(float64(i)*interval*1000) / 1000
		if t > duration+epsilon {
			break
		}
		markers = append(markers, Marker{
			Time:    t,
			Label:   MarkerLabel(t),
			IsMajor: math.Abs(t-math.Round(t)) < epsilon,
		})
	}
	return markers
}

// MarkerLabel renders sub-second times as whole milliseconds rounded to the
// tenth of a second ("300ms") and everything else in seconds ("12s", "1.5s").
func MarkerLabel(t float64) string {
	if t < 1 {
		return fmt.Sprintf("%dms", int(math.Round(t*10))*100)
	}
	return strconv.FormatFloat(t, 'f', -1, 64) + "s"
}
