package domain

import (
	"fmt"
	"math"
)

// FormatTime renders seconds as MM:SS.d (tenths truncated).
func FormatTime(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}
	mins := int(math.Floor(seconds / 60))
	secs := int(math.Floor(math.Mod(seconds, 60)))
	tenths := int(math.Floor(math.Mod(seconds, 1) * 10))
	return fmt.Sprintf("%02d:%02d.%d", mins, secs, tenths)
}

func ZoomPercent(zoom float64) int {
	return int(math.Round(zoom * 100))
}
