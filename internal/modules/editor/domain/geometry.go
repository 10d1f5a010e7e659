package domain

import "math"

// MaxHandleWidth caps the resize handle at each clip edge, in pixels.
const MaxHandleWidth = 8.0

type Zone string

const (
	ZoneBody        Zone = "body"
	ZoneLeftHandle  Zone = "left-handle"
	ZoneRightHandle Zone = "right-handle"
)

// Box is the rendered rectangle of one clip in timeline-content pixels.
type Box struct {
	ClipID  string
	TrackID string
	Left    float64
	Top     float64
	Width   float64
	Height  float64
}

func (b Box) Contains(x, y float64) bool {
	return x >= b.Left && x < b.Left+b.Width && y >= b.Top && y < b.Top+b.Height
}

// HandleWidth is a fifth of the clip width, never more than MaxHandleWidth.
func HandleWidth(width float64) float64 {
	return math.Min(MaxHandleWidth, width/5)
}

func (b Box) ZoneAt(x float64) Zone {
	h := HandleWidth(b.Width)
	switch {
	case x < b.Left+h:
		return ZoneLeftHandle
	case x >= b.Left+b.Width-h:
		return ZoneRightHandle
	default:
		return ZoneBody
	}
}

// HitTest returns the topmost box under (x, y). Boxes later in the slice
// are drawn over earlier ones.
func HitTest(boxes []Box, x, y float64) (Box, Zone, bool) {
	for i := len(boxes) - 1; i >= 0; i-- {
		if boxes[i].Contains(x, y) {
			return boxes[i], boxes[i].ZoneAt(x), true
		}
	}
	return Box{}, "", false
}

// Row is the vertical band of one track below the ruler.
type Row struct {
	TrackID string
	Top     float64
	Height  float64
}

// Rows stacks tracks of the given heights under a ruler band.
func Rows(rulerHeight float64, ids []string, heights []float64) []Row {
	rows := make([]Row, 0, len(ids))
	top := rulerHeight
	for i, id := range ids {
		rows = append(rows, Row{TrackID: id, Top: top, Height: heights[i]})
		top += heights[i]
	}
	return rows
}

// ClipBox insets a clip inside its row.
func ClipBox(row Row, clipID string, left, width, inset float64) Box {
	return Box{
		ClipID:  clipID,
		TrackID: row.TrackID,
		Left:    left,
		Top:     row.Top + inset,
		Width:   width,
		Height:  math.Max(0, row.Height-2*inset),
	}
}
