package dto

type StateOutput struct {
	Zoom            float64
	ZoomPercent     int
	CanZoomIn       bool
	CanZoomOut      bool
	PixelsPerSecond float64
	ScrollLeft      float64
	Width           float64
}

type MarkerOutput struct {
	Time    float64
	X       float64
	Label   string
	IsMajor bool
}
