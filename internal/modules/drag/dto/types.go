package dto

type BeginInput struct {
	ClipID  string
	TrackID string
	X       float64
	Y       float64
}

type PointInput struct {
	X float64
	Y float64
}

type SessionOutput struct {
	ClipID            string
	ClipName          string
	ClipType          string
	Color             string
	Duration          float64
	OriginTrackID     string
	OriginalStartTime float64
	TargetTrackID     string
	PendingStartTime  float64
}

// PreviewOutput places the floating copy of the dragged clip, in pixels
// relative to the top-left of the ruler band.
type PreviewOutput struct {
	Session SessionOutput
	Left    float64
	Top     float64
	Width   float64
}

type DropOutput struct {
	ClipID      string
	FromTrackID string
	ToTrackID   string
	StartTime   float64
	Moved       bool
	Recovered   bool
	Cancelled   bool
}
