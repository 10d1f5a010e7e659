package domain

import "time"

// MoveRecord is one committed moveClip, kept as an audit trail.
type MoveRecord struct {
	ID          string
	Project     string
	ClipID      string
	FromTrackID string
	ToTrackID   string
	FromStart   float64
	ToStart     float64
	MovedAt     time.Time
}
