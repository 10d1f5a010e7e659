package out

import (
	"context"

	"trackline/internal/modules/drag/domain"
)

// Tracks is the slice of the timeline model a drag needs.
type Tracks interface {
	ClipInTrack(ctx context.Context, clipID, trackID string) (domain.ClipSnapshot, error)
	TrackAtPosition(ctx context.Context, y float64) (string, bool, error)
	TrackTopOffset(ctx context.Context, trackID string) (float64, error)
	HasTrack(ctx context.Context, trackID string) (bool, error)
	MoveClip(ctx context.Context, clipID, fromTrackID, toTrackID string, startTime float64) error
}

type Mapper interface {
	PixelsToTime(px float64) float64
	TimeToPixels(t float64) float64
	ClipWidth(duration float64) float64
}
