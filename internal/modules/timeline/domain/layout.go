package domain

import (
	"fmt"

	apperrors "trackline/internal/platform/errors"
)

// Layout holds the vertical geometry of the track area: a ruler band of
// RulerHeight pixels sits above the first track, and clips are drawn
// ClipInset pixels below their track's top edge.
type Layout struct {
	RulerHeight float64
	ClipInset   float64
}

// TrackAtPosition resolves a vertical offset measured from the top of the
// ruler band. Offsets inside the band (or with no tracks at all) resolve to no
// track; offsets past the last track clamp to the last track.
func (l Layout) TrackAtPosition(y float64, tracks []Track) (string, bool) {
	if y <= l.RulerHeight || len(tracks) == 0 {
		return "", false
	}
	rel := y - l.RulerHeight
	bottom := 0.0
	for _, t := range tracks {
		bottom += t.Height
		if rel <= bottom {
			return t.ID, true
		}
	}
	return tracks[len(tracks)-1].ID, true
}

// TrackTopOffset is where a clip preview on trackID is drawn: the heights of
// all preceding tracks plus the ruler band and the clip inset.
func (l Layout) TrackTopOffset(trackID string, tracks []Track) (float64, error) {
	top := 0.0
	for _, t := range tracks {
		if t.ID == trackID {
			return l.RulerHeight + top + l.ClipInset, nil
		}
		top += t.Height
	}
	return 0, fmt.Errorf("track %q: %w", trackID, apperrors.ErrNotFound)
}

// TotalHeight is the height of the ruler band plus every track.
func (l Layout) TotalHeight(tracks []Track) float64 {
	h := l.RulerHeight
	for _, t := range tracks {
		h += t.Height
	}
	return h
}
