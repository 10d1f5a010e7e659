package domain

import (
	"fmt"
	"math"

	apperrors "trackline/internal/platform/errors"
)

type Point struct {
	X float64
	Y float64
}

type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseDragging Phase = "dragging"
)

// ClipSnapshot is the clip as it was when the drag began.
type ClipSnapshot struct {
	ID        string
	Type      string
	Name      string
	Color     string
	StartTime float64
	Duration  float64
}

type Session struct {
	Clip              ClipSnapshot
	OriginTrackID     string
	OriginalStartTime float64
	PointerStart      Point
	Pointer           Point
	TargetTrackID     string
	PendingStartTime  float64
}

// Engine tracks at most one in-progress clip move.
type Engine struct {
	session *Session
}

func (e *Engine) Phase() Phase {
	if e.session == nil {
		return PhaseIdle
	}
	return PhaseDragging
}

func (e *Engine) Session() (Session, bool) {
	if e.session == nil {
		return Session{}, false
	}
	return *e.session, true
}

func (e *Engine) Begin(clip ClipSnapshot, trackID string, p Point) error {
	if e.session != nil {
		return fmt.Errorf("drag of clip %q already in progress: %w", e.session.Clip.ID, apperrors.ErrInvalidState)
	}
	e.session = &Session{
		Clip:              clip,
		OriginTrackID:     trackID,
		OriginalStartTime: clip.StartTime,
		PointerStart:      p,
		Pointer:           p,
		TargetTrackID:     trackID,
		PendingStartTime:  clip.StartTime,
	}
	return nil
}

// Update moves the pending position by the horizontal pointer delta since
// Begin, converted to seconds by toTime, and never below 0. The target track
// follows locate; when locate finds no track (pointer over the ruler band)
// the previous target is kept.
func (e *Engine) Update(p Point, toTime func(px float64) float64, locate func(y float64) (string, bool)) (Session, error) {
	if e.session == nil {
		return Session{}, fmt.Errorf("no drag in progress: %w", apperrors.ErrInvalidState)
	}
	s := e.session
	s.Pointer = p
	s.PendingStartTime = math.Max(0, s.OriginalStartTime+toTime(p.X-s.PointerStart.X))
	if trackID, ok := locate(p.Y); ok && trackID != "" {
		s.TargetTrackID = trackID
	}
	return *s, nil
}

// End discards the session and returns it so the caller can commit it.
func (e *Engine) End() (Session, error) {
	if e.session == nil {
		return Session{}, fmt.Errorf("no drag in progress: %w", apperrors.ErrInvalidState)
	}
	s := *e.session
	e.session = nil
	return s, nil
}
