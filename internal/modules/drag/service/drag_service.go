package service

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"trackline/internal/modules/drag/domain"
	dragout "trackline/internal/modules/drag/port/out"
	apperrors "trackline/internal/platform/errors"
)

// Drop is the outcome of ending a drag.
type Drop struct {
	Session   domain.Session
	Moved     bool
	Recovered bool
}

// Placement is where the floating preview of the dragged clip goes.
type Placement struct {
	Session domain.Session
	Left    float64
	Top     float64
	Width   float64
}

type DragService struct {
	tracks dragout.Tracks
	mapper dragout.Mapper
	log    *zap.Logger

	mu     sync.Mutex
	engine domain.Engine
}

func NewDragService(tracks dragout.Tracks, mapper dragout.Mapper, log *zap.Logger) *DragService {
	if log == nil {
		log = zap.NewNop()
	}
	return &DragService{tracks: tracks, mapper: mapper, log: log}
}

// Begin snapshots the clip as it currently sits in trackID.
func (s *DragService) Begin(ctx context.Context, clipID, trackID string, p domain.Point) (domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.engine.Phase() != domain.PhaseIdle {
		active, _ := s.engine.Session()
		return domain.Session{}, fmt.Errorf("drag of clip %q already in progress: %w", active.Clip.ID, apperrors.ErrInvalidState)
	}
	clip, err := s.tracks.ClipInTrack(ctx, clipID, trackID)
	if err != nil {
		return domain.Session{}, err
	}
	if err := s.engine.Begin(clip, trackID, p); err != nil {
		return domain.Session{}, err
	}
	s.log.Debug("drag started", zap.String("clip", clipID), zap.String("track", trackID))
	session, _ := s.engine.Session()
	return session, nil
}

func (s *DragService) Update(ctx context.Context, p domain.Point) (domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var locateErr error
	session, err := s.engine.Update(p, s.mapper.PixelsToTime, func(y float64) (string, bool) {
		trackID, ok, err := s.tracks.TrackAtPosition(ctx, y)
		if err != nil {
			locateErr = err
			return "", false
		}
		return trackID, ok
	})
	if err != nil {
		return domain.Session{}, err
	}
	if locateErr != nil {
		return domain.Session{}, locateErr
	}
	return session, nil
}

// End commits the pending move and returns to idle. A target track that has
// disappeared since the last update leaves the clip where it was and is
// reported through Drop.Recovered rather than as an error.
func (s *DragService) End(ctx context.Context) (Drop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, err := s.engine.End()
	if err != nil {
		return Drop{}, err
	}

	exists, err := s.tracks.HasTrack(ctx, session.TargetTrackID)
	if err != nil {
		return Drop{Session: session}, err
	}
	if !exists {
		s.log.Warn("drop target track missing, clip left in place",
			zap.String("clip", session.Clip.ID),
			zap.String("origin", session.OriginTrackID),
			zap.String("target", session.TargetTrackID),
		)
		return Drop{Session: session, Recovered: true}, nil
	}

	err = s.tracks.MoveClip(ctx, session.Clip.ID, session.OriginTrackID, session.TargetTrackID, session.PendingStartTime)
	if err != nil {
		return Drop{Session: session}, fmt.Errorf("commit drop of clip %q: %w", session.Clip.ID, err)
	}
	return Drop{Session: session, Moved: true}, nil
}

// Cancel discards the session without touching the timeline.
func (s *DragService) Cancel(_ context.Context) (domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, err := s.engine.End()
	if err != nil {
		return domain.Session{}, err
	}
	s.log.Debug("drag cancelled", zap.String("clip", session.Clip.ID))
	return session, nil
}

func (s *DragService) Active() (domain.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Session()
}

func (s *DragService) Preview(ctx context.Context) (Placement, bool, error) {
	session, ok := s.Active()
	if !ok {
		return Placement{}, false, nil
	}
	top, err := s.tracks.TrackTopOffset(ctx, session.TargetTrackID)
	if err != nil {
		return Placement{}, false, err
	}
	return Placement{
		Session: session,
		Left:    s.mapper.TimeToPixels(session.PendingStartTime),
		Top:     top,
		Width:   s.mapper.ClipWidth(session.Clip.Duration),
	}, true, nil
}
