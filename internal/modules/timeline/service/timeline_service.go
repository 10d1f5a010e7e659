package service

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"trackline/internal/modules/timeline/domain"
	timelineout "trackline/internal/modules/timeline/port/out"
	"trackline/internal/platform/clock"
	apperrors "trackline/internal/platform/errors"
	"trackline/internal/platform/id"
	"trackline/internal/platform/slug"
	"trackline/internal/platform/tx"
)

// TimelineService is the single owner of the live project. Reads take a
// snapshot under the read lock; moves run inside the tx manager and swap
// clip membership under the write lock in one step.
type TimelineService struct {
	source  timelineout.ProjectSource
	journal timelineout.MoveJournal
	tx      tx.Manager
	clock   clock.Clock
	idGen   id.Generator
	layout  domain.Layout
	log     *zap.Logger

	mu      sync.RWMutex
	loaded  bool
	project domain.Project
	key     string
}

func NewTimelineService(
	source timelineout.ProjectSource,
	journal timelineout.MoveJournal,
	txm tx.Manager,
	clk clock.Clock,
	idGen id.Generator,
	layout domain.Layout,
	log *zap.Logger,
) *TimelineService {
	if txm == nil {
		txm = tx.NoopManager{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &TimelineService{
		source:  source,
		journal: journal,
		tx:      txm,
		clock:   clk,
		idGen:   idGen,
		layout:  layout,
		log:     log,
	}
}

// Load pulls the initial project from the source and validates it. It may be
// called once; later calls fail with ErrInvalidState.
func (s *TimelineService) Load(ctx context.Context) error {
	if s.source == nil {
		return fmt.Errorf("project source is not configured: %w", apperrors.ErrInvalidState)
	}
	project, err := s.source.Load(ctx)
	if err != nil {
		return fmt.Errorf("load project: %w", err)
	}
	if err := project.Validate(); err != nil {
		return fmt.Errorf("validate project: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return fmt.Errorf("project already loaded: %w", apperrors.ErrInvalidState)
	}
	s.project = project
	s.key = slug.Make(project.Metadata.Name)
	s.loaded = true
	s.log.Info("project loaded",
		zap.String("project", s.key),
		zap.Int("tracks", len(project.Tracks)),
		zap.Int("clips", project.ClipCount()),
		zap.Float64("duration", project.Metadata.Duration),
	)
	return nil
}

func (s *TimelineService) Snapshot(_ context.Context) (domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return domain.Project{}, errNotLoaded
	}
	return s.project.Clone(), nil
}

func (s *TimelineService) Layout() domain.Layout {
	return s.layout
}

// MoveClip applies the move and then journals it. A journal failure is
// logged and does not undo the edit.
func (s *TimelineService) MoveClip(ctx context.Context, clipID, fromTrackID, toTrackID string, newStartTime float64) (domain.MoveRecord, error) {
	var record domain.MoveRecord
	err := s.tx.Within(ctx, func(ctx context.Context) error {
		s.mu.Lock()
		if !s.loaded {
			s.mu.Unlock()
			return errNotLoaded
		}
		before, _, lookupErr := s.project.Clip(clipID)
		moved, err := s.project.MoveClip(clipID, fromTrackID, toTrackID, newStartTime)
		key := s.key
		s.mu.Unlock()
		if err != nil {
			return err
		}
		if lookupErr != nil {
			return lookupErr
		}

		record = domain.MoveRecord{
			Project:     key,
			ClipID:      moved.ID,
			FromTrackID: fromTrackID,
			ToTrackID:   toTrackID,
			FromStart:   before.StartTime,
			ToStart:     moved.StartTime,
		}
		if s.idGen != nil {
			record.ID = s.idGen.New()
		}
		if s.clock != nil {
			record.MovedAt = s.clock.Now()
		}
		s.log.Info("clip moved",
			zap.String("clip", clipID),
			zap.String("from", fromTrackID),
			zap.String("to", toTrackID),
			zap.Float64("start", moved.StartTime),
		)
		if s.journal != nil {
			if err := s.journal.Append(ctx, record); err != nil {
				s.log.Warn("journal append failed", zap.String("clip", clipID), zap.Error(err))
			}
		}
		return nil
	})
	if err != nil {
		return domain.MoveRecord{}, err
	}
	return record, nil
}

func (s *TimelineService) FindTrackContainingClip(_ context.Context, clipID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return "", errNotLoaded
	}
	return s.project.FindTrackContainingClip(clipID)
}

func (s *TimelineService) TrackAtPosition(_ context.Context, y float64) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return "", false, errNotLoaded
	}
	trackID, ok := s.layout.TrackAtPosition(y, s.project.Tracks)
	return trackID, ok, nil
}

func (s *TimelineService) TrackTopOffset(_ context.Context, trackID string) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return 0, errNotLoaded
	}
	return s.layout.TrackTopOffset(trackID, s.project.Tracks)
}

func (s *TimelineService) History(ctx context.Context, limit int) ([]domain.MoveRecord, error) {
	if s.journal == nil {
		return []domain.MoveRecord{}, nil
	}
	s.mu.RLock()
	key := s.key
	s.mu.RUnlock()
	return s.journal.Recent(ctx, key, limit)
}

var errNotLoaded = fmt.Errorf("project not loaded: %w", apperrors.ErrInvalidState)
