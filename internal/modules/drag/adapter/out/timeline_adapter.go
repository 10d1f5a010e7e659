package out

import (
	"context"
	"fmt"

	"trackline/internal/modules/drag/domain"
	dragout "trackline/internal/modules/drag/port/out"
	timelinedto "trackline/internal/modules/timeline/dto"
	timelinein "trackline/internal/modules/timeline/port/in"
	apperrors "trackline/internal/platform/errors"
)

type TimelineAdapter struct {
	timeline timelinein.Usecase
}

func NewTimelineAdapter(timeline timelinein.Usecase) dragout.Tracks {
	return &TimelineAdapter{timeline: timeline}
}

func (a *TimelineAdapter) ClipInTrack(ctx context.Context, clipID, trackID string) (domain.ClipSnapshot, error) {
	project, err := a.timeline.Snapshot(ctx)
	if err != nil {
		return domain.ClipSnapshot{}, err
	}
	track, ok := project.Track(trackID)
	if !ok {
		return domain.ClipSnapshot{}, fmt.Errorf("track %q: %w", trackID, apperrors.ErrNotFound)
	}
	for _, c := range track.Clips {
		if c.ID == clipID {
			return domain.ClipSnapshot{
				ID:        c.ID,
				Type:      c.Type,
				Name:      c.Name,
				Color:     c.Color,
				StartTime: c.StartTime,
				Duration:  c.Duration,
			}, nil
		}
	}
	return domain.ClipSnapshot{}, fmt.Errorf("clip %q in track %q: %w", clipID, trackID, apperrors.ErrNotFound)
}

func (a *TimelineAdapter) TrackAtPosition(ctx context.Context, y float64) (string, bool, error) {
	loc, err := a.timeline.TrackAtPosition(ctx, y)
	if err != nil {
		return "", false, err
	}
	return loc.TrackID, loc.Found, nil
}

func (a *TimelineAdapter) TrackTopOffset(ctx context.Context, trackID string) (float64, error) {
	return a.timeline.TrackTopOffset(ctx, trackID)
}

func (a *TimelineAdapter) HasTrack(ctx context.Context, trackID string) (bool, error) {
	project, err := a.timeline.Snapshot(ctx)
	if err != nil {
		return false, err
	}
	return project.HasTrack(trackID), nil
}

func (a *TimelineAdapter) MoveClip(ctx context.Context, clipID, fromTrackID, toTrackID string, startTime float64) error {
	_, err := a.timeline.MoveClip(ctx, timelinedto.MoveClipInput{
		ClipID:       clipID,
		FromTrackID:  fromTrackID,
		ToTrackID:    toTrackID,
		NewStartTime: startTime,
	})
	return err
}
