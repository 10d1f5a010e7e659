package usecase

import (
	"context"

	"trackline/internal/modules/timeline/domain"
	"trackline/internal/modules/timeline/dto"
	timelinein "trackline/internal/modules/timeline/port/in"
	"trackline/internal/modules/timeline/service"
)

type Interactor struct {
	svc *service.TimelineService
}

func NewInteractor(svc *service.TimelineService) timelinein.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Snapshot(ctx context.Context) (dto.ProjectOutput, error) {
	project, err := i.svc.Snapshot(ctx)
	if err != nil {
		return dto.ProjectOutput{}, err
	}
	return mapProject(project), nil
}

func (i *Interactor) MoveClip(ctx context.Context, input dto.MoveClipInput) (dto.MoveClipOutput, error) {
	record, err := i.svc.MoveClip(ctx, input.ClipID, input.FromTrackID, input.ToTrackID, input.NewStartTime)
	if err != nil {
		return dto.MoveClipOutput{}, err
	}
	return dto.MoveClipOutput{
		ClipID:      record.ClipID,
		FromTrackID: record.FromTrackID,
		ToTrackID:   record.ToTrackID,
		FromStart:   record.FromStart,
		StartTime:   record.ToStart,
	}, nil
}

func (i *Interactor) FindTrackContainingClip(ctx context.Context, clipID string) (string, error) {
	return i.svc.FindTrackContainingClip(ctx, clipID)
}

func (i *Interactor) TrackAtPosition(ctx context.Context, y float64) (dto.LocateOutput, error) {
	trackID, ok, err := i.svc.TrackAtPosition(ctx, y)
	if err != nil {
		return dto.LocateOutput{}, err
	}
	return dto.LocateOutput{TrackID: trackID, Found: ok}, nil
}

func (i *Interactor) TrackTopOffset(ctx context.Context, trackID string) (float64, error) {
	return i.svc.TrackTopOffset(ctx, trackID)
}

func (i *Interactor) History(ctx context.Context, limit int) ([]dto.MoveRecordOutput, error) {
	records, err := i.svc.History(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MoveRecordOutput, 0, len(records))
	for _, r := range records {
		out = append(out, dto.MoveRecordOutput{
			ID:          r.ID,
			ClipID:      r.ClipID,
			FromTrackID: r.FromTrackID,
			ToTrackID:   r.ToTrackID,
			FromStart:   r.FromStart,
			ToStart:     r.ToStart,
			MovedAt:     r.MovedAt,
		})
	}
	return out, nil
}

func mapProject(p domain.Project) dto.ProjectOutput {
	out := dto.ProjectOutput{
		Name:      p.Metadata.Name,
		Duration:  p.Metadata.Duration,
		FrameRate: p.Metadata.FrameRate,
		Width:     p.Metadata.Resolution.Width,
		Height:    p.Metadata.Resolution.Height,
		Tracks:    make([]dto.TrackOutput, 0, len(p.Tracks)),
	}
	for _, t := range p.Tracks {
		track := dto.TrackOutput{
			ID:     t.ID,
			Type:   string(t.Type),
			Name:   t.Name,
			Icon:   domain.StyleForTrack(t.Type).Icon,
			Height: t.Height,
			Muted:  t.Muted,
			Locked: t.Locked,
			Clips:  make([]dto.ClipOutput, 0, len(t.Clips)),
		}
		for _, c := range t.Clips {
			track.Clips = append(track.Clips, dto.ClipOutput{
				ID:        c.ID,
				Type:      string(c.Type),
				Name:      c.Name,
				Icon:      domain.StyleForClip(c.Type).Icon,
				StartTime: c.StartTime,
				Duration:  c.Duration,
				Color:     c.Color,
				Volume:    c.Volume,
				Waveform:  c.Waveform,
				Extra:     c.Extra,
			})
		}
		out.Tracks = append(out.Tracks, track)
	}
	return out
}
