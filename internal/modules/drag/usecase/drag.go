package usecase

import (
	"context"

	"trackline/internal/modules/drag/domain"
	"trackline/internal/modules/drag/dto"
	dragin "trackline/internal/modules/drag/port/in"
	"trackline/internal/modules/drag/service"
)

type Interactor struct {
	svc *service.DragService
}

func NewInteractor(svc *service.DragService) dragin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) BeginDrag(ctx context.Context, input dto.BeginInput) (dto.SessionOutput, error) {
	session, err := i.svc.Begin(ctx, input.ClipID, input.TrackID, domain.Point{X: input.X, Y: input.Y})
	if err != nil {
		return dto.SessionOutput{}, err
	}
	return mapSession(session), nil
}

func (i *Interactor) UpdateDrag(ctx context.Context, input dto.PointInput) (dto.SessionOutput, error) {
	session, err := i.svc.Update(ctx, domain.Point{X: input.X, Y: input.Y})
	if err != nil {
		return dto.SessionOutput{}, err
	}
	return mapSession(session), nil
}

func (i *Interactor) EndDrag(ctx context.Context) (dto.DropOutput, error) {
	drop, err := i.svc.End(ctx)
	if err != nil {
		return dto.DropOutput{}, err
	}
	out := mapDrop(drop.Session)
	out.Moved = drop.Moved
	out.Recovered = drop.Recovered
	if drop.Recovered {
		out.ToTrackID = drop.Session.OriginTrackID
		out.StartTime = drop.Session.OriginalStartTime
	}
	return out, nil
}

func (i *Interactor) CancelDrag(ctx context.Context) (dto.DropOutput, error) {
	session, err := i.svc.Cancel(ctx)
	if err != nil {
		return dto.DropOutput{}, err
	}
	out := mapDrop(session)
	out.ToTrackID = session.OriginTrackID
	out.StartTime = session.OriginalStartTime
	out.Cancelled = true
	return out, nil
}

func (i *Interactor) Active(_ context.Context) (dto.SessionOutput, bool) {
	session, ok := i.svc.Active()
	if !ok {
		return dto.SessionOutput{}, false
	}
	return mapSession(session), true
}

func (i *Interactor) Preview(ctx context.Context) (dto.PreviewOutput, bool, error) {
	placement, ok, err := i.svc.Preview(ctx)
	if err != nil || !ok {
		return dto.PreviewOutput{}, false, err
	}
	return dto.PreviewOutput{
		Session: mapSession(placement.Session),
		Left:    placement.Left,
		Top:     placement.Top,
		Width:   placement.Width,
	}, true, nil
}

func mapSession(s domain.Session) dto.SessionOutput {
	return dto.SessionOutput{
		ClipID:            s.Clip.ID,
		ClipName:          s.Clip.Name,
		ClipType:          s.Clip.Type,
		Color:             s.Clip.Color,
		Duration:          s.Clip.Duration,
		OriginTrackID:     s.OriginTrackID,
		OriginalStartTime: s.OriginalStartTime,
		TargetTrackID:     s.TargetTrackID,
		PendingStartTime:  s.PendingStartTime,
	}
}

func mapDrop(s domain.Session) dto.DropOutput {
	return dto.DropOutput{
		ClipID:      s.Clip.ID,
		FromTrackID: s.OriginTrackID,
		ToTrackID:   s.TargetTrackID,
		StartTime:   s.PendingStartTime,
	}
}
