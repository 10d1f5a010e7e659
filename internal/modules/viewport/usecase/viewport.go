package usecase

import (
	"trackline/internal/modules/viewport/domain"
	"trackline/internal/modules/viewport/dto"
	viewportin "trackline/internal/modules/viewport/port/in"
	"trackline/internal/modules/viewport/service"
)

type Interactor struct {
	svc *service.ViewportService
}

func NewInteractor(svc *service.ViewportService) viewportin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) State() dto.StateOutput {
	scale := i.svc.Scale()
	bounds := i.svc.Bounds()
	width, left := i.svc.Scroll()
	return dto.StateOutput{
		Zoom:            scale.Zoom,
		ZoomPercent:     domain.ZoomPercent(scale.Zoom),
		CanZoomIn:       !bounds.AtMax(scale.Zoom),
		CanZoomOut:      !bounds.AtMin(scale.Zoom),
		PixelsPerSecond: scale.PixelsPerSecond(),
		ScrollLeft:      left,
		Width:           width,
	}
}

func (i *Interactor) ZoomIn() dto.StateOutput {
	i.svc.ZoomIn()
	return i.State()
}

func (i *Interactor) ZoomOut() dto.StateOutput {
	i.svc.ZoomOut()
	return i.State()
}

func (i *Interactor) SetZoom(zoom float64) dto.StateOutput {
	i.svc.SetZoom(zoom)
	return i.State()
}

func (i *Interactor) TimeToPixels(t float64) float64 {
	return i.svc.Scale().TimeToPixels(t)
}

func (i *Interactor) PixelsToTime(px float64) float64 {
	return i.svc.Scale().PixelsToTime(px)
}

func (i *Interactor) ClipWidth(duration float64) float64 {
	return i.svc.Scale().ClipWidth(duration, i.svc.MinClipWidth())
}

func (i *Interactor) TimelineWidth(duration float64) float64 {
	return i.svc.Scale().TimeToPixels(duration)
}

func (i *Interactor) Markers(duration float64) []dto.MarkerOutput {
	scale := i.svc.Scale()
	markers := domain.GenerateMarkers(duration, scale.Zoom)
	out := make([]dto.MarkerOutput, 0, len(markers))
	for _, m := range markers {
		out = append(out, dto.MarkerOutput{
			Time:    m.Time,
			X:       scale.TimeToPixels(m.Time),
			Label:   m.Label,
			IsMajor: m.IsMajor,
		})
	}
	return out
}

func (i *Interactor) Resize(width float64) {
	i.svc.Resize(width)
}

func (i *Interactor) ScrollTo(left float64) float64 {
	return i.svc.ScrollTo(left)
}

func (i *Interactor) EnsurePlayheadVisible(currentTime float64) float64 {
	return i.svc.EnsurePlayheadVisible(currentTime)
}

func (i *Interactor) FormatTime(seconds float64) string {
	return domain.FormatTime(seconds)
}
