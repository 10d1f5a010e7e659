package usecase

import (
	"time"

	"trackline/internal/modules/playback/domain"
	"trackline/internal/modules/playback/dto"
	playbackin "trackline/internal/modules/playback/port/in"
	"trackline/internal/modules/playback/service"
)

type Interactor struct {
	svc *service.PlaybackService
}

func NewInteractor(svc *service.PlaybackService) playbackin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) State() dto.StateOutput {
	var out dto.StateOutput
	i.svc.Snapshot(func(c *domain.Clock) {
		out = dto.StateOutput{
			CurrentTime: c.CurrentTime(),
			Duration:    c.Duration(),
			IsPlaying:   c.IsPlaying(),
			Epoch:       c.Epoch(),
		}
	})
	return out
}

func (i *Interactor) Play() dto.StateOutput {
	i.svc.Play()
	return i.State()
}

func (i *Interactor) Pause() dto.StateOutput {
	i.svc.Pause()
	return i.State()
}

func (i *Interactor) Toggle() dto.StateOutput {
	i.svc.Toggle()
	return i.State()
}

func (i *Interactor) Seek(t float64) dto.StateOutput {
	i.svc.Seek(t)
	return i.State()
}

func (i *Interactor) Tick(at time.Time) dto.StateOutput {
	i.svc.Tick(at)
	return i.State()
}
