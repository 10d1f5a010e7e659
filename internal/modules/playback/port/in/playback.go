package in

import (
	"time"

	"trackline/internal/modules/playback/dto"
)

type Usecase interface {
	State() dto.StateOutput
	Play() dto.StateOutput
	Pause() dto.StateOutput
	Toggle() dto.StateOutput
	Seek(t float64) dto.StateOutput
	Tick(at time.Time) dto.StateOutput
}
