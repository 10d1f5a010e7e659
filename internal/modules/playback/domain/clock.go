package domain

import (
	"fmt"
	"math"
	"time"

	apperrors "trackline/internal/platform/errors"
)

type State string

const (
	StateStopped State = "stopped"
	StateRunning State = "running"
)

// Clock advances the current time by the wall-clock delta between
// consecutive frame timestamps while running. The first frame of a running
// period only records the baseline.
type Clock struct {
	duration float64
	current  float64
	state    State
	last     time.Time
	hasLast  bool
	epoch    uint64
}

func NewClock(duration float64) (*Clock, error) {
	if duration < 0 || math.IsNaN(duration) || math.IsInf(duration, 0) {
		return nil, fmt.Errorf("duration %g: %w", duration, apperrors.ErrInvalidArgument)
	}
	return &Clock{duration: duration, state: StateStopped}, nil
}

func (c *Clock) Duration() float64    { return c.duration }
func (c *Clock) CurrentTime() float64 { return c.current }
func (c *Clock) State() State         { return c.state }
func (c *Clock) IsPlaying() bool      { return c.state == StateRunning }

// Epoch identifies the current running period. It increases every time the
// clock enters Running, so frame callbacks scheduled for an earlier period
// can be told apart from live ones.
func (c *Clock) Epoch() uint64 { return c.epoch }

// Play enters Running. At the end of the timeline it rewinds to 0 first.
// Playing while already running is a no-op and keeps the epoch.
func (c *Clock) Play() bool {
	if c.state == StateRunning {
		return false
	}
	if c.current >= c.duration {
		c.current = 0
	}
	c.state = StateRunning
	c.hasLast = false
	c.epoch++
	return true
}

func (c *Clock) Pause() bool {
	if c.state != StateRunning {
		return false
	}
	c.stop()
	return true
}

func (c *Clock) Toggle() State {
	if c.state == StateRunning {
		c.Pause()
	} else {
		c.Play()
	}
	return c.state
}

func (c *Clock) stop() {
	c.state = StateStopped
	c.hasLast = false
	c.last = time.Time{}
}

// Tick consumes one frame timestamp and reports whether the current time
// moved. Reaching the duration stops the clock exactly at the duration.
// A timestamp earlier than the baseline re-baselines without advancing.
func (c *Clock) Tick(at time.Time) bool {
	if c.state != StateRunning {
		return false
	}
	if !c.hasLast || at.Before(c.last) {
		c.last = at
		c.hasLast = true
		return false
	}
	delta := at.Sub(c.last).Seconds()
	c.last = at
	if delta == 0 {
		return false
	}
	next := c.current + delta
	if next >= c.duration {
		c.current = c.duration
		c.stop()
		return true
	}
	c.current = next
	return true
}

// Seek sets the current time, clamped to [0, duration]. The running state
// and frame baseline are unaffected.
func (c *Clock) Seek(t float64) float64 {
	if math.IsNaN(t) {
		t = 0
	}
	c.current = math.Min(c.duration, math.Max(0, t))
	return c.current
}
