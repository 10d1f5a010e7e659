package domain_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"trackline/internal/modules/playback/domain"
	apperrors "trackline/internal/platform/errors"
)

var t0 = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func mustClock(t *testing.T, duration float64) *domain.Clock {
	t.Helper()
	c, err := domain.NewClock(duration)
	if err != nil {
		t.Fatalf("new clock: %v", err)
	}
	return c
}

func TestNewClockRejectsBadDuration(t *testing.T) {
	t.Parallel()
	for _, d := range []float64{-1, math.NaN(), math.Inf(1)} {
		if _, err := domain.NewClock(d); !errors.Is(err, apperrors.ErrInvalidArgument) {
			t.Fatalf("duration %g: expected invalid argument, got %v", d, err)
		}
	}
}

func TestFirstTickOnlyRecordsBaseline(t *testing.T) {
	t.Parallel()
	c := mustClock(t, 30)
	c.Play()
	if moved := c.Tick(t0); moved {
		t.Fatalf("first tick must not advance")
	}
	if c.CurrentTime() != 0 {
		t.Fatalf("current time moved to %g", c.CurrentTime())
	}
	c.Tick(t0.Add(500 * time.Millisecond))
	if got := c.CurrentTime(); math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("expected 0.5s, got %g", got)
	}
}

func TestRunningPastDurationStopsExactlyAtDuration(t *testing.T) {
	t.Parallel()
	c := mustClock(t, 2)
	c.Play()
	at := t0
	c.Tick(at)
	for i := 0; i < 200; i++ {
		at = at.Add(16 * time.Millisecond)
		c.Tick(at)
	}
	if c.IsPlaying() {
		t.Fatalf("clock should have stopped")
	}
	if c.CurrentTime() != 2 {
		t.Fatalf("expected current time exactly 2, got %g", c.CurrentTime())
	}
}

func TestPauseDiscardsBaseline(t *testing.T) {
	t.Parallel()
	c := mustClock(t, 30)
	c.Play()
	c.Tick(t0)
	c.Tick(t0.Add(time.Second))
	c.Pause()
	if c.Tick(t0.Add(2 * time.Second)) {
		t.Fatalf("tick while stopped must not advance")
	}

	c.Play()
	c.Tick(t0.Add(10 * time.Second))
	if got := c.CurrentTime(); math.Abs(got-1) > 1e-9 {
		t.Fatalf("stale baseline leaked into the new run: %g", got)
	}
	c.Tick(t0.Add(10*time.Second + 250*time.Millisecond))
	if got := c.CurrentTime(); math.Abs(got-1.25) > 1e-9 {
		t.Fatalf("expected 1.25s, got %g", got)
	}
}

func TestEpochAdvancesPerRun(t *testing.T) {
	t.Parallel()
	c := mustClock(t, 30)
	if c.Epoch() != 0 {
		t.Fatalf("fresh clock epoch = %d", c.Epoch())
	}
	c.Play()
	first := c.Epoch()
	if c.Play() {
		t.Fatalf("play while running should be a no-op")
	}
	if c.Epoch() != first {
		t.Fatalf("epoch changed on redundant play")
	}
	c.Toggle()
	c.Toggle()
	if c.Epoch() != first+1 {
		t.Fatalf("expected epoch %d after restart, got %d", first+1, c.Epoch())
	}
}

func TestPlayAtEndRewinds(t *testing.T) {
	t.Parallel()
	c := mustClock(t, 5)
	c.Seek(5)
	c.Play()
	if c.CurrentTime() != 0 || !c.IsPlaying() {
		t.Fatalf("expected rewind to 0 and running, got %g playing=%v", c.CurrentTime(), c.IsPlaying())
	}
}

func TestSeekClamps(t *testing.T) {
	t.Parallel()
	c := mustClock(t, 10)
	if got := c.Seek(-4); got != 0 {
		t.Fatalf("seek below zero = %g", got)
	}
	if got := c.Seek(12); got != 10 {
		t.Fatalf("seek past end = %g", got)
	}
	if got := c.Seek(3.5); got != 3.5 {
		t.Fatalf("seek = %g", got)
	}
}

func TestBackwardTimestampRebaselines(t *testing.T) {
	t.Parallel()
	c := mustClock(t, 30)
	c.Play()
	c.Tick(t0)
	c.Tick(t0.Add(time.Second))
	if c.Tick(t0) {
		t.Fatalf("backward timestamp must not advance")
	}
	c.Tick(t0.Add(100 * time.Millisecond))
	if got := c.CurrentTime(); math.Abs(got-1.1) > 1e-9 {
		t.Fatalf("expected 1.1s, got %g", got)
	}
}
