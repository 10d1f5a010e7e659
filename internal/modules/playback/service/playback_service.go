package service

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"trackline/internal/modules/playback/domain"
)

type PlaybackService struct {
	mu    sync.Mutex
	clock *domain.Clock
	log   *zap.Logger
}

func NewPlaybackService(duration float64, log *zap.Logger) (*PlaybackService, error) {
	clk, err := domain.NewClock(duration)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &PlaybackService{clock: clk, log: log}, nil
}

// Snapshot runs fn with exclusive access to the clock.
func (s *PlaybackService) Snapshot(fn func(c *domain.Clock)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.clock)
}

func (s *PlaybackService) Play() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.clock.Play() {
		s.log.Debug("playback started", zap.Float64("at", s.clock.CurrentTime()), zap.Uint64("epoch", s.clock.Epoch()))
	}
}

func (s *PlaybackService) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.clock.Pause() {
		s.log.Debug("playback paused", zap.Float64("at", s.clock.CurrentTime()))
	}
}

func (s *PlaybackService) Toggle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.clock.Toggle()
	s.log.Debug("playback toggled", zap.String("state", string(state)), zap.Float64("at", s.clock.CurrentTime()))
}

func (s *PlaybackService) Seek(t float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clock.Seek(t)
}

func (s *PlaybackService) Tick(at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	wasRunning := s.clock.IsPlaying()
	s.clock.Tick(at)
	if wasRunning && !s.clock.IsPlaying() {
		s.log.Debug("playback reached end", zap.Float64("duration", s.clock.Duration()))
	}
}
