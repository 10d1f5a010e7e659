package service

import (
	"fmt"
	"math"
	"sync"

	"go.uber.org/zap"

	"trackline/internal/modules/viewport/domain"
	apperrors "trackline/internal/platform/errors"
)

type Settings struct {
	BaseScale      float64
	InitialZoom    float64
	Bounds         domain.ZoomBounds
	MinClipWidth   float64
	PlayheadMargin float64
}

type ViewportService struct {
	mu         sync.Mutex
	log        *zap.Logger
	bounds     domain.ZoomBounds
	scale      domain.Scale
	minWidth   float64
	margin     float64
	width      float64
	scrollLeft float64
}

func NewViewportService(settings Settings, log *zap.Logger) (*ViewportService, error) {
	if settings.BaseScale <= 0 {
		return nil, fmt.Errorf("base scale %g: %w", settings.BaseScale, apperrors.ErrInvalidArgument)
	}
	if err := settings.Bounds.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ViewportService{
		log:      log,
		bounds:   settings.Bounds,
		scale:    domain.Scale{BaseScale: settings.BaseScale, Zoom: settings.Bounds.Clamp(settings.InitialZoom)},
		minWidth: settings.MinClipWidth,
		margin:   settings.PlayheadMargin,
	}, nil
}

func (s *ViewportService) Scale() domain.Scale {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scale
}

func (s *ViewportService) Bounds() domain.ZoomBounds {
	return s.bounds
}

func (s *ViewportService) MinClipWidth() float64 {
	return s.minWidth
}

// Scroll returns the viewport width and current scroll offset.
func (s *ViewportService) Scroll() (width, left float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.scrollLeft
}

func (s *ViewportService) ZoomIn() float64 {
	return s.setZoom(s.bounds.In)
}

func (s *ViewportService) ZoomOut() float64 {
	return s.setZoom(s.bounds.Out)
}

func (s *ViewportService) SetZoom(z float64) float64 {
	return s.setZoom(func(float64) float64 { return s.bounds.Clamp(z) })
}

func (s *ViewportService) setZoom(next func(float64) float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	before := s.scale.Zoom
	s.scale.Zoom = next(before)
	if s.scale.Zoom != before {
		s.log.Debug("zoom changed", zap.Float64("from", before), zap.Float64("to", s.scale.Zoom))
	}
	return s.scale.Zoom
}

func (s *ViewportService) Resize(width float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = math.Max(0, width)
}

func (s *ViewportService) ScrollTo(left float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scrollLeft = math.Max(0, left)
	return s.scrollLeft
}

func (s *ViewportService) EnsurePlayheadVisible(currentTime float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.width <= 0 {
		return s.scrollLeft
	}
	px := s.scale.TimeToPixels(currentTime)
	s.scrollLeft = domain.EnsurePlayheadVisible(px, s.width, s.scrollLeft, s.margin)
	return s.scrollLeft
}
