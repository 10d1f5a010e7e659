package domain_test

import (
	"errors"
	"math"
	"testing"

	"trackline/internal/modules/viewport/domain"
	apperrors "trackline/internal/platform/errors"
)

var bounds = domain.ZoomBounds{Min: 0.1, Max: 3.0, Step: 1.2}

func TestPixelsToTimeInvertsTimeToPixels(t *testing.T) {
	t.Parallel()
	for _, zoom := range []float64{0.1, 0.25, 0.5, 1, 1.2, 2, 2.9, 3} {
		s := domain.Scale{BaseScale: 30, Zoom: zoom}
		for _, sec := range []float64{0, 0.001, 0.1, 1, 7.3, 29.99, 30, 3600} {
			got := s.PixelsToTime(s.TimeToPixels(sec))
			if math.Abs(got-sec) > 1e-9*math.Max(1, sec) {
				t.Fatalf("zoom %g: round trip of %g gave %g", zoom, sec, got)
			}
		}
	}
}

func TestTimeToPixelsGrowsWithZoom(t *testing.T) {
	t.Parallel()
	prev := 0.0
	for z := bounds.Min; z < bounds.Max; z = bounds.In(z) {
		px := domain.Scale{BaseScale: 30, Zoom: z}.TimeToPixels(2.5)
		if px <= prev {
			t.Fatalf("zoom %g: %g px is not past %g px", z, px, prev)
		}
		prev = px
	}
	if got := (domain.Scale{BaseScale: 30, Zoom: 1}).TimeToPixels(2); got != 60 {
		t.Fatalf("2s at zoom 1 should be 60px, got %g", got)
	}
}

func TestZoomInClampsAtMax(t *testing.T) {
	t.Parallel()
	z := 1.0
	for i := 0; i < 20; i++ {
		z = bounds.In(z)
	}
	if z != bounds.Max {
		t.Fatalf("expected zoom clamped to %g, got %g", bounds.Max, z)
	}
	if again := bounds.In(z); again != z {
		t.Fatalf("zoom in at max changed zoom to %g", again)
	}
	if !bounds.AtMax(z) {
		t.Fatalf("expected AtMax at %g", z)
	}
}

func TestZoomOutClampsAtMin(t *testing.T) {
	t.Parallel()
	z := 1.0
	for i := 0; i < 30; i++ {
		z = bounds.Out(z)
	}
	if z != bounds.Min || bounds.Out(z) != z || !bounds.AtMin(z) {
		t.Fatalf("expected zoom pinned at %g, got %g", bounds.Min, z)
	}
}

func TestClampIsIdempotent(t *testing.T) {
	t.Parallel()
	for _, z := range []float64{-1, 0, 0.05, 0.1, 1, 3, 10, math.NaN()} {
		once := bounds.Clamp(z)
		if twice := bounds.Clamp(once); twice != once {
			t.Fatalf("clamp(%g) = %g, clamp again = %g", z, once, twice)
		}
		if once < bounds.Min || once > bounds.Max {
			t.Fatalf("clamp(%g) = %g is out of bounds", z, once)
		}
	}
}

func TestZoomBoundsValidate(t *testing.T) {
	t.Parallel()
	if err := bounds.Validate(); err != nil {
		t.Fatalf("default bounds: %v", err)
	}
	for _, b := range []domain.ZoomBounds{
		{Min: 0, Max: 3, Step: 1.2},
		{Min: 3, Max: 3, Step: 1.2},
		{Min: 0.1, Max: 3, Step: 1},
	} {
		if err := b.Validate(); !errors.Is(err, apperrors.ErrInvalidArgument) {
			t.Fatalf("bounds %+v: expected invalid argument, got %v", b, err)
		}
	}
}

func TestClipWidthHonorsMinimum(t *testing.T) {
	t.Parallel()
	s := domain.Scale{BaseScale: 30, Zoom: 0.1}
	if got := s.ClipWidth(2, 40); got != 40 {
		t.Fatalf("short clip should be 40px wide, got %g", got)
	}
	s.Zoom = 1
	if got := s.ClipWidth(4, 40); got != 120 {
		t.Fatalf("4s clip at zoom 1 should be 120px, got %g", got)
	}
}
