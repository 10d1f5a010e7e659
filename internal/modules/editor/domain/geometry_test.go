package domain_test

import (
	"testing"

	"trackline/internal/modules/editor/domain"
)

func TestHandleWidth(t *testing.T) {
	t.Parallel()
	cases := map[float64]float64{20: 4, 40: 8, 180: 8}
	for width, want := range cases {
		if got := domain.HandleWidth(width); got != want {
			t.Fatalf("HandleWidth(%g) = %g, want %g", width, got, want)
		}
	}
}

func TestZoneAt(t *testing.T) {
	t.Parallel()
	box := domain.Box{Left: 30, Width: 180, Top: 103, Height: 44}
	tests := []struct {
		x    float64
		want domain.Zone
	}{
		{30, domain.ZoneLeftHandle},
		{37.9, domain.ZoneLeftHandle},
		{38, domain.ZoneBody},
		{201.9, domain.ZoneBody},
		{202, domain.ZoneRightHandle},
	}
	for _, tc := range tests {
		if got := box.ZoneAt(tc.x); got != tc.want {
			t.Fatalf("ZoneAt(%g) = %s, want %s", tc.x, got, tc.want)
		}
	}
}

func TestHitTestPrefersLaterBoxes(t *testing.T) {
	t.Parallel()
	boxes := []domain.Box{
		{ClipID: "under", Left: 0, Width: 100, Top: 0, Height: 10},
		{ClipID: "over", Left: 50, Width: 100, Top: 0, Height: 10},
	}
	box, zone, ok := domain.HitTest(boxes, 75, 5)
	if !ok || box.ClipID != "over" || zone != domain.ZoneBody {
		t.Fatalf("hit = %s %s %v", box.ClipID, zone, ok)
	}
	if _, _, ok := domain.HitTest(boxes, 75, 10); ok {
		t.Fatalf("bottom edge is exclusive")
	}
}

func TestRowsAndClipBox(t *testing.T) {
	t.Parallel()
	rows := domain.Rows(30, []string{"track-1", "track-2"}, []float64{70, 50})
	if len(rows) != 2 || rows[0].Top != 30 || rows[1].Top != 100 {
		t.Fatalf("rows = %+v", rows)
	}
	box := domain.ClipBox(rows[1], "clip-3", 30, 180, 3)
	if box.Top != 103 || box.Height != 44 || box.TrackID != "track-2" {
		t.Fatalf("box = %+v", box)
	}
	if thin := domain.ClipBox(domain.Row{Height: 4}, "c", 0, 10, 3); thin.Height != 0 {
		t.Fatalf("inset larger than row should give zero height, got %g", thin.Height)
	}
}
