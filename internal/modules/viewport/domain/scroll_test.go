package domain_test

import (
	"testing"

	"trackline/internal/modules/viewport/domain"
)

func TestEnsurePlayheadVisible(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name                    string
		playhead, width, scroll float64
		want                    float64
	}{
		{name: "inside", playhead: 300, width: 800, scroll: 0, want: 0},
		{name: "inside scrolled", playhead: 700, width: 800, scroll: 200, want: 200},
		{name: "inside margin", playhead: 750, width: 800, scroll: 0, want: 350},
		{name: "right of view", playhead: 1200, width: 800, scroll: 0, want: 800},
		{name: "left of view", playhead: 100, width: 800, scroll: 500, want: 0},
		{name: "left of view far", playhead: 900, width: 800, scroll: 1000, want: 500},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := domain.EnsurePlayheadVisible(tc.playhead, tc.width, tc.scroll, 100); got != tc.want {
				t.Fatalf("got %g, want %g", got, tc.want)
			}
		})
	}
}
