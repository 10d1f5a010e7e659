package domain_test

import (
	"errors"
	"math"
	"testing"

	"trackline/internal/modules/timeline/domain"
	apperrors "trackline/internal/platform/errors"
)

func sampleProject() domain.Project {
	return domain.Project{
		Metadata: domain.Metadata{Name: "Sample", Duration: 30, FrameRate: 30},
		Tracks: []domain.Track{
			{ID: "a", Type: domain.TrackTypeVideo, Name: "A", Height: 70, Clips: []domain.Clip{
				{ID: "c1", Type: domain.ClipTypeVideo, Name: "One", StartTime: 0, Duration: 4, Color: "#FF6B6B"},
				{ID: "c2", Type: domain.ClipTypeVideo, Name: "Two", StartTime: 5, Duration: 3, Color: "#4ECDC4"},
			}},
			{ID: "b", Type: domain.TrackTypeAudio, Name: "B", Height: 50, Clips: []domain.Clip{
				{ID: "c3", Type: domain.ClipTypeAudio, Name: "Three", StartTime: 1, Duration: 6, Color: "#95E77E", Waveform: []float64{0.2, 0.8}},
			}},
			{ID: "c", Type: domain.TrackTypeText, Name: "C", Height: 50},
		},
	}
}

func TestMoveClipBetweenTracks(t *testing.T) {
	t.Parallel()
	p := sampleProject()
	before, _, _ := p.Clip("c1")
	total := p.ClipCount()

	moved, err := p.MoveClip("c1", "a", "b", 12.5)
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if p.ClipCount() != total {
		t.Fatalf("clip count changed from %d to %d", total, p.ClipCount())
	}
	a, _ := p.Track("a")
	if a.IndexOf("c1") >= 0 {
		t.Fatalf("clip still in source track")
	}
	b, _ := p.Track("b")
	count := 0
	for _, c := range b.Clips {
		if c.ID == "c1" {
			count++
		}
	}
	if count != 1 || b.Clips[len(b.Clips)-1].ID != "c1" {
		t.Fatalf("expected c1 appended once to b, got %+v", b.Clips)
	}
	if moved.StartTime != 12.5 {
		t.Fatalf("start time = %g", moved.StartTime)
	}
	if moved.Name != before.Name || moved.Type != before.Type || moved.Color != before.Color || moved.Duration != before.Duration {
		t.Fatalf("move changed clip fields: %+v vs %+v", moved, before)
	}
}

func TestMoveClipWithinTrackRepositions(t *testing.T) {
	t.Parallel()
	p := sampleProject()
	if _, err := p.MoveClip("c1", "a", "a", 9); err != nil {
		t.Fatalf("move: %v", err)
	}
	a, _ := p.Track("a")
	if len(a.Clips) != 2 || a.Clips[1].ID != "c1" || a.Clips[1].StartTime != 9 {
		t.Fatalf("unexpected clips after reposition: %+v", a.Clips)
	}
}

func TestMoveClipFailuresLeaveProjectUnchanged(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name           string
		clip, from, to string
		start          float64
		want           error
	}{
		{name: "unknown clip", clip: "nope", from: "a", to: "b", want: apperrors.ErrNotFound},
		{name: "clip in other track", clip: "c3", from: "a", to: "b", want: apperrors.ErrNotFound},
		{name: "unknown source", clip: "c1", from: "x", to: "b", want: apperrors.ErrNotFound},
		{name: "unknown target", clip: "c1", from: "a", to: "x", want: apperrors.ErrNotFound},
		{name: "negative start", clip: "c1", from: "a", to: "b", start: -0.1, want: apperrors.ErrInvalidArgument},
		{name: "nan start", clip: "c1", from: "a", to: "b", start: math.NaN(), want: apperrors.ErrInvalidArgument},
		{name: "infinite start", clip: "c1", from: "a", to: "b", start: math.Inf(1), want: apperrors.ErrInvalidArgument},
		{name: "start past max", clip: "c1", from: "a", to: "b", start: domain.MaxTime + 1, want: apperrors.ErrInvalidArgument},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			p := sampleProject()
			_, err := p.MoveClip(tc.clip, tc.from, tc.to, tc.start)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if p.ClipCount() != 3 {
				t.Fatalf("failed move changed clip count to %d", p.ClipCount())
			}
			if trackID, _ := p.FindTrackContainingClip("c1"); trackID != "a" {
				t.Fatalf("c1 moved to %q on failure", trackID)
			}
		})
	}
}

func TestFindTrackContainingClip(t *testing.T) {
	t.Parallel()
	p := sampleProject()
	if id, err := p.FindTrackContainingClip("c3"); err != nil || id != "b" {
		t.Fatalf("expected b, got %q, %v", id, err)
	}
	if _, err := p.FindTrackContainingClip("zzz"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestProjectValidate(t *testing.T) {
	t.Parallel()
	if err := sampleProject().Validate(); err != nil {
		t.Fatalf("sample should validate: %v", err)
	}

	mutations := map[string]func(p *domain.Project){
		"zero duration":   func(p *domain.Project) { p.Metadata.Duration = 0 },
		"duplicate track": func(p *domain.Project) { p.Tracks[1].ID = "a" },
		"duplicate clip":  func(p *domain.Project) { p.Tracks[1].Clips[0].ID = "c1" },
		"zero height":     func(p *domain.Project) { p.Tracks[0].Height = 0 },
		"negative start":  func(p *domain.Project) { p.Tracks[0].Clips[0].StartTime = -1 },
		"zero length":     func(p *domain.Project) { p.Tracks[0].Clips[0].Duration = 0 },
		"loud sample":     func(p *domain.Project) { p.Tracks[1].Clips[0].Waveform[0] = 1.5 },
		"bad track type":  func(p *domain.Project) { p.Tracks[0].Type = "lighting" },
		"infinite start":  func(p *domain.Project) { p.Tracks[0].Clips[0].StartTime = math.Inf(1) },
		"infinite length": func(p *domain.Project) { p.Tracks[1].Clips[0].Duration = math.Inf(1) },
		"endless project": func(p *domain.Project) { p.Metadata.Duration = 1e19 },
	}
	for name, mutate := range mutations {
		p := sampleProject()
		mutate(&p)
		if err := p.Validate(); !errors.Is(err, apperrors.ErrInvalidArgument) {
			t.Fatalf("%s: expected invalid argument, got %v", name, err)
		}
	}
}

func TestCloneDoesNotAlias(t *testing.T) {
	t.Parallel()
	p := sampleProject()
	snap := p.Clone()
	if _, err := p.MoveClip("c1", "a", "b", 3); err != nil {
		t.Fatalf("move: %v", err)
	}
	p.Tracks[1].Clips[0].Waveform[0] = 0.5
	if id, _ := snap.FindTrackContainingClip("c1"); id != "a" {
		t.Fatalf("snapshot saw the move")
	}
	if snap.Tracks[1].Clips[0].Waveform[0] != 0.2 {
		t.Fatalf("snapshot waveform aliased the project")
	}
}
