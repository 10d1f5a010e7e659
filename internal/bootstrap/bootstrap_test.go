package bootstrap_test

import (
	"context"
	"math"
	"strings"
	"testing"
	"time"

	"trackline/internal/bootstrap"
	"trackline/internal/modules/editor/dto"
	"trackline/internal/platform/config"
)

// Demo layout at zoom 1: ruler 0-30, track-1 30-100, track-2 100-150,
// track-3 150-200, track-4 200-250. clip-3 sits on track-2 spanning x 30-210.

func newApp(t *testing.T) *bootstrap.App {
	t.Helper()
	cfg, err := config.New(t.TempDir())
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	app, err := bootstrap.New(context.Background(), cfg, bootstrap.Options{Seed: 7}, nil)
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	t.Cleanup(func() { _ = app.Close() })
	return app
}

func clipOnTrack(state dto.StateOutput, clipID string) (dto.ClipBoxOutput, bool) {
	for _, c := range state.Clips {
		if c.Clip.ID == clipID {
			return c, true
		}
	}
	return dto.ClipBoxOutput{}, false
}

func TestInitialState(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	app := newApp(t)
	state, err := app.EditorTUI.State(ctx)
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	if state.TimeLabel != "00:00.0 / 00:30.0" || state.IsPlaying {
		t.Fatalf("label=%q playing=%v", state.TimeLabel, state.IsPlaying)
	}
	if len(state.Rows) != 4 || len(state.Clips) != 6 || len(state.Markers) != 61 {
		t.Fatalf("rows=%d clips=%d markers=%d", len(state.Rows), len(state.Clips), len(state.Markers))
	}
	if state.TimelineWidth != 900 || state.Viewport.ZoomPercent != 100 {
		t.Fatalf("width=%g zoom=%d", state.TimelineWidth, state.Viewport.ZoomPercent)
	}
	box, ok := clipOnTrack(state, "clip-3")
	if !ok || box.TrackID != "track-2" || box.Left != 30 || box.Top != 103 || box.Width != 180 || box.Height != 44 {
		t.Fatalf("clip-3 box = %+v", box)
	}
	if state.Drag != nil {
		t.Fatalf("no drag expected")
	}
}

func TestDragClipAcrossTracks(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	app := newApp(t)

	if err := app.EditorTUI.Press(ctx, 120, 120); err != nil {
		t.Fatalf("press: %v", err)
	}
	if err := app.EditorTUI.Motion(ctx, 180, 220); err != nil {
		t.Fatalf("motion: %v", err)
	}
	state, err := app.EditorTUI.State(ctx)
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	if state.Drag == nil {
		t.Fatalf("drag preview missing")
	}
	if state.Drag.Session.TargetTrackID != "track-4" || state.Drag.Left != 90 || state.Drag.Top != 203 {
		t.Fatalf("preview = %+v", *state.Drag)
	}
	if box, _ := clipOnTrack(state, "clip-3"); !box.Dragging || box.TrackID != "track-2" {
		t.Fatalf("original clip should stay in place while dragging: %+v", box)
	}

	if err := app.EditorTUI.Release(ctx, 180, 220); err != nil {
		t.Fatalf("release: %v", err)
	}
	project, err := app.TimelineCLI.Tracks(ctx)
	if err != nil {
		t.Fatalf("tracks: %v", err)
	}
	clip, trackID, ok := project.Clip("clip-3")
	if !ok || trackID != "track-4" || clip.StartTime != 3 {
		t.Fatalf("clip-3 on %q at %g", trackID, clip.StartTime)
	}
	if track, _ := project.Track("track-2"); len(track.Clips) != 1 || track.Clips[0].ID != "clip-4" {
		t.Fatalf("track-2 = %+v", track.Clips)
	}
	if project.ClipCount() != 6 {
		t.Fatalf("clip count = %d", project.ClipCount())
	}

	history, err := app.TimelineCLI.History(ctx, 10)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 1 || history[0].ClipID != "clip-3" || history[0].ToTrackID != "track-4" {
		t.Fatalf("history = %+v", history)
	}

	state, _ = app.EditorTUI.State(ctx)
	if state.Drag != nil || !strings.Contains(state.Status, "moved clip-3 to track-4") {
		t.Fatalf("status=%q drag=%v", state.Status, state.Drag)
	}
}

func TestPressOutsideClipsSeeks(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	app := newApp(t)

	_ = app.EditorTUI.Press(ctx, 90, 10)
	state, _ := app.EditorTUI.State(ctx)
	if state.CurrentTime != 3 || state.PlayheadX != 90 {
		t.Fatalf("ruler seek: time=%g x=%g", state.CurrentTime, state.PlayheadX)
	}

	_ = app.EditorTUI.Press(ctx, 870, 120)
	state, _ = app.EditorTUI.State(ctx)
	if state.CurrentTime != 29 || state.Drag != nil {
		t.Fatalf("empty lane seek: time=%g drag=%v", state.CurrentTime, state.Drag)
	}
}

func TestHandlePressDoesNotDrag(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	app := newApp(t)
	if err := app.EditorTUI.Press(ctx, 32, 120); err != nil {
		t.Fatalf("press: %v", err)
	}
	state, _ := app.EditorTUI.State(ctx)
	if state.Drag != nil || state.Status != "trimming is not supported" {
		t.Fatalf("status=%q drag=%v", state.Status, state.Drag)
	}
}

func TestCancelDragRestoresClip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	app := newApp(t)
	_ = app.EditorTUI.Press(ctx, 120, 120)
	_ = app.EditorTUI.Motion(ctx, 400, 220)
	if err := app.EditorTUI.Command(ctx, dto.CommandCancelDrag); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if err := app.EditorTUI.Command(ctx, dto.CommandCancelDrag); err != nil {
		t.Fatalf("cancel while idle: %v", err)
	}
	_ = app.EditorTUI.Release(ctx, 400, 220)

	project, _ := app.TimelineCLI.Tracks(ctx)
	clip, trackID, _ := project.Clip("clip-3")
	if trackID != "track-2" || clip.StartTime != 1 {
		t.Fatalf("clip-3 on %q at %g", trackID, clip.StartTime)
	}
}

func TestFramesFromEarlierRunAreIgnored(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	app := newApp(t)
	t0 := time.Unix(1_700_000_000, 0)

	_ = app.EditorTUI.Command(ctx, dto.CommandPlay)
	state, _ := app.EditorTUI.State(ctx)
	first := state.Epoch
	_ = app.EditorTUI.Frame(ctx, first, t0)
	_ = app.EditorTUI.Frame(ctx, first, t0.Add(time.Second))

	_ = app.EditorTUI.Command(ctx, dto.CommandToggle)
	_ = app.EditorTUI.Command(ctx, dto.CommandToggle)
	state, _ = app.EditorTUI.State(ctx)
	if state.Epoch == first || !state.IsPlaying {
		t.Fatalf("replay should start a new epoch: %d playing=%v", state.Epoch, state.IsPlaying)
	}

	_ = app.EditorTUI.Frame(ctx, first, t0.Add(5*time.Second))
	_ = app.EditorTUI.Frame(ctx, state.Epoch, t0.Add(6*time.Second))
	state, _ = app.EditorTUI.State(ctx)
	if state.CurrentTime != 1 {
		t.Fatalf("stale frame advanced playback to %g", state.CurrentTime)
	}
}

func TestZoomCommands(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	app := newApp(t)
	_ = app.EditorTUI.Command(ctx, dto.CommandZoomIn)
	state, _ := app.EditorTUI.State(ctx)
	if state.Viewport.ZoomPercent != 120 || math.Abs(state.TimelineWidth-1080) > 1e-9 {
		t.Fatalf("zoom=%d width=%g", state.Viewport.ZoomPercent, state.TimelineWidth)
	}
	if err := app.EditorTUI.Command(ctx, dto.Command("rewind")); err == nil {
		t.Fatalf("unknown command should fail")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	t.Parallel()
	app := newApp(t)
	if err := app.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := app.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
}

func TestSeekScrollsPlayheadIntoView(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	app := newApp(t)
	if err := app.EditorTUI.Resize(ctx, 600); err != nil {
		t.Fatalf("resize: %v", err)
	}

	_ = app.EditorTUI.Press(ctx, 300, 10)
	state, _ := app.EditorTUI.State(ctx)
	if state.Viewport.ScrollLeft != 0 {
		t.Fatalf("visible playhead scrolled to %g", state.Viewport.ScrollLeft)
	}

	_ = app.EditorTUI.Press(ctx, 550, 10)
	state, _ = app.EditorTUI.State(ctx)
	if state.IsPlaying {
		t.Fatalf("seek must not start playback")
	}
	if math.Abs(state.Viewport.ScrollLeft-250) > 1e-9 {
		t.Fatalf("paused seek past the margin should center the playhead, scroll = %g", state.Viewport.ScrollLeft)
	}
}
