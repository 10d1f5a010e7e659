package out

import (
	"context"
	"time"

	dragdto "trackline/internal/modules/drag/dto"
	playbackdto "trackline/internal/modules/playback/dto"
	timelinedto "trackline/internal/modules/timeline/dto"
	viewportdto "trackline/internal/modules/viewport/dto"
)

// The interfaces below are the slices of the sibling modules the editor
// drives. Their signatures follow those modules' input ports so the usecases
// plug in directly.

type Timeline interface {
	Snapshot(ctx context.Context) (timelinedto.ProjectOutput, error)
}

type Playback interface {
	State() playbackdto.StateOutput
	Play() playbackdto.StateOutput
	Pause() playbackdto.StateOutput
	Toggle() playbackdto.StateOutput
	Seek(t float64) playbackdto.StateOutput
	Tick(at time.Time) playbackdto.StateOutput
}

type Viewport interface {
	State() viewportdto.StateOutput
	ZoomIn() viewportdto.StateOutput
	ZoomOut() viewportdto.StateOutput
	TimeToPixels(t float64) float64
	PixelsToTime(px float64) float64
	ClipWidth(duration float64) float64
	TimelineWidth(duration float64) float64
	Markers(duration float64) []viewportdto.MarkerOutput
	Resize(width float64)
	EnsurePlayheadVisible(currentTime float64) float64
	FormatTime(seconds float64) string
}

type Drag interface {
	BeginDrag(ctx context.Context, input dragdto.BeginInput) (dragdto.SessionOutput, error)
	UpdateDrag(ctx context.Context, input dragdto.PointInput) (dragdto.SessionOutput, error)
	EndDrag(ctx context.Context) (dragdto.DropOutput, error)
	CancelDrag(ctx context.Context) (dragdto.DropOutput, error)
	Active(ctx context.Context) (dragdto.SessionOutput, bool)
	Preview(ctx context.Context) (dragdto.PreviewOutput, bool, error)
}
