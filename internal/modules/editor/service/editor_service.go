package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	dragdto "trackline/internal/modules/drag/dto"
	"trackline/internal/modules/editor/domain"
	"trackline/internal/modules/editor/dto"
	editorout "trackline/internal/modules/editor/port/out"
	timelinedto "trackline/internal/modules/timeline/dto"
	apperrors "trackline/internal/platform/errors"
)

type Settings struct {
	RulerHeight float64
	ClipInset   float64
}

// EditorService is the event queue in front of the timeline, playback,
// viewport and drag modules. One event is handled at a time; a batch passed
// to Dispatch is never interleaved with another caller's batch.
type EditorService struct {
	timeline editorout.Timeline
	playback editorout.Playback
	viewport editorout.Viewport
	drag     editorout.Drag
	settings Settings
	log      *zap.Logger

	mu     sync.Mutex
	status string
}

func NewEditorService(
	timeline editorout.Timeline,
	playback editorout.Playback,
	viewport editorout.Viewport,
	drag editorout.Drag,
	settings Settings,
	log *zap.Logger,
) *EditorService {
	if log == nil {
		log = zap.NewNop()
	}
	return &EditorService{
		timeline: timeline,
		playback: playback,
		viewport: viewport,
		drag:     drag,
		settings: settings,
		log:      log,
	}
}

// Dispatch stops at the first failing event; events after it are not
// applied.
func (s *EditorService) Dispatch(ctx context.Context, events ...dto.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, ev := range events {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.handle(ctx, ev); err != nil {
			return fmt.Errorf("event %d: %w", i, err)
		}
	}
	return nil
}

func (s *EditorService) handle(ctx context.Context, ev dto.Event) error {
	switch e := ev.(type) {
	case dto.PointerEvent:
		return s.pointer(ctx, e)
	case dto.FrameEvent:
		s.frame(e.Epoch, e.At)
		return nil
	case dto.CommandEvent:
		return s.command(ctx, e.Command)
	case dto.ResizeEvent:
		s.viewport.Resize(e.Width)
		return nil
	default:
		return fmt.Errorf("unsupported event %T: %w", ev, apperrors.ErrInvalidArgument)
	}
}

func (s *EditorService) pointer(ctx context.Context, e dto.PointerEvent) error {
	x := e.X + s.viewport.State().ScrollLeft
	switch e.Phase {
	case dto.PointerStart:
		return s.pointerStart(ctx, x, e.Y)
	case dto.PointerMove:
		if _, active := s.drag.Active(ctx); !active {
			return nil
		}
		_, err := s.drag.UpdateDrag(ctx, dragdto.PointInput{X: x, Y: e.Y})
		return err
	case dto.PointerEnd:
		if _, active := s.drag.Active(ctx); !active {
			return nil
		}
		return s.drop(ctx)
	default:
		return fmt.Errorf("pointer phase %q: %w", e.Phase, apperrors.ErrInvalidArgument)
	}
}

func (s *EditorService) pointerStart(ctx context.Context, x, y float64) error {
	if y <= s.settings.RulerHeight {
		s.seek(x)
		return nil
	}
	project, err := s.timeline.Snapshot(ctx)
	if err != nil {
		return err
	}
	_, boxes := s.layout(project)
	box, zone, ok := domain.HitTest(boxes, x, y)
	if !ok {
		s.seek(x)
		return nil
	}
	if zone != domain.ZoneBody {
		s.log.Info("resize handle touched, trimming is not supported",
			zap.String("clip", box.ClipID),
			zap.String("zone", string(zone)),
		)
		s.status = "trimming is not supported"
		return nil
	}
	session, err := s.drag.BeginDrag(ctx, dragdto.BeginInput{ClipID: box.ClipID, TrackID: box.TrackID, X: x, Y: y})
	if err != nil {
		return err
	}
	s.status = "dragging " + session.ClipName
	return nil
}

func (s *EditorService) seek(x float64) {
	state := s.playback.Seek(s.viewport.PixelsToTime(x))
	s.viewport.EnsurePlayheadVisible(state.CurrentTime)
	s.log.Debug("seek", zap.Float64("at", state.CurrentTime))
}

func (s *EditorService) drop(ctx context.Context) error {
	out, err := s.drag.EndDrag(ctx)
	if err != nil {
		s.status = "move failed"
		return err
	}
	switch {
	case out.Recovered:
		s.status = fmt.Sprintf("target track gone, %s stays on %s", out.ClipID, out.FromTrackID)
	case out.Moved:
		s.status = fmt.Sprintf("moved %s to %s at %.2fs", out.ClipID, out.ToTrackID, out.StartTime)
	}
	return nil
}

// frame advances playback only for frames scheduled under the current
// running epoch.
func (s *EditorService) frame(epoch uint64, at time.Time) {
	state := s.playback.State()
	if !state.IsPlaying || state.Epoch != epoch {
		return
	}
	state = s.playback.Tick(at)
	s.viewport.EnsurePlayheadVisible(state.CurrentTime)
	if !state.IsPlaying {
		s.status = "end of timeline"
	}
}

func (s *EditorService) command(ctx context.Context, cmd dto.Command) error {
	switch cmd {
	case dto.CommandPlay:
		s.playback.Play()
	case dto.CommandPause:
		s.playback.Pause()
	case dto.CommandToggle:
		s.playback.Toggle()
	case dto.CommandZoomIn:
		s.viewport.ZoomIn()
	case dto.CommandZoomOut:
		s.viewport.ZoomOut()
	case dto.CommandCancelDrag:
		if _, active := s.drag.Active(ctx); !active {
			return nil
		}
		out, err := s.drag.CancelDrag(ctx)
		if err != nil {
			return err
		}
		s.status = "drag of " + out.ClipID + " cancelled"
	default:
		return fmt.Errorf("command %q: %w", cmd, apperrors.ErrInvalidArgument)
	}
	return nil
}

func (s *EditorService) layout(project timelinedto.ProjectOutput) ([]domain.Row, []domain.Box) {
	ids := make([]string, len(project.Tracks))
	heights := make([]float64, len(project.Tracks))
	for i, t := range project.Tracks {
		ids[i] = t.ID
		heights[i] = t.Height
	}
	rows := domain.Rows(s.settings.RulerHeight, ids, heights)

	var boxes []domain.Box
	for i, t := range project.Tracks {
		for _, c := range t.Clips {
			boxes = append(boxes, domain.ClipBox(rows[i], c.ID,
				s.viewport.TimeToPixels(c.StartTime),
				s.viewport.ClipWidth(c.Duration),
				s.settings.ClipInset,
			))
		}
	}
	return rows, boxes
}

func (s *EditorService) State(ctx context.Context) (dto.StateOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	project, err := s.timeline.Snapshot(ctx)
	if err != nil {
		return dto.StateOutput{}, err
	}
	playback := s.playback.State()
	view := s.viewport.State()
	rows, boxes := s.layout(project)

	out := dto.StateOutput{
		ProjectName:   project.Name,
		CurrentTime:   playback.CurrentTime,
		Duration:      playback.Duration,
		TimeLabel:     s.viewport.FormatTime(playback.CurrentTime) + " / " + s.viewport.FormatTime(playback.Duration),
		IsPlaying:     playback.IsPlaying,
		Epoch:         playback.Epoch,
		Viewport:      view,
		TimelineWidth: s.viewport.TimelineWidth(project.Duration),
		PlayheadX:     s.viewport.TimeToPixels(playback.CurrentTime),
		RulerHeight:   s.settings.RulerHeight,
		Markers:       s.viewport.Markers(project.Duration),
		Status:        s.status,
	}

	dragged := ""
	preview, active, err := s.drag.Preview(ctx)
	if err != nil {
		return dto.StateOutput{}, err
	}
	if active {
		dragged = preview.Session.ClipID
		out.Drag = &preview
	}

	out.Rows = make([]dto.RowOutput, len(rows))
	for i, row := range rows {
		out.Rows[i] = dto.RowOutput{Track: project.Tracks[i], Top: row.Top, Height: row.Height}
	}
	out.Clips = make([]dto.ClipBoxOutput, 0, len(boxes))
	for _, b := range boxes {
		clip, _, _ := project.Clip(b.ClipID)
		out.Clips = append(out.Clips, dto.ClipBoxOutput{
			Clip:     clip,
			TrackID:  b.TrackID,
			Left:     b.Left,
			Top:      b.Top,
			Width:    b.Width,
			Height:   b.Height,
			Dragging: b.ClipID == dragged,
		})
	}
	return out, nil
}
