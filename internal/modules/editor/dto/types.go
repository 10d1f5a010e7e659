package dto

import (
	"time"

	dragdto "trackline/internal/modules/drag/dto"
	timelinedto "trackline/internal/modules/timeline/dto"
	viewportdto "trackline/internal/modules/viewport/dto"
)

// Event is one input delivered by the host. Dispatch handles events strictly
// in the order given.
type Event interface {
	isEvent()
}

type PointerPhase string

const (
	PointerStart PointerPhase = "start"
	PointerMove  PointerPhase = "move"
	PointerEnd   PointerPhase = "end"
)

// PointerEvent carries viewport pixels: X from the left edge of the visible
// timeline, Y from the top of the ruler band.
type PointerEvent struct {
	Phase PointerPhase
	X     float64
	Y     float64
}

// FrameEvent is one animation frame. Epoch must match the playback epoch the
// frame was scheduled under; frames from an earlier run are dropped.
type FrameEvent struct {
	Epoch uint64
	At    time.Time
}

type Command string

const (
	CommandPlay       Command = "play"
	CommandPause      Command = "pause"
	CommandToggle     Command = "toggle"
	CommandZoomIn     Command = "zoom-in"
	CommandZoomOut    Command = "zoom-out"
	CommandCancelDrag Command = "cancel-drag"
)

type CommandEvent struct {
	Command Command
}

type ResizeEvent struct {
	Width float64
}

func (PointerEvent) isEvent() {}
func (FrameEvent) isEvent()   {}
func (CommandEvent) isEvent() {}
func (ResizeEvent) isEvent()  {}

type RowOutput struct {
	Track  timelinedto.TrackOutput
	Top    float64
	Height float64
}

type ClipBoxOutput struct {
	Clip     timelinedto.ClipOutput
	TrackID  string
	Left     float64
	Top      float64
	Width    float64
	Height   float64
	Dragging bool
}

// StateOutput is everything a host needs to draw one frame. Horizontal
// positions are timeline-content pixels; subtract ScrollLeft for the
// viewport.
type StateOutput struct {
	ProjectName   string
	CurrentTime   float64
	Duration      float64
	TimeLabel     string
	IsPlaying     bool
	Epoch         uint64
	Viewport      viewportdto.StateOutput
	TimelineWidth float64
	PlayheadX     float64
	RulerHeight   float64
	Markers       []viewportdto.MarkerOutput
	Rows          []RowOutput
	Clips         []ClipBoxOutput
	Drag          *dragdto.PreviewOutput
	Status        string
}
