package in

import (
	"context"
	"time"

	"trackline/internal/modules/editor/dto"
	editorin "trackline/internal/modules/editor/port/in"
)

// TUIHandler turns terminal host callbacks into editor events. Coordinates
// are already converted to pixels by the host.
type TUIHandler struct {
	usecase editorin.Usecase
}

func NewTUIHandler(usecase editorin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) Press(ctx context.Context, x, y float64) error {
	return h.usecase.Dispatch(ctx, dto.PointerEvent{Phase: dto.PointerStart, X: x, Y: y})
}

func (h TUIHandler) Motion(ctx context.Context, x, y float64) error {
	return h.usecase.Dispatch(ctx, dto.PointerEvent{Phase: dto.PointerMove, X: x, Y: y})
}

// Release moves the pointer to its final position before ending, so a drop
// lands where the button came up even when no motion event preceded it.
func (h TUIHandler) Release(ctx context.Context, x, y float64) error {
	return h.usecase.Dispatch(ctx,
		dto.PointerEvent{Phase: dto.PointerMove, X: x, Y: y},
		dto.PointerEvent{Phase: dto.PointerEnd, X: x, Y: y},
	)
}

func (h TUIHandler) Frame(ctx context.Context, epoch uint64, at time.Time) error {
	return h.usecase.Dispatch(ctx, dto.FrameEvent{Epoch: epoch, At: at})
}

func (h TUIHandler) Command(ctx context.Context, cmd dto.Command) error {
	return h.usecase.Dispatch(ctx, dto.CommandEvent{Command: cmd})
}

func (h TUIHandler) Resize(ctx context.Context, width float64) error {
	return h.usecase.Dispatch(ctx, dto.ResizeEvent{Width: width})
}

func (h TUIHandler) State(ctx context.Context) (dto.StateOutput, error) {
	return h.usecase.State(ctx)
}
