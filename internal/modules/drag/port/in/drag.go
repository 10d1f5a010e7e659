package in

import (
	"context"

	"trackline/internal/modules/drag/dto"
)

type Usecase interface {
	BeginDrag(ctx context.Context, input dto.BeginInput) (dto.SessionOutput, error)
	UpdateDrag(ctx context.Context, input dto.PointInput) (dto.SessionOutput, error)
	EndDrag(ctx context.Context) (dto.DropOutput, error)
	CancelDrag(ctx context.Context) (dto.DropOutput, error)
	Active(ctx context.Context) (dto.SessionOutput, bool)
	Preview(ctx context.Context) (dto.PreviewOutput, bool, error)
}
