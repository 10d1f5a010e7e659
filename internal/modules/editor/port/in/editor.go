package in

import (
	"context"

	"trackline/internal/modules/editor/dto"
)

type Usecase interface {
	Dispatch(ctx context.Context, events ...dto.Event) error
	State(ctx context.Context) (dto.StateOutput, error)
}
