package usecase

import (
	"context"

	"trackline/internal/modules/editor/dto"
	editorin "trackline/internal/modules/editor/port/in"
	"trackline/internal/modules/editor/service"
)

type Interactor struct {
	svc *service.EditorService
}

func NewInteractor(svc *service.EditorService) editorin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Dispatch(ctx context.Context, events ...dto.Event) error {
	return i.svc.Dispatch(ctx, events...)
}

func (i *Interactor) State(ctx context.Context) (dto.StateOutput, error) {
	return i.svc.State(ctx)
}
