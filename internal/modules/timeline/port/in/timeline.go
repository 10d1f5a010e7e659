package in

import (
	"context"

	"trackline/internal/modules/timeline/dto"
)

type Usecase interface {
	Snapshot(ctx context.Context) (dto.ProjectOutput, error)
	MoveClip(ctx context.Context, input dto.MoveClipInput) (dto.MoveClipOutput, error)
	FindTrackContainingClip(ctx context.Context, clipID string) (string, error)
	TrackAtPosition(ctx context.Context, y float64) (dto.LocateOutput, error)
	TrackTopOffset(ctx context.Context, trackID string) (float64, error)
	History(ctx context.Context, limit int) ([]dto.MoveRecordOutput, error)
}
