package in

import (
	"context"

	"trackline/internal/modules/timeline/dto"
	timelinein "trackline/internal/modules/timeline/port/in"
)

type CLIHandler struct {
	usecase timelinein.Usecase
}

func NewCLIHandler(usecase timelinein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Tracks(ctx context.Context) (dto.ProjectOutput, error) {
	return h.usecase.Snapshot(ctx)
}

// Move relocates clipID to toTrackID. The source track is looked up, so the
// caller only names where the clip should go.
func (h CLIHandler) Move(ctx context.Context, clipID, toTrackID string, start float64) (dto.MoveClipOutput, error) {
	from, err := h.usecase.FindTrackContainingClip(ctx, clipID)
	if err != nil {
		return dto.MoveClipOutput{}, err
	}
	return h.usecase.MoveClip(ctx, dto.MoveClipInput{ClipID: clipID, FromTrackID: from, ToTrackID: toTrackID, NewStartTime: start})
}

func (h CLIHandler) Locate(ctx context.Context, y float64) (dto.LocateOutput, float64, error) {
	loc, err := h.usecase.TrackAtPosition(ctx, y)
	if err != nil || !loc.Found {
		return loc, 0, err
	}
	top, err := h.usecase.TrackTopOffset(ctx, loc.TrackID)
	if err != nil {
		return dto.LocateOutput{}, 0, err
	}
	return loc, top, nil
}

func (h CLIHandler) History(ctx context.Context, limit int) ([]dto.MoveRecordOutput, error) {
	return h.usecase.History(ctx, limit)
}
