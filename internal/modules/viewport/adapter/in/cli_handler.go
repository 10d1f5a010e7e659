package in

import (
	"trackline/internal/modules/viewport/dto"
	viewportin "trackline/internal/modules/viewport/port/in"
)

type CLIHandler struct {
	usecase viewportin.Usecase
}

func NewCLIHandler(usecase viewportin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

// Markers evaluates the ruler for duration at the given zoom (clamped to the
// configured bounds).
func (h CLIHandler) Markers(duration, zoom float64) (dto.StateOutput, []dto.MarkerOutput) {
	state := h.usecase.SetZoom(zoom)
	return state, h.usecase.Markers(duration)
}

func (h CLIHandler) State() dto.StateOutput {
	return h.usecase.State()
}
