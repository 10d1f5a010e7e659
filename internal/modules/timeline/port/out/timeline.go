package out

import (
	"context"

	"trackline/internal/modules/timeline/domain"
)

// ProjectSource supplies the initial project once at startup.
type ProjectSource interface {
	Load(ctx context.Context) (domain.Project, error)
}

type MoveJournal interface {
	Append(ctx context.Context, record domain.MoveRecord) error
	Recent(ctx context.Context, project string, limit int) ([]domain.MoveRecord, error)
}
