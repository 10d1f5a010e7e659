package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"trackline/internal/modules/timeline/domain"
	timelineout "trackline/internal/modules/timeline/port/out"

	_ "modernc.org/sqlite"
)

type SQLiteMoveJournal struct {
	db *sql.DB
}

func NewSQLiteMoveJournal(dbPath string) (timelineout.MoveJournal, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	journal := &SQLiteMoveJournal{db: db}
	if err := journal.ensureSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return journal, nil
}

func (s *SQLiteMoveJournal) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS clip_moves (
  id TEXT PRIMARY KEY,
  project TEXT NOT NULL,
  clip_id TEXT NOT NULL,
  from_track_id TEXT NOT NULL,
  to_track_id TEXT NOT NULL,
  from_start REAL NOT NULL,
  to_start REAL NOT NULL,
  moved_at TEXT NOT NULL,
  seq INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_clip_moves_project_seq ON clip_moves(project, seq);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create clip_moves table: %w", err)
	}
	return nil
}

func (s *SQLiteMoveJournal) Append(ctx context.Context, record domain.MoveRecord) error {
	const stmt = `
INSERT INTO clip_moves (id, project, clip_id, from_track_id, to_track_id, from_start, to_start, moved_at, seq)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM clip_moves));
`
	_, err := s.db.ExecContext(ctx, stmt,
		record.ID,
		record.Project,
		record.ClipID,
		record.FromTrackID,
		record.ToTrackID,
		record.FromStart,
		record.ToStart,
		record.MovedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("append clip move: %w", err)
	}
	return nil
}

// Recent returns up to limit moves of project, newest first. A non-positive
// limit returns every move.
func (s *SQLiteMoveJournal) Recent(ctx context.Context, project string, limit int) ([]domain.MoveRecord, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT id, project, clip_id, from_track_id, to_track_id, from_start, to_start, moved_at
FROM clip_moves
WHERE project = ?
ORDER BY seq DESC
LIMIT ?`, project, limit)
	if err != nil {
		return nil, fmt.Errorf("query clip moves: %w", err)
	}
	defer rows.Close()

	out := []domain.MoveRecord{}
	for rows.Next() {
		var r domain.MoveRecord
		var movedAt string
		if err := rows.Scan(&r.ID, &r.Project, &r.ClipID, &r.FromTrackID, &r.ToTrackID, &r.FromStart, &r.ToStart, &movedAt); err != nil {
			return nil, fmt.Errorf("scan clip move: %w", err)
		}
		if t, err := time.Parse(time.RFC3339Nano, movedAt); err == nil {
			r.MovedAt = t
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate clip moves: %w", err)
	}
	return out, nil
}

func (s *SQLiteMoveJournal) Close() error {
	return s.db.Close()
}
