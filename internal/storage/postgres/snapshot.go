package postgres

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"trendscope/internal/domain"
)

// SnapshotStore keeps the rolling historical window used for velocity
// comparison. Rows are immutable after insert and removed by PurgeExpired
// once their TTL passes.
type SnapshotStore struct {
	db *sqlx.DB
}

func NewSnapshotStore(db *sqlx.DB) *SnapshotStore {
	return &SnapshotStore{db: db}
}

// RecordBatch inserts snapshots, at most one per content item per
// workspace. Scheduler passes overlap in the content they look at, so a
// re-captured item resolves against the unique index and is dropped rather
// than inflating the window's mention count.
func (s *SnapshotStore) RecordBatch(ctx context.Context, snapshots []domain.HistoricalSnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO topic_snapshots (workspace_id, content_item_id, source, keywords, captured_at, expires_at) VALUES ")
	args := make([]interface{}, 0, len(snapshots)*6)

	for i, snap := range snapshots {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(")
		for j := 0; j < 6; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString("$")
			sb.WriteString(strconv.Itoa(i*6 + j + 1))
		}
		sb.WriteString(")")
		args = append(args, snap.WorkspaceID, snap.ContentItemID, snap.Source, pq.Array(snap.Keywords), snap.CapturedAt, snap.ExpiresAt)
	}
	sb.WriteString(" ON CONFLICT (workspace_id, content_item_id) DO NOTHING")

	if _, err := s.db.ExecContext(ctx, sb.String(), args...); err != nil {
		return mapError(err)
	}
	return nil
}

// Query returns unexpired snapshots captured within [start, end]. A missing
// snapshot table means the historical window is not provisioned for this
// deployment: that degrades to ErrHistoryUnavailable so detection can
// proceed with unknown velocity, while real storage failures stay fatal.
func (s *SnapshotStore) Query(ctx context.Context, workspaceID string, start, end time.Time) ([]domain.HistoricalSnapshot, error) {
	query := `
		SELECT id, workspace_id, content_item_id, source, keywords, captured_at, expires_at
		FROM topic_snapshots
		WHERE workspace_id = $1
		  AND captured_at BETWEEN $2 AND $3
		  AND expires_at > now()
		ORDER BY captured_at`

	rows, err := s.db.QueryxContext(ctx, query, workspaceID, start, end)
	if err != nil {
		if isUndefinedTable(err) {
			return nil, fmt.Errorf("%w: topic_snapshots table missing", domain.ErrHistoryUnavailable)
		}
		return nil, mapError(err)
	}
	defer rows.Close()

	var snapshots []domain.HistoricalSnapshot
	for rows.Next() {
		var snap domain.HistoricalSnapshot
		err := rows.Scan(
			&snap.ID,
			&snap.WorkspaceID,
			&snap.ContentItemID,
			&snap.Source,
			pq.Array(&snap.Keywords),
			&snap.CapturedAt,
			&snap.ExpiresAt,
		)
		if err != nil {
			return nil, mapError(err)
		}
		snapshots = append(snapshots, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return snapshots, nil
}

func (s *SnapshotStore) PurgeExpired(ctx context.Context, workspaceID string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM topic_snapshots WHERE workspace_id = $1 AND expires_at <= now()",
		workspaceID,
	)
	if err != nil {
		return 0, mapError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, mapError(err)
	}
	return n, nil
}
