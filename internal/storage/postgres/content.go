package postgres

import (
	"context"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"trendscope/internal/domain"
)

// ContentStore reads the content archive maintained by the ingestion
// pipeline. The detection engine never writes to it.
type ContentStore struct {
	db *sqlx.DB
}

func NewContentStore(db *sqlx.DB) *ContentStore {
	return &ContentStore{db: db}
}

func (s *ContentStore) ListItems(ctx context.Context, workspaceID string, start, end time.Time, sources []string, limit int) ([]domain.ContentItem, error) {
	query := `
		SELECT id, workspace_id, source, title, summary, body, keywords, published_at
		FROM content_items
		WHERE workspace_id = $1
		  AND published_at BETWEEN $2 AND $3`
	args := []interface{}{workspaceID, start, end}

	if len(sources) > 0 {
		query += " AND source = ANY($4)"
		args = append(args, pq.Array(sources))
	}
	query += " ORDER BY published_at DESC LIMIT $" + strconv.Itoa(len(args)+1)
	args = append(args, limit)

	rows, err := s.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var items []domain.ContentItem
	for rows.Next() {
		var item domain.ContentItem
		err := rows.Scan(
			&item.ID,
			&item.WorkspaceID,
			&item.Source,
			&item.Title,
			&item.Summary,
			&item.Body,
			pq.Array(&item.Keywords),
			&item.PublishedAt,
		)
		if err != nil {
			return nil, mapError(err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return items, nil
}
