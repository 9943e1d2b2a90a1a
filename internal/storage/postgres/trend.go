package postgres

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"trendscope/internal/domain"
)

type TrendStore struct {
	db *sqlx.DB
}

func NewTrendStore(db *sqlx.DB) *TrendStore {
	return &TrendStore{db: db}
}

// Upsert inserts or updates the active trend for the trend's
// (workspace_id, topic) pair. The conflict target is the partial unique
// index on active rows, so concurrent detection runs resolve in the
// database rather than through check-then-insert logic. first_seen is kept
// from the existing row; peak_time advances only when the new mention
// count is at least the stored one.
func (s *TrendStore) Upsert(ctx context.Context, trend *domain.Trend) (int64, bool, error) {
	query := `
		INSERT INTO trends (
			workspace_id, topic, keywords, mention_count, velocity,
			source_count, sources, strength_score, confidence_level,
			explanation, key_content_item_ids, first_seen, peak_time,
			detected_at, is_active
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, true
		)
		ON CONFLICT (workspace_id, topic) WHERE is_active DO UPDATE SET
			keywords = EXCLUDED.keywords,
			mention_count = EXCLUDED.mention_count,
			velocity = EXCLUDED.velocity,
			source_count = EXCLUDED.source_count,
			sources = EXCLUDED.sources,
			strength_score = EXCLUDED.strength_score,
			confidence_level = EXCLUDED.confidence_level,
			explanation = EXCLUDED.explanation,
			key_content_item_ids = EXCLUDED.key_content_item_ids,
			peak_time = CASE
				WHEN EXCLUDED.mention_count >= trends.mention_count THEN EXCLUDED.detected_at
				ELSE trends.peak_time
			END,
			detected_at = EXCLUDED.detected_at
		RETURNING id, first_seen, peak_time, (xmax = 0) AS inserted`

	var velocity sql.NullFloat64
	if trend.VelocityKnown {
		velocity = sql.NullFloat64{Float64: trend.Velocity, Valid: true}
	}

	var (
		id       int64
		inserted bool
	)
	ex := GetExecutor(ctx, s.db)
	err := ex.QueryRowxContext(ctx, query,
		trend.WorkspaceID,
		trend.Topic,
		pq.Array(trend.Keywords),
		trend.MentionCount,
		velocity,
		trend.SourceCount,
		pq.Array(trend.Sources),
		trend.StrengthScore,
		string(trend.Confidence),
		trend.Explanation,
		pq.Array(trend.KeyContentItemIDs()),
		trend.FirstSeen,
		trend.PeakTime,
		trend.DetectedAt,
	).Scan(&id, &trend.FirstSeen, &trend.PeakTime, &inserted)
	if err != nil {
		return 0, false, mapError(err)
	}

	return id, inserted, nil
}

// ReplaceEvidence swaps out the trend's evidence links. Links are fully
// replaced on every re-detection, never appended.
func (s *TrendStore) ReplaceEvidence(ctx context.Context, trendID int64, links []domain.EvidenceLink) error {
	ex := GetExecutor(ctx, s.db)

	if _, err := ex.ExecContext(ctx,
		"DELETE FROM trend_evidence WHERE trend_id = $1",
		trendID,
	); err != nil {
		return mapError(err)
	}

	if len(links) == 0 {
		return nil
	}

	query, args := buildEvidenceInsert(trendID, links)
	if _, err := ex.ExecContext(ctx, query, args...); err != nil {
		return mapError(err)
	}
	return nil
}

func (s *TrendStore) ListActive(ctx context.Context, workspaceID string, limit int) ([]domain.Trend, error) {
	query := trendSelect + `
		WHERE workspace_id = $1 AND is_active
		ORDER BY strength_score DESC, topic
		LIMIT $2`

	return s.queryTrends(ctx, query, workspaceID, limit)
}

func (s *TrendStore) GetByID(ctx context.Context, id int64) (*domain.Trend, error) {
	rows, err := s.queryTrends(ctx, trendSelect+" WHERE id = $1", id)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrNotFound
	}
	return &rows[0], nil
}

func (s *TrendStore) History(ctx context.Context, workspaceID string, since time.Time) ([]domain.Trend, error) {
	query := trendSelect + `
		WHERE workspace_id = $1 AND detected_at >= $2
		ORDER BY detected_at DESC`

	return s.queryTrends(ctx, query, workspaceID, since)
}

func (s *TrendStore) Delete(ctx context.Context, id int64) error {
	// trend_evidence rows go with the trend via ON DELETE CASCADE.
	res, err := s.db.ExecContext(ctx, "DELETE FROM trends WHERE id = $1", id)
	if err != nil {
		return mapError(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *TrendStore) DeactivateStale(ctx context.Context, workspaceID string, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"UPDATE trends SET is_active = false WHERE workspace_id = $1 AND is_active AND detected_at < $2",
		workspaceID, cutoff,
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

const trendSelect = `
	SELECT id, workspace_id, topic, keywords, mention_count, velocity,
	       source_count, sources, strength_score, confidence_level,
	       explanation, first_seen, peak_time, detected_at, is_active
	FROM trends`

func (s *TrendStore) queryTrends(ctx context.Context, query string, args ...interface{}) ([]domain.Trend, error) {
	ex := GetExecutor(ctx, s.db)
	rows, err := ex.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var trends []domain.Trend
	for rows.Next() {
		var (
			t        domain.Trend
			velocity sql.NullFloat64
			level    string
		)
		err := rows.Scan(
			&t.ID,
			&t.WorkspaceID,
			&t.Topic,
			pq.Array(&t.Keywords),
			&t.MentionCount,
			&velocity,
			&t.SourceCount,
			pq.Array(&t.Sources),
			&t.StrengthScore,
			&level,
			&t.Explanation,
			&t.FirstSeen,
			&t.PeakTime,
			&t.DetectedAt,
			&t.IsActive,
		)
		if err != nil {
			return nil, mapError(err)
		}
		t.Velocity = velocity.Float64
		t.VelocityKnown = velocity.Valid
		t.Confidence = domain.ConfidenceLevel(level)

		evidence, err := s.evidenceFor(ctx, t.ID)
		if err != nil {
			return nil, err
		}
		t.Evidence = evidence

		trends = append(trends, t)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return trends, nil
}

func (s *TrendStore) evidenceFor(ctx context.Context, trendID int64) ([]domain.EvidenceLink, error) {
	query := `
		SELECT trend_id, content_item_id, relevance_score
		FROM trend_evidence
		WHERE trend_id = $1
		ORDER BY relevance_score DESC, content_item_id`

	var links []domain.EvidenceLink
	ex := GetExecutor(ctx, s.db)
	rows, err := ex.QueryxContext(ctx, query, trendID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	for rows.Next() {
		var link domain.EvidenceLink
		if err := rows.Scan(&link.TrendID, &link.ContentItemID, &link.Relevance); err != nil {
			return nil, mapError(err)
		}
		links = append(links, link)
	}
	return links, rows.Err()
}

func buildEvidenceInsert(trendID int64, links []domain.EvidenceLink) (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString("INSERT INTO trend_evidence (trend_id, content_item_id, relevance_score) VALUES ")
	args := make([]interface{}, 0, len(links)*2+1)
	args = append(args, trendID)

	for i, link := range links {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("($1, $")
		sb.WriteString(strconv.Itoa(len(args) + 1))
		sb.WriteString(", $")
		sb.WriteString(strconv.Itoa(len(args) + 2))
		sb.WriteString(")")
		args = append(args, link.ContentItemID, link.Relevance)
	}
	return sb.String(), args
}
