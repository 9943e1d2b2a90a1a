//go:build integration

package postgres

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"trendscope/internal/domain"
	"trendscope/testdata/utils"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	migrationsPath, err := filepath.Abs("../../../migrations")
	s.Require().NoError(err)

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(
			filepath.Join(migrationsPath, "001_create_content_items.up.sql"),
			filepath.Join(migrationsPath, "002_create_trends.up.sql"),
			filepath.Join(migrationsPath, "003_create_topic_snapshots.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM trend_evidence")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM trends")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM topic_snapshots")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM content_items")
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func (s *PostgresIntegrationSuite) sampleTrend(mentions int) *domain.Trend {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return &domain.Trend{
		WorkspaceID:   "ws-1",
		Topic:         "agents",
		Keywords:      []string{"agents", "ai agents", "automation"},
		MentionCount:  mentions,
		Velocity:      500.0,
		VelocityKnown: true,
		SourceCount:   3,
		Sources:       []string{"newsletter", "reddit", "rss"},
		StrengthScore: 0.925,
		Confidence:    domain.ConfidenceHigh,
		Explanation:   "This topic is trending with 30 mentions across newsletter, reddit and rss.",
		Evidence: []domain.EvidenceLink{
			{ContentItemID: 1, Relevance: 0.9},
			{ContentItemID: 2, Relevance: 0.8},
		},
		FirstSeen:  now,
		PeakTime:   now,
		DetectedAt: now,
		IsActive:   true,
	}
}

func (s *PostgresIntegrationSuite) TestTrendUpsert_UpdatesNotDuplicates() {
	store := NewTrendStore(s.db)

	first := s.sampleTrend(30)
	id1, isNew, err := store.Upsert(s.ctx, first)
	s.Require().NoError(err)
	s.True(isNew)

	second := s.sampleTrend(31)
	second.DetectedAt = second.DetectedAt.Add(time.Hour)
	id2, isNew, err := store.Upsert(s.ctx, second)
	s.Require().NoError(err)
	s.False(isNew)
	s.Equal(id1, id2, "re-detection updates the existing row")

	var count int
	err = s.db.GetContext(s.ctx, &count,
		"SELECT COUNT(*) FROM trends WHERE workspace_id = $1 AND topic = $2", "ws-1", "agents")
	s.Require().NoError(err)
	s.Equal(1, count, "exactly one row per (workspace_id, topic)")

	got, err := store.GetByID(s.ctx, id1)
	s.Require().NoError(err)
	s.Equal(31, got.MentionCount)
	s.WithinDuration(first.FirstSeen, got.FirstSeen, time.Second, "first_seen kept from the original row")
}

func (s *PostgresIntegrationSuite) TestTrendUpsert_DistinctWorkspaces() {
	store := NewTrendStore(s.db)

	a := s.sampleTrend(30)
	idA, _, err := store.Upsert(s.ctx, a)
	s.Require().NoError(err)

	b := s.sampleTrend(30)
	b.WorkspaceID = "ws-2"
	idB, isNew, err := store.Upsert(s.ctx, b)
	s.Require().NoError(err)
	s.True(isNew)
	s.NotEqual(idA, idB, "same topic in another workspace is a separate trend")
}

func (s *PostgresIntegrationSuite) TestTrendUpsert_PeakTimeAdvancesOnHigherCount() {
	store := NewTrendStore(s.db)

	first := s.sampleTrend(30)
	id, _, err := store.Upsert(s.ctx, first)
	s.Require().NoError(err)

	declined := s.sampleTrend(10)
	declined.DetectedAt = first.DetectedAt.Add(time.Hour)
	declined.PeakTime = declined.DetectedAt
	_, _, err = store.Upsert(s.ctx, declined)
	s.Require().NoError(err)

	got, err := store.GetByID(s.ctx, id)
	s.Require().NoError(err)
	s.WithinDuration(first.PeakTime, got.PeakTime, time.Second, "peak stays at the higher mention count")
}

func (s *PostgresIntegrationSuite) TestTrendUpsert_NullVelocity() {
	store := NewTrendStore(s.db)

	trend := s.sampleTrend(30)
	trend.VelocityKnown = false
	id, _, err := store.Upsert(s.ctx, trend)
	s.Require().NoError(err)

	got, err := store.GetByID(s.ctx, id)
	s.Require().NoError(err)
	s.False(got.VelocityKnown)
}

func (s *PostgresIntegrationSuite) TestReplaceEvidence() {
	store := NewTrendStore(s.db)

	trend := s.sampleTrend(30)
	id, _, err := store.Upsert(s.ctx, trend)
	s.Require().NoError(err)
	s.Require().NoError(store.ReplaceEvidence(s.ctx, id, []domain.EvidenceLink{
		{TrendID: id, ContentItemID: 1, Relevance: 0.9},
		{TrendID: id, ContentItemID: 2, Relevance: 0.8},
	}))

	// Re-detection replaces, never appends.
	s.Require().NoError(store.ReplaceEvidence(s.ctx, id, []domain.EvidenceLink{
		{TrendID: id, ContentItemID: 3, Relevance: 0.95},
	}))

	got, err := store.GetByID(s.ctx, id)
	s.Require().NoError(err)
	s.Require().Len(got.Evidence, 1)
	s.Equal(int64(3), got.Evidence[0].ContentItemID)
}

func (s *PostgresIntegrationSuite) TestListActive_RankedAndLimited() {
	store := NewTrendStore(s.db)

	weak := s.sampleTrend(10)
	weak.Topic = "billing"
	weak.StrengthScore = 0.55
	_, _, err := store.Upsert(s.ctx, weak)
	s.Require().NoError(err)

	strong := s.sampleTrend(30)
	_, _, err = store.Upsert(s.ctx, strong)
	s.Require().NoError(err)

	trends, err := store.ListActive(s.ctx, "ws-1", 10)
	s.Require().NoError(err)
	s.Require().Len(trends, 2)
	s.Equal("agents", trends[0].Topic)

	limited, err := store.ListActive(s.ctx, "ws-1", 1)
	s.Require().NoError(err)
	s.Len(limited, 1)
}

func (s *PostgresIntegrationSuite) TestDeactivateStale() {
	store := NewTrendStore(s.db)

	old := s.sampleTrend(30)
	old.DetectedAt = time.Now().UTC().AddDate(0, 0, -10)
	id, _, err := store.Upsert(s.ctx, old)
	s.Require().NoError(err)

	count, err := store.DeactivateStale(s.ctx, "ws-1", time.Now().UTC().AddDate(0, 0, -7))
	s.Require().NoError(err)
	s.Equal(int64(1), count)

	got, err := store.GetByID(s.ctx, id)
	s.Require().NoError(err)
	s.False(got.IsActive)

	// A fresh detection can now create a new active row for the topic.
	fresh := s.sampleTrend(12)
	freshID, isNew, err := store.Upsert(s.ctx, fresh)
	s.Require().NoError(err)
	s.True(isNew)
	s.NotEqual(id, freshID)
}

func (s *PostgresIntegrationSuite) TestDelete() {
	store := NewTrendStore(s.db)

	trend := s.sampleTrend(30)
	id, _, err := store.Upsert(s.ctx, trend)
	s.Require().NoError(err)
	s.Require().NoError(store.ReplaceEvidence(s.ctx, id, trend.Evidence))

	s.Require().NoError(store.Delete(s.ctx, id))
	s.ErrorIs(store.Delete(s.ctx, id), domain.ErrNotFound)

	var count int
	err = s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM trend_evidence WHERE trend_id = $1", id)
	s.Require().NoError(err)
	s.Equal(0, count, "evidence cascades with the trend")
}

func (s *PostgresIntegrationSuite) TestSnapshots_RecordQueryPurge() {
	store := NewSnapshotStore(s.db)
	now := time.Now().UTC()

	s.Require().NoError(store.RecordBatch(s.ctx, []domain.HistoricalSnapshot{
		{WorkspaceID: "ws-1", ContentItemID: 1, Source: "rss", Keywords: []string{"agents"}, CapturedAt: now.AddDate(0, 0, -3), ExpiresAt: now.AddDate(0, 0, 4)},
		{WorkspaceID: "ws-1", ContentItemID: 2, Source: "reddit", Keywords: []string{"billing"}, CapturedAt: now.AddDate(0, 0, -2), ExpiresAt: now.AddDate(0, 0, 5)},
		{WorkspaceID: "ws-1", ContentItemID: 3, Source: "rss", Keywords: []string{"stale"}, CapturedAt: now.AddDate(0, 0, -9), ExpiresAt: now.AddDate(0, 0, -2)},
		{WorkspaceID: "ws-2", ContentItemID: 1, Source: "rss", Keywords: []string{"other"}, CapturedAt: now.AddDate(0, 0, -1), ExpiresAt: now.AddDate(0, 0, 6)},
	}))

	got, err := store.Query(s.ctx, "ws-1", now.AddDate(0, 0, -7), now)
	s.Require().NoError(err)
	s.Len(got, 2, "expired and foreign-workspace snapshots are excluded")

	deleted, err := store.PurgeExpired(s.ctx, "ws-1")
	s.Require().NoError(err)
	s.Equal(int64(1), deleted)
}

func (s *PostgresIntegrationSuite) TestSnapshots_RecaptureNotDuplicated() {
	store := NewSnapshotStore(s.db)
	now := time.Now().UTC()

	batch := []domain.HistoricalSnapshot{
		{WorkspaceID: "ws-1", ContentItemID: 7, Source: "rss", Keywords: []string{"agents"}, CapturedAt: now.AddDate(0, 0, -1), ExpiresAt: now.AddDate(0, 0, 6)},
	}

	// Scheduler passes overlap in what they look at; recording the same
	// item again must not grow the historical window.
	s.Require().NoError(store.RecordBatch(s.ctx, batch))
	batch[0].CapturedAt = now
	s.Require().NoError(store.RecordBatch(s.ctx, batch))

	got, err := store.Query(s.ctx, "ws-1", now.AddDate(0, 0, -7), now)
	s.Require().NoError(err)
	s.Require().Len(got, 1, "one content item yields one historical snapshot")
	s.Equal(int64(7), got[0].ContentItemID)

	// Same item seen by another workspace is its own snapshot.
	other := batch
	other[0].WorkspaceID = "ws-2"
	s.Require().NoError(store.RecordBatch(s.ctx, other))

	got, err = store.Query(s.ctx, "ws-2", now.AddDate(0, 0, -7), now)
	s.Require().NoError(err)
	s.Len(got, 1)
}

func (s *PostgresIntegrationSuite) TestContentStore_ListItems() {
	store := NewContentStore(s.db)
	now := time.Now().UTC()

	_, err := s.db.ExecContext(s.ctx, `
		INSERT INTO content_items (workspace_id, source, title, summary, keywords, published_at) VALUES
		('ws-1', 'rss', 'agents rising', 'summary one', '{"agents"}', $1),
		('ws-1', 'reddit', 'agents discussed', NULL, '{}', $2),
		('ws-1', 'rss', 'too old', NULL, '{}', $3),
		('ws-2', 'rss', 'other workspace', NULL, '{}', $1)`,
		now.AddDate(0, 0, -1), now.AddDate(0, 0, -2), now.AddDate(0, 0, -20),
	)
	s.Require().NoError(err)

	items, err := store.ListItems(s.ctx, "ws-1", now.AddDate(0, 0, -7), now, nil, 100)
	s.Require().NoError(err)
	s.Require().Len(items, 2)
	s.Equal("agents rising", items[0].Title)
	s.Equal(utils.Ptr("summary one"), items[0].Summary)
	s.Nil(items[1].Summary)

	rssOnly, err := store.ListItems(s.ctx, "ws-1", now.AddDate(0, 0, -7), now, []string{"rss"}, 100)
	s.Require().NoError(err)
	s.Len(rssOnly, 1)

	limited, err := store.ListItems(s.ctx, "ws-1", now.AddDate(0, 0, -7), now, nil, 1)
	s.Require().NoError(err)
	s.Len(limited, 1)
}

func (s *PostgresIntegrationSuite) TestTransactionRollback() {
	store := NewTrendStore(s.db)
	tm := NewTransactionManager(s.db)

	err := tm.WithTransaction(s.ctx, func(txCtx context.Context) error {
		if _, _, err := store.Upsert(txCtx, s.sampleTrend(30)); err != nil {
			return err
		}
		return domain.ErrConstraintViolation
	})
	s.ErrorIs(err, domain.ErrConstraintViolation)

	var count int
	s.Require().NoError(s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM trends"))
	s.Equal(0, count, "failed run persists nothing")
}
