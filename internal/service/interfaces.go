package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"trendscope/internal/domain"
)

type ContentSource interface {
	ListItems(ctx context.Context, workspaceID string, start, end time.Time, sources []string, limit int) ([]domain.ContentItem, error)
}

type TrendStore interface {
	// Upsert atomically inserts or updates the active trend for the
	// trend's (workspace_id, topic) pair and returns its id and whether
	// a new row was created.
	Upsert(ctx context.Context, trend *domain.Trend) (int64, bool, error)
	ReplaceEvidence(ctx context.Context, trendID int64, links []domain.EvidenceLink) error
	ListActive(ctx context.Context, workspaceID string, limit int) ([]domain.Trend, error)
	GetByID(ctx context.Context, id int64) (*domain.Trend, error)
	History(ctx context.Context, workspaceID string, since time.Time) ([]domain.Trend, error)
	Delete(ctx context.Context, id int64) error
	DeactivateStale(ctx context.Context, workspaceID string, cutoff time.Time) (int64, error)
}

type SnapshotStore interface {
	RecordBatch(ctx context.Context, snapshots []domain.HistoricalSnapshot) error
	Query(ctx context.Context, workspaceID string, start, end time.Time) ([]domain.HistoricalSnapshot, error)
	PurgeExpired(ctx context.Context, workspaceID string) (int64, error)
}

type TopicExtractor interface {
	Extract(items []domain.ContentItem) ([]domain.TopicCluster, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, trend *domain.Trend, isNew bool) error
	Close() error
}
