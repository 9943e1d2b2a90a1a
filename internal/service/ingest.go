package service

import (
	"context"
	"fmt"
	"time"

	"trendscope/internal/domain"
	"trendscope/internal/extractor"
)

const snapshotKeywordCap = 10

// RecordSnapshots stores compact keyword snapshots of the given content
// items for later velocity comparison. Snapshots expire windowDays after
// capture. Recording is idempotent per content item: overlapping scheduler
// passes do not grow the historical window.
func (s *DetectionService) RecordSnapshots(ctx context.Context, workspaceID string, items []domain.ContentItem, windowDays int) (int, error) {
	if workspaceID == "" {
		return 0, &domain.ValidationError{Field: "workspace_id", Reason: "must not be empty"}
	}
	if windowDays < 1 {
		return 0, &domain.ValidationError{Field: "window_days", Reason: "must be positive"}
	}
	if len(items) == 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	snapshots := make([]domain.HistoricalSnapshot, 0, len(items))
	for i := range items {
		if err := items[i].Validate(); err != nil {
			return 0, err
		}
		keywords := extractor.ItemKeywords(&items[i], snapshotKeywordCap)
		if len(keywords) == 0 {
			continue
		}
		snapshots = append(snapshots, domain.HistoricalSnapshot{
			WorkspaceID:   workspaceID,
			ContentItemID: items[i].ID,
			Source:        items[i].Source,
			Keywords:      keywords,
			CapturedAt:    now,
			ExpiresAt:     now.AddDate(0, 0, windowDays),
		})
	}

	if err := s.snapshots.RecordBatch(ctx, snapshots); err != nil {
		return 0, fmt.Errorf("record snapshots: %w", err)
	}

	s.logger.Debug("recorded historical snapshots",
		"workspace_id", workspaceID,
		"count", len(snapshots),
	)
	return len(snapshots), nil
}

// PurgeExpired removes snapshots whose TTL has passed.
func (s *DetectionService) PurgeExpired(ctx context.Context, workspaceID string) (int64, error) {
	deleted, err := s.snapshots.PurgeExpired(ctx, workspaceID)
	if err != nil {
		return 0, fmt.Errorf("purge expired snapshots: %w", err)
	}
	if deleted > 0 {
		s.logger.Info("purged expired snapshots", "workspace_id", workspaceID, "deleted", deleted)
	}
	return deleted, nil
}

// RunScheduled is the periodic entrypoint used by the scheduler: detect
// with configured defaults, snapshot the freshly analyzed window for future
// velocity comparison, then purge expired history.
func (s *DetectionService) RunScheduled(ctx context.Context, workspaceID string) (*domain.DetectionSummary, error) {
	_, summary, err := s.Detect(ctx, DetectParams{WorkspaceID: workspaceID})
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	items, err := s.content.ListItems(ctx, workspaceID, now.AddDate(0, 0, -1), now, nil, s.config.MaxContentItems)
	if err != nil {
		return summary, fmt.Errorf("list items for snapshot: %w", err)
	}
	if _, err := s.RecordSnapshots(ctx, workspaceID, items, s.config.WindowDays); err != nil {
		return summary, err
	}

	if _, err := s.PurgeExpired(ctx, workspaceID); err != nil {
		return summary, err
	}
	return summary, nil
}
