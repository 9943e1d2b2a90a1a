package service

import (
	"context"
	"fmt"
	"time"

	"trendscope/internal/domain"
)

// ListActive returns the workspace's active trends ranked by strength.
func (s *DetectionService) ListActive(ctx context.Context, workspaceID string, limit int) ([]domain.Trend, error) {
	if limit <= 0 {
		limit = s.config.MaxTrends
	}
	trends, err := s.trends.ListActive(ctx, workspaceID, limit)
	if err != nil {
		return nil, fmt.Errorf("list active trends: %w", err)
	}
	return trends, nil
}

// GetTrend fetches a single trend by id.
func (s *DetectionService) GetTrend(ctx context.Context, id int64) (*domain.Trend, error) {
	trend, err := s.trends.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get trend %d: %w", id, err)
	}
	return trend, nil
}

// History returns trends detected within the past daysBack days, active or
// not.
func (s *DetectionService) History(ctx context.Context, workspaceID string, daysBack int) ([]domain.Trend, error) {
	if daysBack < 1 {
		return nil, &domain.ValidationError{Field: "days_back", Reason: "must be positive"}
	}
	since := time.Now().UTC().AddDate(0, 0, -daysBack)
	trends, err := s.trends.History(ctx, workspaceID, since)
	if err != nil {
		return nil, fmt.Errorf("trend history: %w", err)
	}
	return trends, nil
}

// DeleteTrend removes a trend and its evidence links.
func (s *DetectionService) DeleteTrend(ctx context.Context, id int64) error {
	if err := s.trends.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete trend %d: %w", id, err)
	}
	return nil
}

// DeactivateStale marks trends not reconfirmed since cutoff as inactive.
func (s *DetectionService) DeactivateStale(ctx context.Context, workspaceID string, cutoff time.Time) (int64, error) {
	count, err := s.trends.DeactivateStale(ctx, workspaceID, cutoff)
	if err != nil {
		return 0, fmt.Errorf("deactivate stale trends: %w", err)
	}
	if count > 0 {
		s.logger.Info("deactivated stale trends", "workspace_id", workspaceID, "count", count)
	}
	return count, nil
}
