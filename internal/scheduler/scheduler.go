package scheduler

import (
	"context"
	"log/slog"
	"time"

	"trendscope/internal/domain"
)

// Runner is the periodic entrypoint of the detection service.
type Runner interface {
	RunScheduled(ctx context.Context, workspaceID string) (*domain.DetectionSummary, error)
}

type Scheduler struct {
	runner     Runner
	workspaces []string
	interval   time.Duration
	logger     *slog.Logger
}

func NewScheduler(runner Runner, workspaces []string, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		runner:     runner,
		workspaces: workspaces,
		interval:   interval,
		logger:     logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started",
		"interval", s.interval,
		"workspaces", len(s.workspaces),
	)

	s.runAll(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Scheduler) runAll(ctx context.Context) {
	for _, workspaceID := range s.workspaces {
		if ctx.Err() != nil {
			return
		}
		s.runOne(ctx, workspaceID)
	}
}

func (s *Scheduler) runOne(ctx context.Context, workspaceID string) {
	runCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	summary, err := s.runner.RunScheduled(runCtx, workspaceID)
	if err != nil {
		s.logger.Error("detection run failed", "workspace_id", workspaceID, "error", err)
		return
	}
	s.logger.Info("detection run finished",
		"workspace_id", workspaceID,
		"topics_found", summary.TopicsFound,
		"trends_detected", summary.TrendsDetected,
	)
}
