package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"trendscope/internal/analysis"
	"trendscope/internal/config"
	"trendscope/internal/domain"
)

const maxEvidenceItems = 10

// DetectParams are the caller-facing knobs of one detection run. Zero
// values fall back to the configured defaults; MinConfidence is a pointer
// so an explicit 0.0 threshold stays distinguishable from "use the
// default".
type DetectParams struct {
	WorkspaceID   string
	DaysBack      int
	MaxTrends     int
	MinConfidence *float64
}

type DetectionService struct {
	content   ContentSource
	trends    TrendStore
	snapshots SnapshotStore
	extractor TopicExtractor
	txManager TransactionManager
	publisher Publisher
	logger    *slog.Logger
	config    config.DetectionConfig
}

func NewDetectionService(
	content ContentSource,
	trends TrendStore,
	snapshots SnapshotStore,
	extractor TopicExtractor,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.DetectionConfig,
) *DetectionService {
	return &DetectionService{
		content:   content,
		trends:    trends,
		snapshots: snapshots,
		extractor: extractor,
		txManager: txManager,
		publisher: publisher,
		logger:    logger,
		config:    cfg,
	}
}

// Detect runs the full pipeline for one workspace: pull the recent content
// window, cluster it into topics, measure velocity against the historical
// window, gate on source spread, score, explain, and persist everything in
// a single transaction. Persisted trends are returned ranked by strength.
func (s *DetectionService) Detect(ctx context.Context, params DetectParams) ([]domain.Trend, *domain.DetectionSummary, error) {
	startTime := time.Now()

	params = s.withDefaults(params)
	if err := validateParams(&params); err != nil {
		return nil, nil, err
	}

	logger := s.logger.With("workspace_id", params.WorkspaceID)
	logger.Info("starting trend detection",
		"days_back", params.DaysBack,
		"max_trends", params.MaxTrends,
		"min_confidence", *params.MinConfidence,
	)

	now := time.Now().UTC()
	windowStart := now.AddDate(0, 0, -params.DaysBack)

	items, err := s.content.ListItems(ctx, params.WorkspaceID, windowStart, now, nil, s.config.MaxContentItems)
	if err != nil {
		return nil, nil, fmt.Errorf("list content items: %w", err)
	}

	summary := &domain.DetectionSummary{
		WorkspaceID:          params.WorkspaceID,
		ContentItemsAnalyzed: len(items),
		ConfidenceThreshold:  *params.MinConfidence,
		TimeRangeDays:        params.DaysBack,
	}

	clusters, err := s.extractor.Extract(items)
	if err != nil {
		return nil, nil, fmt.Errorf("extract topics: %w", err)
	}
	summary.TopicsFound = len(clusters)

	if len(clusters) == 0 {
		summary.Duration = time.Since(startTime)
		logger.Info("no topics found", "content_items", len(items))
		return nil, summary, nil
	}

	history, historyKnown, err := s.loadHistory(ctx, params.WorkspaceID, now, logger)
	if err != nil {
		return nil, nil, err
	}

	candidates := s.buildCandidates(params, clusters, history, historyKnown, now, logger)

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].StrengthScore != candidates[j].StrengthScore {
			return candidates[i].StrengthScore > candidates[j].StrengthScore
		}
		return candidates[i].Topic < candidates[j].Topic
	})
	candidates = dedupeByTopic(candidates)
	if len(candidates) > params.MaxTrends {
		candidates = candidates[:params.MaxTrends]
	}

	created, err := s.persist(ctx, candidates)
	if err != nil {
		return nil, nil, err
	}

	summary.TrendsDetected = len(candidates)
	summary.Published = s.publish(ctx, candidates, created, logger)
	summary.Duration = time.Since(startTime)

	logger.Info("trend detection completed",
		"content_items", summary.ContentItemsAnalyzed,
		"topics_found", summary.TopicsFound,
		"trends_detected", summary.TrendsDetected,
		"published", summary.Published,
		"duration", summary.Duration,
	)

	return candidates, summary, nil
}

func (s *DetectionService) withDefaults(params DetectParams) DetectParams {
	if params.DaysBack == 0 {
		params.DaysBack = s.config.WindowDays
	}
	if params.MaxTrends == 0 {
		params.MaxTrends = s.config.MaxTrends
	}
	if params.MinConfidence == nil {
		threshold := s.config.MinConfidence
		params.MinConfidence = &threshold
	}
	return params
}

func validateParams(params *DetectParams) error {
	if params.WorkspaceID == "" {
		return &domain.ValidationError{Field: "workspace_id", Reason: "must not be empty"}
	}
	if params.DaysBack < 1 || params.DaysBack > 30 {
		return &domain.ValidationError{Field: "days_back", Reason: "must be between 1 and 30"}
	}
	if params.MaxTrends < 1 {
		return &domain.ValidationError{Field: "max_trends", Reason: "must be positive"}
	}
	if *params.MinConfidence < 0 || *params.MinConfidence > 1 {
		return &domain.ValidationError{Field: "min_confidence", Reason: "must be between 0.0 and 1.0"}
	}
	return nil
}

// loadHistory reads the historical window. ErrHistoryUnavailable degrades
// the run (velocity becomes unknown); any other storage failure is fatal.
func (s *DetectionService) loadHistory(ctx context.Context, workspaceID string, now time.Time, logger *slog.Logger) ([]domain.HistoricalSnapshot, bool, error) {
	start := now.AddDate(0, 0, -s.config.WindowDays)
	history, err := s.snapshots.Query(ctx, workspaceID, start, now)
	if err != nil {
		if errors.Is(err, domain.ErrHistoryUnavailable) {
			logger.Warn("historical window unavailable, velocity will be unknown", "error", err)
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("query historical snapshots: %w", err)
	}
	return history, true, nil
}

func (s *DetectionService) buildCandidates(
	params DetectParams,
	clusters []domain.TopicCluster,
	history []domain.HistoricalSnapshot,
	historyKnown bool,
	now time.Time,
	logger *slog.Logger,
) []domain.Trend {
	candidates := make([]domain.Trend, 0, len(clusters))
	for i := range clusters {
		cluster := &clusters[i]

		if !analysis.MeetsSourceSpread(len(cluster.Sources), s.config.MinSources) {
			logger.Debug("cluster rejected, insufficient source spread",
				"topic", cluster.Keywords[0],
				"sources", len(cluster.Sources),
			)
			continue
		}

		velocity := analysis.MeasureVelocity(cluster, history, s.config.OverlapThreshold, historyKnown)
		score := analysis.Score(cluster.MentionCount(), velocity, len(cluster.Sources))
		if score < *params.MinConfidence {
			logger.Debug("cluster below confidence threshold",
				"topic", cluster.Keywords[0],
				"score", score,
			)
			continue
		}

		candidates = append(candidates, domain.Trend{
			WorkspaceID:   params.WorkspaceID,
			Topic:         cluster.Keywords[0],
			Keywords:      cluster.Keywords,
			MentionCount:  cluster.MentionCount(),
			Velocity:      velocity.Percent,
			VelocityKnown: velocity.Known,
			SourceCount:   len(cluster.Sources),
			Sources:       cluster.Sources,
			StrengthScore: score,
			Confidence:    domain.ConfidenceForScore(score),
			Explanation:   analysis.Explain(cluster.MentionCount(), cluster.Sources, velocity),
			Evidence:      evidenceFor(cluster),
			FirstSeen:     now,
			PeakTime:      now,
			DetectedAt:    now,
			IsActive:      true,
		})
	}
	return candidates
}

// dedupeByTopic keeps the first candidate per topic. Candidates arrive
// sorted by score, so when two clusters share a top keyword the stronger
// one survives; otherwise both would target the same active trend row.
func dedupeByTopic(candidates []domain.Trend) []domain.Trend {
	seen := make(map[string]struct{}, len(candidates))
	out := candidates[:0]
	for i := range candidates {
		if _, ok := seen[candidates[i].Topic]; ok {
			continue
		}
		seen[candidates[i].Topic] = struct{}{}
		out = append(out, candidates[i])
	}
	return out
}

// evidenceFor keeps the most relevant members as the trend's evidence
// links; members arrive sorted by relevance from the extractor.
func evidenceFor(cluster *domain.TopicCluster) []domain.EvidenceLink {
	members := cluster.Members
	if len(members) > maxEvidenceItems {
		members = members[:maxEvidenceItems]
	}
	links := make([]domain.EvidenceLink, len(members))
	for i, m := range members {
		links[i] = domain.EvidenceLink{ContentItemID: m.ContentItemID, Relevance: m.Relevance}
	}
	return links
}

// persist writes all candidates and their evidence in one transaction so a
// failed run leaves no partial state. Ids assigned by the store are written
// back onto the candidates; the returned slice marks which rows were newly
// created.
func (s *DetectionService) persist(ctx context.Context, candidates []domain.Trend) ([]bool, error) {
	created := make([]bool, len(candidates))
	if len(candidates) == 0 {
		return created, nil
	}

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		for i := range candidates {
			trend := &candidates[i]

			id, isNew, err := s.trends.Upsert(txCtx, trend)
			if err != nil {
				return fmt.Errorf("upsert trend %q: %w", trend.Topic, err)
			}
			trend.ID = id
			created[i] = isNew

			for j := range trend.Evidence {
				trend.Evidence[j].TrendID = id
			}
			if err := s.trends.ReplaceEvidence(txCtx, id, trend.Evidence); err != nil {
				return fmt.Errorf("replace evidence for trend %q: %w", trend.Topic, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// publish pushes one event per trend; publish failures are logged, not
// fatal, since the run is already durably persisted.
func (s *DetectionService) publish(ctx context.Context, trends []domain.Trend, created []bool, logger *slog.Logger) int {
	if s.publisher == nil {
		return 0
	}

	published := 0
	for i := range trends {
		if err := s.publisher.Publish(ctx, &trends[i], created[i]); err != nil {
			logger.Error("failed to publish trend event", "topic", trends[i].Topic, "error", err)
			continue
		}
		published++
	}
	return published
}
