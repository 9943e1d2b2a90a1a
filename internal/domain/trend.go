package domain

import "time"

type ConfidenceLevel string

const (
	ConfidenceLow    ConfidenceLevel = "low"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceHigh   ConfidenceLevel = "high"
)

const (
	highConfidenceThreshold   = 0.75
	mediumConfidenceThreshold = 0.50
)

// ConfidenceForScore maps a strength score to its discrete tier.
func ConfidenceForScore(score float64) ConfidenceLevel {
	switch {
	case score >= highConfidenceThreshold:
		return ConfidenceHigh
	case score >= mediumConfidenceThreshold:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// Trend is a detected topic for a workspace. At most one active row exists
// per (workspace_id, topic); re-detection updates it in place.
type Trend struct {
	ID            int64
	WorkspaceID   string
	Topic         string
	Keywords      []string
	MentionCount  int
	Velocity      float64 // signed percentage; negative means declining
	VelocityKnown bool    // false when the historical window was unavailable
	SourceCount   int
	Sources       []string
	StrengthScore float64
	Confidence    ConfidenceLevel
	Explanation   string
	Evidence      []EvidenceLink
	FirstSeen     time.Time
	PeakTime      time.Time
	DetectedAt    time.Time
	IsActive      bool
}

// KeyContentItemIDs returns the evidence item ids in relevance order.
func (t *Trend) KeyContentItemIDs() []int64 {
	ids := make([]int64, len(t.Evidence))
	for i, ev := range t.Evidence {
		ids[i] = ev.ContentItemID
	}
	return ids
}

// EvidenceLink ties a trend to one supporting content item.
type EvidenceLink struct {
	TrendID       int64   `db:"trend_id"`
	ContentItemID int64   `db:"content_item_id"`
	Relevance     float64 `db:"relevance_score"`
}

// TopicCluster is the transient output of topic extraction. Cluster ids are
// ordinal for one extraction run and not stable across runs.
type TopicCluster struct {
	ID       int
	Keywords []string // ranked by centroid weight
	Members  []ClusterMember
	Sources  []string // distinct, sorted
}

func (c *TopicCluster) MentionCount() int {
	return len(c.Members)
}

// ClusterMember is one content item assigned to a cluster, with its cosine
// similarity to the cluster centroid.
type ClusterMember struct {
	ContentItemID int64
	Source        string
	Relevance     float64
}

// DetectionSummary describes one detection run.
type DetectionSummary struct {
	WorkspaceID          string
	ContentItemsAnalyzed int
	TopicsFound          int
	TrendsDetected       int
	Published            int
	ConfidenceThreshold  float64
	TimeRangeDays        int
	Duration             time.Duration
}
