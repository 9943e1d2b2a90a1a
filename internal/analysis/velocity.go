// Package analysis holds the pure scoring stages of the detection pipeline:
// velocity measurement, the cross-source gate, strength scoring and
// explanation rendering. Nothing here performs I/O.
package analysis

import "trendscope/internal/domain"

// Velocity is the percentage change in mentions between the current and
// historical windows. Known is false when the historical window store was
// unavailable; the percentage is meaningless in that case.
type Velocity struct {
	Percent float64
	Known   bool
}

// MeasureVelocity compares a cluster's current mention count against the
// historical snapshots whose keyword sets overlap the cluster's keywords by
// at least overlapThreshold. The result keeps its sign: a topic losing
// momentum yields a negative percentage.
func MeasureVelocity(cluster *domain.TopicCluster, history []domain.HistoricalSnapshot, overlapThreshold float64, historyKnown bool) Velocity {
	if !historyKnown {
		return Velocity{}
	}

	current := cluster.MentionCount()
	historical := 0
	for i := range history {
		if keywordOverlap(cluster.Keywords, history[i].Keywords) >= overlapThreshold {
			historical++
		}
	}

	if historical == 0 {
		if current > 0 {
			return Velocity{Percent: 100.0, Known: true}
		}
		return Velocity{Percent: 0.0, Known: true}
	}

	return Velocity{
		Percent: (float64(current-historical) / float64(historical)) * 100.0,
		Known:   true,
	}
}

// keywordOverlap is the fraction of the cluster's keywords present in the
// snapshot's keyword set. Multi-word cluster keywords match when any of
// their words appears in the snapshot.
func keywordOverlap(clusterKeywords, snapshotKeywords []string) float64 {
	if len(clusterKeywords) == 0 {
		return 0
	}

	set := make(map[string]struct{}, len(snapshotKeywords))
	for _, kw := range snapshotKeywords {
		set[kw] = struct{}{}
	}

	matched := 0
	for _, kw := range clusterKeywords {
		if containsAnyWord(set, kw) {
			matched++
		}
	}
	return float64(matched) / float64(len(clusterKeywords))
}

func containsAnyWord(set map[string]struct{}, keyword string) bool {
	if _, ok := set[keyword]; ok {
		return true
	}
	start := 0
	for i := 0; i <= len(keyword); i++ {
		if i == len(keyword) || keyword[i] == ' ' {
			if _, ok := set[keyword[start:i]]; ok {
				return true
			}
			start = i + 1
		}
	}
	return false
}
