package extractor

import (
	"log/slog"
	"math"
	"math/rand"
	"sort"

	"trendscope/internal/domain"
)

const (
	// MinRecordsForClustering is the input size below which extraction
	// skips clustering and reports zero topics.
	MinRecordsForClustering = 10

	minClusters        = 3
	maxClusters        = 10
	keywordsPerCluster = 5
)

// Extractor converts a batch of content items into weighted keyword
// clusters. The seed fixes the clustering initialization, making extraction
// reproducible for identical input.
type Extractor struct {
	seed   int64
	logger *slog.Logger
}

func New(seed int64, logger *slog.Logger) *Extractor {
	return &Extractor{seed: seed, logger: logger}
}

// Extract returns 0 to maxClusters topic clusters. Fewer than
// MinRecordsForClustering items is a soft condition yielding zero clusters;
// only malformed items produce an error.
func (e *Extractor) Extract(items []domain.ContentItem) ([]domain.TopicCluster, error) {
	for i := range items {
		if err := items[i].Validate(); err != nil {
			return nil, err
		}
	}

	if len(items) < MinRecordsForClustering {
		e.logger.Debug("skipping clustering, too few items", "count", len(items))
		return nil, nil
	}

	docs := buildDocuments(items)
	if len(docs) < MinRecordsForClustering {
		e.logger.Debug("skipping clustering, too few items with usable terms", "count", len(docs))
		return nil, nil
	}

	k := clusterCount(len(docs))
	rng := rand.New(rand.NewSource(e.seed))
	result := runKMeans(docs, k, rng)

	clusters := e.collect(docs, result)
	e.logger.Debug("extraction complete",
		"items", len(items),
		"k", k,
		"clusters", len(clusters),
		"inertia", result.inertia,
	)
	return clusters, nil
}

// clusterCount is floor(sqrt(n)) clamped to [minClusters, maxClusters] and
// never more than n.
func clusterCount(n int) int {
	k := int(math.Floor(math.Sqrt(float64(n))))
	if k < minClusters {
		k = minClusters
	}
	if k > maxClusters {
		k = maxClusters
	}
	if k > n {
		k = n
	}
	return k
}

func (e *Extractor) collect(docs []document, result kmeansResult) []domain.TopicCluster {
	var clusters []domain.TopicCluster
	for c, centroid := range result.centroids {
		var members []domain.ClusterMember
		sources := make(map[string]struct{})
		for i := range docs {
			if result.assignments[i] != c {
				continue
			}
			members = append(members, domain.ClusterMember{
				ContentItemID: docs[i].id,
				Source:        docs[i].source,
				Relevance:     cosine(docs[i].vector, centroid),
			})
			sources[docs[i].source] = struct{}{}
		}
		if len(members) == 0 {
			continue
		}

		keywords := topTerms(centroid, keywordsPerCluster)
		if len(keywords) == 0 {
			continue
		}

		sort.Slice(members, func(i, j int) bool {
			if members[i].Relevance != members[j].Relevance {
				return members[i].Relevance > members[j].Relevance
			}
			return members[i].ContentItemID < members[j].ContentItemID
		})

		clusters = append(clusters, domain.TopicCluster{
			ID:       len(clusters),
			Keywords: keywords,
			Members:  members,
			Sources:  sortedKeys(sources),
		})
	}
	return clusters
}

// topTerms ranks centroid terms by weight, breaking ties alphabetically.
func topTerms(centroid map[string]float64, n int) []string {
	terms := make([]string, 0, len(centroid))
	for term, w := range centroid {
		if w > 0 {
			terms = append(terms, term)
		}
	}
	sort.Slice(terms, func(i, j int) bool {
		if centroid[terms[i]] != centroid[terms[j]] {
			return centroid[terms[i]] > centroid[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > n {
		terms = terms[:n]
	}
	return terms
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ItemKeywords derives snapshot keywords for one content item: the
// precomputed keywords when present, otherwise tokenized title terms.
func ItemKeywords(item *domain.ContentItem, max int) []string {
	keywords := item.Keywords
	if len(keywords) == 0 {
		keywords = dedupe(tokenize(item.Title))
	}
	if len(keywords) > max {
		keywords = keywords[:max]
	}
	return keywords
}

func dedupe(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
