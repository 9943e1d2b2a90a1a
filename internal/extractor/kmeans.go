package extractor

import (
	"math"
	"math/rand"
)

const (
	kmeansRestarts = 5
	kmeansMaxIter  = 50
)

type kmeansResult struct {
	assignments []int
	centroids   []map[string]float64
	inertia     float64
}

// runKMeans partitions the documents into k clusters. Initialization is
// driven entirely by rng, so a caller holding a fixed seed gets identical
// results for identical input. The best of kmeansRestarts runs (lowest
// inertia, measured as summed cosine distance to the assigned centroid)
// wins.
func runKMeans(docs []document, k int, rng *rand.Rand) kmeansResult {
	best := kmeansResult{inertia: math.Inf(1)}
	for r := 0; r < kmeansRestarts; r++ {
		res := kmeansOnce(docs, k, rng)
		if res.inertia < best.inertia {
			best = res
		}
	}
	return best
}

func kmeansOnce(docs []document, k int, rng *rand.Rand) kmeansResult {
	centroids := make([]map[string]float64, k)
	for i, idx := range rng.Perm(len(docs))[:k] {
		centroids[i] = copyVector(docs[idx].vector)
	}

	assignments := make([]int, len(docs))
	for i := range assignments {
		assignments[i] = -1
	}

	for iter := 0; iter < kmeansMaxIter; iter++ {
		changed := false
		for i := range docs {
			c := nearestCentroid(docs[i].vector, centroids)
			if c != assignments[i] {
				assignments[i] = c
				changed = true
			}
		}
		if !changed {
			break
		}
		recomputeCentroids(docs, assignments, centroids)
	}

	var inertia float64
	for i := range docs {
		inertia += 1 - cosine(docs[i].vector, centroids[assignments[i]])
	}
	return kmeansResult{assignments: assignments, centroids: centroids, inertia: inertia}
}

func nearestCentroid(v map[string]float64, centroids []map[string]float64) int {
	best, bestSim := 0, math.Inf(-1)
	for c, centroid := range centroids {
		if sim := cosine(v, centroid); sim > bestSim {
			best, bestSim = c, sim
		}
	}
	return best
}

func recomputeCentroids(docs []document, assignments []int, centroids []map[string]float64) {
	counts := make([]int, len(centroids))
	sums := make([]map[string]float64, len(centroids))
	for i := range sums {
		sums[i] = make(map[string]float64)
	}

	for i := range docs {
		c := assignments[i]
		counts[c]++
		for term, w := range docs[i].vector {
			sums[c][term] += w
		}
	}

	for c := range centroids {
		if counts[c] == 0 {
			// Empty cluster keeps its previous centroid.
			continue
		}
		for term := range sums[c] {
			sums[c][term] /= float64(counts[c])
		}
		centroids[c] = sums[c]
	}
}

func cosine(a, b map[string]float64) float64 {
	d := dot(a, b)
	if d == 0 {
		return 0
	}
	return d / (vectorNorm(a) * vectorNorm(b))
}

func copyVector(v map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(v))
	for term, w := range v {
		out[term] = w
	}
	return out
}
