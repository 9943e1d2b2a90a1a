package analysis

const (
	mentionWeight  = 0.3
	velocityWeight = 0.4
	sourceWeight   = 0.3

	mentionSaturation  = 20.0
	velocitySaturation = 100.0
	sourceSaturation   = 4.0
)

// Score combines mention volume, velocity and source diversity into one
// strength score in [0, 1]. Negative velocity contributes zero to its term
// here; the signed value stays on the trend itself. When velocity is
// unknown the remaining weights are renormalized instead of substituting a
// number that would bias the score.
func Score(mentionCount int, velocity Velocity, sourceCount int) float64 {
	mentionTerm := capped(float64(mentionCount) / mentionSaturation)
	sourceTerm := capped(float64(sourceCount) / sourceSaturation)

	if !velocity.Known {
		score := (mentionWeight*mentionTerm + sourceWeight*sourceTerm) / (mentionWeight + sourceWeight)
		return clamp(score)
	}

	velocityTerm := 0.0
	if velocity.Percent > 0 {
		velocityTerm = capped(velocity.Percent / velocitySaturation)
	}

	score := mentionWeight*mentionTerm + velocityWeight*velocityTerm + sourceWeight*sourceTerm
	return clamp(score)
}

// MeetsSourceSpread reports whether a cluster was observed across enough
// distinct sources to rule out a single-source echo chamber.
func MeetsSourceSpread(sourceCount, minSources int) bool {
	return sourceCount >= minSources
}

func capped(v float64) float64 {
	if v > 1 {
		return 1
	}
	return v
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
