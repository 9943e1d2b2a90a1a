package analysis

import (
	"fmt"
	"strings"
)

// Explain renders the justification string for a trend. Deterministic
// template, no external calls.
func Explain(mentionCount int, sources []string, velocity Velocity) string {
	base := fmt.Sprintf("This topic is trending with %d mentions across %s.",
		mentionCount, joinSources(sources))

	if !velocity.Known {
		return base
	}

	switch {
	case velocity.Percent > 0:
		return fmt.Sprintf("%s It's gaining momentum with a %.1f%% increase in mentions.", base, velocity.Percent)
	case velocity.Percent < 0:
		return base + " It's declining in mentions."
	default:
		return base + " It's holding steady in mentions."
	}
}

func joinSources(sources []string) string {
	switch len(sources) {
	case 0:
		return "no sources"
	case 1:
		return sources[0]
	case 2:
		return sources[0] + " and " + sources[1]
	default:
		return strings.Join(sources[:len(sources)-1], ", ") + " and " + sources[len(sources)-1]
	}
}
