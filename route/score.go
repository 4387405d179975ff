package route

import (
	"strings"

	"github.com/jonwraymond/dbroute/backend"
)

// Default scoring parameters, calibrated against the built-in pattern
// data. Both are configurable through router options.
const (
	// DefaultPatternIncrement is added to the syntax score for every
	// matching template.
	DefaultPatternIncrement = 0.2

	// DefaultKeywordScale multiplies the keyword hit density before
	// clamping.
	DefaultKeywordScale = 2.0
)

// Scorer computes per-backend confidence scores for a query against a
// pattern library. A Scorer is stateless apart from its read-only
// configuration and is safe for concurrent use.
type Scorer struct {
	lib       *Library
	increment float64
	scale     float64
}

// NewScorer creates a scorer over the given library with default parameters.
func NewScorer(lib *Library) *Scorer {
	return &Scorer{
		lib:       lib,
		increment: DefaultPatternIncrement,
		scale:     DefaultKeywordScale,
	}
}

// Syntax returns a confidence in [0,1] that the query is written in the
// backend's native query syntax. Each matching template adds a fixed
// increment; the sum is clamped to 1.0.
func (s *Scorer) Syntax(query string, kind backend.Kind) float64 {
	score := 0.0
	for _, re := range s.lib.Patterns(kind) {
		if re.MatchString(query) {
			score += s.increment
		}
	}
	return clamp(score)
}

// Keyword returns a confidence in [0,1] based on how densely the backend's
// vocabulary appears in the query: distinct keyword substring hits divided
// by the query's word count, scaled up and clamped. A query with no words
// scores 0.0.
func (s *Scorer) Keyword(query string, kind backend.Kind) float64 {
	words := len(strings.Fields(query))
	if words == 0 {
		return 0.0
	}

	lowered := strings.ToLower(query)
	matches := 0
	for _, kw := range s.lib.Keywords(kind) {
		if strings.Contains(lowered, kw) {
			matches++
		}
	}
	return clamp(float64(matches) / float64(words) * s.scale)
}

func clamp(v float64) float64 {
	if v > 1.0 {
		return 1.0
	}
	if v < 0.0 {
		return 0.0
	}
	return v
}
