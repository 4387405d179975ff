package route

import (
	"github.com/jonwraymond/dbroute/backend"
)

// Default decision thresholds. Like the scoring parameters, these are
// inherited heuristics: a syntax score above 0.5 means at least three
// templates matched with the default increment.
const (
	// DefaultSyntaxThreshold is the syntax score a backend must exceed to
	// win on syntax evidence alone.
	DefaultSyntaxThreshold = 0.5

	// DefaultKeywordThreshold is the keyword score a backend must exceed to
	// win on vocabulary evidence.
	DefaultKeywordThreshold = 0.3

	// DefaultClarifyThreshold is the syntax score above which a backend is
	// offered as a candidate in clarification prompts.
	DefaultClarifyThreshold = 0.3
)

// SyntaxPrecedence is the order in which backend syntax is tested when no
// explicit alias matches. Relational comes first: SQL clause templates are
// multi-word and specific, while several document-store markers are short
// enough to appear accidentally in prose.
var SyntaxPrecedence = [...]backend.Kind{backend.KindRelational, backend.KindDocument}

// Decision reasons, in precedence order.
const (
	ReasonExplicitMention  = "explicit mention"
	ReasonRelationalSyntax = "syntax patterns detected"
	ReasonDocumentSyntax   = "document-query patterns detected"
	ReasonRelationalWords  = "relational keywords detected"
	ReasonDocumentWords    = "document-store keywords detected"
	ReasonNoPattern        = "no clear pattern detected"
)

// Decision is the outcome of routing one query. It is produced fresh per
// call and never retained by the router.
type Decision struct {
	// Backend is the store the query should target, or KindUnknown.
	Backend backend.Kind

	// Confidence is a heuristic score in [0,1]; 1.0 only for explicit
	// alias mentions. Not a probability.
	Confidence float64

	// Reason is a short human-readable justification for the choice.
	Reason string
}

// Router routes queries to backend kinds. A Router is read-only after New
// and safe for concurrent use.
type Router struct {
	scorer           *Scorer
	syntaxThreshold  float64
	keywordThreshold float64
	clarifyThreshold float64
}

// Option configures a Router.
type Option func(*config)

type config struct {
	lib              *Library
	patternIncrement float64
	keywordScale     float64
	syntaxThreshold  float64
	keywordThreshold float64
	clarifyThreshold float64
}

// WithLibrary replaces the built-in pattern library.
func WithLibrary(lib *Library) Option {
	return func(c *config) {
		c.lib = lib
	}
}

// WithPatternIncrement sets the per-template syntax score increment.
func WithPatternIncrement(inc float64) Option {
	return func(c *config) {
		c.patternIncrement = inc
	}
}

// WithKeywordScale sets the keyword density multiplier.
func WithKeywordScale(scale float64) Option {
	return func(c *config) {
		c.keywordScale = scale
	}
}

// WithSyntaxThreshold sets the syntax dominance threshold.
func WithSyntaxThreshold(t float64) Option {
	return func(c *config) {
		c.syntaxThreshold = t
	}
}

// WithKeywordThreshold sets the keyword dominance threshold.
func WithKeywordThreshold(t float64) Option {
	return func(c *config) {
		c.keywordThreshold = t
	}
}

// WithClarifyThreshold sets the syntax score above which a backend is
// offered as a candidate in clarification prompts.
func WithClarifyThreshold(t float64) Option {
	return func(c *config) {
		c.clarifyThreshold = t
	}
}

// New creates a Router with the built-in library and default thresholds,
// overridden by any options.
func New(opts ...Option) *Router {
	cfg := config{
		patternIncrement: DefaultPatternIncrement,
		keywordScale:     DefaultKeywordScale,
		syntaxThreshold:  DefaultSyntaxThreshold,
		keywordThreshold: DefaultKeywordThreshold,
		clarifyThreshold: DefaultClarifyThreshold,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.lib == nil {
		cfg.lib = DefaultLibrary()
	}

	return &Router{
		scorer: &Scorer{
			lib:       cfg.lib,
			increment: cfg.patternIncrement,
			scale:     cfg.keywordScale,
		},
		syntaxThreshold:  cfg.syntaxThreshold,
		keywordThreshold: cfg.keywordThreshold,
		clarifyThreshold: cfg.clarifyThreshold,
	}
}

// Scorer returns the router's scorer for callers that want raw scores.
func (r *Router) Scorer() *Scorer {
	return r.scorer
}

// Route decides which backend should serve the query. It never fails:
// malformed, empty, or unclassifiable input routes to KindUnknown with
// confidence 0.0.
func (r *Router) Route(query string) Decision {
	// 1. Explicit alias mention wins outright.
	if kind, ok := r.scorer.lib.MatchAlias(query); ok {
		return Decision{Backend: kind, Confidence: 1.0, Reason: ReasonExplicitMention}
	}

	// 2-3. Syntax dominance, in precedence order.
	for _, kind := range SyntaxPrecedence {
		if score := r.scorer.Syntax(query, kind); score > r.syntaxThreshold {
			reason := ReasonRelationalSyntax
			if kind == backend.KindDocument {
				reason = ReasonDocumentSyntax
			}
			return Decision{Backend: kind, Confidence: score, Reason: reason}
		}
	}

	// 4. Keyword dominance. Relational must strictly beat document to win;
	// ties above the threshold go to the document store.
	relScore := r.scorer.Keyword(query, backend.KindRelational)
	docScore := r.scorer.Keyword(query, backend.KindDocument)
	switch {
	case relScore > docScore && relScore > r.keywordThreshold:
		return Decision{Backend: backend.KindRelational, Confidence: relScore, Reason: ReasonRelationalWords}
	case docScore > r.keywordThreshold:
		return Decision{Backend: backend.KindDocument, Confidence: docScore, Reason: ReasonDocumentWords}
	}

	// 5. No clear evidence.
	return Decision{Backend: backend.KindUnknown, Confidence: 0.0, Reason: ReasonNoPattern}
}

// Ambiguous reports whether the query needs clarification before dispatch:
// either no backend matched, or both syntax scores are in the contested
// band above the clarification threshold.
func (r *Router) Ambiguous(query string) bool {
	if r.Route(query).Backend == backend.KindUnknown {
		return true
	}
	return r.scorer.Syntax(query, backend.KindRelational) > r.clarifyThreshold &&
		r.scorer.Syntax(query, backend.KindDocument) > r.clarifyThreshold
}
