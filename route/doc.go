// Package route classifies free-text or embedded-syntax queries and decides
// which data store should serve them.
//
// route sits in front of the catalog and dispatch packages: an agent calls
// [Router.Route] before executing, and uses the returned decision to pick the
// connection and tool for the dispatch layer.
//
// # Decision precedence
//
// Route evaluates evidence in a fixed order, first match wins:
//
//  1. Explicit alias match ("database a", "db c", ...), confidence 1.0
//  2. Relational syntax templates above the syntax threshold
//  3. Document-store syntax templates above the syntax threshold
//  4. Keyword dominance above the keyword threshold
//  5. Unknown with confidence 0.0
//
// Relational syntax is deliberately checked before document syntax: SQL
// clause keywords are multi-word and rarely occur in prose, while several
// document-store markers are single common words. The order is exposed as
// [SyntaxPrecedence] so the policy is visible and revisitable.
//
// # Scoring
//
// Syntax scores add a fixed increment per matching template and clamp to
// 1.0. Keyword scores divide distinct keyword hits by the query word count
// and scale up before clamping. The increment, scale, and thresholds are
// calibrated against the built-in pattern data and configurable through
// router options.
//
// # Failure semantics
//
// Route never returns an error. Empty, whitespace-only, or unclassifiable
// queries produce [backend.KindUnknown] with confidence 0.0; callers should
// then ask the user to disambiguate, e.g. via [Router.SuggestClarification].
package route
