package route

import (
	"strings"
	"testing"

	"github.com/jonwraymond/dbroute/backend"
)

func TestRoute_ExplicitAlias(t *testing.T) {
	router := New()

	tests := []struct {
		name  string
		query string
		want  backend.Kind
	}{
		{name: "database a", query: "query Database A for active users", want: backend.KindDocument},
		{name: "database b", query: "show me everything in database b", want: backend.KindDocument},
		{name: "database c", query: "run this against DATABASE C", want: backend.KindRelational},
		{name: "db shorthand", query: "check db c for orders", want: backend.KindRelational},
		{name: "store name", query: "ask the document store", want: backend.KindDocument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := router.Route(tt.query)
			if got.Backend != tt.want {
				t.Errorf("Route(%q).Backend = %v, want %v", tt.query, got.Backend, tt.want)
			}
			if got.Confidence != 1.0 {
				t.Errorf("Route(%q).Confidence = %v, want 1.0", tt.query, got.Confidence)
			}
			if got.Reason != ReasonExplicitMention {
				t.Errorf("Route(%q).Reason = %q, want %q", tt.query, got.Reason, ReasonExplicitMention)
			}
		})
	}
}

func TestRoute_RelationalSyntax(t *testing.T) {
	router := New()

	got := router.Route("SELECT * FROM employees WHERE department = 'Engineering'")
	if got.Backend != backend.KindRelational {
		t.Fatalf("Backend = %v, want KindRelational", got.Backend)
	}
	if got.Confidence <= 0.5 {
		t.Errorf("Confidence = %v, want > 0.5", got.Confidence)
	}
	if got.Reason != ReasonRelationalSyntax {
		t.Errorf("Reason = %q, want %q", got.Reason, ReasonRelationalSyntax)
	}
}

func TestRoute_DocumentSyntax(t *testing.T) {
	router := New()

	got := router.Route("db.users.find({status: 'active'})")
	if got.Backend != backend.KindDocument {
		t.Fatalf("Backend = %v, want KindDocument", got.Backend)
	}
	if got.Confidence <= 0.5 {
		t.Errorf("Confidence = %v, want > 0.5", got.Confidence)
	}
	if !strings.Contains(got.Reason, "document-query patterns") {
		t.Errorf("Reason = %q, want mention of document-query patterns", got.Reason)
	}
}

func TestRoute_KeywordDominance(t *testing.T) {
	router := New()

	tests := []struct {
		name   string
		query  string
		want   backend.Kind
		reason string
	}{
		{
			name:   "relational vocabulary",
			query:  "alter the orders table constraint",
			want:   backend.KindRelational,
			reason: ReasonRelationalWords,
		},
		{
			name:   "document vocabulary",
			query:  "run the aggregation pipeline on that collection",
			want:   backend.KindDocument,
			reason: ReasonDocumentWords,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := router.Route(tt.query)
			if got.Backend != tt.want {
				t.Fatalf("Route(%q).Backend = %v, want %v", tt.query, got.Backend, tt.want)
			}
			if got.Reason != tt.reason {
				t.Errorf("Reason = %q, want %q", got.Reason, tt.reason)
			}
			if got.Confidence <= DefaultKeywordThreshold {
				t.Errorf("Confidence = %v, want > %v", got.Confidence, DefaultKeywordThreshold)
			}
		})
	}
}

func TestRoute_Unknown(t *testing.T) {
	router := New()

	tests := []struct {
		name  string
		query string
	}{
		{name: "no evidence", query: "Find all employees"},
		{name: "empty", query: ""},
		{name: "whitespace", query: "   \t\n  "},
		{name: "prose", query: "tell me a story about databases maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := router.Route(tt.query)
			if got.Backend != backend.KindUnknown {
				t.Errorf("Route(%q).Backend = %v, want KindUnknown", tt.query, got.Backend)
			}
			if got.Confidence != 0.0 {
				t.Errorf("Route(%q).Confidence = %v, want 0.0", tt.query, got.Confidence)
			}
			if got.Reason != ReasonNoPattern {
				t.Errorf("Route(%q).Reason = %q, want %q", tt.query, got.Reason, ReasonNoPattern)
			}
		})
	}
}

// Confidence must stay within [0,1] for arbitrary input, including queries
// stuffed with enough evidence to overflow an unclamped sum.
func TestRoute_ConfidenceBounds(t *testing.T) {
	router := New()

	queries := []string{
		"",
		"SELECT a FROM b WHERE c GROUP BY d ORDER BY e JOIN f ON g INSERT INTO h VALUES (1)",
		"db.x.find( db.y.aggregate( $match $group $lookup $project $sort",
		"table tables schema schemas view views select insert update delete",
		"plain english with no signal at all",
		"query Database A",
	}

	for _, q := range queries {
		got := router.Route(q)
		if got.Confidence < 0.0 || got.Confidence > 1.0 {
			t.Errorf("Route(%q).Confidence = %v, out of [0,1]", q, got.Confidence)
		}
	}
}

func TestRoute_AliasBeatsSyntax(t *testing.T) {
	router := New()

	// Explicit mention wins even when the query body is pure SQL for the
	// other store.
	got := router.Route("in database a: SELECT * FROM employees WHERE x = 1")
	if got.Backend != backend.KindDocument {
		t.Errorf("Backend = %v, want KindDocument (alias precedence)", got.Backend)
	}
	if got.Confidence != 1.0 {
		t.Errorf("Confidence = %v, want 1.0", got.Confidence)
	}
}

func TestRoute_CustomThresholds(t *testing.T) {
	// With an impossible syntax threshold, a SQL query falls through to
	// keyword scoring.
	router := New(WithSyntaxThreshold(1.1))

	got := router.Route("select rows from the employees table")
	if got.Reason == ReasonRelationalSyntax {
		t.Errorf("Reason = %q, syntax dominance should be unreachable", got.Reason)
	}
	if got.Backend != backend.KindRelational {
		t.Errorf("Backend = %v, want KindRelational via keywords", got.Backend)
	}
}

func TestAmbiguous(t *testing.T) {
	router := New()

	if !router.Ambiguous("Find all employees") {
		t.Error("Ambiguous() = false for unknown-routed query, want true")
	}
	if router.Ambiguous("SELECT * FROM employees WHERE department = 'x'") {
		t.Error("Ambiguous() = true for clean SQL, want false")
	}
}
