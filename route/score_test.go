package route

import (
	"testing"

	"github.com/jonwraymond/dbroute/backend"
)

func TestScorer_SyntaxClamped(t *testing.T) {
	s := NewScorer(DefaultLibrary())

	// Enough templates to overflow an unclamped sum.
	query := "SELECT a FROM b WHERE c = 1 GROUP BY d ORDER BY e " +
		"INSERT INTO f VALUES (1) UPDATE g SET h DELETE FROM i"
	got := s.Syntax(query, backend.KindRelational)
	if got != 1.0 {
		t.Errorf("Syntax() = %v, want clamped 1.0", got)
	}
}

func TestScorer_SyntaxNoMatch(t *testing.T) {
	s := NewScorer(DefaultLibrary())

	if got := s.Syntax("just some words", backend.KindRelational); got != 0.0 {
		t.Errorf("Syntax() = %v, want 0.0", got)
	}
	if got := s.Syntax("just some words", backend.KindDocument); got != 0.0 {
		t.Errorf("Syntax() = %v, want 0.0", got)
	}
}

func TestScorer_SyntaxCaseInsensitive(t *testing.T) {
	s := NewScorer(DefaultLibrary())

	upper := s.Syntax("SELECT x FROM t WHERE y = 1", backend.KindRelational)
	lower := s.Syntax("select x from t where y = 1", backend.KindRelational)
	if upper != lower {
		t.Errorf("Syntax() differs by case: %v vs %v", upper, lower)
	}
	if upper <= 0.5 {
		t.Errorf("Syntax() = %v, want > 0.5", upper)
	}
}

func TestScorer_KeywordEmptyQuery(t *testing.T) {
	s := NewScorer(DefaultLibrary())

	tests := []struct {
		name  string
		query string
	}{
		{name: "empty", query: ""},
		{name: "whitespace only", query: "   \t  \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Keyword(tt.query, backend.KindRelational); got != 0.0 {
				t.Errorf("Keyword(%q) = %v, want 0.0", tt.query, got)
			}
		})
	}
}

func TestScorer_KeywordDensity(t *testing.T) {
	s := NewScorer(DefaultLibrary())

	// Two distinct relational keywords over four words: 2/4*2 = 1.0.
	got := s.Keyword("alter that orders table", backend.KindRelational)
	if got != 1.0 {
		t.Errorf("Keyword() = %v, want 1.0", got)
	}

	// A single hit in a long query stays low.
	low := s.Keyword("could you please go and have a look at the table over there", backend.KindRelational)
	if low >= DefaultKeywordThreshold {
		t.Errorf("Keyword() = %v, want < %v", low, DefaultKeywordThreshold)
	}
}

func TestScorer_KeywordDistinctMatches(t *testing.T) {
	s := NewScorer(DefaultLibrary())

	// Repeating the same keyword counts once.
	repeated := s.Keyword("table table table table", backend.KindRelational)
	single := s.Keyword("table miscellaneous padding words", backend.KindRelational)
	if repeated != single {
		t.Errorf("repeated keyword scored %v, single occurrence %v; want equal", repeated, single)
	}
}

func TestScorer_Concurrent(t *testing.T) {
	s := NewScorer(DefaultLibrary())

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				_ = s.Syntax("SELECT x FROM t WHERE y = 1", backend.KindRelational)
				_ = s.Keyword("db.users.find({a: 1})", backend.KindDocument)
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}

func TestNewLibrary_InvalidTemplate(t *testing.T) {
	_, err := NewLibrary(nil, map[backend.Kind][]string{
		backend.KindRelational: {`(unclosed`},
	}, nil)
	if err == nil {
		t.Fatal("NewLibrary() error = nil, want compile error")
	}
}
