package route

import (
	"regexp"
	"strings"

	"github.com/jonwraymond/dbroute/backend"
)

// Alias maps an explicit, human-readable store identifier to a backend kind.
// Aliases are matched as lower-case substrings of the query.
type Alias struct {
	Name string
	Kind backend.Kind
}

// Library is the static pattern data the router scores against: per-kind
// keyword sets, compiled syntax templates, and the explicit alias table.
// A Library is immutable after construction and safe for concurrent use.
type Library struct {
	keywords map[backend.Kind][]string
	patterns map[backend.Kind][]*regexp.Regexp
	aliases  []Alias
}

// NewLibrary builds a library from raw pattern data. Syntax templates are
// compiled case-insensitively; invalid templates return an error rather
// than being dropped.
func NewLibrary(keywords map[backend.Kind][]string, templates map[backend.Kind][]string, aliases []Alias) (*Library, error) {
	lib := &Library{
		keywords: make(map[backend.Kind][]string, len(keywords)),
		patterns: make(map[backend.Kind][]*regexp.Regexp, len(templates)),
		aliases:  append([]Alias(nil), aliases...),
	}
	for kind, words := range keywords {
		lowered := make([]string, len(words))
		for i, w := range words {
			lowered[i] = strings.ToLower(w)
		}
		lib.keywords[kind] = lowered
	}
	for kind, exprs := range templates {
		compiled := make([]*regexp.Regexp, 0, len(exprs))
		for _, expr := range exprs {
			re, err := regexp.Compile("(?i)" + expr)
			if err != nil {
				return nil, err
			}
			compiled = append(compiled, re)
		}
		lib.patterns[kind] = compiled
	}
	return lib, nil
}

// Keywords returns the keyword set for a kind.
func (l *Library) Keywords(kind backend.Kind) []string {
	return l.keywords[kind]
}

// Patterns returns the compiled syntax templates for a kind.
func (l *Library) Patterns(kind backend.Kind) []*regexp.Regexp {
	return l.patterns[kind]
}

// Aliases returns the alias table in declaration order.
func (l *Library) Aliases() []Alias {
	return l.aliases
}

// MatchAlias returns the kind of the first alias contained in the
// lower-cased query, or false if none matches.
func (l *Library) MatchAlias(query string) (backend.Kind, bool) {
	lowered := strings.ToLower(query)
	for _, a := range l.aliases {
		if strings.Contains(lowered, a.Name) {
			return a.Kind, true
		}
	}
	return backend.KindUnknown, false
}

// DefaultLibrary returns the built-in pattern data: SQL clause templates and
// relational vocabulary for the relational store, method-call and operator
// markers for the document store, and the "database a/b/c" alias table.
func DefaultLibrary() *Library {
	lib, err := NewLibrary(defaultKeywords, defaultTemplates, defaultAliases)
	if err != nil {
		// The built-in templates are compile-time constants; a failure here
		// is a programming error.
		panic(err)
	}
	return lib
}

var defaultKeywords = map[backend.Kind][]string{
	backend.KindDocument: {
		"collection", "collections", "documents", "bson", "aggregation",
		"pipeline", "nosql", "db.", "findone", "insertone", "insertmany",
		"updateone", "updatemany", "deleteone", "deletemany", "replica",
		"shard", "lookup", "projection", "index", "indexes",
	},
	backend.KindRelational: {
		"table", "tables", "schema", "schemas", "view", "views",
		"procedure", "procedures", "trigger", "triggers", "sequence",
		"sequences", "constraint", "constraints", "primary key",
		"foreign key", "sql", "select", "insert", "update", "delete",
		"create", "alter", "drop", "grant", "revoke", "commit", "rollback",
		"transaction", "cursor", "join", "index", "indexes",
	},
}

var defaultTemplates = map[backend.Kind][]string{
	backend.KindRelational: {
		`\bSELECT\b.*\bFROM\b`,
		`\bFROM\s+\w+`,
		`\bWHERE\b`,
		`\bINSERT\s+INTO\b`,
		`\bVALUES\s*\(`,
		`\bUPDATE\b.*\bSET\b`,
		`\bDELETE\s+FROM\b`,
		`\bCREATE\s+TABLE\b`,
		`\bALTER\s+TABLE\b`,
		`\bDROP\s+TABLE\b`,
		`\bCREATE\s+INDEX\b`,
		`\bGROUP\s+BY\b`,
		`\bORDER\s+BY\b`,
		`\bJOIN\b.*\bON\b`,
		`\bGRANT\b`,
		`\bREVOKE\b`,
	},
	backend.KindDocument: {
		`db\.\w+\.`,
		`\.find\s*\(`,
		`\.findOne\s*\(`,
		`\.aggregate\s*\(`,
		`\.insert(One|Many)\s*\(`,
		`\.update(One|Many)\s*\(`,
		`\.delete(One|Many)\s*\(`,
		`\.countDocuments\s*\(`,
		`\{\s*['"]?\$?\w+['"]?\s*:`,
		`\$match\b`,
		`\$group\b`,
		`\$lookup\b`,
		`\$project\b`,
		`\$(sort|limit|skip)\b`,
	},
}

var defaultAliases = []Alias{
	{Name: "database a", Kind: backend.KindDocument},
	{Name: "database b", Kind: backend.KindDocument},
	{Name: "database c", Kind: backend.KindRelational},
	{Name: "db a", Kind: backend.KindDocument},
	{Name: "db b", Kind: backend.KindDocument},
	{Name: "db c", Kind: backend.KindRelational},
	{Name: "document store", Kind: backend.KindDocument},
	{Name: "relational store", Kind: backend.KindRelational},
	{Name: "relational database", Kind: backend.KindRelational},
}
