package route

import (
	"fmt"
	"strings"

	"github.com/jonwraymond/dbroute/backend"
)

// Op describes the semantic effect of a query independent of backend.
type Op string

const (
	OpSelect  Op = "select"
	OpInsert  Op = "insert"
	OpUpdate  Op = "update"
	OpDelete  Op = "delete"
	OpCreate  Op = "create"
	OpDrop    Op = "drop"
	OpAnalyze Op = "analyze"
	OpExplain Op = "explain"
)

// String returns the operation's wire name.
func (o Op) String() string {
	return string(o)
}

// opBuckets are checked in order; the first bucket with a matching phrase
// decides the operation. Broad verbs come before narrow DDL phrases so
// "create document" classifies as an insert, not a create.
var opBuckets = []struct {
	op      Op
	phrases []string
}{
	{OpSelect, []string{"select", "find", "get", "show", "list", "describe"}},
	{OpInsert, []string{"insert", "add", "create document"}},
	{OpUpdate, []string{"update", "modify", "change"}},
	{OpDelete, []string{"delete", "remove", "drop document"}},
	{OpCreate, []string{"create table", "create collection"}},
	{OpDrop, []string{"drop table", "drop collection"}},
	{OpExplain, []string{"explain plan", "execution plan"}},
	{OpAnalyze, []string{"analyze", "explain", "performance"}},
}

// writeVerbs marks a query as a write operation when any of them appears,
// independent of how ClassifyOperation buckets it.
var writeVerbs = []string{
	"insert", "update", "delete", "create", "drop", "alter",
	"grant", "revoke", "commit", "rollback",
}

// ClassifyOperation determines the operation kind of a query by ordered
// lexical lookup. It is total: queries of unknown shape default to OpSelect
// on the assumption that an unrecognized query is a read.
func (r *Router) ClassifyOperation(query string) Op {
	lowered := strings.ToLower(query)
	for _, bucket := range opBuckets {
		for _, phrase := range bucket.phrases {
			if strings.Contains(lowered, phrase) {
				return bucket.op
			}
		}
	}
	return OpSelect
}

// IsWrite reports whether the query contains any write verb. This is a
// coarse guard for callers that gate mutations; it is independent of
// ClassifyOperation.
func (r *Router) IsWrite(query string) bool {
	lowered := strings.ToLower(query)
	for _, verb := range writeVerbs {
		if strings.Contains(lowered, verb) {
			return true
		}
	}
	return false
}

// SuggestClarification produces a prompt asking the user to disambiguate an
// ambiguous query, naming the candidate stores and how to address them
// explicitly.
func (r *Router) SuggestClarification(query string) string {
	var suggestions []string

	if r.scorer.Syntax(query, backend.KindRelational) > r.clarifyThreshold {
		suggestions = append(suggestions,
			"This looks like a SQL query - should I run it against the relational store (Database C)?")
	}
	if r.scorer.Syntax(query, backend.KindDocument) > r.clarifyThreshold {
		suggestions = append(suggestions,
			"This looks like a document-store query - should I run it against the document store (Database A or B)?")
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions, "I'm not sure which store to query. Please specify:")
		for _, info := range backend.DescribeAll() {
			suggestions = append(suggestions, fmt.Sprintf("- '%s' (%s) for %s queries",
				info.DisplayName, strings.Join(info.Databases, "/"), info.QueryLanguage))
		}
	}

	return strings.Join(suggestions, " ")
}
