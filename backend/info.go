package backend

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Info describes one of the fixed data stores for callers that surface
// store choices to a user (clarification prompts, agent system prompts).
type Info struct {
	Kind          Kind
	DisplayName   string
	Databases     []string
	StoreType     string
	QueryLanguage string
	UseCases      []string
}

// storeInfos is built once at init. cases.Caser carries transform state
// and must not be shared across goroutines, so the titling happens here
// and never on a call path.
var storeInfos = buildInfos()

func buildInfos() []Info {
	titler := cases.Title(language.Und)
	return []Info{
		{
			Kind:          KindDocument,
			DisplayName:   titler.String(string(KindDocument)) + " Store",
			Databases:     []string{"Database A", "Database B"},
			StoreType:     "Document-based NoSQL",
			QueryLanguage: "Document query language",
			UseCases:      []string{"Document storage", "Real-time analytics", "Content management"},
		},
		{
			Kind:          KindRelational,
			DisplayName:   titler.String(string(KindRelational)) + " Store",
			Databases:     []string{"Database C"},
			StoreType:     "Relational SQL",
			QueryLanguage: "SQL",
			UseCases:      []string{"Transaction processing", "Reporting", "Data warehousing"},
		},
	}
}

// Describe returns the static description for a kind, or false for
// KindUnknown and invalid kinds.
func Describe(kind Kind) (Info, bool) {
	for _, info := range DescribeAll() {
		if info.Kind == kind {
			return info, true
		}
	}
	return Info{}, false
}

// DescribeAll returns the descriptions of all routable stores in a stable
// order: document store first, relational store second. The returned
// slices are caller-owned copies.
func DescribeAll() []Info {
	out := make([]Info, len(storeInfos))
	for i, info := range storeInfos {
		info.Databases = append([]string(nil), info.Databases...)
		info.UseCases = append([]string(nil), info.UseCases...)
		out[i] = info
	}
	return out
}
