package catalog

import (
	"errors"
	"testing"

	"github.com/jonwraymond/dbroute/backend"
)

func TestDefault_WellFormed(t *testing.T) {
	c := Default()

	if c.Len() == 0 {
		t.Fatal("Default() catalogue is empty")
	}

	for _, spec := range c.List() {
		for _, f := range spec.Fields {
			if f.Required && f.Default != nil {
				t.Errorf("tool %q field %q: required with default", spec.Name, f.Name)
			}
		}
	}
}

func TestDefault_ExecuteSQL(t *testing.T) {
	c := Default()

	spec, err := c.Get("execute_sql")
	if err != nil {
		t.Fatalf("Get(execute_sql) error = %v", err)
	}
	if spec.Affinity != backend.KindRelational {
		t.Errorf("Affinity = %v, want KindRelational", spec.Affinity)
	}

	got, err := c.Validate("execute_sql", map[string]any{"query": "SELECT * FROM employees"})
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if got["limit"] != 100 {
		t.Errorf("limit = %v, want default 100", got["limit"])
	}

	_, err = c.Validate("execute_sql", map[string]any{"limit": 5})
	if !errors.Is(err, ErrSchema) {
		t.Errorf("Validate() without query error = %v, want ErrSchema", err)
	}
}

func TestDefault_DocumentFind(t *testing.T) {
	c := Default()

	got, err := c.Validate("document_find", map[string]any{
		"database":   "appdb",
		"collection": "users",
		"query":      map[string]any{"status": "active"},
	})
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if got["limit"] != 10 {
		t.Errorf("limit = %v, want default 10", got["limit"])
	}

	_, err = c.Validate("document_find", map[string]any{"database": "appdb"})
	if !errors.Is(err, ErrSchema) {
		t.Errorf("Validate() without collection error = %v, want ErrSchema", err)
	}
}

func TestDefault_AgnosticListing(t *testing.T) {
	c := Default()

	spec, err := c.Get("list_databases")
	if err != nil {
		t.Fatalf("Get(list_databases) error = %v", err)
	}
	if spec.Affinity != backend.KindUnknown {
		t.Errorf("Affinity = %v, want KindUnknown (backend-agnostic)", spec.Affinity)
	}
}

func TestDefault_AffinityCoverage(t *testing.T) {
	c := Default()

	counts := make(map[backend.Kind]int)
	for _, spec := range c.List() {
		counts[spec.Affinity]++
	}
	if counts[backend.KindDocument] == 0 {
		t.Error("no document-store tools in default catalogue")
	}
	if counts[backend.KindRelational] == 0 {
		t.Error("no relational tools in default catalogue")
	}
}
