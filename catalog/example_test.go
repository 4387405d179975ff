package catalog_test

import (
	"fmt"

	"github.com/jonwraymond/dbroute/catalog"
)

func ExampleCatalog_Validate() {
	c := catalog.Default()

	// Defaults are substituted for absent optional fields.
	args, _ := c.Validate("execute_sql", map[string]any{
		"query": "SELECT * FROM employees",
	})
	fmt.Println("limit:", args["limit"])

	// Violations are aggregated into a single field-level error.
	_, err := c.Validate("execute_sql", map[string]any{"limit": "ten"})
	fmt.Println(err)

	// Output:
	// limit: 100
	// tool "execute_sql": schema violation: missing required [query]; limit: want integer, got string
}
