// Package gateway provides a unified facade over routing, the tool
// catalogue, and dispatch.
//
// The gateway combines the dbroute packages into a single API: queries are
// classified by the route package, tools are resolved and validated through
// the catalog package, and invocations are executed by the dispatch package
// against connections held in a backend.Registry.
//
// # Basic Usage
//
//	// Register connections for the stores you have.
//	conns := backend.NewRegistry()
//	conns.Register(backend.KindRelational, sqlConn)
//	conns.Register(backend.KindDocument, docConn)
//
//	gw, err := gateway.New(gateway.Options{Connections: conns})
//
//	// Route a query, then invoke a tool against the chosen store.
//	decision := gw.Route("SELECT * FROM employees WHERE dept = 'eng'")
//	if decision.Backend != backend.KindUnknown {
//	    result := gw.Invoke(ctx, decision.Backend, "execute_sql",
//	        map[string]any{"query": "SELECT * FROM employees"})
//	    _ = result
//	}
//
// # Resolve
//
// Resolve bundles the full classification of one query: the routing
// decision, the operation kind, the write flag, and a clarification prompt
// when the decision is ambiguous:
//
//	res := gw.Resolve("find all employees")
//	if res.NeedsClarification {
//	    fmt.Println(res.Clarification)
//	}
//
// # Discovery
//
// The gateway maintains a discovery index over the catalogue, so callers
// can search tools by description:
//
//	summaries, _ := gw.SearchTools(ctx, "aggregation pipeline", 5)
package gateway
