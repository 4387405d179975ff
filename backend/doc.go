// Package backend identifies the data stores a query can target and the
// connection capability the caller supplies to execute against them.
//
// This package is the leaf of the module: route, catalog, dispatch, and
// gateway all depend on it and it depends on nothing else in the module.
//
// # Kinds
//
// The store set is closed at compile time:
//
//   - KindDocument: the document-oriented store
//   - KindRelational: the relational store
//   - KindUnknown: routing could not determine a target (also used as the
//     "any backend" affinity for catalogue tools)
//
// # Connections
//
// A Connection is an opaque capability owned by the caller. The core never
// constructs, pools, or closes one; it receives a connection per dispatch
// call and issues exactly one Execute against it.
//
// # Registry
//
// The Registry is a convenience for composition roots that hold one
// connection per kind:
//
//	reg := backend.NewRegistry()
//	reg.Register(backend.KindRelational, sqlConn)
//	reg.Register(backend.KindDocument, docConn)
package backend
