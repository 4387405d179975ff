package catalog

import (
	"github.com/jonwraymond/dbroute/backend"
)

// Common fields of the built-in document-store tools.
func documentTarget() []Field {
	return []Field{
		{Name: "database", Type: TypeString, Description: "Database name", Required: true},
		{Name: "collection", Type: TypeString, Description: "Collection name", Required: true},
	}
}

// Default returns the built-in catalogue: the document-store and relational
// tool sets plus the backend-agnostic listing tool. It panics only on a
// programming error in the built-in specs.
func Default() *Catalog {
	c := New()
	for _, spec := range builtinSpecs() {
		if err := c.Register(spec); err != nil {
			panic("catalog: invalid built-in spec: " + err.Error())
		}
	}
	return c
}

func builtinSpecs() []Spec {
	return []Spec{
		// Document store.
		{
			Name:        "document_list_databases",
			Description: "List all databases in the document store",
			Affinity:    backend.KindDocument,
		},
		{
			Name:        "document_list_collections",
			Description: "List all collections in a database",
			Affinity:    backend.KindDocument,
			Fields: []Field{
				{Name: "database", Type: TypeString, Description: "Database name", Required: true},
			},
		},
		{
			Name:        "document_find",
			Description: "Find documents in a collection",
			Affinity:    backend.KindDocument,
			Fields: append(documentTarget(),
				Field{Name: "query", Type: TypeObject, Description: "Query filter"},
				Field{Name: "limit", Type: TypeInt, Description: "Maximum number of documents to return", Default: 10},
				Field{Name: "sort", Type: TypeObject, Description: "Sort specification"},
				Field{Name: "projection", Type: TypeObject, Description: "Field projection"},
			),
		},
		{
			Name:        "document_find_one",
			Description: "Find a single document in a collection",
			Affinity:    backend.KindDocument,
			Fields: append(documentTarget(),
				Field{Name: "query", Type: TypeObject, Description: "Query filter"},
				Field{Name: "projection", Type: TypeObject, Description: "Field projection"},
			),
		},
		{
			Name:        "document_count",
			Description: "Count documents in a collection",
			Affinity:    backend.KindDocument,
			Fields: append(documentTarget(),
				Field{Name: "query", Type: TypeObject, Description: "Query filter"},
			),
		},
		{
			Name:        "document_aggregate",
			Description: "Run an aggregation pipeline on a collection",
			Affinity:    backend.KindDocument,
			Fields: append(documentTarget(),
				Field{Name: "pipeline", Type: TypeArray, Description: "Aggregation pipeline stages", Required: true},
				Field{Name: "allow_disk_use", Type: TypeBool, Description: "Allow disk use for large operations", Default: false},
			),
		},
		{
			Name:        "document_insert",
			Description: "Insert a document into a collection",
			Affinity:    backend.KindDocument,
			Fields: append(documentTarget(),
				Field{Name: "document", Type: TypeObject, Description: "Document to insert", Required: true},
			),
		},
		{
			Name:        "document_insert_many",
			Description: "Insert multiple documents into a collection",
			Affinity:    backend.KindDocument,
			Fields: append(documentTarget(),
				Field{Name: "documents", Type: TypeArray, Description: "Documents to insert", Required: true},
			),
		},
		{
			Name:        "document_update",
			Description: "Update a document in a collection",
			Affinity:    backend.KindDocument,
			Fields: append(documentTarget(),
				Field{Name: "query", Type: TypeObject, Description: "Query to find the document to update", Required: true},
				Field{Name: "update", Type: TypeObject, Description: "Update operations", Required: true},
				Field{Name: "upsert", Type: TypeBool, Description: "Create the document if it does not exist", Default: false},
			),
		},
		{
			Name:        "document_delete",
			Description: "Delete a document from a collection",
			Affinity:    backend.KindDocument,
			Fields: append(documentTarget(),
				Field{Name: "query", Type: TypeObject, Description: "Query to find the document to delete", Required: true},
			),
		},
		{
			Name:        "document_create_index",
			Description: "Create an index on a collection",
			Affinity:    backend.KindDocument,
			Fields: append(documentTarget(),
				Field{Name: "keys", Type: TypeObject, Description: "Index key specification", Required: true},
				Field{Name: "options", Type: TypeObject, Description: "Index options such as unique or sparse"},
			),
		},
		{
			Name:        "document_list_indexes",
			Description: "List indexes on a collection",
			Affinity:    backend.KindDocument,
			Fields:      documentTarget(),
		},
		{
			Name:        "document_drop_index",
			Description: "Drop an index from a collection",
			Affinity:    backend.KindDocument,
			Fields: append(documentTarget(),
				Field{Name: "index_name", Type: TypeString, Description: "Name of the index to drop", Required: true},
			),
		},
		{
			Name:        "document_collection_stats",
			Description: "Get statistics about a collection",
			Affinity:    backend.KindDocument,
			Fields:      documentTarget(),
		},
		{
			Name:        "document_explain",
			Description: "Explain the execution plan for a query",
			Affinity:    backend.KindDocument,
			Fields: append(documentTarget(),
				Field{Name: "query", Type: TypeObject, Description: "Query to explain", Required: true},
				Field{Name: "sort", Type: TypeObject, Description: "Sort specification"},
			),
		},

		// Relational store.
		{
			Name:        "execute_sql",
			Description: "Execute a SQL query on the relational store",
			Affinity:    backend.KindRelational,
			Fields: []Field{
				{Name: "query", Type: TypeString, Description: "SQL query to execute", Required: true},
				{Name: "limit", Type: TypeInt, Description: "Maximum number of rows to return", Default: 100},
			},
		},
		{
			Name:        "relational_list_tables",
			Description: "List all tables in the relational store",
			Affinity:    backend.KindRelational,
			Fields: []Field{
				{Name: "schema", Type: TypeString, Description: "Schema name, defaults to the current user"},
			},
		},
		{
			Name:        "relational_describe_table",
			Description: "Get table structure and column information",
			Affinity:    backend.KindRelational,
			Fields: []Field{
				{Name: "table", Type: TypeString, Description: "Name of the table to describe", Required: true},
				{Name: "schema", Type: TypeString, Description: "Schema name"},
			},
		},
		{
			Name:        "relational_list_schemas",
			Description: "List all schemas in the relational store",
			Affinity:    backend.KindRelational,
		},

		// Backend-agnostic.
		{
			Name:        "list_databases",
			Description: "List all available databases and their status",
			Affinity:    backend.KindUnknown,
		},
	}
}
