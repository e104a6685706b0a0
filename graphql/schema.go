package graphql

import (
	_ "embed"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

const (
	queryTypeName    = "Query"
	mutationTypeName = "Mutation"
)

//go:embed schema.graphql
var schemaSource string

// SchemaSource returns the GraphQL schema definition language for the API.
func SchemaSource() string {
	return schemaSource
}

// LoadSchema parses and validates the API schema.
func LoadSchema() (*ast.Schema, error) {
	return gqlparser.LoadSchema(&ast.Source{Name: "schema.graphql", Input: schemaSource})
}
