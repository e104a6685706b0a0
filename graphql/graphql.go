package graphql

import (
	"context"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

// QueryParams contains all of the parameters for a query.
type QueryParams struct {
	Query         string         `json:"query" yaml:"query"`
	OperationName string         `json:"operationName" yaml:"operationName"`
	Variables     map[string]any `json:"variables" yaml:"variables"`
}

// Execute parses, validates, and runs the query using the given resolvers.
//
// The returned operation is empty when the request could not be parsed.
func Execute(ctx context.Context, schema *ast.Schema, resolvers *Resolvers, params QueryParams) (ast.Operation, map[string]any, error) {
	req, err := NewRequest(schema, resolvers, params)
	if err != nil {
		return "", nil, err
	}
	data, err := req.Execute(ctx)
	if err != nil {
		return req.Operation(), nil, err
	}
	return req.Operation(), data, nil
}

// QueryResponse contains all of the fields for a response.
type QueryResponse struct {
	Data       any            `json:"data,omitempty"`
	Errors     gqlerror.List  `json:"errors,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

// NewQueryResponse returns a new GraphQL compliant response.
func NewQueryResponse(data any, err error) QueryResponse {
	response := QueryResponse{
		Data: data,
	}
	switch t := err.(type) {
	case nil:
		response.Errors = nil
	case gqlerror.List:
		response.Errors = t
	case *gqlerror.Error:
		response.Errors = gqlerror.List{t}
	default:
		response.Errors = gqlerror.List{gqlerror.Wrap(err)}
	}
	return response
}
