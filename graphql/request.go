package graphql

import (
	"context"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"github.com/vektah/gqlparser/v2/validator"
)

// Request is a parsed and validated GraphQL operation ready to be executed.
type Request struct {
	schema    *ast.Schema
	resolvers *Resolvers
	query     *ast.QueryDocument
	operation *ast.OperationDefinition
	params    QueryParams
}

// NewRequest parses the query document, selects the operation to run, and coerces its variables.
func NewRequest(schema *ast.Schema, resolvers *Resolvers, params QueryParams) (*Request, error) {
	query, errs := gqlparser.LoadQuery(schema, params.Query)
	if errs != nil {
		return nil, errs
	}
	var operation *ast.OperationDefinition
	if params.OperationName != "" {
		operation = query.Operations.ForName(params.OperationName)
	} else if len(query.Operations) == 1 {
		operation = query.Operations[0]
	}
	if operation == nil {
		return nil, gqlerror.Errorf("operation is not defined")
	}
	variables, err := validator.VariableValues(schema, operation, params.Variables)
	if err != nil {
		return nil, err
	}
	params.Variables = variables
	return &Request{
		schema:    schema,
		resolvers: resolvers,
		query:     query,
		operation: operation,
		params:    params,
	}, nil
}

// Operation returns the type of the selected operation.
func (e *Request) Operation() ast.Operation {
	return e.operation.Operation
}

// Execute runs the selected operation and returns the data result.
func (e *Request) Execute(ctx context.Context) (map[string]any, error) {
	switch e.operation.Operation {
	case ast.Mutation:
		return e.executeMutation(ctx, e.operation.SelectionSet)
	case ast.Query:
		return e.executeQuery(ctx, e.operation.SelectionSet)
	default:
		return nil, gqlerror.Errorf("unsupported operation %s", e.operation.Operation)
	}
}

func (e *Request) collectFields(sel ast.SelectionSet, satisfies ...string) []graphql.CollectedField {
	reqCtx := &graphql.OperationContext{
		RawQuery:  e.params.Query,
		Variables: e.params.Variables,
		Doc:       e.query,
	}
	return graphql.CollectFields(reqCtx, sel, satisfies)
}
