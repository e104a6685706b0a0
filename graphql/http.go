package graphql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

var (
	errMethodNotAllowed = errors.New("method not allowed")
	// errMutationOverGet is returned for GET requests that select a mutation.
	errMutationOverGet = errors.New("mutations must be sent with POST")
)

// Executor runs GraphQL operations.
type Executor interface {
	Execute(context.Context, QueryParams) (any, error)
}

// Handler returns an http.Handler that can serve GraphQL requests.
//
// GET requests may only run queries.
func Handler(e Executor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params, err := ReadQueryParams(r)
		switch {
		case errors.Is(err, errMutationOverGet):
			w.Header().Set("Allow", http.MethodPost)
			http.Error(w, err.Error(), http.StatusMethodNotAllowed)
			return
		case errors.Is(err, errMethodNotAllowed):
			w.Header().Set("Allow", "GET, POST")
			http.Error(w, err.Error(), http.StatusMethodNotAllowed)
			return
		case err != nil:
			http.Error(w, fmt.Sprintf("failed to parse request: %v", err), http.StatusBadRequest)
			return
		}
		data, err := e.Execute(r.Context(), params)
		out, err := json.Marshal(NewQueryResponse(data, err))
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(out) //nolint:errcheck
	})
}

// ReadQueryParams reads the query parameters from the URL of a GET request
// or from the JSON body of a POST request.
func ReadQueryParams(r *http.Request) (QueryParams, error) {
	switch r.Method {
	case http.MethodGet:
		params, err := ParseGetQueryParams(r)
		if err != nil {
			return params, err
		}
		if selectsMutation(params) {
			return params, errMutationOverGet
		}
		return params, nil
	case http.MethodPost:
		return ParsePostQueryParams(r)
	default:
		return QueryParams{}, errMethodNotAllowed
	}
}

// ParseGetQueryParams reads the query parameters from the request URL.
func ParseGetQueryParams(r *http.Request) (QueryParams, error) {
	values := r.URL.Query()
	params := QueryParams{
		Query:         values.Get("query"),
		OperationName: values.Get("operationName"),
	}
	if raw := values.Get("variables"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &params.Variables); err != nil {
			return params, fmt.Errorf("invalid variables: %w", err)
		}
	}
	return params, nil
}

// ParsePostQueryParams reads the query parameters from the JSON request body.
func ParsePostQueryParams(r *http.Request) (QueryParams, error) {
	var params QueryParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		return params, fmt.Errorf("invalid body: %w", err)
	}
	return params, nil
}

// selectsMutation reports whether the operation chosen by params is a mutation.
//
// Documents that do not parse are left for the executor to report.
func selectsMutation(params QueryParams) bool {
	doc, err := parser.ParseQuery(&ast.Source{Input: params.Query})
	if err != nil {
		return false
	}
	var op *ast.OperationDefinition
	switch {
	case params.OperationName != "":
		op = doc.Operations.ForName(params.OperationName)
	case len(doc.Operations) == 1:
		op = doc.Operations[0]
	}
	return op != nil && op.Operation == ast.Mutation
}
