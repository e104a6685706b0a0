package graphql

import (
	"errors"

	"github.com/nasdf/blogql/core"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

const (
	// ConflictErrorCode is set on errors caused by a uniqueness violation.
	ConflictErrorCode = "CONFLICT"
	// BadUserInputErrorCode is set on errors caused by invalid references in user input.
	BadUserInputErrorCode = "BAD_USER_INPUT"
	// InternalErrorCode is set on all other field errors.
	InternalErrorCode = "INTERNAL_SERVER_ERROR"
)

// fieldError converts err into a GraphQL error located at the given field and path.
func fieldError(field graphql.CollectedField, path ast.Path, err error) *gqlerror.Error {
	var gqlErr *gqlerror.Error
	if errors.As(err, &gqlErr) {
		return gqlErr
	}
	out := gqlerror.WrapPath(path, err)
	if field.Field != nil && field.Position != nil {
		out.Locations = []gqlerror.Location{{
			Line:   field.Position.Line,
			Column: field.Position.Column,
		}}
	}
	out.Extensions = map[string]any{
		"code": errorCode(err),
	}
	return out
}

func errorCode(err error) string {
	switch {
	case core.IsConflict(err):
		return ConflictErrorCode
	case core.IsValidation(err):
		return BadUserInputErrorCode
	default:
		return InternalErrorCode
	}
}
