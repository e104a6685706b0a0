package graphql

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/nasdf/blogql/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

const testSchema = `
type Query {
	hello(name: String): String!
	items: [Item!]!
	item(id: ID!): Item
	broken: Item!
}

type Mutation {
	add(n: Int!): Int!
	conflict: Int!
}

type Item {
	id: ID!
	count: Int
	tags: [String!]
}
`

type item struct {
	ID    string
	Count *int
	Tags  []string
}

func newTestSchema(t *testing.T) *ast.Schema {
	schema, err := gqlparser.LoadSchema(&ast.Source{Name: "test.graphql", Input: testSchema})
	require.NoError(t, err)
	return schema
}

func newTestResolvers() *Resolvers {
	items := []*item{
		{ID: "a", Count: core.IntPtr(1), Tags: []string{"x", "y"}},
		{ID: "b"},
	}
	total := 0
	return NewResolvers().
		Register("Query", "hello", func(ctx context.Context, parent any, args map[string]any) (any, error) {
			name, ok := args["name"].(string)
			if !ok {
				name = "world"
			}
			return "hello " + name, nil
		}).
		Register("Query", "items", func(ctx context.Context, parent any, args map[string]any) (any, error) {
			return items, nil
		}).
		Register("Query", "item", func(ctx context.Context, parent any, args map[string]any) (any, error) {
			for _, it := range items {
				if it.ID == args["id"] {
					return it, nil
				}
			}
			return (*item)(nil), nil
		}).
		Register("Query", "broken", func(ctx context.Context, parent any, args map[string]any) (any, error) {
			return nil, nil
		}).
		Register("Mutation", "add", func(ctx context.Context, parent any, args map[string]any) (any, error) {
			n, err := UnmarshalInt(args["n"])
			if err != nil {
				return nil, err
			}
			total += n
			return total, nil
		}).
		Register("Mutation", "conflict", func(ctx context.Context, parent any, args map[string]any) (any, error) {
			return nil, core.ErrEmailTaken
		}).
		Register("Item", "id", Field(func(ctx context.Context, obj *item, args map[string]any) (any, error) {
			return obj.ID, nil
		})).
		Register("Item", "count", Field(func(ctx context.Context, obj *item, args map[string]any) (any, error) {
			return obj.Count, nil
		})).
		Register("Item", "tags", Field(func(ctx context.Context, obj *item, args map[string]any) (any, error) {
			return obj.Tags, nil
		}))
}

func executeJSON(t *testing.T, params QueryParams) (string, error) {
	_, data, err := Execute(context.Background(), newTestSchema(t), newTestResolvers(), params)
	if err != nil {
		return "", err
	}
	out, err := json.Marshal(data)
	require.NoError(t, err)
	return string(out), nil
}

func TestCheck(t *testing.T) {
	schema := newTestSchema(t)
	assert.NoError(t, newTestResolvers().Check(schema))

	resolvers := newTestResolvers().Register("Missing", "field", nil)
	assert.ErrorContains(t, resolvers.Check(schema), "resolver Missing.field does not match a schema field")
}

func TestField(t *testing.T) {
	fn := Field(func(ctx context.Context, obj *item, args map[string]any) (any, error) {
		return obj.ID, nil
	})

	val, err := fn(context.Background(), &item{ID: "a"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "a", val)

	_, err = fn(context.Background(), "not an item", nil)
	assert.ErrorContains(t, err, "unexpected parent value string")

	_, err = fn(context.Background(), (*item)(nil), nil)
	assert.Error(t, err)
}

func TestExecuteQuery(t *testing.T) {
	actual, err := executeJSON(t, QueryParams{
		Query: `query {
			__typename
			greeting: hello
			named: hello(name: "gopher")
			items { id count tags }
		}`,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"__typename": "Query",
		"greeting": "hello world",
		"named": "hello gopher",
		"items": [
			{"id": "a", "count": 1, "tags": ["x", "y"]},
			{"id": "b", "count": null, "tags": null}
		]
	}`, actual)
}

func TestExecuteFragments(t *testing.T) {
	actual, err := executeJSON(t, QueryParams{
		Query: `query Items($withCount: Boolean!) {
			items { ...ItemFields }
			missing: item(id: "z") { id }
		}
		fragment ItemFields on Item {
			__typename
			id
			count @include(if: $withCount)
		}`,
		OperationName: "Items",
		Variables:     map[string]any{"withCount": false},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"items": [{"__typename": "Item", "id": "a"}, {"__typename": "Item", "id": "b"}],
		"missing": null
	}`, actual)
}

func TestExecuteMutationRunsSerially(t *testing.T) {
	actual, err := executeJSON(t, QueryParams{
		Query: `mutation ($n: Int!) { first: add(n: $n) second: add(n: $n) third: add(n: 5) }`,
		// JSON decoded variables are float64
		Variables: map[string]any{"n": float64(2)},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"first": 2, "second": 4, "third": 9}`, actual)
}

func TestExecuteNonNullViolation(t *testing.T) {
	_, err := executeJSON(t, QueryParams{Query: `{ hello broken { id } }`})
	require.Error(t, err)

	var gqlErr *gqlerror.Error
	require.True(t, errors.As(err, &gqlErr))
	assert.Equal(t, "must not be null", gqlErr.Message)
	assert.Equal(t, ast.Path{ast.PathName("broken")}, gqlErr.Path)
	assert.Equal(t, []gqlerror.Location{{Line: 1, Column: 9}}, gqlErr.Locations)
	assert.Equal(t, InternalErrorCode, gqlErr.Extensions["code"])
}

func TestExecuteErrorCode(t *testing.T) {
	_, err := executeJSON(t, QueryParams{Query: `mutation { conflict }`})
	require.Error(t, err)

	var gqlErr *gqlerror.Error
	require.True(t, errors.As(err, &gqlErr))
	assert.Equal(t, "Email taken.", gqlErr.Message)
	assert.Equal(t, ConflictErrorCode, gqlErr.Extensions["code"])
	assert.True(t, core.IsConflict(err))
}

func TestExecuteInvalid(t *testing.T) {
	tests := []struct {
		name   string
		params QueryParams
	}{
		{name: "syntax", params: QueryParams{Query: `{ items { id }`}},
		{name: "unknown field", params: QueryParams{Query: `{ items { name } }`}},
		{name: "missing variable", params: QueryParams{Query: `mutation ($n: Int!) { add(n: $n) }`}},
		{name: "unknown operation", params: QueryParams{Query: `query A { hello }`, OperationName: "B"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, data, err := Execute(context.Background(), newTestSchema(t), newTestResolvers(), tt.params)
			assert.Error(t, err)
			assert.Empty(t, op)
			assert.Nil(t, data)
		})
	}
}

func TestUnmarshalInt(t *testing.T) {
	n, err := UnmarshalInt(float64(42))
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	n, err = UnmarshalInt(int64(7))
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	_, err = UnmarshalInt(1.5)
	assert.Error(t, err)

	_, err = UnmarshalInt(float64(1 << 40))
	assert.Error(t, err)
}

func TestNewQueryResponse(t *testing.T) {
	resp := NewQueryResponse(map[string]any{"a": 1}, nil)
	assert.Nil(t, resp.Errors)

	resp = NewQueryResponse(nil, gqlerror.Errorf("bad"))
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "bad", resp.Errors[0].Message)

	resp = NewQueryResponse(nil, gqlerror.List{gqlerror.Errorf("a"), gqlerror.Errorf("b")})
	assert.Len(t, resp.Errors, 2)

	resp = NewQueryResponse(nil, errors.New("plain"))
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "plain", resp.Errors[0].Message)

	out, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"errors": [{"message": "plain"}]}`, string(out))
}
