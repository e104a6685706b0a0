package resolver

import (
	"context"
	"testing"

	"github.com/nasdf/blogql/core"
	"github.com/nasdf/blogql/graphql"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestResolver(t *testing.T) (*Resolver, *core.Store) {
	store := core.NewStore()
	require.NoError(t, core.Seed(context.Background(), store))

	return New(store, core.NewSequenceGenerator("id-"), zaptest.NewLogger(t)), store
}

func TestResolversMatchSchema(t *testing.T) {
	schema, err := graphql.LoadSchema()
	require.NoError(t, err)

	r, _ := newTestResolver(t)
	assert.NoError(t, r.Resolvers().Check(schema))
}

func TestResolversCheckMissingField(t *testing.T) {
	schema, err := graphql.LoadSchema()
	require.NoError(t, err)

	r, _ := newTestResolver(t)
	resolvers := r.Resolvers().
		Register("User", "nickname", value(func(u *core.User) any { return u.Name }))

	err = resolvers.Check(schema)
	assert.ErrorContains(t, err, "resolver User.nickname does not match a schema field")
}

func TestResolversCheckUnresolvedField(t *testing.T) {
	schema, err := graphql.LoadSchema()
	require.NoError(t, err)

	resolvers := graphql.NewResolvers()

	err = resolvers.Check(schema)
	require.Error(t, err)
	assert.ErrorContains(t, err, "missing resolver for Query.users")
	assert.ErrorContains(t, err, "missing resolver for Comment.post")
}
