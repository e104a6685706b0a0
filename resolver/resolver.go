// Package resolver implements the query, mutation, and relation resolvers
// for the users, posts, and comments API.
package resolver

import (
	"context"

	"github.com/nasdf/blogql/core"
	"github.com/nasdf/blogql/graphql"

	"go.uber.org/zap"
)

// Resolver reads and writes the store on behalf of GraphQL operations.
type Resolver struct {
	store *core.Store
	ids   core.IDGenerator
	log   *zap.Logger
}

// New returns a resolver that uses ids to assign ids to created records.
func New(store *core.Store, ids core.IDGenerator, log *zap.Logger) *Resolver {
	return &Resolver{
		store: store,
		ids:   ids,
		log:   log,
	}
}

// Resolvers returns the resolver for every field declared in the schema.
func (r *Resolver) Resolvers() *graphql.Resolvers {
	return graphql.NewResolvers().
		Register("Query", "users", r.usersField).
		Register("Query", "posts", r.postsField).
		Register("Query", "comments", r.commentsField).
		Register("Query", "me", r.meField).
		Register("Query", "post", r.postField).
		Register("Mutation", "createUser", r.createUserField).
		Register("Mutation", "createPost", r.createPostField).
		Register("Mutation", "createComment", r.createCommentField).
		Register(core.UserTypeName, "id", value(func(u *core.User) any { return u.ID })).
		Register(core.UserTypeName, "name", value(func(u *core.User) any { return u.Name })).
		Register(core.UserTypeName, "email", value(func(u *core.User) any { return u.Email })).
		Register(core.UserTypeName, "age", value(func(u *core.User) any { return u.Age })).
		Register(core.UserTypeName, "posts", relation(r.UserPosts)).
		Register(core.UserTypeName, "comments", relation(r.UserComments)).
		Register(core.PostTypeName, "id", value(func(p *core.Post) any { return p.ID })).
		Register(core.PostTypeName, "title", value(func(p *core.Post) any { return p.Title })).
		Register(core.PostTypeName, "body", value(func(p *core.Post) any { return p.Body })).
		Register(core.PostTypeName, "published", value(func(p *core.Post) any { return p.Published })).
		Register(core.PostTypeName, "author", relation(r.PostAuthor)).
		Register(core.PostTypeName, "comments", relation(r.PostComments)).
		Register(core.CommentTypeName, "id", value(func(c *core.Comment) any { return c.ID })).
		Register(core.CommentTypeName, "text", value(func(c *core.Comment) any { return c.Text })).
		Register(core.CommentTypeName, "author", relation(r.CommentAuthor)).
		Register(core.CommentTypeName, "post", relation(r.CommentPost))
}

// value returns a FieldFunc that reads a field directly from the parent record.
func value[T any](fn func(*T) any) graphql.FieldFunc {
	return graphql.Field(func(ctx context.Context, obj *T, args map[string]any) (any, error) {
		return fn(obj), nil
	})
}

// relation returns a FieldFunc that computes related records of the parent record.
func relation[T, R any](fn func(context.Context, *T) (R, error)) graphql.FieldFunc {
	return graphql.Field(func(ctx context.Context, obj *T, args map[string]any) (any, error) {
		return fn(ctx, obj)
	})
}
