package resolver

import (
	"context"
	"strings"

	"github.com/nasdf/blogql/core"
)

// Users returns all users or, when query is not empty, the users whose
// name contains query ignoring case.
func (r *Resolver) Users(ctx context.Context, query string) ([]*core.User, error) {
	var users []*core.User
	err := r.store.View(ctx, func(tx *core.Transaction) error {
		if query == "" {
			users = tx.Users()
			return nil
		}
		users = tx.FilterUsers(func(u *core.User) bool {
			return containsFold(u.Name, query)
		})
		return nil
	})
	return users, err
}

// Posts returns all posts or, when query is not empty, the posts whose
// title or body contains query ignoring case.
func (r *Resolver) Posts(ctx context.Context, query string) ([]*core.Post, error) {
	var posts []*core.Post
	err := r.store.View(ctx, func(tx *core.Transaction) error {
		if query == "" {
			posts = tx.Posts()
			return nil
		}
		posts = tx.FilterPosts(func(p *core.Post) bool {
			return containsFold(p.Title, query) || containsFold(p.Body, query)
		})
		return nil
	})
	return posts, err
}

// Comments returns all comments.
func (r *Resolver) Comments(ctx context.Context) ([]*core.Comment, error) {
	var comments []*core.Comment
	err := r.store.View(ctx, func(tx *core.Transaction) error {
		comments = tx.Comments()
		return nil
	})
	return comments, err
}

// Me returns a fixed user that is not part of the store.
func (r *Resolver) Me(ctx context.Context) *core.User {
	return &core.User{
		ID:    "123",
		Name:  "Joe",
		Email: "joe@example.com",
		Age:   core.IntPtr(2),
	}
}

// Post returns a fixed post that is not part of the store.
//
// The post has no author so selecting its author results in an error.
func (r *Resolver) Post(ctx context.Context) *core.Post {
	return &core.Post{
		ID:        "1234sdasfds",
		Title:     "Cool node course!",
		Body:      "This course is so insightful",
		Published: false,
	}
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func (r *Resolver) usersField(ctx context.Context, parent any, args map[string]any) (any, error) {
	query, err := optionalString(args, "query")
	if err != nil {
		return nil, err
	}
	return r.Users(ctx, query)
}

func (r *Resolver) postsField(ctx context.Context, parent any, args map[string]any) (any, error) {
	query, err := optionalString(args, "query")
	if err != nil {
		return nil, err
	}
	return r.Posts(ctx, query)
}

func (r *Resolver) commentsField(ctx context.Context, parent any, args map[string]any) (any, error) {
	return r.Comments(ctx)
}

func (r *Resolver) meField(ctx context.Context, parent any, args map[string]any) (any, error) {
	return r.Me(ctx), nil
}

func (r *Resolver) postField(ctx context.Context, parent any, args map[string]any) (any, error) {
	return r.Post(ctx), nil
}
