package resolver

import (
	"context"

	"github.com/nasdf/blogql/core"
)

// PostAuthor returns the user that wrote the post or nil if the user does not exist.
func (r *Resolver) PostAuthor(ctx context.Context, post *core.Post) (*core.User, error) {
	var user *core.User
	err := r.store.View(ctx, func(tx *core.Transaction) error {
		user = tx.FindUser(func(u *core.User) bool {
			return u.ID == post.Author
		})
		return nil
	})
	return user, err
}

// PostComments returns all comments on the post.
func (r *Resolver) PostComments(ctx context.Context, post *core.Post) ([]*core.Comment, error) {
	var comments []*core.Comment
	err := r.store.View(ctx, func(tx *core.Transaction) error {
		comments = tx.FilterComments(func(c *core.Comment) bool {
			return c.Post == post.ID
		})
		return nil
	})
	return comments, err
}

// CommentAuthor returns the user that wrote the comment or nil if the user does not exist.
func (r *Resolver) CommentAuthor(ctx context.Context, comment *core.Comment) (*core.User, error) {
	var user *core.User
	err := r.store.View(ctx, func(tx *core.Transaction) error {
		user = tx.FindUser(func(u *core.User) bool {
			return u.ID == comment.Author
		})
		return nil
	})
	return user, err
}

// CommentPost returns the post the comment belongs to or nil if the post does not exist.
func (r *Resolver) CommentPost(ctx context.Context, comment *core.Comment) (*core.Post, error) {
	var post *core.Post
	err := r.store.View(ctx, func(tx *core.Transaction) error {
		post = tx.FindPost(func(p *core.Post) bool {
			return p.ID == comment.Post
		})
		return nil
	})
	return post, err
}

// UserPosts returns all posts written by the user.
func (r *Resolver) UserPosts(ctx context.Context, user *core.User) ([]*core.Post, error) {
	var posts []*core.Post
	err := r.store.View(ctx, func(tx *core.Transaction) error {
		posts = tx.FilterPosts(func(p *core.Post) bool {
			return p.Author == user.ID
		})
		return nil
	})
	return posts, err
}

// UserComments returns all comments written by the user.
func (r *Resolver) UserComments(ctx context.Context, user *core.User) ([]*core.Comment, error) {
	var comments []*core.Comment
	err := r.store.View(ctx, func(tx *core.Transaction) error {
		comments = tx.FilterComments(func(c *core.Comment) bool {
			return c.Author == user.ID
		})
		return nil
	})
	return comments, err
}
