package resolver

import (
	"context"
	"fmt"

	"github.com/nasdf/blogql/core"

	"go.uber.org/zap"
)

// CreateUser adds a new user unless another user already has the same email.
func (r *Resolver) CreateUser(ctx context.Context, input core.CreateUserInput) (*core.User, error) {
	var user *core.User
	err := r.store.Update(ctx, func(tx *core.Transaction) error {
		taken := tx.FindUser(func(u *core.User) bool {
			return u.Email == input.Email
		})
		if taken != nil {
			return core.ErrEmailTaken
		}
		id, err := r.ids.NewID()
		if err != nil {
			return fmt.Errorf("failed to create user id: %w", err)
		}
		user = &core.User{
			ID:    id,
			Name:  input.Name,
			Email: input.Email,
			Age:   input.Age,
		}
		return tx.AppendUser(user)
	})
	if err != nil {
		return nil, err
	}
	r.log.Info("created user", zap.String("id", user.ID))
	return user, nil
}

// CreatePost adds a new post written by an existing user.
func (r *Resolver) CreatePost(ctx context.Context, input core.CreatePostInput) (*core.Post, error) {
	var post *core.Post
	err := r.store.Update(ctx, func(tx *core.Transaction) error {
		author := tx.FindUser(func(u *core.User) bool {
			return u.ID == input.Author
		})
		if author == nil {
			return core.ErrUserNotExist
		}
		id, err := r.ids.NewID()
		if err != nil {
			return fmt.Errorf("failed to create post id: %w", err)
		}
		post = &core.Post{
			ID:        id,
			Title:     input.Title,
			Body:      input.Body,
			Published: input.Published,
			Author:    input.Author,
		}
		return tx.AppendPost(post)
	})
	if err != nil {
		return nil, err
	}
	r.log.Info("created post", zap.String("id", post.ID), zap.String("author", post.Author))
	return post, nil
}

// CreateComment adds a new comment written by an existing user on a published post.
//
// A post that exists but is not published is reported the same way as a
// post that does not exist.
func (r *Resolver) CreateComment(ctx context.Context, input core.CreateCommentInput) (*core.Comment, error) {
	var comment *core.Comment
	err := r.store.Update(ctx, func(tx *core.Transaction) error {
		author := tx.FindUser(func(u *core.User) bool {
			return u.ID == input.Author
		})
		post := tx.FindPost(func(p *core.Post) bool {
			return p.ID == input.Post && p.Published
		})
		if author == nil || post == nil {
			return core.ErrUserOrPostNotExist
		}
		id, err := r.ids.NewID()
		if err != nil {
			return fmt.Errorf("failed to create comment id: %w", err)
		}
		comment = &core.Comment{
			ID:     id,
			Text:   input.Text,
			Author: input.Author,
			Post:   input.Post,
		}
		return tx.AppendComment(comment)
	})
	if err != nil {
		return nil, err
	}
	r.log.Info("created comment", zap.String("id", comment.ID), zap.String("post", comment.Post))
	return comment, nil
}

func (r *Resolver) createUserField(ctx context.Context, parent any, args map[string]any) (any, error) {
	input, err := decodeCreateUserInput(args["data"])
	if err != nil {
		return nil, err
	}
	return r.CreateUser(ctx, input)
}

func (r *Resolver) createPostField(ctx context.Context, parent any, args map[string]any) (any, error) {
	input, err := decodeCreatePostInput(args["data"])
	if err != nil {
		return nil, err
	}
	return r.CreatePost(ctx, input)
}

func (r *Resolver) createCommentField(ctx context.Context, parent any, args map[string]any) (any, error) {
	input, err := decodeCreateCommentInput(args["data"])
	if err != nil {
		return nil, err
	}
	return r.CreateComment(ctx, input)
}
