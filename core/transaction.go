package core

import "slices"

// Transaction is used to read and append records while holding a store lock.
//
// A transaction must not be used after the View or Update call that
// created it has returned.
type Transaction struct {
	store    *Store
	readOnly bool
}

// Users returns all users in insertion order.
func (t *Transaction) Users() []*User {
	return clone(t.store.users)
}

// Posts returns all posts in insertion order.
func (t *Transaction) Posts() []*Post {
	return clone(t.store.posts)
}

// Comments returns all comments in insertion order.
func (t *Transaction) Comments() []*Comment {
	return clone(t.store.comments)
}

// FindUser returns the first user matching the predicate or nil.
func (t *Transaction) FindUser(match func(*User) bool) *User {
	return find(t.store.users, match)
}

// FindPost returns the first post matching the predicate or nil.
func (t *Transaction) FindPost(match func(*Post) bool) *Post {
	return find(t.store.posts, match)
}

// FindComment returns the first comment matching the predicate or nil.
func (t *Transaction) FindComment(match func(*Comment) bool) *Comment {
	return find(t.store.comments, match)
}

// FilterUsers returns all users matching the predicate in insertion order.
func (t *Transaction) FilterUsers(match func(*User) bool) []*User {
	return filter(t.store.users, match)
}

// FilterPosts returns all posts matching the predicate in insertion order.
func (t *Transaction) FilterPosts(match func(*Post) bool) []*Post {
	return filter(t.store.posts, match)
}

// FilterComments returns all comments matching the predicate in insertion order.
func (t *Transaction) FilterComments(match func(*Comment) bool) []*Comment {
	return filter(t.store.comments, match)
}

// AppendUser adds the user to the end of the users collection.
func (t *Transaction) AppendUser(user *User) error {
	if t.readOnly {
		return ErrReadOnly
	}
	t.store.users = append(t.store.users, user)
	return nil
}

// AppendPost adds the post to the end of the posts collection.
func (t *Transaction) AppendPost(post *Post) error {
	if t.readOnly {
		return ErrReadOnly
	}
	t.store.posts = append(t.store.posts, post)
	return nil
}

// AppendComment adds the comment to the end of the comments collection.
func (t *Transaction) AppendComment(comment *Comment) error {
	if t.readOnly {
		return ErrReadOnly
	}
	t.store.comments = append(t.store.comments, comment)
	return nil
}

func find[T any](items []*T, match func(*T) bool) *T {
	i := slices.IndexFunc(items, match)
	if i < 0 {
		return nil
	}
	return items[i]
}

func filter[T any](items []*T, match func(*T) bool) []*T {
	out := make([]*T, 0, len(items))
	for _, v := range items {
		if match(v) {
			out = append(out, v)
		}
	}
	return out
}

// clone returns a non-nil copy of records.
func clone[T any](records []*T) []*T {
	return append(make([]*T, 0, len(records)), records...)
}
