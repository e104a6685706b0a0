package core

import (
	"context"
	"sync"
)

// Store is the in-memory source of truth for all users, posts, and comments.
//
// Collections are append only and records are never modified once appended.
// All writes are serialized so that checks made inside an Update hold
// until the update returns.
type Store struct {
	lock     sync.RWMutex
	users    []*User
	posts    []*Post
	comments []*Comment
}

// NewStore returns a new empty store.
func NewStore() *Store {
	return &Store{}
}

// View runs fn with a read only transaction.
func (s *Store) View(ctx context.Context, fn func(tx *Transaction) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.lock.RLock()
	defer s.lock.RUnlock()

	return fn(&Transaction{store: s, readOnly: true})
}

// Update runs fn with a writable transaction.
//
// Only one update runs at a time. Records appended by fn are visible to
// other transactions as soon as they are appended, so fn must run all of
// its checks before appending anything.
func (s *Store) Update(ctx context.Context, fn func(tx *Transaction) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.lock.Lock()
	defer s.lock.Unlock()

	return fn(&Transaction{store: s})
}

// Counts returns the number of records in each collection.
func (s *Store) Counts() Counts {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return Counts{
		Users:    len(s.users),
		Posts:    len(s.posts),
		Comments: len(s.comments),
	}
}
