package core

import "context"

// Seed appends the demo users, posts, and comments to the store.
func Seed(ctx context.Context, s *Store) error {
	return s.Update(ctx, func(tx *Transaction) error {
		for _, u := range seedUsers() {
			if err := tx.AppendUser(u); err != nil {
				return err
			}
		}
		for _, p := range seedPosts() {
			if err := tx.AppendPost(p); err != nil {
				return err
			}
		}
		for _, c := range seedComments() {
			if err := tx.AppendComment(c); err != nil {
				return err
			}
		}
		return nil
	})
}

func seedUsers() []*User {
	return []*User{
		{ID: "1", Name: "Tae", Email: "tae@example.com", Age: IntPtr(36)},
		{ID: "2", Name: "Joe", Email: "joe@example.com"},
		{ID: "3", Name: "Tamaki", Email: "tamaki@example.com", Age: IntPtr(4)},
	}
}

func seedPosts() []*Post {
	return []*Post{
		{ID: "1", Title: "Habits to work on", Body: "Jog for 20 mins", Published: true, Author: "1"},
		{ID: "2", Title: "Dinner for weekend", Body: "Chicken noodle soup", Published: false, Author: "2"},
		{ID: "3", Title: "Plan for the weekend", Body: "Go out for a park", Published: true, Author: "3"},
	}
}

func seedComments() []*Comment {
	return []*Comment{
		{ID: "1", Text: "GraphQL is cool!", Author: "1", Post: "1"},
		{ID: "2", Text: "I like Python!", Author: "1", Post: "2"},
		{ID: "3", Text: "Peggy piggy", Author: "2", Post: "2"},
		{ID: "4", Text: "Hoo hoo hoo!", Author: "3", Post: "3"},
	}
}
