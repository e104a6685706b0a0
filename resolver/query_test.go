package resolver

import (
	"context"
	"strings"
	"testing"

	"github.com/nasdf/blogql/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userIDs(users []*core.User) []string {
	ids := make([]string, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	return ids
}

func postIDs(posts []*core.Post) []string {
	ids := make([]string, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}
	return ids
}

func commentIDs(comments []*core.Comment) []string {
	ids := make([]string, len(comments))
	for i, c := range comments {
		ids[i] = c.ID
	}
	return ids
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestResolver(t)

	all, err := r.Users(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, userIDs(all))

	matched, err := r.Users(ctx, "ta")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "3"}, userIDs(matched))

	upper, err := r.Users(ctx, "TAM")
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, userIDs(upper))

	none, err := r.Users(ctx, "zed")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUsersFilterMatchesEveryUser(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestResolver(t)

	all, err := r.Users(ctx, "")
	require.NoError(t, err)

	for _, query := range []string{"a", "e", "T", "joe", "Ki", "x"} {
		matched, err := r.Users(ctx, query)
		require.NoError(t, err)

		var expect []string
		for _, u := range all {
			if strings.Contains(strings.ToLower(u.Name), strings.ToLower(query)) {
				expect = append(expect, u.ID)
			}
		}
		assert.ElementsMatch(t, expect, userIDs(matched), "query %q", query)
	}
}

func TestPosts(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestResolver(t)

	all, err := r.Posts(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, postIDs(all))

	byTitle, err := r.Posts(ctx, "WEEKEND")
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "3"}, postIDs(byTitle))

	byBody, err := r.Posts(ctx, "soup")
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, postIDs(byBody))

	either, err := r.Posts(ctx, "o")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, postIDs(either))
}

func TestComments(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestResolver(t)

	comments, err := r.Comments(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4"}, commentIDs(comments))
}

func TestMeAndPostAreNotStored(t *testing.T) {
	ctx := context.Background()
	r, store := newTestResolver(t)

	me := r.Me(ctx)
	assert.Equal(t, "123", me.ID)
	assert.Equal(t, "Joe", me.Name)
	assert.Equal(t, "joe@example.com", me.Email)
	require.NotNil(t, me.Age)
	assert.Equal(t, 2, *me.Age)

	post := r.Post(ctx)
	assert.Equal(t, "1234sdasfds", post.ID)
	assert.Equal(t, "Cool node course!", post.Title)
	assert.False(t, post.Published)

	err := store.View(ctx, func(tx *core.Transaction) error {
		assert.Nil(t, tx.FindUser(func(u *core.User) bool { return u.ID == me.ID }))
		assert.Nil(t, tx.FindPost(func(p *core.Post) bool { return p.ID == post.ID }))
		return nil
	})
	require.NoError(t, err)
}
