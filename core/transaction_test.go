package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionAppendAndFind(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	expect := &User{ID: "1", Name: "Bob", Email: "bob@example.com"}
	err := store.Update(ctx, func(tx *Transaction) error {
		return tx.AppendUser(expect)
	})
	require.NoError(t, err)

	var actual *User
	err = store.View(ctx, func(tx *Transaction) error {
		actual = tx.FindUser(func(u *User) bool { return u.ID == "1" })
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, expect, actual)
}

func TestTransactionEmptyCollections(t *testing.T) {
	err := NewStore().View(context.Background(), func(tx *Transaction) error {
		assert.NotNil(t, tx.Users())
		assert.NotNil(t, tx.Posts())
		assert.NotNil(t, tx.Comments())
		assert.Empty(t, tx.Users())
		return nil
	})
	require.NoError(t, err)
}
