package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uservault/uservault/users"
)

func TestRepo_Select(t *testing.T) {
	t.Run("[success scenario] - page bounded by limit, ordered by ascending id", func(t *testing.T) {
		repo := newTestRepo(t)
		seedUsers(t, repo, 15)

		items, total, err := repo.Select(context.Background(), users.SelectParams{Limit: 10, Offset: 0})
		require.NoError(t, err)

		assert.Equal(t, 15, total)
		require.Len(t, items, 10)

		for i := 1; i < len(items); i++ {
			assert.Greater(t, items[i].ID, items[i-1].ID)
		}
	})

	t.Run("[success scenario] - offset skips rows", func(t *testing.T) {
		repo := newTestRepo(t)
		seedUsers(t, repo, 15)

		items, total, err := repo.Select(context.Background(), users.SelectParams{Limit: 10, Offset: 10})
		require.NoError(t, err)

		assert.Equal(t, 15, total)
		assert.Len(t, items, 5)
	})

	t.Run("[success scenario] - empty table", func(t *testing.T) {
		repo := newTestRepo(t)

		items, total, err := repo.Select(context.Background(), users.SelectParams{Limit: 10, Offset: 0})
		require.NoError(t, err)

		assert.Zero(t, total)
		assert.Empty(t, items)
	})
}
