package data

import (
	"context"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPrefsStore(t *testing.T) *PrefsStore {
	t.Helper()

	srv := miniredis.RunT(t)
	return NewPrefsStoreWithClient(redis.NewClient(&redis.Options{Addr: srv.Addr()}))
}

func TestPrefsStore_favorites(t *testing.T) {
	ctx := context.Background()
	store := newTestPrefsStore(t)

	require.NoError(t, store.AddFavorite(ctx, "p-1", 3))
	require.NoError(t, store.AddFavorite(ctx, "p-1", 5))
	require.NoError(t, store.AddFavorite(ctx, "p-1", 3)) // duplicate

	ids, err := store.Favorites(ctx, "p-1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{3, 5}, ids)

	require.NoError(t, store.RemoveFavorite(ctx, "p-1", 3))

	ids, err = store.Favorites(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, []int{5}, ids)

	// other patients are unaffected
	ids, err = store.Favorites(ctx, "p-2")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestPrefsStore_recentSearches(t *testing.T) {
	ctx := context.Background()
	store := newTestPrefsStore(t)

	require.NoError(t, store.AddSearch(ctx, "p-1", "cardiologist"))
	require.NoError(t, store.AddSearch(ctx, "p-1", "dentist"))
	require.NoError(t, store.AddSearch(ctx, "p-1", "cardiologist")) // moves to front

	searches, err := store.RecentSearches(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"cardiologist", "dentist"}, searches)
}

func TestPrefsStore_recentSearchesCapped(t *testing.T) {
	ctx := context.Background()
	store := newTestPrefsStore(t)

	for i := 0; i < recentSearchLimit+5; i++ {
		require.NoError(t, store.AddSearch(ctx, "p-1", fmt.Sprintf("query-%d", i)))
	}

	searches, err := store.RecentSearches(ctx, "p-1")
	require.NoError(t, err)
	require.Len(t, searches, recentSearchLimit)
	assert.Equal(t, fmt.Sprintf("query-%d", recentSearchLimit+4), searches[0])
}
