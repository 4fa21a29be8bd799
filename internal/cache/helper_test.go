package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedUser struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	prev := client
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(prev) })
	return mr
}

func TestAside_MissFetchesAndPopulates(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	fetchCalls := 0
	var got cachedUser
	err := Aside(ctx, UserKey(7), &got, UserTTL, func() error {
		fetchCalls++
		got = cachedUser{ID: 7, Name: "alice"}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, fetchCalls)
	assert.Equal(t, "alice", got.Name)
	assert.True(t, mr.Exists(UserKey(7)))

	// Second read is served from cache.
	var again cachedUser
	err = Aside(ctx, UserKey(7), &again, UserTTL, func() error {
		fetchCalls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, fetchCalls)
	assert.Equal(t, got, again)
}

func TestAside_NilClientAlwaysFetches(t *testing.T) {
	prev := client
	SetClient(nil)
	defer SetClient(prev)

	fetchCalls := 0
	var got cachedUser
	err := Aside(context.Background(), UserKey(1), &got, time.Minute, func() error {
		fetchCalls++
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, fetchCalls)
}

func TestInvalidateFeeds(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, GlobalFeedKey, []uint{1, 2}, FeedTTL))
	require.NoError(t, SetJSON(ctx, UserFeedKey(3), []uint{9}, FeedTTL))

	InvalidateFeeds(ctx, 3)

	assert.False(t, mr.Exists(GlobalFeedKey))
	assert.False(t, mr.Exists(UserFeedKey(3)))
}
