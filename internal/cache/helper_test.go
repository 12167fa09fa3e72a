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

func withTestRedis(t *testing.T) {
	t.Helper()
	mr := miniredis.RunT(t)
	prev := client
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(prev) })
}

func TestAside_MissThenHit(t *testing.T) {
	withTestRedis(t)
	ctx := context.Background()

	fetches := 0
	fetch := func(dest *cachedUser) func() error {
		return func() error {
			fetches++
			dest.ID = 1
			dest.Name = "ada"
			return nil
		}
	}

	var first cachedUser
	require.NoError(t, Aside(ctx, UserKey(1), &first, UserTTL, fetch(&first)))
	assert.Equal(t, 1, fetches)
	assert.Equal(t, "ada", first.Name)

	var second cachedUser
	require.NoError(t, Aside(ctx, UserKey(1), &second, UserTTL, fetch(&second)))
	assert.Equal(t, 1, fetches, "second read should be served from cache")
	assert.Equal(t, first, second)
}

func TestAside_InvalidateForcesRefetch(t *testing.T) {
	withTestRedis(t)
	ctx := context.Background()

	fetches := 0
	var u cachedUser
	fetch := func() error {
		fetches++
		u = cachedUser{ID: 2, Name: "grace"}
		return nil
	}

	require.NoError(t, Aside(ctx, UserKey(2), &u, UserTTL, fetch))
	InvalidateUser(ctx, 2)
	require.NoError(t, Aside(ctx, UserKey(2), &u, UserTTL, fetch))
	assert.Equal(t, 2, fetches)
}

func TestAside_NilClientAlwaysFetches(t *testing.T) {
	prev := client
	SetClient(nil)
	t.Cleanup(func() { SetClient(prev) })

	fetches := 0
	var u cachedUser
	fetch := func() error { fetches++; return nil }

	require.NoError(t, Aside(context.Background(), UserKey(3), &u, time.Minute, fetch))
	require.NoError(t, Aside(context.Background(), UserKey(3), &u, time.Minute, fetch))
	assert.Equal(t, 2, fetches)
}
