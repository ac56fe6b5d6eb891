package storage

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adubrov/boiler-parts/internal/port"
)

func getRedisClient(t *testing.T) *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	return client
}

func TestRedisSessionStore_Roundtrip(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	store := NewRedisSessionStore(client, time.Minute)

	id, err := store.Create(ctx, 42, "john")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	session, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, session.ID)
	assert.EqualValues(t, 42, session.UserID)
	assert.Equal(t, "john", session.Username)

	require.NoError(t, store.Delete(ctx, id))

	_, err = store.Get(ctx, id)
	assert.ErrorIs(t, err, port.ErrSessionNotFound)
}

func TestRedisSessionStore_UnknownSession(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	_, err := NewRedisSessionStore(client, time.Minute).Get(context.Background(), "no-such-session")
	assert.ErrorIs(t, err, port.ErrSessionNotFound)
}

func TestRedisSessionStore_Expiry(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	store := NewRedisSessionStore(client, 100*time.Millisecond)

	id, err := store.Create(ctx, 1, "john")
	require.NoError(t, err)

	time.Sleep(200 * time.Millisecond)

	_, err = store.Get(ctx, id)
	assert.ErrorIs(t, err, port.ErrSessionNotFound)
}
