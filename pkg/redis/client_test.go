package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client, err := NewClient("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return mr, client
}

func TestNewClient(t *testing.T) {
	t.Run("invalid URL", func(t *testing.T) {
		client, err := NewClient("invalid://url")
		assert.Error(t, err)
		assert.Nil(t, client)
	})

	t.Run("unreachable server", func(t *testing.T) {
		client, err := NewClient("redis://127.0.0.1:1")
		assert.Error(t, err)
		assert.Nil(t, client)
	})
}

func TestClientGetSet(t *testing.T) {
	_, client := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, KeyEventsList, `{"upcoming":[],"past":[]}`, TTLEventsList))

	val, err := client.Get(ctx, KeyEventsList)
	require.NoError(t, err)
	assert.Equal(t, `{"upcoming":[],"past":[]}`, val)
}

func TestClientGetMissingKey(t *testing.T) {
	_, client := setupTestRedis(t)

	val, err := client.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Empty(t, val)
}

func TestClientSetTTL(t *testing.T) {
	mr, client := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, KeyEventsList, "x", time.Minute))

	mr.FastForward(2 * time.Minute)

	val, err := client.Get(ctx, KeyEventsList)
	require.NoError(t, err)
	assert.Empty(t, val)
}

func TestClientDelete(t *testing.T) {
	_, client := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, KeyEventsList, "x", time.Minute))
	require.NoError(t, client.Delete(ctx, KeyEventsList))

	val, err := client.Get(ctx, KeyEventsList)
	require.NoError(t, err)
	assert.Empty(t, val)
}

func TestClientHealth(t *testing.T) {
	_, client := setupTestRedis(t)
	assert.NoError(t, client.Health(context.Background()))
}
