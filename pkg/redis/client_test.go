package redis

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.Host = mr.Host()
	cfg.Port = port

	client, err := Connect(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return client, mr
}

func TestSetGetDelete(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "k", "v", time.Minute))

	val, err := client.get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", val)

	exists, err := client.Exists(ctx, "k")
	require.NoError(t, err)
	assert.True(t, exists)

	deleted, err := client.Delete(ctx, "k")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = client.Delete(ctx, "k")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestGetMissingKeyIsEmpty(t *testing.T) {
	client, _ := newTestClient(t)

	val, err := client.get(context.Background(), "missing")
	require.NoError(t, err)
	assert.Empty(t, val)
}

func TestJSONRoundTripAndMiss(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	type payload struct {
		ID string `json:"id"`
	}

	require.NoError(t, client.SetJSON(ctx, "user", payload{ID: "user-123"}, time.Minute))

	var got payload
	require.NoError(t, client.GetJSON(ctx, "user", &got))
	assert.Equal(t, "user-123", got.ID)

	err := client.GetJSON(ctx, "nope", &got)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestSetExpiry(t *testing.T) {
	client, mr := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "short", "1", 10*time.Second))
	assert.Equal(t, 10*time.Second, mr.TTL("short"))

	mr.FastForward(11 * time.Second)

	exists, err := client.Exists(ctx, "short")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestKeyPrefix(t *testing.T) {
	client := New(&Config{KeyPrefix: "auth", Host: "localhost", Port: 6379})
	assert.Equal(t, "auth:authentications:abc", client.Key("authentications", "abc"))

	bare := New(&Config{Host: "localhost", Port: 6379})
	assert.Equal(t, "users:x", bare.Key("users", "x"))
}

func TestConnectFailsWhenServerDown(t *testing.T) {
	mr := miniredis.RunT(t)
	host := mr.Host()
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)
	mr.Close()

	cfg := DefaultConfig()
	cfg.Host = host
	cfg.Port = port
	cfg.ConnTimeout = 200 * time.Millisecond

	_, err = Connect(context.Background(), cfg)
	assert.Error(t, err)
}

func TestConcurrentResetRebuildsClientOnce(t *testing.T) {
	client, _ := newTestClient(t)

	base, hook := test.NewNullLogger()
	client.SetLogger(base)

	for range 6 {
		client.recordError()
	}

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			client.checkAndResetClient()
		}()
	}
	wg.Wait()

	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.NoError(t, client.Ping(context.Background()))
}
