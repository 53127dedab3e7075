package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_SetGetDelete(t *testing.T) {
	mr := miniredis.RunT(t)
	c := New(mr.Addr(), "", 0, "hr:")
	t.Cleanup(func() { _ = c.Close() })
	ctx := context.Background()

	require.NoError(t, c.Ping(ctx))
	require.NoError(t, c.Set(ctx, "session:1", []byte("v"), time.Minute))
	assert.True(t, mr.Exists("hr:session:1"))

	got, err := c.Get(ctx, "session:1")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)

	require.NoError(t, c.Delete(ctx, "session:1"))
	got, err = c.Get(ctx, "session:1")
	require.NoError(t, err)
	assert.Nil(t, got)

	// already gone
	assert.NoError(t, c.Delete(ctx, "session:1"))
}

func TestClient_TTLExpires(t *testing.T) {
	mr := miniredis.RunT(t)
	c := New(mr.Addr(), "", 0, "")
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	mr.FastForward(2 * time.Minute)

	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestClient_FailSafeReads(t *testing.T) {
	mr := miniredis.RunT(t)
	c := New(mr.Addr(), "", 0, "")
	ctx := context.Background()
	mr.Close()

	got, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.Error(t, c.Delete(ctx, "k"))
	assert.Error(t, c.Set(ctx, "k", []byte("v"), time.Minute))
}

func TestClient_Nil(t *testing.T) {
	var c *Client
	ctx := context.Background()

	got, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.Error(t, c.Set(ctx, "k", nil, time.Minute))
	assert.Error(t, c.Ping(ctx))
	assert.NoError(t, c.Close())
}
