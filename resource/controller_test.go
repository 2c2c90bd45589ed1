package resource

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_Memory(t *testing.T) {
	c := NewController(Config{MemoryLimitBytes: 100})

	// Acquire 50
	err := c.AcquireMemory(50)
	require.NoError(t, err)
	assert.Equal(t, int64(50), c.MemoryUsage())

	// Acquire 40
	err = c.AcquireMemory(40)
	require.NoError(t, err)
	assert.Equal(t, int64(90), c.MemoryUsage())

	// Acquire 20 (should fail - limit exceeded)
	err = c.AcquireMemory(20)
	assert.ErrorIs(t, err, ErrMemoryLimitExceeded)
	assert.Equal(t, int64(90), c.MemoryUsage())

	// Release 50
	c.ReleaseMemory(50)
	assert.Equal(t, int64(40), c.MemoryUsage())

	// Now Acquire 20 should succeed
	err = c.AcquireMemory(20)
	require.NoError(t, err)
	assert.Equal(t, int64(60), c.MemoryUsage())
	assert.Equal(t, int64(90), c.PeakMemoryUsage())
	assert.Equal(t, int64(100), c.MemoryLimit())
}

func TestController_UnlimitedMemory(t *testing.T) {
	c := NewController(Config{MemoryLimitBytes: 0})

	err := c.AcquireMemory(1000)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), c.MemoryUsage())

	c.ReleaseMemory(500)
	assert.Equal(t, int64(500), c.MemoryUsage())
}

func TestController_Slots(t *testing.T) {
	c := NewController(Config{MaxConcurrentSearches: 2})

	require.NoError(t, c.AcquireSlot(t.Context()))
	require.NoError(t, c.AcquireSlot(t.Context()))

	ctx, cancel := context.WithTimeout(t.Context(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, c.AcquireSlot(ctx), context.DeadlineExceeded)

	c.ReleaseSlot()
	require.NoError(t, c.AcquireSlot(t.Context()))
}

func TestController_NilSafe(t *testing.T) {
	var c *Controller

	require.NoError(t, c.AcquireMemory(1<<40))
	c.ReleaseMemory(1 << 40)
	assert.Zero(t, c.MemoryUsage())
	assert.Zero(t, c.PeakMemoryUsage())
	assert.Zero(t, c.MemoryLimit())
	require.NoError(t, c.AcquireSlot(t.Context()))
	c.ReleaseSlot()
	require.NoError(t, c.AcquireIO(t.Context(), 1<<20))
}

func TestRateLimitedWriter(t *testing.T) {
	c := NewController(Config{IOLimitBytesPerSec: 256})

	var buf bytes.Buffer
	w := NewRateLimitedWriter(t.Context(), &buf, c)

	// Larger than the burst: split into several waits instead of failing.
	payload := bytes.Repeat([]byte("x"), 300)
	n, err := w.Write(payload)
	require.NoError(t, err)
	assert.Equal(t, 300, n)
	assert.Equal(t, payload, buf.Bytes())
	assert.Equal(t, int64(300), w.Written())
	assert.Equal(t, 256, c.IOBurst())
}

func TestRateLimitedWriter_Unlimited(t *testing.T) {
	var buf bytes.Buffer
	w := NewRateLimitedWriter(t.Context(), &buf, nil)

	n, err := w.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, int64(5), w.Written())
	assert.Zero(t, NewController(Config{}).IOBurst())
}

func TestRateLimitedWriter_Canceled(t *testing.T) {
	c := NewController(Config{IOLimitBytesPerSec: 1})

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	var buf bytes.Buffer
	w := NewRateLimitedWriter(ctx, &buf, c)
	_, err := w.Write([]byte("hello"))
	require.Error(t, err)
	assert.Zero(t, buf.Len())
}
