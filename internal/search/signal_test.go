package search

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignal_Monotone(t *testing.T) {
	s := NewSignal(4)
	assert.Equal(t, 4, s.Cutoff())
	assert.False(t, s.Stopped(3))

	s.Cut(2)
	assert.False(t, s.Stopped(1))
	assert.True(t, s.Stopped(2))
	assert.True(t, s.Stopped(3))

	// Cutting higher never re-enables a partition.
	s.Cut(3)
	assert.Equal(t, 2, s.Cutoff())
	assert.False(t, s.Raised())

	select {
	case <-s.Done():
		t.Fatal("done closed before raise")
	default:
	}

	s.Raise()
	assert.True(t, s.Raised())
	assert.True(t, s.Stopped(0))
	<-s.Done()

	s.Cut(1)
	assert.True(t, s.Raised(), "raised signals stay raised")
}

func TestSignal_ConcurrentRaise(t *testing.T) {
	s := NewSignal(8)

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Cut(i % 8)
			s.Raise()
		}()
	}
	wg.Wait()

	assert.True(t, s.Raised())
	<-s.Done()
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "running", Running.String())
	assert.Equal(t, "completed", Completed.String())
	assert.Equal(t, "cancelled", Cancelled.String())
	assert.Equal(t, "failed", Failed.String())
	assert.Equal(t, "unknown", State(42).String())
}
