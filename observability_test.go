package vfind

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_LogSearch(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	data := []int32{1, 2, 3, 2, 5, 4, 3, 2}
	_, err := Search(context.Background(), data, Request{End: 7, Step: 1, Target: 2, Limit: NoLimit}, WithLogger(logger))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"msg":"search completed"`)
	assert.Contains(t, out, `"variant":"scalar"`)
	assert.Contains(t, out, `"count":3`)

	buf.Reset()
	_, err = Search(context.Background(), data, Request{End: 7, Step: 3, Variant: Vector}, WithLogger(logger))
	require.Error(t, err)
	assert.Contains(t, buf.String(), `"msg":"search failed"`)
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
}

func TestLogger_Constructors(t *testing.T) {
	assert.NotNil(t, NewLogger(nil))
	assert.NotNil(t, NewJSONLogger(slog.LevelInfo))
	assert.NotNil(t, NewTextLogger(slog.LevelWarn))
	assert.False(t, NoopLogger().Enabled(context.Background(), slog.LevelError))
}

func TestBasicMetricsCollector(t *testing.T) {
	mc := &BasicMetricsCollector{}
	mc.RecordSearch(Scalar, 1, 3, 10*time.Millisecond, nil)
	mc.RecordSearch(Vector, 1, 2, 20*time.Millisecond, nil)
	mc.RecordSearch(Vector, 8, 5, 30*time.Millisecond, nil)
	mc.RecordSearch(Scalar, 1, 0, 40*time.Millisecond, errors.New("boom"))
	mc.RecordEarlyStop(5, 9)

	stats := mc.GetStats()
	assert.Equal(t, int64(4), stats.SearchCount)
	assert.Equal(t, int64(1), stats.SearchErrors)
	assert.Equal(t, (25 * time.Millisecond).Nanoseconds(), stats.SearchAvgNanos)
	assert.Equal(t, int64(1), stats.ScalarSearches)
	assert.Equal(t, int64(1), stats.VectorSearches)
	assert.Equal(t, int64(1), stats.ThreadedSearches)
	assert.Equal(t, int64(10), stats.MatchesReturned)
	assert.Equal(t, int64(1), stats.EarlyStops)

	assert.Zero(t, (&BasicMetricsCollector{}).GetStats().SearchAvgNanos)
}

func TestSearch_MetricsCountPartitionsThatRan(t *testing.T) {
	mc := &BasicMetricsCollector{}
	data := []int32{5, 3, 5, 5, 2, 5}

	// A single stepped position runs inline however many workers are requested.
	out, err := Search(context.Background(), data, Request{Start: 2, End: 2, Step: 1, Target: 5, Limit: NoLimit},
		WithWorkers(DefaultWorkers), WithMetricsCollector(mc))
	require.NoError(t, err)
	require.Len(t, out.Stats.Workers, 1)

	_, err = Search(context.Background(), data, Request{End: 5, Step: 1, Target: 5, Limit: NoLimit},
		WithWorkers(DefaultWorkers), WithMetricsCollector(mc))
	require.NoError(t, err)

	stats := mc.GetStats()
	assert.Equal(t, int64(1), stats.ScalarSearches)
	assert.Equal(t, int64(1), stats.ThreadedSearches)
}

func TestOptions(t *testing.T) {
	o := applyOptions(nil)
	assert.Equal(t, DefaultWorkers, o.workers)
	assert.NotNil(t, o.logger)
	assert.NotNil(t, o.metricsCollector)

	o = applyOptions([]Option{
		WithWorkers(4),
		WithWorkers(0),
		WithLogger(nil),
		WithMetricsCollector(nil),
		WithPollInterval(5 * time.Millisecond),
	})
	assert.Equal(t, 4, o.workers)
	assert.Equal(t, 5*time.Millisecond, o.pollInterval)
	assert.IsType(t, NoopMetricsCollector{}, o.metricsCollector)
}
