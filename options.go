package vfind

import (
	"log/slog"
	"time"

	"github.com/hupe1980/vfind/internal/search"
	"github.com/hupe1980/vfind/resource"
)

// DefaultWorkers is the number of workers of a multithreaded search.
const DefaultWorkers = 8

type options struct {
	workers          int
	pollInterval     time.Duration
	logger           *Logger
	metricsCollector MetricsCollector
	resources        *resource.Controller
}

// Option configures a search.
type Option func(*options)

// WithWorkers sets the number of workers. 1 runs the scan on the calling
// goroutine without a watcher. Values below 1 are ignored.
//
// The range is never split into more partitions than it has stepped
// positions.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.workers = n
		}
	}
}

// WithPollInterval sets the sleep between two early-stop snapshots.
// Shorter intervals stop sooner after the limit is reached and cost more
// wakeups. Non-positive values select the default of 1ms.
func WithPollInterval(d time.Duration) Option {
	return func(o *options) {
		o.pollInterval = d
	}
}

// WithLogger configures structured logging.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := vfind.NewJSONLogger(slog.LevelDebug)
//	out, _ := vfind.Search(ctx, data, req, vfind.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector.
// Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithResourceController bounds the memory of match buffers and results and
// the number of concurrent searches sharing rc.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.resources = rc
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		workers:          DefaultWorkers,
		pollInterval:     search.DefaultPollInterval,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
