// Command vfind generates a random array and times the scalar, vector and
// multithreaded searches for one value.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/hupe1980/vfind"
	"github.com/hupe1980/vfind/dataset"
	"github.com/hupe1980/vfind/resource"
)

type config struct {
	print     bool
	size      int
	min       int
	max       int
	target    string
	limit     int
	workers   int
	seed      int64
	poll      time.Duration
	printRate int64
	logLevel  string
}

func main() {
	var cfg config
	flag.BoolVar(&cfg.print, "print", false, "print the matching indices")
	flag.IntVar(&cfg.size, "size", 1e9, "number of values in the array")
	flag.IntVar(&cfg.min, "min", 0, "smallest generated value")
	flag.IntVar(&cfg.max, "max", 100, "largest generated value")
	flag.StringVar(&cfg.target, "target", "", "value to seek (random in [min, max] if empty)")
	flag.IntVar(&cfg.limit, "limit", vfind.NoLimit, "maximum matches of the multithreaded search (-1 for all)")
	flag.IntVar(&cfg.workers, "workers", vfind.DefaultWorkers, "workers of the multithreaded search")
	flag.Int64Var(&cfg.seed, "seed", time.Now().UnixNano(), "random seed")
	flag.DurationVar(&cfg.poll, "poll", time.Millisecond, "early-stop poll interval")
	flag.Int64Var(&cfg.printRate, "print-rate", 0, "index output throughput in bytes/s (0 = unlimited)")
	flag.StringVar(&cfg.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cfg config, stdout io.Writer) error {
	if cfg.size < 1 {
		return fmt.Errorf("size must be positive, got %d", cfg.size)
	}
	minVal, err := toInt32("min", cfg.min)
	if err != nil {
		return err
	}
	maxVal, err := toInt32("max", cfg.max)
	if err != nil {
		return err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.logLevel)); err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	rc := resource.NewController(resource.Config{
		IOLimitBytesPerSec: cfg.printRate,
	})
	out := bufio.NewWriter(resource.NewRateLimitedWriter(ctx, stdout, rc))
	defer out.Flush()

	rng := dataset.NewRNG(cfg.seed)

	fmt.Fprintf(out, "Creating a random input array with %d values between %d and %d...\n", cfg.size, minVal, maxVal)
	out.Flush()
	data := rng.Ints(cfg.size, minVal, maxVal)

	target := rng.Int32Between(minVal, maxVal)
	if cfg.target != "" {
		v, err := strconv.ParseInt(cfg.target, 10, 32)
		if err != nil {
			return fmt.Errorf("target: %w", err)
		}
		target = int32(v)
	}
	fmt.Fprintf(out, "Done.\nValue to seek: %d.\n", target)
	fmt.Fprintf(out, "SIMD: %s.\n", vfind.ISA())

	end := len(data) - 1
	opts := []vfind.Option{
		vfind.WithLogLevel(level),
		vfind.WithPollInterval(cfg.poll),
	}

	strategies := []struct {
		name string
		req  vfind.Request
		opts []vfind.Option
	}{
		{"scalar", vfind.Request{End: end, Step: 1, Target: target, Variant: vfind.Scalar, Limit: vfind.NoLimit}, []vfind.Option{vfind.WithWorkers(1)}},
		{"vector", vfind.Request{End: end, Step: vfind.Lanes, Target: target, Variant: vfind.Vector, Limit: vfind.NoLimit}, []vfind.Option{vfind.WithWorkers(1)}},
		{"multithreaded", vfind.Request{End: end, Step: vfind.Lanes, Target: target, Variant: vfind.Vector, Limit: cfg.limit}, []vfind.Option{vfind.WithWorkers(cfg.workers)}},
	}

	for _, s := range strategies {
		fmt.Fprintf(out, "\nRunning %s version...\n", s.name)
		out.Flush()

		start := time.Now()
		res, err := vfind.Search(ctx, data, s.req, append(opts, s.opts...)...)
		elapsed := time.Since(start)
		if err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}

		fmt.Fprintf(out, "Done. Execution time: %dµs\n", elapsed.Microseconds())
		fmt.Fprintf(out, "Found %d valid indices.\n", res.Count)
		if cfg.print {
			if err := printIndices(out, res.Indices); err != nil {
				return err
			}
		}
	}
	return nil
}

func toInt32(name string, v int) (int32, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, fmt.Errorf("%s %d out of int32 range", name, v)
	}
	return int32(v), nil
}

func printIndices(w *bufio.Writer, indices []int) error {
	if _, err := w.WriteString("Valid indices: "); err != nil {
		return err
	}
	buf := make([]byte, 0, 24)
	for _, i := range indices {
		buf = strconv.AppendInt(buf[:0], int64(i), 10)
		buf = append(buf, ' ')
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return w.WriteByte('\n')
}
