package resource

import (
	"context"
	"io"
)

// RateLimitedWriter throttles writes to the controller's output rate.
//
// Writes larger than the limiter burst are passed on in burst-sized chunks,
// so a long index listing shows up progressively instead of after one long
// wait. Written counts the bytes accepted by the underlying writer.
type RateLimitedWriter struct {
	ctx     context.Context
	w       io.Writer
	rc      *Controller
	written int64
}

// NewRateLimitedWriter wraps w. A nil controller or one without an output
// limit makes it a plain pass-through.
func NewRateLimitedWriter(ctx context.Context, w io.Writer, rc *Controller) *RateLimitedWriter {
	return &RateLimitedWriter{
		ctx: ctx,
		w:   w,
		rc:  rc,
	}
}

func (w *RateLimitedWriter) Write(p []byte) (int, error) {
	chunk := w.rc.IOBurst()
	if chunk <= 0 {
		chunk = len(p)
	}

	total := 0
	for total < len(p) {
		end := min(total+chunk, len(p))
		if err := w.rc.AcquireIO(w.ctx, end-total); err != nil {
			return total, err
		}
		n, err := w.w.Write(p[total:end])
		total += n
		w.written += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Written returns the number of bytes passed to the underlying writer.
func (w *RateLimitedWriter) Written() int64 {
	return w.written
}
