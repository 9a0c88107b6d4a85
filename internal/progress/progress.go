// Package progress turns scan progress callbacks into throttled log lines.
package progress

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// DefaultInterval is the minimum spacing between progress lines.
const DefaultInterval = 2 * time.Second

// Reporter counts evaluated offsets and logs at most once per interval.
// Add is safe for concurrent use by scan workers.
type Reporter struct {
	log   *slog.Logger
	total int64
	done  atomic.Int64
	lim   *rate.Limiter
}

// New returns a Reporter for a scan of total offsets.
// interval <= 0 uses DefaultInterval.
func New(log *slog.Logger, total int, interval time.Duration) *Reporter {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Reporter{
		log:   log,
		total: int64(total),
		lim:   rate.NewLimiter(rate.Every(interval), 1),
	}
}

// Add records n more evaluated offsets.
func (r *Reporter) Add(n int) {
	done := r.done.Add(int64(n))
	switch prev := done - int64(n); {
	case prev >= r.total:
		return
	case done >= r.total:
		// completion is always reported
	case !r.lim.Allow():
		return
	}
	r.log.Log(context.Background(), slog.LevelInfo, "scan progress",
		"done", done,
		"total", r.total,
		"percent", percent(done, r.total),
	)
}

// Done returns the number of offsets recorded so far.
func (r *Reporter) Done() int64 { return r.done.Load() }

func percent(done, total int64) float64 {
	if total <= 0 {
		return 100
	}
	return float64(done*1000/total) / 10
}
