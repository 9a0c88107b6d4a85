// core/engine/engine.go
package engine

import (
	"context"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"golang.org/x/sync/errgroup"

	"palscan/core/palindrome"
)

const (
	// minChunk is the smallest auto-sized work unit, in offsets.
	minChunk = 4096
	// checkEvery is how many offsets are evaluated between ctx checks
	// and progress callbacks.
	checkEvery = 4096
	// chunksPerWorker over-partitions the range so a slow chunk
	// does not leave other workers idle.
	chunksPerWorker = 4
)

// Config holds scan parameters.
type Config struct {
	Workers   int               // goroutines evaluating chunks (>=1)
	WindowLen int               // symbols per window (>=1; even under Bisect)
	Policy    palindrome.Policy // self-complementarity rule
	ChunkSize int               // offsets per work unit; 0 = auto
	Progress  func(n int)       // optional; receives offsets evaluated since the last call
}

// Engine scans sequences with a fixed Config. It is safe for concurrent use.
type Engine struct {
	cfg Config
}

// New validates c and returns an Engine.
func New(c Config) (*Engine, error) {
	if c.Workers < 1 {
		return nil, &ConfigError{Field: "workers", Value: c.Workers, cause: ErrInvalidWorkers}
	}
	if c.WindowLen < 1 {
		return nil, &ConfigError{Field: "window length", Value: c.WindowLen, cause: ErrInvalidWindow}
	}
	if !c.Policy.Valid() {
		return nil, &ConfigError{Field: "policy", Value: int(c.Policy), cause: ErrInvalidPolicy}
	}
	if c.Policy == palindrome.Bisect && c.WindowLen%2 != 0 {
		return nil, &ConfigError{Field: "window length", Value: c.WindowLen, cause: ErrOddWindow}
	}
	if c.ChunkSize < 0 {
		c.ChunkSize = 0
	}
	return &Engine{cfg: c}, nil
}

// Match reports whether w is reported as a hit: it must be
// informative and self-complementary under the configured policy.
func (e *Engine) Match(w palindrome.Window) bool {
	if palindrome.IsUninformative(w) {
		return false
	}
	return e.cfg.Policy.Match(w)
}

// Offsets returns the number of valid window offsets in a sequence of length n.
func (e *Engine) Offsets(n int) int {
	if e.cfg.WindowLen > n {
		return 0
	}
	return n - e.cfg.WindowLen + 1
}

// Scan returns every hit in seq in ascending offset order. The result is the
// same for any Workers or ChunkSize.
func (e *Engine) Scan(ctx context.Context, seq []byte) ([]Hit, error) {
	bm, err := e.ScanOffsets(ctx, seq)
	if err != nil {
		return nil, err
	}
	hits := make([]Hit, 0, bm.GetCardinality())
	it := bm.Iterator()
	for it.HasNext() {
		off := int(it.Next())
		hits = append(hits, Hit{Offset: off, Window: palindrome.Window(seq[off : off+e.cfg.WindowLen])})
	}
	return hits, nil
}

// Count returns the number of hits without materializing them.
func (e *Engine) Count(ctx context.Context, seq []byte) (uint64, error) {
	bm, err := e.ScanOffsets(ctx, seq)
	if err != nil {
		return 0, err
	}
	return bm.GetCardinality(), nil
}

// ScanOffsets evaluates every valid offset and returns the qualifying ones
// as a bitmap. Chunks are private to their goroutine until the merge.
func (e *Engine) ScanOffsets(ctx context.Context, seq []byte) (*roaring64.Bitmap, error) {
	n := e.Offsets(len(seq))
	if n == 0 {
		return roaring64.New(), nil
	}

	chunk := e.chunkSize(n)
	nChunks := (n + chunk - 1) / chunk
	parts := make([]*roaring64.Bitmap, nChunks)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.Workers)
	for i := 0; i < nChunks; i++ {
		lo := i * chunk
		hi := min(lo+chunk, n)
		g.Go(func() error {
			bm, err := e.scanRange(gctx, seq, lo, hi)
			if err != nil {
				return err
			}
			parts[i] = bm
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := roaring64.New()
	for _, p := range parts {
		out.Or(p)
	}
	return out, nil
}

func (e *Engine) chunkSize(n int) int {
	if e.cfg.ChunkSize > 0 {
		return e.cfg.ChunkSize
	}
	want := chunksPerWorker * e.cfg.Workers
	c := (n + want - 1) / want
	if c < minChunk {
		c = minChunk
	}
	return c
}

// scanRange evaluates offsets [lo, hi).
func (e *Engine) scanRange(ctx context.Context, seq []byte, lo, hi int) (*roaring64.Bitmap, error) {
	bm := roaring64.New()
	L := e.cfg.WindowLen
	for start := lo; start < hi; start += checkEvery {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		end := min(start+checkEvery, hi)
		for off := start; off < end; off++ {
			if e.Match(palindrome.Window(seq[off : off+L])) {
				bm.Add(uint64(off))
			}
		}
		if e.cfg.Progress != nil {
			e.cfg.Progress(end - start)
		}
	}
	return bm, nil
}
