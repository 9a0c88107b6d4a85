// core/engine/engine_test.go
package engine

import (
	"context"
	"math/rand"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"palscan/core/palindrome"
)

func mustNew(t *testing.T, c Config) *Engine {
	t.Helper()
	e, err := New(c)
	require.NoError(t, err)
	return e
}

func offsets(hits []Hit) []int {
	out := make([]int, len(hits))
	for i, h := range hits {
		out[i] = h.Offset
	}
	return out
}

func randomSeq(seed int64, n int) []byte {
	r := rand.New(rand.NewSource(seed))
	const alphabet = "ACGTACGTACGTN"
	seq := make([]byte, n)
	for i := range seq {
		seq[i] = alphabet[r.Intn(len(alphabet))]
	}
	// Long N runs exercise the low-information filter.
	copy(seq[n/3:], strings.Repeat("N", 64))
	return seq
}

func TestScan_KnownSequence(t *testing.T) {
	eng := mustNew(t, Config{Workers: 1, WindowLen: 4})
	hits, err := eng.Scan(context.Background(), []byte("ACATGAGGC"))
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, 1, hits[0].Offset)
	assert.Equal(t, "CATG", hits[0].Window.String())
}

func TestScan_PairwiseKnownSequence(t *testing.T) {
	eng := mustNew(t, Config{Workers: 2, WindowLen: 4, Policy: palindrome.Pairwise})
	hits, err := eng.Scan(context.Background(), []byte("ACATGAGGC"))
	require.NoError(t, err)
	assert.Equal(t, []int{1}, offsets(hits))
}

func TestScan_WindowLongerThanSequence(t *testing.T) {
	eng := mustNew(t, Config{Workers: 4, WindowLen: 12})
	hits, err := eng.Scan(context.Background(), []byte("ACGT"))
	require.NoError(t, err)
	assert.Empty(t, hits)

	hits, err = eng.Scan(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestScan_WindowEqualsSequence(t *testing.T) {
	eng := mustNew(t, Config{Workers: 3, WindowLen: 8})

	hits, err := eng.Scan(context.Background(), []byte("ATAGCTAT"))
	require.NoError(t, err)
	assert.Equal(t, []int{0}, offsets(hits))

	hits, err = eng.Scan(context.Background(), []byte("ATAGCTAA"))
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestScan_AllNExcluded(t *testing.T) {
	seq := []byte("NNNNNNNNACGTNNNNNNNN")
	for _, p := range []palindrome.Policy{palindrome.Bisect, palindrome.Pairwise} {
		eng := mustNew(t, Config{Workers: 2, WindowLen: 4, Policy: p})
		hits, err := eng.Scan(context.Background(), seq)
		require.NoError(t, err)
		for _, h := range hits {
			assert.Falsef(t, palindrome.IsUninformative(h.Window), "%s: all-N window at %d", p, h.Offset)
		}
		// Every window touching ACGT is informative; only ACGT itself pairs up.
		assert.Equal(t, []int{8}, offsets(hits), p.String())
	}
}

func TestScan_OddPairwiseNeedsNCentre(t *testing.T) {
	eng := mustNew(t, Config{Workers: 1, WindowLen: 5, Policy: palindrome.Pairwise})
	hits, err := eng.Scan(context.Background(), []byte("GATNATCC"))
	require.NoError(t, err)
	assert.Equal(t, []int{1}, offsets(hits))
	assert.Equal(t, "ATNAT", hits[0].Window.String())
}

func TestScan_DeterministicAcrossWorkers(t *testing.T) {
	seq := randomSeq(42, 60_000)
	var want []Hit
	for _, workers := range []int{1, 2, 8} {
		for _, chunk := range []int{0, 1, 777} {
			eng := mustNew(t, Config{Workers: workers, WindowLen: 6, ChunkSize: chunk})
			got, err := eng.Scan(context.Background(), seq)
			require.NoError(t, err)
			if want == nil {
				want = got
				require.NotEmpty(t, want)
				continue
			}
			require.Equalf(t, want, got, "workers=%d chunk=%d", workers, chunk)
		}
	}
	for i := 1; i < len(want); i++ {
		require.Less(t, want[i-1].Offset, want[i].Offset)
	}
}

func TestScan_MatchesBruteForce(t *testing.T) {
	seq := randomSeq(9, 20_000)
	const L = 4
	eng := mustNew(t, Config{Workers: 4, WindowLen: L, ChunkSize: 100})
	got, err := eng.Scan(context.Background(), seq)
	require.NoError(t, err)

	var want []int
	for i := 0; i+L <= len(seq); i++ {
		w := palindrome.Window(seq[i : i+L])
		if !palindrome.IsUninformative(w) && palindrome.IsPalindrome(w) {
			want = append(want, i)
		}
	}
	assert.Equal(t, want, offsets(got))
}

func TestScan_WindowIsView(t *testing.T) {
	seq := []byte("ACATGAGGC")
	eng := mustNew(t, Config{Workers: 1, WindowLen: 4})
	hits, err := eng.Scan(context.Background(), seq)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Same(t, &seq[1], &hits[0].Window[0])
}

func TestCount(t *testing.T) {
	seq := randomSeq(5, 50_000)
	eng := mustNew(t, Config{Workers: 3, WindowLen: 8})
	hits, err := eng.Scan(context.Background(), seq)
	require.NoError(t, err)
	n, err := eng.Count(context.Background(), seq)
	require.NoError(t, err)
	assert.Equal(t, uint64(len(hits)), n)
}

func TestScan_ProgressCoversAllOffsets(t *testing.T) {
	seq := randomSeq(1, 30_001)
	var seen atomic.Int64
	eng := mustNew(t, Config{Workers: 4, WindowLen: 10, ChunkSize: 5000, Progress: func(n int) { seen.Add(int64(n)) }})
	_, err := eng.Scan(context.Background(), seq)
	require.NoError(t, err)
	assert.Equal(t, int64(eng.Offsets(len(seq))), seen.Load())
}

func TestScan_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	eng := mustNew(t, Config{Workers: 2, WindowLen: 10})
	hits, err := eng.Scan(ctx, randomSeq(2, 100_000))
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, hits)
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"zero workers", Config{Workers: 0, WindowLen: 10}, ErrInvalidWorkers},
		{"zero window", Config{Workers: 1, WindowLen: 0}, ErrInvalidWindow},
		{"odd bisect", Config{Workers: 1, WindowLen: 7}, ErrOddWindow},
		{"bad policy", Config{Workers: 1, WindowLen: 4, Policy: palindrome.Policy(5)}, ErrInvalidPolicy},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.cfg)
			require.ErrorIs(t, err, tc.want)
			var ce *ConfigError
			require.ErrorAs(t, err, &ce)
		})
	}

	_, err := New(Config{Workers: 1, WindowLen: 7, Policy: palindrome.Pairwise})
	assert.NoError(t, err)
}
