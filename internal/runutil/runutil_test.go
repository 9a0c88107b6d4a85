package runutil

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateThreads(t *testing.T) {
	assert.Empty(t, ValidateThreads(1, 1000))
	assert.Len(t, ValidateThreads(runtime.NumCPU()+1, 1<<30), 1)
	assert.Len(t, ValidateThreads(2, 1), 1)
	// No offsets: nothing to compare against.
	assert.Empty(t, ValidateThreads(1, 0))
}

func TestValidateChunking(t *testing.T) {
	// auto
	cs, w := ValidateChunking(0, 1000, 4)
	assert.Zero(t, cs)
	assert.Empty(t, w)

	// too small
	cs, w = ValidateChunking(10, 100_000, 4)
	assert.Equal(t, 10, cs)
	assert.Len(t, w, 1)

	// one chunk for everything
	cs, w = ValidateChunking(5000, 1000, 4)
	assert.Equal(t, 5000, cs)
	assert.Len(t, w, 1)

	// single thread: one chunk is fine
	_, w = ValidateChunking(5000, 1000, 1)
	assert.Empty(t, w)

	// happy path
	cs, w = ValidateChunking(4096, 1_000_000, 8)
	assert.Equal(t, 4096, cs)
	assert.Empty(t, w)
}
