package appshell

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_PassesThrough(t *testing.T) {
	var gotArgv []string
	code := Run(context.Background(), func(_ context.Context, argv []string, _, _ io.Writer) int {
		gotArgv = argv
		return 3
	}, []string{"-w", "4", "x.fa"}, io.Discard, io.Discard)
	assert.Equal(t, 3, code)
	assert.Equal(t, []string{"-w", "4", "x.fa"}, gotArgv)
}

func TestRun_CanceledSuccessBecomes130(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ok := func(context.Context, []string, io.Writer, io.Writer) int { return 0 }
	assert.Equal(t, exitCanceled, Run(ctx, ok, nil, io.Discard, io.Discard))

	// A real failure keeps its own code.
	fail := func(context.Context, []string, io.Writer, io.Writer) int { return 2 }
	assert.Equal(t, 2, Run(ctx, fail, nil, io.Discard, io.Discard))
}
