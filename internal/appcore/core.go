// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"palscan/core/engine"
	"palscan/core/fasta"
	"palscan/core/palindrome"
	"palscan/internal/cmdutil"
	"palscan/internal/output"
	"palscan/internal/progress"
	"palscan/internal/remote"
	"palscan/internal/runutil"
	"palscan/internal/writers"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitUsage    = 2
	ExitRuntime  = 3
	ExitCanceled = 130
)

// Options is everything one scan run needs.
type Options struct {
	Input  string
	Remote remote.Config

	Window    int
	Policy    palindrome.Policy
	Threads   int
	ChunkSize int

	Output          string
	Count           bool
	CountOnly       bool
	NoMatchExitCode int

	Verbosity int
	Quiet     bool
}

// Run loads the input, scans it and writes hits to stdout. It returns the
// process exit code; diagnostics go to stderr.
func Run(parent context.Context, stdout, stderr io.Writer, o Options) int {
	log := cmdutil.NewLogger(stderr, o.Verbosity, o.Quiet)

	var rep *progress.Reporter
	eng, err := engine.New(engine.Config{
		Workers:   o.Threads,
		WindowLen: o.Window,
		Policy:    o.Policy,
		ChunkSize: o.ChunkSize,
		Progress: func(n int) {
			if rep != nil {
				rep.Add(n)
			}
		},
	})
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return ExitUsage
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	start := time.Now()
	seq, err := load(ctx, o)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return ExitCanceled
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return ExitRuntime
	}
	log.Info("sequence loaded", "input", o.Input, "length", len(seq), "elapsed", time.Since(start))

	offsets := eng.Offsets(len(seq))
	if offsets == 0 {
		cmdutil.Warnf(stderr, o.Quiet, "window length %d exceeds sequence length %d; nothing to scan", o.Window, len(seq))
	}
	_, chunkWarns := runutil.ValidateChunking(o.ChunkSize, offsets, o.Threads)
	for _, w := range append(runutil.ValidateThreads(o.Threads, offsets), chunkWarns...) {
		cmdutil.Warnf(stderr, o.Quiet, "%s", w)
	}
	if log.Enabled(ctx, slog.LevelInfo) {
		rep = progress.New(log, offsets, progress.DefaultInterval)
	}

	start = time.Now()
	var (
		hits  []engine.Hit
		total int
	)
	if o.CountOnly {
		var n uint64
		n, err = eng.Count(ctx, seq)
		total = int(n)
	} else {
		hits, err = eng.Scan(ctx, seq)
		total = len(hits)
	}
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return ExitCanceled
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return ExitRuntime
	}
	evaluated := int64(offsets)
	if rep != nil {
		evaluated = rep.Done()
	}
	log.Debug("scan complete",
		"offsets", offsets,
		"evaluated", evaluated,
		"hits", total,
		"workers", o.Threads,
		"policy", o.Policy.String(),
		"elapsed", time.Since(start),
	)

	if o.CountOnly {
		return emitCount(stdout, stderr, o, total)
	}
	return emit(ctx, stdout, stderr, o, hits)
}

// emitCount writes the lone total line of a count-only run.
func emitCount(stdout, stderr io.Writer, o Options, total int) int {
	if err := output.WriteCount(stdout, total); writers.IsBrokenPipe(err) {
		return ExitOK
	} else if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitRuntime
	}
	if total == 0 {
		return o.NoMatchExitCode
	}
	return ExitOK
}

func load(ctx context.Context, o Options) ([]byte, error) {
	if !remote.IsURI(o.Input) {
		return fasta.LoadPath(ctx, o.Input)
	}
	client, err := remote.NewClient(o.Remote)
	if err != nil {
		return nil, fasta.NewLoadError(o.Input, err)
	}
	rc, err := remote.Open(ctx, client, o.Input)
	if err != nil {
		return nil, fasta.NewLoadError(o.Input, err)
	}
	defer rc.Close()
	return fasta.LoadNamed(ctx, rc, o.Input)
}

func emit(ctx context.Context, stdout, stderr io.Writer, o Options, hits []engine.Hit) int {
	outw := bufio.NewWriter(stdout)
	inCh, writeErr := writers.StartHitWriter(outw, o.Output, o.Count, o.Threads*4)

	total, perr := cmdutil.Emit(ctx, hits, func(h engine.Hit) error {
		select {
		case inCh <- h:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})
	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return ExitOK
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return ExitRuntime
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return ExitRuntime
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return ExitCanceled
		}
		fmt.Fprintln(stderr, perr)
		return ExitRuntime
	}
	if total == 0 {
		return o.NoMatchExitCode
	}
	return ExitOK
}
