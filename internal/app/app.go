// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"palscan/internal/appcore"
	"palscan/internal/cli"
	"palscan/internal/remote"
	"palscan/internal/version"
	"palscan/internal/writers"
)

// flushOrCode flushes outw and maps the result to an exit code.
func flushOrCode(outw *bufio.Writer, stderr io.Writer, code int) int {
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return appcore.ExitOK
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return appcore.ExitRuntime
	}
	return code
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := cli.NewFlagSet("palscan")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		fs.SetOutput(outw)
		if errors.Is(err, flag.ErrHelp) {
			fs.Usage()
			return flushOrCode(outw, stderr, appcore.ExitOK)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.Usage()
		return flushOrCode(outw, stderr, appcore.ExitUsage)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "palscan version %s\n", version.Version)
		return flushOrCode(outw, stderr, appcore.ExitOK)
	}

	return appcore.Run(parent, stdout, stderr, appcore.Options{
		Input: opts.Input,
		Remote: remote.Config{
			Endpoint: opts.S3Endpoint,
			Insecure: opts.S3Insecure,
			Region:   opts.S3Region,
		},
		Window:          opts.Window,
		Policy:          opts.Policy,
		Threads:         opts.Threads,
		ChunkSize:       opts.ChunkSize,
		Output:          opts.Output,
		Count:           opts.Count,
		CountOnly:       opts.CountOnly,
		NoMatchExitCode: opts.NoMatchExitCode,
		Verbosity:       opts.Verbosity,
		Quiet:           opts.Quiet,
	})
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
