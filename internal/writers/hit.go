// internal/writers/hit.go
package writers

import (
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"

	"palscan/core/engine"
	"palscan/internal/output"
)

// StartHitWriter spins up a writer goroutine for engine.Hit items in the given
// format. Hits must be sent in the order they should appear. With count set,
// text output ends with a total line.
func StartHitWriter(out io.Writer, format string, count bool, bufSize int) (chan<- engine.Hit, <-chan error) {
	if format == output.FormatJSONL {
		return StartHitJSONLWriter(out, bufSize)
	}
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan engine.Hit, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		switch format {
		case output.FormatText:
			var n int
			n, err = output.StreamText(out, in)
			if err == nil && count {
				err = output.WriteCount(out, n)
			}

		case output.FormatJSON:
			var buf []engine.Hit
			for h := range in {
				buf = append(buf, h)
			}
			err = output.WriteJSON(out, buf)

		default:
			for range in {
			}
			err = fmt.Errorf("unknown hit format %q (no writer registered)", format)
		}
		errCh <- err
	}()

	return in, errCh
}

// IsBrokenPipe reports whether err means the reader went away (e.g. `| head`).
// Such errors end output early but are not failures.
func IsBrokenPipe(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe) || errors.Is(err, os.ErrClosed)
}
