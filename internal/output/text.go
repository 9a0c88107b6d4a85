// internal/output/text.go
package output

import (
	"bufio"
	"io"
	"strconv"

	"palscan/core/engine"
)

// appendHit renders "<offset>\t<window>\n" without going through fmt.
func appendHit(dst []byte, h engine.Hit) []byte {
	dst = strconv.AppendInt(dst, int64(h.Offset), 10)
	dst = append(dst, '\t')
	dst = append(dst, h.Window...)
	return append(dst, '\n')
}

// StreamText prints hits as they arrive and returns how many were written.
// On error it keeps draining in so the sender never blocks.
func StreamText(w io.Writer, in <-chan engine.Hit) (int, error) {
	bw := bufio.NewWriterSize(w, 64<<10)
	var (
		line []byte
		n    int
		err  error
	)
	for h := range in {
		if err != nil {
			continue
		}
		line = appendHit(line[:0], h)
		if _, err = bw.Write(line); err == nil {
			n++
		}
	}
	if err != nil {
		return n, err
	}
	return n, bw.Flush()
}

// WriteCount prints the trailing total line.
func WriteCount(w io.Writer, n int) error {
	_, err := io.WriteString(w, CountPrefix+"\t"+strconv.Itoa(n)+"\n")
	return err
}
