// core/fasta/load.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"unicode"

	"palscan/core/nucleotide"
)

// readBuf is the stream reader's buffer; longer lines are read in pieces.
const readBuf = 64 << 10

// Load reads FASTA-like text from r and returns one sequence: header lines
// (leading '>') are dropped, the remaining lines are trimmed, upper-cased and
// concatenated in order. Multiple records are concatenated as well. Symbols
// other than A/C/G/T become N; line length is unbounded.
func Load(ctx context.Context, r io.Reader) ([]byte, error) {
	seq, err := parseStream(ctx, r, make([]byte, 0, 1<<20))
	if err != nil {
		return nil, loadErr("", err)
	}
	return seq, nil
}

// LoadNamed is Load for a possibly compressed stream; name only serves as a
// format hint when the leading bytes are inconclusive.
func LoadNamed(ctx context.Context, r io.Reader, name string) ([]byte, error) {
	dr, err := Decompress(r, name)
	if err != nil {
		return nil, loadErr(name, err)
	}
	defer dr.Close()

	seq, err := parseStream(ctx, dr, make([]byte, 0, 1<<20))
	if err != nil {
		return nil, loadErr(name, err)
	}
	return seq, nil
}

// LoadPath loads the sequence stored at path ("-" is stdin). Compressed inputs
// (gzip, zstd, lz4) are decoded transparently; plain files are memory-mapped
// where the platform allows it.
func LoadPath(ctx context.Context, path string) ([]byte, error) {
	if path != "-" {
		seq, ok, err := loadMapped(ctx, path)
		if err != nil {
			return nil, loadErr(path, err)
		}
		if ok {
			return seq, nil
		}
	}
	rc, err := openReader(path)
	if err != nil {
		return nil, loadErr(path, err)
	}
	defer rc.Close()

	seq, err := parseStream(ctx, rc, make([]byte, 0, 1<<20))
	if err != nil {
		return nil, loadErr(path, err)
	}
	return seq, nil
}

// loadMapped parses a plain regular file straight from a read-only mapping.
// ok=false means the caller should fall back to streaming.
func loadMapped(ctx context.Context, path string) (seq []byte, ok bool, err error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, false, err
	}
	defer fh.Close()

	st, err := fh.Stat()
	if err != nil {
		return nil, false, err
	}
	if !st.Mode().IsRegular() {
		return nil, false, nil
	}
	size := st.Size()
	if size == 0 {
		return []byte{}, true, nil
	}
	if int64(int(size)) != size {
		return nil, false, nil
	}

	data, err := mmapFile(fh, int(size))
	if err != nil {
		// Not fatal: e.g. filesystems without mmap support.
		return nil, false, nil
	}
	defer func() { _ = munmap(data) }()

	if Detect(data[:min(len(data), 4)], path) != None {
		return nil, false, nil
	}
	seq, err = parseBytes(ctx, data, make([]byte, 0, size))
	if err != nil {
		return nil, false, err
	}
	return seq, true, nil
}

// parseStream reads r line by line. A line longer than the reader's buffer
// arrives as several fragments and is appended piecewise, so line length is
// bounded only by memory.
func parseStream(ctx context.Context, r io.Reader, seq []byte) ([]byte, error) {
	br := bufio.NewReaderSize(r, readBuf)
	var ln lineState
	for {
		frag, err := br.ReadSlice('\n')
		if err != nil && err != bufio.ErrBufferFull && err != io.EOF {
			return nil, fmt.Errorf("fasta read: %w", err)
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		seq = ln.add(seq, frag)
		if err != bufio.ErrBufferFull {
			seq = ln.end(seq)
		}
		if err == io.EOF {
			return seq, nil
		}
	}
}

// parseBytes is parseStream over an in-memory buffer; data is never written.
func parseBytes(ctx context.Context, data []byte, seq []byte) ([]byte, error) {
	var ln lineState
	for len(data) > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		var line []byte
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			line, data = data[:i], data[i+1:]
		} else {
			line, data = data, nil
		}
		seq = ln.end(ln.add(seq, line))
	}
	return seq, nil
}

// lineState tracks the line being appended to seq across fragments.
type lineState struct {
	start   int  // len(seq) when the line began
	started bool // a non-space byte has been seen
	header  bool // the line is a '>' header and is dropped
}

func (l *lineState) add(seq, frag []byte) []byte {
	if l.header {
		return seq
	}
	if !l.started {
		l.start = len(seq)
		frag = bytes.TrimLeftFunc(frag, unicode.IsSpace)
		if len(frag) == 0 {
			return seq
		}
		l.started = true
		if frag[0] == '>' {
			l.header = true
			return seq
		}
	}
	return appendSymbols(seq, frag)
}

// end trims trailing whitespace off the finished line and resets l.
func (l *lineState) end(seq []byte) []byte {
	if l.started && !l.header {
		tail := bytes.TrimRightFunc(seq[l.start:], unicode.IsSpace)
		seq = seq[:l.start+len(tail)]
	}
	*l = lineState{}
	return seq
}

// appendSymbols upper-cases frag onto seq; anything that is not a base
// letter or whitespace becomes the wildcard N.
func appendSymbols(seq, frag []byte) []byte {
	for _, c := range frag {
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if nucleotide.IsWildcard(c) && !isSpace(c) {
			c = nucleotide.Wildcard
		}
		seq = append(seq, c)
	}
	return seq
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	}
	return false
}
