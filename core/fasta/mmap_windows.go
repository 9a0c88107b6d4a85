//go:build windows

package fasta

import (
	"errors"
	"os"
)

var errMmapUnsupported = errors.New("mmap not supported on this platform")

func mmapFile(*os.File, int) ([]byte, error) { return nil, errMmapUnsupported }

func munmap([]byte) error { return nil }
