// internal/runutil/runutil.go
package runutil

import (
	"fmt"
	"runtime"
)

// minUsefulChunk is the smallest --chunk-size worth its scheduling overhead.
const minUsefulChunk = 256

// ValidateThreads returns warnings for a thread count that cannot help:
// more threads than CPUs, or more threads than there are offsets to scan.
func ValidateThreads(threads, offsets int) []string {
	var warns []string
	if n := runtime.NumCPU(); threads > n {
		warns = append(warns, fmt.Sprintf("--threads %d exceeds the %d available CPUs", threads, n))
	}
	if offsets > 0 && threads > offsets {
		warns = append(warns, fmt.Sprintf("--threads %d exceeds the %d offsets to scan", threads, offsets))
	}
	return warns
}

// ValidateChunking decides the effective chunk size and returns warnings.
// Rules:
//   - --chunk-size <= 0 → auto (0)
//   - --chunk-size below minUsefulChunk is kept but warned about
//   - --chunk-size >= offsets with threads > 1 → one chunk; warn that only one worker runs
func ValidateChunking(chunkSize, offsets, threads int) (int, []string) {
	if chunkSize <= 0 {
		return 0, nil
	}
	var warns []string
	if chunkSize < minUsefulChunk {
		warns = append(warns, fmt.Sprintf("--chunk-size %d is very small; scheduling overhead may dominate", chunkSize))
	}
	if offsets > 0 && chunkSize >= offsets && threads > 1 {
		warns = append(warns, fmt.Sprintf("--chunk-size %d covers all %d offsets; only one worker will run", chunkSize, offsets))
	}
	return chunkSize, warns
}
