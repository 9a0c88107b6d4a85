// internal/cli/usage.go
package cli

import (
	"flag"
	"fmt"

	"palscan/internal/version"
)

// Usage installs the help text on fs.
func Usage(fs *flag.FlagSet, name string) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – reverse-complement palindrome scanner\n\n", name)
		fmt.Fprintln(out, "License: MIT")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintf(out, "Usage:\n  %s [flags] <input.fa|input.fa.gz|-|s3://bucket/key>\n", name)

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -i, --input path            Sequence file (FASTA-like; gz/zst/lz4 ok) or '-' for STDIN")
		fmt.Fprintln(out, "      --s3-endpoint host      S3-compatible endpoint for s3:// inputs")
		fmt.Fprintf(out, "      --s3-region string      S3 region [%s]\n", def("s3-region"))
		fmt.Fprintf(out, "      --s3-insecure           Use plain HTTP for the S3 endpoint [%s]\n", def("s3-insecure"))

		fmt.Fprintln(out, "\nScan:")
		fmt.Fprintf(out, "  -w, --window int            Window length [%s]\n", def("window"))
		fmt.Fprintf(out, "      --policy string         Palindrome test: bisect | pairwise [%s]\n", def("policy"))

		fmt.Fprintln(out, "\nPerformance:")
		fmt.Fprintf(out, "  -t, --threads int           Worker goroutines (≥1) [%s]\n", def("threads"))
		fmt.Fprintf(out, "      --chunk-size int        Offsets per work unit (0=auto) [%s]\n", def("chunk-size"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         Output: text | jsonl | json [%s]\n", def("output"))
		fmt.Fprintf(out, "      --count                 Append a total-count line (text) [%s]\n", def("count"))
		fmt.Fprintf(out, "      --count-only            Print only the total-count line (text) [%s]\n", def("count-only"))
		fmt.Fprintf(out, "      --no-match-exit-code int  Exit code when no hits are found [%s]\n", def("no-match-exit-code"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "      --verbosity int         Log level: 0=warn 1=info 2=debug [%s]\n", def("verbosity"))
		fmt.Fprintf(out, "  -q, --quiet                 Suppress non-essential warnings [%s]\n", def("quiet"))
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
