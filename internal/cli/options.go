// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"palscan/core/palindrome"
	"palscan/internal/cliutil"
	"palscan/internal/output"
)

// Defaults.
const (
	DefaultWindow  = 10
	DefaultThreads = 1
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	Input      string
	S3Endpoint string
	S3Region   string
	S3Insecure bool

	// Scan
	Window int
	Policy palindrome.Policy

	// Performance
	Threads   int
	ChunkSize int

	// Output
	Output          string
	Count           bool
	CountOnly       bool
	NoMatchExitCode int

	// Misc
	Verbosity int
	Quiet     bool
	Version   bool
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Positionals may be mixed with flags; exactly one input is required.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var (
		opt    Options
		help   bool
		policy string
	)

	// Input
	fs.StringVar(&opt.Input, "input", "", "sequence file or '-'")
	fs.StringVar(&opt.Input, "i", "", "alias of --input")
	fs.StringVar(&opt.S3Endpoint, "s3-endpoint", "", "S3-compatible endpoint for s3:// inputs")
	fs.StringVar(&opt.S3Region, "s3-region", "", "S3 region")
	fs.BoolVar(&opt.S3Insecure, "s3-insecure", false, "use plain HTTP for the S3 endpoint [false]")

	// Scan
	fs.IntVar(&opt.Window, "window", DefaultWindow, "window length [10]")
	fs.IntVar(&opt.Window, "w", DefaultWindow, "alias of --window")
	fs.StringVar(&policy, "policy", palindrome.Bisect.String(), "palindrome test: bisect | pairwise [bisect]")

	// Performance
	fs.IntVar(&opt.Threads, "threads", DefaultThreads, "worker goroutines [1]")
	fs.IntVar(&opt.Threads, "t", DefaultThreads, "alias of --threads")
	fs.IntVar(&opt.ChunkSize, "chunk-size", 0, "offsets per work unit (0=auto) [0]")

	// Output
	fs.StringVar(&opt.Output, "output", output.FormatText, "output: text | jsonl | json [text]")
	fs.StringVar(&opt.Output, "o", output.FormatText, "alias of --output")
	fs.BoolVar(&opt.Count, "count", false, "append a total-count line [false]")
	fs.BoolVar(&opt.CountOnly, "count-only", false, "print only the total-count line [false]")
	fs.IntVar(&opt.NoMatchExitCode, "no-match-exit-code", 0, "exit code when no hits are found [0]")

	// Misc
	fs.IntVar(&opt.Verbosity, "verbosity", 0, "log level: 0=warn 1=info 2=debug [0]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	inputs, err := cliutil.ExpandPositionals(posArgs)
	if err != nil {
		return opt, err
	}
	if opt.Input != "" {
		inputs = append([]string{opt.Input}, inputs...)
	}
	switch len(inputs) {
	case 0:
		return opt, errors.New("an input sequence file is required")
	case 1:
		opt.Input = inputs[0]
	default:
		return opt, fmt.Errorf("exactly one input is required, got %d: %v", len(inputs), inputs)
	}

	if opt.Policy, err = palindrome.ParsePolicy(policy); err != nil {
		return opt, err
	}
	return opt, Validate(opt)
}

// Validate applies the CLI invariants that can be checked before any input is read.
func Validate(o Options) error {
	if o.Window < 1 {
		return errors.New("--window must be ≥ 1")
	}
	if o.Policy == palindrome.Bisect && o.Window%2 != 0 {
		return fmt.Errorf("--window %d is odd; the bisect policy needs an even window (or use --policy pairwise)", o.Window)
	}
	if o.Threads < 1 {
		return errors.New("--threads must be ≥ 1")
	}
	if o.ChunkSize < 0 {
		return errors.New("--chunk-size must be ≥ 0")
	}
	switch o.Output {
	case output.FormatText, output.FormatJSONL, output.FormatJSON:
	default:
		return fmt.Errorf("invalid --output %q", o.Output)
	}
	if o.Count && o.Output != output.FormatText {
		return errors.New("--count is only supported with --output text")
	}
	if o.CountOnly && o.Output != output.FormatText {
		return errors.New("--count-only is only supported with --output text")
	}
	if o.NoMatchExitCode < 0 || o.NoMatchExitCode > 255 {
		return errors.New("--no-match-exit-code must be between 0 and 255")
	}
	if o.Verbosity < 0 {
		return errors.New("--verbosity must be ≥ 0")
	}
	return nil
}
