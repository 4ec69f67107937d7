// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"trimfq/internal/version"
)

// Defaults mirror the original adaptor-trimming tool.
const (
	DefaultAdapter    = "AGATCGGAAGAGC"
	DefaultQualCutoff = 20
	DefaultBufferSize = 256 * 1024
	DefaultMinMatch   = 0.9
	DefaultMinOverlap = 5
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input / output
	Input  string
	PInput string // second mate file (paired-end)
	Out    string
	POut   string // second output file (paired-end)

	// Trimming parameters
	Adapter         string
	QualCutoff      int
	QualCutoffFront int
	Fuzzy           bool
	MinMatch        float64
	MinOverlap      int

	// Performance
	Threads    int
	ZipThreads int
	BufferSize int

	// Behavior
	PairSync bool
	Zip      bool
	Verbose  bool

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: adapter, quality and N trimming for FASTQ reads

Version: %s

Usage: %s [options] <reads.fq[.gz]> [mates.fq[.gz]]
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// Parse is the top-level call for CLI parsing.
func Parse(argv []string) (Options, error) { return ParseArgs(NewFlagSet("trimfq"), argv) }

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Input / output
	fs.StringVar(&opt.Out, "o", "", "output file, '-' for stdout [*]")
	fs.StringVar(&opt.Out, "out", "", "output file, '-' for stdout [*]")
	fs.StringVar(&opt.POut, "pout", "", "second output file for paired-end reads")

	// Trimming parameters
	fs.StringVar(&opt.Adapter, "adapter", DefaultAdapter, "adapter sequence, empty disables adapter trimming ["+DefaultAdapter+"]")
	fs.IntVar(&opt.QualCutoff, "qual-cutoff", DefaultQualCutoff, "3' quality score cutoff, 0 disables [20]")
	fs.IntVar(&opt.QualCutoffFront, "qual-cutoff-front", 0, "5' quality score cutoff, 0 disables [0]")
	fs.BoolVar(&opt.Fuzzy, "fuzzy", false, "mismatch-tolerant adapter matching [false]")
	fs.Float64Var(&opt.MinMatch, "min-match", DefaultMinMatch, "fuzzy: minimum fraction of matching bases [0.9]")
	fs.IntVar(&opt.MinOverlap, "min-overlap", DefaultMinOverlap, "fuzzy: minimum read/adapter overlap [5]")

	// Performance
	fs.IntVar(&opt.Threads, "threads", 0, "trimming worker threads (0 = all CPUs) [0]")
	fs.IntVar(&opt.ZipThreads, "zip-threads", 0, "BGZF compression threads (0 = same as --threads) [0]")
	fs.IntVar(&opt.BufferSize, "buffer-size", DefaultBufferSize, "input buffer capacity in bytes; must exceed the longest record [262144]")

	// Behavior
	fs.BoolVar(&opt.PairSync, "pair-sync", false, "keep mate files line-aligned with placeholder reads [false]")
	fs.BoolVar(&opt.Zip, "zip", false, "BGZF-compress output regardless of suffix [false]")
	fs.BoolVar(&opt.Verbose, "verbose", false, "report effective settings to stderr [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	switch args := fs.Args(); len(args) {
	case 1:
		opt.Input = args[0]
	case 2:
		opt.Input, opt.PInput = args[0], args[1]
	default:
		return opt, errors.New("expected one FASTQ input file, or two for paired-end")
	}

	// Validation
	if opt.Out == "" {
		return opt, errors.New("--out is required")
	}
	if (opt.PInput == "") != (opt.POut == "") {
		return opt, errors.New("paired-end requires both a second input file and --pout")
	}
	if opt.PInput != "" {
		if opt.Out == "-" || opt.POut == "-" {
			return opt, errors.New("paired-end outputs cannot be stdout")
		}
		if opt.Out == opt.POut {
			return opt, errors.New("--out and --pout must differ")
		}
	}
	if opt.PairSync && opt.PInput == "" {
		return opt, errors.New("--pair-sync requires paired-end inputs")
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be ≥ 0")
	}
	if opt.ZipThreads < 0 {
		return opt, errors.New("--zip-threads must be ≥ 0")
	}
	if opt.BufferSize < 1 {
		return opt, errors.New("--buffer-size must be positive")
	}
	if opt.QualCutoff < 0 || opt.QualCutoffFront < 0 {
		return opt, errors.New("quality cutoffs must be ≥ 0")
	}
	if opt.Fuzzy {
		if !(opt.MinMatch > 0 && opt.MinMatch <= 1) {
			return opt, errors.New("--min-match must be in (0, 1]")
		}
		if opt.MinOverlap < 1 {
			return opt, errors.New("--min-overlap must be ≥ 1")
		}
	}
	return opt, nil
}
