// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"

	"golang.org/x/sync/errgroup"

	"trimfq-core/pairsync"
	"trimfq-core/pipeline"
	"trimfq-core/trim"
	"trimfq/internal/cli"
	"trimfq/internal/transport"
	"trimfq/internal/version"
)

// RunContext parses argv, wires the transports and runs the engine.
// Exit codes: 0 success, 1 runtime failure, 2 usage error, 130 interrupted.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("trimfq")
	fs.SetOutput(stderr)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(stdout, "trimfq version %s\n", version.Version)
		return 0
	}

	threads := opts.Threads
	if threads == 0 {
		threads = runtime.NumCPU()
	}
	// Compression workers are budgeted separately from trimming workers.
	zipThreads := opts.ZipThreads
	if zipThreads == 0 {
		zipThreads = threads
	}

	adapter := newAdapter(opts)
	params := trim.Params{
		Cutoff:      opts.QualCutoff,
		FrontCutoff: opts.QualCutoffFront,
		Base:        trim.DefaultBase,
	}
	pcfg := pipeline.Config{Threads: threads, BufferSize: opts.BufferSize}

	if opts.Verbose {
		printSettings(stderr, opts, threads, zipThreads)
	}

	if opts.PairSync {
		err = runPairSync(opts, zipThreads, adapter, params)
	} else {
		// Mate files without --pair-sync are trimmed independently,
		// each through its own engine run.
		g, ctx := errgroup.WithContext(parent)
		g.Go(func() error {
			return runOne(ctx, opts.Input, opts.Out, stdout, opts.Zip, zipThreads, pcfg, adapter, params)
		})
		if opts.PInput != "" {
			g.Go(func() error {
				return runOne(ctx, opts.PInput, opts.POut, stdout, opts.Zip, zipThreads, pcfg, adapter, params)
			})
		}
		err = g.Wait()
	}

	switch {
	case err == nil:
		return 0
	case transport.IsBrokenPipe(err):
		return 0
	case errors.Is(err, context.Canceled):
		return 130
	default:
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func newAdapter(opts cli.Options) *trim.Adapter {
	if opts.Adapter == "" {
		return nil
	}
	if opts.Fuzzy {
		return trim.NewFuzzy([]byte(opts.Adapter), opts.MinMatch, opts.MinOverlap)
	}
	return trim.New([]byte(opts.Adapter))
}

// runOne streams a single file through the engine.
func runOne(ctx context.Context, in, out string, stdout io.Writer, zip bool, zipThreads int, cfg pipeline.Config, a *trim.Adapter, p trim.Params) error {
	r, err := transport.OpenReader(in)
	if err != nil {
		return err
	}
	defer func() { _ = r.Close() }()

	w, err := transport.OpenWriter(out, stdout, zip, zipThreads)
	if err != nil {
		return err
	}
	bw := bufio.NewWriterSize(w, 64*1024)

	if err := pipeline.Run(ctx, cfg, r, bw, a, p); err != nil {
		_ = w.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

// runPairSync trims both mate files in lockstep with placeholder
// substitution. The record-level logic is sequential, so only the
// compressors benefit from extra threads here.
func runPairSync(opts cli.Options, zipThreads int, a *trim.Adapter, p trim.Params) error {
	r1, err := transport.OpenReader(opts.Input)
	if err != nil {
		return err
	}
	defer func() { _ = r1.Close() }()
	r2, err := transport.OpenReader(opts.PInput)
	if err != nil {
		return err
	}
	defer func() { _ = r2.Close() }()

	w1, err := transport.OpenWriter(opts.Out, nil, opts.Zip, zipThreads)
	if err != nil {
		return err
	}
	w2, err := transport.OpenWriter(opts.POut, nil, opts.Zip, zipThreads)
	if err != nil {
		_ = w1.Close()
		return err
	}

	if err := pairsync.Run(r1, r2, w1, w2, a, p); err != nil {
		_ = w1.Close()
		_ = w2.Close()
		return err
	}
	if err := w1.Close(); err != nil {
		_ = w2.Close()
		return err
	}
	return w2.Close()
}

func printSettings(stderr io.Writer, opts cli.Options, threads, zipThreads int) {
	_, _ = fmt.Fprintf(stderr, "input file: %s\n", opts.Input)
	_, _ = fmt.Fprintf(stderr, "output file: %s\n", opts.Out)
	if opts.PInput != "" {
		_, _ = fmt.Fprintf(stderr, "input file2: %s\n", opts.PInput)
		_, _ = fmt.Fprintf(stderr, "output file2: %s\n", opts.POut)
	}
	_, _ = fmt.Fprintf(stderr, "quality score cutoff: %d\n", opts.QualCutoff)
	if opts.QualCutoffFront > 0 {
		_, _ = fmt.Fprintf(stderr, "front quality score cutoff: %d\n", opts.QualCutoffFront)
	}
	_, _ = fmt.Fprintf(stderr, "adapter sequence: %s\n", opts.Adapter)
	if opts.Fuzzy {
		_, _ = fmt.Fprintf(stderr, "fuzzy matching: min match %.2f, min overlap %d\n", opts.MinMatch, opts.MinOverlap)
	}
	_, _ = fmt.Fprintf(stderr, "threads: %d (compression: %d)\n", threads, zipThreads)
	_, _ = fmt.Fprintf(stderr, "detected cpu cores: %d\n", runtime.NumCPU())
	_, _ = fmt.Fprintf(stderr, "buffer size: %d\n", opts.BufferSize)
}
