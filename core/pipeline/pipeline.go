// core/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"trimfq-core/arena"
	"trimfq-core/fastq"
	"trimfq-core/trim"
)

// DefaultBufferSize is the arena capacity used when Config leaves it zero.
const DefaultBufferSize = 256 * 1024

// Config controls one engine run.
type Config struct {
	Threads    int // trim+compact worker goroutines (0 or 1 = sequential)
	BufferSize int // arena capacity in bytes; must exceed the longest record
}

// Run streams FASTQ records from r to w, trimming each one with the given
// adapter and quality parameters. Records are emitted in input order for
// any worker count. A trailing partial record at end of input is dropped
// silently; a record that cannot fit in the arena is an error. ctx is
// honoured between batches: workers always run to completion.
func Run(ctx context.Context, cfg Config, r io.Reader, w io.Writer, a *trim.Adapter, p trim.Params) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	if cfg.BufferSize < 1 {
		cfg.BufferSize = DefaultBufferSize
	}

	ar := arena.New(cfg.BufferSize)
	batch := make([]fastq.Record, 0, 1024)

	for {
		ar.Compact()
		if _, err := ar.Fill(r); err != nil {
			return fmt.Errorf("pipeline: read: %w", err)
		}
		exhausted := ar.Filled() < ar.Cap()

		// Collect every complete record in this fill.
		buf := ar.Bytes()
		pos := 0
		batch = batch[:0]
		for {
			rec, next, err := fastq.Scan(buf, pos)
			if err == fastq.ErrIncomplete {
				break
			}
			if err != nil {
				return err
			}
			batch = append(batch, rec)
			pos = next
		}
		ar.SetCursor(pos)

		if len(batch) == 0 {
			if exhausted {
				return nil
			}
			if ar.Filled() == ar.Cap() {
				return fmt.Errorf("pipeline: record longer than the %d-byte buffer; increase the buffer size", ar.Cap())
			}
			continue
		}

		dispatch(cfg.Threads, buf, batch, a, p)

		for i := range batch {
			if _, err := w.Write(batch[i].Bytes(buf)); err != nil {
				return fmt.Errorf("pipeline: write: %w", err)
			}
		}

		if exhausted {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

// dispatch fans Decide+Compact over the batch. Workers take strided index
// subsets, so each mutates only its own records' disjoint spans and the
// shared buffer needs no locking.
func dispatch(threads int, buf []byte, batch []fastq.Record, a *trim.Adapter, p trim.Params) {
	if threads > len(batch) {
		threads = len(batch)
	}
	if threads == 1 {
		trimRange(buf, batch, 0, 1, a, p)
		return
	}
	var g errgroup.Group
	for wk := 0; wk < threads; wk++ {
		wk := wk
		g.Go(func() error {
			trimRange(buf, batch, wk, threads, a, p)
			return nil
		})
	}
	_ = g.Wait()
}

func trimRange(buf []byte, batch []fastq.Record, first, stride int, a *trim.Adapter, p trim.Params) {
	for i := first; i < len(batch); i += stride {
		rec := &batch[i]
		rec.Start, rec.Stop = trim.Window(rec.Seq(buf), rec.Qual(buf), a, p)
		fastq.Compact(buf, rec)
	}
}
