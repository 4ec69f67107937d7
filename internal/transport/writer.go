// internal/transport/writer.go
package transport

import (
	"io"
	"os"
	"strings"

	"github.com/biogo/hts/bgzf"
)

// writeCloser closes its closers in order; the compressor comes before
// the file so the BGZF EOF block is flushed to disk.
type writeCloser struct {
	io.Writer
	closers []io.Closer
}

func (w *writeCloser) Close() error {
	var err error
	for _, c := range w.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// OpenWriter opens path for writing; "-" means the given stdout writer.
// A .gz suffix or the zip flag selects BGZF output; workers sizes the
// compressor's own goroutine pool, which is budgeted separately from the
// record-trimming workers. Close is mandatory: it flushes the final block
// and the BGZF end-of-file marker.
func OpenWriter(path string, stdout io.Writer, zip bool, workers int) (io.WriteCloser, error) {
	if workers < 1 {
		workers = 1
	}
	var (
		w       io.Writer
		closers []io.Closer
	)
	if path == "-" {
		w = stdout
	} else {
		fh, err := os.Create(path)
		if err != nil {
			return nil, err
		}
		w = fh
		closers = append(closers, fh)
	}
	if zip || strings.HasSuffix(path, ".gz") {
		zw := bgzf.NewWriter(w, workers)
		w = zw
		closers = append([]io.Closer{zw}, closers...)
	}
	return &writeCloser{Writer: w, closers: closers}, nil
}
