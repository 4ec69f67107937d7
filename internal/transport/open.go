// internal/transport/open.go
package transport

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// OpenReader opens path for reading; "-" means stdin. Compressed input is
// detected by the gzip magic number (1F 8B) or a .gz suffix and
// decompressed transparently. BGZF input is plain multistream gzip, so it
// needs no special casing here.
func OpenReader(path string) (io.ReadCloser, error) {
	if path == "-" {
		return sniff(io.NopCloser(os.Stdin), false)
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return sniff(fh, strings.HasSuffix(path, ".gz"))
}

// sniff peeks at the magic bytes rather than seeking, so pipes work.
func sniff(rc io.ReadCloser, forceGzip bool) (io.ReadCloser, error) {
	br := bufio.NewReaderSize(rc, 64*1024)
	sig, _ := br.Peek(2)
	if forceGzip || (len(sig) == 2 && sig[0] == 0x1f && sig[1] == 0x8b) {
		gr, err := gzip.NewReader(br)
		if err != nil {
			_ = rc.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, rc}}, nil
	}
	return &multiReadCloser{Reader: br, closers: []io.Closer{rc}}, nil
}
