// core/fastq/scan.go
package fastq

import (
	"bytes"
	"errors"
	"fmt"
)

// ErrIncomplete reports that the buffer ends before the record does. The
// caller compacts, refills and retries, or stops at true end of input (a
// trailing partial record is dropped, not an error).
var ErrIncomplete = errors.New("fastq: incomplete record")

// nextLine returns the offset just past the terminator of the line
// starting at off, or -1 when the terminator lies beyond the buffer.
func nextLine(buf []byte, off int) int {
	i := bytes.IndexByte(buf[off:], '\n')
	if i < 0 {
		return -1
	}
	return off + i + 1
}

// Scan locates the four-line record starting at pos. On success it returns
// the locator and the offset of the next record. It returns ErrIncomplete
// when any of the four terminators lies beyond the buffer, and a hard
// error when a complete record's header does not begin with '@': that is
// corrupt input, never skipped.
func Scan(buf []byte, pos int) (Record, int, error) {
	rec := Record{NameStart: pos}
	p := nextLine(buf, pos)
	if p < 0 {
		return rec, pos, ErrIncomplete
	}
	rec.SeqStart = p
	if p = nextLine(buf, p); p < 0 {
		return rec, pos, ErrIncomplete
	}
	rec.PlusStart = p
	if p = nextLine(buf, p); p < 0 {
		return rec, pos, ErrIncomplete
	}
	rec.QualStart = p
	if p = nextLine(buf, p); p < 0 {
		return rec, pos, ErrIncomplete
	}
	rec.End = p

	if buf[rec.NameStart] != '@' {
		return rec, pos, fmt.Errorf("fastq: header line %q does not begin with '@'", rec.Name(buf))
	}
	rec.Stop = rec.SeqLen()
	return rec, p, nil
}
