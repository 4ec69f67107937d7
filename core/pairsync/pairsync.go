// core/pairsync/pairsync.go

// Package pairsync trims two mate FASTQ streams in lockstep, keeping
// their line counts aligned for downstream tools that require paired
// files to stay synchronized. When one mate of a pair survives trimming
// and the other does not, the empty mate is replaced by a single-base
// placeholder read instead of being dropped; a pair in which both mates
// are trimmed away is dropped from both outputs.
package pairsync

import (
	"bufio"
	"fmt"
	"io"

	"trimfq-core/trim"
)

// Placeholder mate written when the real one is trimmed away entirely.
var (
	placeholderSeq  = []byte{'N'}
	placeholderQual = []byte{'B'}
)

// mate reads one stream record by record. A record is four newline
// terminated lines; a missing terminator (truncated tail) ends the
// stream the same way EOF does.
type mate struct {
	br   *bufio.Reader
	name []byte
	seq  []byte
	qual []byte
}

func newMate(r io.Reader) *mate {
	return &mate{br: bufio.NewReaderSize(r, 64*1024)}
}

// line reads one newline-terminated line and strips the terminator. ok is
// false at EOF or on a truncated final line.
func (m *mate) line() (buf []byte, ok bool, err error) {
	buf, err = m.br.ReadBytes('\n')
	if err == io.EOF {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return buf[:len(buf)-1], true, nil
}

// next reads the four lines of one record. ok is false when the stream
// ends, even mid-record.
func (m *mate) next() (ok bool, err error) {
	if m.name, ok, err = m.line(); !ok || err != nil {
		return ok, err
	}
	if m.seq, ok, err = m.line(); !ok || err != nil {
		return ok, err
	}
	if _, ok, err = m.line(); !ok || err != nil { // '+' separator, discarded
		return ok, err
	}
	if m.qual, ok, err = m.line(); !ok || err != nil {
		return ok, err
	}
	return true, nil
}

func writeRecord(w *bufio.Writer, name, seq, qual []byte, start, stop int) {
	_, _ = w.Write(name)
	_ = w.WriteByte('\n')
	_, _ = w.Write(seq[start:stop])
	_ = w.WriteByte('\n')
	_, _ = w.WriteString("+\n")
	_, _ = w.Write(qual[start:stop])
	_ = w.WriteByte('\n')
}

// Run trims both mate streams with the same decision engine until either
// stream is exhausted. Write errors surface at Flush (bufio keeps the
// first error sticky).
func Run(in1, in2 io.Reader, out1, out2 io.Writer, a *trim.Adapter, p trim.Params) error {
	m1, m2 := newMate(in1), newMate(in2)
	w1 := bufio.NewWriterSize(out1, 64*1024)
	w2 := bufio.NewWriterSize(out2, 64*1024)

	for {
		ok, err := m1.next()
		if err != nil {
			return fmt.Errorf("pairsync: read mate 1: %w", err)
		}
		if !ok {
			break
		}
		ok, err = m2.next()
		if err != nil {
			return fmt.Errorf("pairsync: read mate 2: %w", err)
		}
		if !ok {
			break
		}

		a1, b1 := trim.Window(m1.seq, m1.qual, a, p)
		a2, b2 := trim.Window(m2.seq, m2.qual, a, p)
		good1, good2 := a1 < b1, a2 < b2
		if !good1 && !good2 {
			continue
		}

		if good1 {
			writeRecord(w1, m1.name, m1.seq, m1.qual, a1, b1)
		} else {
			writeRecord(w1, m1.name, placeholderSeq, placeholderQual, 0, 1)
		}
		if good2 {
			writeRecord(w2, m2.name, m2.seq, m2.qual, a2, b2)
		} else {
			writeRecord(w2, m2.name, placeholderSeq, placeholderQual, 0, 1)
		}
	}

	if err := w1.Flush(); err != nil {
		return fmt.Errorf("pairsync: write mate 1: %w", err)
	}
	if err := w2.Flush(); err != nil {
		return fmt.Errorf("pairsync: write mate 2: %w", err)
	}
	return nil
}
