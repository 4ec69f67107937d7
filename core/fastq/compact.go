// core/fastq/compact.go
package fastq

// Compact rewrites the record in place to its trimmed form: header,
// trimmed bases, a bare "+\n" separator, trimmed quality. Text after the
// '+' on the separator line is discarded.
//
// Every move is a same-buffer copy whose destination never lies above its
// source (trimming only shrinks), and both stay inside the record's own
// original [NameStart, End) span. Neighbouring records are untouched,
// which is what makes per-record compaction safe to run concurrently.
func Compact(buf []byte, rec *Record) {
	n := rec.Stop - rec.Start

	copy(buf[rec.SeqStart:rec.SeqStart+n], buf[rec.SeqStart+rec.Start:rec.SeqStart+rec.Stop])
	p := rec.SeqStart + n
	buf[p] = '\n'
	buf[p+1] = '+'
	buf[p+2] = '\n'

	q := p + 3
	copy(buf[q:q+n], buf[rec.QualStart+rec.Start:rec.QualStart+rec.Stop])
	buf[q+n] = '\n'

	rec.End = q + n + 1
}
