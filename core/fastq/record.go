// core/fastq/record.go
package fastq

// Record locates one four-line FASTQ record inside a shared buffer. It is
// a view: offsets only, valid until the buffer is next compacted. The
// retained base window [Start, Stop) is relative to the sequence line;
// Scan initializes it to the whole sequence.
type Record struct {
	NameStart int // start of the '@' header line
	SeqStart  int // start of the base-call line
	PlusStart int // start of the '+' separator line
	QualStart int // start of the quality line
	End       int // one past the quality line terminator

	Start int
	Stop  int
}

// SeqLen returns the length of the untrimmed sequence line.
func (r *Record) SeqLen() int { return r.PlusStart - r.SeqStart - 1 }

// Name returns the header line within buf, without its terminator.
func (r *Record) Name(buf []byte) []byte { return buf[r.NameStart : r.SeqStart-1] }

// Seq returns the base-call line within buf, without its terminator.
func (r *Record) Seq(buf []byte) []byte { return buf[r.SeqStart : r.PlusStart-1] }

// Qual returns the quality line within buf, without its terminator.
func (r *Record) Qual(buf []byte) []byte { return buf[r.QualStart : r.End-1] }

// Bytes returns the record's full serialized span within buf.
func (r *Record) Bytes(buf []byte) []byte { return buf[r.NameStart:r.End] }
