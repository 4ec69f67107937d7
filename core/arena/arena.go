// core/arena/arena.go
package arena

import "io"

// Arena is a fixed-capacity byte buffer that is refilled and compacted in
// place. cursor counts consumed bytes and filled counts valid bytes;
// 0 <= cursor <= filled <= Cap() holds at all times.
//
// The capacity must exceed the longest serialized record in the input.
// That is a configuration contract: the arena itself cannot detect a
// violation, seeing only bytes (the pipeline fails fast when a full arena
// yields no complete record).
type Arena struct {
	buf    []byte
	cursor int
	filled int
}

// New allocates an arena of the given capacity.
func New(capacity int) *Arena {
	if capacity < 1 {
		capacity = 1
	}
	return &Arena{buf: make([]byte, capacity)}
}

// Bytes returns the valid region of the buffer. The slice is invalidated
// by the next Compact.
func (a *Arena) Bytes() []byte { return a.buf[:a.filled] }

// Cap returns the fixed capacity.
func (a *Arena) Cap() int { return len(a.buf) }

// Filled returns the number of valid bytes.
func (a *Arena) Filled() int { return a.filled }

// Cursor returns the number of consumed bytes.
func (a *Arena) Cursor() int { return a.cursor }

// SetCursor marks everything before pos as consumed.
func (a *Arena) SetCursor(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > a.filled {
		pos = a.filled
	}
	a.cursor = pos
}

// Compact moves the unconsumed range [cursor, filled) to the front of the
// buffer and resets the cursor, freeing the tail for the next Fill.
func (a *Arena) Compact() {
	if a.cursor == 0 {
		return
	}
	a.filled = copy(a.buf, a.buf[a.cursor:a.filled])
	a.cursor = 0
}

// Fill reads from r into [filled, Cap()) until the buffer is full or the
// source is exhausted. Exhaustion is observable afterwards as
// Filled() < Cap(); Fill returns an error only for real I/O failures.
func (a *Arena) Fill(r io.Reader) (int, error) {
	if a.filled == len(a.buf) {
		return 0, nil
	}
	n, err := io.ReadFull(r, a.buf[a.filled:])
	a.filled += n
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return n, nil
	}
	return n, err
}
