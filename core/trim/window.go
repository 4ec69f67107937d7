// core/trim/window.go
package trim

// NWindow returns the window left after stripping runs of the ambiguous
// base 'N' from both ends. An all-N read yields (0, 0).
func NWindow(seq []byte) (int, int) {
	start := 0
	for start < len(seq) && seq[start] == 'N' {
		start++
	}
	if start == len(seq) {
		return 0, 0
	}
	stop := len(seq)
	for stop > 0 && seq[stop-1] == 'N' {
		stop--
	}
	return start, stop
}

// Window combines the three trimming signals into the final retained
// [start, stop) window. The order is fixed and affects the result:
// quality and N windows first, the adapter search restricted to what
// survives them, then a second N pass over the shortened range in case
// the adapter cut exposed a new N tail. The result may be empty but
// start <= stop always holds; there is no error path.
func Window(seq, qual []byte, a *Adapter, p Params) (int, int) {
	qStart, qStop := QualWindow(qual, p)
	nStart, nStop := NWindow(seq)

	stop := qStop
	if nStop < stop {
		stop = nStop
	}
	if a != nil {
		if cut := a.Find(seq[:stop]); cut < stop {
			stop = cut
		}
	}
	if _, ns := NWindow(seq[:stop]); ns < stop {
		stop = ns
	}

	start := qStart
	if nStart > start {
		start = nStart
	}
	if start > stop {
		start = stop
	}
	return start, stop
}
