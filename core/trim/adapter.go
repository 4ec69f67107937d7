// core/trim/adapter.go
package trim

import "math"

// Adapter is an immutable adapter sequence plus its matching policy. The
// default policy is exact/prefix matching driven by a KMP
// longest-proper-prefix table; the fuzzy policy tolerates mismatches
// subject to a minimum match fraction over a minimum overlap.
type Adapter struct {
	seq        []byte
	sp         []int
	fuzzy      bool
	minFrac    float64
	minOverlap int
}

// New returns an exact/prefix-matching adapter. An empty sequence yields
// an adapter that never trims.
func New(seq []byte) *Adapter {
	a := &Adapter{seq: append([]byte(nil), seq...)}
	a.sp = prefixTable(a.seq)
	return a
}

// NewFuzzy returns a mismatch-tolerant adapter: an alignment of overlap j
// needs ceil(minFrac*j) matching bases, and candidate starts closer than
// minOverlap to the read end are never considered.
func NewFuzzy(seq []byte, minFrac float64, minOverlap int) *Adapter {
	a := New(seq)
	a.fuzzy = true
	a.minFrac = minFrac
	a.minOverlap = minOverlap
	return a
}

// Len returns the adapter length.
func (a *Adapter) Len() int { return len(a.seq) }

// prefixTable computes the KMP longest-proper-prefix function of p.
func prefixTable(p []byte) []int {
	sp := make([]int, len(p))
	k := 0
	for i := 1; i < len(p); i++ {
		for k > 0 && p[k] != p[i] {
			k = sp[k-1]
		}
		if p[k] == p[i] {
			k++
		}
		sp[i] = k
	}
	return sp
}

// Find returns the position in read where the adapter begins, or
// len(read) when no occurrence is found (nothing to trim).
func (a *Adapter) Find(read []byte) int {
	if len(a.seq) == 0 {
		return len(read)
	}
	if a.fuzzy {
		return a.findFuzzy(read)
	}
	return a.findExact(read)
}

// findExact is a single left-to-right KMP scan. A full occurrence wins;
// failing that, the cut is the start of the longest read-suffix that is an
// adapter prefix, catching a partial adapter entering the 3' end.
func (a *Adapter) findExact(read []byte) int {
	n := len(a.seq)
	j := 0
	for i := 0; i < len(read); i++ {
		for j > 0 && a.seq[j] != read[i] {
			j = a.sp[j-1]
		}
		if a.seq[j] == read[i] {
			j++
		}
		if j == n {
			return i - n + 1
		}
	}
	return len(read) - j
}

// findFuzzy tries each candidate start left to right. For overlap
// jLim = min(len(read)-i, len(adapter)) the allowance is
// jLim - ceil(minFrac*jLim) mismatches; the inner comparison aborts as
// soon as the allowance is exceeded. The first start within its allowance
// is the adapter position.
func (a *Adapter) findFuzzy(read []byte) int {
	m := len(read)
	for i := 0; i+a.minOverlap <= m; i++ {
		jLim := m - i
		if jLim > len(a.seq) {
			jLim = len(a.seq)
		}
		allowed := jLim - int(math.Ceil(a.minFrac*float64(jLim)))
		mm := 0
		for j := 0; j < jLim; j++ {
			if read[i+j] != a.seq[j] {
				if mm++; mm > allowed {
					break
				}
			}
		}
		if mm <= allowed {
			return i
		}
	}
	return m
}
