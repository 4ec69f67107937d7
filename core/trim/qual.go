// core/trim/qual.go
package trim

// DefaultBase is the Sanger / Illumina 1.8+ quality encoding offset.
const DefaultBase = 33

// Params holds the quality-trim settings. Cutoff and FrontCutoff are Phred
// scores; Base is the encoding offset added to every stored quality byte.
// A zero cutoff disables the corresponding end.
type Params struct {
	Cutoff      int // 3' cutoff
	FrontCutoff int // 5' cutoff; 0 disables front trimming
	Base        int
}

// backCut walks the quality bytes from the 3' end inward accumulating
// limit-q per base, and cuts at the position of the maximal running sum.
// The walk aborts the moment the sum goes negative, so a high-quality
// core is never entered.
func backCut(qual []byte, limit int) int {
	cut := len(qual)
	s, best := 0, 0
	for i := len(qual) - 1; i >= 0; i-- {
		s += limit - int(qual[i])
		if s < 0 {
			break
		}
		if s > best {
			best = s
			cut = i
		}
	}
	return cut
}

// frontCut mirrors backCut from the 5' end.
func frontCut(qual []byte, limit int) int {
	cut := 0
	s, best := 0, 0
	for i := 0; i < len(qual); i++ {
		s += limit - int(qual[i])
		if s < 0 {
			break
		}
		if s > best {
			best = s
			cut = i + 1
		}
	}
	return cut
}

// QualWindow returns the [start, stop) window kept by quality trimming
// alone. A front cut that meets or passes the back cut collapses the
// window to (0, 0): the whole read is discarded.
func QualWindow(qual []byte, p Params) (int, int) {
	stop := len(qual)
	if p.Cutoff > 0 {
		stop = backCut(qual, p.Cutoff+p.Base)
	}
	start := 0
	if p.FrontCutoff > 0 {
		start = frontCut(qual, p.FrontCutoff+p.Base)
	}
	if start >= stop {
		return 0, 0
	}
	return start, stop
}
