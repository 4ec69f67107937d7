// core/trim/trim_test.go
package trim

import (
	"strings"
	"testing"
)

var p20 = Params{Cutoff: 20, Base: DefaultBase}

func TestQualWindow(t *testing.T) {
	tests := []struct {
		name      string
		qual      string
		p         Params
		wantStart int
		wantStop  int
	}{
		{
			name:      "uniform high quality untouched",
			qual:      "IIIIIIIIII", // Q40
			p:         p20,
			wantStart: 0,
			wantStop:  10,
		},
		{
			name:      "low-quality tail cut",
			qual:      "IIIIII!!!!", // four Q0 bases at the 3' end
			p:         p20,
			wantStart: 0,
			wantStop:  6,
		},
		{
			name:      "all low quality collapses",
			qual:      "!!!!!!",
			p:         p20,
			wantStart: 0,
			wantStop:  0,
		},
		{
			name:      "front trimming disabled by default",
			qual:      "!!IIIIII",
			p:         p20,
			wantStart: 0,
			wantStop:  8,
		},
		{
			name:      "front trimming enabled",
			qual:      "!!IIIIII",
			p:         Params{Cutoff: 20, FrontCutoff: 20, Base: DefaultBase},
			wantStart: 2,
			wantStop:  8,
		},
		{
			name:      "front meeting back collapses to empty",
			qual:      "!!!!",
			p:         Params{Cutoff: 20, FrontCutoff: 20, Base: DefaultBase},
			wantStart: 0,
			wantStop:  0,
		},
		{
			name:      "zero cutoff disables quality trimming",
			qual:      "!!!!",
			p:         Params{Base: DefaultBase},
			wantStart: 0,
			wantStop:  4,
		},
		{
			name: "single low base inside high-quality core survives",
			// The running sum goes negative before the walk reaches it.
			qual:      "III!IIIIII",
			p:         p20,
			wantStart: 0,
			wantStop:  10,
		},
	}
	for _, tc := range tests {
		start, stop := QualWindow([]byte(tc.qual), tc.p)
		if start != tc.wantStart || stop != tc.wantStop {
			t.Errorf("%s: QualWindow = [%d,%d), want [%d,%d)",
				tc.name, start, stop, tc.wantStart, tc.wantStop)
		}
	}
}

func TestNWindow(t *testing.T) {
	tests := []struct {
		seq       string
		wantStart int
		wantStop  int
	}{
		{"ACGT", 0, 4},
		{"NNACGT", 2, 6},
		{"ACGTNN", 0, 4},
		{"NACGTN", 1, 5},
		{"NNNN", 0, 0},
		{"", 0, 0},
	}
	for _, tc := range tests {
		start, stop := NWindow([]byte(tc.seq))
		if start != tc.wantStart || stop != tc.wantStop {
			t.Errorf("NWindow(%q) = [%d,%d), want [%d,%d)",
				tc.seq, start, stop, tc.wantStart, tc.wantStop)
		}
	}
}

const illumina = "AGATCGGAAGAGC"

func TestAdapterFindExact(t *testing.T) {
	a := New([]byte(illumina))

	tests := []struct {
		name string
		read string
		want int
	}{
		{
			name: "no occurrence",
			read: "ACGTACGTACGTACGTACGT",
			want: 20,
		},
		{
			name: "full adapter at position 8",
			read: "ACGTACGT" + illumina,
			want: 8,
		},
		{
			name: "full adapter with trailing garbage still found",
			read: "ACGTACGT" + illumina + "TTTT",
			want: 8,
		},
		{
			name: "partial adapter entering the 3' end",
			read: "ACGTACGTACGT" + illumina[:5],
			want: 12,
		},
		{
			name: "adapter only",
			read: illumina,
			want: 0,
		},
	}
	for _, tc := range tests {
		if got := a.Find([]byte(tc.read)); got != tc.want {
			t.Errorf("%s: Find = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestAdapterEmptyNeverTrims(t *testing.T) {
	a := New(nil)
	if got := a.Find([]byte("ACGT")); got != 4 {
		t.Fatalf("Find = %d, want 4", got)
	}
}

func TestAdapterFindFuzzy(t *testing.T) {
	a := NewFuzzy([]byte(illumina), 0.9, 5)

	clean := "ACCTGACCTGACCTGACCTG" // 20 bases, no adapter similarity
	occ := []byte(illumina[:10])    // 10-base adapter prefix at the 3' end

	// Exactly one mismatch in a 10-base overlap: 9 of 10 required matches.
	one := append([]byte(nil), occ...)
	one[4] ^= 2 // C -> A
	if got := a.Find([]byte(clean + string(one))); got != 20 {
		t.Errorf("1 mismatch in 10: Find = %d, want 20", got)
	}

	// Two mismatches in the same window exceed the allowance.
	two := append([]byte(nil), occ...)
	two[4] ^= 2
	two[7] ^= 2
	if got := a.Find([]byte(clean + string(two))); got == 20 {
		t.Errorf("2 mismatches in 10: Find = %d, should not match at 20", got)
	}

	// Candidates closer than minOverlap to the read end are skipped.
	short := clean + illumina[:3]
	if got := a.Find([]byte(short)); got != len(short) {
		t.Errorf("below min overlap: Find = %d, want %d", got, len(short))
	}
}

func TestWindowCombination(t *testing.T) {
	tests := []struct {
		name      string
		seq, qual string
		adapter   *Adapter
		p         Params
		wantStart int
		wantStop  int
	}{
		{
			name:      "clean read passes through",
			seq:       "ACGTACGTAC",
			qual:      "IIIIIIIIII",
			adapter:   New([]byte(illumina)),
			p:         p20,
			wantStart: 0,
			wantStop:  10,
		},
		{
			name:      "all-N read empties regardless of quality",
			seq:       strings.Repeat("N", 10),
			qual:      "IIIIIIIIII",
			adapter:   New([]byte(illumina)),
			p:         p20,
			wantStart: 0,
			wantStop:  0,
		},
		{
			name:      "N tail and low-quality tail combine",
			seq:       "ACGTACGTNN",
			qual:      "IIIIIIII!!",
			adapter:   New([]byte(illumina)),
			p:         p20,
			wantStart: 0,
			wantStop:  8,
		},
		{
			name:      "adapter cut tightens quality stop",
			seq:       "ACGTACGT" + illumina,
			qual:      strings.Repeat("I", 8+len(illumina)),
			adapter:   New([]byte(illumina)),
			p:         p20,
			wantStart: 0,
			wantStop:  8,
		},
		{
			name:      "adapter cut exposes new N tail",
			seq:       "ACGTN" + illumina,
			qual:      strings.Repeat("I", 5+len(illumina)),
			adapter:   New([]byte(illumina)),
			p:         p20,
			wantStart: 0,
			wantStop:  4,
		},
		{
			name:      "leading N advances start",
			seq:       "NNACGTACGT",
			qual:      "IIIIIIIIII",
			adapter:   New([]byte(illumina)),
			p:         p20,
			wantStart: 2,
			wantStop:  10,
		},
		{
			name:      "nil adapter skips adapter trimming",
			seq:       "ACGTACGT" + illumina,
			qual:      strings.Repeat("I", 8+len(illumina)),
			adapter:   nil,
			p:         p20,
			wantStart: 0,
			wantStop:  8 + len(illumina),
		},
	}
	for _, tc := range tests {
		start, stop := Window([]byte(tc.seq), []byte(tc.qual), tc.adapter, tc.p)
		if start != tc.wantStart || stop != tc.wantStop {
			t.Errorf("%s: Window = [%d,%d), want [%d,%d)",
				tc.name, start, stop, tc.wantStart, tc.wantStop)
		}
	}
}

func TestWindowIdempotent(t *testing.T) {
	seq := []byte("ACGTACGTNN" + illumina)
	qual := []byte(strings.Repeat("I", 10) + "!!" + strings.Repeat("I", 11))
	a := New([]byte(illumina))

	start, stop := Window(seq, qual, a, p20)
	ts, tq := seq[start:stop], qual[start:stop]

	start2, stop2 := Window(ts, tq, a, p20)
	if start2 != 0 || stop2 != len(ts) {
		t.Fatalf("second pass trims again: [%d,%d) of %d", start2, stop2, len(ts))
	}
}
