package annotate

import (
	"testing"

	"protscan/internal/core/sequence"
)

func TestScanPTMs_Basic(t *testing.T) {
	got := ScanPTMs(sequence.Unchecked("MSTYK"), true)
	want := []PTM{
		{Type: Phosphorylation, Residue: "S", Pos: 2},
		{Type: Phosphorylation, Residue: "T", Pos: 3},
		{Type: Phosphorylation, Residue: "Y", Pos: 4},
		{Type: AcetylUbiquitin, Residue: "K", Pos: 5},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d sites, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("site %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestScanPTMs_Glycosylation(t *testing.T) {
	cases := []struct {
		seq  string
		want []int // glycosylation positions
	}{
		{"NAS", []int{1}},
		{"NAT", []int{1}},
		{"NPS", nil},      // X = proline kills the sequon
		{"NAA", nil},      // third residue not S/T
		{"AAN", nil},      // sequon runs past the end
		{"NA", nil},       // too short
		{"NASNAT", []int{1, 4}},
	}
	for _, tc := range cases {
		var glyco []int
		for _, p := range ScanPTMs(sequence.Unchecked(tc.seq), true) {
			if p.Type == NGlycosylation {
				glyco = append(glyco, p.Pos)
			}
		}
		if len(glyco) != len(tc.want) {
			t.Fatalf("%s: glyco sites %v, want %v", tc.seq, glyco, tc.want)
		}
		for i := range tc.want {
			if glyco[i] != tc.want[i] {
				t.Fatalf("%s: glyco sites %v, want %v", tc.seq, glyco, tc.want)
			}
		}
	}
}

func TestScanPTMs_GlycosylationDisabled(t *testing.T) {
	for _, p := range ScanPTMs(sequence.Unchecked("NASNAT"), false) {
		if p.Type == NGlycosylation {
			t.Fatalf("glycosylation site emitted while disabled: %+v", p)
		}
	}
}

func TestScanPTMs_AscendingPositions(t *testing.T) {
	got := ScanPTMs(sequence.Unchecked("KNASYTKS"), true)
	for i := 1; i < len(got); i++ {
		if got[i].Pos < got[i-1].Pos {
			t.Fatalf("positions out of order: %+v", got)
		}
	}
}

func TestScanPTMs_NoSites(t *testing.T) {
	if got := ScanPTMs(sequence.Unchecked("AGLVIP"), true); len(got) != 0 {
		t.Fatalf("expected no sites, got %+v", got)
	}
}
