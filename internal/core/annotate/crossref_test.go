package annotate

import "testing"

func TestCrossReference_Containment(t *testing.T) {
	ptms := []PTM{
		{Type: Phosphorylation, Residue: "S", Pos: 5},
		{Type: AcetylUbiquitin, Residue: "K", Pos: 10},
	}
	domains := []DomainMatch{
		{Name: "Kinase", Start: 3, End: 7},
		{Name: "Zipper", Start: 5, End: 9},
	}

	got := CrossReference(ptms, domains)
	if len(got) != 2 {
		t.Fatalf("got %d mappings, want 2: %+v", len(got), got)
	}
	if got[0].PTM != "Phosphorylation (S5)" || got[0].Domain != "Kinase" {
		t.Fatalf("unexpected first mapping: %+v", got[0])
	}
	if got[1].PTM != "Phosphorylation (S5)" || got[1].Domain != "Zipper" {
		t.Fatalf("unexpected second mapping: %+v", got[1])
	}
}

func TestCrossReference_BoundsInclusive(t *testing.T) {
	domains := []DomainMatch{{Name: "D", Start: 4, End: 6}}
	for _, tc := range []struct {
		pos  int
		want int
	}{
		{3, 0}, {4, 1}, {5, 1}, {6, 1}, {7, 0},
	} {
		got := CrossReference([]PTM{{Type: Phosphorylation, Residue: "S", Pos: tc.pos}}, domains)
		if len(got) != tc.want {
			t.Fatalf("pos %d: got %d mappings, want %d", tc.pos, len(got), tc.want)
		}
	}
}

func TestCrossReference_Empty(t *testing.T) {
	if got := CrossReference(nil, []DomainMatch{{Name: "D", Start: 1, End: 5}}); len(got) != 0 {
		t.Fatalf("expected no mappings, got %+v", got)
	}
	if got := CrossReference([]PTM{{Type: Phosphorylation, Residue: "S", Pos: 1}}, nil); len(got) != 0 {
		t.Fatalf("expected no mappings, got %+v", got)
	}
}
