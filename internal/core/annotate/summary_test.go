package annotate

import "testing"

func TestSummarize_NoDomains(t *testing.T) {
	got := Summarize(nil)
	if got != "No known domains identified. Protein might be intrinsically disordered." {
		t.Fatalf("got %q", got)
	}
}

func TestSummarize_DistinctCategoriesFirstSeen(t *testing.T) {
	domains := []DomainMatch{
		{Name: "A", Function: "Signaling"},
		{Name: "B", Function: "Structural"},
		{Name: "C", Function: "Signaling"},
	}
	got := Summarize(domains)
	want := "This protein contains 3 identified domains. Primary functions include: Signaling, Structural."
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSummarize_SingleDomain(t *testing.T) {
	got := Summarize([]DomainMatch{{Name: "A", Function: "Metabolism"}})
	want := "This protein contains 1 identified domains. Primary functions include: Metabolism."
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
