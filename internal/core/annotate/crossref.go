package annotate

import "fmt"

// CrossReference maps each PTM site to every domain whose inclusive span
// contains its position. A PTM inside a domain often regulates that domain's
// function. Overlapping domains each produce a separate entry, no dedup.
// Both lists are bounded by sequence length and catalog size, so the
// quadratic pass is fine
func CrossReference(ptms []PTM, domains []DomainMatch) []Mapping {
	var out []Mapping
	for _, p := range ptms {
		for _, d := range domains {
			if d.Start <= p.Pos && p.Pos <= d.End {
				out = append(out, Mapping{
					PTM:    fmt.Sprintf("%s (%s%d)", p.Type, p.Residue, p.Pos),
					Domain: d.Name,
				})
			}
		}
	}
	return out
}
