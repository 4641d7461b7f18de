package annotate

import (
	"strings"

	"protscan/internal/core/motif"
	"protscan/internal/core/sequence"
)

// ScanDomains locates catalog motifs within the sequence.
// Literal entries report only the leftmost occurrence; regex entries report
// every non-overlapping occurrence, leftmost first. Spans are 1-based
// inclusive. Entries are evaluated independently, so matches from different
// entries may overlap freely
func ScanDomains(seq sequence.Sequence, cat *motif.Catalog) []DomainMatch {
	var out []DomainMatch
	if cat == nil {
		return out
	}
	s := seq.String()

	for _, e := range cat.Entries {
		switch e.Kind {
		case motif.KindLiteral:
			idx := strings.Index(s, e.Pattern)
			if idx < 0 {
				continue
			}
			out = append(out, DomainMatch{
				Name:     e.Name,
				Start:    idx + 1,
				End:      idx + len(e.Pattern),
				Function: e.Function,
				Color:    e.Color,
			})
		case motif.KindRegex:
			for _, pr := range e.Regexp().FindAllStringIndex(s, -1) {
				out = append(out, DomainMatch{
					Name:     e.Name,
					Start:    pr[0] + 1,
					End:      pr[1],
					Function: e.Function,
					Color:    e.Color,
				})
			}
		}
	}
	return out
}
