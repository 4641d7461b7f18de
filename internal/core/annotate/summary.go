package annotate

import (
	"fmt"
	"strings"
)

// NoDomainSummary is the fixed sentence used when nothing matched
const NoDomainSummary = "No known domains identified. Protein might be intrinsically disordered."

// Summarize produces the one-paragraph functional summary from the domain
// matches alone. Distinct categories are reported in first-seen order
func Summarize(domains []DomainMatch) string {
	if len(domains) == 0 {
		return NoDomainSummary
	}
	seen := make(map[string]struct{}, len(domains))
	var cats []string
	for _, d := range domains {
		if _, ok := seen[d.Function]; ok {
			continue
		}
		seen[d.Function] = struct{}{}
		cats = append(cats, d.Function)
	}
	return fmt.Sprintf("This protein contains %d identified domains. Primary functions include: %s.",
		len(domains), strings.Join(cats, ", "))
}
