// Package annotate implements rule-based annotation of protein sequences:
// PTM site prediction, conserved-motif matching, PTM-to-domain mapping, and
// a one-paragraph functional summary
package annotate

// PTMType tags the predicted modification class
type PTMType string

const (
	// Phosphorylation targets Ser, Thr and Tyr residues
	Phosphorylation PTMType = "Phosphorylation"
	// NGlycosylation targets Asn in an N-X-S/T sequon, X not Pro
	NGlycosylation PTMType = "N-glycosylation"
	// AcetylUbiquitin targets Lys, the shared acceptor of both marks
	AcetylUbiquitin PTMType = "Acetylation/Ubiquitination"
)

// PTM is one predicted modification site. Positions are 1-based
type PTM struct {
	Type    PTMType `json:"type"`
	Residue string  `json:"residue"`
	Pos     int     `json:"pos"`
}

// DomainMatch is one located motif span, 1-based inclusive on both ends
type DomainMatch struct {
	Name     string `json:"name"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Function string `json:"function"`
	Color    string `json:"color,omitempty"`
}

// Mapping links a PTM site to a domain whose span contains it
type Mapping struct {
	PTM    string `json:"ptm"`
	Domain string `json:"domain"`
}

// Result is the full annotation of one sequence. Exactly one of Error or the
// remaining fields is populated
type Result struct {
	Sequence string        `json:"sequence,omitempty"`
	PTMs     []PTM         `json:"ptms,omitempty"`
	Domains  []DomainMatch `json:"domains,omitempty"`
	Mapping  []Mapping     `json:"mapping,omitempty"`
	Summary  string        `json:"summary,omitempty"`
	Error    string        `json:"error,omitempty"`
}

// Failure wraps an error into the wire Result shape
func Failure(err error) *Result {
	if err == nil {
		return &Result{}
	}
	return &Result{Error: err.Error()}
}
