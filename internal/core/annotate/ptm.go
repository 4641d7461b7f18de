package annotate

import "protscan/internal/core/sequence"

// ScanPTMs predicts modification sites over a validated sequence.
// Emission follows ascending position; rules are evaluated independently per
// position so future rules may stack on the same residue
func ScanPTMs(seq sequence.Sequence, glycosylation bool) []PTM {
	var out []PTM
	n := seq.Len()
	for pos := 1; pos <= n; pos++ {
		r := seq.At(pos)

		// Kinase acceptors
		if r == 'S' || r == 'T' || r == 'Y' {
			out = append(out, PTM{Type: Phosphorylation, Residue: string(r), Pos: pos})
		}

		// N-X-S/T sequon, X not proline
		if glycosylation && r == 'N' && pos+2 <= n {
			third := seq.At(pos + 2)
			if (third == 'S' || third == 'T') && seq.At(pos+1) != 'P' {
				out = append(out, PTM{Type: NGlycosylation, Residue: string(r), Pos: pos})
			}
		}

		// Lysine is the shared acceptor for acetylation and ubiquitination
		if r == 'K' {
			out = append(out, PTM{Type: AcetylUbiquitin, Residue: string(r), Pos: pos})
		}
	}
	return out
}
