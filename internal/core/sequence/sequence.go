// Package sequence provides validation and normalization of protein primary
// sequences into a canonical residue string
// Pipeline order
// 1 Unicode cleanup NFKC, strip format chars, fold fullwidth to ASCII
// 2 Upper-case and trim
// 3 Drop a FASTA header line if present and rejoin the body
// 4 Optionally strip whitespace and decimal digits (numbered listings)
// 5 Validate against the 20 standard amino acid codes
package sequence

import (
	"regexp"
	"strings"
	"sync"
	"unicode"

	perr "protscan/internal/platform/errors"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Alphabet is the set of valid residue codes, the 20 standard amino acids
const Alphabet = "ACDEFGHIKLMNPQRSTVWY"

var residueRe = regexp.MustCompile(`^[ACDEFGHIKLMNPQRSTVWY]+$`)

// IsResidue reports whether b is a valid uppercase residue code
func IsResidue(b byte) bool {
	return strings.IndexByte(Alphabet, b) >= 0
}

// Sequence is a validated, canonical residue string. Positions are 1-based
type Sequence struct {
	res string
}

// Unchecked wraps an already-canonical residue string without validation.
// Callers own the invariant; meant for scanners fed from trusted or test input
func Unchecked(s string) Sequence { return Sequence{res: s} }

// String returns the canonical residue string
func (s Sequence) String() string { return s.res }

// Len returns the number of residues
func (s Sequence) Len() int { return len(s.res) }

// At returns the residue at 1-based position pos
func (s Sequence) At(pos int) byte { return s.res[pos-1] }

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKC,
			runes.Remove(runes.In(unicode.Cf)), // strip format chars ZWJ ZWNJ FEFF etc
			width.Fold,                         // map fullwidth forms to ASCII
		)
	},
}

// Normalizer cleans raw pasted text into a Sequence
type Normalizer struct {
	// StripDigits removes whitespace and decimal digits from the sequence body
	// before validation, tolerating numbered listings pasted from databases
	StripDigits bool
}

// New constructs a Normalizer with digit/whitespace stripping enabled
func New() *Normalizer { return &Normalizer{StripDigits: true} }

// Normalize converts raw input into a validated Sequence.
// Fails with a validation error on empty input or any character outside Alphabet
func (n *Normalizer) Normalize(raw string) (Sequence, error) {
	s := strings.ToValidUTF8(raw, "")

	tr := chainPool.Get().(transform.Transformer)
	s, _, _ = transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)

	s = strings.ToUpper(strings.TrimSpace(s))

	if strings.HasPrefix(s, ">") {
		s = stripFASTAHeader(s)
	}

	if n.StripDigits {
		s = strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) || (r >= '0' && r <= '9') {
				return -1
			}
			return r
		}, s)
	}

	if s == "" {
		return Sequence{}, perr.Validationf("no sequence provided")
	}
	if !residueRe.MatchString(s) {
		return Sequence{}, perr.Validationf(
			"invalid characters found in sequence; use standard one-letter amino acid codes")
	}
	return Sequence{res: s}, nil
}

// stripFASTAHeader drops the first line and rejoins the remaining lines with
// no separator, reconstructing the sequence body of a FASTA record
func stripFASTAHeader(s string) string {
	lines := strings.Split(s, "\n")
	if len(lines) < 2 {
		return ""
	}
	var b strings.Builder
	for _, ln := range lines[1:] {
		b.WriteString(strings.TrimSpace(ln))
	}
	return b.String()
}
