package annotate

import (
	"protscan/internal/core/motif"
	"protscan/internal/core/sequence"
)

// Options toggles the engine stages that vary across catalog revisions.
// Each flag is independent; defaults enable everything
type Options struct {
	// StripDigits removes whitespace/digits before validation
	StripDigits bool
	// Glycosylation enables the N-X-S/T sequon PTM rule
	Glycosylation bool
	// CrossReference enables the PTM-to-domain mapping stage
	CrossReference bool
	// Summary enables the functional summary stage
	Summary bool
}

// DefaultOptions enables every stage
func DefaultOptions() Options {
	return Options{
		StripDigits:    true,
		Glycosylation:  true,
		CrossReference: true,
		Summary:        true,
	}
}

// Engine runs the full annotation pipeline. It is stateless per call and safe
// for concurrent use; the catalog is read-only and shared
type Engine struct {
	norm *sequence.Normalizer
	cat  *motif.Catalog
	opts Options
}

// NewEngine constructs an Engine over an immutable catalog
func NewEngine(cat *motif.Catalog, opts Options) *Engine {
	return &Engine{
		norm: &sequence.Normalizer{StripDigits: opts.StripDigits},
		cat:  cat,
		opts: opts,
	}
}

// Options returns the engine's stage configuration
func (e *Engine) Options() Options { return e.opts }

// Catalog returns the engine's motif catalog
func (e *Engine) Catalog() *motif.Catalog { return e.cat }

// Annotate converts raw input text into a structured annotation result.
// On validation failure it returns a nil result and the error; no partial
// annotation is ever produced
func (e *Engine) Annotate(raw string) (*Result, error) {
	seq, err := e.norm.Normalize(raw)
	if err != nil {
		return nil, err
	}

	ptms := ScanPTMs(seq, e.opts.Glycosylation)
	domains := ScanDomains(seq, e.cat)

	res := &Result{
		Sequence: seq.String(),
		PTMs:     ptms,
		Domains:  domains,
	}
	if e.opts.CrossReference {
		res.Mapping = CrossReference(ptms, domains)
	}
	if e.opts.Summary {
		res.Summary = Summarize(domains)
	}
	return res, nil
}
