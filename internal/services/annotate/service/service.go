// Package service provides the annotate service implementation
package service

import (
	"context"
	"strings"

	"protscan/internal/core/annotate"
	"protscan/internal/core/motif"
	"protscan/internal/platform/config"
	perr "protscan/internal/platform/errors"
	"protscan/internal/platform/logger"
	"protscan/internal/services/annotate/domain"
	histdom "protscan/internal/services/history/domain"
)

// EngineOptionsFromConfig reads the stage toggles (CORE_ANNOTATE_*).
// Every variant flag defaults on
func EngineOptionsFromConfig(cfg config.Conf) annotate.Options {
	af := cfg.Prefix("CORE_ANNOTATE_")
	return annotate.Options{
		StripDigits:    af.MayBool("STRIP_DIGITS", true),
		Glycosylation:  af.MayBool("GLYCOSYLATION", true),
		CrossReference: af.MayBool("CROSS_REFERENCE", true),
		Summary:        af.MayBool("SUMMARY", true),
	}
}

// Service resolves input, runs the engine, and optionally records history
type Service struct {
	eng   *annotate.Engine
	fetch domain.FetcherPort // optional; nil disables accession lookup
	hist  histdom.WriterPort // optional; nil disables recording
	log   logger.Logger
}

// New constructs the annotate service. fetch and hist may be nil
func New(eng *annotate.Engine, fetch domain.FetcherPort, hist histdom.WriterPort) *Service {
	return &Service{
		eng:   eng,
		fetch: fetch,
		hist:  hist,
		log:   *logger.Named("annotate"),
	}
}

// Analyze runs one annotation. Raw sequence text wins; otherwise the
// accession is fetched; with neither, the request is rejected.
// A fetch failure is surfaced as-is and never annotated partially
func (s *Service) Analyze(ctx context.Context, in domain.AnalyzeInput) (*annotate.Result, error) {
	raw := strings.TrimSpace(in.Sequence)
	accession := strings.TrimSpace(in.Accession)

	if raw == "" && accession != "" {
		if s.fetch == nil {
			return nil, perr.Unavailablef("accession lookup is not configured")
		}
		fasta, err := s.fetch.FetchFASTA(ctx, accession)
		if err != nil {
			return nil, err
		}
		raw = fasta
	}
	if raw == "" {
		return nil, perr.Validationf("please provide a sequence or an accession")
	}

	res, err := s.eng.Annotate(raw)
	if err != nil {
		return nil, err
	}

	if s.hist != nil {
		w := histdom.WriteInput{
			Accession:    accession,
			SeqLength:    len(res.Sequence),
			PTMCount:     len(res.PTMs),
			DomainCount:  len(res.Domains),
			MappingCount: len(res.Mapping),
			Summary:      res.Summary,
		}
		if err := s.hist.Record(ctx, w); err != nil {
			s.log.Warn().Err(err).Msg("history record failed")
		}
	}
	return res, nil
}

// Motifs lists the engine's catalog entries
func (s *Service) Motifs() []domain.MotifInfo {
	cat := s.eng.Catalog()
	if cat == nil {
		return nil
	}
	out := make([]domain.MotifInfo, 0, len(cat.Entries))
	for _, e := range cat.Entries {
		out = append(out, domain.MotifInfo{
			Key:      e.Key,
			Kind:     string(e.Kind),
			Pattern:  e.Pattern,
			Name:     e.Name,
			Function: e.Function,
			Desc:     e.Desc,
			Color:    e.Color,
		})
	}
	return out
}

// Catalog exposes the underlying catalog for callers that need entry metadata
func (s *Service) Catalog() *motif.Catalog { return s.eng.Catalog() }
