// Package http provides http transport for annotate
package http

import (
	stdhttp "net/http"

	phttp "protscan/internal/platform/net/http"
	"protscan/internal/services/annotate/domain"
	svc "protscan/internal/services/annotate/service"
)

// Register mounts annotate endpoints on the given router
func Register(r phttp.Router, s *svc.Service) {
	h := &handlers{svc: s}

	r.Post("/annotate", phttp.JSONHandler[domain.AnalyzeInput](h.analyze))
	r.Get("/motifs", phttp.JSONHandlerNoBody(h.motifs))
}

type handlers struct{ svc *svc.Service }

// @Summary Annotate a protein sequence
// @Tags Annotate
// @Accept json
// @Produce json
// @Param payload body domain.AnalyzeInput true "Sequence text or accession"
// @Success 200 {object} annotate.Result "ok"
// @Router /annotate [post]
func (h *handlers) analyze(r *stdhttp.Request, in domain.AnalyzeInput) (any, error) {
	return h.svc.Analyze(r.Context(), in)
}

// @Summary List the motif catalog
// @Tags Annotate
// @Produce json
// @Success 200 {array} domain.MotifInfo "ok"
// @Router /motifs [get]
func (h *handlers) motifs(_ *stdhttp.Request) (any, error) {
	return h.svc.Motifs(), nil
}
