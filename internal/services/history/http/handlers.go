// Package http provides http transport for history
package http

import (
	stdhttp "net/http"
	"strconv"

	phttp "protscan/internal/platform/net/http"
	svc "protscan/internal/services/history/service"
)

// Register mounts history endpoints on the given router
func Register(r phttp.Router, s *svc.Service) {
	h := &handlers{svc: s}

	r.Get("/history/recent", phttp.JSONHandlerNoBody(h.recent))
}

type handlers struct{ svc *svc.Service }

// @Summary Recent analyses
// @Tags History
// @Produce json
// @Param limit query int false "max rows (default 20)"
// @Success 200 {array} domain.Analysis "ok"
// @Router /history/recent [get]
func (h *handlers) recent(r *stdhttp.Request) (any, error) {
	limit := 20
	if s := r.URL.Query().Get("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			limit = v
		}
	}
	return h.svc.Recent(r.Context(), limit)
}
