package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"protscan/internal/core/annotate"
	"protscan/internal/core/motif"
	phttp "protscan/internal/platform/net/http"
	svc "protscan/internal/services/annotate/service"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	cat, err := motif.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	eng := annotate.NewEngine(cat, annotate.DefaultOptions())
	r := phttp.AdaptChi(chi.NewRouter())
	Register(r, svc.New(eng, nil, nil))
	return r.Mux()
}

func postJSON(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) phttp.Envelope {
	t.Helper()
	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v\n%s", err, rec.Body.String())
	}
	return env
}

func TestAnnotateEndpoint(t *testing.T) {
	h := newTestRouter(t)

	rec := postJSON(t, h, "/annotate", `{"sequence":"MKWVTFISLLKINASEK"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d\n%s", rec.Code, rec.Body.String())
	}
	env := decodeEnvelope(t, rec)
	data, ok := env.Data.(map[string]any)
	if !ok {
		t.Fatalf("data is %T", env.Data)
	}
	if data["sequence"] != "MKWVTFISLLKINASEK" {
		t.Fatalf("sequence = %v", data["sequence"])
	}
	if _, ok := data["ptms"]; !ok {
		t.Fatalf("missing ptms: %s", rec.Body.String())
	}
	if _, ok := data["domains"]; !ok {
		t.Fatalf("missing domains: %s", rec.Body.String())
	}
}

func TestAnnotateEndpoint_InvalidSequence(t *testing.T) {
	h := newTestRouter(t)

	rec := postJSON(t, h, "/annotate", `{"sequence":"MSTYX"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400\n%s", rec.Code, rec.Body.String())
	}
	env := decodeEnvelope(t, rec)
	if env.Error == "" {
		t.Fatalf("expected an error message")
	}
}

func TestAnnotateEndpoint_EmptyPayload(t *testing.T) {
	h := newTestRouter(t)

	rec := postJSON(t, h, "/annotate", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400\n%s", rec.Code, rec.Body.String())
	}
}

func TestAnnotateEndpoint_MalformedJSON(t *testing.T) {
	h := newTestRouter(t)

	rec := postJSON(t, h, "/annotate", `{"sequence":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400\n%s", rec.Code, rec.Body.String())
	}
}

func TestAnnotateEndpoint_UnknownField(t *testing.T) {
	h := newTestRouter(t)

	rec := postJSON(t, h, "/annotate", `{"sequenze":"MSTYK"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400\n%s", rec.Code, rec.Body.String())
	}
}

func TestAnnotateEndpoint_AccessionNotConfigured(t *testing.T) {
	h := newTestRouter(t)

	rec := postJSON(t, h, "/annotate", `{"accession":"P04637"}`)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503\n%s", rec.Code, rec.Body.String())
	}
}

func TestMotifsEndpoint(t *testing.T) {
	h := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/motifs", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d\n%s", rec.Code, rec.Body.String())
	}
	env := decodeEnvelope(t, rec)
	rows, ok := env.Data.([]any)
	if !ok {
		t.Fatalf("data is %T", env.Data)
	}
	if len(rows) == 0 {
		t.Fatalf("expected catalog rows")
	}
}
