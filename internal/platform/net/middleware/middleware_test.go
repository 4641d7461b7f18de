package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"protscan/internal/platform/logger"
)

// the logger root is process-wide, so the capture buffer is shared too
var logBuf bytes.Buffer

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	logger.Init(logger.Options{Level: "debug", Format: "json", Writer: &logBuf})
	logBuf.Reset()
	return &logBuf
}

func TestLoggerContext_CarriesRequestID(t *testing.T) {
	buf := captureLog(t)

	h := RequestID()(LoggerContext(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		logger.C(r.Context()).Info().Msg("handled")
	})))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "req-123")
	h.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	if !strings.Contains(out, `"request_id":"req-123"`) {
		t.Fatalf("request_id missing from log line: %s", out)
	}
}

func TestAccessLog_CarriesRequestID(t *testing.T) {
	buf := captureLog(t)

	inner := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	var h http.Handler = AccessLogZerolog(AccessLogOptions{})(inner)
	h = LoggerContext(h)
	h = RequestID()(h)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-Id", "req-456")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d", rec.Code)
	}
	out := buf.String()
	if !strings.Contains(out, `"request_id":"req-456"`) {
		t.Fatalf("access log line lost the request id: %s", out)
	}
	if !strings.Contains(out, `"path":"/healthz"`) {
		t.Fatalf("access log line incomplete: %s", out)
	}
}
