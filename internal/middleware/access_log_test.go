package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"pet-intake/internal/platform/logger"
	"pet-intake/internal/platform/metrics"
)

func TestAccessLog_LogsAndCounts(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Format: logger.FormatJSON, Output: &buf})
	m := metrics.NewUnregistered()

	h := AccessLog(log, m)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "pet not found", http.StatusNotFound)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/pet/get/x", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if got := testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "404")); got != 1 {
		t.Fatalf("expected counter 1, got %v", got)
	}
	if out := buf.String(); !strings.Contains(out, `"path":"/api/v1/pet/get/x"`) || !strings.Contains(out, `"status":404`) {
		t.Fatalf("unexpected log output: %s", out)
	}
}
