package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCorrelationIDGenerated(t *testing.T) {
	var seen string
	handler := CorrelationID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = CorrelationIDFromContext(r.Context())
	}))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if seen == "" {
		t.Fatalf("expected generated correlation id")
	}
	if rr.Header().Get(CorrelationIDHeader) != seen {
		t.Fatalf("expected header to echo context id")
	}
}

func TestCorrelationIDPassedThrough(t *testing.T) {
	var seen string
	handler := CorrelationID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = CorrelationIDFromContext(r.Context())
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(CorrelationIDHeader, "trace-123")
	handler.ServeHTTP(httptest.NewRecorder(), req)
	if seen != "trace-123" {
		t.Fatalf("expected trace-123, got %q", seen)
	}
}
