package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRateLimiter_BurstThenDeny(t *testing.T) {
	rl := NewRateLimiter(1, 3)

	for i := 0; i < 3; i++ {
		if !rl.Allow("client") {
			t.Fatalf("Request %d within burst should be allowed", i+1)
		}
	}
	if rl.Allow("client") {
		t.Error("Request beyond burst should be denied")
	}
}

func TestRateLimiter_IndependentClients(t *testing.T) {
	rl := NewRateLimiter(1, 1)

	if !rl.Allow("clientA") {
		t.Fatal("First request for clientA should be allowed")
	}
	if rl.Allow("clientA") {
		t.Error("Second request for clientA should be denied")
	}
	if !rl.Allow("clientB") {
		t.Error("clientB should have its own budget")
	}
}

func TestRateLimitMiddleware_Returns429(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	handler := rateLimitMiddleware(rl)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:5000"

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("First request: expected 200, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("Second request: expected 429, got %d", rec.Code)
	}
}

func TestClientKey_PrefersForwardedFor(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:5000"

	if got := clientKey(req); got != "10.0.0.1" {
		t.Errorf("clientKey = %q, want 10.0.0.1", got)
	}

	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	if got := clientKey(req); got != "203.0.113.7" {
		t.Errorf("clientKey with X-Forwarded-For = %q, want 203.0.113.7", got)
	}
}
