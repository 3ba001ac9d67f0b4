package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"creator-fee-scan/internal/domain"
	"creator-fee-scan/internal/storage/memory"
)

const testMint = "So11111111111111111111111111111111111111112"

// stubFetcher returns canned raw data or a fixed error.
type stubFetcher struct {
	raw *domain.RawTokenData
	err error
}

func (f *stubFetcher) FetchTokenData(_ context.Context, mint string) (*domain.RawTokenData, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := *f.raw
	out.Mint = mint
	return &out, nil
}

func newTestServer(fetcher *stubFetcher) *Server {
	return NewServer(ServerOptions{
		Fetcher:     fetcher,
		Store:       memory.NewAnalysisStore(),
		RateLimiter: NewRateLimiter(1000, 1000),
	})
}

func healthyRaw() *domain.RawTokenData {
	return &domain.RawTokenData{
		LifetimeFees: "500000000000",
		Creators: []domain.FeeRecipientRecord{
			{Wallet: "walletA", RoyaltyBps: 5000, IsCreator: true},
			{Wallet: "walletB", RoyaltyBps: 5000},
		},
		ClaimStats: []domain.FeeRecipientRecord{
			{Wallet: "walletA", TotalClaimed: "200000000000"},
		},
	}
}

func TestHandleAnalyze_InvalidMint(t *testing.T) {
	server := newTestServer(&stubFetcher{raw: healthyRaw()})
	router := server.Router()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tokens/short/analysis", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}
	var resp errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if resp.Error.Code != ErrCodeInvalidMint {
		t.Errorf("Error code = %q, want %q", resp.Error.Code, ErrCodeInvalidMint)
	}
}

func TestHandleAnalyze_Success(t *testing.T) {
	server := newTestServer(&stubFetcher{raw: healthyRaw()})
	router := server.Router()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tokens/"+testMint+"/analysis", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var a domain.TokenAnalysis
	if err := json.NewDecoder(rec.Body).Decode(&a); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if a.Mint != testMint {
		t.Errorf("Mint = %q, want %q", a.Mint, testMint)
	}
	if a.ClaimerCount != 2 {
		t.Errorf("ClaimerCount = %d, want 2", a.ClaimerCount)
	}
	if a.Verdict == "" || a.Summary == "" {
		t.Error("Expected a verdict and summary")
	}
}

func TestHandleAnalyze_PersistsSnapshot(t *testing.T) {
	store := memory.NewAnalysisStore()
	server := NewServer(ServerOptions{
		Fetcher: &stubFetcher{raw: healthyRaw()},
		Store:   store,
	})
	router := server.Router()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tokens/"+testMint+"/analysis", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	saved, err := store.GetLatestByMint(context.Background(), testMint)
	if err != nil {
		t.Fatalf("Expected persisted snapshot: %v", err)
	}
	if saved.Mint != testMint {
		t.Errorf("Persisted mint = %q, want %q", saved.Mint, testMint)
	}
}

func TestHandleAnalyze_UpstreamTimeout(t *testing.T) {
	server := newTestServer(&stubFetcher{err: context.DeadlineExceeded})
	router := server.Router()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tokens/"+testMint+"/analysis", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusGatewayTimeout {
		t.Fatalf("Expected 504, got %d", rec.Code)
	}
}

func TestHandleAnalyze_UpstreamFailure(t *testing.T) {
	server := newTestServer(&stubFetcher{err: errors.New("connection refused")})
	router := server.Router()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tokens/"+testMint+"/analysis", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("Expected 502, got %d", rec.Code)
	}
}

func TestHandleHistory_ReturnsNewestFirst(t *testing.T) {
	server := newTestServer(&stubFetcher{raw: healthyRaw()})
	router := server.Router()

	// Analyze twice to build history. The memory store rejects duplicate
	// (mint, analyzed_at) pairs, so a single entry is also acceptable here;
	// what matters is that history exists and is well-formed.
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/tokens/"+testMint+"/analysis", nil)
		router.ServeHTTP(httptest.NewRecorder(), req)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tokens/"+testMint+"/analyses", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var history []*domain.TokenAnalysis
	if err := json.NewDecoder(rec.Body).Decode(&history); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(history) == 0 {
		t.Fatal("Expected at least one snapshot")
	}
	for _, a := range history {
		if a.Mint != testMint {
			t.Errorf("History entry mint = %q, want %q", a.Mint, testMint)
		}
	}
}

func TestHandleHistory_UnknownMint(t *testing.T) {
	server := newTestServer(&stubFetcher{raw: healthyRaw()})
	router := server.Router()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tokens/"+testMint+"/analyses", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d", rec.Code)
	}
}

func TestHandleHistory_RejectsBadLimit(t *testing.T) {
	server := newTestServer(&stubFetcher{raw: healthyRaw()})
	router := server.Router()

	for _, limit := range []string{"0", "-1", "101", "abc"} {
		req := httptest.NewRequest(http.MethodGet,
			"/api/v1/tokens/"+testMint+"/analyses?limit="+limit, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("limit=%s: expected 400, got %d", limit, rec.Code)
		}
	}
}

func TestHandleHealth(t *testing.T) {
	server := newTestServer(&stubFetcher{raw: healthyRaw()})
	router := server.Router()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Errorf("Body = %q, want ok", rec.Body.String())
	}
}

func TestHandleStatus_CountsAnalyses(t *testing.T) {
	server := newTestServer(&stubFetcher{raw: healthyRaw()})
	router := server.Router()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tokens/"+testMint+"/analysis", nil)
	router.ServeHTTP(httptest.NewRecorder(), req)

	req = httptest.NewRequest(http.MethodGet, "/status", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var status StatusResponse
	if err := json.NewDecoder(rec.Body).Decode(&status); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if status.Status != "running" {
		t.Errorf("Status = %q, want running", status.Status)
	}
	if status.Analyses != 1 {
		t.Errorf("Analyses = %d, want 1", status.Analyses)
	}
}

func TestRouter_AppliesConfiguredOrigins(t *testing.T) {
	server := NewServer(ServerOptions{
		Fetcher:        &stubFetcher{raw: healthyRaw()},
		Store:          memory.NewAnalysisStore(),
		RateLimiter:    NewRateLimiter(1000, 1000),
		AllowedOrigins: []string{"https://dash.example.com"},
	})
	router := server.Router()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://dash.example.com")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://dash.example.com" {
		t.Errorf("Allow-Origin = %q, want the configured origin", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Allow-Origin = %q for a disallowed origin, want empty", got)
	}
}
