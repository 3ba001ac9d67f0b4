package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"creator-fee-scan/internal/analysis"
	"creator-fee-scan/internal/observability"
	"creator-fee-scan/internal/storage"
	"creator-fee-scan/internal/validate"
)

// historyLimitDefault and historyLimitMax bound the snapshot history query.
const (
	historyLimitDefault = 20
	historyLimitMax     = 100
)

// handleAnalyze runs a full analysis for one mint: validate, cache lookup,
// upstream fetch, engine run, then best-effort persistence, archival,
// caching and broadcast. Only validation, rate limiting and the fetch can
// fail the request; everything after a successful engine run is logged but
// never surfaced as an error.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	mint := mux.Vars(r)["mint"]
	if !validate.MintAddress(mint) {
		observability.Default.InvalidMintRequests.Inc()
		respondError(w, http.StatusBadRequest, ErrCodeInvalidMint,
			"mint must be a 32-44 character Base58 address")
		return
	}

	ctx := r.Context()

	if s.cache != nil {
		if cached, found, err := s.cache.Get(ctx, mint); err != nil {
			s.logger.Printf("cache get %s: %v", mint, err)
		} else if found {
			observability.Default.CacheHits.Inc()
			s.countAnalysis(true)
			w.Header().Set("X-Cache", "hit")
			respondJSON(w, http.StatusOK, cached)
			return
		}
		observability.Default.CacheMisses.Inc()
	}

	start := time.Now()
	raw, err := s.fetcher.FetchTokenData(ctx, mint)
	if err != nil {
		observability.Default.FetchErrors.Inc()
		s.countFailure()
		if errors.Is(err, context.DeadlineExceeded) {
			respondError(w, http.StatusGatewayTimeout, ErrCodeUpstreamTimeout,
				"upstream fee API timed out")
			return
		}
		s.logger.Printf("fetch %s: %v", mint, err)
		respondError(w, http.StatusBadGateway, ErrCodeUpstreamError,
			"upstream fee API request failed")
		return
	}
	observability.Default.FetchLatency.Observe(time.Since(start).Seconds())

	result := analysis.Analyze(*raw)
	observability.RecordAnalysis(string(result.Verdict), time.Since(start).Seconds())
	s.countAnalysis(false)

	if s.store != nil {
		if err := s.store.Insert(ctx, result); err != nil && !errors.Is(err, storage.ErrDuplicateKey) {
			s.logger.Printf("persist analysis %s: %v", mint, err)
		}
	}
	if s.archive != nil {
		claims := analysis.ValidClaims(raw.Events24h)
		if err := s.archive.InsertBulk(ctx, mint, result.AnalyzedAt, claims); err != nil {
			s.logger.Printf("archive claims %s: %v", mint, err)
		}
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, result); err != nil {
			s.logger.Printf("cache set %s: %v", mint, err)
		}
	}
	if s.hub != nil {
		s.hub.Broadcast(result)
	}

	respondJSON(w, http.StatusOK, result)
}

// handleHistory returns persisted snapshots for a mint, newest first.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	mint := mux.Vars(r)["mint"]
	if !validate.MintAddress(mint) {
		observability.Default.InvalidMintRequests.Inc()
		respondError(w, http.StatusBadRequest, ErrCodeInvalidMint,
			"mint must be a 32-44 character Base58 address")
		return
	}
	if s.store == nil {
		respondError(w, http.StatusNotFound, ErrCodeNotFound, "snapshot history is not enabled")
		return
	}

	limit := historyLimitDefault
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > historyLimitMax {
			respondError(w, http.StatusBadRequest, ErrCodeInvalidMint,
				"limit must be between 1 and "+strconv.Itoa(historyLimitMax))
			return
		}
		limit = n
	}

	history, err := s.store.GetByMint(r.Context(), mint, limit)
	if err != nil {
		s.logger.Printf("history %s: %v", mint, err)
		respondError(w, http.StatusInternalServerError, ErrCodeInternalError,
			"failed to load snapshot history")
		return
	}
	if len(history) == 0 {
		respondError(w, http.StatusNotFound, ErrCodeNotFound, "mint has never been analyzed")
		return
	}
	respondJSON(w, http.StatusOK, history)
}

// StatusResponse is the JSON payload for /status.
type StatusResponse struct {
	Status        string    `json:"status"`
	Uptime        string    `json:"uptime"`
	StartedAt     time.Time `json:"started_at"`
	Analyses      int       `json:"analyses"`
	CacheServed   int       `json:"cache_served"`
	FetchFailures int       `json:"fetch_failures"`
}

// handleStatus returns server status as JSON.
func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	resp := StatusResponse{
		Status:        "running",
		Uptime:        time.Since(s.started).String(),
		StartedAt:     s.started,
		Analyses:      s.analyses,
		CacheServed:   s.cacheServed,
		FetchFailures: s.fetchFailures,
	}
	s.mu.Unlock()

	respondJSON(w, http.StatusOK, resp)
}

// handleHealth is the liveness probe.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) countAnalysis(fromCache bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analyses++
	if fromCache {
		s.cacheServed++
	}
}

func (s *Server) countFailure() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetchFailures++
}
