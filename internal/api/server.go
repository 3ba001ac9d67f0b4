// Package api provides the HTTP surface of the fee-distribution analyzer:
// the analysis endpoint, snapshot history, a WebSocket stream of completed
// analyses, and operational endpoints.
package api

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"creator-fee-scan/internal/cache"
	"creator-fee-scan/internal/launchpad"
	"creator-fee-scan/internal/observability"
	"creator-fee-scan/internal/storage"
)

// Server holds the handler dependencies. Store, archive, cache and hub are
// optional; a nil value disables that concern.
type Server struct {
	fetcher launchpad.Fetcher
	store   storage.AnalysisStore
	archive storage.ClaimEventArchive
	cache   *cache.AnalysisCache
	limiter *RateLimiter
	hub     *Hub
	logger  *log.Logger
	origins []string

	started time.Time

	mu            sync.Mutex
	analyses      int
	cacheServed   int
	fetchFailures int
}

// ServerOptions configures NewServer.
type ServerOptions struct {
	Fetcher        launchpad.Fetcher
	Store          storage.AnalysisStore
	Archive        storage.ClaimEventArchive
	Cache          *cache.AnalysisCache
	RateLimiter    *RateLimiter
	Hub            *Hub
	AllowedOrigins []string
	Logger         *log.Logger
}

// NewServer creates the API server.
func NewServer(opts ServerOptions) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	limiter := opts.RateLimiter
	if limiter == nil {
		limiter = NewRateLimiter(2, 5)
	}
	return &Server{
		fetcher: opts.Fetcher,
		store:   opts.Store,
		archive: opts.Archive,
		cache:   opts.Cache,
		limiter: limiter,
		hub:     opts.Hub,
		logger:  logger,
		origins: opts.AllowedOrigins,
		started: time.Now(),
	}
}

// Router builds the HTTP handler with middleware applied. The WebSocket
// stream bypasses the logging middleware because the status recorder does
// not support connection hijacking.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/status", s.handleStatus).Methods(http.MethodGet)
	r.Handle("/metrics", observability.Handler()).Methods(http.MethodGet)

	if s.hub != nil {
		r.HandleFunc("/api/v1/stream", s.hub.HandleWS).Methods(http.MethodGet)
	}

	apiRouter := r.PathPrefix("/api/v1").Subrouter()
	apiRouter.Use(loggingMiddleware(s.logger))
	apiRouter.Use(rateLimitMiddleware(s.limiter))
	apiRouter.HandleFunc("/tokens/{mint}/analysis", s.handleAnalyze).Methods(http.MethodGet)
	apiRouter.HandleFunc("/tokens/{mint}/analyses", s.handleHistory).Methods(http.MethodGet)

	c := cors.New(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{http.MethodGet},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(r)
}
