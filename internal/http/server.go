package http

import (
	"context"
	"html/template"
	"io/fs"
	"net/http"
	"sync"
	"time"

	"fintrack/internal/ledger"
	"fintrack/internal/log"
	"fintrack/internal/middleware/ratelimit"
	"fintrack/internal/middleware/security"
	"fintrack/internal/middleware/trace"
	"fintrack/internal/services"
	appweb "fintrack/web"
)

type Server struct {
	http.Server
	templates *template.Template
	logger    *log.Logger
	tracker   *services.Tracker
	store     *ledger.Store

	traceMiddleware *trace.Middleware
	rateLimiter     *ratelimit.Limiter

	appMetrics   *appMetrics
	shutdownOnce sync.Once
}

type appMetrics struct {
	startedAt         time.Time
	totalTransactions int64
}

// extractClientIP resolves the client address, honoring proxy headers.
func extractClientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		return ip
	}
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	return r.RemoteAddr
}

// NewServer configures routes, middleware, and templates, returning a
// ready-to-run http.Server.
func NewServer(addr string, tracker *services.Tracker, store *ledger.Store, postRequestsPerMinute int) *Server {
	mux := http.NewServeMux()

	s := &Server{
		tracker:         tracker,
		store:           store,
		logger:          log.New(log.DefaultConfig()).WithComponent(log.ComponentHTTP),
		traceMiddleware: trace.NewMiddleware(extractClientIP),
		rateLimiter: ratelimit.NewLimiter(ratelimit.Config{
			RequestsPerMinute: postRequestsPerMinute,
		}),
		appMetrics: &appMetrics{startedAt: time.Now()},
	}

	// Parse embedded templates at startup.
	t, err := template.ParseFS(appweb.TemplatesFS, "templates/*.html")
	if err != nil {
		s.logger.Warn("Failed parsing templates", "error", err)
	}
	s.templates = t

	// Static assets (served from embedded FS)
	if sub, err := fs.Sub(appweb.StaticFS, "static"); err == nil {
		static := http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
		mux.Handle("/static/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "public, max-age=3600, immutable")
			static.ServeHTTP(w, r)
		}))
	} else {
		s.logger.Warn("Failed to mount embedded static FS", "error", err)
	}

	// Rate limiting applies to mutation endpoints only.
	limited := s.rateLimiter.Middleware(extractClientIP, nil)

	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/readyz", s.handleReady)
	mux.HandleFunc("/metrics", s.handleMetrics)

	mux.Handle("/transactions", limited(http.HandlerFunc(s.handleCreateTransaction)))
	mux.Handle("/categories", limited(http.HandlerFunc(s.handleAddCategory)))
	mux.Handle("/categories/delete", limited(http.HandlerFunc(s.handleRemoveCategory)))
	mux.Handle("/budget", limited(http.HandlerFunc(s.handleSetBudget)))

	// UI partials
	mux.HandleFunc("/ui/transactions", s.handleTransactionsPartial)
	mux.HandleFunc("/ui/report", s.handleReportPartial)
	mux.HandleFunc("/ui/budget", s.handleBudgetPartial)
	mux.HandleFunc("/ui/range", s.handleRangePartial)

	headers := security.Middleware(security.DefaultHeadersConfig())
	s.Addr = addr
	s.Handler = s.traceMiddleware.Middleware(headers(mux))

	return s
}

// Shutdown gracefully shuts down the server and cleanup routines.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		if s.rateLimiter != nil {
			s.rateLimiter.Stop()
		}
		shutdownErr = s.Server.Shutdown(ctx)
	})

	return shutdownErr
}
