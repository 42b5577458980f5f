package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pulse/pkg/usecase"
	"github.com/secmon-lab/pulse/pkg/utils/errutil"
	"github.com/secmon-lab/pulse/pkg/utils/logging"
)

// defaultIngestDays is the trailing window fetched from Slack when a request
// carries no dataset of its own. It covers a full month plus the longest week
// overlap so monthly queries stay answerable.
const defaultIngestDays = 31

type Server struct {
	router      *chi.Mux
	uc          *usecase.UseCases
	apiKey      string
	requireAuth bool
}

type Options func(*Server)

// WithAPIKey enables the X-API-Key guard on the /api routes
func WithAPIKey(key string) Options {
	return func(s *Server) {
		s.apiKey = key
	}
}

// WithRequiredAuth makes the /api guard mandatory. When no API key has been
// configured the /api routes answer 503 instead of running unauthenticated.
func WithRequiredAuth() Options {
	return func(s *Server) {
		s.requireAuth = true
	}
}

func New(uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(r.Context(), w, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		if s.apiKey != "" || s.requireAuth {
			r.Use(s.apiKeyMiddleware)
		}
		r.Post("/query", s.handleQuery)
		r.Post("/dashboard", s.handleDashboard)
		r.Post("/classify", s.handleClassify)
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

// apiKeyMiddleware rejects requests without the expected X-API-Key header.
// An empty key means the guard is required but not configured, which is an
// operator error, not a client one.
func (s *Server) apiKeyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.apiKey == "" {
			errutil.HandleHTTP(r.Context(), w, goerr.New("API key is required but not configured"), http.StatusServiceUnavailable)
			return
		}
		if r.Header.Get("X-API-Key") != s.apiKey {
			errutil.HandleHTTP(r.Context(), w, goerr.New("invalid API key"), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
