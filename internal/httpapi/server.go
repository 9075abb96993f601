// Package httpapi serves the engine as a JSON API.
package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/alexanderramin/studypal/internal/engine"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
)

// Services are the engine ports the API calls. Metrics, when non-nil, is
// mounted at /metrics.
type Services struct {
	Plans   engine.PlanService
	Quiz    engine.QuizService
	Catalog engine.CatalogService
	Models  engine.ModelService
	Metrics http.Handler
}

// Server holds the handlers of the API.
type Server struct {
	svc      Services
	validate *validator.Validate
	logger   *slog.Logger
}

// NewServer builds a server over svc. A nil logger uses slog.Default.
func NewServer(svc Services, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{svc: svc, validate: validator.New(), logger: logger}
}

// Routes returns the router with every endpoint registered.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/health", s.health)
	r.Route("/subjects", func(r chi.Router) {
		r.Get("/", s.listSubjects)
		r.Get("/{subject}/analysis", s.analyzeSubject)
	})
	r.Route("/plans", func(r chi.Router) {
		r.Post("/", s.generatePlan)
		r.Get("/export", s.exportPlan)
	})
	r.Route("/quiz", func(r chi.Router) {
		r.Post("/", s.drawQuiz)
		r.Post("/grade", s.gradeQuiz)
	})
	r.Get("/model/metrics", s.modelReport)
	if s.svc.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.svc.Metrics)
	}
	return r
}

// NewHTTPServer wraps the routes in an http.Server listening on addr.
func (s *Server) NewHTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
	}
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.InfoContext(r.Context(), "http_request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
