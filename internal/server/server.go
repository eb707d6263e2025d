package server

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/gradebook/internal/errors"
	"github.com/agbru/gradebook/internal/gradebook"
	"github.com/agbru/gradebook/internal/logging"
)

const (
	// DefaultShutdownTimeout bounds graceful shutdown once the run context ends.
	DefaultShutdownTimeout = 5 * time.Second
	tracerName             = "github.com/agbru/gradebook/internal/server"
)

// Server serves one gradebook store over HTTP.
type Server struct {
	store           gradebook.Store
	mu              sync.Mutex
	router          *mux.Router
	httpServer      *http.Server
	logger          logging.Logger
	metrics         *Metrics
	tracer          trace.Tracer
	security        SecurityConfig
	shutdownTimeout time.Duration
	started         time.Time
}

// Option configures a Server during construction.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(l logging.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithSecurityConfig replaces DefaultSecurityConfig.
func WithSecurityConfig(c SecurityConfig) Option {
	return func(s *Server) { s.security = c }
}

// WithTracerProvider sets the provider spans are created from. The global
// provider is used otherwise.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Server) { s.tracer = tp.Tracer(tracerName) }
}

// WithShutdownTimeout overrides DefaultShutdownTimeout.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) { s.shutdownTimeout = d }
}

// New creates a server for store listening on addr.
//
// Parameters:
//   - store: The gradebook served by the API.
//   - addr: The TCP listen address, e.g. ":8080".
//   - opts: Optional settings.
//
// Returns:
//   - *Server: A server ready to Run.
func New(store gradebook.Store, addr string, opts ...Option) *Server {
	s := &Server{
		store:           store,
		logger:          logging.Nop(),
		metrics:         NewMetrics(),
		tracer:          otel.Tracer(tracerName),
		security:        DefaultSecurityConfig(),
		shutdownTimeout: DefaultShutdownTimeout,
		started:         time.Now(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.metrics.SetStudents(store.Len())
	s.router = s.routes()
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

// routes registers every endpoint on a fresh router.
func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.metricsMiddleware)

	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/metrics", s.handleMetrics).Methods(http.MethodGet)

	// Flat routes so a method mismatch answers 405 rather than 404.
	r.HandleFunc("/students", s.handleSummary).Methods(http.MethodGet)
	r.HandleFunc("/students", s.handleAddStudent).Methods(http.MethodPost)
	r.HandleFunc("/students/{name}", s.handleReport).Methods(http.MethodGet)
	r.HandleFunc("/students/{name}/grades", s.handleAddGrade).Methods(http.MethodPost)
	r.HandleFunc("/students/{name}/average", s.handleOverallAverage).Methods(http.MethodGet)
	r.HandleFunc("/students/{name}/subjects/{subject}/average", s.handleSubjectAverage).Methods(http.MethodGet)
	return r
}

// Handler returns the router wrapped in the full middleware chain:
// panic recovery, CORS, request IDs, then security headers.
func (s *Server) Handler() http.Handler {
	var h http.Handler = s.router
	h = SecurityMiddleware(s.security, h)
	h = requestIDMiddleware(h)
	h = corsMiddleware(s.security)(h)
	return handlers.RecoveryHandler(
		handlers.RecoveryLogger(s.logger),
		handlers.PrintRecoveryStack(false),
	)(h)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
// It returns nil after a clean shutdown and the listen error otherwise.
func (s *Server) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("server listening", logging.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return apperrors.WrapError(err, "listen on %s", s.httpServer.Addr)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return apperrors.WrapError(err, "shutdown")
		}
		s.logger.Info("server stopped")
		return nil
	})

	return g.Wait()
}

// call runs fn against the store under the server mutex, inside a span
// named after the store operation.
func (s *Server) call(ctx context.Context, op string, fn func(gradebook.Store) error, attrs ...attribute.KeyValue) error {
	_, span := s.tracer.Start(ctx, "gradebook."+op, trace.WithAttributes(attrs...))
	defer span.End()

	s.mu.Lock()
	err := fn(s.store)
	s.mu.Unlock()

	if err != nil && !apperrors.IsSoft(err) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}
