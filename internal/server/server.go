// Package server exposes the planning pipeline over HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"

	"github.com/planflow/planflow/internal/chat"
	"github.com/planflow/planflow/internal/conversation"
	"github.com/planflow/planflow/internal/log"
	"github.com/planflow/planflow/internal/plan"
)

// PlanService generates a project plan from a conversation.
type PlanService interface {
	GeneratePlan(ctx context.Context, history conversation.History) (*plan.ProjectPlan, error)
}

// ChatService produces the assistant's next conversational turn.
type ChatService interface {
	Handle(ctx context.Context, history conversation.History) chat.Result
}

// Options configures the HTTP server.
type Options struct {
	Address         string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Server routes HTTP requests to the planning services.
type Server struct {
	planner PlanService
	chat    ChatService
	logger  *log.Logger
	opts    Options
	now     func() time.Time

	httpServer *http.Server
}

// New wires the server. now may be nil, in which case time.Now is used.
func New(planner PlanService, chatService ChatService, logger *log.Logger, opts Options, now func() time.Time) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if now == nil {
		now = time.Now
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 10 * time.Second
	}
	s := &Server{planner: planner, chat: chatService, logger: logger, opts: opts, now: now}
	s.httpServer = &http.Server{
		Addr:         opts.Address,
		Handler:      s.Router(),
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
	}
	return s
}

// Router builds the route tree. Exposed separately so tests can drive it
// through httptest without binding a listener.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(s.requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/healthz", s.handleHealthz)
	r.Post("/chat", s.handleChat)
	r.Post("/generate-plan", s.handleGeneratePlan)
	r.Post("/generate-pdf", s.handleGeneratePDF)
	r.Post("/generate-report", s.handleGenerateReport)
	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "address", s.opts.Address)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()
	s.logger.Info("shutting down http server")
	return s.httpServer.Shutdown(shutdownCtx)
}

type contextKey string

const requestIDKey contextKey = "request_id"

func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := s.now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		id, _ := r.Context().Value(requestIDKey).(string)
		s.logger.Info("request completed",
			"request_id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration_ms", time.Since(start).Milliseconds())
	})
}
