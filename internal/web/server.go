// Package web serves the wireframe UI over HTTP with HTMX partial swaps.
package web

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rpggio/wirecrm/internal/domain/account"
	"github.com/rpggio/wirecrm/internal/domain/activity"
	"github.com/rpggio/wirecrm/internal/domain/edit"
	"github.com/rpggio/wirecrm/internal/domain/navigation"
	"github.com/rpggio/wirecrm/internal/domain/pipeline"
	"github.com/rpggio/wirecrm/internal/toast"
)

// Services holds the domain services the handlers call.
type Services struct {
	Accounts   *account.Service
	Navigation *navigation.Service
	Activities *activity.Service
	Edits      *edit.Service
}

// Config configures the HTTP server.
type Config struct {
	Services  Services
	Formatter pipeline.Formatter
	// MCP, when set, is mounted at /mcp.
	MCP http.Handler
	// Toasts, when set, also receives every toast shown to a browser.
	Toasts toast.Sink
	Logger *slog.Logger
}

// Server holds handler dependencies.
type Server struct {
	svc    Services
	format pipeline.Formatter
	toasts toast.Sink
	logger *slog.Logger
}

// NewServer creates the HTTP router with middleware.
func NewServer(cfg Config) *chi.Mux {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	srv := &Server{svc: cfg.Services, format: cfg.Formatter, toasts: cfg.Toasts, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(LoggingMiddleware(logger))

	r.Get("/health", srv.handleHealth)
	if cfg.MCP != nil {
		r.Handle("/mcp", cfg.MCP)
		r.Handle("/mcp/*", cfg.MCP)
	}

	r.Group(func(r chi.Router) {
		r.Use(BrowserMiddleware)

		r.Get("/", srv.handleIndex)
		r.Get("/screens/{id}", srv.handleScreen)
		r.Post("/nav/back", srv.handleBack)
		r.Post("/nav/{id}", srv.handleNavigate)
		r.Post("/accounts/{id}/open", srv.handleOpenAccount)

		r.Post("/pipeline/events", srv.handlePipelineEvent)
		r.Post("/toast", srv.handleToast)

		r.Get("/activities/new", srv.handleActivityForm)
		r.Post("/activities", srv.handleCreateActivity)
		r.Get("/activities/{id}/outcome", srv.handleOutcomeForm)
		r.Post("/activities/{id}/done", srv.handleMarkDone)

		r.Post("/edits", srv.handleSaveEdit)
		r.Post("/theme", srv.handleSetTheme)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// events starts the response events for one request.
func (s *Server) events() *Events {
	return newEvents(s.toasts)
}

func browserID(r *http.Request) string {
	id, _ := BrowserFromContext(r.Context())
	return id
}

// pathParam returns a decoded route parameter. chi matches against the raw
// path when the request has one, leaving escapes like %2F in the value.
func pathParam(r *http.Request, name string) string {
	value := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return value
	}
	if decoded, err := url.PathUnescape(value); err == nil {
		return decoded
	}
	return value
}
