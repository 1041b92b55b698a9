package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"adchain/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds the feed use case to execute business logic and a logger
// for structured logging. Routes are registered on a chi.Router.
type Handler struct {
	svc    port.FeedUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. metrics serves
// /metrics when not nil.
func NewHandler(svc port.FeedUseCase, metrics http.Handler, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/feeds", h.handleOpenFeed)
		r.Route("/feeds/{session}", func(r chi.Router) {
			r.Get("/items", h.handleItems)
			r.Get("/items/{position}/click", h.handleClick)
			r.Post("/refresh", h.handleRefresh)
			r.Delete("/", h.handleCloseFeed)
			r.Post("/ads/{ad}/conversion", h.handleConversion)
		})
		r.Get("/stats/overview", h.handleStatsOverview)
	})
	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics)
	}
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// writeJSON encodes v with the given status.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps use case errors onto status codes. Unknown errors are
// logged and reported as 500 without details.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, port.ErrSessionNotFound), errors.Is(err, port.ErrAdNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, port.ErrInvalidRequest):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, port.ErrAdapterBusy):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, port.ErrAdapterDestroyed):
		http.Error(w, err.Error(), http.StatusGone)
	default:
		h.logger.Error(op+" error",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
