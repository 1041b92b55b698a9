package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// DefaultPageSize is used by the items endpoint when no limit is given.
const DefaultPageSize = 20

type openFeedRequest struct {
	Category string `json:"category"`
}

// handleOpenFeed opens a feed session. The optional JSON body selects the
// category; an empty body opens the whole feed. It returns HTTP 201 with the
// session.
func (h *Handler) handleOpenFeed(w http.ResponseWriter, r *http.Request) {
	var req openFeedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	sess, err := h.svc.OpenFeed(r.Context(), req.Category)
	if err != nil {
		h.writeError(w, r, "open feed", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, sess)
}

// handleItems returns a page of the augmented feed. It accepts optional
// `offset` and `limit` query parameters.
func (h *Handler) handleItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	offset, ok := intParam(q.Get("offset"), 0)
	if !ok {
		http.Error(w, "invalid offset", http.StatusBadRequest)
		return
	}
	limit, ok := intParam(q.Get("limit"), DefaultPageSize)
	if !ok {
		http.Error(w, "invalid limit", http.StatusBadRequest)
		return
	}
	page, err := h.svc.Items(r.Context(), chi.URLParam(r, "session"), offset, limit)
	if err != nil {
		h.writeError(w, r, "items", err)
		return
	}
	h.writeJSON(w, http.StatusOK, page)
}

func (h *Handler) handleRefresh(w http.ResponseWriter, r *http.Request) {
	sess, err := h.svc.Refresh(r.Context(), chi.URLParam(r, "session"))
	if err != nil {
		h.writeError(w, r, "refresh", err)
		return
	}
	h.writeJSON(w, http.StatusOK, sess)
}

func (h *Handler) handleCloseFeed(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Close(r.Context(), chi.URLParam(r, "session")); err != nil {
		h.writeError(w, r, "close feed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleConversion records a conversion for an ad of the session. It
// returns HTTP 202 since the event is delivered in the background.
func (h *Handler) handleConversion(w http.ResponseWriter, r *http.Request) {
	err := h.svc.TrackConversion(r.Context(), chi.URLParam(r, "session"), chi.URLParam(r, "ad"))
	if err != nil {
		h.writeError(w, r, "conversion", err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func intParam(s string, def int) (int, bool) {
	if s == "" {
		return def, true
	}
	v, err := strconv.Atoi(s)
	return v, err == nil
}
