package httpadapter

import (
	"net/http"
	"time"

	"adchain/internal/core/port"
)

// handleStatsOverview returns aggregated engagement over a specified period.
// It accepts optional `from`, `to` (RFC3339 timestamps) and `ad_id` query
// parameters. If no period is provided, it defaults to the last 24 hours.
// Invalid parameters result in HTTP 400. Internal errors produce HTTP 500.
func (h *Handler) handleStatsOverview(w http.ResponseWriter, r *http.Request) {
	var (
		q       = r.URL.Query()
		fromStr = q.Get("from")
		toStr   = q.Get("to")
		req     port.StatsReq
		err     error
	)

	if fromStr != "" {
		req.From, err = time.Parse(time.RFC3339, fromStr)
		if err != nil {
			http.Error(w, "invalid 'from' timestamp", http.StatusBadRequest)
			return
		}
	} else {
		req.From = time.Now().Add(-24 * time.Hour)
	}

	if toStr != "" {
		req.To, err = time.Parse(time.RFC3339, toStr)
		if err != nil {
			http.Error(w, "invalid 'to' timestamp", http.StatusBadRequest)
			return
		}
	} else {
		req.To = time.Now()
	}

	if req.To.Before(req.From) {
		http.Error(w, "'to' is before 'from'", http.StatusBadRequest)
		return
	}

	if adID := q.Get("ad_id"); adID != "" {
		req.AdID = &adID
	}

	stats, err := h.svc.GetStats(r.Context(), req)
	if err != nil {
		h.writeError(w, r, "stats", err)
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}
