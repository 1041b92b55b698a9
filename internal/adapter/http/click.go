package httpadapter

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// handleClick handles a tap on a feed position. For an ad it records the
// click and redirects the user to the landing URL. For a feed item it
// returns the item as JSON. A malformed position results in HTTP 400 and
// an unknown session in HTTP 404.
func (h *Handler) handleClick(w http.ResponseWriter, r *http.Request) {
	position, err := strconv.Atoi(chi.URLParam(r, "position"))
	if err != nil {
		http.Error(w, "invalid position", http.StatusBadRequest)
		return
	}
	slot, err := h.svc.Select(r.Context(), chi.URLParam(r, "session"), position)
	if err != nil {
		h.writeError(w, r, "click", err)
		return
	}
	if slot.Ad != nil {
		http.Redirect(w, r, slot.Ad.LandingURL, http.StatusFound)
		return
	}
	h.writeJSON(w, http.StatusOK, slot)
}
