package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/careportal/careportal/internal/doctors"
	"github.com/careportal/careportal/internal/wishlist"
	"github.com/careportal/careportal/pkg/logging"
)

// WishlistHandler exposes the favorited-doctor set to the UI layer.
type WishlistHandler struct {
	store  *wishlist.Store
	logger *logging.Logger
}

// NewWishlistHandler creates a wishlist handler.
func NewWishlistHandler(store *wishlist.Store, logger *logging.Logger) *WishlistHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &WishlistHandler{store: store, logger: logger}
}

// WishlistResponse is the response body for listing favorites.
type WishlistResponse struct {
	Doctors []*doctors.Doctor `json:"doctors"`
	Count   int               `json:"count"`
}

// List handles GET /wishlist, resolving stored ids to doctors.
func (h *WishlistHandler) List(w http.ResponseWriter, r *http.Request) {
	list := h.store.List()
	respondJSON(w, http.StatusOK, WishlistResponse{Doctors: list, Count: len(list)})
}

// MembershipResponse reports whether a doctor is favorited.
type MembershipResponse struct {
	DoctorID string `json:"doctor_id"`
	Contains bool   `json:"contains"`
}

// Contains handles GET /wishlist/{doctorID}.
func (h *WishlistHandler) Contains(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "doctorID")
	respondJSON(w, http.StatusOK, MembershipResponse{
		DoctorID: id,
		Contains: h.store.Contains(id),
	})
}

// Toggle handles POST /wishlist/{doctorID}/toggle and reports the resulting
// membership.
func (h *WishlistHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "doctorID")
	h.store.Toggle(r.Context(), id)
	respondJSON(w, http.StatusOK, MembershipResponse{
		DoctorID: id,
		Contains: h.store.Contains(id),
	})
}
