package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/careportal/careportal/internal/doctors"
	"github.com/careportal/careportal/pkg/logging"
)

// DoctorsHandler serves the reference doctor directory.
type DoctorsHandler struct {
	directory doctors.Directory
	logger    *logging.Logger
}

// NewDoctorsHandler creates a doctors handler.
func NewDoctorsHandler(directory doctors.Directory, logger *logging.Logger) *DoctorsHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &DoctorsHandler{directory: directory, logger: logger}
}

// List handles GET /doctors.
func (h *DoctorsHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.directory.List())
}

// Get handles GET /doctors/{id}. The id may be a primary or public id.
func (h *DoctorsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	doc, err := h.directory.FindByID(id)
	if err != nil {
		if errors.Is(err, doctors.ErrDoctorNotFound) {
			respondError(w, http.StatusNotFound, "doctor not found")
			return
		}
		h.logger.Error("doctor lookup failed", "error", err, "id", id)
		respondError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	respondJSON(w, http.StatusOK, doc)
}
