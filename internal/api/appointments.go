package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/careportal/careportal/internal/appointments"
	"github.com/careportal/careportal/pkg/logging"
)

// AppointmentsHandler exposes the appointment store to the UI layer.
type AppointmentsHandler struct {
	store  *appointments.Store
	logger *logging.Logger
}

// NewAppointmentsHandler creates an appointments handler.
func NewAppointmentsHandler(store *appointments.Store, logger *logging.Logger) *AppointmentsHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &AppointmentsHandler{store: store, logger: logger}
}

// ListResponse is the response body for listing appointments.
type ListResponse struct {
	Appointments []appointments.Appointment `json:"appointments"`
	Count        int                        `json:"count"`
}

// List handles GET /appointments. An optional ?doctor= query filters by
// doctor identifier (primary or public id).
func (h *AppointmentsHandler) List(w http.ResponseWriter, r *http.Request) {
	var list []appointments.Appointment
	if doctor := r.URL.Query().Get("doctor"); doctor != "" {
		list = h.store.ListForDoctor(doctor)
	} else {
		list = h.store.ListAll()
	}
	if list == nil {
		list = []appointments.Appointment{}
	}
	respondJSON(w, http.StatusOK, ListResponse{Appointments: list, Count: len(list)})
}

// CreateRequest is the request body for booking an appointment.
type CreateRequest struct {
	DoctorID string `json:"doctor_id"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}

// Create handles POST /appointments.
func (h *AppointmentsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.DoctorID == "" || req.Date == "" || req.Time == "" {
		respondError(w, http.StatusBadRequest, "doctor_id, date, and time are required")
		return
	}

	appt, err := h.store.Create(r.Context(), req.DoctorID, req.Date, req.Time)
	if err != nil {
		if errors.Is(err, appointments.ErrDoctorNotFound) {
			respondError(w, http.StatusNotFound, "doctor not found")
			return
		}
		h.logger.Error("failed to create appointment", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to create appointment")
		return
	}

	respondJSON(w, http.StatusCreated, appt)
}

// UpdateStatusRequest is the request body for a status transition.
type UpdateStatusRequest struct {
	Status appointments.Status `json:"status"`
}

// UpdateStatus handles PATCH /appointments/{id}/status. The store treats
// unknown ids as silent no-ops; the handler surfaces the miss as 404.
func (h *AppointmentsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Status != appointments.StatusCompleted && req.Status != appointments.StatusCanceled {
		respondError(w, http.StatusBadRequest, "status must be completed or canceled")
		return
	}

	if !h.store.UpdateStatus(r.Context(), id, req.Status) {
		respondError(w, http.StatusNotFound, "appointment not found or not upcoming")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RescheduleRequest is the request body for moving an appointment.
type RescheduleRequest struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// Reschedule handles PATCH /appointments/{id}/schedule.
func (h *AppointmentsHandler) Reschedule(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req RescheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Date == "" || req.Time == "" {
		respondError(w, http.StatusBadRequest, "date and time are required")
		return
	}

	if !h.store.Reschedule(r.Context(), id, req.Date, req.Time) {
		respondError(w, http.StatusNotFound, "appointment not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
