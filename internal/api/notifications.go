package api

import (
	"net/http"

	"github.com/careportal/careportal/internal/notifications"
	"github.com/careportal/careportal/pkg/logging"
)

// NotificationsHandler exposes the notification log to the UI layer.
type NotificationsHandler struct {
	store  *notifications.Store
	logger *logging.Logger
}

// NewNotificationsHandler creates a notifications handler.
func NewNotificationsHandler(store *notifications.Store, logger *logging.Logger) *NotificationsHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &NotificationsHandler{store: store, logger: logger}
}

// NotificationsResponse is the response body for listing notifications.
type NotificationsResponse struct {
	Notifications []notifications.Notification `json:"notifications"`
	UnreadCount   int                          `json:"unread_count"`
}

// List handles GET /notifications, newest first.
func (h *NotificationsHandler) List(w http.ResponseWriter, r *http.Request) {
	list := h.store.ListAll()
	if list == nil {
		list = []notifications.Notification{}
	}
	respondJSON(w, http.StatusOK, NotificationsResponse{
		Notifications: list,
		UnreadCount:   h.store.UnreadCount(),
	})
}

// MarkAllRead handles POST /notifications/read-all.
func (h *NotificationsHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	h.store.MarkAllRead(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// ClearAll handles DELETE /notifications.
func (h *NotificationsHandler) ClearAll(w http.ResponseWriter, r *http.Request) {
	h.store.ClearAll(r.Context())
	w.WriteHeader(http.StatusNoContent)
}
