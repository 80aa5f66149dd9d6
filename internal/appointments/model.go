package appointments

import (
	"time"

	"github.com/careportal/careportal/internal/doctors"
)

// Status is the appointment lifecycle state.
type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
)

// Terminal reports whether no further transitions leave s.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCanceled
}

// validTransition reports whether from may move to to. The only defined
// transitions are upcoming -> completed and upcoming -> canceled.
func validTransition(from, to Status) bool {
	if from != StatusUpcoming {
		return false
	}
	return to == StatusCompleted || to == StatusCanceled
}

// Appointment is one booked visit. The doctor is an embedded snapshot rather
// than a normalized reference, so later profile edits never rewrite booked
// history.
type Appointment struct {
	ID       string         `json:"id"`
	Doctor   doctors.Doctor `json:"doctor"`
	Date     string         `json:"date"`
	Time     string         `json:"time"`
	Status   Status         `json:"status"`
	BookedAt time.Time      `json:"booked_at"`
}
