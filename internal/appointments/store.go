package appointments

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/careportal/careportal/internal/doctors"
	"github.com/careportal/careportal/internal/notifications"
	"github.com/careportal/careportal/internal/observability/metrics"
	"github.com/careportal/careportal/internal/pubsub"
	"github.com/careportal/careportal/pkg/logging"
)

// Notifier is the side-effect seam the store emits user-facing events
// through. It is deliberately narrower than the notification store.
type Notifier interface {
	Notify(ctx context.Context, title, description string, kind notifications.Kind)
}

// Store owns the authoritative in-process appointment collection. Creation
// prepends, so the collection is held newest-created first. Appointments are
// not persisted; only the notification side effects reach storage.
//
// Broadcasts run after a mutation is fully applied, outside the collection
// lock, so subscriber callbacks may mutate the store again.
type Store struct {
	directory doctors.Directory
	notifier  Notifier
	hub       *pubsub.Hub
	logger    *logging.Logger
	metrics   *metrics.StoreMetrics
	now       func() time.Time

	mu    sync.Mutex
	seq   int64
	items []Appointment
}

// NewStore creates an empty appointment store.
func NewStore(directory doctors.Directory, notifier Notifier, logger *logging.Logger) *Store {
	if directory == nil {
		panic("appointments: doctor directory required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Store{
		directory: directory,
		notifier:  notifier,
		hub:       pubsub.NewHub(),
		logger:    logger.WithComponent("appointments"),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// WithMetrics attaches store metrics.
func (s *Store) WithMetrics(m *metrics.StoreMetrics) *Store {
	s.metrics = m
	return s
}

// WithClock overrides the timestamp source. Test hook.
func (s *Store) WithClock(now func() time.Time) *Store {
	if now != nil {
		s.now = now
	}
	return s
}

// ListAll returns a snapshot of the collection, newest-created first.
func (s *Store) ListAll() []Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Appointment, len(s.items))
	copy(out, s.items)
	return out
}

// ListForDoctor filters the collection by doctor. The identifier may be a
// primary id or a public id; it is normalized before matching, so every call
// site filters in the same identifier space.
func (s *Store) ListForDoctor(identifier string) []Appointment {
	id := s.directory.Normalize(identifier)

	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Appointment
	for _, appt := range s.items {
		if appt.Doctor.ID == id {
			out = append(out, appt)
		}
	}
	return out
}

// Create books an appointment with the given doctor. It fails only when the
// doctor identifier resolves to nothing; overlapping bookings for the same
// doctor, date, and slot are allowed.
func (s *Store) Create(ctx context.Context, doctorID, date, slot string) (Appointment, error) {
	doc, err := s.directory.FindByID(doctorID)
	if err != nil {
		return Appointment{}, fmt.Errorf("appointments: create: %w", err)
	}

	s.mu.Lock()
	s.seq++
	appt := Appointment{
		ID:       strconv.FormatInt(s.seq, 10),
		Doctor:   doc.Clone(),
		Date:     date,
		Time:     slot,
		Status:   StatusUpcoming,
		BookedAt: s.now(),
	}
	s.items = append([]Appointment{appt}, s.items...)
	s.mu.Unlock()

	s.notify(ctx, "Appointment booked",
		fmt.Sprintf("Your appointment with %s on %s at %s is confirmed.", doc.Name, date, slot),
		notifications.KindSuccess)
	s.metrics.ObserveAppointmentCreated(string(StatusUpcoming))
	s.hub.Broadcast()

	s.logger.Info("appointment created", "id", appt.ID, "doctor_id", doc.ID, "date", date, "time", slot)
	return appt, nil
}

// UpdateStatus moves an upcoming appointment to completed or canceled. An
// unknown id, an invalid target status, or an already-terminal appointment is
// a silent no-op; the boolean return lets callers observe whether anything
// changed without turning the miss into an error.
func (s *Store) UpdateStatus(ctx context.Context, id string, status Status) bool {
	var matched *Appointment

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		if !validTransition(s.items[i].Status, status) {
			s.mu.Unlock()
			return false
		}
		s.items[i].Status = status
		snapshot := s.items[i]
		matched = &snapshot
		break
	}
	s.mu.Unlock()

	if matched == nil {
		return false
	}

	if status == StatusCanceled {
		s.notify(ctx, "Appointment canceled",
			fmt.Sprintf("Your appointment with %s on %s at %s was canceled.",
				matched.Doctor.Name, matched.Date, matched.Time),
			notifications.KindDestructive)
	}
	s.metrics.ObserveStatusTransition(string(status))
	s.hub.Broadcast()

	s.logger.Info("appointment status updated", "id", id, "status", string(status))
	return true
}

// Reschedule overwrites an appointment's date and time in place, leaving
// status and id untouched. Unknown ids are a silent no-op.
func (s *Store) Reschedule(ctx context.Context, id, date, slot string) bool {
	var matched *Appointment

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		s.items[i].Date = date
		s.items[i].Time = slot
		snapshot := s.items[i]
		matched = &snapshot
		break
	}
	s.mu.Unlock()

	if matched == nil {
		return false
	}

	s.notify(ctx, "Appointment rescheduled",
		fmt.Sprintf("Your appointment with %s was moved to %s at %s.",
			matched.Doctor.Name, date, slot),
		notifications.KindInfo)
	s.metrics.ObserveReschedule()
	s.hub.Broadcast()

	s.logger.Info("appointment rescheduled", "id", id, "date", date, "time", slot)
	return true
}

// Subscribe registers a callback invoked after every applied mutation.
func (s *Store) Subscribe(fn func()) func() {
	return s.hub.Subscribe(fn)
}

func (s *Store) notify(ctx context.Context, title, description string, kind notifications.Kind) {
	if s.notifier == nil {
		return
	}
	s.notifier.Notify(ctx, title, description, kind)
	s.metrics.ObserveNotification(string(kind))
}
