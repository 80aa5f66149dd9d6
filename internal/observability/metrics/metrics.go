package metrics

import "github.com/prometheus/client_golang/prometheus"

// StoreMetrics exposes counters for appointment, notification, and wishlist
// store activity. All observe methods tolerate a nil receiver so stores can
// run unmetered in tests.
type StoreMetrics struct {
	appointmentsCreated *prometheus.CounterVec
	statusTransitions   *prometheus.CounterVec
	reschedules         prometheus.Counter
	notificationsTotal  *prometheus.CounterVec
	wishlistToggles     *prometheus.CounterVec
}

func NewStoreMetrics(reg prometheus.Registerer) *StoreMetrics {
	m := &StoreMetrics{
		appointmentsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "careportal",
			Subsystem: "appointments",
			Name:      "created_total",
			Help:      "Appointments created, by outcome",
		}, []string{"status"}),
		statusTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "careportal",
			Subsystem: "appointments",
			Name:      "status_transitions_total",
			Help:      "Appointment status transitions applied",
		}, []string{"to"}),
		reschedules: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "careportal",
			Subsystem: "appointments",
			Name:      "reschedules_total",
			Help:      "Appointments rescheduled",
		}),
		notificationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "careportal",
			Subsystem: "notifications",
			Name:      "emitted_total",
			Help:      "Notifications emitted, by kind",
		}, []string{"kind"}),
		wishlistToggles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "careportal",
			Subsystem: "wishlist",
			Name:      "toggles_total",
			Help:      "Wishlist toggles, by resulting membership",
		}, []string{"result"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(
		m.appointmentsCreated,
		m.statusTransitions,
		m.reschedules,
		m.notificationsTotal,
		m.wishlistToggles,
	)
	return m
}

func (m *StoreMetrics) ObserveAppointmentCreated(status string) {
	if m == nil {
		return
	}
	m.appointmentsCreated.WithLabelValues(status).Inc()
}

func (m *StoreMetrics) ObserveStatusTransition(to string) {
	if m == nil {
		return
	}
	m.statusTransitions.WithLabelValues(to).Inc()
}

func (m *StoreMetrics) ObserveReschedule() {
	if m == nil {
		return
	}
	m.reschedules.Inc()
}

func (m *StoreMetrics) ObserveNotification(kind string) {
	if m == nil {
		return
	}
	m.notificationsTotal.WithLabelValues(kind).Inc()
}

func (m *StoreMetrics) ObserveWishlistToggle(added bool) {
	if m == nil {
		return
	}
	result := "removed"
	if added {
		result = "added"
	}
	m.wishlistToggles.WithLabelValues(result).Inc()
}
