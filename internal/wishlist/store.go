package wishlist

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/careportal/careportal/internal/doctors"
	"github.com/careportal/careportal/internal/kv"
	"github.com/careportal/careportal/internal/notifications"
	"github.com/careportal/careportal/internal/observability/metrics"
	"github.com/careportal/careportal/internal/pubsub"
	"github.com/careportal/careportal/pkg/logging"
)

// StorageKey is where the serialized id array lives in the kv substrate.
const StorageKey = "careportal:wishlist"

// Notifier is the side-effect seam toggles emit through.
type Notifier interface {
	Notify(ctx context.Context, title, description string, kind notifications.Kind)
}

// Store is a favorited-doctor membership set, persisted as a JSON id array
// after every mutation. Membership order is toggle-on order.
type Store struct {
	kv        kv.Store
	directory doctors.Directory
	notifier  Notifier
	hub       *pubsub.Hub
	logger    *logging.Logger
	metrics   *metrics.StoreMetrics

	mu  sync.Mutex
	ids []string
}

// NewStore loads any persisted membership and returns a ready store.
func NewStore(ctx context.Context, store kv.Store, directory doctors.Directory, notifier Notifier, logger *logging.Logger) *Store {
	if store == nil {
		panic("wishlist: kv store required")
	}
	if directory == nil {
		panic("wishlist: doctor directory required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	s := &Store{
		kv:        store,
		directory: directory,
		notifier:  notifier,
		hub:       pubsub.NewHub(),
		logger:    logger.WithComponent("wishlist"),
	}
	s.load(ctx)
	return s
}

// WithMetrics attaches store metrics.
func (s *Store) WithMetrics(m *metrics.StoreMetrics) *Store {
	s.metrics = m
	return s
}

func (s *Store) load(ctx context.Context) {
	data, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		if err != kv.ErrKeyNotFound {
			s.logger.Warn("failed to read persisted wishlist, starting empty", "error", err)
		}
		return
	}
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		s.logger.Warn("persisted wishlist corrupted, starting empty", "error", err)
		return
	}
	s.ids = ids
}

// List resolves the stored ids against the reference directory. Ids with no
// matching doctor are silently dropped from the result, not an error.
func (s *Store) List() []*doctors.Doctor {
	s.mu.Lock()
	ids := make([]string, len(s.ids))
	copy(ids, s.ids)
	s.mu.Unlock()

	out := make([]*doctors.Doctor, 0, len(ids))
	for _, id := range ids {
		doc, err := s.directory.FindByID(id)
		if err != nil {
			continue
		}
		out = append(out, doc)
	}
	return out
}

// Contains reports membership for the given doctor id.
func (s *Store) Contains(doctorID string) bool {
	id := s.directory.Normalize(doctorID)

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexLocked(id) >= 0
}

// Toggle adds the doctor when absent and removes it when present, then
// persists and broadcasts. Toggling twice restores the original membership,
// though both toggles emit notifications.
func (s *Store) Toggle(ctx context.Context, doctorID string) {
	id := s.directory.Normalize(doctorID)

	s.mu.Lock()
	idx := s.indexLocked(id)
	added := idx < 0
	if added {
		s.ids = append(s.ids, id)
	} else {
		s.ids = append(s.ids[:idx], s.ids[idx+1:]...)
	}
	s.persistLocked(ctx)
	s.mu.Unlock()

	name := id
	if doc, err := s.directory.FindByID(id); err == nil {
		name = doc.Name
	}
	if added {
		s.notify(ctx, "Added to favorites",
			fmt.Sprintf("%s was added to your favorites.", name), notifications.KindInfo)
	} else {
		s.notify(ctx, "Removed from favorites",
			fmt.Sprintf("%s was removed from your favorites.", name), notifications.KindDestructive)
	}
	s.metrics.ObserveWishlistToggle(added)
	s.hub.Broadcast()

	s.logger.Debug("wishlist toggled", "doctor_id", id, "added", added)
}

// Subscribe registers a callback invoked after every mutation.
func (s *Store) Subscribe(fn func()) func() {
	return s.hub.Subscribe(fn)
}

func (s *Store) indexLocked(id string) int {
	for i, existing := range s.ids {
		if existing == id {
			return i
		}
	}
	return -1
}

func (s *Store) persistLocked(ctx context.Context) {
	data, err := json.Marshal(s.ids)
	if err != nil {
		s.logger.Error("failed to marshal wishlist", "error", err)
		return
	}
	if err := s.kv.Set(ctx, StorageKey, data); err != nil {
		s.logger.Error("failed to persist wishlist", "error", err)
	}
}

func (s *Store) notify(ctx context.Context, title, description string, kind notifications.Kind) {
	if s.notifier == nil {
		return
	}
	s.notifier.Notify(ctx, title, description, kind)
	s.metrics.ObserveNotification(string(kind))
}
