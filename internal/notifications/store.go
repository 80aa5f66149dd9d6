package notifications

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/careportal/careportal/internal/kv"
	"github.com/careportal/careportal/internal/pubsub"
	"github.com/careportal/careportal/pkg/logging"
)

// StorageKey is where the serialized collection lives in the kv substrate.
const StorageKey = "careportal:notifications"

// Store is an append-only notification log with read tracking. The full
// collection is persisted after every mutation and reloaded at construction;
// absent or corrupted stored data loads as an empty collection.
//
// Broadcasts run after the mutation is applied and persisted, outside the
// collection lock, so a subscriber callback may mutate the store again and
// trigger a nested broadcast.
type Store struct {
	kv     kv.Store
	hub    *pubsub.Hub
	logger *logging.Logger
	now    func() time.Time

	mu sync.Mutex
	// items is held newest-created first (Append prepends); ListAll still
	// re-sorts by timestamp on every read.
	items []Notification
}

// NewStore loads any persisted collection and returns a ready store.
func NewStore(ctx context.Context, store kv.Store, logger *logging.Logger) *Store {
	if store == nil {
		panic("notifications: kv store required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	s := &Store{
		kv:     store,
		hub:    pubsub.NewHub(),
		logger: logger.WithComponent("notifications"),
		now:    func() time.Time { return time.Now().UTC() },
	}
	s.load(ctx)
	return s
}

// WithClock overrides the timestamp source. Test hook.
func (s *Store) WithClock(now func() time.Time) *Store {
	if now != nil {
		s.now = now
	}
	return s
}

func (s *Store) load(ctx context.Context) {
	data, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		if err != kv.ErrKeyNotFound {
			s.logger.Warn("failed to read persisted notifications, starting empty", "error", err)
		}
		return
	}
	var items []Notification
	if err := json.Unmarshal(data, &items); err != nil {
		// Corrupted state is treated as an empty collection, never an error.
		s.logger.Warn("persisted notifications corrupted, starting empty", "error", err)
		return
	}
	s.items = items
}

// Append records a notification with a fresh id, the current timestamp, and
// read=false, then persists and broadcasts.
func (s *Store) Append(ctx context.Context, title, description string, kind Kind) Notification {
	n := Notification{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Kind:        kind,
		CreatedAt:   s.now(),
	}

	s.mu.Lock()
	s.items = append([]Notification{n}, s.items...)
	s.persistLocked(ctx)
	s.mu.Unlock()
	s.hub.Broadcast()

	s.logger.Debug("notification appended", "id", n.ID, "kind", string(kind))
	return n
}

// ListAll returns the collection sorted by timestamp descending. The sort is
// derived on every read rather than trusting insertion order.
func (s *Store) ListAll() []Notification {
	s.mu.Lock()
	out := make([]Notification, len(s.items))
	copy(out, s.items)
	s.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// UnreadCount reports how many notifications are still unread.
func (s *Store) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, n := range s.items {
		if !n.Read {
			count++
		}
	}
	return count
}

// MarkAllRead flips every read flag, persists, and broadcasts. There is no
// per-item read operation.
func (s *Store) MarkAllRead(ctx context.Context) {
	s.mu.Lock()
	for i := range s.items {
		s.items[i].Read = true
	}
	s.persistLocked(ctx)
	s.mu.Unlock()
	s.hub.Broadcast()
}

// ClearAll empties the collection, persists, and broadcasts.
func (s *Store) ClearAll(ctx context.Context) {
	s.mu.Lock()
	s.items = nil
	s.persistLocked(ctx)
	s.mu.Unlock()
	s.hub.Broadcast()
}

// Notify is the narrow side-effect seam the appointment and wishlist stores
// emit through; it is Append with the returned record discarded.
func (s *Store) Notify(ctx context.Context, title, description string, kind Kind) {
	s.Append(ctx, title, description, kind)
}

// Subscribe registers a callback invoked after every mutation.
func (s *Store) Subscribe(fn func()) func() {
	return s.hub.Subscribe(fn)
}

func (s *Store) persistLocked(ctx context.Context) {
	data, err := json.Marshal(s.items)
	if err != nil {
		s.logger.Error("failed to marshal notifications", "error", err)
		return
	}
	if err := s.kv.Set(ctx, StorageKey, data); err != nil {
		s.logger.Error("failed to persist notifications", "error", err)
	}
}
