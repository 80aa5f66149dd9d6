package wishlist

import (
	"context"
	"testing"

	"github.com/careportal/careportal/internal/doctors"
	"github.com/careportal/careportal/internal/kv"
	"github.com/careportal/careportal/internal/notifications"
	"github.com/careportal/careportal/pkg/logging"
)

type recordedNotification struct {
	Title string
	Kind  notifications.Kind
}

type recordingNotifier struct {
	emitted []recordedNotification
}

func (r *recordingNotifier) Notify(ctx context.Context, title, description string, kind notifications.Kind) {
	r.emitted = append(r.emitted, recordedNotification{title, kind})
}

func testDirectory() *doctors.StaticDirectory {
	return doctors.NewStaticDirectory([]*doctors.Doctor{
		{ID: "1", PublicID: "evelyn-reed", Name: "Dr. Evelyn Reed", Specialty: "Cardiology"},
		{ID: "2", Name: "Dr. Marcus Chen", Specialty: "Dermatology"},
	})
}

func newTestStore(t *testing.T) (*Store, *recordingNotifier, kv.Store) {
	t.Helper()
	mem := kv.NewMemoryStore()
	notifier := &recordingNotifier{}
	store := NewStore(context.Background(), mem, testDirectory(), notifier, logging.Default())
	return store, notifier, mem
}

func TestToggleAddsThenRemoves(t *testing.T) {
	store, notifier, _ := newTestStore(t)
	ctx := context.Background()

	if store.Contains("1") {
		t.Fatal("store should start empty")
	}

	store.Toggle(ctx, "1")
	if !store.Contains("1") {
		t.Fatal("expected membership after first toggle")
	}

	store.Toggle(ctx, "1")
	if store.Contains("1") {
		t.Fatal("toggle must be its own inverse")
	}

	if len(notifier.emitted) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(notifier.emitted))
	}
	if notifier.emitted[0].Kind != notifications.KindInfo {
		t.Errorf("add notification kind = %s, want info", notifier.emitted[0].Kind)
	}
	if notifier.emitted[1].Kind != notifications.KindDestructive {
		t.Errorf("remove notification kind = %s, want destructive", notifier.emitted[1].Kind)
	}
}

func TestToggleNormalizesIdentifier(t *testing.T) {
	store, _, _ := newTestStore(t)
	ctx := context.Background()

	store.Toggle(ctx, "evelyn-reed")

	if !store.Contains("1") {
		t.Error("membership stored under public id instead of canonical id")
	}
	if !store.Contains("evelyn-reed") {
		t.Error("Contains should accept the public id too")
	}

	// Toggling via the other identifier removes the same membership.
	store.Toggle(ctx, "1")
	if store.Contains("evelyn-reed") {
		t.Error("toggle via primary id should remove membership added via public id")
	}
}

func TestListResolvesAndDropsUnknown(t *testing.T) {
	store, _, mem := newTestStore(t)
	ctx := context.Background()

	store.Toggle(ctx, "1")
	store.Toggle(ctx, "2")

	// Simulate a stale persisted id whose doctor no longer exists.
	if err := mem.Set(ctx, StorageKey, []byte(`["1","gone","2"]`)); err != nil {
		t.Fatalf("seed kv: %v", err)
	}
	reloaded := NewStore(ctx, mem, testDirectory(), nil, logging.Default())

	list := reloaded.List()
	if len(list) != 2 {
		t.Fatalf("expected unknown ids dropped, got %d entries", len(list))
	}
	if list[0].ID != "1" || list[1].ID != "2" {
		t.Errorf("unexpected list order: %s, %s", list[0].ID, list[1].ID)
	}
}

func TestPersistsAcrossReload(t *testing.T) {
	store, _, mem := newTestStore(t)
	ctx := context.Background()

	store.Toggle(ctx, "1")

	reloaded := NewStore(ctx, mem, testDirectory(), nil, logging.Default())
	if !reloaded.Contains("1") {
		t.Error("membership should survive reload")
	}
}

func TestCorruptedPersistenceLoadsEmpty(t *testing.T) {
	mem := kv.NewMemoryStore()
	ctx := context.Background()
	if err := mem.Set(ctx, StorageKey, []byte("not an array")); err != nil {
		t.Fatalf("seed kv: %v", err)
	}

	store := NewStore(ctx, mem, testDirectory(), nil, logging.Default())
	if len(store.List()) != 0 {
		t.Error("corrupted persistence should load as empty")
	}
}

func TestToggleBroadcasts(t *testing.T) {
	store, _, _ := newTestStore(t)
	ctx := context.Background()

	calls := 0
	unsub := store.Subscribe(func() { calls++ })
	defer unsub()

	store.Toggle(ctx, "1")
	store.Toggle(ctx, "1")

	if calls != 2 {
		t.Errorf("expected 2 broadcasts, got %d", calls)
	}
}
