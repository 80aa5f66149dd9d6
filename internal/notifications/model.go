package notifications

import "time"

// Kind selects the icon/style a notification is rendered with; it carries no
// other semantics.
type Kind string

const (
	KindSuccess     Kind = "success"
	KindDestructive Kind = "destructive"
	KindInfo        Kind = "info"
)

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindSuccess, KindDestructive, KindInfo:
		return true
	}
	return false
}

// Notification is one entry in the user-facing event log. Entries are only
// ever mutated through the bulk mark-all-read flag flip and only deleted
// through the bulk clear.
type Notification struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Kind        Kind      `json:"kind"`
	CreatedAt   time.Time `json:"created_at"`
	Read        bool      `json:"read"`
}
