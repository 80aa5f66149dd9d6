package doctors

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

//go:embed seed.json
var seedData []byte

// Directory is the reference doctor lookup consumed by the appointment and
// wishlist stores.
type Directory interface {
	// FindByID resolves any accepted identifier (primary id or public id)
	// to a doctor, or ErrDoctorNotFound.
	FindByID(identifier string) (*Doctor, error)

	// Normalize maps any accepted identifier to the canonical primary id.
	// Unknown identifiers pass through unchanged so filters on them simply
	// match nothing.
	Normalize(identifier string) string

	// List returns every doctor ordered by id.
	List() []*Doctor
}

// StaticDirectory serves doctors from an in-memory dataset. Profiles are
// mutated only by the out-of-scope editing flow, so reads take no snapshot
// copies beyond the list itself.
type StaticDirectory struct {
	mu       sync.RWMutex
	byID     map[string]*Doctor
	byPublic map[string]string
}

// NewStaticDirectory builds a directory over the given doctors.
func NewStaticDirectory(list []*Doctor) *StaticDirectory {
	d := &StaticDirectory{
		byID:     make(map[string]*Doctor, len(list)),
		byPublic: make(map[string]string, len(list)),
	}
	for _, doc := range list {
		if doc == nil || doc.ID == "" {
			continue
		}
		d.byID[doc.ID] = doc
		if doc.PublicID != "" {
			d.byPublic[doc.PublicID] = doc.ID
		}
	}
	return d
}

// NewSeededDirectory loads the embedded demo dataset.
func NewSeededDirectory() (*StaticDirectory, error) {
	var list []*Doctor
	if err := json.Unmarshal(seedData, &list); err != nil {
		return nil, fmt.Errorf("doctors: decode seed data: %w", err)
	}
	return NewStaticDirectory(list), nil
}

// FindByID resolves a primary or public identifier to a doctor.
func (d *StaticDirectory) FindByID(identifier string) (*Doctor, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	doc, ok := d.byID[d.normalizeLocked(identifier)]
	if !ok {
		return nil, ErrDoctorNotFound
	}
	return doc, nil
}

// Normalize maps a public id to the primary id it belongs to.
func (d *StaticDirectory) Normalize(identifier string) string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.normalizeLocked(identifier)
}

func (d *StaticDirectory) normalizeLocked(identifier string) string {
	if id, ok := d.byPublic[identifier]; ok {
		return id
	}
	return identifier
}

// List returns all doctors ordered by id.
func (d *StaticDirectory) List() []*Doctor {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]*Doctor, 0, len(d.byID))
	for _, doc := range d.byID {
		out = append(out, doc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Specialties returns the distinct specialty names in the directory,
// sorted. Used by the assistant to constrain recommendations.
func (d *StaticDirectory) Specialties() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, doc := range d.byID {
		if doc.Specialty != "" {
			seen[doc.Specialty] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

var _ Directory = (*StaticDirectory)(nil)
