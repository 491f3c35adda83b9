package interfaces

import (
	"github.com/google/uuid"
	"github.com/zeusync/contentdb/internal/core/models"
)

// Entry is one id/object slot of a Lookup. Object may be nil when the slot
// holds an id whose object is missing.
type Entry struct {
	ID     uuid.UUID
	Object models.Object
}

// Lookup stores every object of a single kind.
//
// Keys, Values and Entries must agree with each other and keep a stable
// iteration order between mutations. Implementations are not required to be
// safe for concurrent use.
type Lookup interface {
	// Get returns nil when id is unknown.
	Get(id uuid.UUID) models.Object
	// Add stores obj under its own id; it returns false if the id is taken.
	Add(obj models.Object) bool
	// Set stores obj under id, replacing whatever was there. obj may be nil.
	Set(id uuid.UUID, obj models.Object)
	// Delete removes obj by id and reports whether something was removed.
	Delete(obj models.Object) bool
	Contains(id uuid.UUID) bool

	Keys() []uuid.UUID
	Values() []models.Object
	Entries() []Entry
	Count() int

	Clear()
}

// LookupFactory builds an empty Lookup for a kind.
type LookupFactory func(kind models.Kind) Lookup
