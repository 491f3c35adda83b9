package registry

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/zeusync/contentdb/internal/core/models"
	"github.com/zeusync/contentdb/internal/core/observability/log"
	"github.com/zeusync/contentdb/internal/core/storage/interfaces"
)

// Pair is an id with its display name.
type Pair struct {
	ID   uuid.UUID
	Name string
}

// Table is a typed view over the lookup of one kind.
type Table[E any, P models.Pointer[E]] struct {
	reg  *Registry
	kind models.Kind
}

// For returns the table of E's kind. The kind is taken from (*E).Kind on a
// zero value, so Kind must not depend on the receiver's fields.
func For[E any, P models.Pointer[E]](r *Registry) *Table[E, P] {
	var zero E
	return &Table[E, P]{reg: r, kind: P(&zero).Kind()}
}

func (t *Table[E, P]) Kind() models.Kind { return t.kind }

func (t *Table[E, P]) TableName() string { return t.kind.Table() }

func (t *Table[E, P]) Lookup() interfaces.Lookup { return t.reg.Lookup(t.kind) }

func (t *Table[E, P]) Count() int { return t.Lookup().Count() }

// Insert registers obj under its id.
func (t *Table[E, P]) Insert(obj P) error {
	if obj == nil {
		return ErrNilObject
	}
	base := obj.Entity()
	if base.ID == uuid.Nil {
		return ErrInvalidID
	}
	if obj.Kind() != t.kind {
		return fmt.Errorf("%w: %s into %s", ErrKindMismatch, obj.Kind(), t.kind)
	}
	if !t.Lookup().Add(obj) {
		return fmt.Errorf("%w: %s %s", ErrDuplicateID, t.kind, base.ID)
	}

	t.reg.logger.Debug("object inserted",
		log.Stringer("kind", t.kind),
		log.Stringer("id", base.ID),
		log.String("name", base.Name),
	)
	t.reg.publish(EventObjectCreated, obj)
	return nil
}

// Delete removes obj from the table and reports whether it was present.
func (t *Table[E, P]) Delete(obj P) bool {
	if obj == nil {
		return false
	}
	if !t.Lookup().Delete(obj) {
		return false
	}

	t.reg.logger.Debug("object deleted",
		log.Stringer("kind", t.kind),
		log.Stringer("id", obj.Entity().ID),
	)
	t.reg.publish(EventObjectDeleted, obj)
	return true
}

// Get returns the object with id, or nil.
func (t *Table[E, P]) Get(id uuid.UUID) P {
	p, _ := t.TryGet(id)
	return p
}

func (t *Table[E, P]) TryGet(id uuid.UUID) (P, bool) {
	p, ok := t.Lookup().Get(id).(P)
	if !ok || p == nil {
		return nil, false
	}
	return p, true
}

// GetName returns the name of id or models.Deleted.
func (t *Table[E, P]) GetName(id uuid.UUID) string {
	return displayName(t.Lookup().Get(id))
}

// Names lists display names ordered by name.
func (t *Table[E, P]) Names() []string {
	ordered := t.reg.ordered(t.Lookup())
	out := make([]string, len(ordered))
	for i, e := range ordered {
		out[i] = e.name
	}
	return out
}

// ItemPairs lists ids with display names, in the same order as Names.
func (t *Table[E, P]) ItemPairs() []Pair {
	ordered := t.reg.ordered(t.Lookup())
	out := make([]Pair, len(ordered))
	for i, e := range ordered {
		out[i] = Pair{ID: e.ID, Name: e.name}
	}
	return out
}

// NameList lists display names in lookup order.
func (t *Table[E, P]) NameList() []string {
	values := t.Lookup().Values()
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = displayName(v)
	}
	return out
}

// IDFromList returns the id at index in name order.
//
// The bound check accepts index == Count, as the editor always did; that
// position holds nothing and yields uuid.Nil like any other miss.
func (t *Table[E, P]) IDFromList(index int) uuid.UUID {
	l := t.Lookup()
	if index < 0 || index > l.Count() {
		return uuid.Nil
	}
	ordered := t.reg.ordered(l)
	if index >= len(ordered) {
		return uuid.Nil
	}
	return ordered[index].ID
}

// FromList returns the object at index in name order, with the same bounds
// as IDFromList.
func (t *Table[E, P]) FromList(index int) P {
	l := t.Lookup()
	if index < 0 || index > l.Count() {
		return nil
	}
	ordered := t.reg.ordered(l)
	if index >= len(ordered) {
		return nil
	}
	p, _ := ordered[index].Object.(P)
	return p
}

// ListIndex returns the position of id in name order, or -1.
func (t *Table[E, P]) ListIndex(id uuid.UUID) int {
	for i, e := range t.reg.ordered(t.Lookup()) {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// IndexOf is ListIndex for obj's own id.
func (t *Table[E, P]) IndexOf(obj P) int {
	if obj == nil {
		return -1
	}
	return t.ListIndex(obj.Entity().ID)
}

// All returns the live objects in lookup order, skipping empty slots.
func (t *Table[E, P]) All() []P {
	values := t.Lookup().Values()
	out := make([]P, 0, len(values))
	for _, v := range values {
		if p, ok := v.(P); ok && p != nil {
			out = append(out, p)
		}
	}
	return out
}
