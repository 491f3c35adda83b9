package memory

import (
	"slices"

	"github.com/google/uuid"
	"github.com/zeusync/contentdb/internal/core/models"
	"github.com/zeusync/contentdb/internal/core/storage/interfaces"
)

var _ interfaces.Lookup = (*Lookup)(nil)

// Lookup is an insertion-ordered in-memory table.
type Lookup struct {
	order   []uuid.UUID
	objects map[uuid.UUID]models.Object
}

func New() *Lookup {
	return &Lookup{
		objects: make(map[uuid.UUID]models.Object),
	}
}

// Factory satisfies interfaces.LookupFactory.
func Factory(models.Kind) interfaces.Lookup {
	return New()
}

func (l *Lookup) Get(id uuid.UUID) models.Object {
	return l.objects[id]
}

func (l *Lookup) Contains(id uuid.UUID) bool {
	_, ok := l.objects[id]
	return ok
}

func (l *Lookup) Add(obj models.Object) bool {
	if models.IsNil(obj) {
		return false
	}
	id := obj.Entity().ID
	if l.Contains(id) {
		return false
	}
	l.order = append(l.order, id)
	l.objects[id] = obj
	return true
}

// Set stores obj under id. A nil obj, typed or not, is kept as an empty slot.
func (l *Lookup) Set(id uuid.UUID, obj models.Object) {
	if models.IsNil(obj) {
		obj = nil
	}
	if !l.Contains(id) {
		l.order = append(l.order, id)
	}
	l.objects[id] = obj
}

func (l *Lookup) Delete(obj models.Object) bool {
	if models.IsNil(obj) {
		return false
	}
	id := obj.Entity().ID
	if !l.Contains(id) {
		return false
	}
	delete(l.objects, id)
	if i := slices.Index(l.order, id); i >= 0 {
		l.order = slices.Delete(l.order, i, i+1)
	}
	return true
}

func (l *Lookup) Keys() []uuid.UUID {
	return slices.Clone(l.order)
}

func (l *Lookup) Values() []models.Object {
	out := make([]models.Object, len(l.order))
	for i, id := range l.order {
		out[i] = l.objects[id]
	}
	return out
}

func (l *Lookup) Entries() []interfaces.Entry {
	out := make([]interfaces.Entry, len(l.order))
	for i, id := range l.order {
		out[i] = interfaces.Entry{ID: id, Object: l.objects[id]}
	}
	return out
}

func (l *Lookup) Count() int {
	return len(l.order)
}

func (l *Lookup) Clear() {
	l.order = nil
	clear(l.objects)
}
