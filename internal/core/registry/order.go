package registry

import (
	"slices"

	"github.com/zeusync/contentdb/internal/core/models"
	"github.com/zeusync/contentdb/internal/core/storage/interfaces"
	"golang.org/x/text/collate"
)

// displayName substitutes models.Deleted for missing objects and names.
func displayName(obj models.Object) string {
	if models.IsNil(obj) {
		return models.Deleted
	}
	if name := obj.Entity().Name; name != "" {
		return name
	}
	return models.Deleted
}

type namedEntry struct {
	interfaces.Entry
	name string
}

// ordered sorts the lookup by display name. Equal names keep lookup order.
// The result is rebuilt on every call because names change independently of
// the lookup.
func (r *Registry) ordered(l interfaces.Lookup) []namedEntry {
	entries := l.Entries()
	out := make([]namedEntry, len(entries))
	for i, e := range entries {
		out[i] = namedEntry{Entry: e, name: displayName(e.Object)}
	}

	// collators keep scratch buffers, one per call
	col := collate.New(r.locale)
	slices.SortStableFunc(out, func(a, b namedEntry) int {
		return col.CompareString(a.name, b.name)
	})
	return out
}
