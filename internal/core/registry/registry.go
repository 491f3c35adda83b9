package registry

import (
	"slices"

	"github.com/zeusync/contentdb/internal/core/events/bus"
	"github.com/zeusync/contentdb/internal/core/models"
	"github.com/zeusync/contentdb/internal/core/observability/log"
	"github.com/zeusync/contentdb/internal/core/storage/interfaces"
	"github.com/zeusync/contentdb/internal/core/storage/memory"
	"golang.org/x/text/language"
)

// Registry owns one lookup table per object kind.
//
// Tables are created on first use. A Registry is not safe for concurrent
// mutation; content editing is expected to happen on a single goroutine.
type Registry struct {
	tables    map[models.Kind]interfaces.Lookup
	newLookup interfaces.LookupFactory
	locale    language.Tag
	events    bus.EventBus
	logger    log.Log
}

type Option func(*Registry)

// WithLookupFactory swaps the storage used for new tables.
func WithLookupFactory(f interfaces.LookupFactory) Option {
	return func(r *Registry) { r.newLookup = f }
}

func WithLogger(l log.Log) Option {
	return func(r *Registry) { r.logger = l }
}

// WithEventBus makes the registry publish object.created and object.deleted.
func WithEventBus(b bus.EventBus) Option {
	return func(r *Registry) { r.events = b }
}

// WithLocale selects the collation used to order names.
func WithLocale(tag language.Tag) Option {
	return func(r *Registry) { r.locale = tag }
}

func New(opts ...Option) *Registry {
	r := &Registry{
		tables:    make(map[models.Kind]interfaces.Lookup),
		newLookup: memory.Factory,
		locale:    language.English,
		logger:    log.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Lookup returns the table for kind, creating it if needed.
func (r *Registry) Lookup(kind models.Kind) interfaces.Lookup {
	l, ok := r.tables[kind]
	if !ok {
		l = r.newLookup(kind)
		r.tables[kind] = l
		r.logger.Debug("lookup created", log.Stringer("kind", kind))
	}
	return l
}

// Kinds lists the kinds that have a table, in ascending order.
func (r *Registry) Kinds() []models.Kind {
	out := make([]models.Kind, 0, len(r.tables))
	for k := range r.tables {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

func (r *Registry) Locale() language.Tag { return r.locale }

func (r *Registry) Logger() log.Log { return r.logger }

// Reset drops every table.
func (r *Registry) Reset() {
	clear(r.tables)
}
