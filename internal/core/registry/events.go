package registry

import (
	"github.com/google/uuid"
	"github.com/zeusync/contentdb/internal/core/events/bus"
	"github.com/zeusync/contentdb/internal/core/models"
	"github.com/zeusync/contentdb/internal/core/observability/log"
)

const (
	EventObjectCreated = "object.created"
	EventObjectDeleted = "object.deleted"

	eventSource = "registry"
)

// ObjectEvent is the payload of registry events.
type ObjectEvent struct {
	Kind models.Kind
	ID   uuid.UUID
	Name string
}

func (r *Registry) publish(typ string, obj models.Object) {
	if r.events == nil {
		return
	}
	base := obj.Entity()
	payload := ObjectEvent{Kind: obj.Kind(), ID: base.ID, Name: base.Name}
	if err := r.events.Publish(bus.NewEvent(typ, eventSource, payload)); err != nil {
		r.logger.Warn("registry event handler failed",
			log.String("event", typ),
			log.Stringer("id", base.ID),
			log.Error(err),
		)
	}
}
