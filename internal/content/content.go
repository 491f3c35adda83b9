// Package content defines the concrete object kinds edited by the tools and
// kind-dispatched helpers over a registry.
package content

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/zeusync/contentdb/internal/core/models"
	"github.com/zeusync/contentdb/internal/core/observability/log"
	"github.com/zeusync/contentdb/internal/core/registry"
	"github.com/zeusync/contentdb/internal/core/storage/file"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validate checks the struct tags of a content object.
func Validate(o models.Object) error {
	validateOnce.Do(func() { validate = validator.New() })
	return validate.Struct(o)
}

// Kinds lists the kinds this package implements.
func Kinds() []models.Kind {
	return []models.Kind{models.KindItem, models.KindNpc, models.KindMap}
}

// Load fills reg from every document found in store.
func Load(ctx context.Context, store *file.Store, reg *registry.Registry) error {
	docs, err := store.ReadAll(ctx, Kinds()...)
	if err != nil {
		return err
	}

	for _, kind := range Kinds() {
		data, ok := docs[kind]
		if !ok {
			continue
		}

		var n int
		switch kind {
		case models.KindItem:
			n, err = file.Populate(store.Codec(), data, registry.For[Item](reg), Validate)
		case models.KindNpc:
			n, err = file.Populate(store.Codec(), data, registry.For[Npc](reg), Validate)
		case models.KindMap:
			n, err = file.Populate(store.Codec(), data, registry.For[Map](reg), Validate)
		}
		if err != nil {
			return err
		}
		reg.Logger().Info("table loaded", log.Stringer("kind", kind), log.Int("objects", n))
	}
	return nil
}

// Pairs returns registry.Table.ItemPairs for kind.
func Pairs(reg *registry.Registry, kind models.Kind) ([]registry.Pair, error) {
	switch kind {
	case models.KindItem:
		return registry.For[Item](reg).ItemPairs(), nil
	case models.KindNpc:
		return registry.For[Npc](reg).ItemPairs(), nil
	case models.KindMap:
		return registry.For[Map](reg).ItemPairs(), nil
	default:
		return nil, fmt.Errorf("%w: %s", models.ErrUnknownKind, kind)
	}
}

// Find returns the object of kind with id, or nil.
func Find(reg *registry.Registry, kind models.Kind, id uuid.UUID) (models.Object, error) {
	var obj models.Object
	switch kind {
	case models.KindItem:
		if o, ok := registry.For[Item](reg).TryGet(id); ok {
			obj = o
		}
	case models.KindNpc:
		if o, ok := registry.For[Npc](reg).TryGet(id); ok {
			obj = o
		}
	case models.KindMap:
		if o, ok := registry.For[Map](reg).TryGet(id); ok {
			obj = o
		}
	default:
		return nil, fmt.Errorf("%w: %s", models.ErrUnknownKind, kind)
	}
	return obj, nil
}

// Restore reloads obj from its backup.
func Restore(obj models.Object) error {
	switch o := obj.(type) {
	case *Item:
		return models.RestoreBackup(o)
	case *Npc:
		return models.RestoreBackup(o)
	case *Map:
		return models.RestoreBackup(o)
	default:
		return fmt.Errorf("%w: %s", models.ErrUnknownKind, obj.Kind())
	}
}
