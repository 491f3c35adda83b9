package models

import (
	"reflect"
	"time"

	"github.com/google/uuid"
)

// Deleted is shown in place of a name when the referenced object is gone.
const Deleted = "ERR_DELETED"

// Object is a content definition stored in a registry table.
// Concrete kinds embed Base and report their Kind.
type Object interface {
	Entity() *Base
	Kind() Kind
}

// Pointer constrains a type parameter to *E where *E is an Object.
type Pointer[E any] interface {
	*E
	Object
}

// IsNil reports whether o is nil or wraps a nil pointer.
func IsNil(o Object) bool {
	if o == nil {
		return true
	}
	v := reflect.ValueOf(o)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// Base carries identity, display name and creation time for every content
// object, plus the optional backup snapshot used by the editor for undo.
type Base struct {
	ID          uuid.UUID `json:"Id" yaml:"Id"`
	Name        string    `json:"Name" yaml:"Name"`
	TimeCreated int64     `json:"TimeCreated" yaml:"TimeCreated"`

	backup []byte
}

// NewBase returns a Base with a random id.
func NewBase() Base {
	return NewBaseWithID(uuid.New())
}

func NewBaseWithID(id uuid.UUID) Base {
	return Base{
		ID:          id,
		TimeCreated: time.Now().UnixNano(),
	}
}

func (b *Base) Entity() *Base { return b }

// Created decodes TimeCreated.
func (b *Base) Created() time.Time {
	return time.Unix(0, b.TimeCreated)
}

func (b *Base) HasBackup() bool { return b.backup != nil }

// Backup returns the saved snapshot or nil.
func (b *Base) Backup() []byte { return b.backup }

func (b *Base) DeleteBackup() { b.backup = nil }
