package models

import (
	"encoding/json"
	"reflect"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/zeusync/contentdb/pkg/encoding"
)

// SerializedState is the full JSON form of o, accepted back by Load.
func SerializedState(o Object) ([]byte, error) {
	return encoding.JSON.Marshal(o)
}

// Load populates o from data.
//
// Fields absent from data keep their current values. Maps, slices and
// pointers present in data replace the current ones instead of being merged.
// On a decode error o is left untouched and the codec error is returned as
// is. The backup snapshot always survives and a nil decoded id keeps the
// current one. With keepCreationTime the current TimeCreated wins over the
// decoded one.
func Load[E any, P Pointer[E]](o P, data []byte, keepCreationTime bool) error {
	var present map[string]json.RawMessage
	if err := encoding.JSON.Unmarshal(data, &present); err != nil {
		return err
	}

	next := *o
	dropPresentCollections(reflect.ValueOf(&next).Elem(), present)
	if err := encoding.JSON.Unmarshal(data, &next); err != nil {
		return err
	}

	prev := o.Entity()
	cur := P(&next).Entity()
	if cur.ID == uuid.Nil {
		cur.ID = prev.ID
	}
	if keepCreationTime {
		cur.TimeCreated = prev.TimeCreated
	}
	cur.backup = prev.backup

	*o = next
	return nil
}

// dropPresentCollections zeroes the exported map, slice and pointer fields of
// v whose JSON key appears in present, descending into embedded structs.
func dropPresentCollections(v reflect.Value, present map[string]json.RawMessage) {
	t := v.Type()
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := jsonName(f)
		if name == "" {
			continue
		}
		if f.Anonymous && f.Type.Kind() == reflect.Struct && f.Tag.Get("json") == "" {
			dropPresentCollections(v.Field(i), present)
			continue
		}
		switch f.Type.Kind() {
		case reflect.Map, reflect.Slice, reflect.Pointer:
			if hasKey(present, name) {
				v.Field(i).SetZero()
			}
		}
	}
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}

// hasKey matches keys the way encoding/json does, preferring an exact match.
func hasKey(present map[string]json.RawMessage, name string) bool {
	if _, ok := present[name]; ok {
		return true
	}
	for k := range present {
		if strings.EqualFold(k, name) {
			return true
		}
	}
	return false
}

// MakeBackup snapshots the current state, replacing any earlier snapshot.
func MakeBackup(o Object) error {
	data, err := SerializedState(o)
	if err != nil {
		return err
	}
	o.Entity().backup = data
	return nil
}

// RestoreBackup reloads o from its snapshot. Without a snapshot it does nothing.
func RestoreBackup[E any, P Pointer[E]](o P) error {
	data := o.Entity().backup
	if data == nil {
		return nil
	}
	return Load(o, data, false)
}

// Fingerprint hashes the serialized state of o.
func Fingerprint(o Object) (uint64, error) {
	data, err := SerializedState(o)
	if err != nil {
		return 0, err
	}
	return xxhash.Sum64(data), nil
}

// HasChanges reports whether o drifted from its snapshot.
// Objects without a snapshot never report changes.
func HasChanges(o Object) (bool, error) {
	backup := o.Entity().backup
	if backup == nil {
		return false, nil
	}
	sum, err := Fingerprint(o)
	if err != nil {
		return false, err
	}
	return sum != xxhash.Sum64(backup), nil
}
