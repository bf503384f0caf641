// Package format turns engine events into machine- and human-readable
// forms: a map-based serializer for transport/logging, and a line-per-event
// formatter for a terminal or transcript.
package format

import (
	"fmt"
	"reflect"

	"github.com/osrapps/osr-combat/internal/combat/event"
)

// Serializer converts events into plain maps keyed by field name, with a
// stable "kind" key carrying the event's discriminator.
type Serializer struct{}

// NewSerializer constructs a Serializer.
func NewSerializer() *Serializer {
	return &Serializer{}
}

// ToMap flattens an event's exported fields into a map, recursing into
// nested event.Event/intent.Intent values and rendering enum-backed string
// types as their underlying value.
func (s *Serializer) ToMap(e event.Event) map[string]any {
	m := s.structToMap(e)
	m["kind"] = e.Kind()
	return m
}

func (s *Serializer) structToMap(v any) map[string]any {
	out := make(map[string]any)
	rv := reflect.ValueOf(v)
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		out[field.Name] = s.convertValue(rv.Field(i))
	}
	return out
}

func (s *Serializer) convertValue(rv reflect.Value) any {
	switch rv.Kind() {
	case reflect.Struct:
		return s.structToMap(rv.Interface())
	case reflect.Slice, reflect.Array:
		items := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			items[i] = s.convertValue(rv.Index(i))
		}
		return items
	case reflect.Map:
		out := make(map[string]any, rv.Len())
		for _, key := range rv.MapKeys() {
			out[fmt.Sprintf("%v", key.Interface())] = s.convertValue(rv.MapIndex(key))
		}
		return out
	case reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return s.convertValue(rv.Elem())
	case reflect.String:
		return rv.String()
	default:
		if !rv.IsValid() {
			return nil
		}
		return rv.Interface()
	}
}

// ToMapBatch serializes a batch of events in order.
func (s *Serializer) ToMapBatch(events []event.Event) []map[string]any {
	out := make([]map[string]any, len(events))
	for i, e := range events {
		out[i] = s.ToMap(e)
	}
	return out
}
