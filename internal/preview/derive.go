package preview

import (
	"github.com/flavono123/schemer/internal/field"
)

// DefaultValue is the sample value a leaf of type t contributes.
func DefaultValue(t field.Type) any {
	switch t {
	case field.String:
		return ""
	case field.Number:
		return 0
	case field.Object:
		return NewObject()
	}
	return nil
}

// Derive builds the sample object for fields. Fields with an empty key are
// skipped; when siblings share a key the later one wins.
func Derive(fields []*field.Node) *Object {
	obj := NewObject()
	for _, f := range fields {
		if f.Key == "" {
			continue
		}
		if f.IsObject() {
			obj.Set(f.Key, Derive(f.Children))
		} else {
			obj.Set(f.Key, DefaultValue(f.Type))
		}
	}
	return obj
}
