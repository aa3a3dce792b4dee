package preview

import (
	"bytes"
	"encoding/json"

	"github.com/goccy/go-yaml"
)

// Object is a JSON object that keeps key insertion order. Setting an
// existing key replaces its value in place.
type Object struct {
	keys   []string
	values map[string]any
}

func NewObject() *Object {
	return &Object{values: map[string]any{}}
}

func (o *Object) Set(key string, value any) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

func (o *Object) Get(key string) (any, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	return append([]string{}, o.keys...)
}

func (o *Object) Len() int {
	return len(o.keys)
}

func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	out := []byte{'{'}
	for i, key := range o.keys {
		if i > 0 {
			out = append(out, ',')
		}
		buf.Reset()
		if err := enc.Encode(key); err != nil {
			return nil, err
		}
		out = append(out, bytes.TrimRight(buf.Bytes(), "\n")...)
		out = append(out, ':')

		buf.Reset()
		if err := enc.Encode(o.values[key]); err != nil {
			return nil, err
		}
		out = append(out, bytes.TrimRight(buf.Bytes(), "\n")...)
	}
	out = append(out, '}')
	return out, nil
}

func (o *Object) MarshalYAML() (any, error) {
	return o.mapSlice(), nil
}

func (o *Object) mapSlice() yaml.MapSlice {
	items := make(yaml.MapSlice, 0, len(o.keys))
	for _, key := range o.keys {
		value := o.values[key]
		if nested, ok := value.(*Object); ok {
			value = nested.mapSlice()
		}
		items = append(items, yaml.MapItem{Key: key, Value: value})
	}
	return items
}
