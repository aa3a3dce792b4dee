package openapi

import (
	"encoding/json"
	"fmt"

	"k8s.io/kube-openapi/pkg/validation/spec"

	"github.com/flavono123/schemer/internal/field"
	"github.com/flavono123/schemer/internal/preview"
)

// Schema describes fields as an object schema. Leaves carry the same
// default the preview shows. Empty keys are skipped and duplicate keys
// resolve to the later field, like preview.Derive.
func Schema(fields []*field.Node) spec.Schema {
	schema := spec.Schema{
		SchemaProps: spec.SchemaProps{
			Type:       spec.StringOrArray{string(field.Object)},
			Properties: map[string]spec.Schema{},
		},
	}

	for _, f := range fields {
		if f.Key == "" {
			continue
		}
		schema.Properties[f.Key] = propertySchema(f)
	}

	return schema
}

func propertySchema(f *field.Node) spec.Schema {
	if f.IsObject() {
		return Schema(f.Children)
	}
	return spec.Schema{
		SchemaProps: spec.SchemaProps{
			Type:    spec.StringOrArray{string(f.Type)},
			Default: preview.DefaultValue(f.Type),
		},
	}
}

// Marshal renders Schema(fields) as JSON, indented by indent spaces.
// Properties keep field order instead of the map order of spec.Schema.
func Marshal(fields []*field.Node, indent int) ([]byte, error) {
	doc, err := ordered(Schema(fields), fields)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return preview.JSON(doc, indent)
}

// ordered lays out an object schema along fields. A duplicated key sits
// where it first appears and describes the last field with that key.
func ordered(schema spec.Schema, fields []*field.Node) (*preview.Object, error) {
	doc := preview.NewObject()
	doc.Set("type", schema.Type)

	properties := preview.NewObject()
	for _, f := range fields {
		if f.Key == "" {
			continue
		}
		if _, seen := properties.Get(f.Key); seen {
			continue
		}

		prop := schema.Properties[f.Key]
		if last := lastWithKey(fields, f.Key); last.IsObject() {
			nested, err := ordered(prop, last.Children)
			if err != nil {
				return nil, err
			}
			properties.Set(f.Key, nested)
			continue
		}

		raw, err := json.Marshal(prop)
		if err != nil {
			return nil, err
		}
		properties.Set(f.Key, json.RawMessage(raw))
	}

	if properties.Len() > 0 {
		doc.Set("properties", properties)
	}
	return doc, nil
}
