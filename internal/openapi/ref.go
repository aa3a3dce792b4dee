package openapi

import (
	"net/url"
	"slices"
	"strings"

	"github.com/go-openapi/jsonpointer"
	"github.com/go-openapi/jsonreference"

	"github.com/flavono123/schemer/internal/field"
)

// Ref points at the schema of id inside Schema(fields), e.g.
// "#/properties/profile/properties/bio". Fields missing from the schema,
// under an empty key or shadowed by a later sibling with the same key,
// have no reference.
func Ref(fields []*field.Node, id string) (jsonreference.Ref, bool) {
	path, ok := field.Path(fields, id)
	if !ok || slices.Contains(path, "") {
		return jsonreference.Ref{}, false
	}

	var b strings.Builder
	b.WriteString("#")
	for _, key := range path {
		b.WriteString("/properties/")
		b.WriteString(url.PathEscape(jsonpointer.Escape(key)))
	}

	ref, err := jsonreference.New(b.String())
	if err != nil {
		return jsonreference.Ref{}, false
	}
	if node, ok := Resolve(ref, fields); !ok || node.ID != id {
		return jsonreference.Ref{}, false
	}
	return ref, true
}

// Resolve walks a reference produced by Ref back to the property schema.
func Resolve(ref jsonreference.Ref, fields []*field.Node) (*field.Node, bool) {
	if !ref.HasFragmentOnly {
		return nil, false
	}

	tokens := ref.GetPointer().DecodedTokens()
	if len(tokens)%2 != 0 {
		return nil, false
	}

	var found *field.Node
	level := fields
	for i := 0; i < len(tokens); i += 2 {
		if tokens[i] != "properties" {
			return nil, false
		}
		found = lastWithKey(level, tokens[i+1])
		if found == nil {
			return nil, false
		}
		level = found.Children
	}
	return found, found != nil
}

// lastWithKey mirrors the last-write-wins rule of the preview.
func lastWithKey(fields []*field.Node, key string) *field.Node {
	for i := len(fields) - 1; i >= 0; i-- {
		if fields[i].Key == key {
			return fields[i]
		}
	}
	return nil
}
