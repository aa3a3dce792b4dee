package field

import (
	"github.com/google/uuid"
)

const DefaultKey = "fieldName"

type Type string

const (
	String Type = "string"
	Number Type = "number"
	Object Type = "object"
)

// Types lists every field type in the order the builder cycles through them.
var Types = []Type{String, Number, Object}

func (t Type) Valid() bool {
	switch t {
	case String, Number, Object:
		return true
	}
	return false
}

// Label is the name shown to the user, objects are called "Nested".
func (t Type) Label() string {
	switch t {
	case String:
		return "String"
	case Number:
		return "Number"
	case Object:
		return "Nested"
	}
	return string(t)
}

// Next returns the type after t in Types, wrapping around.
func (t Type) Next() Type {
	return t.shift(1)
}

func (t Type) Prev() Type {
	return t.shift(len(Types) - 1)
}

func (t Type) shift(by int) Type {
	for i, candidate := range Types {
		if candidate == t {
			return Types[(i+by)%len(Types)]
		}
	}
	return String
}

// Node is one entry of the schema tree.
// Children is non-nil iff Type is Object.
type Node struct {
	ID       string
	Key      string
	Type     Type
	Children []*Node
}

// NewNode creates a string field named DefaultKey with a fresh id.
func NewNode() *Node {
	return &Node{
		ID:   uuid.New().String(),
		Key:  DefaultKey,
		Type: String,
	}
}

func (n *Node) IsObject() bool {
	return n.Type == Object
}

func (n *Node) HasChildren() bool {
	return n.IsObject() && len(n.Children) > 0
}

// Clone returns a deep copy of n. Ids are kept.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := &Node{
		ID:   n.ID,
		Key:  n.Key,
		Type: n.Type,
	}
	if n.Children != nil {
		c.Children = CloneAll(n.Children)
	}
	return c
}

// CloneAll deep copies a sequence. The result is never nil.
func CloneAll(nodes []*Node) []*Node {
	result := make([]*Node, 0, len(nodes))
	for _, n := range nodes {
		result = append(result, n.Clone())
	}
	return result
}

// Equal reports whether a and b are structurally equal, ids included.
func Equal(a, b []*Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		x, y := a[i], b[i]
		if x.ID != y.ID || x.Key != y.Key || x.Type != y.Type {
			return false
		}
		if (x.Children == nil) != (y.Children == nil) {
			return false
		}
		if !Equal(x.Children, y.Children) {
			return false
		}
	}
	return true
}
