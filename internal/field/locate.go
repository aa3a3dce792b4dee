package field

import "slices"

// Op edits the sequence that directly contains a located node.
type Op func(fields *[]*Node, index int, node *Node)

// Locate finds the node with the given id, depth first, and applies op to
// its containing sequence. A node is checked before the search descends
// into its children. Returns false, without calling op, when no node has
// the id.
func Locate(fields *[]*Node, id string, op Op) bool {
	for i, node := range *fields {
		if node.ID == id {
			op(fields, i, node)
			return true
		}
		if node.HasChildren() && Locate(&node.Children, id, op) {
			return true
		}
	}

	return false
}

// Find returns the node with the given id.
func Find(fields []*Node, id string) *Node {
	var found *Node
	Locate(&fields, id, func(_ *[]*Node, _ int, node *Node) {
		found = node
	})
	return found
}

// RenameOp sets the normalized key.
func RenameOp(key string) Op {
	return func(_ *[]*Node, _ int, node *Node) {
		node.Key = NormalizeKey(key)
	}
}

// RetypeOp keeps Children consistent with the new type: leaving Object drops
// the subtree, entering Object starts with no children. An invalid type is
// ignored.
func RetypeOp(t Type) Op {
	return func(_ *[]*Node, _ int, node *Node) {
		if !t.Valid() {
			return
		}
		node.Type = t
		if t == Object {
			if node.Children == nil {
				node.Children = []*Node{}
			}
		} else {
			node.Children = nil
		}
	}
}

// InsertAfterOp splices sibling right after the located node.
func InsertAfterOp(sibling *Node) Op {
	return func(seq *[]*Node, index int, _ *Node) {
		*seq = slices.Insert(*seq, index+1, sibling)
	}
}

// AppendChildOp appends child when the located node is an object.
func AppendChildOp(child *Node) Op {
	return func(_ *[]*Node, _ int, node *Node) {
		if !node.IsObject() {
			return
		}
		node.Children = append(node.Children, child)
	}
}

// DeleteOp removes the located node and everything below it.
func DeleteOp() Op {
	return func(seq *[]*Node, index int, _ *Node) {
		*seq = slices.Delete(*seq, index, index+1)
	}
}

func Rename(fields *[]*Node, id string, key string) bool {
	return Locate(fields, id, RenameOp(key))
}

// Retype reports whether the id exists, even when t is invalid.
func Retype(fields *[]*Node, id string, t Type) bool {
	return Locate(fields, id, RetypeOp(t))
}

// InsertSiblingAfter splices a default node right after id and returns it.
func InsertSiblingAfter(fields *[]*Node, id string) (*Node, bool) {
	created := NewNode()
	if !Locate(fields, id, InsertAfterOp(created)) {
		return nil, false
	}
	return created, true
}

// InsertChild appends a default node to an object. The returned node is nil
// when the target exists but is not an object.
func InsertChild(fields *[]*Node, id string) (*Node, bool) {
	var created *Node
	found := Locate(fields, id, func(seq *[]*Node, index int, node *Node) {
		if node.IsObject() {
			created = NewNode()
			AppendChildOp(created)(seq, index, node)
		}
	})
	return created, found
}

func Delete(fields *[]*Node, id string) bool {
	return Locate(fields, id, DeleteOp())
}
