package field

type NodeBuilder struct {
	node *Node
}

// CreateNodeBuilder starts a node with a fresh id. Use WithID to pin it.
func CreateNodeBuilder(key string, t Type) *NodeBuilder {
	n := NewNode()
	n.Key = NormalizeKey(key)
	n.Type = t
	if t == Object {
		n.Children = []*Node{}
	}
	return &NodeBuilder{node: n}
}

func (b *NodeBuilder) WithID(id string) *NodeBuilder {
	b.node.ID = id
	return b
}

// WithChildren only applies to objects.
func (b *NodeBuilder) WithChildren(children ...*Node) *NodeBuilder {
	if b.node.Type != Object {
		return b
	}
	b.node.Children = append(b.node.Children, children...)
	return b
}

func (b *NodeBuilder) Build() *Node {
	return b.node
}

// Sample is the tree the builder opens with.
func Sample() []*Node {
	return []*Node{
		CreateNodeBuilder("name", String).Build(),
		CreateNodeBuilder("age", Number).Build(),
		CreateNodeBuilder("profile", Object).
			WithChildren(CreateNodeBuilder("bio", String).Build()).
			Build(),
	}
}
