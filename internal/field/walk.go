package field

// Visit is called for every node in display order. Returning false skips
// the node's children.
type Visit func(node *Node, depth int, path []string) bool

// Walk visits the tree pre-order. path holds the keys of the ancestors.
func Walk(fields []*Node, visit Visit) {
	walk(fields, 0, nil, visit)
}

func walk(fields []*Node, depth int, path []string, visit Visit) {
	for _, node := range fields {
		if !visit(node, depth, path) {
			continue
		}
		if node.HasChildren() {
			childPath := append(append([]string{}, path...), node.Key)
			walk(node.Children, depth+1, childPath, visit)
		}
	}
}

// Path returns the keys from the root down to and including id.
func Path(fields []*Node, id string) ([]string, bool) {
	var found []string
	Walk(fields, func(node *Node, _ int, path []string) bool {
		if found != nil {
			return false
		}
		if node.ID == id {
			found = append(append([]string{}, path...), node.Key)
			return false
		}
		return true
	})
	return found, found != nil
}

// Count returns the number of nodes in the tree.
func Count(fields []*Node) int {
	count := 0
	Walk(fields, func(*Node, int, []string) bool {
		count++
		return true
	})
	return count
}

// Ancestors returns the objects enclosing id, outermost first.
func Ancestors(fields []*Node, id string) ([]*Node, bool) {
	for _, node := range fields {
		if node.ID == id {
			return []*Node{}, true
		}
		if !node.HasChildren() {
			continue
		}
		if below, ok := Ancestors(node.Children, id); ok {
			return append([]*Node{node}, below...), true
		}
	}
	return nil, false
}
