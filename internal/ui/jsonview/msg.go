package jsonview

import "github.com/flavono123/schemer/internal/field"

// SetFieldsMsg asks the view to derive and render a new tree.
type SetFieldsMsg struct {
	Fields []*field.Node
}
