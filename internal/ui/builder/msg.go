package builder

import "github.com/flavono123/schemer/internal/field"

// SetFieldsMsg hands the builder a new tree. Focus, when set, moves the
// cursor to that field. CanUndo and CanRedo toggle the history keys.
type SetFieldsMsg struct {
	Fields  []*field.Node
	Focus   string
	CanUndo bool
	CanRedo bool
}
