package field

import (
	"errors"
	"fmt"

	"k8s.io/apimachinery/pkg/util/sets"
)

var (
	ErrDuplicateID      = errors.New("duplicate field id")
	ErrSharedNode       = errors.New("field is owned more than once")
	ErrInvalidType      = errors.New("invalid field type")
	ErrChildrenMismatch = errors.New("children must be present exactly for object fields")
)

// Validate checks the tree invariants and returns every violation joined.
func Validate(fields []*Node) error {
	ids := sets.New[string]()
	owned := sets.New[*Node]()

	var errs []error
	var check func([]*Node)
	check = func(nodes []*Node) {
		for _, node := range nodes {
			if owned.Has(node) {
				errs = append(errs, fmt.Errorf("%w: %s", ErrSharedNode, node.ID))
				continue
			}
			owned.Insert(node)

			if ids.Has(node.ID) {
				errs = append(errs, fmt.Errorf("%w: %s", ErrDuplicateID, node.ID))
			}
			ids.Insert(node.ID)

			if !node.Type.Valid() {
				errs = append(errs, fmt.Errorf("%w: %q on %s", ErrInvalidType, node.Type, node.ID))
			}
			if node.IsObject() != (node.Children != nil) {
				errs = append(errs, fmt.Errorf("%w: %s", ErrChildrenMismatch, node.ID))
			}
			check(node.Children)
		}
	}
	check(fields)

	return errors.Join(errs...)
}
