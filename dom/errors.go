package dom

import "errors"

var (
	// ErrInvalidChild is returned when a constructor receives an argument that
	// is neither a node, text, an attribute nor an option.
	ErrInvalidChild = errors.New("dom: invalid child")

	// ErrNotFound is returned by single-result lookups that match nothing.
	ErrNotFound = errors.New("dom: not found")

	// ErrAmbiguous is returned by single-result lookups that match more than one node.
	ErrAmbiguous = errors.New("dom: ambiguous match")
)

// IsNotFound reports whether err is a lookup that matched nothing.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAmbiguous reports whether err is a lookup that matched several nodes.
func IsAmbiguous(err error) bool {
	return errors.Is(err, ErrAmbiguous)
}
