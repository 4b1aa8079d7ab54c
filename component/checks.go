package component

import (
	"fmt"

	"github.com/ryanhamamura/uidom/dom"
)

// anywhere returns the entry and its descendants carrying key.
func anywhere(entry *dom.Node, key string) []*dom.Node {
	var found []*dom.Node
	if _, ok := entry.Attr(key); ok {
		found = append(found, entry)
	}
	return append(found, entry.Find("", dom.Has(key))...)
}

// RequireAttr fails with ErrMissingAttr unless the entry itself carries key.
func RequireAttr(key string) Check {
	return func(entry *dom.Node) error {
		if _, ok := entry.Attr(key); !ok {
			return fmt.Errorf("%w: <%s> needs %q", ErrMissingAttr, entry.Name(), key)
		}
		return nil
	}
}

// RequireAttrWithin fails with ErrMissingAttr unless the entry or one of its
// descendants carries key.
func RequireAttrWithin(key string) Check {
	return func(entry *dom.Node) error {
		if len(anywhere(entry, key)) == 0 {
			return fmt.Errorf("%w: %q", ErrMissingAttr, key)
		}
		return nil
	}
}

// ForbidAttrWithin fails with ErrForbiddenAttr when the entry or one of its
// descendants carries key.
func ForbidAttrWithin(key string) Check {
	return func(entry *dom.Node) error {
		if len(anywhere(entry, key)) > 0 {
			return fmt.Errorf("%w: %q", ErrForbiddenAttr, key)
		}
		return nil
	}
}

// RequireOne fails unless exactly one node named name has key=value:
// ErrMissingAttr when there is none, ErrDuplicateAttr when there are several.
func RequireOne(name, key, value string) Check {
	return func(entry *dom.Node) error {
		found := entry.Find(name, dom.Where(key, value))
		switch len(found) {
		case 1:
			return nil
		case 0:
			return fmt.Errorf("%w: %s %s=%q", ErrMissingAttr, name, key, value)
		}
		return fmt.Errorf("%w: %s %s=%q (%d)", ErrDuplicateAttr, name, key, value, len(found))
	}
}
