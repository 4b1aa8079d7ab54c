package dom

import (
	"fmt"
	"reflect"
)

// Filter narrows a Find.
type Filter func(*Node) bool

// Where matches nodes whose attribute key equals val. Values are compared
// directly, then by their text form.
func Where(key string, val any) Filter {
	return func(n *Node) bool {
		v, ok := n.Attr(key)
		if !ok {
			return false
		}
		return reflect.DeepEqual(v, val) || fmt.Sprint(v) == fmt.Sprint(val)
	}
}

// Has matches nodes that carry attribute key.
func Has(key string) Filter {
	return func(n *Node) bool {
		_, ok := n.Attr(key)
		return ok
	}
}

// Walk visits the descendants of n depth first, in document order. It stops
// early when fn returns false.
func (n *Node) Walk(fn func(*Node) bool) bool {
	for _, c := range n.children {
		cn, ok := c.(*Node)
		if !ok {
			continue
		}
		if !fn(cn) || !cn.Walk(fn) {
			return false
		}
	}
	return true
}

// Find returns the descendants of n with the given tag name (any name when
// empty) that pass every filter.
func (n *Node) Find(name string, filters ...Filter) []*Node {
	var found []*Node
	n.Walk(func(c *Node) bool {
		if name != "" && c.Name() != name {
			return true
		}
		for _, f := range filters {
			if !f(c) {
				return true
			}
		}
		found = append(found, c)
		return true
	})
	return found
}

// Get returns the single descendant matching name and filters.
func (n *Node) Get(name string, filters ...Filter) (*Node, error) {
	found := n.Find(name, filters...)
	switch len(found) {
	case 0:
		return nil, ErrNotFound
	case 1:
		return found[0], nil
	}
	return nil, fmt.Errorf("%w: %d nodes", ErrAmbiguous, len(found))
}

// GetElementByID returns the descendant whose id is id.
func (n *Node) GetElementByID(id string) (*Node, error) {
	el, err := n.Get("", Where("id", id))
	if err != nil {
		return nil, fmt.Errorf("id %q: %w", id, err)
	}
	return el, nil
}

func (n *Node) GetElementsByTagName(name string) []*Node {
	return n.Find(name)
}

func (n *Node) FirstChild() Child {
	return n.ChildAt(0)
}

func (n *Node) LastChild() Child {
	return n.ChildAt(len(n.children) - 1)
}

// NextSibling returns the child following n in its parent, or nil.
func (n *Node) NextSibling() Child {
	if n.parent == nil {
		return nil
	}
	return n.parent.ChildAt(n.parent.IndexOf(n) + 1)
}

// PreviousSibling returns the child preceding n in its parent, or nil.
func (n *Node) PreviousSibling() Child {
	if n.parent == nil {
		return nil
	}
	i := n.parent.IndexOf(n)
	if i <= 0 {
		return nil
	}
	return n.parent.ChildAt(i - 1)
}
