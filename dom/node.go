// Package dom builds trees of markup nodes and renders them to indented
// markup.
//
// A tree is made of *Node values, each carrying a Kind (its rendering
// traits), an ordered attribute map and an ordered child list:
//
//	div := dom.El(dom.Kind{Name: "div"}, dom.Attrs{"className": "a"}, "hi")
//	div.String()
//	// <div class="a">
//	//   hi
//	// </div>
//
// Trees are not safe for concurrent mutation. Build one tree per request.
package dom

import (
	"fmt"
	"io"
	"sort"

	"github.com/ryanhamamura/uidom/attr"
)

// Child is an entry of a node's child list: a *Node, Text, Raw or an
// embedded renderer.
type Child interface {
	isChild()
}

// Text is escaped on render.
type Text string

// Raw is written as is.
type Raw string

func (Text) isChild() {}
func (Raw) isChild()  {}

// Renderer is anything that writes its own markup, such as a gomponents node.
type Renderer interface {
	Render(w io.Writer) error
}

type embed struct {
	r Renderer
}

func (*embed) isChild() {}

// Embed places the output of r in the tree unchanged.
func Embed(r Renderer) Child {
	return &embed{r: r}
}

// Noder is implemented by values that own a node, such as components. They
// can be passed wherever a child is accepted.
type Noder interface {
	Node() *Node
}

// Attrs sets several attributes at once. Keys are normalized and applied in
// sorted order.
type Attrs map[string]any

// Attr is a single attribute argument.
type Attr struct {
	Key   string
	Value any
}

// A returns the attribute argument key=value.
func A(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Node is a markup element, fragment or template statement.
type Node struct {
	kind     Kind
	attrs    *attr.Map
	children []Child
	parent   *Node
	document *Node
	onRender func(*Node) error
}

func (*Node) isChild() {}

// Node returns n, so a *Node satisfies Noder.
func (n *Node) Node() *Node { return n }

// New builds a node of kind k from args. Accepted arguments are children
// (*Node, Text, Raw, string, Noder, []Child), attributes (Attrs, Attr) and
// Options; nil is skipped. Options apply first, so a MergeScope option
// affects the attributes given alongside it. Anything else fails with
// ErrInvalidChild.
func New(k Kind, args ...any) (*Node, error) {
	n := &Node{kind: k, attrs: attr.NewMap()}
	for _, a := range args {
		if opt, ok := a.(Option); ok && opt != nil {
			opt(n)
		}
	}
	if err := n.Append(args...); err != nil {
		return nil, err
	}
	return n, nil
}

// El is New for declarative trees: it panics where New returns an error.
func El(k Kind, args ...any) *Node {
	n, err := New(k, args...)
	if err != nil {
		panic(err)
	}
	return n
}

// Tag builds a double tag with a dynamic name.
func Tag(name string, args ...any) *Node {
	return El(Kind{Name: name}, args...)
}

// Append adds constructor-style arguments to n: children are appended,
// attributes set. Options are ignored here; New applies them.
func (n *Node) Append(args ...any) error {
	for _, a := range args {
		switch t := a.(type) {
		case nil, Option:
		case Child:
			n.Add(t)
		case string:
			n.Add(Text(t))
		case Noder:
			n.Add(t.Node())
		case Attrs:
			keys := make([]string, 0, len(t))
			for k := range t {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				if err := n.SetAttr(k, t[k]); err != nil {
					return err
				}
			}
		case Attr:
			if err := n.SetAttr(t.Key, t.Value); err != nil {
				return err
			}
		case []Child:
			n.Add(t...)
		case []*Node:
			for _, c := range t {
				n.Add(c)
			}
		case []any:
			if err := n.Append(t...); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %T", ErrInvalidChild, a)
		}
	}
	return nil
}

// Kind returns a copy of the node's rendering traits.
func (n *Node) Kind() Kind { return n.kind }

// Name is the rendered tag name.
func (n *Node) Name() string { return n.kind.TagName() }

// Add appends children and returns n. Nodes that already have a parent are
// moved. Adding a node to itself or to one of its descendants panics.
func (n *Node) Add(children ...Child) *Node {
	for _, c := range children {
		if c = n.adopt(c); c != nil {
			n.children = append(n.children, c)
		}
	}
	return n
}

// AppendChild adds c and returns n.
func (n *Node) AppendChild(c Child) *Node {
	return n.Add(c)
}

// Insert places c at index i, clamped to the child list.
func (n *Node) Insert(i int, c Child) *Node {
	if c = n.adopt(c); c == nil {
		return n
	}
	i = max(0, min(i, len(n.children)))
	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = c
	return n
}

func (n *Node) adopt(c Child) Child {
	if c == nil {
		return nil
	}
	cn, ok := c.(*Node)
	if !ok {
		return c
	}
	if cn == nil {
		return nil
	}
	for p := n; p != nil; p = p.parent {
		if p == cn {
			panic("dom: adding a node below itself")
		}
	}
	cn.detach()
	cn.parent = n
	if n.document != nil {
		cn.SetDocument(n.document)
	}
	return cn
}

func (n *Node) detach() {
	if n.parent == nil {
		return
	}
	if i := n.parent.IndexOf(n); i >= 0 {
		n.parent.children = append(n.parent.children[:i], n.parent.children[i+1:]...)
	}
	n.parent = nil
}

// RemoveAt removes and returns the child at i, or nil when i is out of range.
func (n *Node) RemoveAt(i int) Child {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	c := n.children[i]
	n.children = append(n.children[:i], n.children[i+1:]...)
	if cn, ok := c.(*Node); ok {
		cn.parent = nil
	}
	return c
}

// Remove removes c, matched by identity, and reports whether it was a child.
func (n *Node) Remove(c Child) bool {
	i := n.IndexOf(c)
	if i < 0 {
		return false
	}
	n.RemoveAt(i)
	return true
}

// Replace swaps the child at i for c and returns the old child.
func (n *Node) Replace(i int, c Child) Child {
	old := n.RemoveAt(i)
	if old == nil {
		return nil
	}
	n.Insert(i, c)
	return old
}

// Clear removes every child.
func (n *Node) Clear() *Node {
	for _, c := range n.children {
		if cn, ok := c.(*Node); ok {
			cn.parent = nil
		}
	}
	n.children = nil
	return n
}

// IndexOf returns the position of c in the child list, by identity, or -1.
func (n *Node) IndexOf(c Child) int {
	for i, x := range n.children {
		if x == c {
			return i
		}
	}
	return -1
}

// Contains reports whether c is a direct child of n, by identity.
func (n *Node) Contains(c Child) bool {
	return n.IndexOf(c) >= 0
}

// Children returns a copy of the child list.
func (n *Node) Children() []Child {
	return append([]Child(nil), n.children...)
}

// ChildNodes is Children.
func (n *Node) ChildNodes() []Child {
	return n.Children()
}

func (n *Node) Len() int { return len(n.children) }

// ChildAt returns the child at i or nil.
func (n *Node) ChildAt(i int) Child {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// Parent returns the node holding n, or nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// ParentNode is Parent.
func (n *Node) ParentNode() *Node { return n.parent }

// Root walks up to the top of n's tree.
func (n *Node) Root() *Node {
	r := n
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// OwnerDocument returns the document node n was attached to, if any.
func (n *Node) OwnerDocument() *Node { return n.document }

// SetDocument records doc as the document of n and its descendants.
func (n *Node) SetDocument(doc *Node) {
	n.document = doc
	for _, c := range n.children {
		if cn, ok := c.(*Node); ok {
			cn.SetDocument(doc)
		}
	}
}

// SetAttr normalizes key and stores v. On a merge scope the value combines
// with an existing one, which can fail with attr.ErrBindingConflict.
func (n *Node) SetAttr(key string, v any) error {
	return n.attrs.Merge(n.normalize(key), v, n.kind.Merge)
}

// Attr returns the value stored for key, normalizing key first.
func (n *Node) Attr(key string) (any, bool) {
	return n.attrs.Get(n.normalize(key))
}

// DeleteAttr removes key and reports whether it was set.
func (n *Node) DeleteAttr(key string) bool {
	return n.attrs.Delete(n.normalize(key))
}

// Attrs exposes the live attribute map. Keys set through it are stored
// verbatim, without normalization.
func (n *Node) Attrs() *attr.Map { return n.attrs }

func (n *Node) normalize(key string) string {
	if n.kind.Syntax.isStyle() {
		return attr.NormalizeStyle(key)
	}
	return attr.Normalize(key)
}

// OnRender registers fn to run each time n is about to be rendered, before
// its attributes and children are read.
func (n *Node) OnRender(fn func(*Node) error) {
	n.onRender = fn
}

// Equal reports whether n and o render to the same markup.
func (n *Node) Equal(o *Node) bool {
	if n == o {
		return true
	}
	if n == nil || o == nil {
		return false
	}
	a, err := n.Markup()
	if err != nil {
		return false
	}
	b, err := o.Markup()
	return err == nil && a == b
}
