// Package component wraps a render function and its state into a node that
// re-renders itself when the state changes.
//
// A component owns a host node. The host is transparent by default, so the
// component renders exactly like the tree its render function returns (the
// entry). Before every render the state is snapshotted with msgpack; when the
// snapshot differs from the last one the entry is rebuilt and swapped in
// place, and children added to the old entry are carried over.
//
//	type counter struct{ Count int }
//
//	c, _ := component.New(counter{}, func(s counter) *dom.Node {
//		return h.P(h.Textf("%d", s.Count))
//	})
//	c.State.Count++
//	c.String() // <p>\n  1\n</p>
package component

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/ryanhamamura/uidom/attr"
	"github.com/ryanhamamura/uidom/dom"
	"github.com/vmihailenco/msgpack/v5"
)

var (
	// ErrNotImplemented is returned when a component has no render function
	// or the function returns nil.
	ErrNotImplemented = errors.New("component: render not implemented")

	ErrMissingAttr   = errors.New("component: missing required attribute")
	ErrForbiddenAttr = errors.New("component: forbidden attribute")
	ErrDuplicateAttr = errors.New("component: attribute set at multiple places")
)

// Check validates a freshly rendered entry.
type Check func(entry *dom.Node) error

type config struct {
	tag       string
	inline    bool
	extension string
	checks    []Check
	slot      func(entry *dom.Node) *dom.Node
}

type Option func(*config)

// WithTag makes the host render as a <name> element around the entry.
func WithTag(name string) Option {
	return func(c *config) { c.tag = name }
}

// WithInline renders the host inline.
func WithInline() Option {
	return func(c *config) { c.inline = true }
}

// WithExtension sets the file extension used by Save (".html" by default).
func WithExtension(ext string) Option {
	return func(c *config) { c.extension = ext }
}

// WithCheck adds a validation run after every render.
func WithCheck(check Check) Option {
	return func(c *config) { c.checks = append(c.checks, check) }
}

// WithSlot picks the node of the entry that receives added children.
func WithSlot(slot func(entry *dom.Node) *dom.Node) Option {
	return func(c *config) { c.slot = slot }
}

// Component is a node built from a render function of its State.
// It is not safe for concurrent use.
type Component[S any] struct {
	// State is read by the render function. Changes are picked up on the next
	// render or Refresh.
	State S

	render   func(S) *dom.Node
	cfg      config
	host     *dom.Node
	entry    *dom.Node
	rendered int
	snapshot []byte
	version  int
	attrs    []dom.Attr
}

// New renders state once and runs the checks on the result.
func New[S any](state S, render func(S) *dom.Node, opts ...Option) (*Component[S], error) {
	if render == nil {
		return nil, ErrNotImplemented
	}
	c := &Component[S]{State: state, render: render}
	for _, opt := range opts {
		opt(&c.cfg)
	}

	kind := dom.Kind{Name: c.cfg.tag, NoTag: c.cfg.tag == "", Inline: c.cfg.inline, Extension: c.cfg.extension}
	c.host = dom.El(kind)
	c.host.OnRender(func(*dom.Node) error { return c.Refresh() })

	if err := c.Refresh(); err != nil {
		return nil, err
	}
	return c, nil
}

// Must panics if err is not nil.
func Must[S any](c *Component[S], err error) *Component[S] {
	if err != nil {
		panic(err)
	}
	return c
}

// Node returns the host node, so a component can be passed as a child.
func (c *Component[S]) Node() *dom.Node { return c.host }

// Entry returns the tree produced by the last render.
func (c *Component[S]) Entry() *dom.Node { return c.entry }

// Slot returns the node that receives children added to the component.
func (c *Component[S]) Slot() *dom.Node { return c.slotOf(c.entry) }

func (c *Component[S]) slotOf(entry *dom.Node) *dom.Node {
	if c.cfg.slot != nil {
		if s := c.cfg.slot(entry); s != nil {
			return s
		}
	}
	return entry
}

// Version counts renders. It starts at 1 after New.
func (c *Component[S]) Version() int { return c.version }

// Refresh re-renders when the state changed since the last render.
func (c *Component[S]) Refresh() error {
	snap, err := snapshot(c.State)
	if err != nil {
		return err
	}
	if c.entry != nil && bytes.Equal(snap, c.snapshot) {
		return nil
	}
	return c.rerender(snap)
}

func (c *Component[S]) rerender(snap []byte) error {
	next := c.render(c.State)
	if next == nil {
		return fmt.Errorf("%w: render returned nil", ErrNotImplemented)
	}
	if c.cfg.tag == "" {
		for _, a := range c.attrs {
			if err := next.SetAttr(a.Key, a.Value); err != nil {
				return err
			}
		}
	}

	old := c.entry
	index := -1
	var extra []dom.Child
	if old != nil {
		index = c.host.IndexOf(old)
		c.host.Remove(old)
		if kids := c.slotOf(old).Children(); len(kids) > c.rendered {
			extra = kids[c.rendered:]
		}
	}
	rendered := c.slotOf(next).Len()
	c.slotOf(next).Add(extra...)
	if index < 0 {
		c.host.Add(next)
	} else {
		c.host.Insert(index, next)
	}

	if err := c.check(next); err != nil {
		c.host.Remove(next)
		if old != nil {
			c.slotOf(old).Add(extra...)
			c.host.Insert(index, old)
		}
		return err
	}

	c.entry = next
	c.rendered = rendered
	c.snapshot = snap
	c.version++
	return nil
}

func (c *Component[S]) check(entry *dom.Node) error {
	for _, check := range c.cfg.checks {
		if err := check(entry); err != nil {
			return err
		}
	}
	return nil
}

func snapshot(state any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(state); err != nil {
		return nil, fmt.Errorf("component: snapshot state: %w", err)
	}
	return buf.Bytes(), nil
}

// StateMap returns the state as a generic map, decoded from its msgpack
// form. Struct fields use their msgpack names.
func (c *Component[S]) StateMap() (map[string]any, error) {
	b, err := msgpack.Marshal(c.State)
	if err != nil {
		return nil, fmt.Errorf("component: encode state: %w", err)
	}
	var m map[string]any
	if err := msgpack.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("component: state is not a map: %w", err)
	}
	return m, nil
}

// Add appends children to the slot. They survive re-renders.
func (c *Component[S]) Add(children ...dom.Child) *Component[S] {
	c.Slot().Add(children...)
	return c
}

// Append adds constructor-style arguments to the slot.
func (c *Component[S]) Append(args ...any) error {
	return c.Slot().Append(args...)
}

// attrTarget is the node attributes address: the entry when the host is
// transparent, the host otherwise.
func (c *Component[S]) attrTarget() *dom.Node {
	if c.cfg.tag == "" {
		return c.entry
	}
	return c.host
}

// SetAttr sets an attribute that is reapplied after every re-render.
func (c *Component[S]) SetAttr(key string, v any) error {
	if err := c.attrTarget().SetAttr(key, v); err != nil {
		return err
	}
	c.attrs = append(c.attrs, dom.A(key, v))
	return nil
}

func (c *Component[S]) Attr(key string) (any, bool) {
	return c.attrTarget().Attr(key)
}

// DeleteAttr removes key from the entry and stops reapplying it. Keys match
// after normalization, so "class" also drops an attribute set as "className".
func (c *Component[S]) DeleteAttr(key string) bool {
	name := attr.Normalize(key)
	kept := c.attrs[:0]
	for _, a := range c.attrs {
		if attr.Normalize(a.Key) != name {
			kept = append(kept, a)
		}
	}
	c.attrs = kept
	return c.attrTarget().DeleteAttr(key)
}

// Find searches the rendered tree, entry included.
func (c *Component[S]) Find(name string, filters ...dom.Filter) []*dom.Node {
	if err := c.Refresh(); err != nil {
		return nil
	}
	return c.host.Find(name, filters...)
}

func (c *Component[S]) Markup(opts ...dom.RenderOption) (string, error) {
	return c.host.Markup(opts...)
}

func (c *Component[S]) String() string {
	return c.host.String()
}

func (c *Component[S]) Render(w io.Writer) error {
	return c.host.Render(w)
}

func (c *Component[S]) Extension() string {
	return c.host.Extension()
}

// Save renders the component into dir/name; see dom.Node.Save.
func (c *Component[S]) Save(name, dir string) (string, error) {
	return c.host.Save(name, dir)
}

// Equal reports whether the component renders like o.
func (c *Component[S]) Equal(o dom.Noder) bool {
	return c.host.Equal(o.Node())
}
