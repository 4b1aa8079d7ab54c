package dom

import (
	"fmt"
	"io"
	"strings"

	"github.com/ryanhamamura/uidom/attr"
)

// RenderOptions control how a tree is written.
type RenderOptions struct {
	// Indent is repeated once per nesting level. Defaults to two spaces.
	Indent string
	// Compact disables pretty-printing for the whole tree.
	Compact bool
	// XHTML closes single tags with "/>".
	XHTML bool
	// Level is the nesting level of the root node.
	Level int
}

type RenderOption func(*RenderOptions)

func Compact() RenderOption        { return func(o *RenderOptions) { o.Compact = true } }
func XHTML() RenderOption          { return func(o *RenderOptions) { o.XHTML = true } }
func Indent(s string) RenderOption { return func(o *RenderOptions) { o.Indent = s } }
func Level(level int) RenderOption { return func(o *RenderOptions) { o.Level = level } }
func WithOptions(o RenderOptions) RenderOption {
	return func(dst *RenderOptions) { *dst = o }
}

// Markup renders n and its subtree. Render hooks run along the way; the first
// hook error aborts rendering.
func (n *Node) Markup(opts ...RenderOption) (string, error) {
	o := RenderOptions{Indent: "  "}
	for _, opt := range opts {
		opt(&o)
	}
	r := &renderer{indent: o.Indent, xhtml: o.XHTML}
	if err := r.node(n, o.Level, !o.Compact, nil); err != nil {
		return "", err
	}
	return r.b.String(), nil
}

// String renders n with default options. Render errors yield "".
func (n *Node) String() string {
	s, err := n.Markup()
	if err != nil {
		return ""
	}
	return s
}

// Render writes the markup of n to w. It makes *Node usable as a
// gomponents.Node and a templ component body.
func (n *Node) Render(w io.Writer) error {
	s, err := n.Markup()
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

type renderer struct {
	b      strings.Builder
	indent string
	xhtml  bool
}

func (r *renderer) newline(level int) {
	r.b.WriteByte('\n')
	r.b.WriteString(strings.Repeat(r.indent, max(level, 0)))
}

// node writes n at level. inherited holds the attributes spread onto n by a
// parent fragment.
func (r *renderer) node(n *Node, level int, pretty bool, inherited *attr.Map) error {
	if n.onRender != nil {
		if err := n.onRender(n); err != nil {
			return err
		}
	}
	k := n.kind
	pretty = pretty && !k.Compact && !k.Inline

	attrs := n.attrs
	if inherited.Len() > 0 {
		attrs = attrs.Clone()
		for _, key := range inherited.Keys() {
			v, _ := inherited.Get(key)
			if err := attrs.Merge(key, v, attr.MergeAll); err != nil {
				return err
			}
		}
	}

	if k.NoTag {
		if pretty {
			level--
		}
	} else if err := r.open(n, attrs, level, pretty); err != nil {
		return err
	}

	inline := true
	if !k.Void {
		var pass *attr.Map
		switch {
		case k.Spread:
			pass = attrs
		case k.NoTag:
			pass = inherited
		}
		childLevel := level + 1
		if k.Single && k.ChildDedent {
			childLevel = level
		}
		var err error
		if inline, err = r.children(n, pass, childLevel, pretty); err != nil {
			return err
		}
	}
	inline = k.Inline && inline

	if !k.NoTag && !k.Single {
		if pretty && !inline {
			r.newline(level)
		}
		r.close(n)
	}
	return nil
}

// children writes the child list and reports whether it stayed on one line.
func (r *renderer) children(n *Node, spread *attr.Map, level int, pretty bool) (bool, error) {
	k := n.kind
	inline := true
	orig := level
	last := len(n.children) - 1
	for i, c := range n.children {
		switch c := c.(type) {
		case *Node:
			if pretty && !c.kind.Inline {
				inline = false
				if c.kind.SelfDedent && !k.Single && level > orig-1 {
					level--
				}
			}
			if !k.NoTag {
				inline = inline && k.Inline
				if pretty && !inline {
					r.newline(level)
				}
			}
			if err := r.node(c, level, pretty, spread); err != nil {
				return false, err
			}
		case Text:
			if c != "" {
				inline = r.text(k, level, pretty, inline)
				r.b.WriteString(attr.EscapeText(string(c)))
			}
		case Raw:
			if c != "" {
				inline = r.text(k, level, pretty, inline)
				r.b.WriteString(string(c))
			}
		case *embed:
			inline = r.text(k, level, pretty, inline)
			if err := c.r.Render(&r.b); err != nil {
				return false, err
			}
		}
		if k.NewLineAtChildEnd && i != last && pretty && !(inline && k.Inline) {
			r.newline(level)
		}
	}
	return inline, nil
}

func (r *renderer) text(parent Kind, level int, pretty, inline bool) bool {
	if !pretty {
		return inline
	}
	if !parent.NoTag {
		r.newline(level)
	}
	return false
}

func (r *renderer) open(n *Node, attrs *attr.Map, level int, pretty bool) error {
	k := n.kind
	if k.Open != "" {
		r.b.WriteString(k.Open)
		return nil
	}
	if k.Syntax.isStyle() {
		r.rule(k.TagName(), k.Syntax, attrs, level, pretty)
		return nil
	}
	r.b.WriteString("<" + k.TagName())
	if err := attr.WriteMap(&r.b, attrs); err != nil {
		return err
	}
	if k.Single && r.xhtml {
		r.b.WriteString("/>")
	} else {
		r.b.WriteByte('>')
	}
	return nil
}

// rule writes the selector and declarations of a style node.
func (r *renderer) rule(selector string, syntax Syntax, attrs *attr.Map, level int, pretty bool) {
	r.b.WriteString(selector)
	if pretty {
		r.b.WriteString(" {")
	} else {
		r.b.WriteByte('{')
	}
	for _, key := range attrs.Sorted() {
		v, _ := attrs.Get(key)
		var value string
		switch t := v.(type) {
		case nil:
			continue
		case bool:
			if !t {
				continue
			}
			value = key
		default:
			value = attr.EscapeValue(fmt.Sprint(v))
		}
		if pretty {
			r.newline(level + 1)
		}
		switch {
		case syntax == StyleAt:
			r.b.WriteString("@" + key + " " + value + ";")
		case pretty:
			r.b.WriteString(key + ": " + value + ";")
		default:
			r.b.WriteString(key + ":" + value + ";")
		}
	}
}

func (r *renderer) close(n *Node) {
	k := n.kind
	switch {
	case k.Close != "":
		r.b.WriteString(k.Close)
	case k.Syntax.isStyle():
		r.b.WriteByte('}')
	default:
		r.b.WriteString("</" + k.TagName() + ">")
	}
}
