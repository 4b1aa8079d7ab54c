// Package h provides a Go-native DSL for HTML composition.
// Every element is a function returning a [dom.Node]; its arguments are
// children, attributes and per-node options.
//
// Example:
//
//	h.Div(
//		h.H1(h.Text("Hello, uidom")),
//		h.P(h.Class("lead"), h.Text("Pure Go. No templates.")),
//	)
package h

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/a-h/templ"
	"github.com/ryanhamamura/uidom/dom"
	g "maragu.dev/gomponents"
	gc "maragu.dev/gomponents/components"
)

// Lookup returns the traits of the HTML element name.
func Lookup(name string) (dom.Kind, bool) {
	k, ok := Kinds[name]
	return k, ok
}

// Text creates a text node that renders the escaped string t.
func Text(t string) dom.Text {
	return dom.Text(t)
}

// Textf creates a text node that renders the interpolated and escaped string format.
func Textf(format string, a ...any) dom.Text {
	return dom.Text(fmt.Sprintf(format, a...))
}

// Raw creates a text node that renders s unescaped.
func Raw(s string) dom.Raw {
	return dom.Raw(s)
}

// Rawf creates a text node that renders the interpolated and unescaped
// string format.
func Rawf(format string, a ...any) dom.Raw {
	return dom.Raw(fmt.Sprintf(format, a...))
}

// Attr creates an attribute with a name and optional value.
// If only a name is passed, it's a bare attribute (like "required").
// More than one value make [Attr] panic.
// The name goes through the same normalization as every other key, so
// Attr("x_on_click", "go()") renders as @click="go()".
func Attr(name string, value ...any) dom.Attr {
	switch len(value) {
	case 0:
		return dom.A(name, nil)
	case 1:
		return dom.A(name, value[0])
	default:
		panic("h: attribute must be just name or name and value pair")
	}
}

func ID(v string) dom.Attr          { return dom.A("id", v) }
func Class(v string) dom.Attr       { return dom.A("class", v) }
func Href(v string) dom.Attr        { return dom.A("href", v) }
func Src(v string) dom.Attr         { return dom.A("src", v) }
func Type(v string) dom.Attr        { return dom.A("type", v) }
func Rel(v string) dom.Attr         { return dom.A("rel", v) }
func Name(v string) dom.Attr        { return dom.A("name", v) }
func Value(v string) dom.Attr       { return dom.A("value", v) }
func Placeholder(v string) dom.Attr { return dom.A("placeholder", v) }
func For(v string) dom.Attr         { return dom.A("for", v) }
func Content(v string) dom.Attr     { return dom.A("content", v) }
func Charset(v string) dom.Attr     { return dom.A("charset", v) }
func Lang(v string) dom.Attr        { return dom.A("lang", v) }
func Role(v string) dom.Attr        { return dom.A("role", v) }
func Alt(v string) dom.Attr         { return dom.A("alt", v) }
func Target(v string) dom.Attr      { return dom.A("target", v) }
func Method(v string) dom.Attr      { return dom.A("method", v) }
func TitleAttr(v string) dom.Attr   { return dom.A("title", v) }
func StyleAttr(v string) dom.Attr   { return dom.A("style", v) }
func Checked() dom.Attr             { return dom.A("checked", true) }
func Disabled() dom.Attr            { return dom.A("disabled", true) }
func Required() dom.Attr            { return dom.A("required", true) }

// Data creates a data-* attribute. Datastar directives such as
// Data("on:click", expr) keep their colon.
func Data(name string, v any) dom.Attr {
	return dom.A("data-"+name, v)
}

// Aria creates an aria-* attribute.
func Aria(name string, v any) dom.Attr {
	return dom.A("aria-"+name, v)
}

// Classes renders the keys whose value is true as a sorted class list.
func Classes(c map[string]bool) dom.Attr {
	var on []string
	for k, v := range c {
		if v {
			on = append(on, k)
		}
	}
	sort.Strings(on)
	return dom.A("class", strings.Join(on, " "))
}

// If returns v when condition holds and nil otherwise. Nil arguments are
// skipped by element constructors.
func If(condition bool, v any) any {
	if condition {
		return v
	}
	return nil
}

// Range applies fn to every item, for building lists of children.
func Range[T any](items []T, fn func(T) any) []any {
	out := make([]any, 0, len(items))
	for _, it := range items {
		out = append(out, fn(it))
	}
	return out
}

// G embeds a gomponents node as a child.
func G(n g.Node) dom.Child {
	return dom.Embed(n)
}

// ToG exposes a node tree as a gomponents node.
func ToG(n *dom.Node) g.Node {
	return n
}

type templRenderer struct {
	c templ.Component
}

func (t templRenderer) Render(w io.Writer) error {
	return t.c.Render(context.Background(), w)
}

// Templ embeds a templ component as a child.
func Templ(c templ.Component) dom.Child {
	return dom.Embed(templRenderer{c: c})
}

// ToTempl exposes anything that renders itself, such as a node or a
// component, as a templ component.
func ToTempl(r dom.Renderer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return r.Render(w)
	})
}

// HTML5Props defines properties for HTML5 pages. Title is set always set, Description
// and Language elements only if the strings are non-empty.
type HTML5Props struct {
	Title       string
	Description string
	Language    string
	Head        []dom.Renderer
	Body        []dom.Renderer
}

// HTML5 document template, rendered by gomponents.
func HTML5(p HTML5Props) dom.Child {
	gp := gc.HTML5Props{
		Title:       p.Title,
		Description: p.Description,
		Language:    p.Language,
		Head:        retype(p.Head),
		Body:        retype(p.Body),
	}
	return dom.Embed(gc.HTML5(gp))
}

func retype(nodes []dom.Renderer) []g.Node {
	out := make([]g.Node, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n)
	}
	return out
}
