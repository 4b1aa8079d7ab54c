// Package jinja builds Jinja and Django template statements as nodes, so
// server templates can be generated with the same builders as markup.
//
//	jinja.For("item in items", h.Li(jinja.Var("item")))
//	// {% for item in items %}
//	//   <li>
//	//     {{ item }}
//	//   </li>
//	// {% endfor %}
package jinja

import (
	"strings"

	"github.com/ryanhamamura/uidom/dom"
)

const kindPrefix = "jinja:"

func statement(parts ...string) string {
	kept := []string{"{%"}
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(append(kept, "%}"), " ")
}

// Double builds a block statement closed by {% end<name> %}.
func Double(name, text string, children ...any) *dom.Node {
	return dom.El(dom.Kind{
		Name:  kindPrefix + name,
		Open:  statement(name, text),
		Close: statement("end" + name),
	}, children...)
}

// Single builds a statement without an end tag. Its children are written
// after it on the same level.
func Single(name, text string, children ...any) *dom.Node {
	return dom.El(dom.Kind{
		Name:        kindPrefix + name,
		Single:      true,
		ChildDedent: true,
		Open:        statement(name, text),
	}, children...)
}

// branch is a single statement written one level left of its siblings, with
// its children indented below it.
func branch(name, text string, children []any) *dom.Node {
	return dom.El(dom.Kind{
		Name:       kindPrefix + name,
		Single:     true,
		SelfDedent: true,
		Open:       statement(name, text),
	}, children...)
}

func Block(text string, children ...any) *dom.Node   { return Double("block", text, children...) }
func For(text string, children ...any) *dom.Node     { return Double("for", text, children...) }
func If(text string, children ...any) *dom.Node      { return Double("if", text, children...) }
func Comment(text string, children ...any) *dom.Node { return Double("comment", text, children...) }

func Elif(text string, children ...any) *dom.Node { return branch("elif", text, children) }
func Else(children ...any) *dom.Node              { return branch("else", "", children) }

func AutoEscape(text string, children ...any) *dom.Node {
	return Single("autoescape", text, children...)
}
func Include(text string, children ...any) *dom.Node { return Single("include", text, children...) }
func Cycle(text string, children ...any) *dom.Node   { return Single("cycle", text, children...) }
func Extends(text string, children ...any) *dom.Node { return Single("extends", text, children...) }
func Load(text string, children ...any) *dom.Node    { return Single("load", text, children...) }
func CSRFToken(children ...any) *dom.Node            { return Single("csrf_token", "", children...) }

// Var is an expression output, {{ text }}. It can also be used as an
// attribute value: h.A(h.Attr("href", jinja.Var("item.link"))).
func Var(text string, children ...any) *dom.Node {
	return dom.El(dom.Kind{
		Name:        kindPrefix + "var",
		Single:      true,
		ChildDedent: true,
		Open:        "{{ " + text + " }}",
	}, children...)
}

// IsStatement reports whether n was built by this package.
func IsStatement(n *dom.Node) bool {
	return strings.HasPrefix(n.Kind().Name, kindPrefix)
}

// Contains reports whether any node of the tree under root is a template
// statement.
func Contains(root *dom.Node) bool {
	found := IsStatement(root)
	root.Walk(func(n *dom.Node) bool {
		found = found || IsStatement(n)
		return !found
	})
	return found
}
