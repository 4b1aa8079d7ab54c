// Package css builds style sheets out of rule nodes. Declarations are
// ordinary attributes, so identifier keys are rewritten to CSS properties:
//
//	css.Rule("body", dom.Attrs{"backgroundColor": "#fff"})
//	// body {
//	//   background-color: #fff;
//	// }
package css

import (
	"errors"
	"strings"
	"unicode"

	"github.com/ryanhamamura/uidom/dom"
	"github.com/ryanhamamura/uidom/h"
)

// ErrSelectorConflict is returned when a rule is asked to be both a class
// and an id selector.
var ErrSelectorConflict = errors.New("css: rule cannot be both class and id")

// Rule is a style rule for any selector.
func Rule(selector string, args ...any) *dom.Node {
	return dom.El(dom.Kind{Name: selector, Syntax: dom.Style}, args...)
}

// Class is a .name rule, written on one line.
func Class(name string, args ...any) *dom.Node {
	return dom.El(dom.Kind{Name: "." + name, Syntax: dom.Style, Inline: true}, args...)
}

// ID is a #name rule, written on one line.
func ID(name string, args ...any) *dom.Node {
	return dom.El(dom.Kind{Name: "#" + name, Syntax: dom.Style, Inline: true}, args...)
}

// RuleOptions selects the selector prefix of NewRule.
type RuleOptions struct {
	Class  bool
	ID     bool
	Inline bool
}

// NewRule builds a rule for name prefixed according to opts.
func NewRule(name string, opts RuleOptions, args ...any) (*dom.Node, error) {
	if opts.Class && opts.ID {
		return nil, ErrSelectorConflict
	}
	switch {
	case opts.Class:
		name = "." + name
	case opts.ID:
		name = "#" + name
	}
	return dom.New(dom.Kind{Name: name, Syntax: dom.Style, Inline: opts.Inline}, args...)
}

// Apply is a rule made of a Tailwind @apply declaration.
func Apply(selector, classes string, args ...any) *dom.Node {
	return dom.El(dom.Kind{Name: selector, Syntax: dom.StyleAt},
		append([]any{dom.A("apply", classes)}, args...)...)
}

// Frame is one step of a Keyframes rule, such as "from", "to" or "50%".
func Frame(stop string, decls dom.Attrs) *dom.Node {
	return Rule(stop, decls)
}

// Keyframes is an @keyframes rule. The name is written in kebab case.
func Keyframes(name string, frames ...*dom.Node) *dom.Node {
	return Rule("@keyframes "+kebab(name), frames)
}

// Sheet wraps rules in a <style> element.
func Sheet(rules ...any) *dom.Node {
	return h.Style(rules...)
}

func kebab(s string) string {
	var b strings.Builder
	for i, r := range strings.ReplaceAll(s, "_", "-") {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Property derives the selectors of one named part of a component:
// a class, an id scoped by the owner, a plain rule and an @apply rule on the
// owner.
type Property struct {
	Owner  string
	Name   string
	Inline bool
}

func (p Property) className() string { return strings.ReplaceAll(p.Name, "_", "-") }

func (p Property) id() string {
	return strings.ToLower(strings.ReplaceAll(p.Owner+"-"+p.Name, "_", "-"))
}

func (p Property) Class(args ...any) *dom.Node {
	return dom.El(dom.Kind{Name: "." + p.className(), Syntax: dom.Style, Inline: p.Inline}, args...)
}

func (p Property) ID(args ...any) *dom.Node {
	return dom.El(dom.Kind{Name: "#" + p.id(), Syntax: dom.Style, Inline: p.Inline}, args...)
}

func (p Property) Rule(args ...any) *dom.Node {
	return dom.El(dom.Kind{Name: p.className(), Syntax: dom.Style, Inline: p.Inline}, args...)
}

// Apply targets the owner element, or one of its shadow parts when part is
// set.
func (p Property) Apply(classes string, part bool) *dom.Node {
	selector := strings.ToLower(strings.ReplaceAll(p.Owner, "_", "-"))
	if part {
		selector += "::part(" + p.className() + ")"
	}
	return dom.El(dom.Kind{Name: selector, Syntax: dom.StyleAt, Inline: p.Inline}, dom.A("apply", classes))
}
