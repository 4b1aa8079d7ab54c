// Package svg provides constructors for SVG elements. Element names keep
// their SVG casing (clipPath, linearGradient).
package svg

import (
	"strings"

	"github.com/ryanhamamura/uidom/dom"
)

// Namespace is the value of the xmlns attribute on a root <svg>.
const Namespace = "http://www.w3.org/2000/svg"

var lowered = func() map[string]string {
	m := make(map[string]string, len(Kinds))
	for name := range Kinds {
		m[strings.ToLower(name)] = name
	}
	return m
}()

func el(name string, args []any) *dom.Node {
	return dom.El(Kinds[name], args...)
}

// Lookup returns the traits of the SVG element name. Names are matched
// without regard to case, since HTML tokenizers lower-case them.
func Lookup(name string) (dom.Kind, bool) {
	if k, ok := Kinds[name]; ok {
		return k, true
	}
	if canonical, ok := lowered[strings.ToLower(name)]; ok {
		return Kinds[canonical], true
	}
	return dom.Kind{}, false
}

// Root is an <svg> element carrying the SVG namespace and the given viewBox.
func Root(viewBox string, args ...any) *dom.Node {
	return SVG(append([]any{dom.A("xmlns", Namespace), ViewBox(viewBox)}, args...)...)
}

func ViewBox(v string) dom.Attr     { return dom.A("viewBox", v) }
func Fill(v string) dom.Attr        { return dom.A("fill", v) }
func Stroke(v string) dom.Attr      { return dom.A("stroke", v) }
func StrokeWidth(v string) dom.Attr { return dom.A("stroke-width", v) }
func D(v string) dom.Attr           { return dom.A("d", v) }
