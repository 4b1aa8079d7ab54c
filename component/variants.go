package component

import "github.com/ryanhamamura/uidom/dom"

// XComponent is a component whose entry declares the x-component it
// upgrades to.
func XComponent[S any](state S, render func(S) *dom.Node, opts ...Option) (*Component[S], error) {
	return New(state, render, append(opts, WithCheck(RequireAttr("x-component")))...)
}

// CustomElement is an XComponent upgraded to a light-DOM element: it must
// not declare a shadowroot.
func CustomElement[S any](state S, render func(S) *dom.Node, opts ...Option) (*Component[S], error) {
	return XComponent(state, render, append(opts, WithCheck(ForbidAttrWithin("shadowroot")))...)
}

// WebComponent is an XComponent upgraded to a shadow-DOM element: it must
// declare a shadowroot.
func WebComponent[S any](state S, render func(S) *dom.Node, opts ...Option) (*Component[S], error) {
	return XComponent(state, render, append(opts, WithCheck(RequireAttrWithin("shadowroot")))...)
}

// AlpineElement must carry x-data on its entry or below.
func AlpineElement[S any](state S, render func(S) *dom.Node, opts ...Option) (*Component[S], error) {
	return New(state, render, append(opts, WithCheck(RequireAttrWithin("x-data")))...)
}

// AlpineComponent combines the XComponent and AlpineElement checks.
func AlpineComponent[S any](state S, render func(S) *dom.Node, opts ...Option) (*Component[S], error) {
	return XComponent(state, render, append(opts, WithCheck(RequireAttrWithin("x-data")))...)
}

// XTag is the <x-name> element that instantiates the x-component name.
func XTag(name string, args ...any) *dom.Node {
	return dom.Tag("x-"+name, args...)
}
