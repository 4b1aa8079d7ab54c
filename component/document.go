package component

import (
	"github.com/ryanhamamura/uidom/dom"
	"github.com/ryanhamamura/uidom/h"
)

const (
	// CSRFField names the meta tag carrying the CSRF token.
	CSRFField = "X-CSRF-TOKEN"

	ViewportContent = "width=device-width, initial-scale=1, maximum-scale=1, user-scalable=no, minimal-ui"
)

// DocumentProps describe an HTML page.
type DocumentProps struct {
	Title string
	Lang  string
	// CSRFToken fills the X-CSRF-TOKEN meta tag.
	CSRFToken string
	// SkipCSRF lifts the requirement of exactly one X-CSRF-TOKEN meta tag.
	SkipCSRF bool

	// Head entries that are strings become stylesheet links.
	Head []any
	// Body entries that are strings become scripts.
	Body []any
}

// Document is a full HTML page: doctype, head and body. Children added to
// the component go to the body. Charset and viewport metas are added when
// Head does not provide them.
func Document(props DocumentProps, opts ...Option) (*Component[DocumentProps], error) {
	if !props.SkipCSRF {
		opts = append(opts, WithCheck(RequireOne("meta", "name", CSRFField)))
	}
	opts = append(opts, WithSlot(body))
	return New(props, renderDocument, opts...)
}

func body(entry *dom.Node) *dom.Node {
	if found := entry.Find("body"); len(found) > 0 {
		return found[0]
	}
	return nil
}

func renderDocument(p DocumentProps) *dom.Node {
	var headArgs []any
	if p.Title != "" {
		headArgs = append(headArgs, h.Title(p.Title))
	}
	if p.CSRFToken != "" {
		headArgs = append(headArgs, h.Meta(h.Name(CSRFField), h.Content(p.CSRFToken)))
	}
	for _, item := range p.Head {
		if href, ok := item.(string); ok {
			item = h.Link(h.Rel("stylesheet"), h.Href(href))
		}
		headArgs = append(headArgs, item)
	}
	head := h.Head(headArgs...)
	if len(head.Find("meta", dom.Where("name", "viewport"))) == 0 {
		head.Insert(0, h.Meta(h.Name("viewport"), h.Content(ViewportContent)))
	}
	if len(head.Find("meta", dom.Has("charset"))) == 0 {
		head.Insert(0, h.Meta(h.Charset("utf-8")))
	}

	var bodyArgs []any
	for _, item := range p.Body {
		if src, ok := item.(string); ok {
			item = h.Script(h.Src(src))
		}
		bodyArgs = append(bodyArgs, item)
	}

	html := h.Html(h.If(p.Lang != "", h.Lang(p.Lang)), head, h.Body(bodyArgs...))
	return dom.Concat(dom.DocType(), html)
}
