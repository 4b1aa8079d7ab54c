// Package markdown renders GitHub-flavoured markdown into dom trees.
package markdown

import (
	"bytes"
	"fmt"
	"os"

	"github.com/ryanhamamura/uidom/component"
	"github.com/ryanhamamura/uidom/dom"
	"github.com/ryanhamamura/uidom/parse"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// md drops raw HTML from the source; trusted passes it through.
var (
	md = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
	trusted = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
)

func convert(m goldmark.Markdown, src string) (string, error) {
	var buf bytes.Buffer
	if err := m.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("markdown: %w", err)
	}
	return buf.String(), nil
}

// HTML converts src to an HTML string. Raw HTML in src is replaced by a
// comment, so src may come from users.
func HTML(src string) (string, error) {
	return convert(md, src)
}

// TrustedHTML is HTML with raw HTML in src kept as written.
func TrustedHTML(src string) (string, error) {
	return convert(trusted, src)
}

// Element renders src into a concat node of the resulting elements.
func Element(src string) (*dom.Node, error) {
	out, err := HTML(src)
	if err != nil {
		return nil, err
	}
	return parse.HTML(out)
}

// TrustedElement is Element with raw HTML in src kept.
func TrustedElement(src string) (*dom.Node, error) {
	out, err := TrustedHTML(src)
	if err != nil {
		return nil, err
	}
	return parse.HTML(out)
}

// File renders the markdown file at path. Files are trusted: raw HTML in
// them is kept.
func File(path string) (*dom.Node, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("markdown: %w", err)
	}
	return TrustedElement(string(b))
}

// Source is the state of a markdown component.
type Source struct {
	Markdown string `msgpack:"markdown"`
}

// New is a component that re-renders when its Markdown changes. Markdown is
// rendered like Element. An error from the first render is returned as is;
// later ones surface from Refresh as component.ErrNotImplemented.
func New(src string, opts ...component.Option) (*component.Component[Source], error) {
	return newComponent(src, Element, opts...)
}

func newComponent(src string, render func(string) (*dom.Node, error), opts ...component.Option) (*component.Component[Source], error) {
	var renderErr error
	c, err := component.New(Source{Markdown: src}, func(s Source) *dom.Node {
		n, err := render(s.Markdown)
		if err != nil {
			renderErr = err
			return nil
		}
		return n
	}, opts...)
	if err != nil && renderErr != nil {
		return nil, renderErr
	}
	return c, err
}
