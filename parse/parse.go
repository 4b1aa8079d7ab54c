// Package parse turns literal HTML into a dom tree, so static markup can be
// composed with built nodes.
//
// Element names are resolved against the HTML and SVG registries; unknown
// names become plain double tags. Attributes keep their source spelling,
// bare attributes stay bare and single-quoted JSON values decode back into
// ordered JSON values.
package parse

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ryanhamamura/uidom/attr"
	"github.com/ryanhamamura/uidom/dom"
	"github.com/ryanhamamura/uidom/h"
	"github.com/ryanhamamura/uidom/svg"
	"golang.org/x/net/html"
)

var (
	ErrNoElement        = errors.New("parse: no element")
	ErrMultipleElements = errors.New("parse: more than one element")
)

// Lookup resolves an element name to its render traits.
type Lookup func(name string) (dom.Kind, bool)

type config struct {
	lookups []Lookup
	escape  bool
}

type Option func(*config)

// WithLookup consults l before the built-in registries.
func WithLookup(l Lookup) Option {
	return func(c *config) { c.lookups = append(c.lookups, l) }
}

// WithoutEscape keeps text runs as raw markup.
func WithoutEscape() Option {
	return func(c *config) { c.escape = false }
}

// HTML parses src into a concat node holding the top-level nodes.
func HTML(src string, opts ...Option) (*dom.Node, error) {
	return Parse(strings.NewReader(src), opts...)
}

// Element parses src, which must hold exactly one top-level element.
func Element(src string, opts ...Option) (*dom.Node, error) {
	root, err := HTML(src, opts...)
	if err != nil {
		return nil, err
	}
	var el *dom.Node
	for _, c := range root.Children() {
		n, ok := c.(*dom.Node)
		if !ok || dom.IsComment(n) {
			continue
		}
		if el != nil {
			return nil, ErrMultipleElements
		}
		el = n
	}
	if el == nil {
		return nil, ErrNoElement
	}
	root.Remove(el)
	return el, nil
}

// Parse reads markup from r.
func Parse(r io.Reader, opts ...Option) (*dom.Node, error) {
	p := &parser{cfg: config{escape: true}, root: dom.Concat()}
	for _, opt := range opts {
		opt(&p.cfg)
	}
	p.stack = []*dom.Node{p.root}

	z := html.NewTokenizer(r)
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if err := z.Err(); err != io.EOF {
				return nil, fmt.Errorf("parse: %w", err)
			}
			return p.root, nil
		}
		raw := string(z.Raw())
		if err := p.token(tt, z.Token(), raw); err != nil {
			return nil, err
		}
	}
}

type parser struct {
	cfg   config
	root  *dom.Node
	stack []*dom.Node
	inSVG int
	inPre int
}

func (p *parser) top() *dom.Node {
	return p.stack[len(p.stack)-1]
}

func (p *parser) token(tt html.TokenType, tok html.Token, raw string) error {
	switch tt {
	case html.DoctypeToken:
		p.top().Add(dom.DocType())
	case html.CommentToken:
		if data := strings.TrimSpace(tok.Data); data != "" {
			p.top().Add(dom.Comment(data))
		}
	case html.TextToken:
		p.text(tok.Data, raw)
	case html.StartTagToken, html.SelfClosingTagToken:
		n, err := p.element(tok, raw)
		if err != nil {
			return err
		}
		p.top().Add(n)
		if tt == html.StartTagToken && !n.Kind().Void {
			p.push(n)
		}
	case html.EndTagToken:
		p.pop(tok.Data)
	}
	return nil
}

// text adds a text run. data is entity-decoded, raw is the source text.
func (p *parser) text(data, raw string) {
	if p.inPre > 0 && strings.TrimSpace(data) != "" {
		data = strings.TrimRight(data, "\n")
	} else {
		data = strings.TrimSpace(data)
	}
	if data == "" {
		return
	}
	parent := p.top()
	switch name := parent.Name(); {
	case name == "script" || name == "style":
		parent.Add(dom.Raw(data))
	case p.inPre == 0 && strings.HasPrefix(data, "{") && strings.HasSuffix(data, "}"):
		// template text stays verbatim, entities included
		parent.Add(dom.Raw(strings.TrimSpace(raw)))
	case !p.cfg.escape:
		parent.Add(dom.Raw(data))
	default:
		parent.Add(dom.Text(data))
	}
}

func (p *parser) push(n *dom.Node) {
	p.track(n, 1)
	p.stack = append(p.stack, n)
}

// track counts open svg and pre elements. Names resolve against the SVG
// registry inside svg; text keeps its indentation inside pre.
func (p *parser) track(n *dom.Node, delta int) {
	switch strings.ToLower(n.Name()) {
	case "svg":
		p.inSVG += delta
	case "pre":
		p.inPre += delta
	}
}

// pop closes the innermost open element named name. Stray end tags are
// ignored.
func (p *parser) pop(name string) {
	for i := len(p.stack) - 1; i > 0; i-- {
		if !strings.EqualFold(p.stack[i].Name(), name) {
			continue
		}
		for _, n := range p.stack[i:] {
			p.track(n, -1)
		}
		p.stack = p.stack[:i]
		return
	}
}

func (p *parser) kind(name string) dom.Kind {
	lookups := append([]Lookup(nil), p.cfg.lookups...)
	if p.inSVG > 0 {
		lookups = append(lookups, svg.Lookup, h.Lookup)
	} else {
		lookups = append(lookups, h.Lookup, svg.Lookup)
	}
	for _, l := range lookups {
		if k, ok := l(name); ok {
			return k
		}
	}
	return dom.Kind{Name: name}
}

func (p *parser) element(tok html.Token, raw string) (*dom.Node, error) {
	n, err := dom.New(p.kind(tok.Data))
	if err != nil {
		return nil, err
	}
	scanned := scanAttrs(raw)
	for _, a := range tok.Attr {
		key := a.Key
		var value any = a.Val
		if s, ok := scanned[key]; ok {
			key = s.key
			switch {
			case s.bare:
				value = nil
			case s.quote == '\'':
				if v, err := attr.DecodeJSON(a.Val); err == nil {
					value = v
				}
			}
		}
		n.Attrs().Set(key, value)
	}
	return n, nil
}

type rawAttr struct {
	key   string
	bare  bool
	quote byte
}

// scanAttrs reads the attributes of an open tag as written, keyed by their
// lower-cased name. The tokenizer folds case and drops the difference
// between a bare attribute and an empty value.
func scanAttrs(raw string) map[string]rawAttr {
	out := map[string]rawAttr{}
	i := strings.IndexFunc(raw, isSpace)
	if i < 0 {
		return out
	}
	for i < len(raw) {
		for i < len(raw) && (isSpace(rune(raw[i])) || raw[i] == '/') {
			i++
		}
		if i >= len(raw) || raw[i] == '>' {
			break
		}
		start := i
		for i < len(raw) && !isSpace(rune(raw[i])) && raw[i] != '=' && raw[i] != '>' && raw[i] != '/' {
			i++
		}
		a := rawAttr{key: raw[start:i]}
		j := i
		for j < len(raw) && isSpace(rune(raw[j])) {
			j++
		}
		if j >= len(raw) || raw[j] != '=' {
			a.bare = true
			out[strings.ToLower(a.key)] = a
			continue
		}
		i = j + 1
		for i < len(raw) && isSpace(rune(raw[i])) {
			i++
		}
		if i < len(raw) && (raw[i] == '"' || raw[i] == '\'') {
			a.quote = raw[i]
			end := strings.IndexByte(raw[i+1:], a.quote)
			if end < 0 {
				i = len(raw)
			} else {
				i += end + 2
			}
		} else {
			for i < len(raw) && !isSpace(rune(raw[i])) && raw[i] != '>' {
				i++
			}
		}
		out[strings.ToLower(a.key)] = a
	}
	return out
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f'
}
