package dom

import (
	"strings"

	"github.com/ryanhamamura/uidom/attr"
)

// Syntax selects how a node's tag and attributes are written.
type Syntax uint8

const (
	// Markup writes <name attr="v">...</name>.
	Markup Syntax = iota
	// Style writes a CSS rule: name { prop: v; ... }.
	Style
	// StyleAt writes a CSS rule whose declarations are at-rules: name { @prop v; }.
	StyleAt
)

func (s Syntax) isStyle() bool {
	return s == Style || s == StyleAt
}

// Kind is the rendering trait of a node type. Every node starts from a copy
// of its Kind, so per-instance overrides never leak into other nodes.
//
// The zero Kind with a Name is a pretty-printed double tag.
type Kind struct {
	Name string

	// Single tags have no closing tag. Children of a single tag are written
	// after it (template statements such as {% else %} rely on this).
	Single bool
	// Void single tags never write their children (<input>, <meta>).
	Void bool
	// Inline nodes and their subtrees are written without added whitespace.
	Inline bool
	// Compact opts a node out of pretty-printing.
	Compact bool
	// SelfDedent writes the node one level left of its siblings.
	SelfDedent bool
	// ChildDedent keeps the children of a single tag on the tag's level.
	ChildDedent bool
	// NoTag nodes write only their children (fragments, component hosts).
	NoTag bool
	// NewLineAtChildEnd separates children with a newline.
	NewLineAtChildEnd bool
	// Spread merges the node's attributes onto each direct child at render time.
	Spread bool

	// Open and Close replace the generated open and close tags.
	Open, Close string

	// Merge is the policy applied when an attribute is set twice on the node.
	Merge attr.Policy

	Syntax Syntax

	// Extension is the file extension used by Save. Empty means ".html".
	Extension string
}

// TagName is the rendered element name. A trailing underscore is dropped so
// kinds can be registered under reserved words ("del_", "var_").
func (k Kind) TagName() string {
	return strings.TrimSuffix(k.Name, "_")
}

func (k Kind) extension() string {
	if k.Extension == "" {
		return ".html"
	}
	return k.Extension
}

// Option overrides the Kind of a single node.
type Option func(*Node)

func Inline(on bool) Option            { return func(n *Node) { n.kind.Inline = on } }
func Pretty(on bool) Option            { return func(n *Node) { n.kind.Compact = !on } }
func SelfDedent(on bool) Option        { return func(n *Node) { n.kind.SelfDedent = on } }
func ChildDedent(on bool) Option       { return func(n *Node) { n.kind.ChildDedent = on } }
func RenderTag(on bool) Option         { return func(n *Node) { n.kind.NoTag = !on } }
func NewLineAtChildEnd(on bool) Option { return func(n *Node) { n.kind.NewLineAtChildEnd = on } }
func OpenTag(s string) Option          { return func(n *Node) { n.kind.Open = s } }
func CloseTag(s string) Option         { return func(n *Node) { n.kind.Close = s } }
func Extension(ext string) Option      { return func(n *Node) { n.kind.Extension = ext } }

// MergeScope makes repeated attribute sets on the node combine under p.
func MergeScope(p attr.Policy) Option {
	return func(n *Node) { n.kind.Merge = p }
}
