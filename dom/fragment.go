package dom

import "github.com/ryanhamamura/uidom/attr"

var (
	// FragmentKind groups children without a tag of its own. Its attributes
	// are merged onto every direct child when rendered.
	FragmentKind = Kind{Name: "fragment", NoTag: true, Spread: true, NewLineAtChildEnd: true}

	// ConcatKind joins siblings one per line.
	ConcatKind = Kind{Name: "concat", NoTag: true, NewLineAtChildEnd: true}

	DocTypeKind = Kind{Name: "!DOCTYPE", Single: true, Open: "<!DOCTYPE html>"}
)

// Fragment groups args. Attributes set on the fragment overwrite each other
// but merge with the attributes of each child:
//
//	dom.Fragment(dom.A("class", "b"), div(dom.A("class", "a")))
//	// <div class="a b">
func Fragment(args ...any) *Node {
	return El(FragmentKind, args...)
}

// MergeClass is a Fragment whose own class attributes accumulate.
func MergeClass(args ...any) *Node {
	return El(FragmentKind, append([]any{MergeScope(attr.MergeClass)}, args...)...)
}

// DataSet is a Fragment whose own class, x-data, event, transition and
// binding attributes accumulate, so behaviour bundles can be stacked on the
// children.
func DataSet(args ...any) *Node {
	return El(FragmentKind, append([]any{MergeScope(attr.MergeAll)}, args...)...)
}

// Concat renders nodes one after the other.
func Concat(args ...any) *Node {
	return El(ConcatKind, args...)
}

// DocType is <!DOCTYPE html>.
func DocType() *Node {
	return El(DocTypeKind)
}

// Comment is an HTML comment kept on one line.
func Comment(data string) *Node {
	return El(Kind{Name: "!--", Single: true, Inline: true, Open: "<!--" + data + "-->"})
}

// IsComment reports whether n was built by Comment.
func IsComment(n *Node) bool {
	return n.kind.Name == "!--"
}
