package dom

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func div(args ...any) *Node { return El(Kind{Name: "div"}, args...) }
func p(args ...any) *Node   { return El(Kind{Name: "p"}, args...) }

var (
	singleKind = Kind{Name: "single-tag", Single: true, ChildDedent: true}
	doubleKind = Kind{Name: "double-tag"}
)

func TestNestedRender(t *testing.T) {
	sub := div("sub context", div("inside subcontext"))
	root := div("context", sub)

	assert.Equal(t, `<div>
  context
  <div>
    sub context
    <div>
      inside subcontext
    </div>
  </div>
</div>`, root.String())
}

func TestSingleTag(t *testing.T) {
	s := El(singleKind)
	withAttr := El(singleKind, A("x", 1))

	assert.Equal(t, "<single-tag>", s.String())
	assert.Equal(t, `<single-tag x="1">`, withAttr.String())

	for _, opts := range [][]RenderOption{{XHTML()}, {XHTML(), Compact()}} {
		out, err := s.Markup(opts...)
		require.NoError(t, err)
		assert.Equal(t, "<single-tag/>", out)

		out, err = withAttr.Markup(opts...)
		require.NoError(t, err)
		assert.Equal(t, `<single-tag x="1"/>`, out)
	}

	out, err := withAttr.Markup(Compact())
	require.NoError(t, err)
	assert.Equal(t, `<single-tag x="1">`, out)
}

func TestSingleTagWithChildren(t *testing.T) {
	assert.Equal(t, "<single-tag>\n<single-tag>", El(singleKind, El(singleKind)).String())
	assert.Equal(t, "<single-tag>\n<double-tag>\n</double-tag>", El(singleKind, El(doubleKind)).String())
}

func TestVoidTagDropsChildren(t *testing.T) {
	in := El(Kind{Name: "input", Single: true, Void: true}, A("type", "text"), "ignored")
	assert.Equal(t, `<input type="text">`, in.String())
}

func TestDoubleTag(t *testing.T) {
	assert.Equal(t, "<double-tag>\n</double-tag>", El(doubleKind).String())
	assert.Equal(t, "<double-tag x=\"1\">\n</double-tag>", El(doubleKind, A("x", 1)).String())

	out, err := El(doubleKind, A("x", 1)).Markup(Compact(), XHTML())
	require.NoError(t, err)
	assert.Equal(t, `<double-tag x="1"></double-tag>`, out)

	assert.Equal(t,
		"<double-tag>\n  <double-tag>\n  </double-tag>\n</double-tag>",
		El(doubleKind, El(doubleKind)).String())
	assert.Equal(t,
		"<double-tag>\n  <single-tag>\n</double-tag>",
		El(doubleKind, El(singleKind)).String())
}

func TestInlineChild(t *testing.T) {
	span := El(Kind{Name: "span", Inline: true}, "x", El(Kind{Name: "b"}, "y"))
	assert.Equal(t, "<div>\n  <span>x<b>y</b></span>\n</div>", div(span).String())
}

func TestRenderOptions(t *testing.T) {
	tree := div(p("a"))

	out, err := tree.Markup(Indent("\t"))
	require.NoError(t, err)
	assert.Equal(t, "<div>\n\t<p>\n\t\ta\n\t</p>\n</div>", out)

	out, err = tree.Markup(Level(1))
	require.NoError(t, err)
	assert.Equal(t, "<div>\n    <p>\n      a\n    </p>\n  </div>", out)

	out, err = tree.Markup(Compact())
	require.NoError(t, err)
	assert.Equal(t, "<div><p>a</p></div>", out)

	compact := div(p("a"), Pretty(false))
	assert.Equal(t, "<div><p>a</p></div>", compact.String())
}

func TestTextIsEscaped(t *testing.T) {
	out, err := p("a < b & c", Raw("<br>")).Markup(Compact())
	require.NoError(t, err)
	assert.Equal(t, "<p>a &lt; b &amp; c<br></p>", out)
}

type fakeRenderer string

func (f fakeRenderer) Render(w io.Writer) error {
	_, err := io.WriteString(w, string(f))
	return err
}

func TestEmbed(t *testing.T) {
	assert.Equal(t, "<div>\n  <i>x</i>\n</div>", div(Embed(fakeRenderer("<i>x</i>"))).String())
}

func TestFragment(t *testing.T) {
	fragment := Fragment(
		A("className", "class_a"),
		A("className", "class_b"),
		div("a", A("className", "old_class_a")),
		div("b", A("className", "old_class_b")),
	)
	assert.Equal(t, `<div class="old_class_a class_b">
  a
</div>
<div class="old_class_b class_b">
  b
</div>`, fragment.String())

	// the children keep their own attributes
	first := fragment.ChildAt(0).(*Node)
	cls, _ := first.Attr("class")
	assert.Equal(t, "old_class_a", cls)
}

func TestMergeClass(t *testing.T) {
	merged := MergeClass(
		A("className", "class_a"),
		A("className", "class_b"),
		div("a"),
		div("b"),
	)
	assert.Equal(t, `<div class="class_a class_b">
  a
</div>
<div class="class_a class_b">
  b
</div>`, merged.String())
}

func TestDataSet(t *testing.T) {
	set := DataSet(
		Attrs{"className": "attr1", "x_data": "{'attr1_data': 'attr1'}"},
		Attrs{"className": "attr2", "x_data": "{'attr2_data': 'attr2'}"},
		div("a", Attrs{"className": "attr_a", "x_data": "{'a_data': 'a'}"}),
		div("b", Attrs{"className": "attr_b", "x_data": "{'b_data': 'b'}"}),
	)
	assert.Equal(t, `<div class="attr_a attr1 attr2" x-data='{"a_data": "a", "attr1_data": "attr1", "attr2_data": "attr2"}'>
  a
</div>
<div class="attr_b attr1 attr2" x-data='{"b_data": "b", "attr1_data": "attr1", "attr2_data": "attr2"}'>
  b
</div>`, set.String())
}

func TestConcat(t *testing.T) {
	doc := Concat(DocType(), El(Kind{Name: "html"}, El(Kind{Name: "head"})))
	assert.Equal(t, "<!DOCTYPE html>\n<html>\n  <head>\n  </head>\n</html>", doc.String())

	both := Concat(div(), div())
	assert.Equal(t, "<div>\n</div>\n<div>\n</div>", both.String())
}

func TestComment(t *testing.T) {
	c := Comment(" note ")
	assert.True(t, IsComment(c))
	assert.Equal(t, "<div>\n  <!-- note -->\n</div>", div(c).String())
}

func TestStyleRule(t *testing.T) {
	rule := El(Kind{Name: ".btn", Syntax: Style}, Attrs{"backgroundColor": "red", "padding": "1px", "hidden": false})
	assert.Equal(t, ".btn {\n  background-color: red;\n  padding: 1px;\n}", rule.String())

	out, err := rule.Markup(Compact())
	require.NoError(t, err)
	assert.Equal(t, ".btn{background-color:red;padding:1px;}", out)
}

func TestStyleRuleEscapesValues(t *testing.T) {
	rule := El(Kind{Name: "p", Syntax: Style}, Attrs{"color": "red</style><script>x()</script>"})
	out, err := rule.Markup(Compact())
	require.NoError(t, err)
	assert.Equal(t, "p{color:red&lt;/style&gt;&lt;script&gt;x()&lt;/script&gt;;}", out)
	assert.NotContains(t, out, "</style>")
}

func TestNewRejectsUnknownArguments(t *testing.T) {
	_, err := New(Kind{Name: "div"}, 42)
	require.ErrorIs(t, err, ErrInvalidChild)
	assert.Panics(t, func() { div(struct{}{}) })

	n, err := New(Kind{Name: "div"}, nil, (*Node)(nil), []any{"a", p()}, []*Node{p()})
	require.NoError(t, err)
	assert.Equal(t, 3, n.Len())
}

func TestTreeMutation(t *testing.T) {
	a, b, c := p("a"), p("b"), p("c")
	parent := div(a, b)

	assert.Same(t, parent, a.Parent())
	assert.Equal(t, 1, parent.IndexOf(b))
	assert.Same(t, b, a.NextSibling())
	assert.Same(t, a, b.PreviousSibling())
	assert.Nil(t, a.PreviousSibling())
	assert.Nil(t, b.NextSibling())

	parent.Insert(1, c)
	assert.Equal(t, []Child{a, c, b}, parent.Children())
	assert.Same(t, a, parent.FirstChild())
	assert.Same(t, b, parent.LastChild())

	other := div()
	other.Add(c)
	assert.False(t, parent.Contains(c))
	assert.Same(t, other, c.Parent())

	assert.True(t, parent.Remove(a))
	assert.False(t, parent.Remove(a))
	assert.Nil(t, a.Parent())

	old := parent.Replace(0, a)
	assert.Same(t, b, old)
	assert.Equal(t, []Child{a}, parent.Children())

	parent.Clear()
	assert.Zero(t, parent.Len())
	assert.Nil(t, a.Parent())
}

func TestIdentityIsNotEquality(t *testing.T) {
	parent := div(div("state child"))
	twin := div("state child")

	assert.False(t, parent.Contains(twin))
	assert.True(t, parent.ChildAt(0).(*Node).Equal(twin))
	assert.False(t, twin.Equal(p("state child")))
}

func TestAddingAncestorPanics(t *testing.T) {
	inner := div()
	outer := div(inner)
	assert.Panics(t, func() { inner.Add(outer) })
	assert.Panics(t, func() { inner.Add(inner) })
}

func TestDocumentPropagates(t *testing.T) {
	doc := El(Kind{Name: "html"})
	doc.SetDocument(doc)
	leaf := p()
	doc.Add(div(leaf))
	assert.Same(t, doc, leaf.OwnerDocument())
}

func TestAttributes(t *testing.T) {
	n := div(Attrs{"_id": "main", "x_on_click": "go()"})

	v, ok := n.Attr("id")
	assert.True(t, ok)
	assert.Equal(t, "main", v)
	_, ok = n.Attr("x_on_click")
	assert.True(t, ok)

	require.NoError(t, n.SetAttr("className", "a"))
	require.NoError(t, n.SetAttr("className", "b"))
	v, _ = n.Attr("class")
	assert.Equal(t, "b", v)

	assert.True(t, n.DeleteAttr("_id"))
	assert.False(t, n.Attrs().Has("id"))
}

func TestFind(t *testing.T) {
	target := p(A("id", "x"), A("role", "note"))
	tree := div(p("one"), div(target, p(A("id", "y"))))

	assert.Len(t, tree.Find("p"), 3)
	assert.Equal(t, []*Node{target}, tree.Find("p", Has("role")))
	assert.Equal(t, []*Node{target}, tree.Find("", Where("role", "note")))
	assert.Len(t, tree.GetElementsByTagName("div"), 1)

	got, err := tree.GetElementByID("x")
	require.NoError(t, err)
	assert.Same(t, target, got)

	_, err = tree.GetElementByID("missing")
	assert.True(t, IsNotFound(err))

	_, err = tree.Get("p")
	assert.True(t, IsAmbiguous(err))
}

func TestOnRender(t *testing.T) {
	calls := 0
	n := p()
	n.OnRender(func(n *Node) error {
		calls++
		return n.SetAttr("a", calls)
	})
	assert.Equal(t, "<p a=\"1\">\n</p>", n.String())
	assert.Equal(t, "<p a=\"2\">\n</p>", n.String())

	boom := errors.New("boom")
	n.OnRender(func(*Node) error { return boom })
	_, err := div(n).Markup()
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "", n.String())
}

func TestSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	n := p("hello")

	path, err := n.Save("page", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "page.html"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<p>\n  hello\n</p>", string(data))

	past := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(path, past, past))

	again, err := n.Save("page.html", dir)
	require.NoError(t, err)
	assert.Equal(t, path, again)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(past))

	js := El(Kind{Name: "script", Extension: ".js"})
	path, err = js.Save("app", dir)
	require.NoError(t, err)
	assert.Equal(t, ".js", filepath.Ext(path))

	_, err = n.Save("", dir)
	assert.Error(t, err)
}
