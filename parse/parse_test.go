package parse

import (
	"testing"

	"github.com/ryanhamamura/uidom/attr"
	"github.com/ryanhamamura/uidom/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cases := map[string]string{
		"nested": `<div>
  context
  <div>
    sub context
    <div>
      inside subcontext
    </div>
  </div>
</div>`,
		"attributes": `<div class="a" x-cloak x-data='{"open": false, "n": 1}'>
  hi
</div>`,
		"void": `<form method="get">
  <input name="q" type="text">
  <br>
</form>`,
		"escaped text": `<p>
  a &lt; b &amp; c
</p>`,
		"script": `<script>
  if (a < b) { go() }
</script>`,
		"template text": `<p>
  {{ user.name }}
</p>`,
		"template text with entities": `<p>
  {x &lt; y}
</p>`,
		"document": `<!DOCTYPE html>
<html lang="en">
  <!--note-->
  <body>
  </body>
</html>`,
		"svg": `<svg viewBox="0 0 10 10">
  <clipPath id="c">
  </clipPath>
</svg>`,
		"custom element": `<x-card title="t">
</x-card>`,
		"siblings": `<p>
  one
</p>
<p>
  two
</p>`,
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			root, err := HTML(src)
			require.NoError(t, err)
			assert.Equal(t, src, root.String())
		})
	}
}

func TestAttributeValues(t *testing.T) {
	el, err := Element(`<div x-data='{"a": 1}' hidden data-x="" :class="{ on: open }"></div>`)
	require.NoError(t, err)

	xdata, ok := el.Attr("x-data")
	require.True(t, ok)
	obj, ok := xdata.(*attr.Object)
	require.True(t, ok)
	assert.Equal(t, []string{"a"}, obj.Keys())

	hidden, ok := el.Attr("hidden")
	require.True(t, ok)
	assert.Nil(t, hidden)

	dataX, _ := el.Attr("data-x")
	assert.Equal(t, "", dataX)

	bind, _ := el.Attr(":class")
	assert.Equal(t, "{ on: open }", bind)
}

func TestScanAttrs(t *testing.T) {
	got := scanAttrs(`<rect viewBox = "0 0 1 1" x-cloak data='[1]' w=3/>`)
	assert.Equal(t, map[string]rawAttr{
		"viewbox": {key: "viewBox", quote: '"'},
		"x-cloak": {key: "x-cloak", bare: true},
		"data":    {key: "data", quote: '\''},
		"w":       {key: "w"},
	}, got)

	assert.Empty(t, scanAttrs("<br>"))
}

func TestSelfClosingTags(t *testing.T) {
	root, err := HTML(`<svg><path d="M0"/><circle r="1"></circle></svg>`)
	require.NoError(t, err)

	s, err := root.Get("svg")
	require.NoError(t, err)
	require.Equal(t, 2, s.Len())
	path := s.ChildAt(0).(*dom.Node)
	assert.Equal(t, "path", path.Name())
	assert.Equal(t, 0, path.Len())
	assert.Equal(t, "circle", s.ChildAt(1).(*dom.Node).Name())
}

func TestStrayEndTag(t *testing.T) {
	root, err := HTML(`<div><span>a</span></p>b</div>`)
	require.NoError(t, err)
	d, err := root.Get("div")
	require.NoError(t, err)
	assert.Equal(t, 2, d.Len())
}

func TestElement(t *testing.T) {
	el, err := Element("<!-- lead -->\n<p>x</p>")
	require.NoError(t, err)
	assert.Equal(t, "p", el.Name())
	assert.Nil(t, el.Parent())

	_, err = Element("just text")
	assert.ErrorIs(t, err, ErrNoElement)

	_, err = Element("<p></p><p></p>")
	assert.ErrorIs(t, err, ErrMultipleElements)
}

func TestWithLookup(t *testing.T) {
	custom := func(name string) (dom.Kind, bool) {
		if name == "badge" {
			return dom.Kind{Name: "badge", Inline: true}, true
		}
		return dom.Kind{}, false
	}
	root, err := HTML("<p><badge>new</badge></p>", WithLookup(custom))
	require.NoError(t, err)
	assert.Equal(t, "<p>\n  <badge>new</badge>\n</p>", root.String())
}

func TestTemplateTextKeepsEntities(t *testing.T) {
	root, err := HTML("<p>{&lt;img src=x onerror=alert(1)&gt;}</p>")
	require.NoError(t, err)
	out := root.String()
	assert.Equal(t, "<p>\n  {&lt;img src=x onerror=alert(1)&gt;}\n</p>", out)
	assert.NotContains(t, out, "<img")
}

func TestWithoutEscape(t *testing.T) {
	root, err := HTML("<p>a &amp;amp; b</p>", WithoutEscape())
	require.NoError(t, err)
	assert.Equal(t, "<p>\n  a &amp; b\n</p>", root.String())
}
