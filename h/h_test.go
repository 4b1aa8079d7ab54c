package h

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/ryanhamamura/uidom/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func TestAlpineAttributes(t *testing.T) {
	ul := Ul(
		Template(dom.Attrs{"x_for": "name in names", "x_data": map[string]any{}},
			Li(dom.Attrs{
				"x_text":             "name",
				"x_intersect_enter":  "opacity-100",
				"x_intersect_leave":  "opacity-100",
				"x_transition_enter": "opacity-100",
			}),
		),
	)
	assert.Equal(t, `<ul>
  <template x-data='{}' x-for="name in names">
    <li x-intersect:enter="opacity-100" x-intersect:leave="opacity-100" x-text="name" x-transition:enter="opacity-100">
    </li>
  </template>
</ul>`, ul.String())
}

func TestVoidElements(t *testing.T) {
	assert.Equal(t, `<input name="q" required="required" type="text">`,
		Input(Type("text"), Name("q"), Required()).String())
	assert.Equal(t, "<p>\n  a\n  <br>\n  b\n</p>", P("a", Br(), "b").String())

	out, err := Img(Src("/a.png"), Alt("")).Markup(dom.XHTML())
	require.NoError(t, err)
	assert.Equal(t, `<img alt="" src="/a.png"/>`, out)
}

func TestAttributeValueKinds(t *testing.T) {
	assert.Equal(t, "<div class=\"a\">\n  hi\n</div>", Div(dom.Attrs{"className": "a"}, "hi").String())
	assert.Equal(t, "<div x-data>\n</div>", Div(dom.Attrs{"x_data": nil}).String())
	assert.Equal(t, `<input type="checkbox">`, Input(Type("checkbox"), dom.Attrs{"checked": false}).String())
}

func TestPreKeepsContent(t *testing.T) {
	pre := Pre(Code(Class("language-go"), "func main() {}"))
	assert.Equal(t, `<div>
  <pre><code class="language-go">func main() {}</code></pre>
</div>`, Div(pre).String())
}

func TestAttrHelpers(t *testing.T) {
	a := A(Href("/x"), Attr("x_on_click", "go()"), Attr("hidden"), Data("on:click", "@get('/a')"), Aria("label", "go"))
	out, err := a.Markup(dom.Compact())
	require.NoError(t, err)
	assert.Equal(t, `<a @click="go()" aria-label="go" data-on:click="@get('/a')" hidden href="/x"></a>`, out)

	assert.Panics(t, func() { Attr("a", "b", "c") })

	div := Div(Classes(map[string]bool{"b": true, "a": true, "off": false}), If(false, "hidden"), If(true, "shown"))
	assert.Equal(t, "<div class=\"a b\">\n  shown\n</div>", div.String())
}

func TestRange(t *testing.T) {
	list := Ul(Range([]string{"a", "b"}, func(s string) any { return Li(Text(s)) }))
	assert.Equal(t, 2, list.Len())
	assert.Len(t, list.Find("li"), 2)
}

func TestTextHelpers(t *testing.T) {
	out, err := Span(Textf("%d < %d", 1, 2), Rawf("<i>%s</i>", "x")).Markup(dom.Compact())
	require.NoError(t, err)
	assert.Equal(t, "<span>1 &lt; 2<i>x</i></span>", out)
}

func TestLookup(t *testing.T) {
	k, ok := Lookup("meta")
	require.True(t, ok)
	assert.True(t, k.Single)
	assert.True(t, k.Void)

	k, ok = Lookup("textarea")
	require.True(t, ok)
	assert.True(t, k.Inline)

	_, ok = Lookup("blink")
	assert.False(t, ok)
}

func TestGomponentsInterop(t *testing.T) {
	div := Div(G(g.El("span", g.Text("x"))))
	assert.Equal(t, "<div>\n  <span>x</span>\n</div>", div.String())

	var b strings.Builder
	require.NoError(t, g.El("section", ToG(P("a"))).Render(&b))
	assert.Equal(t, "<section><p>\n  a\n</p></section>", b.String())
}

func TestTemplInterop(t *testing.T) {
	div := Div(Templ(templ.Raw("<b>x</b>")))
	assert.Equal(t, "<div>\n  <b>x</b>\n</div>", div.String())

	var b strings.Builder
	require.NoError(t, ToTempl(Span("y")).Render(context.Background(), &b))
	assert.Equal(t, "<span>\n  y\n</span>", b.String())
}

func TestHTML5(t *testing.T) {
	page := dom.Concat(HTML5(HTML5Props{
		Title:    "Home",
		Language: "en",
		Head:     []dom.Renderer{Link(Rel("stylesheet"), Href("/app.css"))},
		Body:     []dom.Renderer{P("hi")},
	}))
	out := page.String()
	assert.Contains(t, out, "<title>Home</title>")
	assert.Contains(t, out, `<html lang="en">`)
	assert.Contains(t, out, `<link href="/app.css" rel="stylesheet">`)
}
