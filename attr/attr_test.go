package attr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"cls":                      "class",
		"className":                "class",
		"class_name":               "class",
		"fr":                       "for",
		"html_for":                 "for",
		"htmlFor":                  "for",
		"_id":                      "id",
		"_type":                    "type",
		"__custom":                 ":custom",
		"x_on_click":               "@click",
		"v_on_click":               "@click",
		"x_on__click":              "@click",
		"x_bind_href":              ":href",
		"v_bind_src":               ":src",
		"x_bind__class":            ":class",
		"data_foo":                 "data-foo",
		"aria_label":               "aria-label",
		"hx_get":                   "hx-get",
		"hx_swap_oob":              "hx-swap-oob",
		"ng_model":                 "ng-model",
		"up_target":                "up-target",
		"http_equiv":               "http-equiv",
		"x_data":                   "x-data",
		"x_transition_enter":       "x-transition:enter",
		"x_transition_leave_end":   "x-transition:leave-end",
		"x_transition_dot_opacity": "x-transition.opacity",
		"x_intersect_enter":        "x-intersect:enter",
		"x_on_keydown_dot_escape":  "@keydown.escape",
		"x_on_click_dot_outside":   "@click.outside",
		"xlink_href":               "xlink:href",
		"xml_lang":                 "xml:lang",
		"xmlns_xlink":              "xmlns:xlink",
		"href":                     "href",
		"tab_index":                "tab_index",
		"x-on:click":               "x-on:click",
		"data-on:keydown__window":  "data-on:keydown__window",
		"@click":                   "@click",
		"x_component":              "x-component",
	}
	for in, want := range cases {
		assert.Equal(t, want, Normalize(in), "Normalize(%q)", in)
	}
}

func TestNormalizeStyle(t *testing.T) {
	assert.Equal(t, "background-color", NormalizeStyle("background_color"))
	assert.Equal(t, "background-color", NormalizeStyle("backgroundColor"))
	assert.Equal(t, "from", NormalizeStyle("_from"))
	assert.Equal(t, "--brand", NormalizeStyle("--brand"))
	assert.Equal(t, "class", NormalizeStyle("cls"))
}

func TestMapKeepsInsertionOrder(t *testing.T) {
	m := NewMap()
	m.Set("b", 1)
	m.Set("a", 2)
	m.Set("b", 3)

	assert.Equal(t, []string{"b", "a"}, m.Keys())
	assert.Equal(t, []string{"a", "b"}, m.Sorted())
	v, ok := m.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	assert.True(t, m.Delete("b"))
	assert.False(t, m.Delete("b"))
	assert.Equal(t, []string{"a"}, m.Keys())
}

func TestMergeClassIsAssociative(t *testing.T) {
	grouped := NewMap()
	require.NoError(t, grouped.Merge("class", "a b", MergeAll))
	require.NoError(t, grouped.Merge("class", "c", MergeAll))

	single := NewMap()
	require.NoError(t, single.Merge("class", "a", MergeClass))
	require.NoError(t, single.Merge("class", "b", MergeClass))
	require.NoError(t, single.Merge("class", "c", MergeClass))

	g, _ := grouped.Get("class")
	s, _ := single.Get("class")
	assert.Equal(t, "a b c", g)
	assert.Equal(t, g, s)
}

func TestMergeData(t *testing.T) {
	m := NewMap()
	require.NoError(t, m.Merge("x-data", map[string]any{"a": 1}, MergeAll))
	require.NoError(t, m.Merge("x-data", map[string]any{"b": 2}, MergeAll))

	var b strings.Builder
	require.NoError(t, WriteMap(&b, m))
	assert.Equal(t, ` x-data='{"a": 1, "b": 2}'`, b.String())
}

func TestMergeDataFromSingleQuotedString(t *testing.T) {
	m := NewMap()
	m.Set("x-data", "{'a_data': 'a'}")
	require.NoError(t, m.Merge("x-data", NewObject("b_data", "b", "a_data", "z"), MergeData))

	v, _ := m.Get("x-data")
	o, ok := v.(*Object)
	require.True(t, ok)
	assert.Equal(t, []string{"a_data", "b_data"}, o.Keys())
	got, _ := o.Get("a_data")
	assert.Equal(t, "z", got)
}

func TestMergeDataNotAnObjectOverwrites(t *testing.T) {
	m := NewMap()
	m.Set("x-data", "dropdown()")
	require.NoError(t, m.Merge("x-data", "{'open': true}", MergeData))
	v, _ := m.Get("x-data")
	assert.Equal(t, "{'open': true}", v)
}

func TestMergeEvents(t *testing.T) {
	m := NewMap()
	require.NoError(t, m.Merge("@click", "open = true", MergeAll))
	require.NoError(t, m.Merge("@click", "count++\n    log()", MergeAll))
	v, _ := m.Get("@click")
	assert.Equal(t, "open = true; count++ log()", v)
}

func TestMergeTransitions(t *testing.T) {
	m := NewMap()
	require.NoError(t, m.Merge("x-transition:enter", "ease-out", MergeAll))
	require.NoError(t, m.Merge("x-transition:enter", "", MergeAll))
	require.NoError(t, m.Merge("x-transition:enter", "duration-300", MergeAll))
	v, _ := m.Get("x-transition:enter")
	assert.Equal(t, "ease-out duration-300", v)
}

func TestMergeBindings(t *testing.T) {
	m := NewMap()
	require.NoError(t, m.Merge(":href", "url", MergeAll))
	require.NoError(t, m.Merge(":href", "url", MergeAll))

	err := m.Merge(":href", "other", MergeAll)
	require.ErrorIs(t, err, ErrBindingConflict)
	assert.Contains(t, err.Error(), ":href")

	require.NoError(t, m.Merge(":class", "{active: on}", MergeAll))
	require.NoError(t, m.Merge(":class", "{hidden: off}", MergeAll))
	v, _ := m.Get(":class")
	assert.Equal(t, "{active: on}; {hidden: off}", v)
}

func TestMergeNoneOverwrites(t *testing.T) {
	m := NewMap()
	require.NoError(t, m.Merge("class", "a", MergeNone))
	require.NoError(t, m.Merge("class", "b", MergeNone))
	v, _ := m.Get("class")
	assert.Equal(t, "b", v)
}

func TestWrite(t *testing.T) {
	cases := []struct {
		key  string
		val  any
		want string
	}{
		{"x-data", nil, " x-data"},
		{"checked", false, ""},
		{"checked", true, ` checked="checked"`},
		{"class", "  a\n\t b  ", ` class="a b"`},
		{"title", `"quoted" <b> & more`, ` title="&quot;quoted&quot; &lt;b&gt; &amp; more"`},
		{"x-data", map[string]any{}, ` x-data='{}'`},
		{"x-data", map[string]any{"b": 1, "a": "it's"}, ` x-data='{"a": "it\u0027s", "b": 1}'`},
		{"data-list", []string{"a", "<b>"}, ` data-list='["a", "\u003cb\u003e"]'`},
		{"value", 12, ` value="12"`},
		{"x-data", NewObject("z", 1, "a", []any{true, nil}), ` x-data='{"z": 1, "a": [true, null]}'`},
	}
	for _, c := range cases {
		var b strings.Builder
		require.NoError(t, Write(&b, c.key, c.val))
		assert.Equal(t, c.want, b.String(), "Write(%q, %v)", c.key, c.val)
	}
}

func TestDecodeJSONKeepsOrder(t *testing.T) {
	v, err := DecodeJSON(`{"z": 1, "a": {"y": [1, 2]}, "m": "x"}`)
	require.NoError(t, err)
	o := v.(*Object)
	assert.Equal(t, []string{"z", "a", "m"}, o.Keys())

	s, err := EncodeJSON(o)
	require.NoError(t, err)
	assert.Equal(t, `{"z": 1, "a": {"y": [1, 2]}, "m": "x"}`, s)

	_, err = DecodeJSON(`{"a": 1} trailing`)
	assert.Error(t, err)
}

func TestEncodeJSONStruct(t *testing.T) {
	type state struct {
		Open  bool   `json:"open"`
		Label string `json:"label"`
	}
	s, err := EncodeJSON(state{Open: true, Label: "a&b"})
	require.NoError(t, err)
	assert.Equal(t, `{"open": true, "label": "a\u0026b"}`, s)
}

func TestEncodeJSONNilObject(t *testing.T) {
	var o *Object
	s, err := EncodeJSON(o)
	require.NoError(t, err)
	assert.Equal(t, "null", s)

	s, err = EncodeJSON(map[string]any{"inner": o})
	require.NoError(t, err)
	assert.Equal(t, `{"inner": null}`, s)

	var b strings.Builder
	require.NoError(t, Write(&b, "x-data", o))
	assert.Equal(t, ` x-data='null'`, b.String())
}
