package jinja

import (
	"testing"

	"github.com/ryanhamamura/uidom/h"
	"github.com/stretchr/testify/assert"
)

func TestBlock(t *testing.T) {
	tpl := Block("nav",
		h.Nav(
			h.Ul(
				For("item in menu_items",
					h.Li(h.A(Var("item.name"), h.Attr("href", Var("item.link")))),
				),
			),
		),
	)
	assert.Equal(t, `{% block nav %}
  <nav>
    <ul>
      {% for item in menu_items %}
        <li>
          <a href="{{ item.link }}">
            {{ item.name }}
          </a>
        </li>
      {% endfor %}
    </ul>
  </nav>
{% endblock %}`, tpl.String())
}

func TestIfElifElse(t *testing.T) {
	tpl := For("name in names",
		If("name",
			Block("load", Load("space")),
			Elif("njnsf", h.P("ksf")),
			Else(h.Section(h.P("ok", Var("name")))),
		),
	)
	assert.Equal(t, `{% for name in names %}
  {% if name %}
    {% block load %}
      {% load space %}
    {% endblock %}
  {% elif njnsf %}
    <p>
      ksf
    </p>
  {% else %}
    <section>
      <p>
        ok
        {{ name }}
      </p>
    </section>
  {% endif %}
{% endfor %}`, tpl.String())
}

func TestForLoop(t *testing.T) {
	tpl := For("name in names", h.Li(Var("name")))
	assert.Equal(t, `{% for name in names %}
  <li>
    {{ name }}
  </li>
{% endfor %}`, tpl.String())

	nav := h.Nav(h.Ul(tpl))
	assert.True(t, Contains(nav))
	assert.False(t, Contains(h.Nav(h.Ul())))
	assert.False(t, IsStatement(nav))
}

func TestSingleStatements(t *testing.T) {
	assert.Equal(t, "{% csrf_token %}", CSRFToken().String())
	assert.Equal(t, `{% extends "base.html" %}`, Extends(`"base.html"`).String())
	assert.Equal(t, `{% include "nav.html" %}`, Include(`"nav.html"`).String())
	assert.Equal(t, "{% cycle 'odd' 'even' %}", Cycle("'odd' 'even'").String())
	assert.Equal(t, "{% autoescape true %}\n<p>\n  x\n</p>", AutoEscape("true", h.P("x")).String())
	assert.Equal(t, "{% comment note %}\n{% endcomment %}", Comment("note").String())
}
