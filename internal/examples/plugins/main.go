package main

import (
	"github.com/ryanhamamura/uidom"
	"github.com/ryanhamamura/uidom/css"
	"github.com/ryanhamamura/uidom/dom"
	"github.com/ryanhamamura/uidom/h"
)

// A plugin adding PicoCSS and a theme sheet built from css rules and served
// as an asset.

const picoCDN = "https://cdn.jsdelivr.net/npm/@picocss/pico@2/css/pico.yellow.min.css"

func PicoCSSPlugin(app *uidom.App) {
	theme := dom.Tag("theme", dom.RenderTag(false), dom.Extension(".css"),
		css.Rule(":root", dom.Attrs{"--pico-border-radius": "0.5rem"}),
		css.Class("hero", dom.Attrs{"textAlign": "center", "paddingTop": "2rem"}),
	)
	app.Asset("/_plugins/picocss/theme.css", theme)
	app.AppendToHead(
		h.Link(h.Rel("stylesheet"), h.Href(picoCDN)),
		h.Link(h.Rel("stylesheet"), h.Href("/_plugins/picocss/theme.css")),
	)
}

func main() {
	app := uidom.New()
	app.Config(uidom.Options{
		DocumentTitle: "uidom with PicoCSS",
		Plugins:       []uidom.Plugin{PicoCSSPlugin},
	})

	app.Page("/", func(c *uidom.Context) {
		c.View(func() dom.Noder {
			return h.Section(h.Class("container hero"),
				h.H1(h.Text("Hello from uidom")),
				h.Div(h.Class("grid"),
					h.Button(h.Text("Primary")),
					h.Button(h.Class("secondary"), h.Text("Secondary")),
				),
			)
		})
	})
	app.Start()
}
