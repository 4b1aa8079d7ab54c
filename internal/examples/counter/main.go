package main

import (
	"github.com/ryanhamamura/uidom"
	"github.com/ryanhamamura/uidom/component"
	"github.com/ryanhamamura/uidom/dom"
	"github.com/ryanhamamura/uidom/h"
)

type Counter struct {
	Count int `msgpack:"count"`
}

func render(s Counter) *dom.Node {
	return h.P(h.Textf("Count: %d", s.Count))
}

func main() {
	app := uidom.New()
	app.Config(uidom.Options{DocumentTitle: "Counter", ServerAddress: ":7331"})

	app.Page("/", func(c *uidom.Context) {
		counter := component.Must(component.New(Counter{}, render))
		step := c.Signal(1)

		increment := c.Action(func() {
			counter.State.Count += step.Int()
			c.Sync()
		})

		c.View(func() dom.Noder {
			return h.Div(
				counter,
				h.P(h.Span(h.Text("Step: ")), step.Text()),
				h.Label(
					h.Text("Update Step: "),
					h.Input(h.Type("number"), step.Bind()),
				),
				h.Button(h.Text("Increment"), increment.OnClick()),
			)
		})
	})

	app.Start()
}
