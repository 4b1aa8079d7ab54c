package main

import (
	"github.com/ryanhamamura/uidom"
	"github.com/ryanhamamura/uidom/dom"
	"github.com/ryanhamamura/uidom/h"
)

// Two counters on one page, each a sub-context with its own signals and
// actions.
func main() {
	app := uidom.New()
	app.Config(uidom.Options{DocumentTitle: "Counters", ServerAddress: ":7331"})

	app.Page("/", func(c *uidom.Context) {
		first := c.Component(counter)
		second := c.Component(counter)

		c.View(func() dom.Noder {
			return h.Div(
				h.H1(h.Text("Counter 1")),
				first(),
				h.H1(h.Text("Counter 2")),
				second(),
			)
		})
	})

	app.Start()
}

func counter(c *uidom.Context) {
	count := 0
	step := c.Signal(1)

	increment := c.Action(func() {
		count += step.Int()
		c.Sync()
	})
	reset := c.Action(func() {
		count = 0
		c.Sync()
	}, uidom.WithRateLimit(1, 1))

	c.View(func() dom.Noder {
		return h.Div(
			h.P(h.Textf("Count: %d", count)),
			h.P(h.Span(h.Text("Step: ")), step.Text()),
			h.Label(
				h.Text("Update Step: "),
				h.Input(h.Type("number"), step.Bind()),
			),
			h.Button(h.Text("Increment"), increment.OnClick()),
			h.Button(h.Text("Reset"), reset.OnClick()),
		)
	})
}
