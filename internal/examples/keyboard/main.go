package main

import (
	"github.com/ryanhamamura/uidom"
	"github.com/ryanhamamura/uidom/css"
	"github.com/ryanhamamura/uidom/dom"
	"github.com/ryanhamamura/uidom/h"
)

const gridSize = 8

func main() {
	app := uidom.New()
	app.Config(uidom.Options{DocumentTitle: "Keyboard", ServerAddress: ":7331"})
	app.AppendToHead(css.Sheet(
		css.Class("row", dom.Attrs{"display": "flex"}),
		css.Class("cell", dom.Attrs{
			"width":      "48px",
			"height":     "48px",
			"background": "#e0e0e0",
			"border":     "1px solid #ccc",
		}),
		css.Class("cell.active", dom.Attrs{"background": "#4a90d9"}),
	))

	app.Page("/", func(c *uidom.Context) {
		x, y := 0, 0
		dir := c.Signal("")

		move := c.Action(func() {
			switch dir.String() {
			case "up":
				y = max(0, y-1)
			case "down":
				y = min(gridSize-1, y+1)
			case "left":
				x = max(0, x-1)
			case "right":
				x = min(gridSize-1, x+1)
			}
			c.Sync()
		})

		c.View(func() dom.Noder {
			grid := h.Div()
			for row := range gridSize {
				r := h.Div(h.Class("row"))
				for col := range gridSize {
					r.Add(h.Div(h.Classes(map[string]bool{"cell": true, "active": col == x && row == y})))
				}
				grid.Add(r)
			}

			return h.Div(
				h.H1(h.Text("Keyboard Grid")),
				h.P(h.Text("Move with WASD or arrow keys")),
				grid,
				uidom.OnKeyDownMap(
					uidom.KeyBind("w", move, uidom.WithSignal(dir, "up")),
					uidom.KeyBind("a", move, uidom.WithSignal(dir, "left")),
					uidom.KeyBind("s", move, uidom.WithSignal(dir, "down")),
					uidom.KeyBind("d", move, uidom.WithSignal(dir, "right")),
					uidom.KeyBind("ArrowUp", move, uidom.WithSignal(dir, "up"), uidom.WithPreventDefault()),
					uidom.KeyBind("ArrowLeft", move, uidom.WithSignal(dir, "left"), uidom.WithPreventDefault()),
					uidom.KeyBind("ArrowDown", move, uidom.WithSignal(dir, "down"), uidom.WithPreventDefault()),
					uidom.KeyBind("ArrowRight", move, uidom.WithSignal(dir, "right"), uidom.WithPreventDefault()),
				),
			)
		})
	})

	app.Start()
}
