package main

import (
	"strings"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/ryanhamamura/uidom"
	"github.com/ryanhamamura/uidom/dom"
	"github.com/ryanhamamura/uidom/h"
)

const noteSep = "\x1f"

func notes(s *uidom.Session) []string {
	raw := s.GetString("notes")
	if raw == "" {
		return nil
	}
	return strings.Split(raw, noteSep)
}

func main() {
	sm := scs.New()
	sm.Lifetime = 12 * time.Hour
	sm.Cookie.Name = "uidom_notes"

	app := uidom.New()
	app.Config(uidom.Options{
		DocumentTitle:  "Scratchpad",
		ServerAddress:  ":7331",
		SessionManager: sm,
	})

	app.Page("/", func(c *uidom.Context) {
		s := c.Session()
		visits := s.GetInt("visits") + 1
		s.Set("visits", visits)
		draft := c.Signal("")

		add := c.Action(func() {
			text := strings.TrimSpace(draft.String())
			if text == "" {
				return
			}
			s.Set("notes", strings.Join(append(notes(s), text), noteSep))
			s.Set("flash", "saved")
			draft.SetValue("")
			c.Sync()
		})

		forget := c.Action(func() {
			_ = s.Destroy()
			c.Redirect("/")
		})

		c.View(func() dom.Noder {
			items := notes(s)
			return h.Main(
				h.H1(h.Text("Scratchpad")),
				h.Small(h.Textf("visit #%d in this session", visits)),
				h.If(s.Exists("flash"), h.P(h.Class("flash"), h.Text(s.PopString("flash")))),
				h.Form(add.OnSubmit(),
					h.Input(h.Type("text"), h.Placeholder("Write something"), draft.Bind()),
					h.Button(h.Type("submit"), h.Text("Keep")),
				),
				h.If(len(items) == 0, h.P(h.Em(h.Text("Nothing kept yet.")))),
				h.Ul(h.Range(items, func(n string) any { return h.Li(h.Text(n)) })),
				h.Button(h.Text("Forget me"), forget.OnClick()),
			)
		})
	})

	app.Start()
}
