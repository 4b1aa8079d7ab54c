package main

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/ryanhamamura/uidom"
	"github.com/ryanhamamura/uidom/css"
	"github.com/ryanhamamura/uidom/dom"
	"github.com/ryanhamamura/uidom/h"
	"github.com/ryanhamamura/uidom/markdown"
	"github.com/ryanhamamura/uidom/uidomnats"
	"github.com/vmihailenco/msgpack/v5"
)

// ChatMessage is published on chat.room.<name>. Messages are markdown.
type ChatMessage struct {
	User    UserInfo `msgpack:"user"`
	Message string   `msgpack:"message"`
	Time    int64    `msgpack:"time"`
}

type UserInfo struct {
	Name  string `msgpack:"name"`
	Emoji string `msgpack:"emoji"`
}

func (u UserInfo) Avatar() *dom.Node {
	return h.Div(h.Class("avatar"), h.TitleAttr(u.Name), h.Text(u.Emoji))
}

var roomNames = []string{"Go", "Rust", "Python", "JavaScript", "Clojure"}

const historySize = 50

func subject(room string) string {
	return "chat.room." + room
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ps, err := uidomnats.New(ctx, "./data/nats")
	if err != nil {
		log.Fatal().Err(err).Msg("start embedded nats")
	}
	if err := ps.EnsureStream("CHAT", historySize, "chat.>"); err != nil {
		log.Fatal().Err(err).Msg("create chat stream")
	}

	app := uidom.New()
	app.Config(uidom.Options{
		DevMode:       true,
		DocumentTitle: "NATS Chat",
		LogLevel:      uidom.LogLevelInfo,
		ServerAddress: ":7331",
		PubSub:        ps,
	})

	app.AppendToHead(
		h.Link(h.Rel("stylesheet"), h.Href("https://cdn.jsdelivr.net/npm/@picocss/pico@2/css/pico.min.css")),
		css.Sheet(
			css.Rule("main", dom.Attrs{"display": "flex", "flexDirection": "column", "height": "100vh"}),
			css.Class("chat-message", dom.Attrs{"display": "flex", "gap": "0.75rem", "marginBottom": "0.5rem"}),
			css.Class("avatar", dom.Attrs{
				"width":        "2rem",
				"height":       "2rem",
				"borderRadius": "50%",
				"display":      "grid",
				"placeItems":   "center",
				"fontSize":     "1.5rem",
			}),
			css.Class("bubble", dom.Attrs{"flex": "1"}),
			css.Class("chat-history", dom.Attrs{"flex": "1", "overflowY": "auto", "padding": "1rem"}),
			css.Class("chat-input", dom.Attrs{"display": "flex", "gap": "0.75rem", "padding": "0.75rem 1rem"}),
		),
	)

	app.Page("/", func(c *uidom.Context) {
		user := randUser()
		roomSignal := c.Signal("Go")
		statement := c.Signal("")

		var mu sync.Mutex
		var messages []ChatMessage
		var sub uidom.Subscription
		currentRoom := ""

		join := func(room string) {
			mu.Lock()
			defer mu.Unlock()
			if sub != nil {
				_ = sub.Unsubscribe()
			}
			messages = nil
			currentRoom = room
			// no browser to talk to while the page is being registered
			if c.ID() == "" {
				return
			}
			s, err := ps.Replay(subject(room), func(data []byte) {
				var msg ChatMessage
				if err := msgpack.Unmarshal(data, &msg); err != nil {
					return
				}
				mu.Lock()
				messages = append(messages, msg)
				if len(messages) > historySize {
					messages = messages[len(messages)-historySize:]
				}
				mu.Unlock()
				c.Sync()
			})
			if err != nil {
				log.Error().Err(err).Str("room", room).Msg("join room")
				return
			}
			sub = s
		}
		join("Go")

		go func() {
			<-c.Done()
			mu.Lock()
			defer mu.Unlock()
			if sub != nil {
				_ = sub.Unsubscribe()
			}
		}()

		switchRoom := c.Action(func() {
			if room := roomSignal.String(); room != currentRoom {
				join(room)
				c.Sync()
			}
		})

		say := c.Action(func() {
			msg := statement.String()
			if msg == "" {
				msg = randomDevQuote()
			}
			statement.SetValue("")
			_ = uidom.Publish(c, subject(currentRoom), ChatMessage{
				User:    user,
				Message: msg,
				Time:    time.Now().UnixMilli(),
			})
			c.SyncSignals()
		}, uidom.WithRateLimit(2, 5))

		c.View(func() dom.Noder {
			tabs := h.Ul()
			for _, name := range roomNames {
				tabs.Add(h.Li(h.A(
					h.If(name == currentRoom, h.Aria("current", "page")),
					h.Text(name),
					switchRoom.OnClick(uidom.WithSignal(roomSignal, name)),
				)))
			}

			history := h.Div(h.Class("chat-history"))
			mu.Lock()
			for _, msg := range messages {
				body, err := markdown.Element(msg.Message)
				if err != nil {
					body = h.P(h.Text(msg.Message))
				}
				history.Add(h.Div(h.Class("chat-message"),
					msg.User.Avatar(),
					h.Div(h.Class("bubble"), body),
				))
			}
			mu.Unlock()

			return h.Main(h.Class("container"),
				h.Nav(h.Role("tab-control"), tabs),
				history,
				h.Div(h.Class("chat-input"),
					user.Avatar(),
					h.Fieldset(h.Role("group"),
						h.Input(
							h.Type("text"),
							h.Placeholder(user.Name+" says... (markdown)"),
							statement.Bind(),
							h.Attr("autofocus"),
							say.OnKeyDown("Enter"),
						),
						h.Button(h.Text("Send"), say.OnClick()),
					),
				),
			)
		})
	})

	app.Start()
}

func randUser() UserInfo {
	adjectives := []string{"Happy", "Clever", "Brave", "Swift", "Gentle", "Wise", "Bold", "Calm", "Eager", "Fierce"}
	animals := []string{"Panda", "Tiger", "Eagle", "Dolphin", "Fox", "Wolf", "Bear", "Hawk", "Otter", "Lion"}
	emojis := []string{"🐼", "🐯", "🦅", "🐬", "🦊", "🐺", "🐻", "🦅", "🦦", "🦁"}

	idx := rand.Intn(len(animals))
	return UserInfo{
		Name:  adjectives[rand.Intn(len(adjectives))] + " " + animals[idx],
		Emoji: emojis[idx],
	}
}

var quoteIdx = rand.Intn(len(devQuotes))
var devQuotes = []string{
	"Just use **NATS**.",
	"Pub/sub all the things!",
	"Messages are the new API.",
	"`JetStream` for durability.",
	"No more polling.",
	"Decouple everything.",
}

func randomDevQuote() string {
	quoteIdx = (quoteIdx + 1) % len(devQuotes)
	return devQuotes[quoteIdx]
}
