package uidom

import (
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/rs/zerolog"
)

func ptr(l zerolog.Level) *zerolog.Level { return &l }

var (
	LogLevelDebug = ptr(zerolog.DebugLevel)
	LogLevelInfo  = ptr(zerolog.InfoLevel)
	LogLevelWarn  = ptr(zerolog.WarnLevel)
	LogLevelError = ptr(zerolog.ErrorLevel)
)

// Plugin mutates the app at configuration time, typically to add head or
// foot includes for a CSS or JS library.
type Plugin func(a *App)

// Options configures an App. Zero values keep the current setting.
type Options struct {
	// DevMode logs to a console writer and persists page contexts so a
	// restarted server can resume open browser tabs.
	DevMode bool

	// ServerAddress is the listen address, e.g. ":3000".
	ServerAddress string

	// LogLevel sets the minimum log level. nil keeps the default (Info).
	LogLevel *zerolog.Level

	// Logger replaces the default logger. LogLevel and DevMode then have no
	// effect on logging.
	Logger *zerolog.Logger

	// DocumentTitle is the <title> of every page.
	DocumentTitle string

	// DocumentLang is the lang attribute of every page. Defaults to "en".
	DocumentLang string

	Plugins []Plugin

	// SessionManager backs Context.Session and the per-session CSRF token.
	// Configure lifetime, cookie and store before passing it.
	SessionManager *scs.SessionManager

	// DatastarContent is served at DatastarPath. When nil pages load
	// Datastar from DatastarCDN.
	DatastarContent []byte

	// DatastarPath is where DatastarContent is served. Defaults to
	// "/_datastar.js".
	DatastarPath string

	// PubSub enables Context.Publish and Context.Subscribe. uidomnats.New
	// provides an embedded NATS backend.
	PubSub PubSub

	// ContextTTL is how long a page context may live without an SSE
	// connection before the reaper disposes it. Defaults to 30s; negative
	// disables reaping.
	ContextTTL time.Duration

	// ActionRateLimit is the default token bucket of every page context.
	ActionRateLimit RateLimitConfig
}
