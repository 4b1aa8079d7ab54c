// Package uidom serves dom trees and components as live web pages.
//
// A page is a func(*Context) that declares signals, actions and a view. The
// view is rendered into a component.Document on the first request; after
// that every Sync re-renders it and patches the browser over a Datastar SSE
// stream.
package uidom

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	ossignal "os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"github.com/ryanhamamura/uidom/attr"
	"github.com/ryanhamamura/uidom/component"
	"github.com/ryanhamamura/uidom/dom"
	"github.com/ryanhamamura/uidom/h"
	"github.com/starfederation/datastar-go/datastar"
)

// DatastarCDN is loaded by pages when no Datastar script is served locally.
const DatastarCDN = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.6/bundles/datastar.js"

const (
	ctxSignal  = "uidom-ctx"
	csrfSignal = "uidom-csrf"
	csrfKey    = "uidom.csrf"
)

// App is the root application. It routes pages, owns the page contexts and
// streams their updates.
type App struct {
	cfg                  Options
	mux                  *http.ServeMux
	server               *http.Server
	logger               zerolog.Logger
	contextRegistry      map[string]*Context
	contextRegistryMutex sync.RWMutex
	headIncludes         []dom.Raw
	footIncludes         []dom.Raw
	devModePageInitFnMap map[string]func(*Context)
	sessionManager       *scs.SessionManager
	pubsub               PubSub
	actionRateLimit      RateLimitConfig
	datastarPath         string
	datastarContent      []byte
	datastarOnce         sync.Once
	reaperStop           chan struct{}
}

func (a *App) logEvent(evt *zerolog.Event, c *Context) *zerolog.Event {
	if c != nil && c.id != "" {
		evt = evt.Str("uidom-ctx", c.id)
	}
	return evt
}

func (a *App) logFatal(format string, args ...any) {
	a.logEvent(a.logger.WithLevel(zerolog.FatalLevel), nil).Msgf(format, args...)
}

func (a *App) logErr(c *Context, format string, args ...any) {
	a.logEvent(a.logger.Error(), c).Msgf(format, args...)
}

func (a *App) logWarn(c *Context, format string, args ...any) {
	a.logEvent(a.logger.Warn(), c).Msgf(format, args...)
}

func (a *App) logInfo(c *Context, format string, args ...any) {
	a.logEvent(a.logger.Info(), c).Msgf(format, args...)
}

func (a *App) logDebug(c *Context, format string, args ...any) {
	a.logEvent(a.logger.Debug(), c).Msgf(format, args...)
}

// NewConsoleLogger is the human readable logger used in dev mode.
func NewConsoleLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		With().Timestamp().Logger().Level(level)
}

// Config merges cfg into the current configuration.
func (a *App) Config(cfg Options) {
	if cfg.Logger != nil {
		a.logger = *cfg.Logger
	} else if cfg.LogLevel != nil || cfg.DevMode != a.cfg.DevMode {
		level := zerolog.InfoLevel
		if cfg.LogLevel != nil {
			level = *cfg.LogLevel
		}
		if cfg.DevMode {
			a.logger = NewConsoleLogger(level)
		} else {
			a.logger = zerolog.New(os.Stderr).With().Timestamp().Logger().Level(level)
		}
	}
	if cfg.DocumentTitle != "" {
		a.cfg.DocumentTitle = cfg.DocumentTitle
	}
	if cfg.DocumentLang != "" {
		a.cfg.DocumentLang = cfg.DocumentLang
	}
	for _, plugin := range cfg.Plugins {
		if plugin != nil {
			plugin(a)
		}
	}
	a.cfg.DevMode = cfg.DevMode
	if cfg.ServerAddress != "" {
		a.cfg.ServerAddress = cfg.ServerAddress
	}
	if cfg.SessionManager != nil {
		a.sessionManager = cfg.SessionManager
	}
	if cfg.DatastarContent != nil {
		a.datastarContent = cfg.DatastarContent
	}
	if cfg.DatastarPath != "" {
		a.datastarPath = cfg.DatastarPath
	}
	if cfg.PubSub != nil {
		a.pubsub = cfg.PubSub
	}
	if cfg.ContextTTL != 0 {
		a.cfg.ContextTTL = cfg.ContextTTL
	}
	if cfg.ActionRateLimit.Rate != 0 || cfg.ActionRateLimit.Burst != 0 {
		a.actionRateLimit = cfg.ActionRateLimit
	}
}

// AppendToHead adds nodes to the head of every page, typically stylesheets
// and scripts. The nodes are rendered once, here, since every page shares
// them.
func (a *App) AppendToHead(elements ...dom.Noder) {
	a.headIncludes = append(a.headIncludes, a.freeze(elements)...)
}

// AppendToFoot adds nodes to the end of the body of every page. Like
// AppendToHead they are rendered once.
func (a *App) AppendToFoot(elements ...dom.Noder) {
	a.footIncludes = append(a.footIncludes, a.freeze(elements)...)
}

func (a *App) freeze(elements []dom.Noder) []dom.Raw {
	var out []dom.Raw
	for idx, el := range elements {
		if el == nil {
			continue
		}
		s, err := el.Node().Markup()
		if err != nil {
			a.logErr(nil, "include at idx=%d failed to render: %v", idx, err)
			continue
		}
		out = append(out, dom.Raw(s))
	}
	return out
}

// Page registers route. init runs once per request to declare the signals,
// actions and view of the new Context; it is also run once at registration
// so a page without a view fails early.
//
//	app.Page("/", func(c *uidom.Context) {
//		c.View(func() dom.Noder {
//			return h.H1(h.Text("Hello, uidom"))
//		})
//	})
func (a *App) Page(route string, init func(c *Context)) {
	a.ensureDatastarHandler()
	func() {
		defer func() {
			if err := recover(); err != nil {
				a.logFatal("failed to register page %s: init panics: %v", route, err)
				panic(err)
			}
		}()
		c := newContext("", "", a)
		init(c)
		c.buildView()
		c.dispose()
	}()

	if a.cfg.DevMode {
		a.devModePageInitFnMap[route] = init
	}
	a.mux.HandleFunc("GET "+route, func(w http.ResponseWriter, r *http.Request) {
		a.logDebug(nil, "GET %s", r.URL.String())
		if strings.Contains(r.URL.Path, "favicon") ||
			strings.Contains(r.URL.Path, ".well-known") ||
			strings.Contains(r.URL.Path, "js.map") {
			return
		}
		// ids sort by creation time
		id := fmt.Sprintf("%s_/%s", route, ulid.Make())
		c := newContext(id, route, a)
		c.reqCtx = r.Context()
		c.csrfToken = a.csrfToken(r.Context())
		c.injectRouteParams(extractParams(route, r.URL.Path))
		init(c)
		a.registerCtx(c)
		if a.cfg.DevMode {
			a.devModePersist(c)
		}

		page, err := a.renderPage(c)
		if err != nil {
			a.logErr(c, "render page failed: %v", err)
			http.Error(w, "render failed", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := w.Write(page); err != nil {
			a.logErr(c, "write page failed: %v", err)
		}
	})
}

// renderPage renders the whole document of c under the page's viewMu.
func (a *App) renderPage(c *Context) ([]byte, error) {
	c.viewMu.Lock()
	defer c.viewMu.Unlock()
	doc, err := a.document(c)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (a *App) document(c *Context) (*component.Component[component.DocumentProps], error) {
	datastarSrc := DatastarCDN
	if a.datastarContent != nil {
		datastarSrc = a.datastarPath
	}
	head := []any{h.Script(h.Type("module"), h.Src(datastarSrc))}
	for _, el := range a.headIncludes {
		head = append(head, el)
	}
	head = append(head,
		h.Meta(h.Data("signals", attr.NewObject(ctxSignal, c.id, csrfSignal, c.csrfToken))),
		h.Meta(h.Data("init", "@get('/_sse')")),
		h.Meta(h.Data("init", fmt.Sprintf(
			"window.addEventListener('beforeunload', () => navigator.sendBeacon('/_session/close', '%s'))", c.id))),
	)

	body := []any{c.buildView()}
	for _, el := range a.footIncludes {
		body = append(body, el)
	}
	return component.Document(component.DocumentProps{
		Title:     a.cfg.DocumentTitle,
		Lang:      a.cfg.DocumentLang,
		CSRFToken: c.csrfToken,
		Head:      head,
		Body:      body,
	})
}

// csrfToken returns the token of the session loaded into ctx, creating it
// on first use. Without a session every page gets a fresh token.
func (a *App) csrfToken(ctx context.Context) string {
	if a.sessionManager == nil || !sessionLoaded(ctx) {
		return genCSRFToken()
	}
	tok := a.sessionManager.GetString(ctx, csrfKey)
	if tok == "" {
		tok = genCSRFToken()
		a.sessionManager.Put(ctx, csrfKey, tok)
	}
	return tok
}

func (a *App) registerCtx(c *Context) {
	if c == nil {
		a.logErr(nil, "failed to add nil context to registry")
		return
	}
	a.contextRegistryMutex.Lock()
	defer a.contextRegistryMutex.Unlock()
	a.contextRegistry[c.id] = c
	a.logDebug(c, "new context added to registry")
	a.logDebug(nil, "number of contexts in registry: %d", len(a.contextRegistry))
}

func (a *App) cleanupCtx(c *Context) {
	c.dispose()
	if a.cfg.DevMode {
		a.devModeRemovePersisted(c)
	}
	a.unregisterCtx(c)
}

func (a *App) unregisterCtx(c *Context) {
	if c.id == "" {
		a.logErr(c, "unregister ctx failed: ctx contains empty id")
		return
	}
	a.contextRegistryMutex.Lock()
	defer a.contextRegistryMutex.Unlock()
	delete(a.contextRegistry, c.id)
	a.logDebug(c, "ctx removed from registry")
	a.logDebug(nil, "number of contexts in registry: %d", len(a.contextRegistry))
}

func (a *App) getCtx(id string) (*Context, error) {
	a.contextRegistryMutex.RLock()
	defer a.contextRegistryMutex.RUnlock()
	if c, ok := a.contextRegistry[id]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("ctx '%s' not found", id)
}

func (a *App) startReaper() {
	ttl := a.cfg.ContextTTL
	if ttl < 0 {
		return
	}
	if ttl == 0 {
		ttl = 30 * time.Second
	}
	interval := max(ttl/3, 5*time.Second)
	a.reaperStop = make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-a.reaperStop:
				return
			case <-ticker.C:
				a.reapOrphanedContexts(ttl)
			}
		}
	}()
}

func (a *App) reapOrphanedContexts(ttl time.Duration) {
	now := time.Now()
	a.contextRegistryMutex.RLock()
	var orphans []*Context
	for _, c := range a.contextRegistry {
		if !c.sseConnected.Load() && now.Sub(c.createdAt) > ttl {
			orphans = append(orphans, c)
		}
	}
	a.contextRegistryMutex.RUnlock()

	for _, c := range orphans {
		a.logInfo(c, "reaping orphaned context (no SSE connection after %s)", ttl)
		a.cleanupCtx(c)
	}
}

// Handler is the app's root handler: the mux wrapped in session loading.
func (a *App) Handler() http.Handler {
	if a.sessionManager == nil {
		return a.mux
	}
	return a.sessionManager.LoadAndSave(markSessionLoaded(a.mux))
}

// Start serves the app and blocks until SIGINT or SIGTERM, then shuts down
// gracefully.
func (a *App) Start() {
	a.server = &http.Server{
		Addr:    a.cfg.ServerAddress,
		Handler: a.Handler(),
	}
	a.startReaper()

	errCh := make(chan error, 1)
	go func() {
		errCh <- a.server.ListenAndServe()
	}()
	a.logInfo(nil, "uidom started at [%s]", a.cfg.ServerAddress)

	sigCh := make(chan os.Signal, 1)
	ossignal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		a.logInfo(nil, "received signal %v, shutting down", sig)
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			a.logger.Fatal().Err(err).Msg("http server failed")
		}
		return
	}
	a.Shutdown()
}

// Shutdown stops the reaper, disposes every context, stops the server and
// closes the PubSub backend.
func (a *App) Shutdown() {
	if a.reaperStop != nil {
		close(a.reaperStop)
		a.reaperStop = nil
	}
	a.logInfo(nil, "draining all contexts")
	a.drainAllContexts()

	if a.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.server.Shutdown(ctx); err != nil {
			a.logErr(nil, "http server shutdown error: %v", err)
		}
	}
	if a.pubsub != nil {
		if err := a.pubsub.Close(); err != nil {
			a.logErr(nil, "pubsub close error: %v", err)
		}
	}
	a.logInfo(nil, "shutdown complete")
}

func (a *App) drainAllContexts() {
	a.contextRegistryMutex.Lock()
	contexts := make([]*Context, 0, len(a.contextRegistry))
	for _, c := range a.contextRegistry {
		contexts = append(contexts, c)
	}
	a.contextRegistry = make(map[string]*Context)
	a.contextRegistryMutex.Unlock()

	for _, c := range contexts {
		c.dispose()
	}
	a.logInfo(nil, "drained %d context(s)", len(contexts))
}

// HTTPServeMux exposes the router for extra handlers and middleware. Modify
// it only before Start.
func (a *App) HTTPServeMux() *http.ServeMux {
	return a.mux
}

func (a *App) ensureDatastarHandler() {
	a.datastarOnce.Do(func() {
		a.mux.HandleFunc("GET "+a.datastarPath, func(w http.ResponseWriter, r *http.Request) {
			if a.datastarContent == nil {
				http.Redirect(w, r, DatastarCDN, http.StatusFound)
				return
			}
			w.Header().Set("Content-Type", "application/javascript")
			_, _ = w.Write(a.datastarContent)
		})
	})
}

type patchType int

const (
	patchTypeElements patchType = iota
	patchTypeSignals
	patchTypeScript
	patchTypeRedirect
	patchTypeReplaceURL
)

type patch struct {
	typ     patchType
	content string
}

// New creates an App with the default configuration.
func New() *App {
	a := &App{
		mux:                  http.NewServeMux(),
		logger:               NewConsoleLogger(zerolog.InfoLevel),
		contextRegistry:      make(map[string]*Context),
		devModePageInitFnMap: make(map[string]func(*Context)),
		sessionManager:       scs.New(),
		datastarPath:         "/_datastar.js",
		cfg: Options{
			ServerAddress: ":3000",
			DocumentTitle: "uidom",
			DocumentLang:  "en",
		},
	}
	a.mux.HandleFunc("GET /_sse", a.handleSSE)
	a.mux.HandleFunc("GET /_action/{id}", a.handleAction)
	a.mux.HandleFunc("POST /_session/close", a.handleSessionClose)
	return a
}

func (a *App) handleSSE(w http.ResponseWriter, r *http.Request) {
	var sigs map[string]any
	_ = datastar.ReadSignals(r, &sigs)
	cID, _ := sigs[ctxSignal].(string)

	if a.cfg.DevMode {
		if _, err := a.getCtx(cID); err != nil {
			a.devModeRestore(cID)
		}
	}
	c, err := a.getCtx(cID)
	if err != nil {
		a.logErr(nil, "sse stream failed to start: %v", err)
		http.Error(w, "unknown context", http.StatusNotFound)
		return
	}
	c.setReqCtx(r.Context())

	sse := datastar.NewSSE(w, r, datastar.WithCompression(datastar.WithBrotli(datastar.WithBrotliLevel(5))))
	// the event id tells a reconnect apart from a first connection
	sse.Send(datastar.EventTypePatchElements, []string{}, datastar.WithSSEEventId("uidom"))

	c.sseConnected.Store(true)
	a.logDebug(c, "SSE connection established")
	go c.Sync()

	for {
		select {
		case <-sse.Context().Done():
			a.logDebug(c, "SSE connection ended")
			a.cleanupCtx(c)
			return
		case <-c.ctxDisposedChan:
			a.logDebug(c, "context disposed, closing SSE")
			return
		case p := <-c.patchChan:
			if err := a.sendPatch(sse, p); err != nil && sse.Context().Err() == nil {
				a.logErr(c, "patch failed: %v", err)
			}
		}
	}
}

func (a *App) sendPatch(sse *datastar.ServerSentEventGenerator, p patch) error {
	switch p.typ {
	case patchTypeElements:
		return sse.PatchElements(p.content)
	case patchTypeSignals:
		return sse.PatchSignals([]byte(p.content))
	case patchTypeScript:
		return sse.ExecuteScript(p.content, datastar.WithExecuteScriptAutoRemove(true))
	case patchTypeRedirect:
		return sse.Redirect(p.content)
	case patchTypeReplaceURL:
		u, err := url.Parse(p.content)
		if err != nil {
			return fmt.Errorf("replace url: %w", err)
		}
		return sse.ReplaceURL(*u)
	}
	return fmt.Errorf("unknown patch type %d", p.typ)
}

func (a *App) handleAction(w http.ResponseWriter, r *http.Request) {
	actionID := r.PathValue("id")
	var sigs map[string]any
	_ = datastar.ReadSignals(r, &sigs)
	cID, _ := sigs[ctxSignal].(string)
	c, err := a.getCtx(cID)
	if err != nil {
		a.logErr(nil, "action '%s' failed: %v", actionID, err)
		http.Error(w, "unknown context", http.StatusNotFound)
		return
	}
	csrfToken, _ := sigs[csrfSignal].(string)
	if subtle.ConstantTimeCompare([]byte(csrfToken), []byte(c.csrfToken)) != 1 {
		a.logWarn(c, "action '%s' rejected: invalid CSRF token", actionID)
		http.Error(w, "invalid CSRF token", http.StatusForbidden)
		return
	}
	if !allow(c.actionLimiter) {
		a.logWarn(c, "action '%s' rate limited", actionID)
		http.Error(w, "rate limited", http.StatusTooManyRequests)
		return
	}
	c.setReqCtx(r.Context())
	entry, err := c.getAction(actionID)
	if err != nil {
		a.logDebug(c, "action '%s' failed: %v", actionID, err)
		http.Error(w, "unknown action", http.StatusNotFound)
		return
	}
	if !allow(entry.limiter) {
		a.logWarn(c, "action '%s' rate limited (per-action)", actionID)
		http.Error(w, "rate limited", http.StatusTooManyRequests)
		return
	}
	defer func() {
		if rec := recover(); rec != nil {
			a.logErr(c, "action '%s' failed: %v", actionID, rec)
			http.Error(w, "action failed", http.StatusInternalServerError)
		}
	}()

	delete(sigs, ctxSignal)
	delete(sigs, csrfSignal)
	c.injectSignals(sigs)
	entry.fn()
}

func (a *App) handleSessionClose(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	body, err := io.ReadAll(r.Body)
	if err != nil {
		a.logErr(nil, "error reading body: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	c, err := a.getCtx(string(body))
	if err != nil {
		a.logErr(nil, "failed to handle session close: %v", err)
		return
	}
	a.logDebug(c, "session close event triggered")
	a.cleanupCtx(c)
}

func genRandID() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)[:8]
}

func genCSRFToken() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// extractParams matches path against a route pattern with {name}
// segments. It returns nil when the segment counts differ.
func extractParams(pattern, path string) map[string]string {
	p := strings.Split(strings.Trim(pattern, "/"), "/")
	u := strings.Split(strings.Trim(path, "/"), "/")
	if len(p) != len(u) {
		return nil
	}
	params := make(map[string]string)
	for i := range p {
		if strings.HasPrefix(p[i], "{") && strings.HasSuffix(p[i], "}") {
			params[p[i][1:len(p[i])-1]] = u[i]
		}
	}
	return params
}
