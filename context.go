package uidom

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ryanhamamura/uidom/dom"
	"github.com/ryanhamamura/uidom/h"
	"golang.org/x/time/rate"
)

// ErrNoPubSub is returned by Publish and Subscribe when the app has no
// PubSub backend.
var ErrNoPubSub = errors.New("uidom: no pubsub configured")

// Context is one open page: its view, signals, actions and subscriptions.
// Components declared with Component share the page's registries and SSE
// stream.
type Context struct {
	id                string
	route             string
	app               *App
	view              func() *dom.Node
	routeParams       map[string]string
	componentRegistry map[string]*Context
	parentPageCtx     *Context
	patchChan         chan patch
	actionRegistry    map[string]actionEntry
	signals           *sync.Map
	mu                sync.RWMutex
	viewMu            sync.Mutex
	ctxDisposedChan   chan struct{}
	disposeOnce       sync.Once
	reqCtx            context.Context
	csrfToken         string
	actionLimiter     *rate.Limiter
	subscriptions     []Subscription
	subsMu            sync.Mutex
	sseConnected      atomic.Bool
	createdAt         time.Time
}

// ID identifies the context in the browser. It is empty while a page is
// being registered.
func (c *Context) ID() string {
	return c.id
}

// View sets the function rendering this context. The result is wrapped in
// a div carrying the context id, which is what Sync patches.
//
// A *dom.Node, a component.Component or anything else with a Node method
// can be returned:
//
//	counter := component.Must(component.New(state, render))
//	c.View(func() dom.Noder { return counter })
func (c *Context) View(f func() dom.Noder) {
	if f == nil {
		panic("uidom: nil view func")
	}
	c.view = func() *dom.Node {
		return h.Div(h.ID(c.id), f())
	}
}

// buildView builds the current view. It panics when no view was set.
// Rendering a view moves nodes between trees, so building and rendering a
// live view happens under the page's viewMu, see renderMarkup.
func (c *Context) buildView() *dom.Node {
	if c.view == nil {
		panic(fmt.Sprintf("uidom: context '%s' has no view", c.id))
	}
	return c.view()
}

// renderMarkup builds and renders the view holding the page's viewMu, which
// also covers the views of the page's components.
func (c *Context) renderMarkup() (string, error) {
	p := c.page()
	p.viewMu.Lock()
	defer p.viewMu.Unlock()
	return c.buildView().Markup()
}

// Component declares a sub-context with its own view, signals and actions
// and returns its view for use in the parent's view.
//
//	counter := c.Component(counterInit)
//	c.View(func() dom.Noder {
//		return h.Div(h.H1(h.Text("Counter")), counter())
//	})
func (c *Context) Component(init func(c *Context)) func() *dom.Node {
	id := c.id + "/_component/" + genRandID()
	comp := newContext(id, c.route, c.app)
	comp.parentPageCtx = c.page()
	comp.reqCtx = c.reqCtx
	comp.csrfToken = c.csrfToken
	init(comp)
	c.componentRegistry[id] = comp
	return comp.buildView
}

func (c *Context) isComponent() bool {
	return c.parentPageCtx != nil
}

// page is the page context owning the registries and the SSE stream.
func (c *Context) page() *Context {
	if c.isComponent() {
		return c.parentPageCtx
	}
	return c
}

// Action registers f and returns its trigger. Actions run on the server
// when the trigger fires in the browser, after the browser's signal values
// have been injected.
//
//	n := 0
//	inc := c.Action(func() {
//		n++
//		c.Sync()
//	})
//	c.View(func() dom.Noder {
//		return h.Div(h.P(h.Textf("%d", n)), h.Button(h.Text("+"), inc.OnClick()))
//	})
func (c *Context) Action(f func(), opts ...ActionOption) *ActionTrigger {
	id := genRandID()
	if f == nil {
		c.app.logErr(c, "failed to bind action '%s' to context: nil func", id)
		return nil
	}
	entry := actionEntry{fn: f}
	for _, opt := range opts {
		opt(&entry)
	}
	p := c.page()
	p.mu.Lock()
	p.actionRegistry[id] = entry
	p.mu.Unlock()
	return &ActionTrigger{id: id}
}

func (c *Context) getAction(id string) (actionEntry, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if e, ok := c.actionRegistry[id]; ok {
		return e, nil
	}
	return actionEntry{}, fmt.Errorf("action '%s' not found", id)
}

// Signal creates a browser-side reactive value initialised to v. Slices,
// maps and structs are sent as JSON.
//
//	name := c.Signal("world")
//	c.View(func() dom.Noder {
//		return h.Div(h.P(h.Text("Hello, "), name.Text()), h.Input(name.Bind()))
//	})
func (c *Context) Signal(v any) *Signal {
	sigID := genRandID()
	if v == nil {
		c.app.logErr(c, "failed to bind signal: nil signal value")
		return &Signal{
			id:  sigID,
			val: "error",
			err: fmt.Errorf("context '%s' failed to bind signal '%s': nil signal value", c.id, sigID),
		}
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Map, reflect.Struct:
		if j, err := json.Marshal(v); err == nil {
			v = string(j)
		}
	}
	sig := &Signal{id: sigID, val: v, changed: true}
	c.page().signals.Store(sigID, sig)
	return sig
}

func (c *Context) injectSignals(sigs map[string]any) {
	if sigs == nil {
		c.app.logErr(c, "signal injection failed: nil signals")
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for sigID, val := range sigs {
		item, ok := c.signals.Load(sigID)
		if !ok {
			c.signals.Store(sigID, &Signal{id: sigID, val: val})
			continue
		}
		if sig, ok := item.(*Signal); ok {
			sig.val = val
			sig.changed = false
		}
	}
}

func (c *Context) prepareSignalsForPatch() map[string]any {
	p := c.page()
	p.mu.RLock()
	defer p.mu.RUnlock()
	updated := make(map[string]any)
	p.signals.Range(func(key, value any) bool {
		sig, ok := value.(*Signal)
		if !ok {
			return true
		}
		if sig.err != nil {
			c.app.logWarn(c, "signal '%s' is out of sync: %v", sig.id, sig.err)
			return true
		}
		if sig.changed {
			updated[key.(string)] = fmt.Sprintf("%v", sig.val)
		}
		return true
	})
	return updated
}

// sendPatch queues p on the page's SSE stream. A full queue drops the patch
// rather than block the caller.
func (c *Context) sendPatch(p patch) {
	select {
	case c.page().patchChan <- p:
	default:
	}
}

// Sync re-renders the view and pushes it with the changed signals to the
// browser.
func (c *Context) Sync() {
	s, err := c.renderMarkup()
	if err != nil {
		c.app.logErr(c, "sync view failed: %v", err)
		return
	}
	c.sendPatch(patch{patchTypeElements, s})
	c.SyncSignals()
}

// SyncElements pushes nodes that the browser morphs into the elements with
// the same ids.
func (c *Context) SyncElements(elems ...dom.Noder) {
	p := c.page()
	p.viewMu.Lock()
	defer p.viewMu.Unlock()
	var b strings.Builder
	for idx, el := range elems {
		if el == nil {
			c.app.logWarn(c, "sync elements failed: element at idx=%d is nil", idx)
			continue
		}
		s, err := el.Node().Markup()
		if err != nil {
			c.app.logWarn(c, "sync elements failed: element at idx=%d: %v", idx, err)
			continue
		}
		b.WriteString(s)
	}
	c.sendPatch(patch{patchTypeElements, b.String()})
}

// SyncSignals pushes the signals changed on the server.
func (c *Context) SyncSignals() {
	updated := c.prepareSignalsForPatch()
	if len(updated) == 0 {
		return
	}
	out, err := json.Marshal(updated)
	if err != nil {
		c.app.logErr(c, "sync signals failed: %v", err)
		return
	}
	c.sendPatch(patch{patchTypeSignals, string(out)})
}

// ExecScript runs s in the browser.
func (c *Context) ExecScript(s string) {
	if s == "" {
		c.app.logWarn(c, "exec script failed: empty script")
		return
	}
	c.sendPatch(patch{patchTypeScript, s})
}

// Redirect navigates the browser to url.
func (c *Context) Redirect(url string) {
	if url == "" {
		c.app.logWarn(c, "redirect failed: empty url")
		return
	}
	c.sendPatch(patch{patchTypeRedirect, url})
}

// ReplaceURL swaps the browser's URL without navigating.
func (c *Context) ReplaceURL(url string) {
	c.sendPatch(patch{patchTypeReplaceURL, url})
}

// Publish sends data to subject on the app's PubSub. It is a no-op while a
// page is being registered.
func (c *Context) Publish(subject string, data []byte) error {
	if c.id == "" {
		return nil
	}
	if c.app.pubsub == nil {
		return ErrNoPubSub
	}
	return c.app.pubsub.Publish(subject, data)
}

// Subscribe calls handler for every message on subject until the context is
// disposed. It is a no-op while a page is being registered.
func (c *Context) Subscribe(subject string, handler func(data []byte)) (Subscription, error) {
	if c.id == "" {
		return nil, nil
	}
	if c.app.pubsub == nil {
		return nil, ErrNoPubSub
	}
	sub, err := c.app.pubsub.Subscribe(subject, handler)
	if err != nil {
		return nil, err
	}
	p := c.page()
	p.subsMu.Lock()
	p.subscriptions = append(p.subscriptions, sub)
	p.subsMu.Unlock()
	return sub, nil
}

func (c *Context) unsubscribeAll() {
	c.subsMu.Lock()
	subs := c.subscriptions
	c.subscriptions = nil
	c.subsMu.Unlock()
	for _, sub := range subs {
		if err := sub.Unsubscribe(); err != nil {
			c.app.logWarn(c, "unsubscribe failed: %v", err)
		}
	}
}

// Done is closed when the context is disposed. Background work started by
// actions should stop on it.
func (c *Context) Done() <-chan struct{} {
	return c.page().ctxDisposedChan
}

// dispose releases the subscriptions and signals Done. It is idempotent.
func (c *Context) dispose() {
	c.disposeOnce.Do(func() {
		c.unsubscribeAll()
		close(c.ctxDisposedChan)
	})
}

func (c *Context) setReqCtx(ctx context.Context) {
	c.mu.Lock()
	c.reqCtx = ctx
	c.mu.Unlock()
}

func (c *Context) injectRouteParams(params map[string]string) {
	if params == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.routeParams = maps.Clone(params)
}

// GetPathParam returns the value of a {param} segment of the page route, or
// "" when the route has none.
//
//	app.Page("/users/{id}", func(c *uidom.Context) {
//		id := c.GetPathParam("id")
//		...
//	})
func (c *Context) GetPathParam(param string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.routeParams[param]
}

// Session returns the browser session of the request that opened or last
// acted on this context.
func (c *Context) Session() *Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return newSession(c.reqCtx, c.app.sessionManager)
}

func newContext(id string, route string, a *App) *Context {
	if a == nil {
		panic("uidom: create context failed: app is nil")
	}
	return &Context{
		id:                id,
		route:             route,
		routeParams:       make(map[string]string),
		app:               a,
		componentRegistry: make(map[string]*Context),
		actionRegistry:    make(map[string]actionEntry),
		signals:           new(sync.Map),
		patchChan:         make(chan patch, 8),
		ctxDisposedChan:   make(chan struct{}),
		actionLimiter:     a.actionRateLimit.bucket(),
		createdAt:         time.Now(),
	}
}
