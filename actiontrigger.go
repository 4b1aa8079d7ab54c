package uidom

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ryanhamamura/uidom/dom"
	"github.com/ryanhamamura/uidom/h"
)

// ActionTrigger fires a registered action from the browser.
type ActionTrigger struct {
	id string
}

// ActionTriggerOption adjusts the expression a trigger renders.
type ActionTriggerOption interface {
	apply(*triggerOpts)
}

type triggerOpts struct {
	signals        []string
	window         bool
	preventDefault bool
}

type triggerOptFunc func(*triggerOpts)

func (f triggerOptFunc) apply(o *triggerOpts) { f(o) }

// WithWindow listens on the window instead of the element.
func WithWindow() ActionTriggerOption {
	return triggerOptFunc(func(o *triggerOpts) { o.window = true })
}

// WithPreventDefault cancels the browser's default handling of the event.
func WithPreventDefault() ActionTriggerOption {
	return triggerOptFunc(func(o *triggerOpts) { o.preventDefault = true })
}

// WithSignal sets sig to the string value before the action fires.
func WithSignal(sig *Signal, value string) ActionTriggerOption {
	return withSignalExpr(sig, "'"+strings.ReplaceAll(value, "'", `\'`)+"'")
}

// WithSignalInt sets sig to the int value before the action fires.
func WithSignalInt(sig *Signal, value int) ActionTriggerOption {
	return withSignalExpr(sig, strconv.Itoa(value))
}

func withSignalExpr(sig *Signal, expr string) ActionTriggerOption {
	return triggerOptFunc(func(o *triggerOpts) {
		o.signals = append(o.signals, fmt.Sprintf("%s=%s", sig.Ref(), expr))
	})
}

func applyOptions(options ...ActionTriggerOption) triggerOpts {
	var opts triggerOpts
	for _, opt := range options {
		if opt != nil {
			opt.apply(&opts)
		}
	}
	return opts
}

// expr is the Datastar expression firing the action id.
func (o triggerOpts) expr(id string) string {
	parts := make([]string, 0, len(o.signals)+2)
	if o.preventDefault {
		parts = append(parts, "evt.preventDefault()")
	}
	parts = append(parts, o.signals...)
	parts = append(parts, fmt.Sprintf("@get('/_action/%s')", id))
	return strings.Join(parts, ";")
}

// OnClick fires the action on click.
func (a *ActionTrigger) OnClick(options ...ActionTriggerOption) dom.Attr {
	opts := applyOptions(options...)
	return h.Data("on:click", opts.expr(a.id))
}

// OnChange fires the action when an input changes, debounced by 200ms.
func (a *ActionTrigger) OnChange(options ...ActionTriggerOption) dom.Attr {
	opts := applyOptions(options...)
	return h.Data("on:change__debounce.200ms", opts.expr(a.id))
}

// OnSubmit fires the action when a form is submitted, without reloading.
func (a *ActionTrigger) OnSubmit(options ...ActionTriggerOption) dom.Attr {
	opts := applyOptions(append(options, WithPreventDefault())...)
	return h.Data("on:submit", opts.expr(a.id))
}

// OnKeyDown fires the action on key, or on every key when key is "".
// See https://developer.mozilla.org/en-US/docs/Web/API/KeyboardEvent/key.
func (a *ActionTrigger) OnKeyDown(key string, options ...ActionTriggerOption) dom.Attr {
	opts := applyOptions(options...)
	var condition string
	if key != "" {
		condition = fmt.Sprintf("evt.key==='%s' && ", key)
	}
	name := "on:keydown"
	if opts.window {
		name = "on:keydown__window"
	}
	return h.Data(name, condition+"("+opts.expr(a.id)+")")
}

// KeyBinding maps a key to an action for OnKeyDownMap.
type KeyBinding struct {
	Key     string
	Action  *ActionTrigger
	Options []ActionTriggerOption
}

func KeyBind(key string, action *ActionTrigger, options ...ActionTriggerOption) KeyBinding {
	return KeyBinding{Key: key, Action: action, Options: options}
}

// OnKeyDownMap folds several key bindings into one window keydown
// attribute, since an element holds one attribute per name. It returns nil
// without bindings.
func OnKeyDownMap(bindings ...KeyBinding) any {
	if len(bindings) == 0 {
		return nil
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		opts := applyOptions(b.Options...)
		parts = append(parts, fmt.Sprintf("evt.key==='%s' ? (%s)", b.Key, opts.expr(b.Action.id)))
	}
	return h.Data("on:keydown__window", strings.Join(parts, " : ")+" : void 0")
}
