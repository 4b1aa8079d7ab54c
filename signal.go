package uidom

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ryanhamamura/uidom/dom"
	"github.com/ryanhamamura/uidom/h"
)

// Signal is a value that lives in the browser. The server sees the
// browser's value right before each action runs and pushes its own changes
// with Sync or SyncSignals.
type Signal struct {
	id      string
	val     any
	changed bool
	err     error
}

func (s *Signal) ID() string {
	return s.id
}

// Err reports a signal that could not be created.
func (s *Signal) Err() error {
	return s.err
}

// Bind two-way binds the signal to an input:
//
//	h.Input(h.Type("number"), sig.Bind())
func (s *Signal) Bind() dom.Attr {
	return h.Data("bind", s.id)
}

// Text is a span showing the signal's value.
func (s *Signal) Text() *dom.Node {
	return h.Span(h.Data("text", "$"+s.id))
}

// Ref is the signal as a Datastar expression, for use in other data-*
// attributes.
func (s *Signal) Ref() string {
	return "$" + s.id
}

// SetValue changes the value and marks it for the next sync.
func (s *Signal) SetValue(v any) {
	s.val = v
	s.changed = true
	s.err = nil
}

func (s *Signal) String() string {
	return fmt.Sprintf("%v", s.val)
}

// Bool accepts true, 1, yes and on, in any case.
func (s *Signal) Bool() bool {
	switch strings.ToLower(s.String()) {
	case "true", "1", "yes", "on":
		return true
	}
	return false
}

// Int returns 0 when the value is not an integer.
func (s *Signal) Int() int {
	n, _ := strconv.Atoi(s.String())
	return n
}

func (s *Signal) Int64() int64 {
	n, _ := strconv.ParseInt(s.String(), 10, 64)
	return n
}

func (s *Signal) Float() float64 {
	n, _ := strconv.ParseFloat(s.String(), 64)
	return n
}

func (s *Signal) Bytes() []byte {
	return []byte(s.String())
}
