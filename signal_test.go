package uidom

import (
	"testing"

	"github.com/ryanhamamura/uidom/dom"
	"github.com/ryanhamamura/uidom/h"
	"github.com/stretchr/testify/assert"
)

func TestSignalReturnAsString(t *testing.T) {
	testcases := []struct {
		desc     string
		given    any
		expected string
	}{
		{"string", "test", "test"},
		{"other string", "another", "another"},
		{"int", 1, "1"},
		{"negative int", -99, "-99"},
		{"float", 1.1, "1.1"},
		{"negative float", -34.345, "-34.345"},
		{"positive bool", true, "true"},
		{"negative bool", false, "false"},
	}

	for _, testcase := range testcases {
		t.Run(testcase.desc, func(t *testing.T) {
			t.Parallel()
			var sig *Signal
			a := New()
			a.Page("/", func(c *Context) {
				sig = c.Signal(testcase.given)
				c.View(func() dom.Noder { return h.Div() })
			})
			assert.Equal(t, testcase.expected, sig.String())
		})
	}
}

func TestSignalReturnAsStringComplexTypes(t *testing.T) {
	testcases := []struct {
		desc     string
		given    any
		expected string
	}{
		{"string slice", []string{"test"}, `["test"]`},
		{"int slice", []int{1, 2}, "[1, 2]"},
		{"struct1", struct{ Val string }{"test"}, `{"Val": "test"}`},
		{"struct2", struct {
			Num        int
			IsPositive bool
		}{1, true}, `{"Num": 1, "IsPositive": true}`},
	}

	for _, testcase := range testcases {
		t.Run(testcase.desc, func(t *testing.T) {
			t.Parallel()
			c := newContext("sig-ctx", "/", New())
			sig := c.Signal(testcase.given)
			assert.JSONEq(t, testcase.expected, sig.String())
		})
	}
}

func TestSignalConversions(t *testing.T) {
	sig := &Signal{id: "s"}

	sig.SetValue("42")
	assert.Equal(t, 42, sig.Int())
	assert.Equal(t, int64(42), sig.Int64())
	assert.InDelta(t, 42.0, sig.Float(), 0.0001)
	assert.Equal(t, []byte("42"), sig.Bytes())
	assert.False(t, sig.Bool())

	for _, v := range []any{"true", "ON", "yes", 1, true} {
		sig.SetValue(v)
		assert.True(t, sig.Bool(), "%v", v)
	}

	sig.SetValue("x")
	assert.Zero(t, sig.Int())
}

func TestSignalNilValue(t *testing.T) {
	c := newContext("nil-sig", "/", New())
	sig := c.Signal(nil)
	assert.Error(t, sig.Err())
	assert.Empty(t, c.prepareSignalsForPatch())
}

func TestSignalMarkup(t *testing.T) {
	sig := &Signal{id: "name"}
	assert.Equal(t, "$name", sig.Ref())

	v, ok := h.Input(sig.Bind()).Attr("data-bind")
	assert.True(t, ok)
	assert.Equal(t, "name", v)

	v, ok = sig.Text().Attr("data-text")
	assert.True(t, ok)
	assert.Equal(t, "$name", v)
}

func TestInjectSignals(t *testing.T) {
	c := newContext("inject", "/", New())
	sig := c.Signal("a")
	assert.Contains(t, c.prepareSignalsForPatch(), sig.ID())

	c.injectSignals(map[string]any{sig.ID(): "b", "extra": 3})
	assert.Equal(t, "b", sig.String())
	assert.Empty(t, c.prepareSignalsForPatch())

	sig.SetValue("c")
	assert.Equal(t, map[string]any{sig.ID(): "c"}, c.prepareSignalsForPatch())
}
