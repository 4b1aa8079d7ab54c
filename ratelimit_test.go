package uidom

import (
	"testing"

	"github.com/ryanhamamura/uidom/dom"
	"github.com/ryanhamamura/uidom/h"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucket(t *testing.T) {
	testcases := []struct {
		desc  string
		cfg   RateLimitConfig
		rate  float64
		burst int
	}{
		{"defaults", RateLimitConfig{}, defaultActionRate, defaultActionBurst},
		{"custom", RateLimitConfig{Rate: 5, Burst: 10}, 5, 10},
		{"default burst", RateLimitConfig{Rate: 5}, 5, defaultActionBurst},
		{"default rate", RateLimitConfig{Burst: 3}, defaultActionRate, 3},
	}
	for _, tc := range testcases {
		t.Run(tc.desc, func(t *testing.T) {
			l := tc.cfg.bucket()
			require.NotNil(t, l)
			assert.InDelta(t, tc.rate, float64(l.Limit()), 0.001)
			assert.Equal(t, tc.burst, l.Burst())
		})
	}
}

func TestBucketDisabled(t *testing.T) {
	l := RateLimitConfig{Rate: -1}.bucket()
	assert.Nil(t, l)
	assert.True(t, allow(l))
}

func TestBucketAllowsBurstThenRejects(t *testing.T) {
	l := RateLimitConfig{Rate: 1, Burst: 3}.bucket()
	for i := range 3 {
		assert.True(t, allow(l), "request %d should be allowed within burst", i)
	}
	assert.False(t, allow(l), "request beyond burst should be rejected")
}

func TestWithRateLimit(t *testing.T) {
	entry := actionEntry{fn: func() {}}
	WithRateLimit(2, 4)(&entry)

	require.NotNil(t, entry.limiter)
	assert.InDelta(t, 2.0, float64(entry.limiter.Limit()), 0.001)
	assert.Equal(t, 4, entry.limiter.Burst())

	WithRateLimitConfig(RateLimitConfig{Rate: -1})(&entry)
	assert.Nil(t, entry.limiter)
}

func TestContextAction_WithRateLimit(t *testing.T) {
	c := newContext("test-rl", "/", New())

	called := false
	c.Action(func() { called = true }, WithRateLimit(1, 2))

	require.Len(t, c.actionRegistry, 1)
	for _, entry := range c.actionRegistry {
		require.NotNil(t, entry.limiter)
		assert.Equal(t, 2, entry.limiter.Burst())
	}
	assert.False(t, called)
}

func TestContextAction_DefaultNoPerActionLimiter(t *testing.T) {
	c := newContext("test-no-rl", "/", New())
	c.Action(func() {})

	for _, entry := range c.actionRegistry {
		assert.Nil(t, entry.limiter, "entry without WithRateLimit should have nil limiter")
	}
}

func TestComponentActionsRegisterOnPage(t *testing.T) {
	page := newContext("page", "/", New())
	page.Component(func(c *Context) {
		c.Action(func() {})
		c.View(func() dom.Noder { return h.Div() })
	})
	assert.Len(t, page.actionRegistry, 1)
}

func TestContextLimiter(t *testing.T) {
	a := New()
	c := newContext("defaults", "/", a)
	require.NotNil(t, c.actionLimiter)
	assert.Equal(t, defaultActionBurst, c.actionLimiter.Burst())

	a.Config(Options{ActionRateLimit: RateLimitConfig{Rate: 50, Burst: 100}})
	c = newContext("custom", "/", a)
	require.NotNil(t, c.actionLimiter)
	assert.InDelta(t, 50.0, float64(c.actionLimiter.Limit()), 0.001)
	assert.Equal(t, 100, c.actionLimiter.Burst())

	a.Config(Options{ActionRateLimit: RateLimitConfig{Rate: -1}})
	c = newContext("disabled", "/", a)
	assert.Nil(t, c.actionLimiter)
}
