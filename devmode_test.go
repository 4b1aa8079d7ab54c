package uidom

import (
	"os"
	"testing"

	"github.com/ryanhamamura/uidom/dom"
	"github.com/ryanhamamura/uidom/h"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDevModeRestore(t *testing.T) {
	t.Chdir(t.TempDir())

	inits := 0
	a := New()
	a.Config(Options{DevMode: true, LogLevel: LogLevelError})
	a.Page("/", func(c *Context) {
		inits++
		c.View(func() dom.Noder { return h.Div() })
	})
	serve(a, "GET", "/")
	c := onlyCtx(t, a)

	_, err := os.Stat(devModeFile)
	require.NoError(t, err)
	reg, err := readPersisted()
	require.NoError(t, err)
	assert.Equal(t, persistedCtx{Route: "/", CSRF: c.csrfToken}, reg[c.id])

	// a restarted server knows nothing but the file
	b := New()
	b.Config(Options{DevMode: true, LogLevel: LogLevelError})
	b.Page("/", func(c *Context) {
		inits++
		c.View(func() dom.Noder { return h.Div() })
	})
	before := inits
	b.devModeRestore(c.id)

	restored, err := b.getCtx(c.id)
	require.NoError(t, err)
	assert.Equal(t, c.csrfToken, restored.csrfToken)
	assert.Equal(t, before+1, inits)

	b.cleanupCtx(restored)
	reg, err = readPersisted()
	require.NoError(t, err)
	assert.NotContains(t, reg, c.id)
}

func TestDevModeRestoreUnknown(t *testing.T) {
	t.Chdir(t.TempDir())

	a := New()
	a.Config(Options{DevMode: true, LogLevel: LogLevelError})
	a.devModeRestore("missing")

	_, err := a.getCtx("missing")
	assert.Error(t, err)
}
