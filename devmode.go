package uidom

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// devModeFile lists the open contexts so a restarted dev server can rebuild
// them when the browser reconnects.
var devModeFile = filepath.Join(".uidom", "devmode", "ctx.json")

var devModeMu sync.Mutex

type persistedCtx struct {
	Route string `json:"route"`
	CSRF  string `json:"csrf"`
}

func readPersisted() (map[string]persistedCtx, error) {
	reg := make(map[string]persistedCtx)
	b, err := os.ReadFile(devModeFile)
	if errors.Is(err, fs.ErrNotExist) {
		return reg, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(b, &reg); err != nil {
		return nil, err
	}
	return reg, nil
}

func writePersisted(reg map[string]persistedCtx) error {
	if err := os.MkdirAll(filepath.Dir(devModeFile), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(devModeFile, b, 0o644)
}

func (a *App) devModePersist(c *Context) {
	devModeMu.Lock()
	defer devModeMu.Unlock()
	reg, err := readPersisted()
	if err != nil {
		a.logWarn(c, "devmode ignoring unreadable ctx file: %v", err)
		reg = make(map[string]persistedCtx)
	}
	reg[c.id] = persistedCtx{Route: c.route, CSRF: c.csrfToken}
	if err := writePersisted(reg); err != nil {
		a.logErr(c, "devmode failed to persist ctx: %v", err)
		return
	}
	a.logDebug(c, "devmode persisted ctx to file")
}

func (a *App) devModeRemovePersisted(c *Context) {
	devModeMu.Lock()
	defer devModeMu.Unlock()
	reg, err := readPersisted()
	if err != nil {
		a.logWarn(c, "devmode failed to remove persisted ctx: %v", err)
		return
	}
	if _, ok := reg[c.id]; !ok {
		return
	}
	delete(reg, c.id)
	if err := writePersisted(reg); err != nil {
		a.logErr(c, "devmode failed to remove persisted ctx: %v", err)
		return
	}
	a.logDebug(c, "devmode removed persisted ctx from file")
}

// devModeRestore rebuilds context cID from the file by running its page's
// init again. Unknown ids are ignored.
func (a *App) devModeRestore(cID string) {
	devModeMu.Lock()
	reg, err := readPersisted()
	devModeMu.Unlock()
	if err != nil {
		a.logWarn(nil, "devmode could not restore ctx from file: %v", err)
		return
	}
	p, ok := reg[cID]
	if !ok {
		return
	}
	init, ok := a.devModePageInitFnMap[p.Route]
	if !ok {
		a.logWarn(nil, "devmode could not restore ctx: page init fn for route '%s' not found", p.Route)
		return
	}
	c := newContext(cID, p.Route, a)
	c.csrfToken = p.CSRF
	init(c)
	a.registerCtx(c)
	a.logDebug(c, "devmode restored ctx")
}
