package uidom

import (
	"io"
	"io/fs"
	"mime"
	"net/http"
	"os"
	"strings"
	"sync"
)

// Static serves the files under dir at prefix. Directories are not listed.
func (a *App) Static(prefix, dir string) {
	a.StaticFS(prefix, os.DirFS(dir))
}

// StaticFS serves fsys at prefix, e.g. an embed.FS. Directories are not
// listed.
func (a *App) StaticFS(prefix string, fsys fs.FS) {
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	files := http.StripPrefix(prefix, http.FileServerFS(fsys))
	a.mux.Handle("GET "+prefix, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	}))
}

// Asset is anything that renders to a file: a *dom.Node or a component.
type Asset interface {
	Render(w io.Writer) error
	Extension() string
}

// Asset serves the rendering of asset at route. The content type follows
// the asset's extension, so a component saved as .js is served as
// JavaScript.
func (a *App) Asset(route string, asset Asset) {
	contentType := mime.TypeByExtension(asset.Extension())
	if contentType == "" {
		contentType = "text/plain; charset=utf-8"
	}
	// components refresh while rendering
	var mu sync.Mutex
	a.mux.HandleFunc("GET "+route, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		w.Header().Set("Content-Type", contentType)
		if err := asset.Render(w); err != nil {
			a.logErr(nil, "asset %s failed: %v", route, err)
		}
	})
}
