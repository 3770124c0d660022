package webui

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"path"
)

//go:embed static/*
var content embed.FS

// Handler returns an http.Handler that serves the embedded control panel.
//
// The panel is a single page: any path that does not match an embedded
// asset falls back to index.html so the page survives reloads on
// whatever path the browser happens to be on.
// Panics if the embedded assets cannot be loaded (build error).
func Handler() http.Handler {
	staticFS, err := fs.Sub(content, "static")
	if err != nil {
		panic(fmt.Sprintf("webui: failed to load embedded assets: %v", err))
	}
	fileSystem := http.FS(staticFS)
	fileServer := http.FileServer(fileSystem)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The page polls the API for state, so never let the shell go stale
		w.Header().Set("Cache-Control", "no-cache, must-revalidate")

		upath := path.Clean(r.URL.Path)
		if upath == "." || upath == "/" {
			fileServer.ServeHTTP(w, r)
			return
		}

		f, err := fileSystem.Open(upath[1:])
		if err != nil {
			// Not an asset, serve the page shell
			r.URL.Path = "/"
			fileServer.ServeHTTP(w, r)
			return
		}
		f.Close()

		fileServer.ServeHTTP(w, r)
	})
}
