// Package site serves the fighter portrait images.
package site

import (
	"io/fs"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// DefaultPrefix is where portraits are mounted.
const DefaultPrefix = "/images/"

// Register mounts images under prefix on r. A nil images FS registers
// nothing.
func Register(r chi.Router, prefix string, images fs.FS) {
	if r == nil {
		panic("router is nil")
	}
	if images == nil {
		return
	}
	if prefix == "" {
		prefix = DefaultPrefix
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	files := http.StripPrefix(prefix, http.FileServer(http.FS(images)))
	r.Handle(prefix+"*", noListing(files))
}

// noListing hides directory indexes.
func noListing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
