// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
)

// SPA serves a single-page application bundle: existing files are served
// directly, every other path gets index.html so client-side routing works.
type SPA struct {
	dir string
}

func NewSPA(dir string) *SPA {
	return &SPA{dir: dir}
}

func (s *SPA) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Clean the path before joining so ".." cannot escape the bundle dir
	p := path.Clean("/" + r.URL.Path)
	file := filepath.Join(s.dir, filepath.FromSlash(p))

	if info, err := os.Stat(file); err == nil && !info.IsDir() {
		http.ServeFile(w, r, file)
		return
	}

	http.ServeFile(w, r, filepath.Join(s.dir, "index.html"))
}
