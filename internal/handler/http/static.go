package http

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
)

// serveStatic serves a file from the public assets directory. The request
// path is cleaned before joining so ".." segments cannot escape the
// directory. Directories and missing files both answer 404; listing is never
// offered.
func (h *Handler) serveStatic(w http.ResponseWriter, r *http.Request, assetPath string) {
	cleaned := path.Clean("/" + assetPath)
	fullPath := filepath.Join(h.publicDir, filepath.FromSlash(cleaned))

	info, err := os.Stat(fullPath)
	if err != nil || info.IsDir() {
		notFound(w)
		return
	}

	http.ServeFile(w, r, fullPath)
}
