package http

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/3-lines-studio/accordion/internal/assets"
)

const assetPrefix = "/assets/"

// devAssetPath is where the embedded assets live, relative to the module
// root.
var devAssetPath = filepath.Join("internal", "assets", "static")

// AssetHandler serves the embedded assets. With a dir set, files there
// take precedence so edits show up without a rebuild.
type AssetHandler struct {
	dir string
}

func NewAssetHandler(dir string) http.Handler {
	return &AssetHandler{dir: dir}
}

func (h *AssetHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	name := req.PathValue("name")
	if name == "" {
		http.NotFound(w, req)
		return
	}

	data, err := h.read(name)
	if err != nil {
		http.NotFound(w, req)
		return
	}

	w.Header().Set("Content-Type", assets.GetContentType(name))
	if h.dir == "" {
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	}
	_, _ = w.Write(data)
}

func (h *AssetHandler) read(name string) ([]byte, error) {
	embedded, err := assets.Read(name)
	if err != nil || h.dir == "" {
		return embedded, err
	}
	data, err := os.ReadFile(filepath.Join(h.dir, name))
	if err != nil {
		return embedded, nil
	}
	return data, nil
}

// FindDevAssetDir walks up from startDir to the module root holding the
// asset sources. It returns "" when none is found.
func FindDevAssetDir(startDir string) string {
	dir := startDir
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			candidate := filepath.Join(dir, devAssetPath)
			if info, err := os.Stat(candidate); err == nil && info.IsDir() {
				return candidate
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
