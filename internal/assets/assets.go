// Package assets embeds the stylesheet and client script served next to a
// rendered accordion.
package assets

import (
	"embed"
	"fmt"
	"hash/fnv"
	"path"
	"path/filepath"
	"strings"
)

const (
	Stylesheet = "accordion.css"
	Script     = "accordion.js"
)

//go:embed static
var static embed.FS

var contentTypes = map[string]string{
	".css":  "text/css; charset=utf-8",
	".js":   "application/javascript",
	".json": "application/json",
	".html": "text/html; charset=utf-8",
	".svg":  "image/svg+xml",
	".png":  "image/png",
	".ico":  "image/x-icon",
}

func GetContentType(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if ct, ok := contentTypes[ext]; ok {
		return ct
	}
	return "application/octet-stream"
}

func Read(name string) ([]byte, error) {
	if name == "" || strings.Contains(name, "..") || strings.Contains(name, "/") {
		return nil, fmt.Errorf("invalid asset name %q", name)
	}
	return static.ReadFile(path.Join("static", name))
}

// MustRead panics on names that are not embedded.
func MustRead(name string) []byte {
	data, err := Read(name)
	if err != nil {
		panic(fmt.Sprintf("assets: %v", err))
	}
	return data
}

// Fingerprint is the FNV-1a hash of an asset, used as its cache-busting
// version.
func Fingerprint(content []byte) string {
	h := fnv.New32a()
	_, _ = h.Write(content)
	return fmt.Sprintf("%08x", h.Sum32())
}

// Href returns the URL of an embedded asset under prefix with a content
// hash for cache busting.
func Href(prefix, name string) string {
	data, err := Read(name)
	if err != nil {
		return strings.TrimSuffix(prefix, "/") + "/" + name
	}
	return strings.TrimSuffix(prefix, "/") + "/" + name + "?v=" + Fingerprint(data)
}
