// Package web ships the browser client.
package web

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
)

//go:embed static
var content embed.FS

// Assets returns the UI file tree. A non-empty dir serves files from disk,
// which is handy while editing the UI; otherwise the embedded copy is used.
func Assets(dir string) (fs.FS, error) {
	if dir != "" {
		info, err := os.Stat(dir)
		if err != nil {
			return nil, fmt.Errorf("web: static dir: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("web: static dir %s is not a directory", dir)
		}
		return os.DirFS(dir), nil
	}
	return fs.Sub(content, "static")
}
