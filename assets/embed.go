package assets

import (
	"embed"
	"io/fs"
	"path/filepath"
	"strings"
)

//go:embed *.png
var assetsFS embed.FS

// FS returns the embedded image assets rooted at the assets directory.
func FS() fs.FS {
	return assetsFS
}

// CleanPath turns a manifest path into a slash-separated path relative to the
// assets directory. Absolute paths are cut after their last "/assets/" segment.
func CleanPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if filepath.IsAbs(path) || strings.HasPrefix(s, "/") {
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s = strings.TrimPrefix(s, "./")
	if after, ok := strings.CutPrefix(s, "assets/"); ok {
		return after
	}
	return s
}
