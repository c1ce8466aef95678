package manifest

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Dir is the on-disk manifest directory. Files found there override the
// embedded copies.
var Dir = "manifest"

//go:embed *.yaml
var specFS embed.FS

//go:embed scripts/*.tengo
var scriptsFS embed.FS

// Load reads a manifest file, preferring the on-disk copy.
func Load(name string) ([]byte, error) {
	clean := cleanSpecPath(name)
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return specFS.ReadFile(clean)
}

// LoadScript reads a scene script, preferring the on-disk copy.
func LoadScript(name string) ([]byte, error) {
	clean := cleanScriptPath(name)
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return scriptsFS.ReadFile(clean)
}

// ModTime returns the modification time of the on-disk copy of name.
func ModTime(name string) (time.Time, bool) {
	return statTime(diskPath(cleanSpecPath(name)))
}

// ScriptModTime returns the modification time of the on-disk copy of the
// named scene script.
func ScriptModTime(name string) (time.Time, bool) {
	return statTime(diskPath(cleanScriptPath(name)))
}

func statTime(p string) (time.Time, bool) {
	info, err := os.Stat(p)
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

// Stamps remembers the last modification time seen per file.
type Stamps struct {
	seen map[string]time.Time
}

// Changed reports whether mt differs from the time last recorded for key and
// records it. A missing on-disk copy (ok false) always counts as a change.
func (s *Stamps) Changed(key string, mt time.Time, ok bool) bool {
	if !ok {
		delete(s.seen, key)
		return true
	}
	if s.seen == nil {
		s.seen = make(map[string]time.Time)
	}
	if prev, found := s.seen[key]; found && prev.Equal(mt) {
		return false
	}
	s.seen[key] = mt
	return true
}

func cleanSpecPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "manifest/"); ok {
		return after
	}
	return s
}

func cleanScriptPath(path string) string {
	if path == "" {
		return ""
	}

	s := filepath.ToSlash(path)

	if after, ok := strings.CutPrefix(s, "manifest/scripts/"); ok {
		s = after
	}

	if after, ok := strings.CutPrefix(s, "manifest/"); ok {
		s = after
	}

	if after, ok := strings.CutPrefix(s, "scripts/"); ok {
		s = after
	}

	return fmt.Sprintf("scripts/%s", s)
}

func diskPath(clean string) string {
	return filepath.Join(Dir, filepath.FromSlash(clean))
}
