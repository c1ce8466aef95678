package render

import (
	"sort"
	"sync"
)

// registry stores decoded images by name. Entries are never removed.
type registry[B any] struct {
	mu     sync.RWMutex
	images map[string]B
}

func newRegistry[B any]() *registry[B] {
	return &registry[B]{images: make(map[string]B)}
}

// register stores an image by name.
func (r *registry[B]) register(name string, img B) {
	if name == "" {
		return
	}
	r.mu.Lock()
	r.images[name] = img
	r.mu.Unlock()
}

// get returns a registered image by name.
func (r *registry[B]) get(name string) (B, bool) {
	if name == "" {
		var zero B
		return zero, false
	}
	r.mu.RLock()
	img, ok := r.images[name]
	r.mu.RUnlock()
	return img, ok
}

func (r *registry[B]) len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.images)
}

func (r *registry[B]) names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.images))
	for name := range r.images {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}
