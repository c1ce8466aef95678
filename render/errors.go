package render

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyName is returned for load requests without an asset name.
	ErrEmptyName = errors.New("render: empty image name")
	// ErrNotFound is returned when no source holds the requested path.
	ErrNotFound = errors.New("render: image not found")
)

// LoadError reports a failed decode of one named asset.
type LoadError struct {
	Name string
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("render: load %s (%s): %v", e.Name, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
