package manifest

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/mazznoer/csscolorparser"
	"gopkg.in/yaml.v3"
)

const (
	DefaultLogicalWidth  = 600
	DefaultLogicalHeight = 400
)

// GameSpec configures the window and the logical screen.
type GameSpec struct {
	Title         string `yaml:"title"`
	LogicalWidth  int    `yaml:"logical_width"`
	LogicalHeight int    `yaml:"logical_height"`
	WindowScale   int    `yaml:"window_scale"`
	Smoothing     bool   `yaml:"smoothing"`
	Background    string `yaml:"background"`
	SceneScript   string `yaml:"scene_script"`
}

// ImageSpec names one image resource.
type ImageSpec struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// AssetsSpec lists the images a game preloads at boot.
type AssetsSpec struct {
	Images []ImageSpec `yaml:"images"`
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("manifest: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("manifest: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LoadGameSpec loads a game spec, fills defaults and validates it.
func LoadGameSpec(filename string) (*GameSpec, error) {
	spec, err := LoadSpec[GameSpec](filename)
	if err != nil {
		return nil, err
	}
	spec.applyDefaults()
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("manifest: %s: %w", filename, err)
	}
	return &spec, nil
}

func (s *GameSpec) applyDefaults() {
	if s.LogicalWidth == 0 && s.LogicalHeight == 0 {
		s.LogicalWidth = DefaultLogicalWidth
		s.LogicalHeight = DefaultLogicalHeight
	}
	if s.WindowScale == 0 {
		s.WindowScale = 1
	}
	if s.Title == "" {
		s.Title = "monkeygame"
	}
}

func (s *GameSpec) Validate() error {
	if s.LogicalWidth <= 0 || s.LogicalHeight <= 0 {
		return fmt.Errorf("logical size must be positive, got %dx%d", s.LogicalWidth, s.LogicalHeight)
	}
	if s.WindowScale < 1 {
		return fmt.Errorf("window scale must be at least 1, got %d", s.WindowScale)
	}
	if _, err := s.BackgroundColor(); err != nil {
		return err
	}
	return nil
}

// BackgroundColor parses Background as a CSS color. An empty value is black.
func (s *GameSpec) BackgroundColor() (color.Color, error) {
	if strings.TrimSpace(s.Background) == "" {
		return color.Black, nil
	}
	c, err := csscolorparser.Parse(s.Background)
	if err != nil {
		return nil, fmt.Errorf("background %q: %w", s.Background, err)
	}
	r, g, b, a := c.RGBA255()
	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}

// LoadAssetsSpec loads an asset manifest and validates it.
func LoadAssetsSpec(filename string) (*AssetsSpec, error) {
	spec, err := LoadSpec[AssetsSpec](filename)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("manifest: %s: %w", filename, err)
	}
	return &spec, nil
}

var ErrDuplicateImage = errors.New("duplicate image name")

// Validate rejects images without a name or path and names used twice.
func (s *AssetsSpec) Validate() error {
	seen := make(map[string]bool, len(s.Images))
	for i, img := range s.Images {
		name := strings.TrimSpace(img.Name)
		if name == "" {
			return fmt.Errorf("image %d: empty name", i)
		}
		if strings.TrimSpace(img.Path) == "" {
			return fmt.Errorf("image %s: empty path", name)
		}
		if seen[name] {
			return fmt.Errorf("image %s: %w", name, ErrDuplicateImage)
		}
		seen[name] = true
	}
	return nil
}

// ByPath returns the images whose path ends with the given file path.
func (s *AssetsSpec) ByPath(path string) []ImageSpec {
	var out []ImageSpec
	p := strings.TrimPrefix(strings.ReplaceAll(path, "\\", "/"), "./")
	for _, img := range s.Images {
		ip := strings.TrimPrefix(img.Path, "./")
		if ip == p || strings.HasSuffix(p, "/"+ip) {
			out = append(out, img)
		}
	}
	return out
}
