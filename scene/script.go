package scene

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/monkeygame/manifest"
)

// Sprite is one named image to draw at a logical position. A zero W or H
// draws the image at its natural size.
type Sprite struct {
	Name string
	X, Y float64
	W, H float64
}

// Frame is the input a scene script sees each tick. Pointer coordinates are
// logical.
type Frame struct {
	Tick     int
	PointerX float64
	PointerY float64
	Pressed  bool
	Width    int
	Height   int
}

// Script is a compiled tengo scene. Each Run sets tick, pointer_x, pointer_y,
// pressed, width and height, and reads back the sprites list. The state map
// persists between runs.
type Script struct {
	name     string
	compiled *tengo.Compiled
	state    *tengo.Map
}

// Load compiles the named script from the manifest scripts.
func Load(name string) (*Script, error) {
	src, err := manifest.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("scene: load %s: %w", name, err)
	}
	s, err := Compile(name, src)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Compile compiles script source. name is only used in errors.
func Compile(name string, src []byte) (*Script, error) {
	script := tengo.NewScript(src)
	_ = script.Add("tick", 0)
	_ = script.Add("pointer_x", 0.0)
	_ = script.Add("pointer_y", 0.0)
	_ = script.Add("pressed", false)
	_ = script.Add("width", 0)
	_ = script.Add("height", 0)
	_ = script.Add("state", map[string]any{})

	script.SetImports(stdlib.GetModuleMap("math", "rand", "text", "fmt"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("scene: compile %s: %w", name, err)
	}
	return &Script{
		name:     name,
		compiled: compiled,
		state:    &tengo.Map{Value: map[string]tengo.Object{}},
	}, nil
}

// Name returns the script name it was compiled under.
func (s *Script) Name() string { return s.name }

// Run executes the script for one frame and returns the sprites it produced.
func (s *Script) Run(f Frame) ([]Sprite, error) {
	if s == nil || s.compiled == nil {
		return nil, fmt.Errorf("scene: nil script")
	}
	vars := map[string]any{
		"tick":      f.Tick,
		"pointer_x": f.PointerX,
		"pointer_y": f.PointerY,
		"pressed":   f.Pressed,
		"width":     f.Width,
		"height":    f.Height,
		"state":     s.state,
	}
	for k, v := range vars {
		if err := s.compiled.Set(k, v); err != nil {
			return nil, fmt.Errorf("scene: %s: set %s: %w", s.name, k, err)
		}
	}
	if err := s.compiled.Run(); err != nil {
		return nil, fmt.Errorf("scene: %s: %w", s.name, err)
	}
	if !s.compiled.IsDefined("sprites") {
		return nil, nil
	}
	return parseSprites(s.compiled.Get("sprites").Array())
}

func parseSprites(items []any) ([]Sprite, error) {
	out := make([]Sprite, 0, len(items))
	for i, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("scene: sprite %d is %T, not a map", i, item)
		}
		name, _ := m["name"].(string)
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("scene: sprite %d has no name", i)
		}
		out = append(out, Sprite{
			Name: name,
			X:    number(m["x"]),
			Y:    number(m["y"]),
			W:    number(m["w"]),
			H:    number(m["h"]),
		})
	}
	return out, nil
}

func number(v any) float64 {
	switch n := v.(type) {
	case int64:
		return float64(n)
	case int:
		return float64(n)
	case float64:
		return n
	}
	return 0
}
