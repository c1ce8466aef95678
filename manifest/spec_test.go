package manifest

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func useDir(t *testing.T, dir string) {
	t.Helper()
	prev := Dir
	Dir = dir
	t.Cleanup(func() { Dir = prev })
}

func TestEmbeddedSpecs(t *testing.T) {
	useDir(t, t.TempDir())

	game, err := LoadGameSpec("game.yaml")
	if err != nil {
		t.Fatalf("LoadGameSpec: %v", err)
	}
	if game.LogicalWidth != 600 || game.LogicalHeight != 400 {
		t.Fatalf("expected 600x400, got %dx%d", game.LogicalWidth, game.LogicalHeight)
	}
	if game.Smoothing {
		t.Fatalf("expected smoothing off for pixel art")
	}

	assets, err := LoadAssetsSpec("manifest/assets.yaml")
	if err != nil {
		t.Fatalf("LoadAssetsSpec: %v", err)
	}
	if len(assets.Images) != 3 {
		t.Fatalf("expected 3 images, got %d", len(assets.Images))
	}

	if _, err := LoadScript(game.SceneScript); err != nil {
		t.Fatalf("LoadScript(%s): %v", game.SceneScript, err)
	}
}

func TestDiskOverridesEmbedded(t *testing.T) {
	dir := t.TempDir()
	useDir(t, dir)
	data := []byte("title: local\nlogical_width: 320\nlogical_height: 240\n")
	if err := os.WriteFile(filepath.Join(dir, "game.yaml"), data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	game, err := LoadGameSpec("game.yaml")
	if err != nil {
		t.Fatalf("LoadGameSpec: %v", err)
	}
	if game.Title != "local" || game.LogicalWidth != 320 || game.WindowScale != 1 {
		t.Fatalf("expected disk spec with defaults, got %+v", game)
	}
	if _, ok := ModTime("game.yaml"); !ok {
		t.Fatalf("expected a mod time for the disk copy")
	}
	if _, ok := ModTime("assets.yaml"); ok {
		t.Fatalf("expected no mod time for an embedded-only file")
	}
}

func TestScriptModTime(t *testing.T) {
	dir := t.TempDir()
	useDir(t, dir)

	if _, ok := ScriptModTime("scene.tengo"); ok {
		t.Fatalf("expected no mod time before a disk copy exists")
	}
	if err := os.MkdirAll(filepath.Join(dir, "scripts"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "scripts", "scene.tengo"), []byte("sprites := []"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, ok := ScriptModTime("manifest/scripts/scene.tengo"); !ok {
		t.Fatalf("expected a mod time for the disk script")
	}
}

func TestStampsChanged(t *testing.T) {
	t0 := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	t1 := t0.Add(time.Second)

	var s Stamps
	steps := []struct {
		name string
		key  string
		mt   time.Time
		ok   bool
		want bool
	}{
		{"first_seen", "assets.yaml", t0, true, true},
		{"same_time", "assets.yaml", t0, true, false},
		{"other_key", "scene.tengo", t0, true, true},
		{"newer", "assets.yaml", t1, true, true},
		{"newer_again", "assets.yaml", t1, true, false},
		{"removed", "assets.yaml", time.Time{}, false, true},
		{"back_on_disk", "assets.yaml", t1, true, true},
	}

	for _, step := range steps {
		if got := s.Changed(step.key, step.mt, step.ok); got != step.want {
			t.Fatalf("%s: Changed(%s) = %v, want %v", step.name, step.key, got, step.want)
		}
	}
}

func TestGameSpecValidate(t *testing.T) {
	cases := []struct {
		name    string
		spec    GameSpec
		wantErr bool
	}{
		{"ok", GameSpec{LogicalWidth: 600, LogicalHeight: 400, WindowScale: 2}, false},
		{"zero_height", GameSpec{LogicalWidth: 600, WindowScale: 1}, true},
		{"negative_width", GameSpec{LogicalWidth: -1, LogicalHeight: 400, WindowScale: 1}, true},
		{"zero_scale", GameSpec{LogicalWidth: 600, LogicalHeight: 400}, true},
		{"bad_color", GameSpec{LogicalWidth: 600, LogicalHeight: 400, WindowScale: 1, Background: "not-a-color"}, true},
		{"named_color", GameSpec{LogicalWidth: 600, LogicalHeight: 400, WindowScale: 1, Background: "skyblue"}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if err := c.spec.Validate(); (err != nil) != c.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, c.wantErr)
			}
		})
	}
}

func TestBackgroundColor(t *testing.T) {
	s := GameSpec{Background: "#1b1b24"}
	c, err := s.BackgroundColor()
	if err != nil {
		t.Fatalf("BackgroundColor: %v", err)
	}
	if c != (color.NRGBA{R: 0x1b, G: 0x1b, B: 0x24, A: 0xff}) {
		t.Fatalf("unexpected color %v", c)
	}

	s.Background = ""
	if c, _ := s.BackgroundColor(); c != color.Black {
		t.Fatalf("expected black for an empty background, got %v", c)
	}
}

func TestAssetsSpecValidate(t *testing.T) {
	cases := []struct {
		name    string
		images  []ImageSpec
		wantErr error
		invalid bool
	}{
		{"empty", nil, nil, false},
		{"ok", []ImageSpec{{"a", "a.png"}, {"b", "b.png"}}, nil, false},
		{"same_path_twice", []ImageSpec{{"a", "a.png"}, {"b", "a.png"}}, nil, false},
		{"duplicate", []ImageSpec{{"a", "a.png"}, {"a", "b.png"}}, ErrDuplicateImage, true},
		{"no_name", []ImageSpec{{" ", "a.png"}}, nil, true},
		{"no_path", []ImageSpec{{"a", ""}}, nil, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := (&AssetsSpec{Images: c.images}).Validate()
			if (err != nil) != c.invalid {
				t.Fatalf("Validate() = %v, invalid %v", err, c.invalid)
			}
			if c.wantErr != nil && !errors.Is(err, c.wantErr) {
				t.Fatalf("expected %v, got %v", c.wantErr, err)
			}
		})
	}
}

func TestAssetsSpecByPath(t *testing.T) {
	s := &AssetsSpec{Images: []ImageSpec{
		{"monkey", "monkey.png"},
		{"monkey_big", "./monkey.png"},
		{"snow", "fx/snow.png"},
	}}

	cases := []struct {
		path string
		want int
	}{
		{"assets/monkey.png", 2},
		{"/home/dev/game/assets/fx/snow.png", 1},
		{"snow.png", 0},
		{"assets/other.png", 0},
	}
	for _, c := range cases {
		if got := s.ByPath(c.path); len(got) != c.want {
			t.Fatalf("ByPath(%s) matched %d, want %d", c.path, len(got), c.want)
		}
	}
}
