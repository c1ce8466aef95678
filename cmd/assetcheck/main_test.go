package main

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/milk9111/monkeygame/assets"
	"github.com/milk9111/monkeygame/manifest"
	"github.com/milk9111/monkeygame/render"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func TestCheck(t *testing.T) {
	fsys := fstest.MapFS{
		"a.png": {Data: pngBytes(t, 3, 2)},
		"b.png": {Data: pngBytes(t, 1, 1)},
	}

	cases := []struct {
		name     string
		images   []manifest.ImageSpec
		wantErr  bool
		wantRows []string
	}{
		{
			name:     "all_ok",
			images:   []manifest.ImageSpec{{Name: "a", Path: "a.png"}, {Name: "b", Path: "b.png"}},
			wantRows: []string{"ok   a", "a.png 3x2", "ok   b"},
		},
		{
			name:     "one_missing",
			images:   []manifest.ImageSpec{{Name: "a", Path: "a.png"}, {Name: "gone", Path: "gone.png"}},
			wantErr:  true,
			wantRows: []string{"ok   a", "FAIL gone"},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			var out bytes.Buffer
			err := check(ctx, &manifest.AssetsSpec{Images: c.images}, render.NewFSDecoder(fsys), &out)
			if (err != nil) != c.wantErr {
				t.Fatalf("check() = %v, wantErr %v", err, c.wantErr)
			}
			if err != nil && !errors.Is(err, render.ErrNotFound) {
				t.Fatalf("expected ErrNotFound in %v", err)
			}
			for _, row := range c.wantRows {
				if !strings.Contains(out.String(), row) {
					t.Fatalf("output missing %q:\n%s", row, out.String())
				}
			}
		})
	}
}

func TestCheckBundledManifest(t *testing.T) {
	prev := manifest.Dir
	manifest.Dir = t.TempDir()
	defer func() { manifest.Dir = prev }()

	spec, err := manifest.LoadAssetsSpec("assets.yaml")
	if err != nil {
		t.Fatalf("LoadAssetsSpec: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var out bytes.Buffer
	if err := check(ctx, spec, render.NewFSDecoder(assets.FS()), &out); err != nil {
		t.Fatalf("bundled assets should all load: %v\n%s", err, out.String())
	}
}
