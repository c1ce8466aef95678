package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"net/http"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/monkeygame/assets"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Decoder turns a resource path into a decoded bitmap handle.
type Decoder[B any] interface {
	Decode(ctx context.Context, path string) (B, error)
}

// DecoderFunc adapts a function to a Decoder.
type DecoderFunc[B any] func(ctx context.Context, path string) (B, error)

func (f DecoderFunc[B]) Decode(ctx context.Context, path string) (B, error) {
	return f(ctx, path)
}

// FSDecoder decodes images from a list of filesystems, trying each in order.
type FSDecoder struct {
	sources []fs.FS
}

// NewFSDecoder returns a decoder over sources. Earlier sources win, so put an
// on-disk directory before embedded assets to let local edits override them.
func NewFSDecoder(sources ...fs.FS) *FSDecoder {
	return &FSDecoder{sources: sources}
}

func (d *FSDecoder) Decode(ctx context.Context, p string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Manifest paths may be written relative to the repo root or as absolute
	// paths, so the assets-relative form is tried after the path as given.
	var candidates []string
	for _, c := range []string{cleanFSPath(p), cleanFSPath(assets.CleanPath(p))} {
		if fs.ValidPath(c) && c != "." && !slices.Contains(candidates, c) {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("invalid image path %q", p)
	}

	lastErr := ErrNotFound
	for _, clean := range candidates {
		for _, src := range d.sources {
			if src == nil {
				continue
			}
			b, err := fs.ReadFile(src, clean)
			if err != nil {
				if !errors.Is(err, fs.ErrNotExist) {
					lastErr = err
				}
				continue
			}
			img, _, err := image.Decode(bytes.NewReader(b))
			if err != nil {
				return nil, fmt.Errorf("decode %s: %w", clean, err)
			}
			return img, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", candidates[0], lastErr)
}

func cleanFSPath(p string) string {
	s := filepath.ToSlash(p)
	s = strings.TrimLeft(s, "/")
	if s == "" {
		return ""
	}
	return path.Clean(s)
}

// HTTPDecoder fetches and decodes images over HTTP.
type HTTPDecoder struct {
	Client *http.Client
}

func (d *HTTPDecoder) Decode(ctx context.Context, url string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	client := d.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("get %s: %s", url, resp.Status)
	}
	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", url, err)
	}
	return img, nil
}

// MuxDecoder sends http(s) URLs to Remote and everything else to Local.
type MuxDecoder struct {
	Local  Decoder[image.Image]
	Remote Decoder[image.Image]
}

func (m MuxDecoder) Decode(ctx context.Context, p string) (image.Image, error) {
	if IsURL(p) {
		if m.Remote == nil {
			return nil, fmt.Errorf("no remote decoder for %s", p)
		}
		return m.Remote.Decode(ctx, p)
	}
	if m.Local == nil {
		return nil, fmt.Errorf("no local decoder for %s", p)
	}
	return m.Local.Decode(ctx, p)
}

// IsURL reports whether p is an http or https URL.
func IsURL(p string) bool {
	return strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://")
}

// EbitenDecoder uploads images decoded by d as *ebiten.Image.
func EbitenDecoder(d Decoder[image.Image]) Decoder[*ebiten.Image] {
	return DecoderFunc[*ebiten.Image](func(ctx context.Context, p string) (*ebiten.Image, error) {
		img, err := d.Decode(ctx, p)
		if err != nil {
			return nil, err
		}
		return ebiten.NewImageFromImage(img), nil
	})
}
