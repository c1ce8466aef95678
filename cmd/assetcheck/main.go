package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"time"

	"github.com/milk9111/monkeygame/assets"
	"github.com/milk9111/monkeygame/manifest"
	"github.com/milk9111/monkeygame/render"
)

func main() {
	assetsName := flag.String("assets", "assets.yaml", "asset manifest in manifest/")
	assetsDir := flag.String("assets-dir", "assets", "directory searched for images before the embedded ones")
	timeout := flag.Duration("timeout", 30*time.Second, "give up on loads that have not settled after this long")
	flag.Parse()

	spec, err := manifest.LoadAssetsSpec(*assetsName)
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	dec := render.MuxDecoder{
		Local:  render.NewFSDecoder(os.DirFS(*assetsDir), assets.FS()),
		Remote: &render.HTTPDecoder{},
	}
	if err := check(ctx, spec, dec, os.Stdout); err != nil {
		log.Printf("assetcheck: %v", err)
		cancel()
		os.Exit(1)
	}
}

// check loads every image in spec and prints one line per image.
func check(ctx context.Context, spec *manifest.AssetsSpec, dec render.Decoder[image.Image], out io.Writer) error {
	l := render.NewLoader(dec)
	pending := make([]*render.Pending[image.Image], 0, len(spec.Images))
	for _, img := range spec.Images {
		pending = append(pending, l.Load(ctx, img.Name, img.Path))
	}

	waitErr := l.WaitAll(ctx)

	failed := 0
	for _, p := range pending {
		img, err := p.Wait(ctx)
		if err != nil {
			failed++
			fmt.Fprintf(out, "FAIL %-16s %v\n", p.Name(), err)
			continue
		}
		b := img.Bounds()
		fmt.Fprintf(out, "ok   %-16s %s %dx%d\n", p.Name(), p.Path(), b.Dx(), b.Dy())
	}

	if waitErr != nil {
		return fmt.Errorf("%d of %d images failed: %w", failed, len(pending), waitErr)
	}
	return nil
}
