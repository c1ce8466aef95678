package main

import (
	"context"
	"flag"
	"image"
	"image/color"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/monkeygame/assets"
	"github.com/milk9111/monkeygame/render"
	"github.com/milk9111/monkeygame/viewport"
)

const previewName = "preview"

// previewGame shows one image, or the frames of a sprite sheet, integer-scaled
// and centered in the window.
type previewGame struct {
	images  *render.Loader[*ebiten.Image]
	mapper  *viewport.Mapper
	present *viewport.Presenter
	surface *render.Surface

	frames      []*ebiten.Image
	current     int
	tick        int
	ticksPerFrm int
}

func (g *previewGame) Update() error {
	if len(g.frames) <= 1 {
		return nil
	}
	g.tick++
	if g.tick >= g.ticksPerFrm {
		g.tick = 0
		g.current++
		if g.current >= len(g.frames) {
			g.current = 0
		}
	}
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	g.present.Begin()
	if len(g.frames) > 0 {
		g.surface.DrawImage(g.frames[g.current], 0, 0)
	} else {
		g.images.Draw(g.surface, previewName, 0, 0)
	}
	g.present.Present(screen)
}

func (g *previewGame) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	g.mapper.Recompute(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// splitFrames cuts a sheet into frameW x frameH cells, row by row.
func splitFrames(sheet *ebiten.Image, frameW, frameH, count int) []*ebiten.Image {
	if frameW <= 0 || frameH <= 0 {
		return nil
	}
	cols := sheet.Bounds().Dx() / frameW
	rows := sheet.Bounds().Dy() / frameH
	maxFrames := cols * rows
	if count <= 0 || count > maxFrames {
		count = maxFrames
	}
	frames := make([]*ebiten.Image, count)
	for i := 0; i < count; i++ {
		col := i % cols
		row := i / cols
		r := image.Rect(col*frameW, row*frameH, col*frameW+frameW, row*frameH+frameH)
		frames[i] = sheet.SubImage(r).(*ebiten.Image)
	}
	return frames
}

func main() {
	path := flag.String("image", "monkey.png", "image path or URL")
	assetsDir := flag.String("assets-dir", "assets", "directory searched for images before the embedded ones")
	frameW := flag.Int("fw", 0, "frame width for sprite sheets (0 shows the whole image)")
	frameH := flag.Int("fh", 0, "frame height for sprite sheets")
	count := flag.Int("frames", 0, "number of frames to play (0 plays every cell)")
	fps := flag.Int("fps", 12, "frames per second for sprite sheets")
	smooth := flag.Bool("smooth", false, "use linear filtering")
	flag.Parse()

	images := render.NewLoader(render.EbitenDecoder(render.MuxDecoder{
		Local:  render.NewFSDecoder(os.DirFS(*assetsDir), assets.FS()),
		Remote: &render.HTTPDecoder{},
	}))
	img, err := images.Load(context.Background(), previewName, *path).Wait(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	logicalW, logicalH := img.Bounds().Dx(), img.Bounds().Dy()
	frames := splitFrames(img, *frameW, *frameH, *count)
	if len(frames) > 0 {
		logicalW, logicalH = *frameW, *frameH
	}

	ticks := 1
	if *fps > 0 {
		ticks = max(1, 60 / *fps)
	}

	mapper := viewport.NewMapper(logicalW, logicalH)
	present := viewport.NewPresenter(mapper)
	present.Background = color.RGBA{0x00, 0x00, 0x00, 0xff}
	g := &previewGame{
		images:      images,
		mapper:      mapper,
		present:     present,
		surface:     render.NewSurface(present.Canvas(), *smooth),
		frames:      frames,
		ticksPerFrm: ticks,
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(512, 512)
	ebiten.SetWindowTitle("preview: " + *path)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
