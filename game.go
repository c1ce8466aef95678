package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/monkeygame/assets"
	"github.com/milk9111/monkeygame/manifest"
	"github.com/milk9111/monkeygame/render"
	"github.com/milk9111/monkeygame/scene"
	"github.com/milk9111/monkeygame/viewport"
	"golang.design/x/clipboard"
)

type bootState int

const (
	stateLoading bootState = iota
	stateFailed
	stateRunning
)

// GameOptions are the command-line switches NewGame needs.
type GameOptions struct {
	Debug bool
	// Watch reloads images, the asset manifest and the scene script when
	// they change on disk.
	Watch bool
	// AssetsDir is searched before the embedded images.
	AssetsDir string
	// AssetsManifest is the asset manifest file name.
	AssetsManifest string
}

type Game struct {
	frames int
	debug  bool

	spec     *manifest.GameSpec
	assets   *manifest.AssetsSpec
	opts     GameOptions
	images   *render.Loader[*ebiten.Image]
	mapper   *viewport.Mapper
	present  *viewport.Presenter
	surface  *render.Surface
	pointer  *Pointer
	script   *scene.Script
	watcher  *manifest.Watcher
	stamps   manifest.Stamps
	boot     *bootUI
	sprites  []scene.Sprite
	sceneErr string

	ctx    context.Context
	cancel context.CancelFunc
	state  bootState
	loaded chan error

	clipboardReady bool
}

func NewGame(spec *manifest.GameSpec, assetSpec *manifest.AssetsSpec, opts GameOptions) (*Game, error) {
	script, err := scene.Load(spec.SceneScript)
	if err != nil {
		return nil, err
	}
	bg, err := spec.BackgroundColor()
	if err != nil {
		return nil, err
	}

	dec := render.MuxDecoder{
		Local:  render.NewFSDecoder(os.DirFS(opts.AssetsDir), assets.FS()),
		Remote: &render.HTTPDecoder{},
	}

	mapper := viewport.NewMapper(spec.LogicalWidth, spec.LogicalHeight)
	present := viewport.NewPresenter(mapper)
	present.Background = bg

	ctx, cancel := context.WithCancel(context.Background())
	g := &Game{
		debug:   opts.Debug,
		spec:    spec,
		assets:  assetSpec,
		opts:    opts,
		images:  render.NewLoader(render.EbitenDecoder(dec)),
		mapper:  mapper,
		present: present,
		surface: render.NewSurface(present.Canvas(), spec.Smoothing),
		pointer: NewPointer(mapper),
		script:  script,
		ctx:     ctx,
		cancel:  cancel,
		loaded:  make(chan error, 1),
	}
	g.boot = newBootUI(func() { g.state = stateRunning })

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
	} else {
		g.clipboardReady = true
	}

	if opts.Watch {
		w, err := manifest.NewWatcher(manifest.Dir, filepath.Join(manifest.Dir, "scripts"), opts.AssetsDir)
		if err != nil {
			log.Printf("watch disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	g.requestAll()
	go func() {
		g.loaded <- g.images.WaitAll(ctx)
	}()

	return g, nil
}

// Close stops in-flight loads and the file watcher.
func (g *Game) Close() {
	g.cancel()
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.frames++

	g.pointer.Update()
	if g.pointer.QuitPressed {
		return ebiten.Termination
	}
	g.pollWatcher()

	switch g.state {
	case stateLoading:
		select {
		case err := <-g.loaded:
			if err != nil {
				log.Printf("boot: %v", err)
				g.boot.setFailure(err)
				g.state = stateFailed
			} else {
				g.state = stateRunning
			}
		default:
		}
		requested := g.images.Requested()
		g.boot.setProgress(requested-g.images.InFlight(), requested)
		g.boot.loading.Update()
	case stateFailed:
		g.boot.failure.Update()
	case stateRunning:
		g.runScene()
		if g.pointer.CopyPressed {
			g.copyPointer()
		}
	}
	return nil
}

func (g *Game) runScene() {
	sprites, err := g.script.Run(scene.Frame{
		Tick:     g.frames,
		PointerX: g.pointer.X,
		PointerY: g.pointer.Y,
		Pressed:  g.pointer.Pressed,
		Width:    g.spec.LogicalWidth,
		Height:   g.spec.LogicalHeight,
	})
	if err != nil {
		// Keep the last good frame and only log when the error changes.
		if msg := err.Error(); msg != g.sceneErr {
			log.Printf("%v", err)
			g.sceneErr = msg
		}
		return
	}
	g.sceneErr = ""
	g.sprites = sprites
}

func (g *Game) copyPointer() {
	if !g.clipboardReady {
		return
	}
	s := fmt.Sprintf("%d, %d", int(g.pointer.X), int(g.pointer.Y))
	clipboard.Write(clipboard.FmtText, []byte(s))
	log.Printf("copied logical position %s", s)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.present.Begin()
	for _, sp := range g.sprites {
		g.images.DrawScaled(g.surface, sp.Name, sp.X, sp.Y, sp.W, sp.H)
	}
	g.present.Present(screen)

	switch g.state {
	case stateLoading:
		g.boot.drawLoading(screen)
	case stateFailed:
		g.boot.failure.Draw(screen)
	}

	if g.debug {
		l := g.mapper.Layout()
		box := g.mapper.RenderedBox()
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"FPS: %.2f  scale: %dx  box: %.0f,%.0f %.0fx%.0f\npointer: %.1f, %.1f on=%v  images: %d ready, %d loading",
			ebiten.ActualFPS(), l.Scale, box.X, box.Y, box.W, box.H,
			g.pointer.X, g.pointer.Y, g.pointer.OnScreen, g.images.Len(), g.images.InFlight(),
		))
	}
}

// LayoutF lays the logical screen out in the window on every size change and
// keeps the screen at window size so the integer scaling is ours.
func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	g.mapper.Recompute(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
