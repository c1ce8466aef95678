package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/monkeygame/manifest"
)

func main() {
	debug := flag.Bool("debug", false, "show layout and pointer diagnostics")
	watch := flag.Bool("watch", false, "reload images, manifests and the scene script when they change on disk")
	smooth := flag.Bool("smooth", false, "use linear filtering when drawing scaled images")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	gameName := flag.String("game", "game.yaml", "game manifest in manifest/")
	assetsName := flag.String("assets", "assets.yaml", "asset manifest in manifest/")
	assetsDir := flag.String("assets-dir", "assets", "directory searched for images before the embedded ones")
	flag.Parse()

	spec, err := manifest.LoadGameSpec(*gameName)
	if err != nil {
		log.Fatal(err)
	}
	if *smooth {
		spec.Smoothing = true
	}
	assetSpec, err := manifest.LoadAssetsSpec(*assetsName)
	if err != nil {
		log.Fatal(err)
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(spec.LogicalWidth*spec.WindowScale, spec.LogicalHeight*spec.WindowScale)
	ebiten.SetWindowTitle(spec.Title)

	game, err := NewGame(spec, assetSpec, GameOptions{
		Debug:          *debug,
		Watch:          *watch,
		AssetsDir:      *assetsDir,
		AssetsManifest: *assetsName,
	})
	if err != nil {
		log.Fatal(err)
	}

	err = ebiten.RunGame(game)
	game.Close()
	if err != nil {
		log.Fatal(err)
	}
}
