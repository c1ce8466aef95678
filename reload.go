package main

import (
	"log"
	"path/filepath"

	"github.com/milk9111/monkeygame/manifest"
	"github.com/milk9111/monkeygame/scene"
)

func (g *Game) requestAll() {
	for _, img := range g.assets.Images {
		g.request(img)
	}
}

func (g *Game) request(img manifest.ImageSpec) {
	p := g.images.Load(g.ctx, img.Name, img.Path)
	if g.state == stateLoading {
		return
	}
	// After boot nobody waits on the aggregate, so report reload failures here.
	go func() {
		if _, err := p.Wait(g.ctx); err != nil && g.ctx.Err() == nil {
			log.Printf("reload: %v", err)
		}
	}()
}

// pollWatcher drains pending file changes without blocking the frame.
func (g *Game) pollWatcher() {
	for g.watcher != nil {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(name)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("watch: %v", err)
		default:
			return
		}
	}
}

func (g *Game) reload(path string) {
	switch {
	case manifest.IsSpecFile(path):
		if filepath.Base(path) != filepath.Base(g.opts.AssetsManifest) {
			return
		}
		if mt, ok := manifest.ModTime(g.opts.AssetsManifest); !g.stamps.Changed(path, mt, ok) {
			return
		}
		spec, err := manifest.LoadAssetsSpec(g.opts.AssetsManifest)
		if err != nil {
			log.Printf("reload: %v", err)
			return
		}
		g.assets = spec
		g.requestAll()
	case manifest.IsScriptFile(path):
		if filepath.Base(path) != filepath.Base(g.spec.SceneScript) {
			return
		}
		if mt, ok := manifest.ScriptModTime(g.spec.SceneScript); !g.stamps.Changed(path, mt, ok) {
			return
		}
		s, err := scene.Load(g.spec.SceneScript)
		if err != nil {
			log.Printf("reload: %v", err)
			return
		}
		g.script = s
		log.Printf("reload: scene %s", s.Name())
	case manifest.IsImageFile(path):
		for _, img := range g.assets.ByPath(path) {
			g.request(img)
		}
	}
}
