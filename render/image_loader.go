package render

import (
	"context"
	"log"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Loader requests named images from a Decoder and keeps the decoded ones for
// synchronous lookup. B is the bitmap handle, *ebiten.Image in the game.
//
// Requesting a name again replaces the earlier request: only the completion
// of the latest request for a name is written, whatever order decodes finish in.
type Loader[B any] struct {
	dec    Decoder[B]
	images *registry[B]

	mu      sync.Mutex
	pending []*Pending[B]
	latest  map[string]uint64
	gen     uint64
}

// NewLoader creates a loader that decodes through dec.
func NewLoader[B any](dec Decoder[B]) *Loader[B] {
	return &Loader[B]{
		dec:    dec,
		images: newRegistry[B](),
		latest: make(map[string]uint64),
	}
}

// Load registers a pending load of path under name and starts decoding it in
// the background. The returned Pending settles with the bitmap or a *LoadError.
func (l *Loader[B]) Load(ctx context.Context, name, path string) *Pending[B] {
	p := newPending[B](name, path)
	if name == "" {
		var zero B
		p.settle(zero, &LoadError{Name: name, Path: path, Err: ErrEmptyName})
		l.track(p)
		return p
	}

	l.mu.Lock()
	l.gen++
	gen := l.gen
	if _, ok := l.latest[name]; ok {
		log.Printf("render: %s requested again (%s), latest request wins", name, path)
	}
	l.latest[name] = gen
	l.pending = append(l.pending, p)
	l.mu.Unlock()

	go l.decode(ctx, p, gen)
	return p
}

func (l *Loader[B]) track(p *Pending[B]) {
	l.mu.Lock()
	l.pending = append(l.pending, p)
	l.mu.Unlock()
}

func (l *Loader[B]) decode(ctx context.Context, p *Pending[B], gen uint64) {
	img, err := l.dec.Decode(ctx, p.path)
	if err != nil {
		var zero B
		p.settle(zero, &LoadError{Name: p.name, Path: p.path, Err: err})
		return
	}

	// The registry write happens before settling so a caller returning from
	// Wait always finds the image through Get.
	l.mu.Lock()
	if l.latest[p.name] == gen {
		l.images.register(p.name, img)
	}
	l.mu.Unlock()
	p.settle(img, nil)
}

// WaitAll blocks until every load requested so far has settled. It returns nil
// only if all of them succeeded, and otherwise the first failure observed
// without waiting for the remaining loads. A load that never settles blocks
// WaitAll until ctx is done.
func (l *Loader[B]) WaitAll(ctx context.Context) error {
	l.mu.Lock()
	pending := slices.Clone(l.pending)
	l.mu.Unlock()

	g, gctx := errgroup.WithContext(ctx)
	for _, p := range pending {
		g.Go(func() error {
			_, err := p.Wait(gctx)
			return err
		})
	}
	return g.Wait()
}

// Get returns the image registered under name. ok is false while the image is
// loading or when its load failed.
func (l *Loader[B]) Get(name string) (B, bool) {
	return l.images.get(name)
}

// Len returns the number of ready images.
func (l *Loader[B]) Len() int {
	return l.images.len()
}

// Names returns the ready image names, sorted.
func (l *Loader[B]) Names() []string {
	return l.images.names()
}

// InFlight returns how many requested loads have not settled yet.
func (l *Loader[B]) InFlight() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, p := range l.pending {
		if !p.Settled() {
			n++
		}
	}
	return n
}

// Requested returns how many loads have been requested.
func (l *Loader[B]) Requested() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.pending)
}

// Draw draws the named image at its natural size with its top-left corner at
// the logical position x, y. Images that are not ready are skipped.
func (l *Loader[B]) Draw(dst Canvas[B], name string, x, y float64) {
	l.DrawScaled(dst, name, x, y, 0, 0)
}

// DrawScaled draws the named image stretched to w by h logical pixels. A zero
// width or height draws the image at its natural size. Images that are not
// ready are skipped.
func (l *Loader[B]) DrawScaled(dst Canvas[B], name string, x, y, w, h float64) {
	if dst == nil {
		return
	}
	img, ok := l.Get(name)
	if !ok {
		return
	}
	if w != 0 && h != 0 {
		dst.DrawImageScaled(img, x, y, w, h)
		return
	}
	dst.DrawImage(img, x, y)
}
