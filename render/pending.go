package render

import "context"

// Pending is a single in-flight image load. It settles exactly once.
type Pending[B any] struct {
	name string
	path string
	done chan struct{}
	img  B
	err  error
}

func newPending[B any](name, path string) *Pending[B] {
	return &Pending[B]{name: name, path: path, done: make(chan struct{})}
}

// Name returns the asset name the load was requested for.
func (p *Pending[B]) Name() string { return p.name }

// Path returns the resource path being decoded.
func (p *Pending[B]) Path() string { return p.path }

// Done is closed once the load has settled.
func (p *Pending[B]) Done() <-chan struct{} { return p.done }

// Settled reports whether the load has finished, successfully or not.
func (p *Pending[B]) Settled() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the load settles or ctx is done. A failed load returns a
// *LoadError.
func (p *Pending[B]) Wait(ctx context.Context) (B, error) {
	select {
	case <-p.done:
		return p.img, p.err
	case <-ctx.Done():
		var zero B
		return zero, ctx.Err()
	}
}

func (p *Pending[B]) settle(img B, err error) {
	p.img = img
	p.err = err
	close(p.done)
}
