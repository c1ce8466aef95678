package render

import "github.com/hajimehoshi/ebiten/v2"

// Canvas is an immediate-mode drawing target for bitmaps of type B.
type Canvas[B any] interface {
	DrawImage(img B, x, y float64)
	DrawImageScaled(img B, x, y, w, h float64)
}

var _ Canvas[*ebiten.Image] = (*Surface)(nil)

// Surface draws onto an ebiten image. With Smoothing off images are sampled
// with nearest filtering so scaled pixel art stays crisp.
type Surface struct {
	Target    *ebiten.Image
	Smoothing bool
}

func NewSurface(target *ebiten.Image, smoothing bool) *Surface {
	return &Surface{Target: target, Smoothing: smoothing}
}

func (s *Surface) filter() ebiten.Filter {
	if s.Smoothing {
		return ebiten.FilterLinear
	}
	return ebiten.FilterNearest
}

func (s *Surface) DrawImage(img *ebiten.Image, x, y float64) {
	if s == nil || s.Target == nil || img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	op.Filter = s.filter()
	s.Target.DrawImage(img, op)
}

func (s *Surface) DrawImageScaled(img *ebiten.Image, x, y, w, h float64) {
	if s == nil || s.Target == nil || img == nil {
		return
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	op.Filter = s.filter()
	s.Target.DrawImage(img, op)
}
