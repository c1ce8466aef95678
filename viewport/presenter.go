package viewport

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Presenter owns the logical-resolution canvas the game draws into and blits
// it onto the window through a Mapper's rendered box.
type Presenter struct {
	mapper *Mapper
	canvas *ebiten.Image

	// Background fills the window around the box.
	Background color.Color
}

func NewPresenter(m *Mapper) *Presenter {
	w, h := m.LogicalSize()
	return &Presenter{
		mapper:     m,
		canvas:     ebiten.NewImage(w, h),
		Background: color.Black,
	}
}

// Canvas returns the logical-resolution image to draw the frame into.
func (p *Presenter) Canvas() *ebiten.Image {
	return p.canvas
}

// Begin clears the canvas for a new frame.
func (p *Presenter) Begin() {
	p.canvas.Clear()
}

// Present draws the canvas onto screen, scaled into the rendered box with
// nearest filtering.
func (p *Presenter) Present(screen *ebiten.Image) {
	screen.Fill(p.Background)

	box := p.mapper.RenderedBox()
	if box.Empty() {
		return
	}
	w, h := p.mapper.LogicalSize()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(box.W/float64(w), box.H/float64(h))
	op.GeoM.Translate(box.X, box.Y)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(p.canvas, op)
}
