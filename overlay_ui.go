package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/monkeygame/common"
	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

const maxErrorRunes = 72

// bootUI is shown over the game until every asset has settled: a progress
// panel while loading and a dismissible panel when a load failed.
type bootUI struct {
	loading *ebitenui.UI
	failure *ebitenui.UI

	status  *widget.Text
	reason  *widget.Text
	shown   float64
	barFill color.Color
	barBack color.Color
}

// newBootUI builds both panels. onContinue runs when the player dismisses the
// failure panel.
func newBootUI(onContinue func()) *bootUI {
	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	u := &bootUI{
		barFill: color.NRGBA{R: 0xf0, G: 0xf0, B: 0xff, A: 0xff},
		barBack: color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff},
	}

	u.status = widget.NewText(
		widget.TextOpts.Text("Loading", &face, white),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	u.loading = newPanelUI(u.status)

	title := widget.NewText(
		widget.TextOpts.Text("Some images failed to load", &face, white),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	u.reason = widget.NewText(
		widget.TextOpts.Text("", &face, color.NRGBA{R: 0xff, G: 0x9a, B: 0x9a, A: 0xff}),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnTextColor := &widget.ButtonTextColor{Idle: white}
	continueBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text("Continue", &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onContinue != nil {
				onContinue()
			}
		}),
	)
	u.failure = newPanelUI(title, u.reason, continueBtn)

	return u
}

func newPanelUI(children ...widget.PreferredSizeLocateableWidget) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	for _, c := range children {
		panel.AddChild(c)
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}

// setProgress updates the loading label. The drawn bar eases toward the
// settled fraction.
func (u *bootUI) setProgress(settled, requested int) {
	target := 1.0
	if requested > 0 {
		target = float64(settled) / float64(requested)
	}
	u.shown = common.Clamp(common.Lerp(u.shown, target, 0.2), 0, 1)
	u.status.Label = fmt.Sprintf("Loading images %d/%d", settled, requested)
}

func (u *bootUI) setFailure(err error) {
	msg := []rune(err.Error())
	if len(msg) > maxErrorRunes {
		msg = append(msg[:maxErrorRunes-3], []rune("...")...)
	}
	u.reason.Label = string(msg)
}

func (u *bootUI) drawLoading(screen *ebiten.Image) {
	u.loading.Draw(screen)

	b := screen.Bounds()
	w := float32(b.Dx()) / 3
	x := (float32(b.Dx()) - w) / 2
	y := float32(b.Dy())/2 + 40
	vector.DrawFilledRect(screen, x, y, w, 6, u.barBack, false)
	vector.DrawFilledRect(screen, x, y, w*float32(u.shown), 6, u.barFill, false)
}
