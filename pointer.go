package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/monkeygame/viewport"
)

// Pointer holds the current mouse or touch state in logical coordinates.
type Pointer struct {
	// X/Y are the pointer position in logical pixels. They run outside the
	// logical screen when the cursor is over the letterbox.
	X float64
	Y float64
	// OnScreen is true while the pointer is over the logical screen.
	OnScreen bool
	// Pressed is true on the frame the left button or a touch went down over
	// the logical screen.
	Pressed bool
	// CopyPressed is true on the frame the copy key (C) was pressed.
	CopyPressed bool
	// QuitPressed is true on the frame F12 was pressed.
	QuitPressed bool

	mapper  *viewport.Mapper
	touches []ebiten.TouchID
}

func NewPointer(mapper *viewport.Mapper) *Pointer {
	return &Pointer{mapper: mapper}
}

// Update polls the cursor and maps it through the rendered box.
func (p *Pointer) Update() {
	mx, my := ebiten.CursorPosition()
	sx, sy := float64(mx), float64(my)
	pressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	p.touches = inpututil.AppendJustPressedTouchIDs(p.touches[:0])
	if len(p.touches) > 0 {
		tx, ty := ebiten.TouchPosition(p.touches[0])
		sx, sy = float64(tx), float64(ty)
		pressed = true
	}

	p.X, p.Y = p.mapper.ScreenToLogical(sx, sy)
	p.OnScreen = p.mapper.Contains(sx, sy)
	p.Pressed = pressed && p.OnScreen

	p.CopyPressed = inpututil.IsKeyJustPressed(ebiten.KeyC)
	p.QuitPressed = inpututil.IsKeyJustPressed(ebiten.KeyF12)
}
