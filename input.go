package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input holds the per-frame pointer and key state the editor reacts to.
type Input struct {
	// PointerDown is true on the frame the left mouse button was pressed.
	PointerDown bool
	// PointerX/Y are the cursor position relative to the panel origin.
	PointerX int
	PointerY int
	// BackPressed is true on the frame Escape was pressed.
	BackPressed bool
	// QuitPressed is true on the frame F12 was pressed.
	QuitPressed bool

	originX int
	originY int
}

// NewInput returns an Input that reports coordinates relative to the panel
// drawn at (originX, originY) in the window.
func NewInput(originX, originY int) *Input {
	return &Input{originX: originX, originY: originY}
}

// Update polls the mouse and keyboard.
func (i *Input) Update() {
	i.QuitPressed = inpututil.IsKeyJustPressed(ebiten.KeyF12)
	mx, my := ebiten.CursorPosition()
	i.PointerX = mx - i.originX
	i.PointerY = my - i.originY
	i.PointerDown = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	i.BackPressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// OnPanel reports whether the cursor is over the panel or within slack
// pixels of its edge.
func (i *Input) OnPanel(panelPixels, slack int) bool {
	return i.PointerX >= -slack && i.PointerY >= -slack &&
		i.PointerX < panelPixels+slack && i.PointerY < panelPixels+slack
}
