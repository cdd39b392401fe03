package editor

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// backVariant is which copy of the back button is on screen.
type backVariant int

const (
	backHidden backVariant = iota
	// backDark has black text, for a first pixel that is off.
	backDark
	// backLight has white text, for a first pixel that is on.
	backLight
)

// backVariantFor picks the back button for the editor's current state. The
// button sits over pixel 0 of the edited tile, so that pixel sets its color.
func backVariantFor(e *Editor) backVariant {
	tile := e.SelectedTile()
	if tile == nil {
		return backHidden
	}
	if tile[0] {
		return backLight
	}
	return backDark
}

// BackButton is the overlay control that leaves edit mode. Two copies exist,
// one per text color, and only the one matching the editor state is in the
// layout.
type BackButton struct {
	UI     *ebitenui.UI
	root   *widget.Container
	row    *widget.Container
	dark   *widget.Button
	light  *widget.Button
	shown  backVariant
	onBack func()
}

// NewBackButton builds the overlay UI with the button anchored at (x, y).
func NewBackButton(x, y int, onBack func()) (*BackButton, error) {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("editor: load ui font: %w", err)
	}
	var fontFace text.Face = &text.GoTextFace{Source: s, Size: 14}

	b := &BackButton{UI: &ebitenui.UI{}, onBack: onBack}
	b.dark = newBackWidget(&fontFace, pixelOnColor, b.activate)
	b.light = newBackWidget(&fontFace, pixelOffColor, b.activate)

	b.row = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	b.root = widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout(
		widget.AnchorLayoutOpts.Padding(&widget.Insets{Left: x, Top: y}),
	)))
	b.root.AddChild(b.row)
	b.UI.Container = b.root
	return b, nil
}

func newBackWidget(fontFace *text.Face, c color.Color, onClick func()) *widget.Button {
	transparent := image.NewNineSliceColor(color.Transparent)
	return widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    transparent,
			Hover:   transparent,
			Pressed: transparent,
		}),
		widget.ButtonOpts.Text("< Back", fontFace, &widget.ButtonTextColor{
			Idle:     c,
			Hover:    c,
			Pressed:  c,
			Disabled: c,
		}),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(56, 24),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (b *BackButton) activate() {
	if b.shown == backHidden {
		return
	}
	b.onBack()
}

// Visible reports whether a back button is in the layout.
func (b *BackButton) Visible() bool {
	return b.shown != backHidden
}

// Sync puts the button matching the editor state into the layout. Hidden
// buttons are removed rather than made invisible so their stale rects do
// not capture clicks meant for the panel.
func (b *BackButton) Sync(e *Editor) {
	v := backVariantFor(e)
	if v == b.shown {
		return
	}
	switch b.shown {
	case backDark:
		b.row.RemoveChild(b.dark)
	case backLight:
		b.row.RemoveChild(b.light)
	}
	switch v {
	case backDark:
		b.row.AddChild(b.dark)
	case backLight:
		b.row.AddChild(b.light)
	}
	b.shown = v
	// Changing children alters preferred sizes; without a relayout the
	// button keeps an empty rect and can't be drawn or clicked.
	b.row.RequestRelayout()
	b.root.RequestRelayout()
}
