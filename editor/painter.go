package editor

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gomono"
)

// painter draws a Scene onto an ebiten image.
type painter struct {
	face text.Face
}

func newPainter(labelSize float64) (*painter, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("editor: load label font: %w", err)
	}
	return &painter{face: &text.GoTextFace{Source: src, Size: labelSize}}, nil
}

func (p *painter) paint(dst *ebiten.Image, sc Scene) {
	dst.Clear()
	for _, r := range sc.Pixels {
		vector.DrawFilledRect(dst, r.X, r.Y, r.W, r.H, r.Color, false)
	}

	ascent := p.face.Metrics().HAscent
	for _, l := range sc.Labels {
		op := &text.DrawOptions{}
		op.GeoM.Translate(l.X, l.Y-ascent)
		op.PrimaryAlign = text.AlignEnd
		op.ColorScale.ScaleWithColor(l.Color)
		text.Draw(dst, l.Text, p.face, op)
	}

	for _, r := range sc.GridLines {
		vector.DrawFilledRect(dst, r.X, r.Y, r.W, r.H, r.Color, false)
	}
}
