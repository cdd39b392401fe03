// Package editor implements the tile grid editor: an overview of every tile
// and a zoomed view for toggling the pixels of one tile.
package editor

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/pixeltiles/grid"
	"github.com/milk9111/pixeltiles/tiles"
)

// Overview is the selection value meaning no tile is being edited.
const Overview = -1

// Options configures an Editor.
type Options struct {
	GridPixels int
	GridColor  color.Color
	LabelSize  float64
	// OnChange runs after any change to the selection or the tile set.
	OnChange func(e *Editor)
}

// Editor owns the tile set and the current selection.
type Editor struct {
	geom       grid.Geometry
	tiles      tiles.TileSet
	selected   int
	gridPixels int
	gridColor  color.Color
	labelSize  float64
	onChange   func(e *Editor)

	// surface holds the last rendered panel; it is only valid while mounted.
	surface *ebiten.Image
	painter *painter
	dirty   bool
}

// New returns an editor in overview mode with every pixel off.
func New(geom grid.Geometry, opts Options) *Editor {
	if opts.GridColor == nil {
		opts.GridColor = color.RGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff}
	}
	if opts.LabelSize <= 0 {
		opts.LabelSize = labelBaseline
	}
	return &Editor{
		geom:       geom,
		tiles:      tiles.New(),
		selected:   Overview,
		gridPixels: opts.GridPixels,
		gridColor:  opts.GridColor,
		labelSize:  opts.LabelSize,
		onChange:   opts.OnChange,
		dirty:      true,
	}
}

// Mount acquires the drawing surface and label font.
func (e *Editor) Mount() error {
	if e.surface != nil {
		return nil
	}
	p, err := newPainter(e.labelSize)
	if err != nil {
		return err
	}
	e.painter = p
	e.surface = ebiten.NewImage(e.geom.PanelPixels, e.geom.PanelPixels)
	e.dirty = true
	return nil
}

// Unmount releases the drawing surface. The tile data survives.
func (e *Editor) Unmount() {
	if e.surface == nil {
		return
	}
	e.surface.Deallocate()
	e.surface = nil
	e.painter = nil
}

func (e *Editor) Tiles() tiles.TileSet { return e.tiles }
func (e *Editor) Selected() int { return e.selected }
func (e *Editor) Editing() bool { return e.selected != Overview }

// SelectedTile returns the tile being edited, or nil in overview mode.
func (e *Editor) SelectedTile() tiles.Tile {
	if !e.Editing() {
		return nil
	}
	return e.tiles[e.selected]
}

// PointerDown handles a press at panel-local coordinates. The same cell
// lookup picks a tile in overview mode and a pixel in edit mode.
func (e *Editor) PointerDown(x, y int) {
	if e.Editing() {
		e.TogglePixelAt(x, y)
		return
	}
	e.SelectTileAt(x, y)
}

// SelectTileAt enters edit mode for the tile under the point.
func (e *Editor) SelectTileAt(x, y int) {
	_, _, index := e.geom.CellAt(x, y)
	e.selected = index
	log.Printf("editor: editing tile %d", index+1)
	e.changed()
}

// TogglePixelAt flips the pixel under the point in the tile being edited.
// It does nothing in overview mode.
func (e *Editor) TogglePixelAt(x, y int) {
	if !e.Editing() {
		return
	}
	_, _, pixel := e.geom.CellAt(x, y)
	e.tiles = e.tiles.Toggle(e.selected, pixel)
	e.changed()
}

// Back returns to overview mode. Pixel edits are kept.
func (e *Editor) Back() {
	if !e.Editing() {
		return
	}
	log.Printf("editor: back to overview from tile %d", e.selected+1)
	e.selected = Overview
	e.changed()
}

func (e *Editor) changed() {
	e.dirty = true
	if e.onChange != nil {
		e.onChange(e)
	}
}

// SetStyle changes the grid and label presentation and forces a repaint.
func (e *Editor) SetStyle(gridPixels int, gridColor color.Color, labelSize float64) error {
	if labelSize <= 0 {
		labelSize = labelBaseline
	}
	if e.painter != nil && labelSize != e.labelSize {
		p, err := newPainter(labelSize)
		if err != nil {
			return err
		}
		e.painter = p
	}
	e.gridPixels = gridPixels
	if gridColor != nil {
		e.gridColor = gridColor
	}
	e.labelSize = labelSize
	e.dirty = true
	return nil
}

// Scene lays out the current view.
func (e *Editor) Scene() Scene {
	return buildScene(e.geom, e.tiles, e.selected, e.gridPixels, e.gridColor)
}

// Draw repaints the surface if the state changed since the last call and
// composites it onto dst at (x, y).
func (e *Editor) Draw(dst *ebiten.Image, x, y float64) error {
	if e.surface == nil {
		return fmt.Errorf("editor: draw before mount")
	}
	if e.dirty {
		e.painter.paint(e.surface, e.Scene())
		e.dirty = false
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	dst.DrawImage(e.surface, op)
	return nil
}
