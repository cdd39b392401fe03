// Package grid holds the panel geometry shared by the overview and edit views.
//
// The panel is split into PanelTiles×PanelTiles tiles and every tile is split
// the same way into pixels, so one cell lookup serves both "which tile" in the
// overview and "which pixel" in the edit view.
package grid

import "fmt"

const (
	PanelTiles = 4
	TileCount  = PanelTiles * PanelTiles
)

// Geometry is the pixel layout of a square panel.
type Geometry struct {
	PanelPixels    int
	TilePixels     int
	MiniTilePixels int
}

// NewGeometry derives tile sizes from the panel side length.
func NewGeometry(panelPixels int) (Geometry, error) {
	if panelPixels < PanelTiles {
		return Geometry{}, fmt.Errorf("grid: panel of %dpx is smaller than %d tiles", panelPixels, PanelTiles)
	}
	tile := panelPixels / PanelTiles
	return Geometry{
		PanelPixels:    panelPixels,
		TilePixels:     tile,
		MiniTilePixels: tile / PanelTiles,
	}, nil
}

// Aligned reports whether the panel divides evenly into tiles.
func (g Geometry) Aligned() bool {
	return g.PanelPixels%PanelTiles == 0
}

// Clamp pins a panel-local coordinate to [0, PanelPixels-1].
func (g Geometry) Clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > g.PanelPixels-1 {
		return g.PanelPixels - 1
	}
	return v
}

// CellAt returns the column, row and flat index of the cell under a
// panel-local point. Points outside the panel snap to the nearest edge cell.
func (g Geometry) CellAt(x, y int) (cx, cy, index int) {
	cx = g.Clamp(x) / g.TilePixels
	cy = g.Clamp(y) / g.TilePixels
	// A misaligned panel leaves a sliver past the last full tile.
	if cx >= PanelTiles {
		cx = PanelTiles - 1
	}
	if cy >= PanelTiles {
		cy = PanelTiles - 1
	}
	return cx, cy, Index(cx, cy)
}

// Index flattens a column/row pair.
func Index(col, row int) int {
	return row*PanelTiles + col
}

// Coords splits a flat index into column and row.
func Coords(index int) (col, row int) {
	return index % PanelTiles, index / PanelTiles
}
