package editor

import (
	"image/color"
	"strconv"

	"github.com/milk9111/pixeltiles/grid"
	"github.com/milk9111/pixeltiles/tiles"
	"golang.org/x/image/colornames"
)

const (
	// labelInset is the gap between a label's right edge and its cell edge.
	labelInset = 2
	// labelBaseline is the label baseline measured from the top of its cell.
	labelBaseline = 16
)

var (
	pixelOnColor  color.Color = colornames.Black
	pixelOffColor color.Color = colornames.White
)

// Rect is a filled, axis-aligned rectangle in panel coordinates.
type Rect struct {
	X, Y, W, H float32
	Color      color.Color
}

// Label is right-aligned text whose baseline sits at Y.
type Label struct {
	Text  string
	X, Y  float64
	Color color.Color
}

// Scene is everything needed to paint one frame of the panel, in paint order:
// pixels, then labels, then grid lines.
type Scene struct {
	Pixels    []Rect
	Labels    []Label
	GridLines []Rect
}

// pixelColor maps a pixel state to its fill.
func pixelColor(on bool) color.Color {
	if on {
		return pixelOnColor
	}
	return pixelOffColor
}

// contrastColor is the text color readable on top of a pixel in state on.
func contrastColor(on bool) color.Color {
	if on {
		return pixelOffColor
	}
	return pixelOnColor
}

// buildScene lays out the overview (selected < 0) or the edit view of a
// single tile.
func buildScene(geom grid.Geometry, set tiles.TileSet, selected, gridPixels int, gridColor color.Color) Scene {
	var sc Scene
	if selected < 0 {
		sc.Pixels = make([]Rect, 0, grid.TileCount*grid.TileCount)
		sc.Labels = make([]Label, 0, grid.TileCount)
		for tx := 0; tx < grid.PanelTiles; tx++ {
			for ty := 0; ty < grid.PanelTiles; ty++ {
				index := grid.Index(tx, ty)
				cellX := tx * geom.TilePixels
				cellY := ty * geom.TilePixels
				sc.Pixels = appendTile(sc.Pixels, set[index], cellX, cellY, geom.MiniTilePixels)
				sc.Labels = append(sc.Labels, tileLabel(set[index], index, cellX+geom.TilePixels, cellY))
			}
		}
	} else {
		tile := set[selected]
		sc.Pixels = appendTile(make([]Rect, 0, grid.TileCount), tile, 0, 0, geom.TilePixels)
		// On a misaligned panel the last tile ends short of the panel edge.
		sc.Labels = []Label{tileLabel(tile, selected, grid.PanelTiles*geom.TilePixels, 0)}
	}
	sc.GridLines = gridLines(geom, gridPixels, gridColor)
	return sc
}

func appendTile(dst []Rect, tile tiles.Tile, originX, originY, size int) []Rect {
	for i, on := range tile {
		px, py := grid.Coords(i)
		dst = append(dst, Rect{
			X:     float32(originX + px*size),
			Y:     float32(originY + py*size),
			W:     float32(size),
			H:     float32(size),
			Color: pixelColor(on),
		})
	}
	return dst
}

// tileLabel builds the 1-based number drawn in a tile's top-right corner,
// colored against the tile's top-right pixel.
func tileLabel(tile tiles.Tile, index, rightX, topY int) Label {
	return Label{
		Text:  strconv.Itoa(index + 1),
		X:     float64(rightX - labelInset),
		Y:     float64(topY + labelBaseline),
		Color: contrastColor(tile[grid.PanelTiles-1]),
	}
}

// gridLines returns one vertical and one horizontal bar per internal tile
// boundary, centered on the boundary.
func gridLines(geom grid.Geometry, thickness int, c color.Color) []Rect {
	if thickness <= 0 {
		return nil
	}
	half := float32(thickness) / 2
	span := float32(geom.PanelPixels)
	lines := make([]Rect, 0, 2*(grid.PanelTiles-1))
	for k := 1; k < grid.PanelTiles; k++ {
		b := float32(k*geom.TilePixels) - half
		lines = append(lines,
			Rect{X: b, Y: 0, W: float32(thickness), H: span, Color: c},
			Rect{X: 0, Y: b, W: span, H: float32(thickness), Color: c},
		)
	}
	return lines
}
