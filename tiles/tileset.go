package tiles

import "github.com/milk9111/pixeltiles/grid"

// Tile is one PanelTiles×PanelTiles binary pattern, indexed row*PanelTiles+col.
type Tile []bool

// TileSet is the full set of editable tiles. Values are never modified in
// place; Toggle returns a new set that shares every untouched tile.
type TileSet []Tile

// New returns TileCount tiles with every pixel off.
func New() TileSet {
	set := make(TileSet, grid.TileCount)
	for i := range set {
		set[i] = make(Tile, grid.TileCount)
	}
	return set
}

// Toggle flips one pixel of one tile and returns the resulting set.
// The receiver and all other tiles are left untouched.
func (s TileSet) Toggle(tile, pixel int) TileSet {
	next := make(TileSet, len(s))
	copy(next, s)

	t := make(Tile, len(s[tile]))
	copy(t, s[tile])
	t[pixel] = !t[pixel]
	next[tile] = t
	return next
}

// equal compares pixel contents.
func (s TileSet) equal(o TileSet) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if len(s[i]) != len(o[i]) {
			return false
		}
		for j := range s[i] {
			if s[i][j] != o[i][j] {
				return false
			}
		}
	}
	return true
}

// lit counts the pixels that are on.
func (t Tile) lit() int {
	n := 0
	for _, v := range t {
		if v {
			n++
		}
	}
	return n
}
