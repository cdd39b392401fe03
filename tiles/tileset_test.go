package tiles

import (
	"testing"

	"github.com/milk9111/pixeltiles/grid"
)

func sameTile(a, b Tile) bool {
	return len(a) > 0 && len(b) > 0 && &a[0] == &b[0]
}

func TestNewShape(t *testing.T) {
	s := New()
	if len(s) != grid.TileCount {
		t.Fatalf("expected %d tiles, got %d", grid.TileCount, len(s))
	}
	for i, tile := range s {
		if len(tile) != grid.TileCount {
			t.Fatalf("tile %d: expected %d pixels, got %d", i, grid.TileCount, len(tile))
		}
		if tile.lit() != 0 {
			t.Fatalf("tile %d: expected all pixels off", i)
		}
	}
}

func TestToggle(t *testing.T) {
	cases := []struct {
		name  string
		tile  int
		pixel int
	}{
		{"first", 0, 0},
		{"tile1_pixel1", 1, 1},
		{"last", grid.TileCount - 1, grid.TileCount - 1},
		{"middle", 6, 9},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			before := New()
			after := before.Toggle(c.tile, c.pixel)

			if before[c.tile][c.pixel] {
				t.Fatalf("receiver was mutated")
			}
			if !after[c.tile][c.pixel] {
				t.Fatalf("pixel %d of tile %d not toggled on", c.pixel, c.tile)
			}
			if got := after[c.tile].lit(); got != 1 {
				t.Fatalf("expected exactly one lit pixel, got %d", got)
			}
			for i := range before {
				if i == c.tile {
					if sameTile(before[i], after[i]) {
						t.Fatalf("toggled tile shares storage with the previous set")
					}
					continue
				}
				if !sameTile(before[i], after[i]) {
					t.Fatalf("tile %d was copied; expected it to be shared", i)
				}
			}
		})
	}
}

func TestToggleTwiceRestores(t *testing.T) {
	s := New().Toggle(3, 5).Toggle(7, 0)
	for tile := 0; tile < grid.TileCount; tile++ {
		for pixel := 0; pixel < grid.TileCount; pixel++ {
			back := s.Toggle(tile, pixel).Toggle(tile, pixel)
			if !back.equal(s) {
				t.Fatalf("double toggle of tile %d pixel %d changed the set", tile, pixel)
			}
		}
	}
}

func TestSetEqual(t *testing.T) {
	a := New()
	b := New()
	if !a.equal(b) {
		t.Fatalf("fresh sets should be equal")
	}
	if a.equal(b.Toggle(2, 2)) {
		t.Fatalf("sets differing by one pixel should not be equal")
	}
	if a.equal(a[:3]) {
		t.Fatalf("sets of different length should not be equal")
	}
}
