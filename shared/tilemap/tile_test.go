package tilemap

import "testing"

func TestTileFromPixelRoundTrip(t *testing.T) {
	for tile := -5; tile <= 200; tile++ {
		if got := TileFromPixel(PixelFromTile(tile)); got != tile {
			t.Fatalf("TileFromPixel(PixelFromTile(%d)) = %d", tile, got)
		}
	}
}

func TestTileFromPixelRoundsHalfUp(t *testing.T) {
	cases := []struct {
		pixel float64
		want  int
	}{
		{0, 0},
		{15.9, 0},
		{16, 1},
		{47.9, 1},
		{48, 2},
		{-16, 0},
		{-16.1, -1},
	}
	for _, c := range cases {
		if got := TileFromPixel(c.pixel); got != c.want {
			t.Errorf("TileFromPixel(%v) = %d, want %d", c.pixel, got, c.want)
		}
	}
}

func TestTileTypeFromCode(t *testing.T) {
	cases := map[int]TileType{
		0:   Open,
		1:   Open,
		257: Collidable,
		258: Water,
		259: ExitTile,
		260: Spawn,
		261: Open,
	}
	for code, want := range cases {
		if got := TileTypeFromCode(code); got != want {
			t.Errorf("TileTypeFromCode(%d) = %v, want %v", code, got, want)
		}
	}
}

func TestParseTileType(t *testing.T) {
	if tt, ok := ParseTileType("water"); !ok || tt != Water {
		t.Errorf("ParseTileType(water) = %v, %v", tt, ok)
	}
	if tt, ok := ParseTileType("solid"); !ok || tt != Collidable {
		t.Errorf("ParseTileType(solid) = %v, %v", tt, ok)
	}
	if _, ok := ParseTileType("lava"); ok {
		t.Error("ParseTileType(lava) should not be recognised")
	}
	if _, ok := ParseTileType(""); ok {
		t.Error("empty kind should fall back to the raw code")
	}
}

func TestGridOutOfBoundsIsOpen(t *testing.T) {
	g, err := NewGridFromCodes(2, 2, []int{257, 257, 257, 257})
	if err != nil {
		t.Fatal(err)
	}
	outside := []Point{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {100, 100}, {-50, -50}}
	for _, p := range outside {
		if got := g.At(p); got != Open {
			t.Errorf("tile at %v = %v, want open", p, got)
		}
	}
	if got := g.TileAt(1, 1); got != Collidable {
		t.Errorf("tile at (1,1) = %v, want collidable", got)
	}

	var nilGrid *Grid
	if got := nilGrid.TileAt(0, 0); got != Open {
		t.Errorf("nil grid lookup = %v, want open", got)
	}
}

func TestGridOutOfBoundsFromPixels(t *testing.T) {
	g, err := NewGridFromCodes(3, 3, []int{
		257, 257, 257,
		257, 257, 257,
		257, 257, 257,
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, px := range []float64{-100, -17, 80, 96, 5000} {
		p := PointFromPixels(px, px)
		if g.InBounds(p.X, p.Y) {
			continue
		}
		if got := g.At(p); got != Open {
			t.Errorf("pixel %v maps to %v outside grid but tile is %v", px, p, got)
		}
	}
}

func TestGridRowMajor(t *testing.T) {
	g, err := NewGridFromCodes(3, 2, []int{
		0, 257, 0,
		258, 0, 259,
	})
	if err != nil {
		t.Fatal(err)
	}
	want := map[Point]TileType{
		{1, 0}: Collidable,
		{0, 1}: Water,
		{2, 1}: ExitTile,
	}
	got := map[Point]TileType{}
	g.Each(func(p Point, tt TileType) { got[p] = tt })
	if len(got) != len(want) {
		t.Fatalf("Each visited %d cells, want %d", len(got), len(want))
	}
	for p, tt := range want {
		if got[p] != tt {
			t.Errorf("cell %v = %v, want %v", p, got[p], tt)
		}
	}
}

func TestNewGridRejectsBadLength(t *testing.T) {
	if _, err := NewGrid(2, 2, make([]TileType, 3)); err == nil {
		t.Error("expected error for short tile slice")
	}
	if _, err := NewGrid(0, 2, nil); err == nil {
		t.Error("expected error for zero width")
	}
}
