package tilemap

import "fmt"

// TileSource answers tile lookups. Grid is the only production implementation.
type TileSource interface {
	TileAt(x, y int) TileType
}

// Grid is the collision layer of one map. It is immutable once built.
type Grid struct {
	width  int
	height int
	tiles  []TileType
}

// NewGrid builds a grid from row-major tile types.
func NewGrid(width, height int, tiles []TileType) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("grid dimensions must be positive, got %dx%d", width, height)
	}
	if len(tiles) != width*height {
		return nil, fmt.Errorf("grid %dx%d needs %d tiles, got %d", width, height, width*height, len(tiles))
	}
	cp := make([]TileType, len(tiles))
	copy(cp, tiles)
	return &Grid{width: width, height: height, tiles: cp}, nil
}

// NewGridFromCodes builds a grid from raw collision-layer codes.
func NewGridFromCodes(width, height int, codes []int) (*Grid, error) {
	tiles := make([]TileType, len(codes))
	for i, c := range codes {
		tiles[i] = TileTypeFromCode(c)
	}
	return NewGrid(width, height, tiles)
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// PixelSize returns the grid extent in pixels.
func (g *Grid) PixelSize() (w, h float64) {
	return PixelFromTile(g.width), PixelFromTile(g.height)
}

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// TileAt returns the tile at (x, y). Cells outside the grid are Open.
func (g *Grid) TileAt(x, y int) TileType {
	if g == nil || !g.InBounds(x, y) {
		return Open
	}
	return g.tiles[x+g.width*y]
}

// At is TileAt for a Point.
func (g *Grid) At(p Point) TileType {
	return g.TileAt(p.X, p.Y)
}

// Each calls fn for every cell that is not Open, in row-major order.
func (g *Grid) Each(fn func(p Point, t TileType)) {
	for i, t := range g.tiles {
		if t == Open {
			continue
		}
		fn(Point{X: i % g.width, Y: i / g.width}, t)
	}
}
