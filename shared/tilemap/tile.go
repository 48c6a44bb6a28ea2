// Package tilemap holds the tile-grid math shared by the game and its tools:
// coordinate conversion, tile lookups, collision probes, exit matching and the
// viewport offset. It has no dependencies on ebitengine or resolv.
package tilemap

import "math"

// TileSize is the edge length of a square tile in pixels.
const TileSize = 32

// Raw collision-layer codes as authored in the map editor.
const (
	CodeCollidable = 257
	CodeWater      = 258
	CodeExit       = 259
	CodeSpawn      = 260
)

// TileType is the gameplay meaning of a collision-layer cell.
type TileType uint8

const (
	Open TileType = iota
	Collidable
	Water
	ExitTile
	Spawn
)

func (t TileType) String() string {
	switch t {
	case Collidable:
		return "collidable"
	case Water:
		return "water"
	case ExitTile:
		return "exit"
	case Spawn:
		return "spawn"
	}
	return "open"
}

// TileTypeFromCode maps a raw collision-layer code to its TileType.
// Unknown codes (including 0, the empty cell) are Open.
func TileTypeFromCode(code int) TileType {
	switch code {
	case CodeCollidable:
		return Collidable
	case CodeWater:
		return Water
	case CodeExit:
		return ExitTile
	case CodeSpawn:
		return Spawn
	}
	return Open
}

// ParseTileType maps a tileset "kind" property to a TileType.
func ParseTileType(kind string) (TileType, bool) {
	switch kind {
	case "open", "":
		return Open, kind != ""
	case "collidable", "solid":
		return Collidable, true
	case "water":
		return Water, true
	case "exit":
		return ExitTile, true
	case "spawn":
		return Spawn, true
	}
	return Open, false
}

// Point is a tile coordinate.
type Point struct {
	X, Y int
}

// Direction is one of the four movement directions.
type Direction uint8

const (
	DirNone Direction = iota
	DirLeft
	DirRight
	DirUp
	DirDown
)

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	}
	return "none"
}

// TileFromPixel converts one pixel coordinate to a tile index, rounding half up.
func TileFromPixel(p float64) int {
	return int(math.Floor(p/TileSize + 0.5))
}

// PixelFromTile converts a tile index to the pixel coordinate of its origin.
func PixelFromTile(t int) float64 {
	return float64(t * TileSize)
}

// PointFromPixels converts a pixel position to the tile it maps to.
func PointFromPixels(x, y float64) Point {
	return Point{X: TileFromPixel(x), Y: TileFromPixel(y)}
}

// Pixels returns the pixel origin of the tile.
func (p Point) Pixels() (x, y float64) {
	return PixelFromTile(p.X), PixelFromTile(p.Y)
}
