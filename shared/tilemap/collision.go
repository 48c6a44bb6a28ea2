package tilemap

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Blocked is the per-direction collision state of an actor for one tick.
type Blocked struct {
	Left, Right, Up, Down bool
}

// Dir returns the blocked flag for d. DirNone is never blocked.
func (b Blocked) Dir(d Direction) bool {
	switch d {
	case DirLeft:
		return b.Left
	case DirRight:
		return b.Right
	case DirUp:
		return b.Up
	case DirDown:
		return b.Down
	}
	return false
}

// Body is the part of an actor the collision probe needs.
type Body struct {
	Position dmath.Vec2
	Size     dmath.Vec2
	Speed    float64
	CanSwim  bool
}

// Probe returns the tile the leading edge of b would occupy after moving
// Speed pixels in direction d. The perpendicular axis keeps the current anchor.
//
// In tile space an actor anchored at p spans [p-size/2, p+size/2), which is
// what makes round-half-up conversion land on whole tiles. The right and
// bottom edges are the last pixel the body would cover, so fractional speeds
// still reach the next tile.
func (b Body) Probe(d Direction) Point {
	x, y := b.Position.X, b.Position.Y
	hw, hh := b.Size.X/2, b.Size.Y/2
	switch d {
	case DirLeft:
		x = x - hw - b.Speed
	case DirRight:
		x = math.Ceil(x+hw+b.Speed) - 1
	case DirUp:
		y = y - hh - b.Speed
	case DirDown:
		y = math.Ceil(y+hh+b.Speed) - 1
	}
	return PointFromPixels(x, y)
}

// Blocks reports whether a tile of type t stops an actor.
func Blocks(t TileType, canSwim bool) bool {
	switch t {
	case Collidable:
		return true
	case Water:
		return !canSwim
	}
	return false
}

// Resolve evaluates all four directions independently.
func Resolve(b Body, tiles TileSource) Blocked {
	probe := func(d Direction) bool {
		p := b.Probe(d)
		return Blocks(tiles.TileAt(p.X, p.Y), b.CanSwim)
	}
	return Blocked{
		Left:  probe(DirLeft),
		Right: probe(DirRight),
		Up:    probe(DirUp),
		Down:  probe(DirDown),
	}
}
