package tilemap

import (
	"testing"

	dmath "github.com/yohamta/donburi/features/math"
)

// gridWith returns a 10x10 open grid with the given cells set.
func gridWith(t *testing.T, cells map[Point]TileType) *Grid {
	t.Helper()
	tiles := make([]TileType, 100)
	for p, tt := range cells {
		tiles[p.X+10*p.Y] = tt
	}
	g, err := NewGrid(10, 10, tiles)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func bodyAt(tile Point, canSwim bool) Body {
	x, y := tile.Pixels()
	return Body{
		Position: dmath.Vec2{X: x, Y: y},
		Size:     dmath.Vec2{X: 32, Y: 32},
		Speed:    2,
		CanSwim:  canSwim,
	}
}

func TestResolveWaterAdjacent(t *testing.T) {
	center := Point{5, 5}
	neighbours := map[Direction]Point{
		DirLeft:  {4, 5},
		DirRight: {6, 5},
		DirUp:    {5, 4},
		DirDown:  {5, 6},
	}
	for dir, water := range neighbours {
		g := gridWith(t, map[Point]TileType{water: Water})

		blocked := Resolve(bodyAt(center, false), g)
		if !blocked.Dir(dir) {
			t.Errorf("non-swimmer facing water %s: not blocked (%+v)", dir, blocked)
		}
		for other := range neighbours {
			if other != dir && blocked.Dir(other) {
				t.Errorf("water to the %s also blocked %s", dir, other)
			}
		}

		if blocked := Resolve(bodyAt(center, true), g); blocked.Dir(dir) {
			t.Errorf("swimmer facing water %s: blocked", dir)
		}
	}
}

func TestResolveCollidableBlocksSwimmers(t *testing.T) {
	g := gridWith(t, map[Point]TileType{{6, 5}: Collidable})
	if blocked := Resolve(bodyAt(Point{5, 5}, true), g); !blocked.Right {
		t.Error("collidable tile must block regardless of swim capability")
	}
}

func TestResolveExitAndSpawnDoNotBlock(t *testing.T) {
	g := gridWith(t, map[Point]TileType{{6, 5}: ExitTile, {4, 5}: Spawn})
	blocked := Resolve(bodyAt(Point{5, 5}, false), g)
	if blocked.Right || blocked.Left {
		t.Errorf("exit/spawn tiles should not block: %+v", blocked)
	}
}

func TestResolveStopsTileAligned(t *testing.T) {
	g := gridWith(t, map[Point]TileType{{6, 5}: Collidable})
	b := bodyAt(Point{3, 5}, false)

	for i := 0; i < 100; i++ {
		if Resolve(b, g).Right {
			break
		}
		b.Position.X += b.Speed
	}
	if b.Position.X != 160 {
		t.Errorf("actor stopped at x=%v, want 160 (tile 5)", b.Position.X)
	}

	b = bodyAt(Point{8, 5}, false)
	for i := 0; i < 100; i++ {
		if Resolve(b, g).Left {
			break
		}
		b.Position.X -= b.Speed
	}
	if b.Position.X != 224 {
		t.Errorf("actor stopped at x=%v, want 224 (tile 7)", b.Position.X)
	}
}

func TestResolveAtMapEdgeIsOpen(t *testing.T) {
	g := gridWith(t, nil)
	blocked := Resolve(bodyAt(Point{0, 0}, false), g)
	if blocked != (Blocked{}) {
		t.Errorf("probing outside the grid should be open, got %+v", blocked)
	}
}

func TestResolveUsesCurrentAnchorOnOtherAxis(t *testing.T) {
	// Diagonal neighbour only: neither axis probe reaches it.
	g := gridWith(t, map[Point]TileType{{6, 6}: Collidable})
	if blocked := Resolve(bodyAt(Point{5, 5}, false), g); blocked != (Blocked{}) {
		t.Errorf("diagonal tile should not block a single axis, got %+v", blocked)
	}
}

func TestResolveFractionalSpeedNeverEntersWall(t *testing.T) {
	// Tile 6 starts at pixel 176 in tile space.
	const wallEdge = 176.0
	for _, speed := range []float64{0.5, 1.5, 2, 3} {
		g := gridWith(t, map[Point]TileType{{6, 5}: Collidable, {5, 6}: Collidable})

		b := bodyAt(Point{3, 5}, false)
		b.Speed = speed
		for i := 0; i < 500 && !Resolve(b, g).Right; i++ {
			b.Position.X += b.Speed
		}
		if right := b.Position.X + 16; right > wallEdge || right+speed <= wallEdge {
			t.Errorf("speed %v: stopped at x=%v, right edge %v should end at or before %v within one step",
				speed, b.Position.X, right, wallEdge)
		}

		b = bodyAt(Point{5, 3}, false)
		b.Speed = speed
		for i := 0; i < 500 && !Resolve(b, g).Down; i++ {
			b.Position.Y += b.Speed
		}
		if bottom := b.Position.Y + 16; bottom > wallEdge || bottom+speed <= wallEdge {
			t.Errorf("speed %v: stopped at y=%v, bottom edge %v should end at or before %v within one step",
				speed, b.Position.Y, bottom, wallEdge)
		}
	}
}

func TestProbeHalfPixelStepReachesWall(t *testing.T) {
	b := Body{
		Position: dmath.Vec2{X: 128, Y: 160},
		Size:     dmath.Vec2{X: 32, Y: 32},
		Speed:    0.5,
	}
	if got := b.Probe(DirRight); got != (Point{X: 5, Y: 5}) {
		t.Errorf("right probe = %v, want {5 5}", got)
	}
}
