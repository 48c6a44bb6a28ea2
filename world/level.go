package world

import (
	"image"
	"log"

	"github.com/automoto/overworld/shared/leveldata"
	"github.com/automoto/overworld/shared/tilemap"
	"github.com/automoto/overworld/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/features/math"
)

// Layers are the decoded images drawn under and over the actor.
// Either may be nil.
type Layers struct {
	Background image.Image
	Foreground image.Image
}

// Level is a loaded map: its grid, exits, render layers and a resolv space
// holding one object per non-open tile.
type Level struct {
	Def    *leveldata.MapDef
	Grid   *tilemap.Grid
	Exits  tilemap.Exits
	Layers Layers
	Space  *resolv.Space
}

// NewLevel builds a Level from a map definition and its loaded assets.
func NewLevel(def *leveldata.MapDef, assets *leveldata.MapAssets) *Level {
	w, h := assets.Grid.PixelSize()
	space := resolv.NewSpace(int(w), int(h), tilemap.TileSize, tilemap.TileSize)

	var solid, water, exits int
	assets.Grid.Each(func(p tilemap.Point, t tilemap.TileType) {
		tag := resolvTag(t)
		if tag == "" {
			return
		}
		switch t {
		case tilemap.Collidable:
			solid++
		case tilemap.Water:
			water++
		case tilemap.ExitTile:
			exits++
		}
		x, y := p.Pixels()
		obj := resolv.NewObject(x, y, tilemap.TileSize, tilemap.TileSize, tag)
		obj.SetShape(resolv.NewRectangle(0, 0, tilemap.TileSize, tilemap.TileSize))
		space.Add(obj)
	})

	for _, msg := range leveldata.CheckExitTiles(def, assets.Grid) {
		log.Printf("Warning: %s", msg)
	}
	log.Printf("Loaded map %s: %d solid, %d water, %d exit tiles, %vx%v",
		def.Name, solid, water, exits, w, h)

	return &Level{
		Def:    def,
		Grid:   assets.Grid,
		Exits:  def.TileExits(),
		Layers: Layers{Background: assets.Background, Foreground: assets.Foreground},
		Space:  space,
	}
}

// Name returns the map name.
func (l *Level) Name() string { return l.Def.Name }

// Size returns the map size in pixels, taken from the collision grid.
func (l *Level) Size() math.Vec2 {
	w, h := l.Grid.PixelSize()
	return math.Vec2{X: w, Y: h}
}

// DefaultSpawn returns where an actor lands when no position is given: the
// first Spawn tile in row-major order, or the map's center.
func (l *Level) DefaultSpawn() math.Vec2 {
	var found *tilemap.Point
	l.Grid.Each(func(p tilemap.Point, t tilemap.TileType) {
		if found == nil && t == tilemap.Spawn {
			pp := p
			found = &pp
		}
	})
	if found != nil {
		x, y := found.Pixels()
		return math.Vec2{X: x, Y: y}
	}
	s := l.Size()
	return math.Vec2{X: s.X / 2, Y: s.Y / 2}
}

// Release drops the level's objects and images so a replaced level can be
// collected.
func (l *Level) Release() {
	if l == nil {
		return
	}
	if l.Space != nil {
		l.Space.Remove(l.Space.Objects()...)
	}
	l.Layers = Layers{}
}

func resolvTag(t tilemap.TileType) string {
	switch t {
	case tilemap.Collidable:
		return tags.ResolvSolid
	case tilemap.Water:
		return tags.ResolvWater
	case tilemap.ExitTile:
		return tags.ResolvExit
	case tilemap.Spawn:
		return tags.ResolvSpawn
	}
	return ""
}
