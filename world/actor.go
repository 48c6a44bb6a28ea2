package world

import (
	"fmt"

	"github.com/automoto/overworld/shared/tilemap"
	"github.com/yohamta/donburi/features/math"
)

// ActorConfig is the immutable description of an actor.
type ActorConfig struct {
	Width   float64
	Height  float64
	Speed   float64 // pixels per tick
	CanSwim bool
}

// Validate rejects configs that would make movement meaningless.
func (c ActorConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("actor size must be positive, got %vx%v", c.Width, c.Height)
	}
	if c.Speed <= 0 {
		return fmt.Errorf("actor speed must be positive, got %v", c.Speed)
	}
	return nil
}

// Actor is the player-controlled sprite's simulation state.
type Actor struct {
	Position         math.Vec2
	PreviousPosition math.Vec2
	Size             math.Vec2
	Speed            float64
	CanSwim          bool

	Blocked  tilemap.Blocked
	Facing   tilemap.Direction
	Moving   bool
	Swimming bool
}

// NewActor validates cfg and places a new actor at pos.
func NewActor(cfg ActorConfig, pos math.Vec2) (*Actor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Actor{
		Position:         pos,
		PreviousPosition: pos,
		Size:             math.Vec2{X: cfg.Width, Y: cfg.Height},
		Speed:            cfg.Speed,
		CanSwim:          cfg.CanSwim,
		Facing:           tilemap.DirDown,
	}, nil
}

// Body returns the collision view of the actor.
func (a Actor) Body() tilemap.Body {
	return tilemap.Body{
		Position: a.Position,
		Size:     a.Size,
		Speed:    a.Speed,
		CanSwim:  a.CanSwim,
	}
}

// Tile returns the tile the actor's anchor maps to.
func (a Actor) Tile() tilemap.Point {
	return tilemap.PointFromPixels(a.Position.X, a.Position.Y)
}

// Place teleports the actor, clamped to the map.
func (a *Actor) Place(pos, mapSize math.Vec2) {
	a.Position = pos
	a.clamp(mapSize)
	a.PreviousPosition = a.Position
	a.Blocked = tilemap.Blocked{}
}

// Move applies one tick of input using the current Blocked flags.
func (a *Actor) Move(in Input, mapSize math.Vec2) {
	a.PreviousPosition = a.Position

	h, v := in.horizontal(), in.vertical()
	switch h {
	case tilemap.DirLeft:
		if !a.Blocked.Left {
			a.Position.X -= a.Speed
		}
	case tilemap.DirRight:
		if !a.Blocked.Right {
			a.Position.X += a.Speed
		}
	}
	switch v {
	case tilemap.DirUp:
		if !a.Blocked.Up {
			a.Position.Y -= a.Speed
		}
	case tilemap.DirDown:
		if !a.Blocked.Down {
			a.Position.Y += a.Speed
		}
	}

	a.Moving = h != tilemap.DirNone || v != tilemap.DirNone
	if in.Last == h || in.Last == v {
		if in.Last != tilemap.DirNone {
			a.Facing = in.Last
		}
	}
	a.clamp(mapSize)
}

func (a *Actor) clamp(mapSize math.Vec2) {
	a.Position.X = clampAxis(a.Position.X, mapSize.X-a.Size.X)
	a.Position.Y = clampAxis(a.Position.Y, mapSize.Y-a.Size.Y)
}

func clampAxis(v, hi float64) float64 {
	if hi < 0 {
		hi = 0
	}
	if v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}
	return v
}
