package components

import (
	"github.com/automoto/overworld/world"
	"github.com/yohamta/donburi"
)

// WorldData holds the simulation the ECS systems drive and present.
type WorldData struct {
	World *world.World
	// Fatal is set when the world hit a configuration error; the scene stops
	// the game with it.
	Fatal error
}

var World = donburi.NewComponentType[WorldData]()
