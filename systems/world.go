package systems

import (
	"errors"
	"log"

	"github.com/automoto/overworld/components"
	"github.com/automoto/overworld/shared/leveldata"
	"github.com/automoto/overworld/tags"
	"github.com/automoto/overworld/world"
	"github.com/yohamta/donburi/ecs"
)

// UpdateWorld ticks the simulation with this frame's input and copies the
// actor and viewport out for the renderers.
func UpdateWorld(ecs *ecs.ECS) {
	entry, ok := components.World.First(ecs.World)
	if !ok {
		return
	}
	data := components.World.Get(entry)
	if data.Fatal != nil {
		return
	}

	input := getOrCreateInput(ecs)
	if err := data.World.Tick(WorldInput(input)); err != nil {
		handleWorldError(data, err)
	}

	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		components.Actor.Get(playerEntry).Actor = data.World.Actor()
	}
}

func handleWorldError(data *components.WorldData, err error) {
	switch {
	case errors.Is(err, leveldata.ErrConfig):
		log.Printf("Error: %v", err)
		data.Fatal = err
	case errors.Is(err, world.ErrAssetLoad):
		log.Printf("Warning: %v", err)
	default:
		log.Printf("Warning: world tick: %v", err)
	}
}

// FatalError returns the configuration error that stopped the world, if any.
func FatalError(ecs *ecs.ECS) error {
	entry, ok := components.World.First(ecs.World)
	if !ok {
		return nil
	}
	return components.World.Get(entry).Fatal
}
