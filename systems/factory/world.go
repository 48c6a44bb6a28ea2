package factory

import (
	"github.com/automoto/overworld/archetypes"
	"github.com/automoto/overworld/components"
	"github.com/automoto/overworld/world"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWorld(ecs *ecs.ECS, w *world.World) *donburi.Entry {
	entry := archetypes.World.Spawn(ecs)
	components.World.Set(entry, &components.WorldData{World: w})
	return entry
}

func CreateLoading(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.Loading.Spawn(ecs)
	components.Loading.Set(entry, &components.LoadingData{})
	return entry
}
