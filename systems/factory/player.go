package factory

import (
	"github.com/automoto/overworld/archetypes"
	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/automoto/overworld/world"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the drawable side of the world's actor.
func CreatePlayer(ecs *ecs.ECS, actor world.Actor) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)
	components.Actor.SetValue(player, components.ActorData{Actor: actor})

	animData := GenerateAnimations("player", cfg.Actor.SpriteSheet, cfg.Actor.FrameWidth, cfg.Actor.FrameHeight)
	animData.SetAnimation(actor.Facing)
	components.Animation.Set(player, animData)

	return player
}
