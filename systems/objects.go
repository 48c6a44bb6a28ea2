package systems

import (
	"github.com/automoto/overworld/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimations points each actor's animation at its facing and advances
// it only while the actor is walking.
func UpdateAnimations(ecs *ecs.ECS) {
	for e := range components.Animation.Iter(ecs.World) {
		anim := components.Animation.Get(e)
		if !e.HasComponent(components.Actor) {
			continue
		}
		actor := components.Actor.Get(e)
		anim.SetAnimation(actor.Facing)
		if actor.Moving && anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update()
		}
	}
}
