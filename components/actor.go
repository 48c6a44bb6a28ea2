package components

import (
	"github.com/automoto/overworld/world"
	"github.com/yohamta/donburi"
)

// ActorData is the per-frame snapshot of the world's actor used for drawing.
type ActorData struct {
	world.Actor
}

var Actor = donburi.NewComponentType[ActorData]()
