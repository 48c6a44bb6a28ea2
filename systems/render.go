package systems

import (
	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawActor renders entities with an Animation component at their actor's
// position. The sprite is anchored at its top-left, matching the actor's
// position.
func DrawActor(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)

	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Actor) {
			return
		}
		img := components.Animation.Get(e).FrameImage()
		if img == nil {
			return
		}
		actor := components.Actor.Get(e)

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(actor.Position.X+camera.Offset.X, actor.Position.Y+camera.Offset.Y)
		if actor.Swimming {
			drawOp.ColorScale.ScaleWithColor(cfg.Actor.SwimTint)
		}
		screen.DrawImage(img, drawOp)
	})
}
