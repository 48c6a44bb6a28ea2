package systems

import (
	"github.com/automoto/overworld/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera takes the viewport offset computed by the world this tick.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	worldEntry, ok := components.World.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	camera.Offset = components.World.Get(worldEntry).World.ViewportOffset()
}
