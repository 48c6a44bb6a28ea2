package systems

import (
	"fmt"

	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/automoto/overworld/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every object in the current level's resolv space and
// prints the actor's tile and blocked sides.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	worldEntry, ok := components.World.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	w := components.World.Get(worldEntry).World
	level := w.Level()
	if level == nil {
		return
	}

	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	viewX, viewY := -camera.Offset.X, -camera.Offset.Y

	for _, obj := range level.Space.Objects() {
		if obj.X+obj.W < viewX || obj.X > viewX+width || obj.Y+obj.H < viewY || obj.Y > viewY+height {
			continue
		}

		x := obj.X + camera.Offset.X
		y := obj.Y + camera.Offset.Y

		c := cfg.Cyan
		for tag, tagColor := range cfg.UI.DebugTileColors {
			if obj.HasTags(tag) {
				c = tagColor
				break
			}
		}

		vector.StrokeRect(screen, float32(x), float32(y), float32(obj.W), float32(obj.H), 1, c, false)
	}

	actor := w.Actor()
	b := actor.Blocked
	info := fmt.Sprintf("map %s  tile %v  pos (%.0f, %.0f)\nblocked L:%t R:%t U:%t D:%t  swimming:%t",
		w.MapName(), actor.Tile(), actor.Position.X, actor.Position.Y,
		b.Left, b.Right, b.Up, b.Down, actor.Swimming)
	text.Draw(screen, info, fonts.Small.Get(), 8, 16, cfg.UI.DebugTextColor)
}
