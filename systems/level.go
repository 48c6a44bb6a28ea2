package systems

import (
	"image"

	"github.com/automoto/overworld/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// DrawLevel draws the current map's background layer.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	level, opts := levelDrawState(ecs)
	if level == nil || level.Background == nil {
		return
	}
	screen.DrawImage(level.Background, opts)
}

// DrawForeground draws the layer that sits over the actor.
func DrawForeground(ecs *ecs.ECS, screen *ebiten.Image) {
	level, opts := levelDrawState(ecs)
	if level == nil || level.Foreground == nil {
		return
	}
	screen.DrawImage(level.Foreground, opts)
}

func levelDrawState(ecs *ecs.ECS) (*components.LevelData, *ebiten.DrawImageOptions) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return nil, nil
	}
	camera := components.Camera.Get(cameraEntry)
	level := syncLevelImages(ecs)
	if level == nil {
		return nil, nil
	}

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(camera.Offset.X, camera.Offset.Y)
	return level, opts
}

// syncLevelImages uploads the world's layers when the map changed and frees
// the previous map's images.
func syncLevelImages(ecs *ecs.ECS) *components.LevelData {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return nil
	}
	worldEntry, ok := components.World.First(ecs.World)
	if !ok {
		return nil
	}
	level := components.Level.Get(levelEntry)
	w := components.World.Get(worldEntry).World

	name := w.MapName()
	if name == level.MapName {
		return level
	}
	if level.Background != nil {
		level.Background.Deallocate()
	}
	if level.Foreground != nil {
		level.Foreground.Deallocate()
	}
	layers := w.Layers()
	level.MapName = name
	level.Background = toEbitenImage(layers.Background)
	level.Foreground = toEbitenImage(layers.Foreground)
	return level
}

func toEbitenImage(img image.Image) *ebiten.Image {
	if img == nil {
		return nil
	}
	return ebiten.NewImageFromImage(img)
}
