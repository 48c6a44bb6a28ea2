package factory

import (
	"fmt"
	"image"

	"github.com/automoto/overworld/assets"
	"github.com/automoto/overworld/assets/animations"
	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/automoto/overworld/shared/tilemap"
	"github.com/hajimehoshi/ebiten/v2"
)

// GenerateAnimations creates an AnimationData component based on the character key
// (e.g., "player") which maps to a set of animation definitions in config.
func GenerateAnimations(key, sheetPath string, frameWidth, frameHeight int) *components.AnimationData {
	defs, ok := cfg.CharacterAnimations[key]
	if !ok {
		panic(fmt.Sprintf("No animation definitions found for key: %s", key))
	}

	animData := &components.AnimationData{
		Animations:    make(map[tilemap.Direction]*animations.Animation),
		CachedFrames:  make(map[tilemap.Direction]map[int]*ebiten.Image),
		FrameWidth:    frameWidth,
		FrameHeight:   frameHeight,
		CurrentFacing: tilemap.DirNone,
	}

	for facing, def := range defs {
		animData.Animations[facing] = animations.NewAnimation(def.Row, def.First, def.Last, def.Step, def.Speed)

		// Pre-calculate frames
		frames := make(map[int]*ebiten.Image)
		step := def.Step
		if step <= 0 {
			step = 1
		}
		sy := def.Row * frameHeight
		for i := def.First; i <= def.Last; i += step {
			sx := i * frameWidth
			srcRect := image.Rect(sx, sy, sx+frameWidth, sy+frameHeight)
			frames[i] = assets.GetFrame(sheetPath, facing, i, srcRect)
		}
		animData.CachedFrames[facing] = frames
	}

	return animData
}
