package components

import (
	"github.com/automoto/overworld/assets/animations"
	"github.com/automoto/overworld/shared/tilemap"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	CurrentAnimation *animations.Animation
	CachedFrames     map[tilemap.Direction]map[int]*ebiten.Image
	CurrentFacing    tilemap.Direction
	FrameWidth       int
	FrameHeight      int
	Animations       map[tilemap.Direction]*animations.Animation
}

// SetAnimation switches to the walk cycle for facing, restarting it when it
// changes.
func (a *AnimationData) SetAnimation(facing tilemap.Direction) {
	if a.CurrentFacing == facing && a.CurrentAnimation != nil {
		return
	}
	anim, ok := a.Animations[facing]
	if !ok {
		return
	}
	a.CurrentAnimation = anim
	a.CurrentFacing = facing
	anim.Restart()
}

// FrameImage returns the cached image for the current frame, or nil.
func (a *AnimationData) FrameImage() *ebiten.Image {
	if a.CurrentAnimation == nil {
		return nil
	}
	return a.CachedFrames[a.CurrentFacing][a.CurrentAnimation.Frame()]
}

var Animation = donburi.NewComponentType[AnimationData]()
