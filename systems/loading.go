package systems

import (
	"image/color"

	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/automoto/overworld/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLoading fades the loading overlay in while the world waits for a
// destination map and hides it once the map is swapped in.
func UpdateLoading(ecs *ecs.ECS) {
	loadingEntry, ok := components.Loading.First(ecs.World)
	if !ok {
		return
	}
	worldEntry, ok := components.World.First(ecs.World)
	if !ok {
		return
	}
	loading := components.Loading.Get(loadingEntry)

	if !components.World.Get(worldEntry).World.Transitioning() {
		loading.Active = false
		loading.Fade = nil
		loading.Alpha = 0
		return
	}
	if !loading.Active {
		loading.Active = true
		loading.Fade = gween.New(0, 1, cfg.Transition.FadeSeconds, ease.OutQuad)
	}
	loading.Alpha, _ = loading.Fade.Update(1 / float32(ebiten.TPS()))
}

// DrawLoading draws the overlay started by UpdateLoading.
func DrawLoading(ecs *ecs.ECS, screen *ebiten.Image) {
	loadingEntry, ok := components.Loading.First(ecs.World)
	if !ok {
		return
	}
	loading := components.Loading.Get(loadingEntry)
	if !loading.Active || loading.Alpha <= 0 {
		return
	}

	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, width, height, scaleAlpha(cfg.Transition.OverlayColor, loading.Alpha), false)

	face := fonts.Title.Get()
	msg := cfg.Transition.Text
	bounds := text.BoundString(face, msg)
	x := int((width - float32(bounds.Dx())) / 2)
	y := int((height + float32(bounds.Dy())) / 2)
	text.Draw(screen, msg, face, x, y, scaleAlpha(cfg.Transition.TextColor, loading.Alpha))
}

func scaleAlpha(c color.RGBA, alpha float32) color.RGBA {
	f := func(v uint8) uint8 { return uint8(float32(v) * alpha) }
	// color.RGBA is premultiplied, so every channel scales.
	return color.RGBA{R: f(c.R), G: f(c.G), B: f(c.B), A: f(c.A)}
}
