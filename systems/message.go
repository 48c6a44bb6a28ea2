package systems

import (
	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/automoto/overworld/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// Cached font face for message rendering (lazy initialized)
var messageFontFace font.Face

// UpdateMessage shows the map banner whenever the actor arrives on a new map.
func UpdateMessage(ecs *ecs.ECS) {
	state := getOrCreateMessageState(ecs)

	entry, ok := components.World.First(ecs.World)
	if !ok {
		return
	}
	w := components.World.Get(entry).World
	if name := w.MapName(); name != state.MapName && !w.Transitioning() {
		state.MapName = name
		state.Text = mapTitle(name)
		state.DisplayTimer = cfg.Message.DisplayDuration
		return
	}

	if state.DisplayTimer > 0 {
		state.DisplayTimer--
	}
}

// DrawMessage renders the banner at the top center of the screen
func DrawMessage(ecs *ecs.ECS, screen *ebiten.Image) {
	state := getOrCreateMessageState(ecs)
	if state.DisplayTimer == 0 || state.Text == "" {
		return
	}

	if messageFontFace == nil {
		messageFontFace = fonts.Bold.Get()
	}

	bounds := text.BoundString(messageFontFace, state.Text) //nolint:staticcheck // TODO: migrate to text/v2
	textWidth := bounds.Dx()
	textHeight := bounds.Dy()

	padding := cfg.Message.BoxPadding
	boxWidth := float32(textWidth) + float32(padding)*2
	boxHeight := float32(textHeight) + float32(padding)*2

	screenWidth := float64(screen.Bounds().Dx())
	boxX := float32((screenWidth - float64(boxWidth)) / 2)
	boxY := float32(cfg.Message.TopMargin)

	vector.FillRect(screen, boxX, boxY, boxWidth, boxHeight, cfg.Message.BoxColor, false)

	textX := int(boxX + float32(padding))
	textY := int(boxY + float32(padding) + float32(textHeight))
	text.Draw(screen, state.Text, messageFontFace, textX, textY, cfg.Message.TextColor)
}

func mapTitle(name string) string {
	if title, ok := cfg.Message.MapTitles[name]; ok {
		return title
	}
	return name
}

// getOrCreateMessageState returns the singleton MessageState component
func getOrCreateMessageState(ecs *ecs.ECS) *components.MessageStateData {
	entry, ok := components.MessageState.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.MessageState))
	}
	return components.MessageState.Get(entry)
}
