package systems

import (
	"image/color"

	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/automoto/overworld/fonts"
	"github.com/automoto/overworld/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// UpdatePause handles pause toggle and menu navigation.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
		if pause.IsPaused {
			pause.Menu.Reset()
			pause.Status = ""
			pause.Location = currentLocation(ecs)
		}
	}

	if !pause.IsPaused {
		return
	}

	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		pause.Menu.Move(-1)
	}
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		pause.Menu.Move(1)
	}

	if GetAction(input, cfg.ActionMenuSelect).JustPressed {
		switch pause.Menu.Current() {
		case components.MenuResume:
			pause.IsPaused = false
		case components.MenuSave:
			pause.Status = saveCurrentProgress(ecs)
		case components.MenuExit:
			pause.ExitRequested = true
		}
	}
}

// currentLocation labels the actor's map and tile for the pause header.
func currentLocation(ecs *ecs.ECS) string {
	entry, ok := components.World.First(ecs.World)
	if !ok {
		return ""
	}
	w := components.World.Get(entry).World
	return ui.LocationLabel(mapTitle(w.MapName()), w.Actor().Tile())
}

func saveCurrentProgress(ecs *ecs.ECS) string {
	entry, ok := components.World.First(ecs.World)
	if !ok {
		return cfg.Pause.SaveFailedText
	}
	w := components.World.Get(entry).World
	pos := w.Actor().Position
	if err := SaveProgress(&SavedProgress{Map: w.MapName(), X: pos.X, Y: pos.Y}); err != nil {
		return cfg.Pause.SaveFailedText
	}
	return cfg.Pause.SavedText
}

// DrawPause renders the pause overlay, the actor's location and the menu.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)

	if !pause.IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Pause.OverlayColor, false)

	options := pause.Menu.Options
	itemStep := cfg.Pause.MenuItemHeight + cfg.Pause.MenuItemGap
	startY := (height - float64(len(options))*itemStep) / 2

	fontFace := fonts.Title.Get()
	drawCentered(screen, pause.Location, fonts.Bold.Get(), width, int(startY-itemStep), cfg.Pause.TextColorSelected)

	for i, option := range options {
		y := startY + float64(i)*itemStep

		textColor := cfg.Pause.TextColorNormal
		if i == pause.Menu.Selected {
			textColor = cfg.Pause.TextColorSelected
		}
		drawCentered(screen, option, fontFace, width, int(y)+int(cfg.Pause.MenuItemHeight), textColor)
	}

	if pause.Status != "" {
		statusY := startY + float64(len(options))*itemStep + cfg.Pause.MenuItemHeight
		drawCentered(screen, pause.Status, fonts.Regular.Get(), width, int(statusY), cfg.Pause.TextColorNormal)
	}

	input := getOrCreateInput(ecs)
	drawCentered(screen, getPauseHint(input.LastInputMethod), fonts.Small.Get(), width, int(height)-12, cfg.Pause.TextColorNormal)
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, width float64, y int, clr color.Color) {
	if s == "" {
		return
	}
	x := int((width - float64(text.BoundString(face, s).Dx())) / 2)
	text.Draw(screen, s, face, x, y, clr)
}

// getPauseHint returns the appropriate hint for pause menu
func getPauseHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Left Stick/D-Pad: Choose   Cross: Select   Options: Back to the map"
	case components.InputXbox:
		return "Left Stick/D-Pad: Choose   A: Select   Start: Back to the map"
	}
	return "Arrows: Choose   Enter: Select   Esc: Back to the map"
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// ExitRequested reports whether the player chose Exit from the pause menu.
func ExitRequested(ecs *ecs.ECS) bool {
	return GetOrCreatePause(ecs).ExitRequested
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{
			Menu: ui.NewMenu(cfg.Pause.MenuOptions...),
		})
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}
