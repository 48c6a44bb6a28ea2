package components

import (
	"github.com/automoto/overworld/ui"
	"github.com/yohamta/donburi"
)

// Pause menu entries, matched against config.Pause.MenuOptions.
const (
	MenuResume = "Resume"
	MenuSave   = "Save"
	MenuExit   = "Exit"
)

// PauseData stores the pause state and menu selection
type PauseData struct {
	IsPaused      bool
	Menu          ui.Menu
	Location      string // Map title and tile, captured when pausing
	Status        string // Result of the last Save, shown under the menu
	ExitRequested bool
}

var Pause = donburi.NewComponentType[PauseData]()
