// Package ui holds overlay menu state that does not depend on how it is drawn
// or which device drives it.
package ui

import (
	"fmt"

	"github.com/automoto/overworld/shared/tilemap"
)

// Menu is a vertical list of options with one selected entry.
type Menu struct {
	Options  []string
	Selected int
}

func NewMenu(options ...string) Menu {
	return Menu{Options: options}
}

// Move shifts the selection by delta, wrapping at both ends.
func (m *Menu) Move(delta int) {
	n := len(m.Options)
	if n == 0 {
		return
	}
	m.Selected = ((m.Selected+delta)%n + n) % n
}

// Current returns the selected option, or "" for an empty menu.
func (m Menu) Current() string {
	if m.Selected < 0 || m.Selected >= len(m.Options) {
		return ""
	}
	return m.Options[m.Selected]
}

func (m *Menu) Reset() { m.Selected = 0 }

// LocationLabel describes where the actor stands, e.g. "Meadow (24, 20)".
func LocationLabel(title string, tile tilemap.Point) string {
	if title == "" {
		return ""
	}
	return fmt.Sprintf("%s (%d, %d)", title, tile.X, tile.Y)
}
