package components

import "github.com/yohamta/donburi"

// MessageStateData is a singleton tracking the map banner.
type MessageStateData struct {
	MapName      string // Map the banner was last shown for
	Text         string
	DisplayTimer int // Frames remaining to display the banner
}

var MessageState = donburi.NewComponentType[MessageStateData]()
