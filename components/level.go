package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// LevelData caches the GPU copies of the current map's render layers.
type LevelData struct {
	MapName    string
	Background *ebiten.Image
	Foreground *ebiten.Image
}

var Level = donburi.NewComponentType[LevelData]()
