// Package leveldata loads the map manifest and per-map assets (collision grid
// and visual layers) from an fs.FS, so the game can pass its embed.FS and tools
// can pass os.DirFS. It has no dependencies on ebitengine, donburi/ecs or resolv.
package leveldata

import (
	"errors"
	"image"

	"github.com/automoto/overworld/shared/tilemap"
)

// ErrConfig marks a map configuration error. These are fatal: continuing would
// place the actor somewhere undefined.
var ErrConfig = errors.New("map configuration error")

// Manifest is the parsed world manifest.
type Manifest struct {
	Maps map[string]*MapDef `json:"maps"`
}

// MapDef describes one map entry of the manifest.
type MapDef struct {
	Name   string             `json:"-"`
	Width  int                `json:"width,omitempty"`
	Height int                `json:"height,omitempty"`
	Paths  []string           `json:"paths"`
	Exits  map[string]ExitDef `json:"exits"`
}

// ExitDef is the on-disk exit format. Location and SpawnLocation are parallel.
type ExitDef struct {
	Location         [][2]int `json:"location"`
	SpawnLocation    [][2]int `json:"spawnLocation"`
	Destination      string   `json:"destination"`
	DestinationSpawn string   `json:"destinationSpawn"`
}

// MapAssets is everything loaded for one map.
type MapAssets struct {
	Grid       *tilemap.Grid
	Background image.Image
	Foreground image.Image
}
