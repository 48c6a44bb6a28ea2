package config

import "github.com/automoto/overworld/shared/tilemap"

type AnimationDef struct {
	Row   int // sheet row holding the frames
	First int
	Last  int
	Step  int
	Speed int // ticks per frame
}

// CharacterAnimations maps a character key (e.g., "player") to its walk cycle
// per facing direction. The player sheet is 3 frames wide and 4 rows tall:
// down, left, right, up. 10 ticks per frame is 6 fps at 60 TPS.
var CharacterAnimations = map[string]map[tilemap.Direction]AnimationDef{
	"player": {
		tilemap.DirDown:  {Row: 0, First: 0, Last: 2, Step: 1, Speed: 10},
		tilemap.DirLeft:  {Row: 1, First: 0, Last: 2, Step: 1, Speed: 10},
		tilemap.DirRight: {Row: 2, First: 0, Last: 2, Step: 1, Speed: 10},
		tilemap.DirUp:    {Row: 3, First: 0, Last: 2, Step: 1, Speed: 10},
	},
}
