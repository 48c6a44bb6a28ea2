package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Level  = donburi.NewTag().SetName("Level")
)

// Resolv tags for the tile objects in a level's space
const (
	ResolvSolid = "solid"
	ResolvWater = "water"
	ResolvExit  = "exit"
	ResolvSpawn = "spawn"
	ResolvActor = "actor"
)
