package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// LoadingData drives the overlay shown while a destination map loads.
type LoadingData struct {
	Active bool
	Fade   *gween.Tween
	Alpha  float32
}

var Loading = donburi.NewComponentType[LoadingData]()
