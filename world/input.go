package world

import "github.com/automoto/overworld/shared/tilemap"

// Input is the held-direction snapshot for one tick.
type Input struct {
	Left, Right, Up, Down bool
	// Last is the most recently pressed direction that is still held.
	// It decides which way the actor faces.
	Last tilemap.Direction
}

// Held reports whether d is held.
func (in Input) Held(d tilemap.Direction) bool {
	switch d {
	case tilemap.DirLeft:
		return in.Left
	case tilemap.DirRight:
		return in.Right
	case tilemap.DirUp:
		return in.Up
	case tilemap.DirDown:
		return in.Down
	}
	return false
}

// horizontal returns the effective horizontal direction; opposing keys cancel.
func (in Input) horizontal() tilemap.Direction {
	switch {
	case in.Left && !in.Right:
		return tilemap.DirLeft
	case in.Right && !in.Left:
		return tilemap.DirRight
	}
	return tilemap.DirNone
}

func (in Input) vertical() tilemap.Direction {
	switch {
	case in.Up && !in.Down:
		return tilemap.DirUp
	case in.Down && !in.Up:
		return tilemap.DirDown
	}
	return tilemap.DirNone
}
