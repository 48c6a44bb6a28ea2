package tilemap

import "github.com/yohamta/donburi/features/math"

// ComputeOffset returns the translation applied to map layers so the actor at
// pos stays in view. Near a map edge the offset saturates instead of tracking
// the actor; on an axis where the map is smaller than the view it centers on
// the actor.
func ComputeOffset(pos, mapSize, viewSize math.Vec2) math.Vec2 {
	return math.Vec2{
		X: axisOffset(pos.X, mapSize.X, viewSize.X),
		Y: axisOffset(pos.Y, mapSize.Y, viewSize.Y),
	}
}

func axisOffset(pos, mapLen, viewLen float64) float64 {
	half := viewLen / 2
	if mapLen < viewLen {
		return half - pos
	}
	return -clamp(pos, half, mapLen-half) + half
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
