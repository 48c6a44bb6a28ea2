package animations

// Animation steps through the frames of one sprite sheet row.
type Animation struct {
	Row          int
	First        int
	Last         int
	Step         int // how many indices do we move per frame
	TicksPerStep int // how many ticks before next frame
	tick         int
	frame        int
	Looped       bool
}

// Update advances the animation by one tick, wrapping to First after Last.
func (a *Animation) Update() {
	a.tick++
	if a.tick < a.TicksPerStep {
		return
	}
	a.tick = 0
	a.frame += a.Step
	if a.frame > a.Last {
		a.Looped = true
		a.frame = a.First
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// Restart rewinds to the first frame.
func (a *Animation) Restart() {
	a.frame = a.First
	a.tick = 0
	a.Looped = false
}

func NewAnimation(row, first, last, step, ticksPerStep int) *Animation {
	if step <= 0 {
		step = 1
	}
	if ticksPerStep <= 0 {
		ticksPerStep = 1
	}
	return &Animation{
		Row:          row,
		First:        first,
		Last:         last,
		Step:         step,
		TicksPerStep: ticksPerStep,
		frame:        first,
	}
}
