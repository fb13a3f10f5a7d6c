package aquarium

// Direction is an arrow-key pan direction.
type Direction uint8

const (
	PanUp Direction = iota
	PanDown
	PanLeft
	PanRight
	numDirections
)

type panState [numDirections]bool

// SetPan records a directional key press or release. Held directions move the
// camera once per tick.
func (a *Aquarium) SetPan(dir Direction, pressed bool) {
	if dir < numDirections {
		a.pan[dir] = pressed
	}
}

// Panning reports whether any direction is held.
func (a *Aquarium) Panning() bool {
	for _, held := range a.pan {
		if held {
			return true
		}
	}
	return false
}

// processPan shifts the view while arrows are held: the world moves with
// up/left and against down/right.
func (a *Aquarium) processPan() {
	speed := a.cfg.Pan.Speed
	if a.pan[PanUp] {
		a.camera.Pan(0, speed)
	}
	if a.pan[PanDown] {
		a.camera.Pan(0, -speed)
	}
	if a.pan[PanRight] {
		a.camera.Pan(-speed, 0)
	}
	if a.pan[PanLeft] {
		a.camera.Pan(speed, 0)
	}
}
