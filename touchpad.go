package main

// axis integrates one stream of raw controller values into pointer deltas.
// The first sample only establishes the baseline.
type axis struct {
	last   int
	primed bool
	scale  float64
}

func (a *axis) sample(value int) int {
	if !a.primed {
		a.last = value
		a.primed = true
		return 0
	}
	delta := value - a.last
	a.last = value
	return int(float64(delta) * a.scale) // int() truncates toward zero
}

// Touchpad turns the pad controller's XY strip into relative pointer motion.
// The vertical axis rides a CC value, the horizontal axis rides pitch bend.
// Only the event loop goroutine touches it, so no locking.
type Touchpad struct {
	vertical   axis
	horizontal axis
}

func NewTouchpad(xSens, ySens float64) *Touchpad {
	return &Touchpad{
		vertical:   axis{scale: ySens},
		horizontal: axis{scale: xSens},
	}
}

// Vertical consumes a CC sample and returns the pointer delta it produces.
func (t *Touchpad) Vertical(value int) (dx, dy int) {
	return 0, t.vertical.sample(value)
}

// Horizontal consumes a pitch-bend sample and returns the pointer delta.
func (t *Touchpad) Horizontal(value int) (dx, dy int) {
	return t.horizontal.sample(value), 0
}
